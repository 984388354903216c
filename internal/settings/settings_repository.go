package settings

import (
	"errors"

	"gorm.io/gorm"
)

const singletonID = 1

// SettingsRepository defines the interface for site settings access
type SettingsRepository interface {
	Get() (*SiteSettings, error)
	Update(updates map[string]interface{}) (*SiteSettings, error)
}

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new instance of SettingsRepository
func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

// Get returns the singleton settings row, creating it with defaults on
// first access.
func (r *settingsRepository) Get() (*SiteSettings, error) {
	var s SiteSettings
	err := r.db.First(&s, singletonID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := r.db.Create(&SiteSettings{ID: singletonID}).Error; err != nil {
			return nil, err
		}
		// Re-read so column defaults are populated.
		if err := r.db.First(&s, singletonID).Error; err != nil {
			return nil, err
		}
		return &s, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *settingsRepository) Update(updates map[string]interface{}) (*SiteSettings, error) {
	if _, err := r.Get(); err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := r.db.Model(&SiteSettings{}).Where("id = ?", singletonID).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return r.Get()
}
