package highlight

import (
	"errors"

	"gorm.io/gorm"
)

type HighlightRepository interface {
	CreateHighlight(highlight *Highlight) error
	GetHighlightByID(id uint) (*Highlight, error)
	GetAllHighlights() ([]Highlight, error)
	UpdateHighlight(id uint, updates map[string]interface{}) (*Highlight, error)
	DeleteHighlight(id uint) error
}

type highlightRepository struct {
	db *gorm.DB
}

func NewHighlightRepository(db *gorm.DB) HighlightRepository {
	return &highlightRepository{db: db}
}

func (r *highlightRepository) withMatch() *gorm.DB {
	return r.db.Preload("Match.HomeTeam").Preload("Match.AwayTeam")
}

func (r *highlightRepository) CreateHighlight(highlight *Highlight) error {
	if err := r.db.Create(highlight).Error; err != nil {
		return err
	}
	return r.withMatch().First(highlight, highlight.ID).Error
}

func (r *highlightRepository) GetHighlightByID(id uint) (*Highlight, error) {
	var highlight Highlight
	err := r.withMatch().First(&highlight, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &highlight, nil
}

func (r *highlightRepository) GetAllHighlights() ([]Highlight, error) {
	var highlights []Highlight
	err := r.withMatch().
		Order("pinned desc, created_at desc").
		Find(&highlights).Error
	return highlights, err
}

func (r *highlightRepository) UpdateHighlight(id uint, updates map[string]interface{}) (*Highlight, error) {
	result := r.db.Model(&Highlight{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	return r.GetHighlightByID(id)
}

func (r *highlightRepository) DeleteHighlight(id uint) error {
	return r.db.Unscoped().Delete(&Highlight{}, id).Error
}
