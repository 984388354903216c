package team

import (
	"errors"

	"gorm.io/gorm"
)

// TeamRepository defines the interface for team data operations
type TeamRepository interface {
	CreateTeam(team *Team) error
	GetTeamByID(id uint) (*Team, error)
	GetTeamByName(name string) (*Team, error)
	GetAllTeams() ([]Team, error)
	UpdateTeam(id uint, updates map[string]interface{}) (*Team, error)
	DeleteTeam(id uint) error
}

type teamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new instance of TeamRepository
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) CreateTeam(team *Team) error {
	return r.db.Create(team).Error
}

func (r *teamRepository) GetTeamByID(id uint) (*Team, error) {
	var team Team
	if err := r.db.First(&team, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &team, nil
}

func (r *teamRepository) GetTeamByName(name string) (*Team, error) {
	var team Team
	if err := r.db.Where("name = ?", name).First(&team).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &team, nil
}

func (r *teamRepository) GetAllTeams() ([]Team, error) {
	var teams []Team
	if err := r.db.Order("name asc").Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

func (r *teamRepository) UpdateTeam(id uint, updates map[string]interface{}) (*Team, error) {
	if err := r.db.Model(&Team{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.GetTeamByID(id)
}

// DeleteTeam removes a team and every match it took part in. Matches are
// removed first so standings never see a dangling team reference.
func (r *teamRepository) DeleteTeam(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var matchIDs []uint
		if err := tx.Table("matches").
			Where("home_team_id = ? OR away_team_id = ?", id, id).
			Pluck("id", &matchIDs).Error; err != nil {
			return err
		}
		if len(matchIDs) > 0 {
			if err := tx.Exec("DELETE FROM match_events WHERE match_id IN ?", matchIDs).Error; err != nil {
				return err
			}
			if err := tx.Exec("DELETE FROM match_appearances WHERE match_id IN ?", matchIDs).Error; err != nil {
				return err
			}
			if err := tx.Exec("DELETE FROM matches WHERE id IN ?", matchIDs).Error; err != nil {
				return err
			}
		}
		return tx.Unscoped().Delete(&Team{}, id).Error
	})
}
