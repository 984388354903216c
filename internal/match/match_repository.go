package match

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// MatchRepository defines the interface for match data operations
type MatchRepository interface {
	CreateMatch(match *Match) error
	GetMatchByID(id uint) (*Match, error)
	GetUpcomingMatches(now time.Time) ([]Match, error)
	GetPastMatches() ([]Match, error)
	GetAllMatches() ([]Match, error)
	GetCompletedMatches() ([]Match, error)
	DeleteMatch(id uint) error
	DB() *gorm.DB
}

type matchRepository struct {
	db *gorm.DB
}

// NewMatchRepository creates a new instance of MatchRepository
func NewMatchRepository(db *gorm.DB) MatchRepository {
	return &matchRepository{db: db}
}

func withRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("HomeTeam").
		Preload("AwayTeam").
		Preload("Events.Player").
		Preload("Appearances.Player")
}

func (r *matchRepository) CreateMatch(match *Match) error {
	if err := r.db.Create(match).Error; err != nil {
		return err
	}
	return withRelations(r.db).First(match, match.ID).Error
}

func (r *matchRepository) GetMatchByID(id uint) (*Match, error) {
	var match Match
	if err := withRelations(r.db).First(&match, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &match, nil
}

// GetUpcomingMatches returns fixtures that are in the future or missing a
// result, soonest first.
func (r *matchRepository) GetUpcomingMatches(now time.Time) ([]Match, error) {
	var matches []Match
	err := withRelations(r.db).
		Where("date >= ? OR home_score IS NULL", now).
		Order("date asc").
		Find(&matches).Error
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// GetPastMatches returns completed fixtures, most recent first.
func (r *matchRepository) GetPastMatches() ([]Match, error) {
	var matches []Match
	err := withRelations(r.db).
		Where("home_score IS NOT NULL AND away_score IS NOT NULL").
		Order("date desc").
		Find(&matches).Error
	if err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *matchRepository) GetAllMatches() ([]Match, error) {
	var matches []Match
	if err := withRelations(r.db).Order("date asc").Find(&matches).Error; err != nil {
		return nil, err
	}
	return matches, nil
}

// GetCompletedMatches returns matches that count towards standings: both
// scores recorded and not cancelled.
func (r *matchRepository) GetCompletedMatches() ([]Match, error) {
	var matches []Match
	err := r.db.
		Where("home_score IS NOT NULL AND away_score IS NOT NULL AND cancelled = ?", false).
		Find(&matches).Error
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// DeleteMatch removes a match together with its events and appearances.
func (r *matchRepository) DeleteMatch(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("match_id = ?", id).Delete(&MatchEvent{}).Error; err != nil {
			return err
		}
		if err := tx.Where("match_id = ?", id).Delete(&MatchAppearance{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&Match{}, id).Error
	})
}

// DB exposes the underlying handle for multi-step controller transactions.
func (r *matchRepository) DB() *gorm.DB {
	return r.db
}
