package training

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TrainingRepository defines the interface for training data operations
type TrainingRepository interface {
	CreateTraining(training *Training) error
	GetTrainingByID(id uint) (*Training, error)
	GetAllTrainings() ([]Training, error)
	UpdateTraining(id uint, updates map[string]interface{}) (*Training, error)
	DeleteTraining(id uint) error

	UpsertRsvp(trainingID, playerID uint, status string) (*TrainingRsvp, error)
	AttendanceStreak(playerID uint) (int, error)

	DB() *gorm.DB
}

type trainingRepository struct {
	db *gorm.DB
}

// NewTrainingRepository creates a new instance of TrainingRepository
func NewTrainingRepository(db *gorm.DB) TrainingRepository {
	return &trainingRepository{db: db}
}

func (r *trainingRepository) CreateTraining(training *Training) error {
	return r.db.Create(training).Error
}

func (r *trainingRepository) GetTrainingByID(id uint) (*Training, error) {
	var training Training
	if err := r.db.Preload("Rsvps.Player").First(&training, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &training, nil
}

func (r *trainingRepository) GetAllTrainings() ([]Training, error) {
	var trainings []Training
	err := r.db.Preload("Rsvps.Player").Order("date asc").Find(&trainings).Error
	if err != nil {
		return nil, err
	}
	return trainings, nil
}

func (r *trainingRepository) UpdateTraining(id uint, updates map[string]interface{}) (*Training, error) {
	if len(updates) > 0 {
		if err := r.db.Model(&Training{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return r.GetTrainingByID(id)
}

func (r *trainingRepository) DeleteTraining(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("training_id = ?", id).Delete(&TrainingRsvp{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&Training{}, id).Error
	})
}

// UpsertRsvp records or updates a player's in/out answer for a session.
func (r *trainingRepository) UpsertRsvp(trainingID, playerID uint, status string) (*TrainingRsvp, error) {
	rsvp := TrainingRsvp{
		TrainingID: trainingID,
		PlayerID:   playerID,
		Status:     status,
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "training_id"}, {Name: "player_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
	}).Create(&rsvp).Error
	if err != nil {
		return nil, err
	}

	var saved TrainingRsvp
	err = r.db.Where("training_id = ? AND player_id = ?", trainingID, playerID).First(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// AttendanceStreak counts how many consecutive completed trainings, most
// recent first, the player attended. The walk stops at the first session
// they missed.
func (r *trainingRepository) AttendanceStreak(playerID uint) (int, error) {
	return attendanceStreakTx(r.db, playerID, 0)
}

// attendanceStreakTx walks completed trainings inside an existing
// transaction. A non-zero excludeID leaves the session being confirmed out
// of the walk so callers can count it separately.
func attendanceStreakTx(tx *gorm.DB, playerID uint, excludeID uint) (int, error) {
	var trainings []Training
	q := tx.Preload("Rsvps", "player_id = ?", playerID).
		Where("completed = ?", true).
		Order("date desc")
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Find(&trainings).Error; err != nil {
		return 0, err
	}

	streak := 0
	for _, t := range trainings {
		if len(t.Rsvps) == 0 || !t.Rsvps[0].Attended {
			break
		}
		streak++
	}
	return streak, nil
}

// DB exposes the underlying handle for the confirmation transaction.
func (r *trainingRepository) DB() *gorm.DB {
	return r.db
}
