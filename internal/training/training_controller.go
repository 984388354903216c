package training

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	mw "github.com/ashfc/clubhouse/internal/middleware"
	"github.com/ashfc/clubhouse/internal/player"
	"github.com/ashfc/clubhouse/internal/settings"
	"github.com/ashfc/clubhouse/pkg/responses"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrAlreadyConfirmed is returned when a completed training is confirmed
// again.
var ErrAlreadyConfirmed = errors.New("training already confirmed")

// TrainingController handles training-session HTTP requests
type TrainingController struct {
	repo          TrainingRepository
	settingsRepo  settings.SettingsRepository
	sessionSecret string
}

func NewTrainingController(repo TrainingRepository, settingsRepo settings.SettingsRepository, sessionSecret string) *TrainingController {
	return &TrainingController{
		repo:          repo,
		settingsRepo:  settingsRepo,
		sessionSecret: sessionSecret,
	}
}

// --- DTOs ---

type CreateTrainingRequest struct {
	Date     time.Time `json:"date" binding:"required"`
	Location string    `json:"location" binding:"required"`
	Notes    *string   `json:"notes"`
}

type UpdateTrainingRequest struct {
	ID       uint       `json:"id" binding:"required"`
	Date     *time.Time `json:"date"`
	Location *string    `json:"location"`
	Notes    *string    `json:"notes"`
}

type DeleteTrainingRequest struct {
	ID uint `json:"id" binding:"required"`
}

type RsvpRequest struct {
	TrainingID uint   `json:"training_id" binding:"required"`
	Status     string `json:"status" binding:"required,oneof=in out"`
}

type ConfirmTrainingRequest struct {
	TrainingID        uint    `json:"training_id" binding:"required"`
	AttendedPlayerIDs *[]uint `json:"attended_player_ids"`
}

type RsvpSummary struct {
	InCount  int `json:"in_count"`
	OutCount int `json:"out_count"`
}

// PlayerTrainingView decorates a session with the viewing player's own
// RSVP state.
type PlayerTrainingView struct {
	Training
	MyRsvpStatus string      `json:"my_rsvp_status"`
	MyAttended   bool        `json:"my_attended"`
	RsvpSummary  RsvpSummary `json:"rsvp_summary"`
}

// GetTrainings godoc
// @Summary List training sessions
// @Description Admin sees all RSVPs; a logged-in player sees their own status; anonymous callers get an empty list.
// @Tags Training
// @Produce json
// @Success 200 {array} Training
// @Router /training [get]
func (tc *TrainingController) GetTrainings(c *gin.Context) {
	isAdmin := mw.AdminFromCookie(c, tc.sessionSecret)
	playerID, isPlayer := mw.PlayerFromCookie(c, tc.sessionSecret)

	if !isAdmin && !isPlayer {
		c.JSON(http.StatusOK, []Training{})
		return
	}

	trainings, err := tc.repo.GetAllTrainings()
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch trainings: "+err.Error())
		return
	}

	if isAdmin {
		c.JSON(http.StatusOK, trainings)
		return
	}

	views := make([]PlayerTrainingView, 0, len(trainings))
	for _, t := range trainings {
		view := PlayerTrainingView{Training: t, MyRsvpStatus: "none"}
		for _, r := range t.Rsvps {
			switch r.Status {
			case StatusIn:
				view.RsvpSummary.InCount++
			case StatusOut:
				view.RsvpSummary.OutCount++
			}
			if r.PlayerID == playerID {
				view.MyRsvpStatus = r.Status
				view.MyAttended = r.Attended
			}
		}
		views = append(views, view)
	}
	c.JSON(http.StatusOK, views)
}

// CreateTraining godoc
// @Summary Schedule a training session
// @Tags Training
// @Accept json
// @Produce json
// @Param training body CreateTrainingRequest true "Session data"
// @Success 201 {object} Training
// @Failure 400 {object} responses.ErrorResponse
// @Router /training [post]
func (tc *TrainingController) CreateTraining(c *gin.Context) {
	var req CreateTrainingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Date and location required")
		return
	}

	training := Training{
		Date:     req.Date,
		Location: req.Location,
		Notes:    req.Notes,
	}
	if err := tc.repo.CreateTraining(&training); err != nil {
		responses.InternalServerError(c, "Failed to create training: "+err.Error())
		return
	}
	c.JSON(http.StatusCreated, training)
}

// UpdateTraining godoc
// @Summary Update a training session
// @Tags Training
// @Accept json
// @Produce json
// @Param training body UpdateTrainingRequest true "Fields to update"
// @Success 200 {object} Training
// @Failure 404 {object} responses.ErrorResponse
// @Router /training [patch]
func (tc *TrainingController) UpdateTraining(c *gin.Context) {
	var req UpdateTrainingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Training id required")
		return
	}

	existing, err := tc.repo.GetTrainingByID(req.ID)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch training: "+err.Error())
		return
	}
	if existing == nil {
		responses.NotFound(c, "Training")
		return
	}

	updates := map[string]interface{}{}
	if req.Date != nil {
		updates["date"] = *req.Date
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	training, err := tc.repo.UpdateTraining(req.ID, updates)
	if err != nil {
		responses.InternalServerError(c, "Failed to update training: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, training)
}

// DeleteTraining godoc
// @Summary Delete a training session
// @Tags Training
// @Accept json
// @Produce json
// @Param training body DeleteTrainingRequest true "Training id"
// @Success 200 {object} map[string]bool
// @Router /training [delete]
func (tc *TrainingController) DeleteTraining(c *gin.Context) {
	var req DeleteTrainingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Training id required")
		return
	}

	if err := tc.repo.DeleteTraining(req.ID); err != nil {
		responses.InternalServerError(c, "Failed to delete training: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Rsvp godoc
// @Summary RSVP to a training session
// @Description Players answer in or out; answers lock once the session is confirmed.
// @Tags Training
// @Accept json
// @Produce json
// @Param rsvp body RsvpRequest true "RSVP data"
// @Success 200 {object} TrainingRsvp
// @Failure 400 {object} responses.ErrorResponse "Already completed or invalid status"
// @Router /training/rsvp [post]
func (tc *TrainingController) Rsvp(c *gin.Context) {
	playerID, err := mw.PlayerIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "Not authenticated")
		return
	}

	var req RsvpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "training_id and status (in/out) required")
		return
	}

	training, err := tc.repo.GetTrainingByID(req.TrainingID)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch training: "+err.Error())
		return
	}
	if training == nil {
		responses.NotFound(c, "Training")
		return
	}
	if training.Completed {
		responses.BadRequest(c, "Training already completed")
		return
	}

	rsvp, err := tc.repo.UpsertRsvp(req.TrainingID, playerID, req.Status)
	if err != nil {
		responses.InternalServerError(c, "Failed to save RSVP: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, rsvp)
}

// ConfirmTraining godoc
// @Summary Confirm attendance for a training session
// @Description Awards attendance points to every listed player, grants streak bonuses on exact 3/5/10 streaks, and completes the session. A completed session cannot be confirmed again.
// @Tags Training
// @Accept json
// @Produce json
// @Param confirm body ConfirmTrainingRequest true "Training id and attendee ids"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} responses.ErrorResponse "Missing fields or already confirmed"
// @Failure 404 {object} responses.ErrorResponse
// @Router /training/confirm [post]
func (tc *TrainingController) ConfirmTraining(c *gin.Context) {
	var req ConfirmTrainingRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.AttendedPlayerIDs == nil {
		responses.BadRequest(c, "training_id and attended_player_ids required")
		return
	}

	training, err := tc.repo.GetTrainingByID(req.TrainingID)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch training: "+err.Error())
		return
	}
	if training == nil {
		responses.NotFound(c, "Training")
		return
	}
	if training.Completed {
		responses.BadRequest(c, "Training already confirmed")
		return
	}

	st, err := tc.settingsRepo.Get()
	if err != nil {
		responses.InternalServerError(c, "Failed to load settings: "+err.Error())
		return
	}

	err = Confirm(tc.repo.DB(), training, *req.AttendedPlayerIDs, st)
	if err != nil {
		if errors.Is(err, ErrAlreadyConfirmed) {
			responses.BadRequest(c, "Training already confirmed")
			return
		}
		responses.InternalServerError(c, "Failed to confirm training: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"points_awarded":  st.PointsPerTraining,
		"players_awarded": len(*req.AttendedPlayerIDs),
	})
}

// Confirm runs the whole confirmation as one transaction: the completion
// flip doubles as the idempotency guard, every RSVP is reset before
// attendees are marked, and each attendee is paid attendance points plus
// any exact-threshold streak bonus. A failure anywhere rolls the whole
// batch back.
func Confirm(db *gorm.DB, training *Training, attendedPlayerIDs []uint, st *settings.SiteSettings) error {
	return db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&Training{}).
			Where("id = ? AND completed = ?", training.ID, false).
			Update("completed", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrAlreadyConfirmed
		}

		// No-shows keep their RSVP row but lose the attended mark.
		err := tx.Model(&TrainingRsvp{}).
			Where("training_id = ?", training.ID).
			Update("attended", false).Error
		if err != nil {
			return err
		}

		for _, pid := range attendedPlayerIDs {
			rsvp := TrainingRsvp{
				TrainingID: training.ID,
				PlayerID:   pid,
				Status:     StatusIn,
				Attended:   true,
			}
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "training_id"}, {Name: "player_id"}},
				DoUpdates: clause.Assignments(map[string]interface{}{"attended": true}),
			}).Create(&rsvp).Error
			if err != nil {
				return err
			}

			err = player.AwardTx(tx, pid, st.PointsPerTraining, player.TxTraining,
				"Training attendance: "+training.Location, nil)
			if err != nil {
				return err
			}

			if st.ShowStreaks {
				prior, err := attendanceStreakTx(tx, pid, training.ID)
				if err != nil {
					return err
				}
				streak := 1 + prior
				if bonus := st.BonusForStreak(streak); bonus > 0 {
					desc := fmt.Sprintf("%d-training attendance streak bonus", streak)
					err = player.AwardTx(tx, pid, bonus, player.TxStreakBonus, desc, nil)
					if err != nil {
						return err
					}
				}
			}
		}
		return nil
	})
}
