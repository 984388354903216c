package player

import (
	"errors"

	"gorm.io/gorm"
)

// PlayerRepository defines the interface for player data operations
type PlayerRepository interface {
	CreatePlayer(player *Player) error
	GetPlayerByID(id uint) (*Player, error)
	GetAllPlayers() ([]Player, error)
	GetAllPlayersByName() ([]Player, error)
	UpdatePlayer(id uint, updates map[string]interface{}) (*Player, error)
	DeletePlayer(id uint) error

	GetTransactions(playerID uint, limit int) ([]PointTransaction, error)
	CountMOTMEvents(playerID uint) (int64, error)
	AppearanceCounts() (map[uint]int, error)
	EventCounts() (map[uint]map[string]int, error)
}

type playerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a new instance of PlayerRepository
func NewPlayerRepository(db *gorm.DB) PlayerRepository {
	return &playerRepository{db: db}
}

func (r *playerRepository) CreatePlayer(player *Player) error {
	return r.db.Create(player).Error
}

func (r *playerRepository) GetPlayerByID(id uint) (*Player, error) {
	var player Player
	if err := r.db.First(&player, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &player, nil
}

func (r *playerRepository) GetAllPlayers() ([]Player, error) {
	var players []Player
	if err := r.db.Order("created_at asc").Find(&players).Error; err != nil {
		return nil, err
	}
	return players, nil
}

func (r *playerRepository) GetAllPlayersByName() ([]Player, error) {
	var players []Player
	if err := r.db.Order("name asc").Find(&players).Error; err != nil {
		return nil, err
	}
	return players, nil
}

func (r *playerRepository) UpdatePlayer(id uint, updates map[string]interface{}) (*Player, error) {
	if len(updates) > 0 {
		if err := r.db.Model(&Player{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return r.GetPlayerByID(id)
}

// DeletePlayer removes a player along with their RSVPs, appearances and
// ledger entries, and detaches them from match events.
func (r *playerRepository) DeletePlayer(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM training_rsvps WHERE player_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM match_appearances WHERE player_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("UPDATE match_events SET player_id = NULL WHERE player_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Where("player_id = ?", id).Delete(&PointTransaction{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&Player{}, id).Error
	})
}

func (r *playerRepository) GetTransactions(playerID uint, limit int) ([]PointTransaction, error) {
	var txs []PointTransaction
	q := r.db.Where("player_id = ?", playerID).Order("created_at desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

func (r *playerRepository) CountMOTMEvents(playerID uint) (int64, error) {
	var count int64
	err := r.db.Table("match_events").
		Where("player_id = ? AND type = ?", playerID, "motm").
		Count(&count).Error
	return count, err
}

type playerCount struct {
	PlayerID uint
	Count    int
}

// AppearanceCounts returns match appearances per player id.
func (r *playerRepository) AppearanceCounts() (map[uint]int, error) {
	var rows []playerCount
	err := r.db.Table("match_appearances").
		Select("player_id, count(*) as count").
		Group("player_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[uint]int, len(rows))
	for _, row := range rows {
		counts[row.PlayerID] = row.Count
	}
	return counts, nil
}

type playerTypeCount struct {
	PlayerID uint
	Type     string
	Count    int
}

// EventCounts returns match-event counts per player id, keyed by event type.
func (r *playerRepository) EventCounts() (map[uint]map[string]int, error) {
	var rows []playerTypeCount
	err := r.db.Table("match_events").
		Select("player_id, type, count(*) as count").
		Where("player_id IS NOT NULL").
		Group("player_id, type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[uint]map[string]int)
	for _, row := range rows {
		if counts[row.PlayerID] == nil {
			counts[row.PlayerID] = make(map[string]int)
		}
		counts[row.PlayerID][row.Type] = row.Count
	}
	return counts, nil
}
