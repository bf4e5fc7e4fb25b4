package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/DougLewin/SuperWeirdOneBudFast/models"
	"github.com/DougLewin/SuperWeirdOneBudFast/utils"
)

// ErrNotFound is returned when a lookup matches no row. Callers must
// treat it differently from a backend failure.
var ErrNotFound = errors.New("record not found")

// SessionFilters narrows an API-variant listing. Zero values mean
// "no filter".
type SessionFilters struct {
	Zone      string
	BreakName string
	MinScore  *float64
}

// SessionStore is the storage gateway for the API-variant
// surf_sessions table. The handle is injected at construction; there
// is no package-level database.
type SessionStore struct {
	db *gorm.DB
}

func NewSessionStore(db *gorm.DB) *SessionStore {
	return &SessionStore{db: db}
}

// Create inserts a session and fills in its assigned id.
func (s *SessionStore) Create(session *models.SurfSession) error {
	return s.db.Create(session).Error
}

// List returns sessions matching all provided filters, ordered by
// total_score descending. Break name matching is a case-insensitive
// substring match.
func (s *SessionStore) List(filters SessionFilters, limit, offset int) ([]models.SurfSession, error) {
	query := s.db.Model(&models.SurfSession{})

	if filters.Zone != "" {
		query = query.Where("zone = ?", filters.Zone)
	}
	if filters.BreakName != "" {
		query = query.Where("LOWER(`break`) LIKE ?", "%"+strings.ToLower(filters.BreakName)+"%")
	}
	if filters.MinScore != nil {
		query = query.Where("total_score >= ?", *filters.MinScore)
	}

	var sessions []models.SurfSession
	err := query.Order("total_score DESC").Limit(limit).Offset(offset).Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

// Get returns a single session by id.
func (s *SessionStore) Get(id uint) (*models.SurfSession, error) {
	var session models.SurfSession
	if err := s.db.First(&session, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &session, nil
}

// Delete removes a session by id. Deliberately unscoped: the API
// variant has no user identity to scope by.
func (s *SessionStore) Delete(id uint) error {
	result := s.db.Delete(&models.SurfSession{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// RecordStore is the storage gateway for the dashboard-variant records
// table. Every operation is scoped to the owning user.
type RecordStore struct {
	db *gorm.DB
}

func NewRecordStore(db *gorm.DB) *RecordStore {
	return &RecordStore{db: db}
}

// Save inserts a new record for its owner, assigning an id.
func (s *RecordStore) Save(record *models.Record) error {
	if record.ID == "" {
		record.ID = utils.GenerateID()
	}
	return s.db.Create(record).Error
}

// ListForUser returns the user's records, newest session date first.
// An optional publicity filter narrows the listing.
func (s *RecordStore) ListForUser(userID string, publicity string) ([]models.Record, error) {
	query := s.db.Where("user_id = ?", userID)
	if publicity != "" {
		query = query.Where("publicity = ?", publicity)
	}

	var records []models.Record
	if err := query.Order("date DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Get returns one of the user's records by id.
func (s *RecordStore) Get(userID, id string) (*models.Record, error) {
	var record models.Record
	err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// Update overwrites one of the user's records in place. A record owned
// by someone else is indistinguishable from a missing one. Existence is
// checked up front rather than inferred from affected rows: an update
// that changes no values must still succeed, and MySQL counts changed
// rows, not matched rows.
func (s *RecordStore) Update(userID, id string, record *models.Record) error {
	var count int64
	err := s.db.Model(&models.Record{}).
		Where("id = ? AND user_id = ?", id, userID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrNotFound
	}

	record.ID = id
	record.UserID = userID
	return s.db.Model(&models.Record{}).
		Where("id = ? AND user_id = ?", id, userID).
		Select("*").Omit("id", "user_id", "created_at").
		Updates(record).Error
}

// Delete removes one of the user's records by id.
func (s *RecordStore) Delete(userID, id string) error {
	result := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Record{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
