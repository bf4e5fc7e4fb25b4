package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/DougLewin/SuperWeirdOneBudFast/config"
	"github.com/DougLewin/SuperWeirdOneBudFast/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	config.Logger = zap.NewNop().Sugar()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// In-memory sqlite is per-connection; keep the pool at one.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.MigrateDB(db))
	return db
}

func makeSession(breakName, zone string, score float64) models.SurfSession {
	z := zone
	return models.SurfSession{
		Date:            "2024-03-01",
		Time:            "07:30",
		Break:           breakName,
		Zone:            &z,
		TotalScore:      score,
		FullCommentary:  "clean morning",
		Cost:            20,
		EstimatedReturn: 80,
	}
}

func TestSessionStoreCreateAssignsID(t *testing.T) {
	store := NewSessionStore(newTestDB(t))

	session := makeSession("Strickland Bay", "West End", 42.5)
	require.NoError(t, store.Create(&session))
	assert.NotZero(t, session.ID)
}

func TestSessionStoreRoundTrip(t *testing.T) {
	store := NewSessionStore(newTestDB(t))

	dir := 210.0
	session := makeSession("Strickland Bay", "West End", 42.5)
	session.SwellDirection = &dir
	session.SwellScore = 60
	require.NoError(t, store.Create(&session))

	got, err := store.Get(session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.Break, got.Break)
	assert.Equal(t, session.TotalScore, got.TotalScore)
	assert.Equal(t, session.FullCommentary, got.FullCommentary)
	require.NotNil(t, got.SwellDirection)
	assert.Equal(t, dir, *got.SwellDirection)
}

func TestSessionStoreNullSwellDirectionSurvives(t *testing.T) {
	store := NewSessionStore(newTestDB(t))

	session := makeSession("The Box", "South", 10)
	require.NoError(t, store.Create(&session))

	got, err := store.Get(session.ID)
	require.NoError(t, err)
	assert.Nil(t, got.SwellDirection)
	assert.Zero(t, got.SwellScore)
}

func TestSessionStoreListOrderAndFilters(t *testing.T) {
	store := NewSessionStore(newTestDB(t))

	for _, s := range []models.SurfSession{
		makeSession("Strickland Bay", "West End", 30),
		makeSession("Stark Bay", "North", 80),
		makeSession("The Box", "South", -10),
		makeSession("Transits", "West End", 55),
	} {
		require.NoError(t, store.Create(&s))
	}

	// Default listing, best scores first
	all, err := store.List(SessionFilters{}, 50, 0)
	require.NoError(t, err)
	require.Len(t, all, 4)
	for i := 1; i < len(all); i++ {
		assert.GreaterOrEqual(t, all[i-1].TotalScore, all[i].TotalScore)
	}

	// min_score is an inclusive lower bound
	minScore := 55.0
	high, err := store.List(SessionFilters{MinScore: &minScore}, 50, 0)
	require.NoError(t, err)
	require.Len(t, high, 2)
	for _, s := range high {
		assert.GreaterOrEqual(t, s.TotalScore, minScore)
	}

	// Exact zone match
	west, err := store.List(SessionFilters{Zone: "West End"}, 50, 0)
	require.NoError(t, err)
	assert.Len(t, west, 2)

	// Case-insensitive substring on break name
	st, err := store.List(SessionFilters{BreakName: "sT"}, 50, 0)
	require.NoError(t, err)
	assert.Len(t, st, 2) // Strickland Bay, Stark Bay

	// Pagination
	page, err := store.List(SessionFilters{}, 2, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, 30.0, page[0].TotalScore)
	assert.Equal(t, -10.0, page[1].TotalScore)
}

func TestSessionStoreNotFound(t *testing.T) {
	store := NewSessionStore(newTestDB(t))

	_, err := store.Get(9999)
	assert.ErrorIs(t, err, ErrNotFound)

	err = store.Delete(9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionStoreDelete(t *testing.T) {
	store := NewSessionStore(newTestDB(t))

	session := makeSession("Transits", "North", 12)
	require.NoError(t, store.Create(&session))

	require.NoError(t, store.Delete(session.ID))
	_, err := store.Get(session.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecordStoreSaveAssignsID(t *testing.T) {
	store := NewRecordStore(newTestDB(t))

	record := models.Record{UserID: "user-a", Break: "Stark Bay", Publicity: models.PublicityPrivate}
	require.NoError(t, store.Save(&record))
	assert.NotEmpty(t, record.ID)
}

func TestRecordStoreOwnerScoping(t *testing.T) {
	store := NewRecordStore(newTestDB(t))

	record := models.Record{UserID: "user-a", Break: "Stark Bay", Publicity: models.PublicityPrivate, TotalScore: 20}
	require.NoError(t, store.Save(&record))

	// The owner sees it
	got, err := store.Get("user-a", record.ID)
	require.NoError(t, err)
	assert.Equal(t, "Stark Bay", got.Break)

	// Anyone else gets not-found, for every operation
	_, err = store.Get("user-b", record.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	update := models.Record{Break: "Hijacked"}
	assert.ErrorIs(t, store.Update("user-b", record.ID, &update), ErrNotFound)
	assert.ErrorIs(t, store.Delete("user-b", record.ID), ErrNotFound)

	others, err := store.ListForUser("user-b", "")
	require.NoError(t, err)
	assert.Empty(t, others)
}

func TestRecordStoreListPublicityFilter(t *testing.T) {
	store := NewRecordStore(newTestDB(t))

	for _, p := range []string{models.PublicityPrivate, models.PublicityPublic, models.PublicityPrivate} {
		r := models.Record{UserID: "user-a", Break: "Transits", Publicity: p}
		require.NoError(t, store.Save(&r))
	}

	private, err := store.ListForUser("user-a", models.PublicityPrivate)
	require.NoError(t, err)
	assert.Len(t, private, 2)

	all, err := store.ListForUser("user-a", "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestRecordStoreUpdateUnchangedValuesSucceeds(t *testing.T) {
	store := NewRecordStore(newTestDB(t))

	record := models.Record{UserID: "user-a", Break: "Strickland Bay", TotalScore: 54.0}
	require.NoError(t, store.Save(&record))

	// Resubmitting identical values changes no row data. That must not
	// read as not-found, regardless of how the driver counts rows.
	same := record
	require.NoError(t, store.Update("user-a", record.ID, &same))
	require.NoError(t, store.Update("user-a", record.ID, &same))

	got, err := store.Get("user-a", record.ID)
	require.NoError(t, err)
	assert.Equal(t, 54.0, got.TotalScore)
}

func TestRecordStoreUpdateKeepsSnapshotScore(t *testing.T) {
	store := NewRecordStore(newTestDB(t))

	record := models.Record{UserID: "user-a", Break: "The Box", TotalScore: 36.0, SwellScore: 20}
	require.NoError(t, store.Save(&record))

	// Changing a stored sub-score does not touch total_score: the
	// update writes exactly what the caller provides.
	update := record
	update.SwellScore = 90
	require.NoError(t, store.Update("user-a", record.ID, &update))

	got, err := store.Get("user-a", record.ID)
	require.NoError(t, err)
	assert.Equal(t, 90, got.SwellScore)
	assert.Equal(t, 36.0, got.TotalScore)
}
