package dao_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/eventpass-app/eventpass-api/internal/repository/dao"
	"github.com/eventpass-app/eventpass-api/internal/testutil"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	return testutil.StartPostgres(t)
}

func TestEventDAO_SingleActive(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	eventDAO := dao.NewEventDAO(db)

	first, err := eventDAO.Insert(ctx, dao.Event{
		Title:    "Spring Fair",
		Date:     time.Date(2026, 4, 1, 18, 0, 0, 0, time.UTC),
		IsActive: true,
	})
	require.NoError(t, err)
	require.True(t, first.IsActive)

	second, err := eventDAO.Insert(ctx, dao.Event{
		Title:    "Summer Fair",
		Date:     time.Date(2026, 7, 1, 18, 0, 0, 0, time.UTC),
		IsActive: true,
	})
	require.NoError(t, err)
	require.True(t, second.IsActive)

	events, err := eventDAO.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, events, 2)

	var activeCount int
	for _, e := range events {
		if e.IsActive {
			activeCount++
		}
	}
	assert.Equal(t, 1, activeCount)

	// Moving the flag back via update deactivates the other event.
	first.IsActive = true
	_, err = eventDAO.Update(ctx, first)
	require.NoError(t, err)

	reloaded, err := eventDAO.FindByID(ctx, second.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.IsActive)
}

func TestEventDAO_UpdatePreservesCreatedAt(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	eventDAO := dao.NewEventDAO(db)

	created, err := eventDAO.Insert(ctx, dao.Event{
		Title: "Spring Fair",
		Date:  time.Date(2026, 4, 1, 18, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	created.Title = "Spring Fair 2026"
	updated, err := eventDAO.Update(ctx, created)
	require.NoError(t, err)

	assert.Equal(t, "Spring Fair 2026", updated.Title)
	assert.WithinDuration(t, created.CreatedAt, updated.CreatedAt, time.Millisecond)
}

func TestParticipantDAO_UniqueConstraints(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	eventDAO := dao.NewEventDAO(db)
	participantDAO := dao.NewParticipantDAO(db)

	event, err := eventDAO.Insert(ctx, dao.Event{
		Title: "Spring Fair",
		Date:  time.Date(2026, 4, 1, 18, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	_, err = participantDAO.Insert(ctx, dao.Participant{
		EventID:   event.ID,
		Name:      "Alice",
		EntryCode: "AAA-BBB-CCC-DDD",
		QRToken:   "0123456789abcdef0123456789abcdef",
	})
	require.NoError(t, err)

	_, err = participantDAO.Insert(ctx, dao.Participant{
		EventID:   event.ID,
		Name:      "Bob",
		EntryCode: "AAA-BBB-CCC-DDD",
		QRToken:   "ffffffffffffffffffffffffffffffff",
	})
	assert.ErrorIs(t, err, dao.ErrEntryCodeExists)

	_, err = participantDAO.Insert(ctx, dao.Participant{
		EventID:   event.ID,
		Name:      "Carol",
		EntryCode: "EEE-FFF-GGG-HHH",
		QRToken:   "0123456789abcdef0123456789abcdef",
	})
	assert.ErrorIs(t, err, dao.ErrQRTokenExists)
}

func TestParticipantDAO_MarkEntered(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	eventDAO := dao.NewEventDAO(db)
	participantDAO := dao.NewParticipantDAO(db)

	event, err := eventDAO.Insert(ctx, dao.Event{
		Title: "Spring Fair",
		Date:  time.Date(2026, 4, 1, 18, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	created, err := participantDAO.Insert(ctx, dao.Participant{
		EventID:   event.ID,
		Name:      "Alice",
		EntryCode: "AAA-BBB-CCC-DDD",
		QRToken:   "0123456789abcdef0123456789abcdef",
	})
	require.NoError(t, err)
	require.False(t, created.HasEntered)

	enteredAt := time.Date(2026, 4, 1, 18, 30, 0, 0, time.UTC)
	entered, err := participantDAO.MarkEntered(ctx, created.ID, enteredAt)
	require.NoError(t, err)

	assert.True(t, entered.HasEntered)
	require.NotNil(t, entered.EnteredAt)
	assert.WithinDuration(t, enteredAt, *entered.EnteredAt, time.Millisecond)

	_, err = participantDAO.MarkEntered(ctx, 9999, enteredAt)
	assert.ErrorIs(t, err, dao.ErrParticipantNotFound)
}

func TestParticipantDAO_FindByEntryCodePreloadsEvent(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	eventDAO := dao.NewEventDAO(db)
	participantDAO := dao.NewParticipantDAO(db)

	event, err := eventDAO.Insert(ctx, dao.Event{
		Title: "Spring Fair",
		Date:  time.Date(2026, 4, 1, 18, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	_, err = participantDAO.Insert(ctx, dao.Participant{
		EventID:   event.ID,
		Name:      "Alice",
		EntryCode: "AAA-BBB-CCC-DDD",
		QRToken:   "0123456789abcdef0123456789abcdef",
	})
	require.NoError(t, err)

	found, err := participantDAO.FindByEntryCode(ctx, "AAA-BBB-CCC-DDD")
	require.NoError(t, err)
	assert.Equal(t, "Spring Fair", found.Event.Title)
}

func TestParticipantDAO_DeleteAndReturnByIDs(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	eventDAO := dao.NewEventDAO(db)
	participantDAO := dao.NewParticipantDAO(db)

	event, err := eventDAO.Insert(ctx, dao.Event{
		Title: "Spring Fair",
		Date:  time.Date(2026, 4, 1, 18, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	var ids []uint
	for _, name := range []string{"Alice", "Bob", "Carol"} {
		code, token := name[:1], name[:1]
		created, err := participantDAO.Insert(ctx, dao.Participant{
			EventID:   event.ID,
			Name:      name,
			EntryCode: code + "AA-BBB-CCC-DDD",
			QRToken:   "0123456789abcdef0123456789abcde" + token,
		})
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}

	removed, err := participantDAO.DeleteAndReturnByIDs(ctx, ids[:2])
	require.NoError(t, err)
	assert.Len(t, removed, 2)

	remaining, err := participantDAO.FindByEventID(ctx, event.ID)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "Carol", remaining[0].Name)
}

func TestSettingDAO_Upsert(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	settingDAO := dao.NewSettingDAO(db)

	_, err := settingDAO.Upsert(ctx, dao.Setting{
		Key:       "welcome_message",
		Value:     "See you at the gate",
		UpdatedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	_, err = settingDAO.Upsert(ctx, dao.Setting{
		Key:       "welcome_message",
		Value:     "Doors open at 6pm",
		UpdatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	stored, err := settingDAO.FindByKey(ctx, "welcome_message")
	require.NoError(t, err)
	assert.Equal(t, "Doors open at 6pm", stored.Value)

	all, err := settingDAO.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = settingDAO.FindByKey(ctx, "missing")
	assert.ErrorIs(t, err, dao.ErrSettingNotFound)
}
