package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/eventpass-app/eventpass-api/internal/domain"
)

func TestEventService_CreateEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("activating a new event deactivates the rest", func(t *testing.T) {
		repo := newFakeEventRepo(domain.Event{ID: 1, Title: "Old Fair", IsActive: true})
		svc := NewEventService(repo)

		created, err := svc.CreateEvent(ctx, domain.Event{Title: "New Fair", IsActive: true})
		require.NoError(t, err)

		assert.True(t, created.IsActive)
		assert.False(t, repo.events[1].IsActive)
	})

	t.Run("inactive event leaves the active one alone", func(t *testing.T) {
		repo := newFakeEventRepo(domain.Event{ID: 1, Title: "Main Fair", IsActive: true})
		svc := NewEventService(repo)

		created, err := svc.CreateEvent(ctx, domain.Event{Title: "Side Event"})
		require.NoError(t, err)

		assert.False(t, created.IsActive)
		assert.True(t, repo.events[1].IsActive)
	})
}

func TestEventService_UpdateEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("activation moves between events", func(t *testing.T) {
		repo := newFakeEventRepo(
			domain.Event{ID: 1, Title: "Spring", IsActive: true},
			domain.Event{ID: 2, Title: "Summer"},
		)
		svc := NewEventService(repo)

		updated, err := svc.UpdateEvent(ctx, domain.Event{ID: 2, Title: "Summer", IsActive: true})
		require.NoError(t, err)

		assert.True(t, updated.IsActive)
		assert.False(t, repo.events[1].IsActive)
	})

	t.Run("unknown event", func(t *testing.T) {
		svc := NewEventService(newFakeEventRepo())

		_, err := svc.UpdateEvent(ctx, domain.Event{ID: 99, Title: "Ghost"})
		assert.ErrorIs(t, err, ErrEventNotFound)
	})
}

func TestEventService_ListEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("returns stored events", func(t *testing.T) {
		repo := newFakeEventRepo(
			domain.Event{ID: 1, Title: "Spring", Date: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)},
			domain.Event{ID: 2, Title: "Summer", Date: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)},
		)
		svc := NewEventService(repo)

		events, err := svc.ListEvents(ctx)
		require.NoError(t, err)
		assert.Len(t, events, 2)
	})

	t.Run("degrades to empty list when the store is unreachable", func(t *testing.T) {
		repo := newFakeEventRepo()
		repo.findAllErr = errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")
		svc := NewEventService(repo)

		events, err := svc.ListEvents(ctx)
		require.NoError(t, err)
		assert.Empty(t, events)
	})

	t.Run("query-level failures still bubble up", func(t *testing.T) {
		repo := newFakeEventRepo()
		repo.findAllErr = gorm.ErrInvalidDB
		svc := NewEventService(repo)

		_, err := svc.ListEvents(ctx)
		assert.ErrorIs(t, err, gorm.ErrInvalidDB)
	})
}

func TestEventService_GetEvent(t *testing.T) {
	ctx := context.Background()
	svc := NewEventService(newFakeEventRepo(domain.Event{ID: 1, Title: "Spring"}))

	event, err := svc.GetEvent(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Spring", event.Title)

	_, err = svc.GetEvent(ctx, 2)
	assert.ErrorIs(t, err, ErrEventNotFound)
}
