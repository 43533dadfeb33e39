package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventpass-app/eventpass-api/internal/domain"
)

type fakeLotteryRepo struct {
	participants map[uint]domain.Participant
}

func newFakeLotteryRepo(ids ...uint) *fakeLotteryRepo {
	repo := &fakeLotteryRepo{participants: make(map[uint]domain.Participant)}
	for _, id := range ids {
		repo.participants[id] = domain.Participant{ID: id, EventID: 1}
	}

	return repo
}

func (f *fakeLotteryRepo) FindByIDs(_ context.Context, ids []uint) ([]domain.Participant, error) {
	var out []domain.Participant
	for _, id := range ids {
		if p, ok := f.participants[id]; ok {
			out = append(out, p)
		}
	}

	return out, nil
}

func (f *fakeLotteryRepo) DeleteAndReturnByIDs(ctx context.Context, ids []uint) ([]domain.Participant, error) {
	out, err := f.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		delete(f.participants, id)
	}

	return out, nil
}

func TestLotteryService_Draw(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects empty candidate list", func(t *testing.T) {
		svc := NewLotteryService(newFakeLotteryRepo())

		_, err := svc.Draw(ctx, nil, 1, false)
		assert.ErrorIs(t, err, ErrNoCandidates)
	})

	t.Run("rejects out-of-range winner counts", func(t *testing.T) {
		svc := NewLotteryService(newFakeLotteryRepo(1, 2, 3))

		_, err := svc.Draw(ctx, []uint{1, 2, 3}, 0, false)
		assert.ErrorIs(t, err, ErrInvalidWinnerCount)

		_, err = svc.Draw(ctx, []uint{1, 2, 3}, 4, false)
		assert.ErrorIs(t, err, ErrInvalidWinnerCount)
	})

	t.Run("winners are distinct candidates", func(t *testing.T) {
		repo := newFakeLotteryRepo(1, 2, 3, 4, 5)
		svc := NewLotteryService(repo)

		result, err := svc.Draw(ctx, []uint{1, 2, 3, 4, 5}, 3, false)
		require.NoError(t, err)

		assert.Equal(t, 3, result.WinnerCount)
		assert.False(t, result.Removed)

		seen := make(map[uint]bool)
		for _, winner := range result.Winners {
			assert.False(t, seen[winner.ID], "winner %d drawn twice", winner.ID)
			seen[winner.ID] = true
		}
		assert.Len(t, repo.participants, 5)
	})

	t.Run("drawing everyone returns everyone", func(t *testing.T) {
		svc := NewLotteryService(newFakeLotteryRepo(1, 2, 3))

		result, err := svc.Draw(ctx, []uint{1, 2, 3}, 3, false)
		require.NoError(t, err)
		assert.Equal(t, 3, result.WinnerCount)
	})

	t.Run("removeWinners deletes exactly the winners", func(t *testing.T) {
		repo := newFakeLotteryRepo(1, 2, 3, 4)
		svc := NewLotteryService(repo)

		result, err := svc.Draw(ctx, []uint{1, 2, 3, 4}, 2, true)
		require.NoError(t, err)

		assert.True(t, result.Removed)
		assert.Equal(t, 2, result.WinnerCount)
		assert.Len(t, repo.participants, 2)
		for _, winner := range result.Winners {
			_, stillThere := repo.participants[winner.ID]
			assert.False(t, stillThere, "winner %d should have been removed", winner.ID)
		}
	})

	t.Run("single candidate always wins", func(t *testing.T) {
		svc := NewLotteryService(newFakeLotteryRepo(9))

		result, err := svc.Draw(ctx, []uint{9}, 1, false)
		require.NoError(t, err)
		require.Len(t, result.Winners, 1)
		assert.Equal(t, uint(9), result.Winners[0].ID)
	})
}

func TestShuffle(t *testing.T) {
	ids := []uint{1, 2, 3, 4, 5, 6, 7, 8}
	require.NoError(t, shuffle(ids))

	seen := make(map[uint]bool)
	for _, id := range ids {
		seen[id] = true
	}
	assert.Len(t, seen, 8, "shuffle must permute, not drop or duplicate")
}
