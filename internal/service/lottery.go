package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"github.com/eventpass-app/eventpass-api/internal/domain"
)

var (
	ErrNoCandidates       = errors.New("candidate list is empty")
	ErrInvalidWinnerCount = errors.New("winner count must be between 1 and the number of candidates")
)

type LotteryParticipantRepository interface {
	FindByIDs(ctx context.Context, ids []uint) ([]domain.Participant, error)
	DeleteAndReturnByIDs(ctx context.Context, ids []uint) ([]domain.Participant, error)
}

type LotteryService struct {
	repo LotteryParticipantRepository
}

func NewLotteryService(repo LotteryParticipantRepository) *LotteryService {
	return &LotteryService{
		repo: repo,
	}
}

// Draw selects winnerCount distinct winners from the candidate ids with a
// uniform Fisher-Yates shuffle over crypto/rand. When removeWinners is set,
// winner details are read and the rows deleted in one transaction, so the
// reported winners and the removed rows never diverge.
func (s *LotteryService) Draw(ctx context.Context, participantIDs []uint, winnerCount int, removeWinners bool) (domain.DrawResult, error) {
	if len(participantIDs) == 0 {
		return domain.DrawResult{}, ErrNoCandidates
	}
	if winnerCount < 1 || winnerCount > len(participantIDs) {
		return domain.DrawResult{}, ErrInvalidWinnerCount
	}

	shuffled := make([]uint, len(participantIDs))
	copy(shuffled, participantIDs)
	if err := shuffle(shuffled); err != nil {
		return domain.DrawResult{}, fmt.Errorf("shuffle -> %w", err)
	}
	winnerIDs := shuffled[:winnerCount]

	var (
		winners []domain.Participant
		err     error
	)
	if removeWinners {
		winners, err = s.repo.DeleteAndReturnByIDs(ctx, winnerIDs)
	} else {
		winners, err = s.repo.FindByIDs(ctx, winnerIDs)
	}
	if err != nil {
		return domain.DrawResult{}, fmt.Errorf("s.repo fetch winners -> %w", err)
	}

	return domain.DrawResult{
		Winners:     winners,
		WinnerCount: len(winners),
		Removed:     removeWinners,
	}, nil
}

// shuffle performs an in-place Fisher-Yates shuffle seeded from crypto/rand.
func shuffle(ids []uint) error {
	for i := len(ids) - 1; i > 0; i-- {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return err
		}
		j := int(n.Int64())
		ids[i], ids[j] = ids[j], ids[i]
	}

	return nil
}
