package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/eventpass-app/eventpass-api/internal/clock"
	"github.com/eventpass-app/eventpass-api/internal/domain"
	"github.com/eventpass-app/eventpass-api/internal/pkg/entrycode"
	"github.com/eventpass-app/eventpass-api/internal/repository"
)

var (
	ErrParticipantNotFound = repository.ErrParticipantNotFound
	ErrEntryCodeTaken      = repository.ErrEntryCodeExists
)

// generateRetries bounds the regenerate-and-retry loop when a generated entry
// code or QR token hits the uniqueness constraint.
const generateRetries = 5

type ParticipantRepository interface {
	Create(ctx context.Context, participant domain.Participant) (domain.Participant, error)
	FindByEventID(ctx context.Context, eventID uint) ([]domain.Participant, error)
	FindByEntryCode(ctx context.Context, entryCode string) (domain.Participant, error)
	FindByQRToken(ctx context.Context, qrToken string) (domain.Participant, error)
	MarkEntered(ctx context.Context, id uint, enteredAt time.Time) (domain.Participant, error)
	Delete(ctx context.Context, id uint) error
}

type ParticipantService struct {
	repo      ParticipantRepository
	eventRepo EventRepository
	clock     clock.Clock
}

func NewParticipantService(repo ParticipantRepository, eventRepo EventRepository, clk clock.Clock) *ParticipantService {
	return &ParticipantService{
		repo:      repo,
		eventRepo: eventRepo,
		clock:     clk,
	}
}

// Register stores a new participant for an event. An admin-supplied entry code
// is normalized to the XXX-XXX-XXX-XXX form; without one a random code is
// generated. The QR token is derived from the event, the code and the
// registration instant. Uniqueness of both is a storage constraint; generated
// credentials are retried on conflict, supplied codes surface ErrEntryCodeTaken.
func (s *ParticipantService) Register(ctx context.Context, participant domain.Participant) (domain.Participant, error) {
	if _, err := s.eventRepo.FindByID(ctx, participant.EventID); err != nil {
		return domain.Participant{}, err
	}

	suppliedCode := participant.EntryCode != ""

	for attempt := 0; ; attempt++ {
		code := participant.EntryCode
		if suppliedCode {
			code = entrycode.Format(code)
		} else {
			generated, err := entrycode.Generate()
			if err != nil {
				return domain.Participant{}, fmt.Errorf("entrycode.Generate -> %w", err)
			}
			code = generated
		}

		candidate := participant
		candidate.EntryCode = code
		candidate.QRToken = entrycode.QRToken(participant.EventID, code, s.clock.Now())

		created, err := s.repo.Create(ctx, candidate)
		if err == nil {
			return created, nil
		}

		if errors.Is(err, repository.ErrEntryCodeExists) && suppliedCode {
			return domain.Participant{}, ErrEntryCodeTaken
		}

		retryable := errors.Is(err, repository.ErrEntryCodeExists) ||
			errors.Is(err, repository.ErrQRTokenExists)
		if !retryable || attempt >= generateRetries {
			return domain.Participant{}, fmt.Errorf("s.repo.Create -> %w", err)
		}
	}
}

func (s *ParticipantService) ListByEvent(ctx context.Context, eventID uint) ([]domain.Participant, error) {
	participants, err := s.repo.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByEventID -> %w", err)
	}

	return participants, nil
}

// GetByEntryCode returns the participant and their parent event.
func (s *ParticipantService) GetByEntryCode(ctx context.Context, code string) (domain.Participant, error) {
	participant, err := s.repo.FindByEntryCode(ctx, entrycode.Format(code))
	if err != nil {
		return domain.Participant{}, err
	}

	return participant, nil
}

// CheckIn applies the pending->entered transition for the participant matching
// the QR token. Scanning an already-entered participant is a read-only no-op
// that reports alreadyEntered without touching EnteredAt.
func (s *ParticipantService) CheckIn(ctx context.Context, qrToken string) (participant domain.Participant, alreadyEntered bool, err error) {
	participant, err = s.repo.FindByQRToken(ctx, qrToken)
	if err != nil {
		return domain.Participant{}, false, err
	}

	if participant.HasEntered {
		return participant, true, nil
	}

	participant, err = s.repo.MarkEntered(ctx, participant.ID, s.clock.Now())
	if err != nil {
		return domain.Participant{}, false, fmt.Errorf("s.repo.MarkEntered -> %w", err)
	}

	return participant, false, nil
}

func (s *ParticipantService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
