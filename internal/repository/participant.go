package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/eventpass-app/eventpass-api/internal/domain"
	"github.com/eventpass-app/eventpass-api/internal/repository/dao"
)

var (
	ErrParticipantNotFound = dao.ErrParticipantNotFound
	ErrEntryCodeExists     = dao.ErrEntryCodeExists
	ErrQRTokenExists       = dao.ErrQRTokenExists
)

type ParticipantDAO interface {
	Insert(ctx context.Context, participant dao.Participant) (dao.Participant, error)
	FindByEventID(ctx context.Context, eventID uint) ([]dao.Participant, error)
	FindByEntryCode(ctx context.Context, entryCode string) (dao.Participant, error)
	FindByQRToken(ctx context.Context, qrToken string) (dao.Participant, error)
	MarkEntered(ctx context.Context, id uint, enteredAt time.Time) (dao.Participant, error)
	Delete(ctx context.Context, id uint) error
	FindByIDs(ctx context.Context, ids []uint) ([]dao.Participant, error)
	DeleteAndReturnByIDs(ctx context.Context, ids []uint) ([]dao.Participant, error)
}

type ParticipantRepository struct {
	dao ParticipantDAO
}

func NewParticipantRepository(dao ParticipantDAO) *ParticipantRepository {
	return &ParticipantRepository{
		dao: dao,
	}
}

func (r *ParticipantRepository) domainToDao(p domain.Participant) dao.Participant {
	return dao.Participant{
		ID:         p.ID,
		EventID:    p.EventID,
		Name:       p.Name,
		Phone:      p.Phone,
		EntryCode:  p.EntryCode,
		QRToken:    p.QRToken,
		HasEntered: p.HasEntered,
		EnteredAt:  p.EnteredAt,
		CreatedAt:  p.CreatedAt,
	}
}

func (r *ParticipantRepository) daoToDomain(p dao.Participant) domain.Participant {
	participant := domain.Participant{
		ID:         p.ID,
		EventID:    p.EventID,
		Name:       p.Name,
		Phone:      p.Phone,
		EntryCode:  p.EntryCode,
		QRToken:    p.QRToken,
		HasEntered: p.HasEntered,
		EnteredAt:  p.EnteredAt,
		CreatedAt:  p.CreatedAt,
	}

	if p.Event.ID != 0 {
		event := domain.Event{
			ID:            p.Event.ID,
			Title:         p.Event.Title,
			Description:   p.Event.Description,
			Date:          p.Event.Date,
			Location:      p.Event.Location,
			LocationURL:   p.Event.LocationURL,
			ImageURL:      p.Event.ImageURL,
			GalleryImages: p.Event.GalleryImages,
			IsActive:      p.Event.IsActive,
			CreatedAt:     p.Event.CreatedAt,
			UpdatedAt:     p.Event.UpdatedAt,
		}
		participant.Event = &event
	}

	return participant
}

func (r *ParticipantRepository) daosToDomain(participantsDAO []dao.Participant) []domain.Participant {
	participants := make([]domain.Participant, len(participantsDAO))
	for i, participantDAO := range participantsDAO {
		participants[i] = r.daoToDomain(participantDAO)
	}

	return participants
}

func (r *ParticipantRepository) Create(ctx context.Context, participant domain.Participant) (domain.Participant, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(participant))
	if err != nil {
		return domain.Participant{}, err
	}

	return r.daoToDomain(created), nil
}

func (r *ParticipantRepository) FindByEventID(ctx context.Context, eventID uint) ([]domain.Participant, error) {
	participantsDAO, err := r.dao.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByEventID -> %w", err)
	}

	return r.daosToDomain(participantsDAO), nil
}

func (r *ParticipantRepository) FindByEntryCode(ctx context.Context, entryCode string) (domain.Participant, error) {
	participant, err := r.dao.FindByEntryCode(ctx, entryCode)
	if err != nil {
		return domain.Participant{}, err
	}

	return r.daoToDomain(participant), nil
}

func (r *ParticipantRepository) FindByQRToken(ctx context.Context, qrToken string) (domain.Participant, error) {
	participant, err := r.dao.FindByQRToken(ctx, qrToken)
	if err != nil {
		return domain.Participant{}, err
	}

	return r.daoToDomain(participant), nil
}

func (r *ParticipantRepository) MarkEntered(ctx context.Context, id uint, enteredAt time.Time) (domain.Participant, error) {
	participant, err := r.dao.MarkEntered(ctx, id, enteredAt)
	if err != nil {
		return domain.Participant{}, err
	}

	return r.daoToDomain(participant), nil
}

func (r *ParticipantRepository) Delete(ctx context.Context, id uint) error {
	return r.dao.Delete(ctx, id)
}

func (r *ParticipantRepository) FindByIDs(ctx context.Context, ids []uint) ([]domain.Participant, error) {
	participantsDAO, err := r.dao.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByIDs -> %w", err)
	}

	return r.daosToDomain(participantsDAO), nil
}

func (r *ParticipantRepository) DeleteAndReturnByIDs(ctx context.Context, ids []uint) ([]domain.Participant, error) {
	participantsDAO, err := r.dao.DeleteAndReturnByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("r.dao.DeleteAndReturnByIDs -> %w", err)
	}

	return r.daosToDomain(participantsDAO), nil
}
