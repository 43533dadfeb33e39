package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrParticipantNotFound = errors.New("participant not found")
	ErrEntryCodeExists     = errors.New("entry code already exists")
	ErrQRTokenExists       = errors.New("qr token already exists")
)

type Participant struct {
	ID         uint   `gorm:"primaryKey"`
	EventID    uint   `gorm:"not null;index"`
	Event      Event  `gorm:"foreignKey:EventID"`
	Name       string `gorm:"not null"`
	Phone      string
	EntryCode  string `gorm:"uniqueIndex:idx_participants_entry_code;not null"`
	QRToken    string `gorm:"column:qr_token;uniqueIndex:idx_participants_qr_token;not null"`
	HasEntered bool   `gorm:"not null;default:false"`
	EnteredAt  *time.Time
	CreatedAt  time.Time `gorm:"not null"`
}

type ParticipantDAO struct {
	db *gorm.DB
}

func NewParticipantDAO(db *gorm.DB) *ParticipantDAO {
	return &ParticipantDAO{
		db: db,
	}
}

func (d *ParticipantDAO) Insert(ctx context.Context, participant Participant) (Participant, error) {
	result := d.db.WithContext(ctx).Create(&participant)
	if result.Error != nil {
		if isUniqueViolation(result.Error, "idx_participants_entry_code") {
			return Participant{}, ErrEntryCodeExists
		}
		if isUniqueViolation(result.Error, "idx_participants_qr_token") {
			return Participant{}, ErrQRTokenExists
		}

		return Participant{}, result.Error
	}

	return participant, nil
}

func (d *ParticipantDAO) FindByEventID(ctx context.Context, eventID uint) ([]Participant, error) {
	var participants []Participant

	result := d.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("created_at DESC").
		Find(&participants)
	if result.Error != nil {
		return nil, result.Error
	}

	return participants, nil
}

func (d *ParticipantDAO) FindByEntryCode(ctx context.Context, entryCode string) (Participant, error) {
	var participant Participant

	result := d.db.WithContext(ctx).
		Preload("Event").
		First(&participant, "entry_code = ?", entryCode)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Participant{}, ErrParticipantNotFound
		}

		return Participant{}, result.Error
	}

	return participant, nil
}

func (d *ParticipantDAO) FindByQRToken(ctx context.Context, qrToken string) (Participant, error) {
	var participant Participant

	result := d.db.WithContext(ctx).First(&participant, "qr_token = ?", qrToken)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Participant{}, ErrParticipantNotFound
		}

		return Participant{}, result.Error
	}

	return participant, nil
}

// MarkEntered flips the participant to entered in a single update and returns
// the updated row.
func (d *ParticipantDAO) MarkEntered(ctx context.Context, id uint, enteredAt time.Time) (Participant, error) {
	result := d.db.WithContext(ctx).
		Model(&Participant{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"has_entered": true,
			"entered_at":  enteredAt,
		})
	if result.Error != nil {
		return Participant{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Participant{}, ErrParticipantNotFound
	}

	var participant Participant
	if err := d.db.WithContext(ctx).First(&participant, id).Error; err != nil {
		return Participant{}, err
	}

	return participant, nil
}

func (d *ParticipantDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Participant{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrParticipantNotFound
	}

	return nil
}

func (d *ParticipantDAO) FindByIDs(ctx context.Context, ids []uint) ([]Participant, error) {
	var participants []Participant

	result := d.db.WithContext(ctx).Where("id IN ?", ids).Find(&participants)
	if result.Error != nil {
		return nil, result.Error
	}

	return participants, nil
}

// DeleteAndReturnByIDs fetches the matching rows and deletes them inside one
// transaction, so a draw never reports winners it failed to remove.
func (d *ParticipantDAO) DeleteAndReturnByIDs(ctx context.Context, ids []uint) ([]Participant, error) {
	var participants []Participant

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id IN ?", ids).Find(&participants).Error; err != nil {
			return err
		}

		return tx.Where("id IN ?", ids).Delete(&Participant{}).Error
	})
	if err != nil {
		return nil, err
	}

	return participants, nil
}
