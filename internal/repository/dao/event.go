package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrEventNotFound = errors.New("event not found")

type Event struct {
	ID            uint      `gorm:"primaryKey"`
	Title         string    `gorm:"not null"`
	Description   string
	Date          time.Time `gorm:"not null;index"`
	Location      string
	LocationURL   string
	ImageURL      string
	GalleryImages []string `gorm:"serializer:json"`
	IsActive      bool     `gorm:"not null;default:false;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type EventDAO struct {
	db *gorm.DB
}

func NewEventDAO(db *gorm.DB) *EventDAO {
	return &EventDAO{
		db: db,
	}
}

func (d *EventDAO) FindAll(ctx context.Context) ([]Event, error) {
	var events []Event

	result := d.db.WithContext(ctx).Order("date ASC").Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

func (d *EventDAO) FindByID(ctx context.Context, id uint) (Event, error) {
	var event Event

	result := d.db.WithContext(ctx).First(&event, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Event{}, ErrEventNotFound
		}

		return Event{}, result.Error
	}

	return event, nil
}

// Insert creates the event. When the event is active, every other event is
// deactivated in the same transaction so at most one event stays active.
func (d *EventDAO) Insert(ctx context.Context, event Event) (Event, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if event.IsActive {
			if err := tx.Model(&Event{}).
				Where("is_active = ?", true).
				Update("is_active", false).Error; err != nil {
				return err
			}
		}

		return tx.Create(&event).Error
	})
	if err != nil {
		return Event{}, err
	}

	return event, nil
}

// Update overwrites the stored event with the given one, holding the
// single-active invariant inside one transaction.
func (d *EventDAO) Update(ctx context.Context, event Event) (Event, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing Event
		if err := tx.First(&existing, event.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEventNotFound
			}
			return err
		}

		if event.IsActive {
			if err := tx.Model(&Event{}).
				Where("id <> ? AND is_active = ?", event.ID, true).
				Update("is_active", false).Error; err != nil {
				return err
			}
		}

		event.CreatedAt = existing.CreatedAt

		return tx.Save(&event).Error
	})
	if err != nil {
		return Event{}, err
	}

	return event, nil
}
