package domain

import "time"

type Event struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Date          time.Time `json:"date"`
	Location      string    `json:"location"`
	LocationURL   string    `json:"location_url"`
	ImageURL      string    `json:"image_url"`
	GalleryImages []string  `json:"gallery_images"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
