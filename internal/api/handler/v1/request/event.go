package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type SaveEventRequest struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Date          string   `json:"date" format:"RFC3339"`
	Location      string   `json:"location"`
	LocationURL   string   `json:"location_url"`
	ImageURL      string   `json:"image_url"`
	GalleryImages []string `json:"gallery_images"`
	IsActive      bool     `json:"is_active"`
}

func (req *SaveEventRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Description, validation.Length(0, 2000)),
		validation.Field(&req.Date, validation.Required),
		validation.Field(&req.Location, validation.Length(0, 200)),
		validation.Field(&req.LocationURL, is.URL),
		validation.Field(&req.ImageURL, is.URL),
		validation.Field(&req.GalleryImages, validation.Each(is.URL)),
	)
}
