package domain

import "time"

// Room describes a bookable room type shown on the marketing site.
type Room struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	Name          string    `json:"name" bson:"name"`
	Type          string    `json:"type" bson:"type"`
	Description   string    `json:"description" bson:"description"`
	PricePerNight float64   `json:"price_per_night" bson:"price_per_night"`
	Capacity      int       `json:"capacity" bson:"capacity"`
	Amenities     []string  `json:"amenities,omitempty" bson:"amenities,omitempty"`
	ImageURL      string    `json:"image_url,omitempty" bson:"image_url,omitempty"`
	Available     bool      `json:"available" bson:"available"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" bson:"updated_at"`
}

// GalleryItem is a single image in the site gallery.
type GalleryItem struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Title       string    `json:"title" bson:"title"`
	Category    string    `json:"category" bson:"category"`
	ImageURL    string    `json:"image_url" bson:"image_url"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	SortOrder   int       `json:"sort_order" bson:"sort_order"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}
