package models

import "time"

// LocatedRecord is a single captured GPS position. Country and Region are authoritative when set;
// otherwise they are derived from the coordinates.
type LocatedRecord struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Country    string    `json:"country,omitempty"`
	Region     string    `json:"region,omitempty"`
	Address    string    `json:"address,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	CapturedAt time.Time `json:"captured_at"`
}

// Place is a gazetteer entry used to reverse geocode a captured position.
type Place struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Locality  string  `json:"locality"`
	Region    string  `json:"region"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CaptureRequest is the payload of a new capture. Coordinates are pointers so that
// a missing value can be told apart from 0.
type CaptureRequest struct {
	Latitude   *float64   `json:"latitude" binding:"required"`
	Longitude  *float64   `json:"longitude" binding:"required"`
	Country    string     `json:"country"`
	Region     string     `json:"region"`
	Notes      string     `json:"notes"`
	CapturedAt *time.Time `json:"captured_at"`
}
