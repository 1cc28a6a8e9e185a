package models

import "time"

// Project is a single portfolio entry.
// Tech and Images are ordered; the first image is the cover shown on the site.
type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Tech        []string  `json:"tech"`
	GitHub      string    `json:"github,omitempty"`
	Live        string    `json:"live,omitempty"`
	LegacyImage string    `json:"-"` // old single-image column; folded into Images on read
	Images      []string  `json:"images"`
	CreatedAt   time.Time `json:"createdAt"`
}
