package bookinfo

import (
	"time"
)

// Genre is static reference data; every BookInfo points at one.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// BookInfo is the canonical catalog record, unique per provider id.
type BookInfo struct {
	ID          string    `json:"id"`
	ProviderID  string    `json:"provider_id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Publisher   string    `json:"publisher"`
	PublishDate string    `json:"publish_date"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	PageCount   int       `json:"page_count"`
	ImgPath     string    `json:"img_path"`
	Language    string    `json:"language"`
	GenreID     int64     `json:"genre_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// ListItem is one provider search hit. Nil pointers and a nil Authors
// slice mean the provider sent no value.
type ListItem struct {
	Title         *string  `json:"title"`
	Authors       []string `json:"authors"`
	ThumbnailPath *string  `json:"thumbnail_path"`
	ProviderID    string   `json:"provider_id"`
}

// Detail is the basic information of one provider volume.
type Detail struct {
	Subtitle      *string  `json:"subtitle"`
	Publisher     *string  `json:"publisher"`
	PublishedYear *int     `json:"published_year"`
	Description   *string  `json:"description"`
	PageCount     int      `json:"page_count"`
	Categories    []string `json:"categories"`
	Language      *string  `json:"language"`
}

// SaveRequest carries already parsed provider fields to persist.
type SaveRequest struct {
	ProviderID  string   `json:"provider_id" validate:"required"`
	Title       string   `json:"title" validate:"required"`
	Authors     []string `json:"authors"`
	Publisher   string   `json:"publisher"`
	PublishDate string   `json:"publish_date"`
	Description string   `json:"description"`
	Category    []string `json:"category"`
	PageCount   int      `json:"page_count" validate:"gte=0"`
	ImgPath     string   `json:"img_path"`
	Language    string   `json:"language"`
}
