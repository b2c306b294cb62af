// Package entity defines the domain entities for the links feature.
package entity

import "time"

// Link is a saved bookmark.
type Link struct {
	ID          uint
	Title       string
	URL         string
	Description *string
	Favicon     *string
	IsFavorite  bool

	// Clicks starts at zero and only ever grows by one.
	Clicks int64

	UserID     uint
	CategoryID *uint

	// Category is the summary of CategoryID, filled on reads.
	Category *CategoryRef

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CategoryRef is the part of a category embedded in link responses.
type CategoryRef struct {
	ID    uint
	Name  string
	Color string
}

// ListFilter narrows a link listing. Zero values mean no filter.
type ListFilter struct {
	CategoryID    *uint
	FavoritesOnly bool

	// Search is matched case-insensitively as a substring of the title,
	// description or URL.
	Search string
}
