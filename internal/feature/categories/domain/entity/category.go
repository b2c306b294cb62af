// Package entity defines the domain entities for the categories feature.
package entity

import "time"

// DefaultColor is used when a category is created without a color.
const DefaultColor = "#3B82F6"

// Category groups links. Names are unique per owner.
type Category struct {
	ID     uint
	Name   string
	Color  string
	UserID uint

	// LinkCount is the number of links in the category. It is filled on reads.
	LinkCount int64

	CreatedAt time.Time
	UpdatedAt time.Time
}
