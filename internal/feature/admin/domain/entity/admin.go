// Package entity defines the read models of the admin feature.
package entity

import (
	"time"

	authentity "bookmark_backend/internal/feature/auth/domain/entity"
)

// UserSummary is a user together with how much they own.
type UserSummary struct {
	authentity.User

	LinkCount     int64
	CategoryCount int64
}

// Stats are system-wide aggregates.
type Stats struct {
	TotalUsers      int64
	TotalLinks      int64
	TotalCategories int64

	// RecentUsers holds the newest accounts, newest first.
	RecentUsers []RecentUser

	// TopLinks holds the most clicked links across all users.
	TopLinks []TopLink
}

type RecentUser struct {
	ID        uint
	Name      string
	Email     string
	CreatedAt time.Time
}

type TopLink struct {
	ID     uint
	Title  string
	URL    string
	Clicks int64
}

// StatsListSize bounds RecentUsers and TopLinks.
const StatsListSize = 5
