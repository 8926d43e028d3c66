package entity

import "time"

// Follow is a directed edge meaning "follower follows followed". Its
// existence is the source of truth for the relationship; rows are deleted
// outright on unfollow so the pair can be re-created later.
type Follow struct {
	CreatedAt time.Time
	UpdatedAt time.Time

	FollowerUserID string `gorm:"primaryKey"`
	FollowerUser   User   `gorm:"foreignKey:FollowerUserID"`

	FollowedUserID string `gorm:"primaryKey"`
	FollowedUser   User   `gorm:"foreignKey:FollowedUserID"`
}
