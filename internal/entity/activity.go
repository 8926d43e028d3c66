package entity

import "time"

type ActivityType string

const (
	Follows  ActivityType = "follows"
	Likes    ActivityType = "likes"
	Replies  ActivityType = "replies"
	Mentions ActivityType = "mentions"
	Reposts  ActivityType = "reposts"
)

// Activity is one notification-worthy event. The composite unique index
// keeps at most one record per logical event: for follows the post id is
// always empty, so a (sender, receiver) pair can hold a single follow
// record; for post-scoped types the post id disambiguates.
//
// Rows are deleted outright when the event is retracted (e.g. unfollow), so
// the same logical event can occur again later without tripping the index.
type Activity struct {
	ID        string `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	SenderID string `gorm:"uniqueIndex:idx_activities_event"`
	Sender   User   `gorm:"foreignKey:SenderID"`

	ReceiverID string `gorm:"uniqueIndex:idx_activities_event"`
	Receiver   User   `gorm:"foreignKey:ReceiverID"`

	ActivityType    ActivityType `gorm:"uniqueIndex:idx_activities_event"`
	ActivityTitle   string
	ActivityMessage string
	PostID          string `gorm:"uniqueIndex:idx_activities_event;default:''"`

	IsRead bool
}
