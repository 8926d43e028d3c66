package model

import (
	"time"

	"github.com/strandsapp/backend/internal/entity"
)

const DefaultTimeLayout string = time.RFC3339Nano

func ConvertUserListEntry(user *entity.User, isFollowing bool) UserListEntry {
	if user == nil {
		return UserListEntry{}
	}

	return UserListEntry{
		UserID:          user.ID,
		Username:        user.Username,
		FullName:        user.FullName,
		ProfileImageURL: user.ProfileImageURL,
		IsFollowing:     isFollowing,
	}
}

func ConvertActivity(
	activity *entity.Activity, sender *entity.User, rendered, timeAgo string,
) Activity {
	if activity == nil {
		return Activity{}
	}

	result := Activity{
		ActivityType:    string(activity.ActivityType),
		ActivityTitle:   activity.ActivityTitle,
		ActivityMessage: activity.ActivityMessage,
		PostID:          activity.PostID,
		CreatedAt:       activity.CreatedAt.Format(DefaultTimeLayout),
		IsRead:          activity.IsRead,
		Rendered:        rendered,
		TimeAgo:         timeAgo,
	}

	if sender != nil {
		result.Username = sender.Username
		result.ProfileImageURL = sender.ProfileImageURL
	}

	return result
}
