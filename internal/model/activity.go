package model

type Activity struct {
	Username        string `json:"username"`
	ProfileImageURL string `json:"profile_image_url"`
	ActivityType    string `json:"activity_type"`
	ActivityTitle   string `json:"activity_title"`
	ActivityMessage string `json:"activity_message,omitempty"`
	PostID          string `json:"post_id,omitempty"`
	CreatedAt       string `json:"createdAt"`
	IsRead          bool   `json:"is_read"`

	// Rendered is the presenter's one-line summary of the activity; TimeAgo
	// is the single-unit relative age label. Both are empty for activity
	// types the presenter does not recognize.
	Rendered string `json:"rendered,omitempty"`
	TimeAgo  string `json:"time_ago,omitempty"`
}

type GetActivitiesRequest struct{}

type GetActivitiesResponse struct {
	Activities []Activity `json:"activities"`
}

type MarkAllActivitiesReadRequest struct{}

type MarkAllActivitiesReadResponse struct {
	Message string `json:"message"`
}
