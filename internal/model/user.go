package model

// Profile is the cacheable snapshot of a user's public profile. Followers,
// Following, and IsFollowing are derived from the follow graph at the time
// the snapshot was computed; the snapshot is disposable and never
// authoritative.
type Profile struct {
	UserID          string `json:"user_id"`
	Username        string `json:"username"`
	FullName        string `json:"full_name"`
	Bio             string `json:"bio"`
	ProfileImageURL string `json:"profile_image_url"`
	Following       int64  `json:"following"`
	Followers       int64  `json:"followers"`
	IsFollowing     bool   `json:"isFollowing"`
}

// UserListEntry is one row of a follower or following list. IsFollowing is
// relative to the caller who warmed the cache; see the staleness note on the
// list caches.
type UserListEntry struct {
	UserID          string `json:"user_id"`
	Username        string `json:"username"`
	FullName        string `json:"full_name"`
	ProfileImageURL string `json:"profile_image_url"`
	IsFollowing     bool   `json:"isFollowing"`
}

type GetUserRequest struct {
	Identifier string `uri:"identifier"`
}

type GetUserResponse struct {
	Message string  `json:"message,omitempty"`
	User    Profile `json:"user"`
}

type GetFollowersRequest struct {
	Username string `uri:"identifier"`
}

type GetFollowersResponse struct {
	Message   string          `json:"message,omitempty"`
	Followers []UserListEntry `json:"Follower,omitempty"`
}

type GetFollowingRequest struct {
	Username string `uri:"identifier"`
}

type GetFollowingResponse struct {
	Message   string          `json:"message,omitempty"`
	Following []UserListEntry `json:"Following,omitempty"`
}

type FollowUserRequest struct {
	Username string `uri:"identifier"`
}

type FollowUserResponse struct {
	Message string `json:"message"`
}

type CheckFollowRequest struct {
	Username string `uri:"identifier"`
}

type CheckFollowResponse struct {
	Message     string `json:"message"`
	IsFollowing bool   `json:"isFollowing"`
}
