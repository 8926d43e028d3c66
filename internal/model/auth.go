package model

// AccessToken is the object embedded in the JWT carried by every
// authenticated request. Token issuance itself lives in the identity
// service; this backend only verifies.
type AccessToken struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}
