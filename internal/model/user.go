package model

// User is the payload returned by the user creation endpoint.
type User struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
}
