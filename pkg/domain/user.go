package domain

// UserReference is the lightweight handle on a repository user that is
// kept in the session instead of the full user.
type UserReference struct {
	UserID int64 `json:"userId"`
}

// User is a repository user.
type User struct {
	ID    int64  `json:"id"`
	Login string `json:"login"`
	Email string `json:"email"`
}

// ReferenceUser is an authenticated principal that only carries a
// UserReference until the full User is loaded later in the request
// lifecycle.
type ReferenceUser interface {
	Reference() UserReference
	// APIUser returns the resolved user. It must emit a
	// UserNotResolvedError until the user has been loaded.
	APIUser() (User, error)
}
