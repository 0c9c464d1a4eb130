package constants

// ContextKeyUserID is the gin context key holding the authenticated user's ID.
const ContextKeyUserID = "user_id"

// Pagination bounds for list endpoints.
const (
	DefaultPageLimit = 100
	MaxPageLimit     = 200
)
