package dto

// Identity is the resolved caller of a guarded request, re-derived from the
// account row rather than the token claims.
type Identity struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}
