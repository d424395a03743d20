package domain

import "time"

// Roles recognised by the admin surface. Ordering for guard checks is
// super_admin > admin > everything else.
const (
	RoleUser       = "user"
	RoleModerator  = "moderator"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
	RoleEnterprise = "enterprise"
)

const (
	TwoFactorMethodTOTP  = "totp"
	TwoFactorMethodEmail = "email"
)

type Account struct {
	ID               string
	Email            string
	PasswordHash     string
	Role             string
	TwoFactorEnabled bool
	TwoFactorMethod  string
	TOTPSecret       string
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsAdmin reports whether the account may enter the admin surface at all.
func (a *Account) IsAdmin() bool {
	return a.Role == RoleAdmin || a.Role == RoleSuperAdmin
}

// RoleRank maps a role name onto the guard ordering. Unknown roles rank
// lowest, so a mistyped role can never satisfy a guard.
func RoleRank(role string) int {
	switch role {
	case RoleSuperAdmin:
		return 2
	case RoleAdmin:
		return 1
	default:
		return 0
	}
}
