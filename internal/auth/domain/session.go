package domain

import "time"

const (
	TerminationReasonUserLogout      = "user_logout"
	TerminationReasonAdminTerminated = "admin_terminated"
	TerminationReasonExpired         = "expired"
)

// Session is one authenticated browser/device context. Tokens are never
// stored in plaintext; only their keyed hashes are persisted.
type Session struct {
	ID                string
	AccountID         string
	SessionTokenHash  string
	RefreshTokenHash  string
	DeviceFingerprint string
	IPAddress         string
	UserAgent         string
	GeoLocation       string
	CreatedAt         time.Time
	ExpiresAt         time.Time
	RefreshExpiresAt  time.Time
	LastActivity      time.Time
	IsActive          bool
	TerminatedAt      *time.Time
	TerminatedBy      string
	TerminationReason string
}

// ActiveSession is a Session joined with its owner for the admin listing.
type ActiveSession struct {
	Session
	AccountEmail string
	AccountRole  string
}

// Login/2FA attempt failure reasons.
const (
	FailureInvalidCredentials = "invalid_credentials"
	FailureAccessDenied       = "access_denied"
	FailureTwoFactorRequired  = "2fa_required"
	FailureInvalidTwoFactor   = "invalid_2fa_code"
)

// LoginAttempt is an append-only record of one login or 2FA step.
type LoginAttempt struct {
	ID                string
	Email             string
	AccountID         string
	Success           bool
	FailureReason     string
	IPAddress         string
	UserAgent         string
	DeviceFingerprint string
	TwoFactorMethod   string
	TwoFactorSuccess  *bool
	SessionID         string
	AttemptTime       time.Time
}

// AuditEntry is a fire-and-forget audit-log side effect.
type AuditEntry struct {
	ActorID      string
	Action       string
	ResourceType string
	ResourceID   string
	Details      map[string]any
	IPAddress    string
	UserAgent    string
	Severity     string
	Success      bool
}
