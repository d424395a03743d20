package dto

import "time"

type SessionOutput struct {
	ID                string    `json:"id"`
	UserID            string    `json:"user_id"`
	Email             string    `json:"email"`
	Role              string    `json:"role"`
	DeviceFingerprint string    `json:"device_fingerprint,omitempty"`
	IPAddress         string    `json:"ip_address"`
	UserAgent         string    `json:"user_agent"`
	GeoLocation       string    `json:"geo_location,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	ExpiresAt         time.Time `json:"expires_at"`
	LastActivity      time.Time `json:"last_activity"`
}

type TerminateSessionInput struct {
	SessionID string `json:"sessionId"`
	Reason    string `json:"reason"`
}

type RefreshInput struct {
	RefreshToken string `json:"-"`
	IPAddress    string `json:"-"`
	UserAgent    string `json:"-"`
}

type TokenPair struct {
	SessionToken string `json:"-"`
	RefreshToken string `json:"-"`
}

type LogoutInput struct {
	AllDevices *bool `json:"allDevices"`
}
