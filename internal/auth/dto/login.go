package dto

type LoginInput struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	DeviceFingerprint string `json:"deviceFingerprint"`
	IPAddress         string `json:"-"`
	UserAgent         string `json:"-"`
}

type VerifyTwoFactorInput struct {
	Email             string `json:"email"`
	TwoFactorCode     string `json:"twoFactorCode"`
	DeviceFingerprint string `json:"deviceFingerprint"`
	IPAddress         string `json:"-"`
	UserAgent         string `json:"-"`
}

// LoginResult is either a 2FA challenge or an established session. When
// TwoFactorRequired is set, no session exists yet and the token fields are
// empty.
type LoginResult struct {
	TwoFactorRequired bool
	TwoFactorMethod   string
	SessionID         string
	SessionToken      string
	RefreshToken      string
}
