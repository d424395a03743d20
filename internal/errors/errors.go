package errors

import (
	"errors"
)

var (
	ErrInvalidCredentials         = errors.New("invalid email or password")
	ErrAccessDenied               = errors.New("access denied, admin privileges required")
	ErrTwoFactorRequired          = errors.New("two-factor verification required")
	ErrTwoFactorNotEnabled        = errors.New("two-factor authentication not enabled")
	ErrUnsupportedTwoFactorMethod = errors.New("unsupported two-factor method")
	ErrEmailOTPNotImplemented     = errors.New("email OTP verification not implemented")
	ErrInvalidTwoFactorCode       = errors.New("invalid two-factor code")
	ErrUnauthorized               = errors.New("unauthorized")
	ErrAccountInactive            = errors.New("account is inactive")
	ErrSessionNotFound            = errors.New("session not found")
	ErrSessionAlreadyTerminated   = errors.New("session is already terminated")
	ErrRefreshTokenNotFound       = errors.New("refresh token not found")
	ErrRefreshTokenExpired        = errors.New("refresh token expired")
)
