package service

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
	"golang.org/x/crypto/bcrypt"

	"github.com/limitlessinfotechsolution/Limitless-sub004/internal/auth/domain"
	"github.com/limitlessinfotechsolution/Limitless-sub004/internal/auth/dto"
	autherror "github.com/limitlessinfotechsolution/Limitless-sub004/internal/errors"
)

// dummyPasswordHash is compared against when no account matches the email, so
// the not-found path costs the same as a real bcrypt comparison.
const dummyPasswordHash = "$2a$10$3y.gq2hG7Fz.i7gY3hI0Aua/R/R1E.AgM1N9.i2fG5XlJ1gY2gGvO"

const totpPeriod = 30

type AuthService struct {
	repo     domain.Repository
	tokens   TokenGenerator
	totpSkew uint
}

func NewAuthService(repo domain.Repository, tokens TokenGenerator, totpSkew int) *AuthService {
	if totpSkew < 0 {
		totpSkew = 0
	}
	return &AuthService{
		repo:     repo,
		tokens:   tokens,
		totpSkew: uint(totpSkew),
	}
}

// Login verifies the credentials and either establishes a session or returns
// a 2FA challenge. Every branch records exactly one login attempt.
func (s *AuthService) Login(ctx context.Context, input dto.LoginInput) (*dto.LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	account, err := s.repo.GetAccountByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if account == nil {
		// Burn a bcrypt comparison so unknown emails are indistinguishable
		// from wrong passwords by response time.
		_ = bcrypt.CompareHashAndPassword([]byte(dummyPasswordHash), []byte(input.Password))
		s.recordAttempt(ctx, &domain.LoginAttempt{
			Email:             email,
			FailureReason:     domain.FailureInvalidCredentials,
			IPAddress:         input.IPAddress,
			UserAgent:         input.UserAgent,
			DeviceFingerprint: input.DeviceFingerprint,
		})
		return nil, autherror.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(input.Password)) != nil {
		s.recordAttempt(ctx, &domain.LoginAttempt{
			Email:             email,
			AccountID:         account.ID,
			FailureReason:     domain.FailureInvalidCredentials,
			IPAddress:         input.IPAddress,
			UserAgent:         input.UserAgent,
			DeviceFingerprint: input.DeviceFingerprint,
		})
		return nil, autherror.ErrInvalidCredentials
	}

	if !account.IsAdmin() {
		s.recordAttempt(ctx, &domain.LoginAttempt{
			Email:             email,
			AccountID:         account.ID,
			FailureReason:     domain.FailureAccessDenied,
			IPAddress:         input.IPAddress,
			UserAgent:         input.UserAgent,
			DeviceFingerprint: input.DeviceFingerprint,
		})
		return nil, autherror.ErrAccessDenied
	}

	if account.TwoFactorEnabled {
		// Not a terminal failure: the caller is expected to follow up with
		// the 2FA step. No session exists yet.
		s.recordAttempt(ctx, &domain.LoginAttempt{
			Email:             email,
			AccountID:         account.ID,
			FailureReason:     domain.FailureTwoFactorRequired,
			IPAddress:         input.IPAddress,
			UserAgent:         input.UserAgent,
			DeviceFingerprint: input.DeviceFingerprint,
			TwoFactorMethod:   account.TwoFactorMethod,
		})
		return &dto.LoginResult{
			TwoFactorRequired: true,
			TwoFactorMethod:   account.TwoFactorMethod,
		}, nil
	}

	return s.issueSession(ctx, account, sessionMeta{
		Email:             email,
		DeviceFingerprint: input.DeviceFingerprint,
		IPAddress:         input.IPAddress,
		UserAgent:         input.UserAgent,
	})
}

// VerifyTwoFactor validates the second-factor code and establishes a session
// on success.
func (s *AuthService) VerifyTwoFactor(ctx context.Context, input dto.VerifyTwoFactorInput) (*dto.LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	account, err := s.repo.GetAccountByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, autherror.ErrInvalidCredentials
	}

	if !account.TwoFactorEnabled {
		return nil, autherror.ErrTwoFactorNotEnabled
	}

	var verified bool
	switch account.TwoFactorMethod {
	case domain.TwoFactorMethodTOTP:
		verified, err = totp.ValidateCustom(input.TwoFactorCode, account.TOTPSecret, time.Now().UTC(), totp.ValidateOpts{
			Period:    totpPeriod,
			Skew:      s.totpSkew,
			Digits:    otp.DigitsSix,
			Algorithm: otp.AlgorithmSHA1,
		})
		if err != nil {
			verified = false
		}
	case domain.TwoFactorMethodEmail:
		return nil, autherror.ErrEmailOTPNotImplemented
	default:
		return nil, autherror.ErrUnsupportedTwoFactorMethod
	}

	if !verified {
		failed := false
		s.recordAttempt(ctx, &domain.LoginAttempt{
			Email:             email,
			AccountID:         account.ID,
			FailureReason:     domain.FailureInvalidTwoFactor,
			IPAddress:         input.IPAddress,
			UserAgent:         input.UserAgent,
			DeviceFingerprint: input.DeviceFingerprint,
			TwoFactorMethod:   account.TwoFactorMethod,
			TwoFactorSuccess:  &failed,
		})
		return nil, autherror.ErrInvalidTwoFactorCode
	}

	return s.issueSession(ctx, account, sessionMeta{
		Email:             email,
		DeviceFingerprint: input.DeviceFingerprint,
		IPAddress:         input.IPAddress,
		UserAgent:         input.UserAgent,
		TwoFactorMethod:   account.TwoFactorMethod,
	})
}

type sessionMeta struct {
	Email             string
	DeviceFingerprint string
	IPAddress         string
	UserAgent         string
	TwoFactorMethod   string
}

// issueSession mints the token pair and persists the session record. Only the
// keyed hashes of the tokens are stored; the raw values go back to the caller
// for cookie transport and are never persisted.
func (s *AuthService) issueSession(ctx context.Context, account *domain.Account, meta sessionMeta) (*dto.LoginResult, error) {
	sessionToken, refreshToken, expiresAt, err := s.tokens.Generate(account.ID, account.Email, account.Role)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	session := &domain.Session{
		ID:                uuid.New().String(),
		AccountID:         account.ID,
		SessionTokenHash:  s.tokens.HashToken(sessionToken),
		RefreshTokenHash:  s.tokens.HashToken(refreshToken),
		DeviceFingerprint: meta.DeviceFingerprint,
		IPAddress:         meta.IPAddress,
		UserAgent:         meta.UserAgent,
		CreatedAt:         now,
		ExpiresAt:         expiresAt,
		RefreshExpiresAt:  now.Add(s.tokens.GetRefreshTTL()),
		LastActivity:      now,
		IsActive:          true,
	}

	if err := s.repo.InsertSession(ctx, session); err != nil {
		return nil, err
	}

	verified := true
	s.recordAttempt(ctx, &domain.LoginAttempt{
		Email:             meta.Email,
		AccountID:         account.ID,
		Success:           true,
		IPAddress:         meta.IPAddress,
		UserAgent:         meta.UserAgent,
		DeviceFingerprint: meta.DeviceFingerprint,
		TwoFactorMethod:   meta.TwoFactorMethod,
		TwoFactorSuccess:  &verified,
		SessionID:         session.ID,
	})

	return &dto.LoginResult{
		SessionID:    session.ID,
		SessionToken: sessionToken,
		RefreshToken: refreshToken,
	}, nil
}

// Refresh redeems a refresh token for a fresh token pair, rotating both
// hashes on the session record in place.
func (s *AuthService) Refresh(ctx context.Context, input dto.RefreshInput) (*dto.TokenPair, error) {
	session, err := s.repo.GetActiveSessionByRefreshHash(ctx, s.tokens.HashToken(input.RefreshToken))
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, autherror.ErrRefreshTokenNotFound
	}

	if time.Now().After(session.RefreshExpiresAt) {
		// Passive expiry at use time.
		if err := s.repo.TerminateSession(ctx, session.ID, "", domain.TerminationReasonExpired); err != nil {
			log.Printf("warn: failed to expire session %s: %v", session.ID, err)
		}
		return nil, autherror.ErrRefreshTokenExpired
	}

	// Re-fetch the account so a deactivated or demoted account cannot keep
	// rotating its way to new tokens.
	account, err := s.repo.GetAccountByID(ctx, session.AccountID)
	if err != nil {
		return nil, err
	}
	if account == nil || !account.IsActive || !account.IsAdmin() {
		return nil, autherror.ErrUnauthorized
	}

	sessionToken, refreshToken, expiresAt, err := s.tokens.Generate(account.ID, account.Email, account.Role)
	if err != nil {
		return nil, err
	}

	err = s.repo.RotateSessionTokens(ctx, session.ID,
		s.tokens.HashToken(sessionToken), s.tokens.HashToken(refreshToken), expiresAt)
	if err != nil {
		return nil, err
	}

	return &dto.TokenPair{
		SessionToken: sessionToken,
		RefreshToken: refreshToken,
	}, nil
}

// Logout terminates either every active session owned by the account or just
// the one matching the presented token. The datastore result is returned so
// the handler can log it, but cookie clearing never depends on it.
func (s *AuthService) Logout(ctx context.Context, accountID, sessionToken string, allDevices bool, ip, userAgent string) error {
	var err error
	if allDevices {
		_, err = s.repo.TerminateSessionsByAccountID(ctx, accountID, domain.TerminationReasonUserLogout)
	} else {
		var session *domain.Session
		session, err = s.repo.GetActiveSessionByTokenHash(ctx, s.tokens.HashToken(sessionToken))
		if err == nil && session != nil {
			err = s.repo.TerminateSession(ctx, session.ID, accountID, domain.TerminationReasonUserLogout)
		}
	}

	s.audit(ctx, &domain.AuditEntry{
		ActorID:      accountID,
		Action:       "logout",
		ResourceType: "session",
		Details:      map[string]any{"reason": "user_initiated_logout", "all_devices": allDevices},
		IPAddress:    ip,
		UserAgent:    userAgent,
		Severity:     "info",
		Success:      err == nil,
	})

	return err
}

// ResolveIdentity validates a session token and re-derives the caller's role
// from the account row. Trusting a stale role claim would defeat instant
// revocation of deactivated or demoted accounts.
func (s *AuthService) ResolveIdentity(ctx context.Context, sessionToken string) (*dto.Identity, error) {
	claims, err := s.tokens.VerifySessionToken(sessionToken)
	if err != nil {
		return nil, autherror.ErrUnauthorized
	}
	if claims.UserID == "" || claims.Role == "" {
		return nil, autherror.ErrUnauthorized
	}

	account, err := s.repo.GetAccountByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if account == nil || !account.IsActive {
		return nil, autherror.ErrUnauthorized
	}

	if err := s.repo.TouchSessionActivity(ctx, s.tokens.HashToken(sessionToken)); err != nil {
		log.Printf("warn: failed to touch session activity for account %s: %v", account.ID, err)
	}

	return &dto.Identity{
		UserID: account.ID,
		Email:  account.Email,
		Role:   account.Role,
	}, nil
}

func (s *AuthService) recordAttempt(ctx context.Context, attempt *domain.LoginAttempt) {
	attempt.ID = uuid.New().String()
	attempt.AttemptTime = time.Now()
	if err := s.repo.RecordLoginAttempt(ctx, attempt); err != nil {
		log.Printf("warn: failed to record login attempt for %s: %v", attempt.Email, err)
	}
}

func (s *AuthService) audit(ctx context.Context, entry *domain.AuditEntry) {
	if err := s.repo.RecordAuditLog(ctx, entry); err != nil {
		log.Printf("warn: failed to write audit log for action %s: %v", entry.Action, err)
	}
}
