package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/limitlessinfotechsolution/Limitless-sub004/internal/auth/domain"
	"github.com/limitlessinfotechsolution/Limitless-sub004/internal/auth/dto"
	"github.com/limitlessinfotechsolution/Limitless-sub004/internal/auth/service"
	autherror "github.com/limitlessinfotechsolution/Limitless-sub004/internal/errors"
	"github.com/limitlessinfotechsolution/Limitless-sub004/internal/mocks"
)

// RFC 6238 test secret ("12345678901234567890" base32-encoded).
const testTOTPSecret = "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ"

func newTestTokenService() *service.TokenService {
	return service.NewTokenService("test-jwt-secret", "test-hash-secret", 60, 10080)
}

func adminAccount(t *testing.T, password string) *domain.Account {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &domain.Account{
		ID:           "account-1",
		Email:        "admin@example.com",
		PasswordHash: string(hashed),
		Role:         domain.RoleAdmin,
		IsActive:     true,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRepository(ctrl)
	s := service.NewAuthService(mockRepo, newTestTokenService(), 1)

	account := adminAccount(t, "password123")

	var insertedSession *domain.Session
	var recordedAttempt *domain.LoginAttempt

	mockRepo.EXPECT().GetAccountByEmail(gomock.Any(), account.Email).Return(account, nil)
	mockRepo.EXPECT().InsertSession(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, sess *domain.Session) { insertedSession = sess }).
		Return(nil)
	mockRepo.EXPECT().RecordLoginAttempt(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, a *domain.LoginAttempt) { recordedAttempt = a }).
		Return(nil)

	result, err := s.Login(context.Background(), dto.LoginInput{
		Email:             "admin@example.com",
		Password:          "password123",
		DeviceFingerprint: "fp-1",
		IPAddress:         "203.0.113.7",
		UserAgent:         "test-agent",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.TwoFactorRequired)
	assert.NotEmpty(t, result.SessionToken)
	assert.NotEmpty(t, result.RefreshToken)

	require.NotNil(t, insertedSession)
	assert.True(t, insertedSession.IsActive)
	assert.Equal(t, account.ID, insertedSession.AccountID)
	assert.Equal(t, "203.0.113.7", insertedSession.IPAddress)
	assert.WithinDuration(t, insertedSession.CreatedAt.Add(time.Hour), insertedSession.ExpiresAt, time.Second)
	assert.WithinDuration(t, insertedSession.CreatedAt.Add(7*24*time.Hour), insertedSession.RefreshExpiresAt, time.Second)

	// Only hashes are persisted, never the raw tokens.
	assert.NotEqual(t, result.SessionToken, insertedSession.SessionTokenHash)
	assert.NotEqual(t, result.RefreshToken, insertedSession.RefreshTokenHash)
	assert.NotEmpty(t, insertedSession.SessionTokenHash)
	assert.NotEmpty(t, insertedSession.RefreshTokenHash)

	require.NotNil(t, recordedAttempt)
	assert.True(t, recordedAttempt.Success)
	assert.Equal(t, insertedSession.ID, recordedAttempt.SessionID)
}

func TestAuthService_Login_EmailIsCaseInsensitive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRepository(ctrl)
	s := service.NewAuthService(mockRepo, newTestTokenService(), 1)

	account := adminAccount(t, "password123")

	mockRepo.EXPECT().GetAccountByEmail(gomock.Any(), "admin@example.com").Return(account, nil)
	mockRepo.EXPECT().InsertSession(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().RecordLoginAttempt(gomock.Any(), gomock.Any()).Return(nil)

	_, err := s.Login(context.Background(), dto.LoginInput{
		Email:    "  Admin@Example.COM ",
		Password: "password123",
	})
	require.NoError(t, err)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRepository(ctrl)
	s := service.NewAuthService(mockRepo, newTestTokenService(), 1)

	var attempt *domain.LoginAttempt

	mockRepo.EXPECT().GetAccountByEmail(gomock.Any(), "nobody@x.com").Return(nil, nil)
	mockRepo.EXPECT().RecordLoginAttempt(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, a *domain.LoginAttempt) { attempt = a }).
		Return(nil)

	result, err := s.Login(context.Background(), dto.LoginInput{
		Email:    "nobody@x.com",
		Password: "whatever",
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, autherror.ErrInvalidCredentials)

	require.NotNil(t, attempt)
	assert.False(t, attempt.Success)
	assert.Equal(t, domain.FailureInvalidCredentials, attempt.FailureReason)
	assert.Empty(t, attempt.AccountID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRepository(ctrl)
	s := service.NewAuthService(mockRepo, newTestTokenService(), 1)

	account := adminAccount(t, "password123")

	var attempt *domain.LoginAttempt

	mockRepo.EXPECT().GetAccountByEmail(gomock.Any(), account.Email).Return(account, nil)
	mockRepo.EXPECT().RecordLoginAttempt(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, a *domain.LoginAttempt) { attempt = a }).
		Return(nil)

	result, err := s.Login(context.Background(), dto.LoginInput{
		Email:    account.Email,
		Password: "wrong-password",
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, autherror.ErrInvalidCredentials)

	require.NotNil(t, attempt)
	assert.Equal(t, domain.FailureInvalidCredentials, attempt.FailureReason)
	assert.Equal(t, account.ID, attempt.AccountID)
}

func TestAuthService_Login_NonAdminRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRepository(ctrl)
	s := service.NewAuthService(mockRepo, newTestTokenService(), 1)

	account := adminAccount(t, "password123")
	account.Role = domain.RoleUser

	var attempt *domain.LoginAttempt

	mockRepo.EXPECT().GetAccountByEmail(gomock.Any(), account.Email).Return(account, nil)
	mockRepo.EXPECT().RecordLoginAttempt(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, a *domain.LoginAttempt) { attempt = a }).
		Return(nil)

	result, err := s.Login(context.Background(), dto.LoginInput{
		Email:    account.Email,
		Password: "password123",
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, autherror.ErrAccessDenied)

	require.NotNil(t, attempt)
	assert.False(t, attempt.Success)
	assert.Equal(t, domain.FailureAccessDenied, attempt.FailureReason)
}

func TestAuthService_Login_TwoFactorChallenge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRepository(ctrl)
	s := service.NewAuthService(mockRepo, newTestTokenService(), 1)

	account := adminAccount(t, "password123")
	account.TwoFactorEnabled = true
	account.TwoFactorMethod = domain.TwoFactorMethodTOTP
	account.TOTPSecret = testTOTPSecret

	var attempt *domain.LoginAttempt

	mockRepo.EXPECT().GetAccountByEmail(gomock.Any(), account.Email).Return(account, nil)
	mockRepo.EXPECT().RecordLoginAttempt(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, a *domain.LoginAttempt) { attempt = a }).
		Return(nil)

	// A correct password alone must never create a session when 2FA is on:
	// no InsertSession expectation is registered.
	result, err := s.Login(context.Background(), dto.LoginInput{
		Email:    account.Email,
		Password: "password123",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.TwoFactorRequired)
	assert.Equal(t, domain.TwoFactorMethodTOTP, result.TwoFactorMethod)
	assert.Empty(t, result.SessionToken)

	require.NotNil(t, attempt)
	assert.False(t, attempt.Success)
	assert.Equal(t, domain.FailureTwoFactorRequired, attempt.FailureReason)
	assert.Equal(t, domain.TwoFactorMethodTOTP, attempt.TwoFactorMethod)
}

func TestAuthService_Login_SessionInsertFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRepository(ctrl)
	s := service.NewAuthService(mockRepo, newTestTokenService(), 1)

	account := adminAccount(t, "password123")
	insertErr := errors.New("insert failed")

	mockRepo.EXPECT().GetAccountByEmail(gomock.Any(), account.Email).Return(account, nil)
	mockRepo.EXPECT().InsertSession(gomock.Any(), gomock.Any()).Return(insertErr)

	result, err := s.Login(context.Background(), dto.LoginInput{
		Email:    account.Email,
		Password: "password123",
	})

	assert.Nil(t, result)
	assert.Equal(t, insertErr, err)
}

func twoFactorAccount(t *testing.T) *domain.Account {
	t.Helper()
	account := adminAccount(t, "password123")
	account.TwoFactorEnabled = true
	account.TwoFactorMethod = domain.TwoFactorMethodTOTP
	account.TOTPSecret = testTOTPSecret
	return account
}

func TestAuthService_VerifyTwoFactor_SkewWindow(t *testing.T) {
	tests := []struct {
		name   string
		offset time.Duration
		valid  bool
	}{
		{"previous step", -30 * time.Second, true},
		{"current step", 0, true},
		{"next step", 30 * time.Second, true},
		{"three steps back", -90 * time.Second, false},
		{"three steps ahead", 90 * time.Second, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := mocks.NewMockRepository(ctrl)
			s := service.NewAuthService(mockRepo, newTestTokenService(), 1)

			account := twoFactorAccount(t)
			code, err := totp.GenerateCode(testTOTPSecret, time.Now().UTC().Add(tt.offset))
			require.NoError(t, err)

			mockRepo.EXPECT().GetAccountByEmail(gomock.Any(), account.Email).Return(account, nil)
			if tt.valid {
				mockRepo.EXPECT().InsertSession(gomock.Any(), gomock.Any()).Return(nil)
				mockRepo.EXPECT().RecordLoginAttempt(gomock.Any(), gomock.Any()).Return(nil)
			} else {
				mockRepo.EXPECT().RecordLoginAttempt(gomock.Any(), gomock.Any()).
					Do(func(_ context.Context, a *domain.LoginAttempt) {
						assert.Equal(t, domain.FailureInvalidTwoFactor, a.FailureReason)
						require.NotNil(t, a.TwoFactorSuccess)
						assert.False(t, *a.TwoFactorSuccess)
					}).
					Return(nil)
			}

			result, err := s.VerifyTwoFactor(context.Background(), dto.VerifyTwoFactorInput{
				Email:         account.Email,
				TwoFactorCode: code,
			})

			if tt.valid {
				require.NoError(t, err)
				require.NotNil(t, result)
				assert.NotEmpty(t, result.SessionToken)
			} else {
				assert.Nil(t, result)
				assert.ErrorIs(t, err, autherror.ErrInvalidTwoFactorCode)
			}
		})
	}
}

func TestAuthService_VerifyTwoFactor_SuccessAttempt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRepository(ctrl)
	s := service.NewAuthService(mockRepo, newTestTokenService(), 1)

	account := twoFactorAccount(t)
	code, err := totp.GenerateCode(testTOTPSecret, time.Now().UTC())
	require.NoError(t, err)

	var attempt *domain.LoginAttempt

	mockRepo.EXPECT().GetAccountByEmail(gomock.Any(), account.Email).Return(account, nil)
	mockRepo.EXPECT().InsertSession(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().RecordLoginAttempt(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, a *domain.LoginAttempt) { attempt = a }).
		Return(nil)

	_, err = s.VerifyTwoFactor(context.Background(), dto.VerifyTwoFactorInput{
		Email:         account.Email,
		TwoFactorCode: code,
	})
	require.NoError(t, err)

	require.NotNil(t, attempt)
	assert.True(t, attempt.Success)
	assert.Equal(t, domain.TwoFactorMethodTOTP, attempt.TwoFactorMethod)
	require.NotNil(t, attempt.TwoFactorSuccess)
	assert.True(t, *attempt.TwoFactorSuccess)
}

func TestAuthService_VerifyTwoFactor_EmailMethodNotImplemented(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRepository(ctrl)
	s := service.NewAuthService(mockRepo, newTestTokenService(), 1)

	account := twoFactorAccount(t)
	account.TwoFactorMethod = domain.TwoFactorMethodEmail

	mockRepo.EXPECT().GetAccountByEmail(gomock.Any(), account.Email).Return(account, nil)

	result, err := s.VerifyTwoFactor(context.Background(), dto.VerifyTwoFactorInput{
		Email:         account.Email,
		TwoFactorCode: "123456",
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, autherror.ErrEmailOTPNotImplemented)
}

func TestAuthService_VerifyTwoFactor_NotEnabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRepository(ctrl)
	s := service.NewAuthService(mockRepo, newTestTokenService(), 1)

	account := adminAccount(t, "password123")

	mockRepo.EXPECT().GetAccountByEmail(gomock.Any(), account.Email).Return(account, nil)

	_, err := s.VerifyTwoFactor(context.Background(), dto.VerifyTwoFactorInput{
		Email:         account.Email,
		TwoFactorCode: "123456",
	})
	assert.ErrorIs(t, err, autherror.ErrTwoFactorNotEnabled)
}

func TestAuthService_VerifyTwoFactor_UnknownAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRepository(ctrl)
	s := service.NewAuthService(mockRepo, newTestTokenService(), 1)

	mockRepo.EXPECT().GetAccountByEmail(gomock.Any(), "nobody@x.com").Return(nil, nil)

	_, err := s.VerifyTwoFactor(context.Background(), dto.VerifyTwoFactorInput{
		Email:         "nobody@x.com",
		TwoFactorCode: "123456",
	})
	assert.ErrorIs(t, err, autherror.ErrInvalidCredentials)
}

func TestAuthService_Refresh_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRepository(ctrl)
	tokens := newTestTokenService()
	s := service.NewAuthService(mockRepo, tokens, 1)

	account := adminAccount(t, "password123")
	refreshToken := "0123456789abcdef"
	session := &domain.Session{
		ID:               "session-1",
		AccountID:        account.ID,
		IsActive:         true,
		RefreshExpiresAt: time.Now().Add(24 * time.Hour),
	}

	mockRepo.EXPECT().GetActiveSessionByRefreshHash(gomock.Any(), tokens.HashToken(refreshToken)).Return(session, nil)
	mockRepo.EXPECT().GetAccountByID(gomock.Any(), account.ID).Return(account, nil)
	mockRepo.EXPECT().RotateSessionTokens(gomock.Any(), session.ID, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	pair, err := s.Refresh(context.Background(), dto.RefreshInput{RefreshToken: refreshToken})
	require.NoError(t, err)
	require.NotNil(t, pair)
	assert.NotEmpty(t, pair.SessionToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, refreshToken, pair.RefreshToken)
}

func TestAuthService_Refresh_Expired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRepository(ctrl)
	tokens := newTestTokenService()
	s := service.NewAuthService(mockRepo, tokens, 1)

	refreshToken := "0123456789abcdef"
	session := &domain.Session{
		ID:               "session-1",
		AccountID:        "account-1",
		IsActive:         true,
		RefreshExpiresAt: time.Now().Add(-time.Minute),
	}

	mockRepo.EXPECT().GetActiveSessionByRefreshHash(gomock.Any(), tokens.HashToken(refreshToken)).Return(session, nil)
	mockRepo.EXPECT().TerminateSession(gomock.Any(), session.ID, "", domain.TerminationReasonExpired).Return(nil)

	pair, err := s.Refresh(context.Background(), dto.RefreshInput{RefreshToken: refreshToken})
	assert.Nil(t, pair)
	assert.ErrorIs(t, err, autherror.ErrRefreshTokenExpired)
}

func TestAuthService_Refresh_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRepository(ctrl)
	s := service.NewAuthService(mockRepo, newTestTokenService(), 1)

	mockRepo.EXPECT().GetActiveSessionByRefreshHash(gomock.Any(), gomock.Any()).Return(nil, nil)

	pair, err := s.Refresh(context.Background(), dto.RefreshInput{RefreshToken: "unknown"})
	assert.Nil(t, pair)
	assert.ErrorIs(t, err, autherror.ErrRefreshTokenNotFound)
}

func TestAuthService_Refresh_DeactivatedAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRepository(ctrl)
	tokens := newTestTokenService()
	s := service.NewAuthService(mockRepo, tokens, 1)

	account := adminAccount(t, "password123")
	account.IsActive = false
	session := &domain.Session{
		ID:               "session-1",
		AccountID:        account.ID,
		IsActive:         true,
		RefreshExpiresAt: time.Now().Add(24 * time.Hour),
	}

	mockRepo.EXPECT().GetActiveSessionByRefreshHash(gomock.Any(), gomock.Any()).Return(session, nil)
	mockRepo.EXPECT().GetAccountByID(gomock.Any(), account.ID).Return(account, nil)

	pair, err := s.Refresh(context.Background(), dto.RefreshInput{RefreshToken: "anything"})
	assert.Nil(t, pair)
	assert.ErrorIs(t, err, autherror.ErrUnauthorized)
}

func TestAuthService_Logout_AllDevices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRepository(ctrl)
	s := service.NewAuthService(mockRepo, newTestTokenService(), 1)

	var entry *domain.AuditEntry

	mockRepo.EXPECT().TerminateSessionsByAccountID(gomock.Any(), "account-1", domain.TerminationReasonUserLogout).Return(int64(2), nil)
	mockRepo.EXPECT().RecordAuditLog(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, e *domain.AuditEntry) { entry = e }).
		Return(nil)

	err := s.Logout(context.Background(), "account-1", "token", true, "203.0.113.7", "test-agent")
	require.NoError(t, err)

	require.NotNil(t, entry)
	assert.Equal(t, "logout", entry.Action)
	assert.Equal(t, "info", entry.Severity)
	assert.True(t, entry.Success)
}

func TestAuthService_Logout_SingleDevice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRepository(ctrl)
	tokens := newTestTokenService()
	s := service.NewAuthService(mockRepo, tokens, 1)

	session := &domain.Session{ID: "session-1", AccountID: "account-1", IsActive: true}

	mockRepo.EXPECT().GetActiveSessionByTokenHash(gomock.Any(), tokens.HashToken("token")).Return(session, nil)
	mockRepo.EXPECT().TerminateSession(gomock.Any(), session.ID, "account-1", domain.TerminationReasonUserLogout).Return(nil)
	mockRepo.EXPECT().RecordAuditLog(gomock.Any(), gomock.Any()).Return(nil)

	err := s.Logout(context.Background(), "account-1", "token", false, "203.0.113.7", "test-agent")
	require.NoError(t, err)
}

func TestAuthService_Logout_DatastoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRepository(ctrl)
	s := service.NewAuthService(mockRepo, newTestTokenService(), 1)

	dbErr := errors.New("db down")
	var entry *domain.AuditEntry

	mockRepo.EXPECT().TerminateSessionsByAccountID(gomock.Any(), "account-1", domain.TerminationReasonUserLogout).Return(int64(0), dbErr)
	mockRepo.EXPECT().RecordAuditLog(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, e *domain.AuditEntry) { entry = e }).
		Return(nil)

	err := s.Logout(context.Background(), "account-1", "token", true, "203.0.113.7", "test-agent")
	assert.Equal(t, dbErr, err)

	require.NotNil(t, entry)
	assert.False(t, entry.Success)
}

func TestAuthService_ResolveIdentity_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRepository(ctrl)
	tokens := newTestTokenService()
	s := service.NewAuthService(mockRepo, tokens, 1)

	account := adminAccount(t, "password123")
	sessionToken, _, _, err := tokens.Generate(account.ID, account.Email, account.Role)
	require.NoError(t, err)

	mockRepo.EXPECT().GetAccountByID(gomock.Any(), account.ID).Return(account, nil)
	mockRepo.EXPECT().TouchSessionActivity(gomock.Any(), tokens.HashToken(sessionToken)).Return(nil)

	identity, err := s.ResolveIdentity(context.Background(), sessionToken)
	require.NoError(t, err)
	assert.Equal(t, account.ID, identity.UserID)
	assert.Equal(t, account.Email, identity.Email)
	assert.Equal(t, account.Role, identity.Role)
}

func TestAuthService_ResolveIdentity_Unauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRepository(ctrl)
	tokens := newTestTokenService()
	s := service.NewAuthService(mockRepo, tokens, 1)

	t.Run("garbage token", func(t *testing.T) {
		_, err := s.ResolveIdentity(context.Background(), "not-a-token")
		assert.ErrorIs(t, err, autherror.ErrUnauthorized)
	})

	t.Run("wrong signing key", func(t *testing.T) {
		other := service.NewTokenService("other-secret", "test-hash-secret", 60, 10080)
		sessionToken, _, _, err := other.Generate("account-1", "admin@example.com", domain.RoleAdmin)
		require.NoError(t, err)

		_, err = s.ResolveIdentity(context.Background(), sessionToken)
		assert.ErrorIs(t, err, autherror.ErrUnauthorized)
	})

	t.Run("account gone", func(t *testing.T) {
		sessionToken, _, _, err := tokens.Generate("account-1", "admin@example.com", domain.RoleAdmin)
		require.NoError(t, err)

		mockRepo.EXPECT().GetAccountByID(gomock.Any(), "account-1").Return(nil, nil)

		_, err = s.ResolveIdentity(context.Background(), sessionToken)
		assert.ErrorIs(t, err, autherror.ErrUnauthorized)
	})

	t.Run("account deactivated", func(t *testing.T) {
		account := adminAccount(t, "password123")
		account.IsActive = false
		sessionToken, _, _, err := tokens.Generate(account.ID, account.Email, account.Role)
		require.NoError(t, err)

		mockRepo.EXPECT().GetAccountByID(gomock.Any(), account.ID).Return(account, nil)

		_, err = s.ResolveIdentity(context.Background(), sessionToken)
		assert.ErrorIs(t, err, autherror.ErrUnauthorized)
	})
}
