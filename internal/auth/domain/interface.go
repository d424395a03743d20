package domain

//go:generate mockgen -destination=../../mocks/mock_repository.go -package=mocks github.com/limitlessinfotechsolution/Limitless-sub004/internal/auth/domain Repository

import (
	"context"
	"time"
)

type Repository interface {
	GetAccountByEmail(ctx context.Context, email string) (*Account, error)
	GetAccountByID(ctx context.Context, id string) (*Account, error)

	InsertSession(ctx context.Context, s *Session) error
	GetSessionByID(ctx context.Context, id string) (*Session, error)
	GetActiveSessionByTokenHash(ctx context.Context, tokenHash string) (*Session, error)
	GetActiveSessionByRefreshHash(ctx context.Context, refreshHash string) (*Session, error)
	ListActiveSessions(ctx context.Context) ([]ActiveSession, error)
	TerminateSession(ctx context.Context, id, terminatedBy, reason string) error
	TerminateSessionsByAccountID(ctx context.Context, accountID, reason string) (int64, error)
	RotateSessionTokens(ctx context.Context, id, sessionTokenHash, refreshTokenHash string, expiresAt time.Time) error
	TouchSessionActivity(ctx context.Context, tokenHash string) error

	RecordLoginAttempt(ctx context.Context, attempt *LoginAttempt) error
	RecordAuditLog(ctx context.Context, entry *AuditEntry) error
}
