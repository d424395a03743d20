package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limitlessinfotechsolution/Limitless-sub004/internal/auth/domain"
	autherror "github.com/limitlessinfotechsolution/Limitless-sub004/internal/errors"
)

// PgxIface is the subset of pgxpool.Pool the repository needs. Declared here
// so tests can substitute a pgxmock pool.
type PgxIface interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	db PgxIface
}

func NewPostgresRepository(db PgxIface) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetAccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query := `
		SELECT id, email, password_hash, role, two_factor_enabled,
		       COALESCE(two_factor_method, ''), COALESCE(totp_secret, ''),
		       is_active, created_at, updated_at
		FROM profiles
		WHERE LOWER(email) = LOWER($1)
		LIMIT 1;
	`
	return r.scanAccount(r.db.QueryRow(ctx, query, email))
}

func (r *PostgresRepository) GetAccountByID(ctx context.Context, id string) (*domain.Account, error) {
	query := `
		SELECT id, email, password_hash, role, two_factor_enabled,
		       COALESCE(two_factor_method, ''), COALESCE(totp_secret, ''),
		       is_active, created_at, updated_at
		FROM profiles
		WHERE id = $1
		LIMIT 1;
	`
	return r.scanAccount(r.db.QueryRow(ctx, query, id))
}

func (r *PostgresRepository) scanAccount(row pgx.Row) (*domain.Account, error) {
	var a domain.Account
	err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Role, &a.TwoFactorEnabled,
		&a.TwoFactorMethod, &a.TOTPSecret, &a.IsActive, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &a, nil
}

func (r *PostgresRepository) InsertSession(ctx context.Context, s *domain.Session) error {
	query := `
		INSERT INTO admin_sessions (
			id, user_id, session_token_hash, refresh_token_hash,
			device_fingerprint, ip_address, user_agent,
			created_at, expires_at, refresh_expires_at, last_activity, is_active
		) VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.db.Exec(ctx, query,
		s.ID, s.AccountID, s.SessionTokenHash, s.RefreshTokenHash,
		s.DeviceFingerprint, s.IPAddress, s.UserAgent,
		s.CreatedAt, s.ExpiresAt, s.RefreshExpiresAt, s.LastActivity, s.IsActive)
	return err
}

const sessionColumns = `
	id, user_id, session_token_hash, refresh_token_hash,
	COALESCE(device_fingerprint, ''), ip_address, user_agent, COALESCE(geo_location, ''),
	created_at, expires_at, refresh_expires_at, last_activity,
	is_active, terminated_at, COALESCE(terminated_by, ''), COALESCE(termination_reason, '')`

func (r *PostgresRepository) GetSessionByID(ctx context.Context, id string) (*domain.Session, error) {
	query := `SELECT` + sessionColumns + `
		FROM admin_sessions
		WHERE id = $1
		LIMIT 1;
	`
	return r.scanSession(r.db.QueryRow(ctx, query, id))
}

func (r *PostgresRepository) GetActiveSessionByTokenHash(ctx context.Context, tokenHash string) (*domain.Session, error) {
	query := `SELECT` + sessionColumns + `
		FROM admin_sessions
		WHERE session_token_hash = $1 AND is_active = TRUE
		LIMIT 1;
	`
	return r.scanSession(r.db.QueryRow(ctx, query, tokenHash))
}

func (r *PostgresRepository) GetActiveSessionByRefreshHash(ctx context.Context, refreshHash string) (*domain.Session, error) {
	query := `SELECT` + sessionColumns + `
		FROM admin_sessions
		WHERE refresh_token_hash = $1 AND is_active = TRUE
		LIMIT 1;
	`
	return r.scanSession(r.db.QueryRow(ctx, query, refreshHash))
}

func (r *PostgresRepository) scanSession(row pgx.Row) (*domain.Session, error) {
	var s domain.Session
	err := row.Scan(&s.ID, &s.AccountID, &s.SessionTokenHash, &s.RefreshTokenHash,
		&s.DeviceFingerprint, &s.IPAddress, &s.UserAgent, &s.GeoLocation,
		&s.CreatedAt, &s.ExpiresAt, &s.RefreshExpiresAt, &s.LastActivity,
		&s.IsActive, &s.TerminatedAt, &s.TerminatedBy, &s.TerminationReason)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return &s, nil
}

func (r *PostgresRepository) ListActiveSessions(ctx context.Context) ([]domain.ActiveSession, error) {
	query := `
		SELECT s.id, s.user_id, COALESCE(s.device_fingerprint, ''), s.ip_address,
		       s.user_agent, COALESCE(s.geo_location, ''), s.created_at, s.expires_at,
		       s.last_activity, p.email, p.role
		FROM admin_sessions s
		JOIN profiles p ON p.id = s.user_id
		WHERE s.is_active = TRUE
		ORDER BY s.last_activity DESC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active sessions: %w", err)
	}
	defer rows.Close()

	var sessions []domain.ActiveSession
	for rows.Next() {
		var s domain.ActiveSession
		err := rows.Scan(&s.ID, &s.AccountID, &s.DeviceFingerprint, &s.IPAddress,
			&s.UserAgent, &s.GeoLocation, &s.CreatedAt, &s.ExpiresAt,
			&s.LastActivity, &s.AccountEmail, &s.AccountRole)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session row: %w", err)
		}
		s.IsActive = true
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

func (r *PostgresRepository) TerminateSession(ctx context.Context, id, terminatedBy, reason string) error {
	query := `
		UPDATE admin_sessions
		SET is_active = FALSE,
		    terminated_at = now(),
		    terminated_by = NULLIF($2, ''),
		    termination_reason = $3
		WHERE id = $1 AND is_active = TRUE
	`
	tag, err := r.db.Exec(ctx, query, id, terminatedBy, reason)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return autherror.ErrSessionAlreadyTerminated
	}
	return nil
}

func (r *PostgresRepository) TerminateSessionsByAccountID(ctx context.Context, accountID, reason string) (int64, error) {
	query := `
		UPDATE admin_sessions
		SET is_active = FALSE,
		    terminated_at = now(),
		    termination_reason = $2
		WHERE user_id = $1 AND is_active = TRUE
	`
	tag, err := r.db.Exec(ctx, query, accountID, reason)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *PostgresRepository) RotateSessionTokens(ctx context.Context, id, sessionTokenHash, refreshTokenHash string, expiresAt time.Time) error {
	query := `
		UPDATE admin_sessions
		SET session_token_hash = $2,
		    refresh_token_hash = $3,
		    expires_at = $4,
		    last_activity = now()
		WHERE id = $1 AND is_active = TRUE
	`
	tag, err := r.db.Exec(ctx, query, id, sessionTokenHash, refreshTokenHash, expiresAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return autherror.ErrSessionNotFound
	}
	return nil
}

func (r *PostgresRepository) TouchSessionActivity(ctx context.Context, tokenHash string) error {
	query := `
		UPDATE admin_sessions
		SET last_activity = now()
		WHERE session_token_hash = $1 AND is_active = TRUE
	`
	_, err := r.db.Exec(ctx, query, tokenHash)
	return err
}

func (r *PostgresRepository) RecordLoginAttempt(ctx context.Context, attempt *domain.LoginAttempt) error {
	query := `
		INSERT INTO admin_login_logs (
			id, email, user_id, success, failure_reason, ip_address, user_agent,
			device_fingerprint, two_factor_method, two_factor_success, session_id, created_at
		) VALUES ($1, $2, NULLIF($3, ''), $4, NULLIF($5, ''), $6, $7,
			NULLIF($8, ''), NULLIF($9, ''), $10, NULLIF($11, ''), $12)
	`
	_, err := r.db.Exec(ctx, query,
		attempt.ID, attempt.Email, attempt.AccountID, attempt.Success, attempt.FailureReason,
		attempt.IPAddress, attempt.UserAgent, attempt.DeviceFingerprint,
		attempt.TwoFactorMethod, attempt.TwoFactorSuccess, attempt.SessionID, attempt.AttemptTime)
	return err
}

func (r *PostgresRepository) RecordAuditLog(ctx context.Context, entry *domain.AuditEntry) error {
	query := `
		INSERT INTO audit_logs (
			id, user_id, action, resource_type, resource_id, details,
			ip_address, user_agent, severity, success, created_at
		) VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.Exec(ctx, query,
		uuid.New().String(), entry.ActorID, entry.Action, entry.ResourceType, entry.ResourceID,
		entry.Details, entry.IPAddress, entry.UserAgent, entry.Severity, entry.Success, time.Now())
	return err
}
