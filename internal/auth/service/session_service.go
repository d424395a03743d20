package service

import (
	"context"
	"log"

	"github.com/limitlessinfotechsolution/Limitless-sub004/internal/auth/domain"
	"github.com/limitlessinfotechsolution/Limitless-sub004/internal/auth/dto"
	autherror "github.com/limitlessinfotechsolution/Limitless-sub004/internal/errors"
)

// SessionService backs the admin session-management endpoints. Role gating
// happens in the guard middleware; these methods assume an already-authorised
// actor and stamp it into the audit trail.
type SessionService struct {
	repo domain.Repository
}

func NewSessionService(repo domain.Repository) *SessionService {
	return &SessionService{repo: repo}
}

// ListActive returns every active session joined with its owner, most recent
// activity first.
func (s *SessionService) ListActive(ctx context.Context, actor dto.Identity, ip, userAgent string) ([]dto.SessionOutput, error) {
	sessions, err := s.repo.ListActiveSessions(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.SessionOutput, 0, len(sessions))
	for _, sess := range sessions {
		out = append(out, dto.SessionOutput{
			ID:                sess.ID,
			UserID:            sess.AccountID,
			Email:             sess.AccountEmail,
			Role:              sess.AccountRole,
			DeviceFingerprint: sess.DeviceFingerprint,
			IPAddress:         sess.IPAddress,
			UserAgent:         sess.UserAgent,
			GeoLocation:       sess.GeoLocation,
			CreatedAt:         sess.CreatedAt,
			ExpiresAt:         sess.ExpiresAt,
			LastActivity:      sess.LastActivity,
		})
	}

	s.audit(ctx, &domain.AuditEntry{
		ActorID:      actor.UserID,
		Action:       "view",
		ResourceType: "sessions",
		Details:      map[string]any{"action": "list_active_sessions"},
		IPAddress:    ip,
		UserAgent:    userAgent,
		Severity:     "info",
		Success:      true,
	})

	return out, nil
}

// Terminate force-ends one session. Termination is idempotent-checked: a
// second attempt reports ErrSessionAlreadyTerminated and never rewrites the
// termination timestamp.
func (s *SessionService) Terminate(ctx context.Context, input dto.TerminateSessionInput, actor dto.Identity, ip, userAgent string) error {
	session, err := s.repo.GetSessionByID(ctx, input.SessionID)
	if err != nil {
		return err
	}
	if session == nil {
		return autherror.ErrSessionNotFound
	}
	if !session.IsActive {
		return autherror.ErrSessionAlreadyTerminated
	}

	reason := input.Reason
	if reason == "" {
		reason = domain.TerminationReasonAdminTerminated
	}

	if err := s.repo.TerminateSession(ctx, session.ID, actor.UserID, reason); err != nil {
		return err
	}

	s.audit(ctx, &domain.AuditEntry{
		ActorID:      actor.UserID,
		Action:       "terminate",
		ResourceType: "session",
		ResourceID:   session.ID,
		Details: map[string]any{
			"terminated_user_id": session.AccountID,
			"reason":             reason,
		},
		IPAddress: ip,
		UserAgent: userAgent,
		Severity:  "warning",
		Success:   true,
	})

	return nil
}

func (s *SessionService) audit(ctx context.Context, entry *domain.AuditEntry) {
	if err := s.repo.RecordAuditLog(ctx, entry); err != nil {
		log.Printf("warn: failed to write audit log for action %s: %v", entry.Action, err)
	}
}
