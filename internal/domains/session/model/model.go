package model

import (
	"agrirent/infras/backend"
	userModel "agrirent/internal/domains/user/model"
	"agrirent/shared/constant"
	"context"
	"time"
)

const CacheKeySession = "session"

// Session is the client context of a logged in user: who they are, the backend
// credentials acting on their behalf and the language they read the UI in.
type Session struct {
	ID            string         `json:"id"`
	User          userModel.User `json:"user"`
	BackendCookie string         `json:"backendCookie"`
	Language      string         `json:"language"`
	CreatedAt     time.Time      `json:"createdAt"`
}

// Remaining returns how long the session may live given its total lifetime.
func (s Session) Remaining(now time.Time, lifetime time.Duration) time.Duration {
	return s.CreatedAt.Add(lifetime).Sub(now)
}

// WithSession binds the session to ctx, including the backend credentials used by
// every subsequent backend call of the request.
func WithSession(ctx context.Context, s *Session) context.Context {
	ctx = context.WithValue(ctx, constant.ContextKeySession, s)
	ctx = context.WithValue(ctx, constant.ContextKeySessionID, s.ID)
	ctx = context.WithValue(ctx, constant.ContextKeyUserID, s.User.ID)
	ctx = context.WithValue(ctx, constant.ContextKeyUserRole, s.User.Role)
	ctx = context.WithValue(ctx, constant.ContextKeyLanguage, s.Language)

	return backend.WithCredentials(ctx, s.BackendCookie)
}

func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(constant.ContextKeySession).(*Session)

	return s, ok && s != nil
}

// LanguageFromContext returns the language of the request, falling back to fallback.
func LanguageFromContext(ctx context.Context, fallback string) string {
	if lang, ok := ctx.Value(constant.ContextKeyLanguage).(string); ok && ValidLanguage(lang) {
		return lang
	}

	return fallback
}
