package context

import (
	"context"

	"sampark/models"
)

type sessionKey struct{}

func NewContextWithSession(ctx context.Context, session models.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, session)
}

func GetSessionFromContext(ctx context.Context) (models.Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(models.Session)
	return s, ok
}

// Actor returns the display name recorded in the audit trail for the
// request's user.
func Actor(ctx context.Context) string {
	if s, ok := GetSessionFromContext(ctx); ok && s.User.FullName != "" {
		return s.User.FullName
	}
	return "system"
}

// CurrentUser returns the session user, if any.
func CurrentUser(ctx context.Context) (models.User, bool) {
	s, ok := GetSessionFromContext(ctx)
	return s.User, ok
}
