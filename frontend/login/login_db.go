package login

import (
	"strings"
	"time"

	"sampark/infrastructure/cache"
	"sampark/infrastructure/session"
	"sampark/models"
)

// Sessions issues and resolves demo sessions. There are no credentials:
// every new visitor is bound to the configured demo user.
type Sessions struct {
	sessions *cache.UserSessionCache
	users    *cache.UserCache
	demo     models.User
	now      func() time.Time
}

func NewSessions(sessions *cache.UserSessionCache, users *cache.UserCache, demo models.User) *Sessions {
	users.Add(demo.Email, demo)
	return &Sessions{sessions: sessions, users: users, demo: demo, now: time.Now}
}

// Issue creates a session for the demo user.
func (s *Sessions) Issue() models.Session {
	user, ok := s.users.Get(s.demo.Email)
	if !ok {
		user = s.demo
	}
	now := s.now()
	sess := models.Session{
		ID:        newSessionToken(),
		User:      user,
		CreatedAt: now,
		ExpiresAt: now.Add(session.Lifetime),
	}
	s.sessions.AddSession(sess)
	return sess
}

// Resolve returns the live session for token. Expired sessions are dropped.
func (s *Sessions) Resolve(token string) (models.Session, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return models.Session{}, false
	}
	sess, ok := s.sessions.FindSessionBySessionToken(token)
	if !ok {
		return models.Session{}, false
	}
	if s.now().After(sess.ExpiresAt) {
		s.sessions.DeleteSessionBySessionToken(token)
		return models.Session{}, false
	}
	return sess, true
}

// Drop removes a session.
func (s *Sessions) Drop(token string) {
	if strings.TrimSpace(token) == "" {
		return
	}
	s.sessions.DeleteSessionBySessionToken(token)
}

// PurgeExpired removes every expired session.
func (s *Sessions) PurgeExpired() int {
	return s.sessions.PurgeExpired(s.now())
}
