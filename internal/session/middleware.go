package session

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const sessionKey = "session_id"

// Middleware binds every request to a session id carried in a signed cookie.
type Middleware struct {
	tokens     *TokenManager
	cookieName string
	secure     bool
	logger     *zap.Logger
}

// NewMiddleware constructs middleware.
func NewMiddleware(tokens *TokenManager, cookieName string, secure bool, logger *zap.Logger) *Middleware {
	return &Middleware{tokens: tokens, cookieName: cookieName, secure: secure, logger: logger}
}

// Handle resolves the caller's session, starting a new one when the cookie is
// missing or no longer valid. The cookie is re-issued on every request so its
// expiry slides with activity.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	var sessionID string
	if raw := c.Cookies(m.cookieName); raw != "" {
		claims, err := m.tokens.ParseToken(raw)
		if err != nil {
			m.logger.Debug("discarding session cookie", zap.Error(err))
		} else {
			sessionID = claims.SessionID
		}
	}
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	token, exp, err := m.tokens.GenerateToken(sessionID)
	if err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     m.cookieName,
		Value:    token,
		Path:     "/",
		Expires:  exp,
		HTTPOnly: true,
		Secure:   m.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	c.Locals(sessionKey, sessionID)
	return c.Next()
}

// IDFromContext retrieves the session id bound by Handle.
func IDFromContext(c *fiber.Ctx) (string, bool) {
	val, ok := c.Locals(sessionKey).(string)
	if !ok || val == "" {
		return "", false
	}
	return val, true
}
