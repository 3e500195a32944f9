// Package auth implements the admin session: a signed cookie carrying the
// authenticated flag and pending flash messages.
package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// SessionCookie is the name of the session cookie.
const SessionCookie = "pyarch_session"

const sessionContextKey = "auth.session"

// Flash is a one-shot message shown on the next rendered page.
type Flash struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

// Session is the decoded cookie state.
type Session struct {
	Authenticated bool
	Flashes       []Flash
}

// empty reports whether the session carries nothing worth a cookie.
func (s *Session) empty() bool {
	return !s.Authenticated && len(s.Flashes) == 0
}

type sessionClaims struct {
	Authenticated bool    `json:"authenticated,omitempty"`
	Flashes       []Flash `json:"flashes,omitempty"`
	jwt.RegisteredClaims
}

// Manager signs and verifies session cookies with HS256.
// Tokens carry no expiry; the cookie lives for the browser session.
type Manager struct {
	secret []byte
	secure bool
	now    func() time.Time
}

// NewManager creates a manager. secure marks the cookie Secure.
func NewManager(secret string, secure bool) *Manager {
	return &Manager{secret: []byte(secret), secure: secure, now: time.Now}
}

// Encode signs the session.
func (m *Manager) Encode(s *Session) (string, error) {
	claims := sessionClaims{
		Authenticated: s.Authenticated,
		Flashes:       s.Flashes,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(m.now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign session: %w", err)
	}
	return signed, nil
}

// Decode verifies the signature and returns the session it carries.
func (m *Manager) Decode(raw string) (*Session, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("parse session: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid session token")
	}
	return &Session{Authenticated: claims.Authenticated, Flashes: claims.Flashes}, nil
}

// Attach loads the session from the request cookie into the gin context.
// A missing, tampered or otherwise invalid cookie yields an empty session.
func (m *Manager) Attach(c *gin.Context) *Session {
	s := &Session{}
	if raw, err := c.Cookie(SessionCookie); err == nil && raw != "" {
		if decoded, err := m.Decode(raw); err == nil {
			s = decoded
		}
	}
	c.Set(sessionContextKey, &boundSession{session: s, manager: m})
	return s
}

// write sets the cookie on the response. It must run before the body is
// written, so every mutation writes immediately.
func (m *Manager) write(c *gin.Context, s *Session) error {
	cookie := &http.Cookie{
		Name:     SessionCookie,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}
	if s.empty() {
		cookie.MaxAge = -1
	} else {
		value, err := m.Encode(s)
		if err != nil {
			return err
		}
		cookie.Value = value
	}

	dropCookie(c.Writer.Header(), SessionCookie)
	http.SetCookie(c.Writer, cookie)
	return nil
}

// dropCookie removes earlier Set-Cookie headers for name so only the last
// write of a request reaches the client.
func dropCookie(h http.Header, name string) {
	values := h.Values("Set-Cookie")
	if len(values) == 0 {
		return
	}
	kept := values[:0:0]
	for _, v := range values {
		if !strings.HasPrefix(v, name+"=") {
			kept = append(kept, v)
		}
	}
	h.Del("Set-Cookie")
	for _, v := range kept {
		h.Add("Set-Cookie", v)
	}
}

type boundSession struct {
	session *Session
	manager *Manager
}

func bound(c *gin.Context) *boundSession {
	v, ok := c.Get(sessionContextKey)
	if !ok {
		return nil
	}
	b, _ := v.(*boundSession)
	return b
}

func (b *boundSession) commit(c *gin.Context) {
	if err := b.manager.write(c, b.session); err != nil {
		_ = c.Error(err)
	}
}

// Current returns the session attached to the request, or an empty one
// when no session middleware ran.
func Current(c *gin.Context) *Session {
	if b := bound(c); b != nil {
		return b.session
	}
	return &Session{}
}

// IsAuthenticated reports whether the request carries an admin session.
func IsAuthenticated(c *gin.Context) bool {
	return Current(c).Authenticated
}

// Logout clears the authenticated flag.
func Logout(c *gin.Context) {
	b := bound(c)
	if b == nil {
		return
	}
	b.session.Authenticated = false
	b.commit(c)
}

// AddFlash queues a message for the next rendered page.
func AddFlash(c *gin.Context, category, message string) {
	b := bound(c)
	if b == nil {
		return
	}
	b.session.Flashes = append(b.session.Flashes, Flash{Category: category, Message: message})
	b.commit(c)
}

// Flashes returns the queued messages and removes them from the session.
func Flashes(c *gin.Context) []Flash {
	b := bound(c)
	if b == nil || len(b.session.Flashes) == 0 {
		return nil
	}
	flashes := b.session.Flashes
	b.session.Flashes = nil
	b.commit(c)
	return flashes
}

func setAuthenticated(c *gin.Context, v bool) {
	b := bound(c)
	if b == nil {
		return
	}
	b.session.Authenticated = v
	b.commit(c)
}
