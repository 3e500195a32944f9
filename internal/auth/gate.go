package auth

import (
	"crypto/subtle"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/AdrianaGRO/PyArch.dev/internal/metrics"
)

// Credentials is the single admin account.
type Credentials struct {
	Username string
	Password string

	// PasswordHash is a bcrypt hash. When set it replaces Password.
	PasswordHash string
}

// Check compares username and password against the configured account.
// Plaintext comparison runs in constant time.
func (cr Credentials) Check(username, password string) bool {
	if cr.Username == "" {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(cr.Username)) == 1

	var passOK bool
	if cr.PasswordHash != "" {
		passOK = bcrypt.CompareHashAndPassword([]byte(cr.PasswordHash), []byte(password)) == nil
	} else {
		passOK = cr.Password != "" && subtle.ConstantTimeCompare([]byte(password), []byte(cr.Password)) == 1
	}
	return userOK && passOK
}

// Gate logs the admin in and out.
type Gate struct {
	credentials Credentials
}

// NewGate creates a gate for the given account.
func NewGate(credentials Credentials) *Gate {
	return &Gate{credentials: credentials}
}

// Login marks the session authenticated when the credentials match.
func (g *Gate) Login(c *gin.Context, username, password string) bool {
	ok := g.credentials.Check(username, password)
	metrics.ObserveLogin(ok)
	if ok {
		setAuthenticated(c, true)
	}
	return ok
}

// Logout clears the authenticated flag.
func (g *Gate) Logout(c *gin.Context) {
	Logout(c)
}

// SafeNext returns next if it is a same-origin relative path, else "".
func SafeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, `/\`) {
		return ""
	}
	for _, r := range next {
		if r < 0x20 || r == 0x7f {
			return ""
		}
	}
	u, err := url.Parse(next)
	if err != nil || u.Scheme != "" || u.Host != "" || u.User != nil {
		return ""
	}
	return next
}
