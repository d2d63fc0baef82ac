// utils/auth.go
package utils

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"hotelhub-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	SessionCookie = "session"
	sessionKey    = "tenantSession"
)

// PasswordCost is the bcrypt work factor. Tests lower it.
var PasswordCost = 14

var ErrInvalidSession = errors.New("invalid session")

// Hash password
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	return string(bytes), err
}

// Check password
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

type sessionClaims struct {
	TenantName       string `json:"name"`
	AdminEmail       string `json:"email"`
	SubscriptionPlan string `json:"plan"`
	jwt.RegisteredClaims
}

// SessionManager signs the tenant session into an HttpOnly cookie.
type SessionManager struct {
	secret []byte
	expiry time.Duration
	secure bool
}

func NewSessionManager(secret string, expiryHours int, secure bool) *SessionManager {
	if expiryHours <= 0 {
		expiryHours = 24
	}
	return &SessionManager{
		secret: []byte(secret),
		expiry: time.Duration(expiryHours) * time.Hour,
		secure: secure,
	}
}

// Sign returns the signed token for a session.
func (m *SessionManager) Sign(s models.TenantSession) (string, error) {
	if len(m.secret) == 0 {
		return "", errors.New("session secret not set")
	}
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		TenantName:       s.TenantName,
		AdminEmail:       s.AdminEmail,
		SubscriptionPlan: s.SubscriptionPlan,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(s.TenantID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
		},
	})
	return token.SignedString(m.secret)
}

// Parse verifies a token produced by Sign.
func (m *SessionManager) Parse(tokenString string) (*models.TenantSession, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidSession
	}

	tenantID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || tenantID == 0 {
		return nil, ErrInvalidSession
	}

	return &models.TenantSession{
		TenantID:         uint(tenantID),
		TenantName:       claims.TenantName,
		AdminEmail:       claims.AdminEmail,
		SubscriptionPlan: claims.SubscriptionPlan,
	}, nil
}

// Start writes the session cookie.
func (m *SessionManager) Start(c *gin.Context, s models.TenantSession) error {
	token, err := m.Sign(s)
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, token, int(m.expiry.Seconds()), "/", "", m.secure, true)
	return nil
}

// Clear removes the session cookie.
func (m *SessionManager) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, "", -1, "/", "", m.secure, true)
}

// RequireSession loads the session into the request. Without one, HTML routes
// redirect to the login page and JSON routes answer 401.
func (m *SessionManager) RequireSession(jsonResponse bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var session *models.TenantSession
		if token, err := c.Cookie(SessionCookie); err == nil && token != "" {
			session, _ = m.Parse(token)
		}

		if session == nil {
			if jsonResponse {
				RespondWithError(c, http.StatusUnauthorized, "Authentication required")
				c.Abort()
				return
			}
			c.Redirect(http.StatusFound, "/admin")
			c.Abort()
			return
		}

		c.Set(sessionKey, session)
		c.Next()
	}
}

// CurrentSession returns the session stored by RequireSession.
func CurrentSession(c *gin.Context) (*models.TenantSession, bool) {
	v, exists := c.Get(sessionKey)
	if !exists {
		return nil, false
	}
	s, ok := v.(*models.TenantSession)
	return s, ok
}
