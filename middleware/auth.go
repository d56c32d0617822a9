package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"restaurant-web/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	SessionCookie = "session"
	userKey       = "user"
)

// Claims is the session token payload.
type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// UserLookup resolves a session's user id to a live account.
type UserLookup func(c *gin.Context, id uint) (*models.User, error)

// Sessions issues and verifies signed session cookies.
type Sessions struct {
	secret []byte
	ttl    time.Duration
	secure bool
}

// NewSessions signs with secret; secure marks cookies HTTPS-only.
func NewSessions(secret []byte, ttl time.Duration, secure bool) *Sessions {
	return &Sessions{secret: secret, ttl: ttl, secure: secure}
}

// GenerateToken creates a signed session token for a given user
func (s *Sessions) GenerateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ParseToken verifies signature, algorithm and expiry.
func (s *Sessions) ParseToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid session token")
	}
	return claims, nil
}

// Start logs the user in by setting the session cookie.
func (s *Sessions) Start(c *gin.Context, user *models.User) error {
	token, err := s.GenerateToken(user)
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, token, int(s.ttl.Seconds()), "/", "", s.secure, true)
	return nil
}

// End clears the session cookie.
func (s *Sessions) End(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, "", -1, "/", "", s.secure, true)
}

func tokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
		return cookie
	}
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return ""
}

// LoadUser resolves the session, if any, and stores the user on the request
// context. Invalid or stale sessions are treated as anonymous.
func (s *Sessions) LoadUser(lookup UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := tokenFromRequest(c)
		if tokenStr == "" {
			c.Next()
			return
		}
		claims, err := s.ParseToken(tokenStr)
		if err != nil {
			c.Next()
			return
		}
		user, err := lookup(c, claims.UserID)
		if err != nil || user.Username != claims.Username {
			c.Next()
			return
		}
		c.Set(userKey, user)
		c.Next()
	}
}

// AuthRequired sends anonymous callers to the login page.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// AdminRequired guards every admin route: anonymous callers go to the login
// page, any other account gets 403.
func AdminRequired(isAdmin func(*models.User) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		if !isAdmin(user) {
			c.String(http.StatusForbidden, "Forbidden")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user of this request.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	val, ok := c.Get(userKey)
	if !ok {
		return nil, false
	}
	user, ok := val.(*models.User)
	return user, ok && user != nil
}
