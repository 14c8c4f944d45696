package jwt

import (
	"errors"
	"strconv"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/MobeenM17/SuswearGProject/config"
)

var (
	ErrTokenExpired  = errors.New("session expired")
	ErrTokenInvalid  = errors.New("session token invalid")
	ErrTokenMismatch = errors.New("session cookies do not belong together")
)

const issuer = "sustainwear"

// Token kinds, one per session cookie
const (
	KindRole = "role"
	KindUser = "user"
)

// Claims carried by both session cookies
type Claims struct {
	UserID int    `json:"user_id"`
	Role   string `json:"role"`
	Kind   string `json:"kind"`
	jwtv5.RegisteredClaims
}

// Session is the pair of signed cookie values issued at login.
// Both tokens share one JWT ID so either can be revoked by that id.
type Session struct {
	RoleToken string
	UserToken string
	ID        string
	ExpiresAt time.Time
}

// Manager signs and verifies session tokens
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager creates a session token manager
func NewManager(cfg *config.AuthConfig) *Manager {
	return &Manager{
		secret: []byte(cfg.SessionSecret),
		ttl:    cfg.SessionTTL,
	}
}

// TTL returns the lifetime of an issued session
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// IssueSession signs the role and user-id cookie values for one login
func (m *Manager) IssueSession(userID int, role string) (*Session, error) {
	now := time.Now()
	jti := uuid.New().String()
	expiresAt := now.Add(m.ttl)

	sign := func(kind string) (string, error) {
		claims := Claims{
			UserID: userID,
			Role:   role,
			Kind:   kind,
			RegisteredClaims: jwtv5.RegisteredClaims{
				ID:        jti,
				Subject:   strconv.Itoa(userID),
				IssuedAt:  jwtv5.NewNumericDate(now),
				ExpiresAt: jwtv5.NewNumericDate(expiresAt),
				Issuer:    issuer,
			},
		}
		return jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims).SignedString(m.secret)
	}

	roleToken, err := sign(KindRole)
	if err != nil {
		return nil, err
	}
	userToken, err := sign(KindUser)
	if err != nil {
		return nil, err
	}

	return &Session{
		RoleToken: roleToken,
		UserToken: userToken,
		ID:        jti,
		ExpiresAt: expiresAt,
	}, nil
}

// ParseToken parses and verifies a single cookie value
func (m *Manager) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwtv5.ParseWithClaims(tokenString, &Claims{}, func(t *jwtv5.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtv5.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return m.secret, nil
	}, jwtv5.WithIssuer(issuer))

	if err != nil {
		if errors.Is(err, jwtv5.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}

// ParseSession verifies both cookie values and checks they were issued together
func (m *Manager) ParseSession(roleToken, userToken string) (*Claims, error) {
	roleClaims, err := m.ParseToken(roleToken)
	if err != nil {
		return nil, err
	}
	userClaims, err := m.ParseToken(userToken)
	if err != nil {
		return nil, err
	}

	if roleClaims.Kind != KindRole || userClaims.Kind != KindUser {
		return nil, ErrTokenInvalid
	}
	if roleClaims.ID != userClaims.ID ||
		roleClaims.UserID != userClaims.UserID ||
		roleClaims.Role != userClaims.Role {
		return nil, ErrTokenMismatch
	}

	return userClaims, nil
}
