package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stadtwache/stadtwache-backend/internal/models"
)

// Subject kinds written into claims at issuance. They tell the resolver
// how to interpret the subject without shape-sniffing it.
const (
	SubjectKindUserID = "user_id"
	SubjectKindEmail  = "email"
)

var (
	// ErrInvalidToken covers every decode failure: malformed token,
	// wrong signature, bad algorithm. Callers surface it and
	// ErrTokenExpired identically.
	ErrInvalidToken = errors.New("could not validate credentials")
	ErrTokenExpired = fmt.Errorf("%w: token expired", ErrInvalidToken)
)

// Claims is the signed fact set embedded in a session token.
type Claims struct {
	UserID      string `json:"user_id,omitempty"`
	Role        string `json:"role,omitempty"`
	SubjectKind string `json:"sub_kind,omitempty"`
	jwt.RegisteredClaims
}

type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Issue signs a token for user with the email as subject, valid for ttl
// from now. Validity is stateless; there is no revocation. Issued tokens
// always carry an email subject; id-subject tokens are accepted by the
// resolver but never produced here.
func (s *TokenService) Issue(user *models.User, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:      user.ID.String(),
		Role:        user.Role,
		SubjectKind: SubjectKindEmail,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Validate parses and verifies a raw token. All failures collapse into
// ErrInvalidToken (or ErrTokenExpired, which wraps it) so that callers
// cannot leak which check failed.
func (s *TokenService) Validate(raw string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ClaimsFromMap rebuilds typed claims from the generic claim map the
// route-level JWT middleware stores in the request context.
func ClaimsFromMap(mc jwt.MapClaims) *Claims {
	claims := &Claims{}
	if sub, ok := mc["sub"].(string); ok {
		claims.Subject = sub
	}
	if userID, ok := mc["user_id"].(string); ok {
		claims.UserID = userID
	}
	if role, ok := mc["role"].(string); ok {
		claims.Role = role
	}
	if kind, ok := mc["sub_kind"].(string); ok {
		claims.SubjectKind = kind
	}
	return claims
}
