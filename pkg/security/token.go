package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"nyumbani/listing-api/internal/model"
)

var (
	ErrTokenMalformed = errors.New("token is malformed")
	ErrTokenExpired   = errors.New("token is expired")
	ErrTokenInvalid   = errors.New("token is invalid")
)

// Identity is the normalized result of a verified token. Handlers and
// middleware only ever see this shape, never raw claims
type Identity struct {
	UserID string
	Role   model.Role
}

// TokenCodec issues and verifies the stateless HS256 auth tokens.
// Nothing is persisted server side
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	return &TokenCodec{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue signs a token for the given user. The subject goes out under
// the "id" claim only
func (t *TokenCodec) Issue(userID string, role model.Role) (string, error) {
	now := time.Now()

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   userID,
		"role": string(role),
		"iat":  now.Unix(),
		"exp":  now.Add(t.ttl).Unix(),
	})

	return tok.SignedString(t.secret)
}

// Verify checks signature and expiry and returns the normalized identity.
// Tokens issued by older deployments carried the subject under "userId"
// instead of "id", so both claim names are accepted here. This is the only
// place that fallback exists
func (t *TokenCodec) Verify(tokenStr string) (*Identity, error) {
	tok, err := jwt.Parse(tokenStr, func(tk *jwt.Token) (interface{}, error) {
		if tk.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", tk.Method.Alg())
		}

		return t.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrTokenMalformed
		default:
			return nil, ErrTokenInvalid
		}
	}

	if !tok.Valid {
		return nil, ErrTokenInvalid
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrTokenInvalid
	}

	subject, ok := claims["id"].(string)
	if !ok || subject == "" {
		subject, ok = claims["userId"].(string)
		if !ok || subject == "" {
			return nil, ErrTokenInvalid
		}
	}

	role, _ := claims["role"].(string)

	return &Identity{
		UserID: subject,
		Role:   model.Role(role),
	}, nil
}
