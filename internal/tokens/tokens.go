package tokens

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/adewale-dev/portfolio-api/internal/config"
	"github.com/adewale-dev/portfolio-api/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Identity is the resolved caller of an authenticated request. Handlers take
// it from the request context instead of re-reading ambient session state.
type Identity struct {
	AccountID string
	Email     string
	Name      string
}

// GenerateAccessToken creates a signed JWT access token for the account
func GenerateAccessToken(cfg *config.Config, a *models.Account, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":   a.ID,
		"name":  a.Name,
		"email": a.Email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(ttl).Unix(),
	}
	jt := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return jt.SignedString([]byte(cfg.JWT.Secret))
}

// Verifier validates HS256 access tokens minted by GenerateAccessToken.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Verify parses and validates raw and returns the embedded identity.
func (v *Verifier) Verify(ctx context.Context, raw string) (*Identity, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok || !tok.Valid {
		return nil, ErrInvalidToken
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, ErrInvalidToken
	}
	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)
	return &Identity{AccountID: sub, Email: email, Name: name}, nil
}
