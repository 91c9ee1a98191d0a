package tokens

import (
	"context"
	"encoding/json"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/taskhive/taskhive-api/internal/config"
	"github.com/taskhive/taskhive-api/internal/models"
	"github.com/taskhive/taskhive-api/pkg/middleware"
)

// Claims is the identity claim set embedded in issued tokens.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Name  string `json:"name"`
}

// GenerateAuthToken mints the HS256-signed login token: subject is the user's
// store id and the expiry comes from the configured TTL.
func GenerateAuthToken(cfg *config.Config, u *models.User, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID.Hex(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email: u.Email,
		Name:  u.Name,
	}
	jt := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return jt.SignedString([]byte(cfg.Token.Secret))
}

// GenerateCustomToken mints the federated-identity assertion variant: keyed
// by the user's store id but without an embedded expiry. The downstream trust
// domain's verifier is expected to enforce its own lifetime on the exchanged
// credential.
func GenerateCustomToken(cfg *config.Config, u *models.User) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  u.ID.Hex(),
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
		Email: u.Email,
		Name:  u.Name,
	}
	jt := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return jt.SignedString([]byte(cfg.Token.Secret))
}

// HMACVerifier verifies locally issued tokens with the process-wide secret.
// Exactly one signing method is accepted; alg=none and any non-HMAC method
// fail verification.
type HMACVerifier struct {
	secret []byte
}

func NewHMACVerifier(cfg *config.Config) *HMACVerifier {
	return &HMACVerifier{secret: []byte(cfg.Token.Secret)}
}

// Verify implements middleware.Verifier.
func (v *HMACVerifier) Verify(ctx context.Context, raw string) (middleware.Token, error) {
	parsed, err := jwt.Parse(raw,
		func(t *jwt.Token) (interface{}, error) { return v.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return &hmacToken{claims: claims}, nil
}

// hmacToken adapts verified MapClaims to the middleware.Token interface.
type hmacToken struct {
	claims jwt.MapClaims
}

func (t *hmacToken) Claims(v interface{}) error {
	b, err := json.Marshal(t.claims)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}
