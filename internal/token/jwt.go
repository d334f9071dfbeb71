package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/asconalumni/alumni-server/internal/model"
)

// Claims represents JWT claims with identity and role flags.
type Claims struct {
	jwt.RegisteredClaims
	IsAdmin bool `json:"is_admin"`
	CanEdit bool `json:"can_edit"`
}

// JWT implements TokenManager backed by symmetric HMAC.
type JWT struct {
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
}

var _ model.TokenManager = (*JWT)(nil)

// NewJWT creates a new JWT token manager with the provided secret key. A
// non-positive ttl falls back to model.SessionTTL.
func NewJWT(secretKey string, ttl time.Duration) *JWT {
	if ttl <= 0 {
		ttl = model.SessionTTL
	}
	return &JWT{secretKey: []byte(secretKey), ttl: ttl, now: time.Now}
}

// Issue signs a session token for the given claims. Issuance and expiry
// times are set here and returned alongside the token.
func (j *JWT) Issue(claims model.Claims) (string, model.Claims, error) {
	if claims.AccountID == uuid.Nil {
		return "", model.Claims{}, fmt.Errorf("failed to sign session token: empty account id")
	}

	// Edit rights only exist on admins.
	claims.CanEdit = claims.CanEdit && claims.IsAdmin

	now := j.now().Truncate(time.Second)
	claims.IssuedAt = now
	claims.ExpiresAt = now.Add(j.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.AccountID.String(),
			IssuedAt:  jwt.NewNumericDate(claims.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(claims.ExpiresAt),
		},
		IsAdmin: claims.IsAdmin,
		CanEdit: claims.CanEdit,
	})

	tokenString, err := token.SignedString(j.secretKey)
	if err != nil {
		return "", model.Claims{}, fmt.Errorf("failed to sign session token: %w", err)
	}

	return tokenString, claims, nil
}

// Parse validates a session token. Expired tokens yield model.ErrTokenExpired,
// every other failure yields model.ErrInvalidToken.
func (j *JWT) Parse(tokenString string) (model.Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return j.secretKey, nil
	},
		jwt.WithTimeFunc(j.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return model.Claims{}, &model.Error{Kind: model.KindTokenExpired, Message: model.ErrTokenExpired.Message, Err: err}
		}
		return model.Claims{}, &model.Error{Kind: model.KindInvalidToken, Message: model.ErrInvalidToken.Message, Err: err}
	}
	if !token.Valid {
		return model.Claims{}, model.ErrInvalidToken
	}

	accountID, err := uuid.Parse(claims.Subject)
	if err != nil || accountID == uuid.Nil {
		return model.Claims{}, &model.Error{Kind: model.KindInvalidToken, Message: "token subject is not an account id", Err: err}
	}

	return model.Claims{
		AccountID: accountID,
		IsAdmin:   claims.IsAdmin,
		CanEdit:   claims.IsAdmin && claims.CanEdit,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
