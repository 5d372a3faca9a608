package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// AccessToken represents a signed JWT access token along with its expiry.
// The Token field contains the JWT string.  Exp stores the expiration
// timestamp as a time.Time.  Access tokens are short-lived and encoded
// in the Authorization header when calling protected endpoints.
type AccessToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// Claims carried by an access token after verification.
type Claims struct {
	DNI      string   // subject: the customer's national id
	Username string   // login name, informational
	Roles    []string // granted role names
}

// ErrInvalidToken is returned for any token that does not verify:
// wrong signature, wrong algorithm, expired, or malformed claims.
var ErrInvalidToken = errors.New("invalid token")

// NewAccessToken builds and signs an HS256 JWT for a customer.  The
// claims are: subject (sub) = dni, username, roles, expiration (exp)
// and issued at (iat).
func NewAccessToken(secret, dni, username string, roles []string, ttlMin int) (AccessToken, error) {
	exp := time.Now().UTC().Add(time.Duration(ttlMin) * time.Minute)
	claims := jwt.MapClaims{
		"sub":      dni,
		"username": username,
		"roles":    roles,
		"exp":      exp.Unix(),
		"iat":      time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, Exp: exp}, nil
}

// ParseAccessToken verifies the token signature and expiry and extracts
// the claims.  Only HS256 is accepted; a token signed with any other
// algorithm fails verification.
func ParseAccessToken(secret, token string) (*Claims, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	mc, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	dni, _ := mc["sub"].(string)
	if dni == "" {
		return nil, ErrInvalidToken
	}
	username, _ := mc["username"].(string)
	var roles []string
	if raw, ok := mc["roles"].([]any); ok {
		for _, r := range raw {
			if name, ok := r.(string); ok {
				roles = append(roles, name)
			}
		}
	}
	return &Claims{DNI: dni, Username: username, Roles: roles}, nil
}
