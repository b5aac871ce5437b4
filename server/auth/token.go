// Package auth signs and reads the tokens that name a deal, so play sessions can only be opened for boards the server dealt.
package auth

import (
	"fmt"
	"io"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

type (
	// JwtTokenizer creates and reads deal tokens signed with a secret key.
	JwtTokenizer struct {
		method jwt.SigningMethod
		key    []byte
		TokenizerConfig
	}

	// TokenizerConfig contains fields which describe a Tokenizer
	TokenizerConfig struct {
		// TimeFunc is a function which should supply the current time since the unix epoch.
		// Used to set the the length of time the token is valid
		TimeFunc func() int64
		// ValidSec is the length of time the token is valid from the issuing time, in seconds
		ValidSec int64
	}

	// dealClaims identify a deal by the name of its layout and its seed.
	dealClaims struct {
		Seed                 int64 `json:"seed"`
		jwt.RegisteredClaims       // layout name stored in Subject ("sub") field
	}
)

// keyLength is the number of bytes in generated keys.
const keyLength = 64

// NewTokenizer creates a Tokenizer that signs tokens with the key.
func (cfg TokenizerConfig) NewTokenizer(key []byte) (*JwtTokenizer, error) {
	if err := cfg.validate(key); err != nil {
		return nil, fmt.Errorf("creating tokenizer: validation: %w", err)
	}
	t := JwtTokenizer{
		method:          jwt.SigningMethodHS256,
		key:             key,
		TokenizerConfig: cfg,
	}
	return &t, nil
}

// GenerateKey reads a random key for a tokenizer.
func GenerateKey(r io.Reader) ([]byte, error) {
	key := make([]byte, keyLength)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, fmt.Errorf("generating tokenizer key: %w", err)
	}
	return key, nil
}

// validate ensures the configuration has no errors.
func (cfg TokenizerConfig) validate(key []byte) error {
	switch {
	case len(key) == 0:
		return fmt.Errorf("key required")
	case cfg.TimeFunc == nil:
		return fmt.Errorf("time func required")
	case cfg.ValidSec <= 0:
		return fmt.Errorf("positive valid seconds required")
	}
	return nil
}

// Create signs a token for the deal of the layout with the seed.
func (j JwtTokenizer) Create(layoutName string, seed int64) (string, error) {
	now := j.TimeFunc()
	expiresAt := now + j.ValidSec
	registeredClaims := jwt.RegisteredClaims{
		Subject:   layoutName,
		NotBefore: jwt.NewNumericDate(time.Unix(now, 0)),
		ExpiresAt: jwt.NewNumericDate(time.Unix(expiresAt, 0)),
	}
	claims := dealClaims{
		Seed:             seed,
		RegisteredClaims: registeredClaims,
	}
	token := jwt.NewWithClaims(j.method, claims)
	return token.SignedString(j.key)
}

// Read extracts the layout name and seed from the token string.
// Tokens are accepted from the time they are created until they expire.
func (j JwtTokenizer) Read(tokenString string) (layoutName string, seed int64, err error) {
	var claims dealClaims
	if _, err := jwt.ParseWithClaims(tokenString, &claims, j.keyFunc, jwt.WithoutClaimsValidation()); err != nil {
		return "", 0, fmt.Errorf("parsing deal token: %w", err)
	}
	now := time.Unix(j.TimeFunc(), 0)
	switch {
	case !claims.VerifyNotBefore(now, true):
		return "", 0, fmt.Errorf("deal token not valid yet")
	case !claims.VerifyExpiresAt(now, true):
		return "", 0, fmt.Errorf("deal token expired")
	case len(claims.Subject) == 0:
		return "", 0, fmt.Errorf("deal token missing layout")
	}
	return claims.Subject, claims.Seed, nil
}

// keyFunc ensures the key type (method) of the token is correct before returning the key.
func (j JwtTokenizer) keyFunc(t *jwt.Token) (interface{}, error) {
	if t.Method != j.method {
		return nil, fmt.Errorf("incorrect authorization signing method")
	}
	return j.key, nil
}
