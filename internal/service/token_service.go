package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/juju/clock"
)

// DeviceSubject is the only subject the API accepts; there is a single local user.
const DeviceSubject = "device"

const tokenIssuer = "fitness-tracker"

var (
	ErrTokenGeneration = errors.New("failed to generate token")
	ErrNoSecret        = errors.New("auth secret is not configured")
)

// DeviceClaims is the JWT payload of an API token.
type DeviceClaims struct {
	jwt.RegisteredClaims
}

type TokenService interface {
	IssueDeviceToken() (string, error)
}

type tokenService struct {
	secret     string
	expiration time.Duration
	clock      clock.Clock
}

// NewTokenService signs tokens valid for expiration; zero means they never expire.
// A nil clk uses the wall clock.
func NewTokenService(secret string, expiration time.Duration, clk clock.Clock) TokenService {
	if clk == nil {
		clk = clock.WallClock
	}
	return &tokenService{secret: secret, expiration: expiration, clock: clk}
}

// IssueDeviceToken signs an HS256 token for the device subject.
func (s *tokenService) IssueDeviceToken() (string, error) {
	if s.secret == "" {
		return "", ErrNoSecret
	}

	now := s.clock.Now()
	claims := &DeviceClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  DeviceSubject,
			IssuedAt: jwt.NewNumericDate(now),
			Issuer:   tokenIssuer,
		},
	}
	if s.expiration > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.expiration))
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.secret))
	if err != nil {
		return "", ErrTokenGeneration
	}
	return signed, nil
}
