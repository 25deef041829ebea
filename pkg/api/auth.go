package api

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/lexhub-io/lexadmin/pkg/runtime"
)

const tokenCacheFile = "token"

// TokenInfo is what the status bar knows about the active session. The
// token is parsed without verification; the platform is the verifier, this
// is display only.
type TokenInfo struct {
	Subject   string
	ExpiresAt *time.Time
}

func (t TokenInfo) Expired() bool {
	return t.ExpiresAt != nil && t.ExpiresAt.Before(time.Now())
}

func InspectToken(raw string) (*TokenInfo, error) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(raw, claims); err != nil {
		return nil, fmt.Errorf("unable to parse token: %w", err)
	}

	info := TokenInfo{}
	if sub, err := claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		t := exp.Time
		info.ExpiresAt = &t
	}
	return &info, nil
}

// LoadToken resolves the bearer token: explicit config value first, then a
// token file, then the XDG runtime cache left by a previous session.
func LoadToken(configured, tokenFile string) (string, error) {
	if configured != "" {
		return configured, nil
	}

	if tokenFile != "" {
		raw, err := os.ReadFile(tokenFile)
		if err != nil {
			return "", fmt.Errorf("unable to read token file: %w", err)
		}
		return strings.TrimSpace(string(raw)), nil
	}

	cached, err := runtime.File(tokenCacheFile)
	if err != nil {
		return "", nil
	}
	raw, err := os.ReadFile(cached)
	if err != nil {
		// No cached token is fine; the platform will answer 401.
		return "", nil
	}
	return strings.TrimSpace(string(raw)), nil
}

// SaveToken caches the token for the next session.
func SaveToken(token string) error {
	cached, err := runtime.File(tokenCacheFile)
	if err != nil {
		return fmt.Errorf("unable to determine token cache file: %w", err)
	}
	f, err := os.OpenFile(cached, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("unable to cache token: %w", err)
	}
	defer f.Close()
	fmt.Fprintf(f, "%s\n", token)
	return nil
}
