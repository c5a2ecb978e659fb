package gauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/sheets/v4"
)

// DefaultTokenPath is where scripts/gcal-auth stores the installed-app token.
const DefaultTokenPath = "token.json"

// Scopes needed to read events, patch descriptions and write the matrix sheet.
var Scopes = []string{calendar.CalendarScope, sheets.SpreadsheetsScope}

var (
	ErrUnsupportedCredentials = errors.New("unsupported google credentials format")
	ErrTokenMissing           = errors.New("installed-app credentials need a token file, run scripts/gcal-auth first")
)

// HTTPClientFromFile reads a credentials file and returns an authorized client.
func HTTPClientFromFile(ctx context.Context, credentialsPath, tokenPath string, scopes ...string) (*http.Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return HTTPClientFromJSON(ctx, data, tokenPath, scopes...)
}

// HTTPClientFromJSON accepts either a service account key or OAuth installed-app
// credentials. The latter needs a token previously saved at tokenPath.
func HTTPClientFromJSON(ctx context.Context, credentialsJSON []byte, tokenPath string, scopes ...string) (*http.Client, error) {
	if len(scopes) == 0 {
		scopes = Scopes
	}

	// Service account first
	jwtConfig, err := google.JWTConfigFromJSON(credentialsJSON, scopes...)
	if err == nil {
		return jwtConfig.Client(ctx), nil
	}

	oauthConfig, cfgErr := google.ConfigFromJSON(credentialsJSON, scopes...)
	if cfgErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedCredentials, err)
	}

	if tokenPath == "" {
		tokenPath = DefaultTokenPath
	}
	tok, err := LoadToken(tokenPath)
	if err != nil {
		return nil, err
	}

	return oauthConfig.Client(ctx, tok), nil
}

// LoadToken reads a token saved by SaveToken.
func LoadToken(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrTokenMissing
		}
		return nil, fmt.Errorf("failed to read token file: %w", err)
	}

	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("failed to parse token file: %w", err)
	}
	return &tok, nil
}

// SaveToken writes tok to path with owner-only permissions.
func SaveToken(path string, tok *oauth2.Token) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create token file: %w", err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}
