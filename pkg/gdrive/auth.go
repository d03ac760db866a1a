package gdrive

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/sheets/v4"
)

// Scopes requested for the bot's Google access. The Sheets ledger backend
// reuses the same token.
var Scopes = []string{
	drive.DriveMetadataReadonlyScope,
	drive.DriveFileScope,
	drive.DriveScope,
	sheets.SpreadsheetsScope,
}

// TokenSource builds an oauth2.TokenSource from the configured credentials.
// Service account JSON is tried first; otherwise the OAuth client config is
// combined with a fixed refresh token or the saved token file.
func TokenSource(ctx context.Context, opts AuthOptions) (oauth2.TokenSource, error) {
	data, err := os.ReadFile(opts.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return TokenSourceFromJSON(ctx, data, opts)
}

// TokenSourceFromJSON is TokenSource with the credentials already loaded.
func TokenSourceFromJSON(ctx context.Context, credentialsJSON []byte, opts AuthOptions) (oauth2.TokenSource, error) {
	if jwtCfg, err := google.JWTConfigFromJSON(credentialsJSON, Scopes...); err == nil {
		return jwtCfg.TokenSource(ctx), nil
	}

	oauthCfg, err := OAuthConfigFromJSON(credentialsJSON)
	if err != nil {
		return nil, err
	}

	if opts.RefreshToken != "" {
		return oauthCfg.TokenSource(ctx, &oauth2.Token{RefreshToken: opts.RefreshToken}), nil
	}

	tok, err := LoadToken(opts.TokenPath)
	if err != nil {
		return nil, err
	}
	return oauthCfg.TokenSource(ctx, tok), nil
}

// OAuthConfigFromJSON parses a "web" or "installed" OAuth client file.
func OAuthConfigFromJSON(credentialsJSON []byte) (*oauth2.Config, error) {
	cfg, err := google.ConfigFromJSON(credentialsJSON, Scopes...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoCredentials, err)
	}
	return cfg, nil
}

// LoadToken reads a token saved by SaveToken.
func LoadToken(path string) (*oauth2.Token, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: no token path or refresh token configured", ErrNoCredentials)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s not found, run scripts/drive-auth first", ErrNoCredentials, path)
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
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to create token file: %w", err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}
