package auth0

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	neturl "net/url"
	"strings"
	"time"

	"github.com/billboard-app/core/internal/config"
)

// Management calls the Auth0 Management API with client credentials.
// Used only for account deletion; everything else about identity lives
// upstream.
type Management struct {
	domain       string
	clientID     string
	clientSecret string
	http         *http.Client
}

func NewManagement(cfg config.Auth0Config) *Management {
	return &Management{
		domain:       strings.TrimSuffix(cfg.Domain, "/"),
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		http:         &http.Client{Timeout: 15 * time.Second},
	}
}

// DeleteUser removes the identity-provider account for subject.
func (m *Management) DeleteUser(ctx context.Context, subject string) error {
	token, err := m.accessToken(ctx)
	if err != nil {
		return err
	}

	u := fmt.Sprintf("https://%s/api/v2/users/%s", m.domain, neturl.PathEscape(subject))
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := m.http.Do(req)
	if err != nil {
		return fmt.Errorf("auth0 delete user: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("auth0 delete user: HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return nil
}

func (m *Management) accessToken(ctx context.Context) (string, error) {
	body, _ := json.Marshal(map[string]string{
		"client_id":     m.clientID,
		"client_secret": m.clientSecret,
		"audience":      fmt.Sprintf("https://%s/api/v2/", m.domain),
		"grant_type":    "client_credentials",
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("https://%s/oauth/token", m.domain), bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("auth0 management token: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("auth0 management token: HTTP %d", resp.StatusCode)
	}

	var payload struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("auth0 management token: decode: %w", err)
	}
	if payload.AccessToken == "" {
		return "", fmt.Errorf("auth0 management token: empty access_token")
	}
	return payload.AccessToken, nil
}
