// Package googleauth verifies Google ID tokens through the tokeninfo
// endpoint. The campaign engine never sees credential logic; this client only
// answers "who is this token for".
package googleauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/engagecrm/engage-backend/internal/apperrors"
)

const tokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"

// Identity is the verified subject of a Google ID token.
type Identity struct {
	GoogleID string
	Email    string
	Name     string
}

// Verifier validates a Google ID token and returns the identity it asserts.
type Verifier interface {
	Verify(ctx context.Context, idToken string) (*Identity, error)
}

// Client verifies tokens against Google's tokeninfo endpoint
type Client struct {
	ClientID string
	client   *http.Client
}

// NewClient creates a new Client. clientID, when non-empty, is checked
// against the token audience.
func NewClient(clientID string) *Client {
	return &Client{
		ClientID: clientID,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

type tokenInfoResponse struct {
	Sub   string `json:"sub"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Aud   string `json:"aud"`
}

// Verify validates the token and returns its identity
func (c *Client) Verify(ctx context.Context, idToken string) (*Identity, error) {
	endpoint := tokenInfoURL + "?id_token=" + url.QueryEscape(idToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google token rejected with status %d", resp.StatusCode)
	}

	var info tokenInfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidResponseShape, err)
	}
	if info.Sub == "" || info.Email == "" {
		return nil, fmt.Errorf("%w: missing subject or email", apperrors.ErrInvalidResponseShape)
	}
	if c.ClientID != "" && info.Aud != c.ClientID {
		return nil, fmt.Errorf("google token audience mismatch")
	}

	return &Identity{GoogleID: info.Sub, Email: info.Email, Name: info.Name}, nil
}

// MockVerifier accepts any token and derives a stable identity from it.
// Used in development when no Google client is configured.
type MockVerifier struct{}

// Verify returns a canned identity
func (MockVerifier) Verify(ctx context.Context, idToken string) (*Identity, error) {
	if idToken == "" {
		return nil, fmt.Errorf("empty id token")
	}
	return &Identity{
		GoogleID: "mock-google-id",
		Email:    "mock.user@example.com",
		Name:     "Mock User",
	}, nil
}
