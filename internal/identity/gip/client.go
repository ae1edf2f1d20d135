package gip

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"google.golang.org/api/idtoken"

	"github.com/veridia/user-provisioning/api/internal/identity"
)

// DefaultEndpoint is the Identity Platform REST base URL.
const DefaultEndpoint = "https://identitytoolkit.googleapis.com"

// Client talks to Google Identity Platform over its REST surface.
type Client struct {
	client   *http.Client
	endpoint string
	apiKey   string
}

// New builds an Identity Platform client. When client is nil an ID-token
// client is auto-configured, falling back to a plain timeout client outside
// of Google-credentialed environments.
func New(client *http.Client, endpoint, apiKey string) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	endpoint = strings.TrimRight(endpoint, "/")
	if client == nil {
		idc, err := idtoken.NewClient(context.Background(), endpoint)
		if err != nil {
			client = &http.Client{Timeout: 10 * time.Second}
		} else {
			client = idc
		}
	}
	return &Client{client: client, endpoint: endpoint, apiKey: apiKey}
}

type accountPayload struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type accountResponse struct {
	LocalID string `json:"localId"`
}

// CreateAccount signs up a new account. The provider initializes the email
// verification flag to false. Upstream error codes (EMAIL_EXISTS,
// WEAK_PASSWORD, ...) are returned verbatim so callers can forward them.
func (c *Client) CreateAccount(ctx context.Context, email, password string) (string, error) {
	resp, err := c.post(ctx, "/v1/accounts:signUp", accountPayload{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	})
	if err != nil {
		return "", err
	}
	return resp.LocalID, nil
}

// VerifyPassword exchanges credentials for the account uid.
func (c *Client) VerifyPassword(ctx context.Context, email, password string) (string, error) {
	resp, err := c.post(ctx, "/v1/accounts:signInWithPassword", accountPayload{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	})
	if err != nil {
		if isCredentialError(err) {
			return "", fmt.Errorf("%w: %v", identity.ErrInvalidCredentials, err)
		}
		return "", err
	}
	return resp.LocalID, nil
}

func (c *Client) post(ctx context.Context, path string, payload accountPayload) (*accountResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal identity payload: %w", err)
	}

	url := c.endpoint + path
	if c.apiKey != "" {
		url += "?key=" + c.apiKey
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create identity request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("identity request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("%s", extractErrorMessage(resp.Body))
	}

	var out accountResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode identity response: %w", err)
	}
	if out.LocalID == "" {
		return nil, fmt.Errorf("identity response missing localId")
	}
	return &out, nil
}

// extractErrorMessage pulls the provider's own message out of an error body.
// The message, not the HTTP status, is what distinguishes EMAIL_EXISTS from a
// policy violation, so it must survive unmodified.
func extractErrorMessage(r io.Reader) string {
	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(r).Decode(&body); err != nil || body.Error.Message == "" {
		return "identity provider error"
	}
	return body.Error.Message
}

func isCredentialError(err error) bool {
	msg := err.Error()
	for _, code := range []string{"EMAIL_NOT_FOUND", "INVALID_PASSWORD", "INVALID_LOGIN_CREDENTIALS", "USER_DISABLED"} {
		if strings.Contains(msg, code) {
			return true
		}
	}
	return false
}

var _ identity.Service = (*Client)(nil)
