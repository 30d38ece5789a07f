package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/wifikeeper/internal/client/models"
	"github.com/dmitrijs2005/wifikeeper/internal/common"
)

// TokenSource supplies the current bearer token, or "" when no session is
// active. The session store's Token method satisfies it.
type TokenSource func() string

// HTTPClient talks JSON over REST to the WifiKeeper backend.
//
// No timeouts or retries are applied beyond what the per-call context
// carries; a hung backend call blocks until the context is done.
type HTTPClient struct {
	baseURL     string
	httpClient  *http.Client
	tokenSource TokenSource
}

// NewHTTPClient builds a client for the given base URL (including the /api
// prefix, e.g. "http://localhost:8080/api").
func NewHTTPClient(baseURL string, tokenSource TokenSource) *HTTPClient {
	return &HTTPClient{
		baseURL:     strings.TrimRight(baseURL, "/"),
		httpClient:  &http.Client{},
		tokenSource: tokenSource,
	}
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	var resp authResponseDTO
	err := c.doJSON(ctx, http.MethodPost, "/auth/login", authRequestDTO{Email: email, Password: password}, &resp)
	if err != nil {
		return "", nil, err
	}
	return resp.Token, resp.User.toModel(), nil
}

func (c *HTTPClient) Register(ctx context.Context, email, password string) (string, *models.User, error) {
	var resp authResponseDTO
	err := c.doJSON(ctx, http.MethodPost, "/auth/register", authRequestDTO{Email: email, Password: password}, &resp)
	if err != nil {
		return "", nil, err
	}
	return resp.Token, resp.User.toModel(), nil
}

func (c *HTTPClient) CreateCredential(ctx context.Context, req models.CreateRequest) (*models.WiFiCredential, error) {
	var resp credentialDTO
	if err := c.doJSON(ctx, http.MethodPost, "/wifi", toCreateDTO(req), &resp); err != nil {
		return nil, err
	}
	cred := resp.toModel()
	return &cred, nil
}

func (c *HTTPClient) ListCredentials(ctx context.Context) ([]models.WiFiCredential, error) {
	var resp []credentialDTO
	if err := c.doJSON(ctx, http.MethodGet, "/wifi", nil, &resp); err != nil {
		return nil, err
	}
	creds := make([]models.WiFiCredential, 0, len(resp))
	for _, d := range resp {
		creds = append(creds, d.toModel())
	}
	return creds, nil
}

func (c *HTTPClient) GetCredential(ctx context.Context, id string) (*models.WiFiCredential, error) {
	var resp credentialDTO
	if err := c.doJSON(ctx, http.MethodGet, "/wifi/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, err
	}
	cred := resp.toModel()
	return &cred, nil
}

func (c *HTTPClient) DeleteCredential(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/wifi/"+url.PathEscape(id), nil, nil)
}

func (c *HTTPClient) ListAllCredentials(ctx context.Context) ([]models.AdminCredential, error) {
	var resp []credentialDTO
	if err := c.doJSON(ctx, http.MethodGet, "/admin/credentials", nil, &resp); err != nil {
		return nil, err
	}
	creds := make([]models.AdminCredential, 0, len(resp))
	for _, d := range resp {
		creds = append(creds, d.toAdminModel())
	}
	return creds, nil
}

// doJSON performs one request/response cycle: marshal body, attach the bearer
// token when one is available, and decode into out (skipped when out is nil).
// Non-2xx responses are mapped by mapError.
func (c *HTTPClient) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.tokenSource(); token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.mapError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// mapError converts an error response to a sentinel wrapped with the
// backend's message. The structured {"error","message"} body is preferred;
// a fixed default per class is used when the body is absent or unparsable.
func (c *HTTPClient) mapError(resp *http.Response) error {
	var sentinel error
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		sentinel = ErrUnauthorized
	case http.StatusForbidden:
		sentinel = ErrForbidden
	case http.StatusNotFound:
		sentinel = ErrNotFound
	case http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity:
		sentinel = ErrValidation
	default:
		sentinel = ErrUnavailable
	}

	var body errorDTO
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		msg := body.Message
		if msg == "" {
			msg = body.Error
		}
		if msg != "" {
			return fmt.Errorf("%w: %s", sentinel, msg)
		}
	}
	return fmt.Errorf("%w: %s", sentinel, resp.Status)
}
