package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"lottery-miniapp-client/internal/models"
)

const (
	PathLogin     = "/api/login"
	PathRegister  = "/api/register"
	PathBuyTicket = "/api/buy-ticket"
	PathDraw      = "/api/draw"
	PathRecharge  = "/api/recharge"
)

var (
	ErrTransport         = errors.New("transport failure")
	ErrMalformedResponse = errors.New("malformed response")
)

// LotteryAPI is the remote lottery server. Every method returns the decoded
// body whatever the HTTP status; an error means no usable body arrived.
type LotteryAPI interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
	BuyTicket(ctx context.Context, token string, req models.TicketRequest) (*models.BalanceResponse, error)
	Draw(ctx context.Context, token string) (*models.DrawResponse, error)
	Recharge(ctx context.Context, token string, req models.RechargeRequest) (*models.BalanceResponse, error)
}

type APIClient struct {
	baseURL string
	http    *http.Client
}

// NewAPIClient targets baseURL. A zero timeout waits as long as the caller's
// context allows.
func NewAPIClient(baseURL string, timeout time.Duration) *APIClient {
	return &APIClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *APIClient) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.post(ctx, PathLogin, "", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *APIClient) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.post(ctx, PathRegister, "", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *APIClient) BuyTicket(ctx context.Context, token string, req models.TicketRequest) (*models.BalanceResponse, error) {
	var resp models.BalanceResponse
	if err := c.post(ctx, PathBuyTicket, token, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *APIClient) Draw(ctx context.Context, token string) (*models.DrawResponse, error) {
	var resp models.DrawResponse
	if err := c.post(ctx, PathDraw, token, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *APIClient) Recharge(ctx context.Context, token string, req models.RechargeRequest) (*models.BalanceResponse, error) {
	var resp models.BalanceResponse
	if err := c.post(ctx, PathRecharge, token, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *APIClient) post(ctx context.Context, path, token string, body, out interface{}) error {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal %s request: %w", path, err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrTransport, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %s: reading body: %v", ErrTransport, path, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %s returned status %d: %v", ErrMalformedResponse, path, resp.StatusCode, err)
	}
	return nil
}
