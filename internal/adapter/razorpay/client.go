package razorpay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/shopzone/checkout/internal/domain/model"
)

// APIError represents a non-2xx reply from the provider.
type APIError struct {
	StatusCode  int
	Code        string
	Description string
}

func (e APIError) Error() string {
	return fmt.Sprintf("provider error %d: %s %s", e.StatusCode, e.Code, e.Description)
}

// Client exposes payment provider operations used by the checkout flow.
type Client interface {
	CreateOrder(ctx context.Context, req model.OrderRequest, receipt string) (*model.ProviderOrder, error)
}

// HTTPClient implements Client against the Razorpay Orders API.
type HTTPClient struct {
	baseURL    *url.URL
	keyID      string
	keySecret  string
	httpClient *http.Client
	logger     *slog.Logger
}

type orderPayload struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

// orderResponse mirrors the provider's order JSON.
type orderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

type errorResponse struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

// NewHTTPClient creates a provider client with a bounded request timeout.
func NewHTTPClient(baseURL, keyID, keySecret string, timeout time.Duration, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse provider url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("provider url must be absolute")
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPClient{
		baseURL:   parsed,
		keyID:     keyID,
		keySecret: keySecret,
		logger:    logger,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// CreateOrder registers a payment order with the provider. The receipt token
// keeps retried checkout attempts from creating duplicate orders.
func (c *HTTPClient) CreateOrder(ctx context.Context, req model.OrderRequest, receipt string) (*model.ProviderOrder, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/v1/orders")

	payload, err := json.Marshal(orderPayload{
		Amount:   req.Amount,
		Currency: req.Currency,
		Receipt:  receipt,
	})
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.SetBasicAuth(c.keyID, c.keySecret)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr errorResponse
		_ = json.Unmarshal(body, &apiErr)
		c.logger.Error("provider order creation failed",
			slog.Int("status", resp.StatusCode),
			slog.String("code", apiErr.Error.Code),
		)
		return nil, APIError{
			StatusCode:  resp.StatusCode,
			Code:        apiErr.Error.Code,
			Description: apiErr.Error.Description,
		}
	}

	var data orderResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, err
	}

	return &model.ProviderOrder{
		OrderID:  data.ID,
		Amount:   data.Amount,
		Currency: data.Currency,
		Receipt:  data.Receipt,
	}, nil
}
