package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/soulcross/soulcross/pkg/clients"
	"go.uber.org/zap"
)

const apiBaseURL = "https://api.stripe.com"

type SessionParams struct {
	AmountCents    int64
	Currency       string
	ProductName    string
	SuccessURL     string
	CancelURL      string
	IdempotencyKey string
	Metadata       map[string]string
}

type Client struct {
	secretKey string
	baseURL   string
	client    clients.HTTPClientI
}

func New(secretKey string, client clients.HTTPClientI) *Client {
	return &Client{
		secretKey: secretKey,
		baseURL:   apiBaseURL,
		client:    client,
	}
}

// CreateCheckoutSession creates a payment Checkout Session. The idempotency
// key is forwarded to the provider, so retries of the same logical checkout
// never produce a second session.
func (c *Client) CreateCheckoutSession(ctx context.Context, params SessionParams) (string, error) {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("payment_method_types[0]", "card")
	form.Set("line_items[0][price_data][currency]", params.Currency)
	form.Set("line_items[0][price_data][product_data][name]", params.ProductName)
	form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(params.AmountCents, 10))
	form.Set("line_items[0][quantity]", "1")
	form.Set("success_url", params.SuccessURL)
	form.Set("cancel_url", params.CancelURL)
	for key, value := range params.Metadata {
		form.Set(fmt.Sprintf("metadata[%s]", key), value)
	}

	headers := http.Header{}
	headers.Set("Authorization", "Bearer "+c.secretKey)
	if params.IdempotencyKey != "" {
		headers.Set("Idempotency-Key", params.IdempotencyKey)
	}

	statusCode, respBody, err := c.client.PostForm(ctx, c.baseURL+"/v1/checkout/sessions", headers, form)
	if err != nil {
		return "", fmt.Errorf("create checkout session: %w", err)
	}

	if statusCode != http.StatusOK {
		var errResp struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if err := json.Unmarshal(respBody, &errResp); err != nil || errResp.Error.Message == "" {
			zap.L().Error("unexpected checkout session response", zap.Int("status", statusCode))
			return "", fmt.Errorf("create checkout session: unexpected status %d", statusCode)
		}
		return "", fmt.Errorf("create checkout session: %s", errResp.Error.Message)
	}

	var session struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(respBody, &session); err != nil {
		return "", fmt.Errorf("can't parse checkout session response: %w", err)
	}
	if session.ID == "" {
		return "", fmt.Errorf("checkout session response has no id")
	}
	return session.ID, nil
}
