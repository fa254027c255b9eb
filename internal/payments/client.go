package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client talks to the hosted payment gateway's payment-intent API. The
// gateway speaks form-encoded HTTP with secret-key bearer auth; amounts
// are always in minor currency units.
type Client struct {
	httpClient *http.Client
	baseURL    string
	secretKey  string
	currency   string
}

// Intent is the subset of the gateway's payment-intent object the backend
// needs. ClientSecret is handed to the frontend to confirm the charge.
type Intent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}

func NewClient(baseURL, secretKey, currency string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		secretKey:  secretKey,
		currency:   currency,
	}
}

// CreateIntent creates a payment intent for the given amount in minor
// currency units and returns it with its client secret.
func (c *Client) CreateIntent(ctx context.Context, amount int64) (*Intent, error) {
	if amount <= 0 {
		return nil, errors.New("amount must be positive")
	}

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amount, 10))
	form.Set("currency", c.currency)
	form.Set("payment_method_types[]", "card")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("payment gateway error: status %d", resp.StatusCode)
	}

	var intent Intent
	if err := json.Unmarshal(respBody, &intent); err != nil {
		return nil, err
	}
	if intent.ClientSecret == "" {
		return nil, errors.New("gateway response missing client secret")
	}

	return &intent, nil
}
