package client

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

	"github.com/anujthakur2004/Fashion-Hub/internal/config"

	"github.com/sony/gobreaker/v2"
)

// ErrNotConfigured means no secret key is set: the external payment
// path is unavailable, not broken.
var ErrNotConfigured = errors.New("stripe: secret key not configured")

type CheckoutLine struct {
	Name       string
	UnitAmount int64 // minor currency units
	Quantity   int64
}

type PaymentClient interface {
	CreateCheckoutSession(ctx context.Context, lines []CheckoutLine, successURL, cancelURL string) (string, error)
}

type stripeClientImpl struct {
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[string]
	baseApiURL string
	secretKey  string
	currency   string
}

func NewStripeClient(stripeCfg *config.Stripe) PaymentClient {
	return &stripeClientImpl{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		breaker: gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
			Name: "stripe-checkout",
		}),
		baseApiURL: stripeCfg.BaseApiURL,
		secretKey:  stripeCfg.SecretKey,
		currency:   stripeCfg.Currency,
	}
}

// CreateCheckoutSession opens a provider-hosted payment page and returns
// the URL the buyer must be redirected to.
func (c *stripeClientImpl) CreateCheckoutSession(ctx context.Context, lines []CheckoutLine, successURL, cancelURL string) (string, error) {
	if c.secretKey == "" {
		return "", ErrNotConfigured
	}

	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("success_url", successURL)
	form.Set("cancel_url", cancelURL)
	for i, line := range lines {
		prefix := fmt.Sprintf("line_items[%d]", i)
		form.Set(prefix+"[price_data][currency]", c.currency)
		form.Set(prefix+"[price_data][product_data][name]", line.Name)
		form.Set(prefix+"[price_data][unit_amount]", strconv.FormatInt(line.UnitAmount, 10))
		form.Set(prefix+"[quantity]", strconv.FormatInt(line.Quantity, 10))
	}

	return c.breaker.Execute(func() (string, error) {
		return c.postCheckoutSession(ctx, form)
	})
}

func (c *stripeClientImpl) postCheckoutSession(ctx context.Context, form url.Values) (string, error) {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseApiURL+"/v1/checkout/sessions",
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return "", fmt.Errorf("http new request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("stripe request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("stripe error %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		ID  string `json:"id"`
		URL string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode stripe response: %w", err)
	}
	if result.URL == "" {
		return "", fmt.Errorf("stripe session %s: no redirect url", result.ID)
	}

	return result.URL, nil
}
