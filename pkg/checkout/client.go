// Package checkout drives the customer-facing side of the flow: it asks the
// backend for a checkout session and hands the resulting session id to the
// payment processor's redirect mechanism.
package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// errPaymentFailed mirrors the storefront's generic fallback when the server
// response carries no message.
var errPaymentFailed = errors.New("Payment failed")

// Config is the customization attached to a checkout attempt.
type Config struct {
	Style   string `json:"style"`
	Message string `json:"message"`
}

// RedirectFunc sends the customer to the processor-hosted payment page for
// the given session. It is invoked exactly once per successful session.
type RedirectFunc func(ctx context.Context, sessionID string) error

type Client struct {
	baseURL    string
	httpClient *http.Client
	redirect   RedirectFunc
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func NewClient(baseURL string, redirect RedirectFunc, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
		redirect:   redirect,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type sessionRequest struct {
	ProductID string `json:"productId"`
	Config    Config `json:"config"`
}

type sessionResponse struct {
	ID    string `json:"id"`
	Error string `json:"error"`
}

// Checkout requests a session for the given product and customization, then
// triggers the redirect. Any failure is terminal for the attempt; the caller
// re-invokes to retry.
func (c *Client) Checkout(ctx context.Context, productID string, cfg Config) error {
	body, err := json.Marshal(sessionRequest{
		ProductID: productID,
		Config:    cfg,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/create-checkout-session", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("create checkout session: %w", err)
	}
	defer resp.Body.Close()

	var session sessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return fmt.Errorf("decode checkout session response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if session.Error != "" {
			return errors.New(session.Error)
		}
		return errPaymentFailed
	}

	if session.ID == "" {
		return errPaymentFailed
	}

	if err := c.redirect(ctx, session.ID); err != nil {
		return fmt.Errorf("redirect to checkout: %w", err)
	}
	return nil
}
