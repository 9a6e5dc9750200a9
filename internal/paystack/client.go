// Package paystack talks to the Paystack transaction-verify endpoint.
package paystack

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

var (
	// ErrRequestFailed marks a network-level failure reaching the gateway.
	ErrRequestFailed = errors.New("paystack: verification request failed")
	// ErrMalformedResponse marks a gateway response that was not valid JSON
	// or did not carry the expected data payload.
	ErrMalformedResponse = errors.New("paystack: malformed gateway response")
)

type Options struct {
	BaseURL    string
	SecretKey  string
	HTTPClient *http.Client
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	secret     string
}

// New builds a verification client. When no HTTP client is supplied the
// default carries no timeout, so a stalled gateway call holds its request
// open until the gateway answers.
func New(opts Options) *Client {
	base := strings.TrimRight(opts.BaseURL, "/")
	if base == "" {
		base = "https://api.paystack.co"
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{}
	}
	return &Client{
		httpClient: client,
		baseURL:    base,
		secret:     strings.TrimSpace(opts.SecretKey),
	}
}

type verifyEnvelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type verifyData struct {
	Status   string  `json:"status"`
	Amount   float64 `json:"amount"`
	Customer struct {
		Email string `json:"email"`
	} `json:"customer"`
}

// VerifyResult is the parsed outcome of a verification call. Amount is in
// the gateway's minor currency units. Data is the raw data payload from the
// gateway, suitable for echoing back to the caller.
type VerifyResult struct {
	Verified      bool
	Message       string
	Amount        float64
	CustomerEmail string
	Data          json.RawMessage
}

// Verify checks a transaction reference against the gateway. The response
// body is read in full before parsing. A gateway that answers but does not
// confirm the transaction yields a result with Verified false and no error.
func (c *Client) Verify(ctx context.Context, reference string) (*VerifyResult, error) {
	endpoint := c.baseURL + "/transaction/verify/" + url.PathEscape(reference)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	var envelope verifyEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	result := &VerifyResult{
		Message: envelope.Message,
		Data:    envelope.Data,
	}
	if !envelope.Status {
		return result, nil
	}

	var data verifyData
	if err := json.Unmarshal(envelope.Data, &data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	result.Verified = data.Status == "success"
	result.Amount = data.Amount
	result.CustomerEmail = data.Customer.Email
	return result, nil
}
