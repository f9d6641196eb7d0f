package paynow

import (
	"context"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/rojahomes/rentmarket/internal/config"
	"github.com/rojahomes/rentmarket/pkg/clients"
)

const (
	StatusPaid             = "Paid"
	StatusAwaitingDelivery = "Awaiting Delivery"
	StatusCancelled        = "Cancelled"
	StatusSent             = "Sent"
	StatusCreated          = "Created"
)

var (
	ErrTransactionFailed = errors.New("transaction was not accepted by the gateway")
	ErrPollTimeout       = errors.New("transaction was not confirmed in time")
	ErrInvalidHash       = errors.New("result hash does not match")
)

// Client talks to the Paynow mobile-money gateway. Fields in outgoing
// requests are hashed in submission order, which is why the pair list
// below is ordered rather than a map.
type Client struct {
	address        string
	integrationID  string
	integrationKey string
	resultURL      string
	returnURL      string
	client         clients.HTTPClientI
}

func New(cfg *config.Config, client clients.HTTPClientI) *Client {
	return &Client{
		address:        cfg.PaynowAddress,
		integrationID:  cfg.PaynowIntegrationID,
		integrationKey: cfg.PaynowKey,
		resultURL:      cfg.PaynowResultURL,
		returnURL:      cfg.PaynowReturnURL,
		client:         client,
	}
}

type InitResponse struct {
	Status       string
	PollURL      string
	RedirectURL  string
	Instructions string
	Error        string
}

type StatusResponse struct {
	Reference string
	Amount    float64
	Status    string
	PollURL   string
}

func (r StatusResponse) Paid() bool {
	return r.Status == StatusPaid || r.Status == StatusAwaitingDelivery
}

type pair struct{ key, value string }

func (c *Client) hash(pairs []pair) string {
	var b strings.Builder
	for _, p := range pairs {
		b.WriteString(p.value)
	}
	b.WriteString(c.integrationKey)
	sum := sha512.Sum512([]byte(b.String()))
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}

func encode(pairs []pair) []byte {
	vals := make([]string, 0, len(pairs))
	for _, p := range pairs {
		vals = append(vals, url.QueryEscape(p.key)+"="+url.QueryEscape(p.value))
	}
	return []byte(strings.Join(vals, "&"))
}

func (c *Client) post(ctx context.Context, endpoint string, pairs []pair) (url.Values, error) {
	pairs = append(pairs, pair{"hash", c.hash(pairs)})

	headers := http.Header{}
	headers.Set("Content-Type", "application/x-www-form-urlencoded")

	statusCode, body, err := c.client.Post(endpoint, headers, encode(pairs))
	if err != nil {
		return nil, fmt.Errorf("paynow request failed: %w", err)
	}
	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("paynow returned status %d", statusCode)
	}

	parsed, err := url.ParseQuery(string(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse paynow response: %w", err)
	}
	return parsed, nil
}

// SendMobile initiates an express-checkout transaction charged to the
// given mobile wallet. method is normally "ecocash".
func (c *Client) SendMobile(ctx context.Context, reference, email, description string, amount float64, phone, method string) (*InitResponse, error) {
	pairs := []pair{
		{"resulturl", c.resultURL},
		{"returnurl", c.returnURL},
		{"reference", reference},
		{"amount", strconv.FormatFloat(amount, 'f', 2, 64)},
		{"id", c.integrationID},
		{"additionalinfo", description},
		{"authemail", email},
		{"phone", phone},
		{"method", method},
		{"status", "Message"},
	}

	parsed, err := c.post(ctx, c.address+"/interface/remotetransaction", pairs)
	if err != nil {
		return nil, err
	}

	resp := &InitResponse{
		Status:       parsed.Get("status"),
		PollURL:      parsed.Get("pollurl"),
		RedirectURL:  parsed.Get("browserurl"),
		Instructions: parsed.Get("instructions"),
		Error:        parsed.Get("error"),
	}
	if !strings.EqualFold(resp.Status, "ok") {
		zap.L().Warn("paynow rejected transaction",
			zap.String("reference", reference), zap.String("error", resp.Error))
		return resp, ErrTransactionFailed
	}
	return resp, nil
}

// CheckStatus polls the transaction status URL returned at initiation.
func (c *Client) CheckStatus(ctx context.Context, pollURL string) (*StatusResponse, error) {
	statusCode, body, err := c.client.Post(pollURL, http.Header{}, nil)
	if err != nil {
		return nil, fmt.Errorf("paynow poll failed: %w", err)
	}
	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("paynow poll returned status %d", statusCode)
	}

	parsed, err := url.ParseQuery(string(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse paynow poll response: %w", err)
	}

	amount, _ := strconv.ParseFloat(parsed.Get("amount"), 64)
	return &StatusResponse{
		Reference: parsed.Get("reference"),
		Amount:    amount,
		Status:    parsed.Get("status"),
		PollURL:   parsed.Get("pollurl"),
	}, nil
}

// WaitForPaid polls until the transaction reaches a paid state, the
// gateway cancels it, or the deadline passes.
func (c *Client) WaitForPaid(ctx context.Context, pollURL string, interval, timeout time.Duration) (*StatusResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, ErrPollTimeout
		case <-ticker.C:
			status, err := c.CheckStatus(ctx, pollURL)
			if err != nil {
				zap.L().Warn("paynow poll attempt failed", zap.Error(err))
				continue
			}
			if status.Paid() {
				return status, nil
			}
			if status.Status == StatusCancelled {
				return status, ErrTransactionFailed
			}
		}
	}
}

// VerifyWebhook validates the gateway's result callback: every field
// except hash is joined as key=value pairs in key order, the integration
// key is appended, and the SHA-512 digest must match the hash field.
func (c *Client) VerifyWebhook(values url.Values) error {
	keys := make([]string, 0, len(values))
	for k := range values {
		if k == "hash" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+values.Get(k))
	}

	sum := sha512.Sum512([]byte(strings.Join(parts, "&") + c.integrationKey))
	if hex.EncodeToString(sum[:]) != values.Get("hash") {
		return ErrInvalidHash
	}
	return nil
}
