package paynow

import (
	"context"
	"crypto/sha512"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rojahomes/rentmarket/internal/config"
	"github.com/rojahomes/rentmarket/pkg/clients"
)

func newTestClient(address string) *Client {
	cfg := &config.Config{
		PaynowAddress:       address,
		PaynowIntegrationID: "1201",
		PaynowKey:           "integration-key",
		PaynowResultURL:     "https://ro-ja.com/api/payments/webhook",
		PaynowReturnURL:     "https://ro-ja.com/payments/done",
	}
	return New(cfg, clients.NewHTTPClient())
}

func TestSendMobile(t *testing.T) {
	tests := []struct {
		name          string
		response      string
		expectedError error
	}{
		{
			name:     "Accepted transaction",
			response: "status=Ok&pollurl=https%3A%2F%2Fwww.paynow.co.zw%2Finterface%2Fpoll%2F123&instructions=Dial+%2A151%2A2%2A4%23",
		},
		{
			name:          "Rejected transaction",
			response:      "status=Error&error=Insufficient+funds",
			expectedError: ErrTransactionFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPost, r.Method)
				require.Equal(t, "/interface/remotetransaction", r.URL.Path)
				require.NoError(t, r.ParseForm())

				assert.Equal(t, "SUB-42", r.PostForm.Get("reference"))
				assert.Equal(t, "10.00", r.PostForm.Get("amount"))
				assert.Equal(t, "1201", r.PostForm.Get("id"))
				assert.Equal(t, "0771234567", r.PostForm.Get("phone"))
				assert.Equal(t, "ecocash", r.PostForm.Get("method"))
				assert.NotEmpty(t, r.PostForm.Get("hash"))

				w.Write([]byte(tt.response))
			}))
			defer srv.Close()

			client := newTestClient(srv.URL)
			resp, err := client.SendMobile(context.Background(), "SUB-42", "user@example.com", "Premium subscription", 10.0, "0771234567", "ecocash")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "https://www.paynow.co.zw/interface/poll/123", resp.PollURL)
				assert.NotEmpty(t, resp.Instructions)
			}
		})
	}
}

func TestCheckStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("reference=SUB-42&amount=10.00&status=Paid&pollurl=" + url.QueryEscape(r.Host+r.URL.Path)))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	status, err := client.CheckStatus(context.Background(), srv.URL+"/interface/poll/123")

	require.NoError(t, err)
	assert.Equal(t, "SUB-42", status.Reference)
	assert.Equal(t, 10.0, status.Amount)
	assert.True(t, status.Paid())
}

func TestWaitForPaid(t *testing.T) {
	tests := []struct {
		name          string
		statuses      []string
		timeout       time.Duration
		expectedError error
	}{
		{
			name:     "Paid after pending polls",
			statuses: []string{StatusCreated, StatusSent, StatusPaid},
			timeout:  time.Second,
		},
		{
			name:          "Cancelled by the gateway",
			statuses:      []string{StatusCreated, StatusCancelled},
			timeout:       time.Second,
			expectedError: ErrTransactionFailed,
		},
		{
			name:          "Never confirmed",
			statuses:      []string{StatusCreated},
			timeout:       60 * time.Millisecond,
			expectedError: ErrPollTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				status := tt.statuses[len(tt.statuses)-1]
				if calls < len(tt.statuses) {
					status = tt.statuses[calls]
				}
				calls++
				w.Write([]byte("reference=SUB-42&amount=10.00&status=" + url.QueryEscape(status)))
			}))
			defer srv.Close()

			client := newTestClient(srv.URL)
			status, err := client.WaitForPaid(context.Background(), srv.URL+"/poll", 10*time.Millisecond, tt.timeout)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				require.NoError(t, err)
				assert.True(t, status.Paid())
			}
		})
	}
}

func TestVerifyWebhook(t *testing.T) {
	client := newTestClient("https://www.paynow.co.zw")

	sign := func(values url.Values) string {
		keys := make([]string, 0, len(values))
		for k := range values {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, k+"="+values.Get(k))
		}
		sum := sha512.Sum512([]byte(strings.Join(parts, "&") + "integration-key"))
		return hex.EncodeToString(sum[:])
	}

	values := url.Values{}
	values.Set("reference", "SUB-42")
	values.Set("amount", "10.00")
	values.Set("status", "Paid")
	values.Set("hash", sign(values))

	assert.NoError(t, client.VerifyWebhook(values))

	// tampering with a field invalidates the signature
	values.Set("amount", "0.01")
	assert.ErrorIs(t, client.VerifyWebhook(values), ErrInvalidHash)
}
