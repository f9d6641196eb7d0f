package sms

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rojahomes/rentmarket/internal/config"
	"github.com/rojahomes/rentmarket/pkg/clients"
)

var ErrSendFailed = errors.New("sms gateway rejected the message")

// Client sends text messages through the Infobip HTTP gateway.
type Client struct {
	address string
	apiKey  string
	sender  string
	client  clients.HTTPClientI
}

func New(cfg *config.Config, client clients.HTTPClientI) *Client {
	return &Client{
		address: cfg.SMSAddress,
		apiKey:  cfg.SMSKey,
		sender:  cfg.SMSSender,
		client:  client,
	}
}

type destination struct {
	To string `json:"to"`
}

type textMessage struct {
	Destinations []destination `json:"destinations"`
	From         string        `json:"from"`
	Text         string        `json:"text"`
}

type sendRequest struct {
	Messages []textMessage `json:"messages"`
}

func (c *Client) Send(ctx context.Context, phone, text string) error {
	body, err := json.Marshal(sendRequest{
		Messages: []textMessage{{
			Destinations: []destination{{To: phone}},
			From:         c.sender,
			Text:         text,
		}},
	})
	if err != nil {
		return fmt.Errorf("failed to encode sms request: %w", err)
	}

	headers := http.Header{}
	headers.Set("Authorization", "App "+c.apiKey)
	headers.Set("Content-Type", "application/json")
	headers.Set("Accept", "application/json")

	statusCode, respBody, err := c.client.Post(c.address+"/sms/2/text/advanced", headers, body)
	if err != nil {
		return fmt.Errorf("sms request failed: %w", err)
	}
	if statusCode != http.StatusOK && statusCode != http.StatusCreated {
		return fmt.Errorf("%w: status %d: %s", ErrSendFailed, statusCode, respBody)
	}
	return nil
}

// SendVerificationCode delivers the 6-digit phone verification code.
func (c *Client) SendVerificationCode(ctx context.Context, phone, code string) error {
	text := fmt.Sprintf("Your ROJA ACCOMODATION verification code is: %s. This code will expire in 5 minutes.", code)
	return c.Send(ctx, phone, text)
}
