// Package calendar is the client for the external visit calendar API. Sync
// is best-effort everywhere it is used: a failed call never blocks the
// local visit record.
package calendar

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

type Config struct {
	URL     string        `split_words:"true" required:"true"`
	Token   string        `split_words:"true" required:"true"`
	Timeout time.Duration `split_words:"true" default:"10s"`
}

type Client struct {
	http *resty.Client
}

type eventRequest struct {
	Phone string `json:"phone"`
	When  string `json:"when"`
}

type eventResponse struct {
	Link  string `json:"link"`
	Error string `json:"error,omitempty"`
}

func NewClient(cfg Config) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.URL), "/")
	if baseURL == "" {
		return nil, errors.New("calendar url is required")
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid calendar url: %w", err)
	}

	token := strings.TrimSpace(cfg.Token)
	if token == "" {
		return nil, errors.New("calendar token is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	http := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(token).
		SetTimeout(timeout)

	return &Client{http: http}, nil
}

func MustNew(cfg Config) *Client {
	client, err := NewClient(cfg)
	if err != nil {
		panic(err)
	}
	return client
}

// CreateEvent registers a visit on the external calendar and returns the
// event link. The `when` value is free-form, as normalized by the model.
func (c *Client) CreateEvent(ctx context.Context, phone, when string) (string, error) {
	if strings.TrimSpace(phone) == "" {
		return "", errors.New("phone is required")
	}
	if strings.TrimSpace(when) == "" {
		return "", errors.New("event time is required")
	}

	var out eventResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(eventRequest{Phone: phone, When: when}).
		SetResult(&out).
		Post("/events")
	if err != nil {
		return "", fmt.Errorf("create calendar event: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("calendar api status=%d body=%s", resp.StatusCode(), resp.String())
	}
	if out.Error != "" {
		return "", errors.New(out.Error)
	}
	return out.Link, nil
}
