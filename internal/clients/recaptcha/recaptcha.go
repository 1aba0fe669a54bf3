package recaptcha

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const verifyURL = "https://www.google.com/recaptcha/api/siteverify"

type VerifyResponse struct {
	Success    bool     `json:"success"`
	Score      float64  `json:"score"`
	Action     string   `json:"action"`
	Hostname   string   `json:"hostname"`
	ErrorCodes []string `json:"error-codes,omitempty"`
}

type Client struct {
	secret string
	http   *http.Client
}

func New(secret string) *Client {
	return &Client{
		secret: secret,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Verify checks a client-side reCAPTCHA token before a public form post is
// accepted. An empty secret disables the check (local/dev).
func (c *Client) Verify(ctx context.Context, token string) error {
	if c == nil || c.secret == "" {
		return nil
	}
	if strings.TrimSpace(token) == "" {
		return errors.New("recaptcha token is required")
	}

	form := url.Values{}
	form.Set("secret", c.secret)
	form.Set("response", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, verifyURL,
		strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var out VerifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return err
	}
	if !out.Success {
		return errors.New("recaptcha verification failed")
	}
	return nil
}
