// Package mail sends transactional email through the Mailgun REST API.
// Delivery is fire-and-forget from the caller's perspective: services log
// failures and never surface them to the API client.
package mail

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"food-ordering-api/config"
)

type Sender interface {
	SendVerification(to, code string) error
}

type Mailgun struct {
	cfg    config.MailConfig
	client *http.Client
}

func NewMailgun(cfg config.MailConfig) *Mailgun {
	return &Mailgun{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (m *Mailgun) SendVerification(to, code string) error {
	return m.send(to, "Verify Your Email", "verification", map[string]string{
		"v:code":     code,
		"v:username": to,
	})
}

func (m *Mailgun) send(to, subject, template string, vars map[string]string) error {
	if m.cfg.APIKey == "" || m.cfg.Domain == "" {
		return fmt.Errorf("mailgun not configured")
	}

	form := url.Values{}
	form.Set("from", m.cfg.FromEmail)
	form.Set("to", to)
	form.Set("subject", subject)
	form.Set("template", template)
	for k, v := range vars {
		form.Set(k, v)
	}

	endpoint := fmt.Sprintf("https://api.mailgun.net/v3/%s/messages", m.cfg.Domain)
	req, err := http.NewRequest(http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.SetBasicAuth("api", m.cfg.APIKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode >= 300 {
		return fmt.Errorf("mailgun responded %d", res.StatusCode)
	}
	return nil
}
