package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/fotos-express/internal/config"
)

// Email is an outbound transactional message.
type Email struct {
	To      string
	Subject string
	HTML    string
}

// Mailer delivers transactional email.
type Mailer interface {
	Send(ctx context.Context, email Email) error
}

// NewMailer returns the Resend client when an API key is configured and a
// logging mailer otherwise.
func NewMailer(cfg config.NotificationConfig, logger *zap.Logger) Mailer {
	if strings.TrimSpace(cfg.ResendAPIKey) == "" {
		return &LogMailer{logger: logger}
	}
	return NewResendMailer(cfg, &http.Client{Timeout: cfg.Timeout()})
}

// ResendMailer posts messages to the Resend HTTP API.
type ResendMailer struct {
	baseURL string
	apiKey  string
	from    string
	client  *http.Client
}

// NewResendMailer builds a client against cfg.ResendAPIURL.
func NewResendMailer(cfg config.NotificationConfig, client *http.Client) *ResendMailer {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &ResendMailer{
		baseURL: strings.TrimRight(cfg.ResendAPIURL, "/"),
		apiKey:  cfg.ResendAPIKey,
		from:    cfg.SenderEmail,
		client:  client,
	}
}

type resendPayload struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type resendError struct {
	Message string `json:"message"`
}

func (m *ResendMailer) Send(ctx context.Context, email Email) error {
	if email.To == "" {
		return errors.New("email recipient is required")
	}
	body, err := json.Marshal(resendPayload{
		From:    m.from,
		To:      []string{email.To},
		Subject: email.Subject,
		HTML:    email.HTML,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.apiKey)

	resp, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		var apiErr resendError
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Message != "" {
			return fmt.Errorf("resend rejected email (%d): %s", resp.StatusCode, apiErr.Message)
		}
		return fmt.Errorf("resend rejected email (%d)", resp.StatusCode)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// LogMailer records messages instead of delivering them.
type LogMailer struct {
	logger *zap.Logger
}

// NewLogMailer returns a mailer that only logs.
func NewLogMailer(logger *zap.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) Send(_ context.Context, email Email) error {
	m.logger.Info("email delivery disabled, message logged",
		zap.String("to", email.To),
		zap.String("subject", email.Subject),
	)
	return nil
}
