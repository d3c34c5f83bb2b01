package newsletter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

var (
	// ErrNotConfigured signals a missing API key; the endpoint reports
	// service unavailable without being fatal to the process.
	ErrNotConfigured = errors.New("newsletter service is not configured")
	// ErrUpstream signals a non-2xx response from the track call.
	ErrUpstream = errors.New("upstream email service error")
)

// ValidationError rejects malformed subscribe input with a message safe to
// show to the caller.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// SubscriptionLog records accepted subscriptions durably. Logging failures
// never fail the subscribe flow.
type SubscriptionLog interface {
	Record(email, name, source, page string) error
}

// Service proxies subscriptions to the Plunk email API: one track call to
// create the contact, one send call for the welcome email.
type Service struct {
	client        *resty.Client
	apiKey        string
	defaultSource string
	recent        RecentStore
	log           SubscriptionLog
}

func NewService(baseURL, apiKey, defaultSource string, recent RecentStore, log SubscriptionLog) *Service {
	client := resty.New().
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetTimeout(15 * time.Second).
		SetHeader("Content-Type", "application/json")

	return &Service{
		client:        client,
		apiKey:        apiKey,
		defaultSource: defaultSource,
		recent:        recent,
		log:           log,
	}
}

func (s *Service) Configured() bool {
	return s.apiKey != ""
}

// Subscribe runs the full flow. A filled honeypot and a duplicate within the
// recent window both return nil without side effects, so callers report
// success either way. A failed welcome send after a successful track is also
// overall success: the contact is subscribed, the welcome is silently
// dropped and the email is left unmarked so a later attempt can send it.
func (s *Service) Subscribe(ctx context.Context, req SubscribeRequest) error {
	if !s.Configured() {
		return ErrNotConfigured
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		return &ValidationError{Message: "Email is required."}
	}
	if !IsValidEmail(email) {
		return &ValidationError{Message: "Please enter a valid email address."}
	}

	if strings.TrimSpace(req.Company) != "" {
		slog.Debug("Honeypot triggered, pretending success", "email", NormalizeEmail(email))
		return nil
	}

	if s.recent.Seen(email) {
		slog.Debug("Duplicate within idempotency window, pretending success", "email", NormalizeEmail(email))
		return nil
	}

	if err := s.track(ctx, email, req); err != nil {
		return err
	}

	if s.log != nil {
		source := strings.TrimSpace(req.Data.Source)
		if source == "" {
			source = s.defaultSource
		}
		if err := s.log.Record(NormalizeEmail(email), strings.TrimSpace(req.Name), source, strings.TrimSpace(req.Data.Page)); err != nil {
			slog.Warn("Failed to record subscription", "error", err)
		}
	}

	if err := s.sendWelcome(ctx, email, strings.TrimSpace(req.Name)); err != nil {
		slog.Warn("Welcome send failed, contact is subscribed anyway", "error", err)
		return nil
	}

	s.recent.Mark(email)
	return nil
}

func (s *Service) track(ctx context.Context, email string, req SubscribeRequest) error {
	data := map[string]string{
		"source":       s.defaultSource,
		"page":         "unknown",
		"utm_source":   SanitizeUTM(req.Data.UTMSource),
		"utm_campaign": SanitizeUTM(req.Data.UTMCampaign),
	}
	if v := strings.TrimSpace(req.Data.Source); v != "" {
		data["source"] = v
	}
	if v := strings.TrimSpace(req.Data.Page); v != "" {
		data["page"] = v
	}
	if req.Data.UTMMedium != nil {
		data["utm_medium"] = SanitizeUTM(*req.Data.UTMMedium)
	}
	if req.Data.UTMTerm != nil {
		data["utm_term"] = SanitizeUTM(*req.Data.UTMTerm)
	}
	if req.Data.UTMContent != nil {
		data["utm_content"] = SanitizeUTM(*req.Data.UTMContent)
	}
	if name := strings.TrimSpace(req.Name); name != "" {
		data["name"] = name
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(s.apiKey).
		SetBody(map[string]interface{}{
			"event":      "subscribed",
			"email":      email,
			"subscribed": true,
			"data":       data,
		}).
		Post("/track")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if !resp.IsSuccess() {
		slog.Error("Track call rejected", "status", resp.StatusCode(), "body", resp.String())
		return fmt.Errorf("%w: track returned %d", ErrUpstream, resp.StatusCode())
	}
	return nil
}

func (s *Service) sendWelcome(ctx context.Context, email, name string) error {
	body := "<p>Thanks for subscribing! You're on the list.</p>"
	if name != "" {
		body += "<p>Cheers,<br/>Szymon</p>"
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(s.apiKey).
		SetBody(map[string]interface{}{
			"to":         email,
			"subject":    "Welcome to the list 👋",
			"body":       body,
			"subscribed": true,
		}).
		Post("/send")
	if err != nil {
		return err
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("send returned %d", resp.StatusCode())
	}
	return nil
}
