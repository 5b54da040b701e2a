package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"wallet-engine/internal/core/domain"
	"wallet-engine/internal/core/ports"

	"github.com/rs/zerolog"
)

// defaultWebhookRetryIntervals are the waits between delivery attempts.
var defaultWebhookRetryIntervals = []time.Duration{
	15 * time.Second,
	60 * time.Second,
	2 * time.Minute,
	5 * time.Minute,
	10 * time.Minute,
}

// Webhook event types.
const (
	EventOperationSucceeded = "OPERATION_SUCCEEDED"
	EventOperationFailed    = "OPERATION_FAILED"
)

// Headers carried by webhook requests.
const (
	HeaderWebhookSignature = "X-Signature"
	HeaderWebhookTimestamp = "X-Timestamp"
)

// WebhookPayload is the JSON body posted to the webhook URL.
type WebhookPayload struct {
	EventType string              `json:"event_type"`
	Data      domain.Notification `json:"data"`
}

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// WebhookNotifier implements ports.Notifier by posting each notification to
// a single URL, signed with HMAC-SHA256 over "TIMESTAMP.BODY".
type WebhookNotifier struct {
	url        string
	secret     string
	sigSvc     ports.SignatureService
	httpClient HTTPClient
	intervals  []time.Duration
	log        zerolog.Logger
	now        func() time.Time
}

// NewWebhookNotifier creates a webhook notifier. A nil intervals slice uses the defaults.
func NewWebhookNotifier(
	url, secret string,
	sigSvc ports.SignatureService,
	httpClient HTTPClient,
	intervals []time.Duration,
	log zerolog.Logger,
) *WebhookNotifier {
	if intervals == nil {
		intervals = defaultWebhookRetryIntervals
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &WebhookNotifier{
		url:        url,
		secret:     secret,
		sigSvc:     sigSvc,
		httpClient: httpClient,
		intervals:  intervals,
		log:        log.With().Str("component", "webhook").Logger(),
		now:        time.Now,
	}
}

// Notify signs the notification and delivers it asynchronously with retries.
func (s *WebhookNotifier) Notify(_ context.Context, n domain.Notification) error {
	eventType := EventOperationSucceeded
	if !n.Success {
		eventType = EventOperationFailed
	}

	body, err := json.Marshal(WebhookPayload{EventType: eventType, Data: n})
	if err != nil {
		return fmt.Errorf("marshal webhook payload: %w", err)
	}

	ts := s.now().Unix()
	signature := s.sigSvc.Sign(s.secret, CanonicalNotification(ts, string(body)))

	go s.deliverWithRetries(body, ts, signature, n.Operation)
	return nil
}

// deliverWithRetries posts the payload until a 2xx or the intervals run out.
func (s *WebhookNotifier) deliverWithRetries(body []byte, ts int64, signature, op string) {
	for attempt := 0; attempt <= len(s.intervals); attempt++ {
		if attempt > 0 {
			time.Sleep(s.intervals[attempt-1])
		}

		req, err := http.NewRequest(http.MethodPost, s.url, bytes.NewReader(body))
		if err != nil {
			s.log.Error().Err(err).Str("operation", op).Int("attempt", attempt+1).Msg("webhook: failed to create request")
			return
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(HeaderWebhookTimestamp, strconv.FormatInt(ts, 10))
		req.Header.Set(HeaderWebhookSignature, signature)

		resp, err := s.httpClient.Do(req)
		if err != nil {
			s.log.Warn().Err(err).Str("operation", op).Int("attempt", attempt+1).Msg("webhook: delivery failed")
			continue
		}
		resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			s.log.Debug().Str("operation", op).Int("attempt", attempt+1).Int("status", resp.StatusCode).Msg("webhook: delivered")
			return
		}

		s.log.Warn().Str("operation", op).Int("attempt", attempt+1).Int("status", resp.StatusCode).Msg("webhook: non-2xx response, retrying")
	}

	s.log.Error().Str("operation", op).Msg("webhook: all retry attempts exhausted")
}
