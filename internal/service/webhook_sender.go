package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"guardDuty/internal/config"
	"guardDuty/internal/domain"
	"guardDuty/pkg/e"
)

const webhookAttempts = 3

// WebhookSender pages the external endpoint for every new alert taken off
// the queue.
type WebhookSender struct {
	logger  *slog.Logger
	cfg     config.WebhookConfig
	queue   WebhookSource
	http    *http.Client
	backoff time.Duration
}

func NewWebhookSender(logger *slog.Logger, cfg config.WebhookConfig, q WebhookSource) *WebhookSender {
	return &WebhookSender{
		logger:  logger,
		cfg:     cfg,
		queue:   q,
		http:    &http.Client{Timeout: 5 * time.Second},
		backoff: time.Second,
	}
}

func (s *WebhookSender) Run(ctx context.Context) {
	s.logger.Info("webhook sender started", slog.String("url", s.cfg.URL))

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("webhook sender stopped", slog.String("reason", ctx.Err().Error()))
			return
		default:
		}

		payload, err := s.queue.BRPop(ctx, 5*time.Second)
		if err != nil {
			if errors.Is(err, e.ErrWebHookEmpty) || ctx.Err() != nil {
				continue
			}
			s.logger.Error("webhook queue pop failed", slog.Any("error", err))
			sleep(ctx, 500*time.Millisecond)
			continue
		}

		s.logger.Info("sending webhook",
			slog.String("alert_id", payload.AlertID.String()),
			slog.String("guard_id", payload.GuardID),
		)
		if !s.sendWithRetry(ctx, payload) {
			s.logger.Error("webhook dropped", slog.String("alert_id", payload.AlertID.String()))
		}
	}
}

func (s *WebhookSender) sendWithRetry(ctx context.Context, p domain.WebhookPayload) bool {
	body, err := json.Marshal(p)
	if err != nil {
		s.logger.Error("marshal webhook payload failed", slog.Any("error", err))
		return false
	}

	for attempt := 1; attempt <= webhookAttempts; attempt++ {
		if ctx.Err() != nil {
			return false
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.URL, bytes.NewReader(body))
		if err != nil {
			s.logger.Error("create webhook request failed", slog.Any("error", err))
			return false
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.http.Do(req)
		if err == nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
			_ = resp.Body.Close()
			return true
		}
		if resp != nil {
			_ = resp.Body.Close()
		}

		reason := "unknown"
		if err != nil {
			reason = err.Error()
		} else if resp != nil {
			reason = resp.Status
		}
		s.logger.Warn("webhook failed",
			slog.Int("attempt", attempt),
			slog.String("url", s.cfg.URL),
			slog.String("reason", reason),
		)

		if attempt < webhookAttempts {
			sleep(ctx, time.Duration(attempt)*s.backoff)
		}
	}
	return false
}
