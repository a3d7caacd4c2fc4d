// Package sheets sends submitted forms to the spreadsheet webhook. Delivery
// is best-effort: a failed write never fails the user-facing operation.
package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/shag-platform/shag-api/pkg/httpclient"
	"github.com/shag-platform/shag-api/pkg/logger"
	"github.com/shag-platform/shag-api/pkg/metrics"
)

// Form identifies which sheet variant a payload belongs to.
type Form string

const (
	FormBooking      Form = "booking"
	FormEntrepreneur Form = "entrepreneur"
	FormYouth        Form = "youth"
)

// Delivery reports what happened to a submission. Unconfirmed still counts
// as success for the caller; the distinction only surfaces in responses and
// metrics.
type Delivery string

const (
	DeliverySubmitted   Delivery = "submitted"
	DeliveryUnconfirmed Delivery = "submitted_unconfirmed"
)

const sourceLabel = "ШАГ Платформа"

// Client posts form payloads to the configured webhook.
type Client struct {
	webhookURL string
	httpClient httpclient.Client
	now        func() time.Time
}

// NewClient creates a sheets client. An empty webhook URL disables delivery;
// every submission then reports as unconfirmed.
func NewClient(webhookURL string, httpClient httpclient.Client) *Client {
	return &Client{
		webhookURL: webhookURL,
		httpClient: httpClient,
		now:        time.Now,
	}
}

// Submit posts one form to the webhook, stamping the payload with the
// submission time and the platform source label. It never returns an error:
// any failure downgrades the result to DeliveryUnconfirmed.
func (c *Client) Submit(ctx context.Context, form Form, payload Payload) Delivery {
	stamped := make(map[string]string, len(payload)+2)
	for k, v := range payload {
		stamped[k] = v
	}
	stamped["Отметка времени"] = c.now().Format("02.01.2006, 15:04:05")
	stamped["Источник"] = sourceLabel

	delivery := c.post(ctx, form, stamped)
	metrics.SheetDeliveries.WithLabelValues(string(form), string(delivery)).Inc()
	return delivery
}

func (c *Client) post(ctx context.Context, form Form, payload map[string]string) Delivery {
	if c.webhookURL == "" {
		logger.Debug("Sheets webhook not configured, skipping delivery",
			zap.String("form", string(form)))
		return DeliveryUnconfirmed
	}

	body, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to encode sheet payload",
			zap.Error(err),
			zap.String("form", string(form)))
		return DeliveryUnconfirmed
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(body))
	if err != nil {
		logger.Error("Failed to build sheet request",
			zap.Error(err),
			zap.String("form", string(form)))
		return DeliveryUnconfirmed
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn("Sheet delivery failed",
			zap.Error(err),
			zap.String("form", string(form)))
		return DeliveryUnconfirmed
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Warn("Sheet webhook returned non-success status",
			zap.String("form", string(form)),
			zap.Int("status_code", resp.StatusCode))
		return DeliveryUnconfirmed
	}

	logger.Info("Sheet delivery confirmed",
		zap.String("form", string(form)),
		zap.Int("status_code", resp.StatusCode))
	return DeliverySubmitted
}
