// Package logmail provides a mailer.Client that writes emails to the log
// instead of delivering them. It is used when no provider is configured.
package logmail

import (
	"context"

	"backma/pkg/logger"
	"backma/pkg/mailer"

	"go.uber.org/zap"
)

type Client struct{}

func New() *Client { return &Client{} }

func (*Client) Send(ctx context.Context, msg mailer.Message) (mailer.RateLimitStatus, error) {
	logger.Info(ctx, "email not delivered, no provider configured",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.String("template", msg.Template))
	if logger.IsDebug(ctx) {
		logger.Debug(ctx, "email body", zap.String("text", msg.Text))
	}

	return mailer.RateLimitStatus{}, nil
}

var _ mailer.Client = (*Client)(nil)
