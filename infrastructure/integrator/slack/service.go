package slack

import (
	"context"
	"errors"

	slackdomain "github.com/vfg2006/opportunity-summarizer/infrastructure/integrator/slack/domain"
	"github.com/vfg2006/opportunity-summarizer/infrastructure/integrator/slack/slackclient"
	"github.com/vfg2006/opportunity-summarizer/internal/config"
	"github.com/vfg2006/opportunity-summarizer/pkg/log"
)

type SlackIntegrator struct {
	channelID string
	Client    slackclient.Client
}

func New(cfg *config.Config, client slackclient.Client) *SlackIntegrator {
	return &SlackIntegrator{
		channelID: cfg.Slack.ChannelID,
		Client:    client,
	}
}

// PublishSummary envia o texto para o canal configurado
func (s *SlackIntegrator) PublishSummary(ctx context.Context, text string) error {
	logger := log.ForContext(ctx).WithField("channel", s.channelID)

	resp, err := s.Client.PostMessage(ctx, s.channelID, text)
	if err != nil {
		var apiErr *slackdomain.APIError
		if errors.As(err, &apiErr) {
			logger.WithFields(log.Fields{
				"status_code": apiErr.StatusCode,
				"slack_error": apiErr.Code,
				"body":        apiErr.Body,
			}).Error("slack: error posting summary")
		} else {
			logger.WithError(err).Error("slack: error posting summary")
		}

		return err
	}

	logger.WithField("ts", resp.TS).Info("slack: summary posted")

	return nil
}
