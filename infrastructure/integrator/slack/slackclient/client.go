package slackclient

import (
	"context"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	slackdomain "github.com/vfg2006/opportunity-summarizer/infrastructure/integrator/slack/domain"
	"github.com/vfg2006/opportunity-summarizer/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	PostMessage(ctx context.Context, channel string, text string) (*slackdomain.PostMessageResponse, error)
}

type SlackClient struct {
	httpClient *http.Client
	baseURL    string
	botToken   string
}

func NewClient(cfg *config.Config) Client {
	return &SlackClient{
		httpClient: &http.Client{
			Timeout: cfg.HTTP.Timeout,
		},
		baseURL:  cfg.Slack.URL,
		botToken: cfg.Slack.BotToken,
	}
}
