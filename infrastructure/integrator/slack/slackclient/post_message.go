package slackclient

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/pkg/errors"
	slackdomain "github.com/vfg2006/opportunity-summarizer/infrastructure/integrator/slack/domain"
)

const postMessagePath = "/chat.postMessage"

func (c *SlackClient) PostMessage(ctx context.Context, channel string, text string) (*slackdomain.PostMessageResponse, error) {
	payload, err := json.Marshal(slackdomain.PostMessageRequest{
		Channel: channel,
		Text:    text,
	})
	if err != nil {
		return nil, errors.Wrap(err, "slack: error encoding message")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+postMessagePath, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "slack: error creating request")
	}

	req.Header.Set("Authorization", "Bearer "+c.botToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "slack: error executing request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "slack: error reading response body")
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &slackdomain.APIError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	var response slackdomain.PostMessageResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(err, "slack: error decoding response")
	}

	if !response.OK {
		code := response.Error
		if code == "" {
			code = "unknown_error"
		}
		return nil, &slackdomain.APIError{
			StatusCode: resp.StatusCode,
			Code:       code,
			Body:       string(body),
		}
	}

	return &response, nil
}
