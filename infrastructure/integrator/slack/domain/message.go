package slackdomain

import "fmt"

type PostMessageRequest struct {
	Channel string `json:"channel"`
	Text    string `json:"text"`
}

// PostMessageResponse contém apenas os campos usados da resposta do chat.postMessage
type PostMessageResponse struct {
	OK      bool   `json:"ok"`
	Error   string `json:"error,omitempty"`
	Channel string `json:"channel,omitempty"`
	TS      string `json:"ts,omitempty"`
}

// APIError representa uma entrega recusada pelo Slack (ok=false) ou uma resposta não-2xx
type APIError struct {
	StatusCode int
	Code       string
	Body       string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("slack: api error %q: %s", e.Code, e.Body)
	}
	return fmt.Sprintf("slack: request failed with status %d: %s", e.StatusCode, e.Body)
}
