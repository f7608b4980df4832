package devrevdomain

import "fmt"

// APIError representa uma resposta não-2xx da API da DevRev
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("devrev: request failed with status %d: %s", e.StatusCode, e.Body)
}
