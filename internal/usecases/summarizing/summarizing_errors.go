package summarizing

import "errors"

var (
	ErrFetchOpportunities = errors.New("error fetching opportunities")
	ErrPublishSummary     = errors.New("error publishing summary")
)
