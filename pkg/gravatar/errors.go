package gravatar

import "fmt"

/*
StatusError is an unexpected HTTP status from Gravatar or an image host. It is
kept as the underlying error of a transport failure so callers can still see
the status and body.
*/
type StatusError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%s returned status %d: %s", e.URL, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s returned status %d", e.URL, e.StatusCode)
}
