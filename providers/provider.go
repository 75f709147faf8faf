/*
Package providers fetches the externally hosted YAML documents (community
contributors and accepted packages) that get merged into the homepage. Each
provider is a one-shot fetch: no retries, no caching, failures are classified,
logged, and surface as empty result sets at the view layer.
*/
package providers

import (
	"fmt"
	"io"
	"net/http"
	"time"

	logger "github.com/pyopensci/site-backend/log"
)

var log = logger.Get()

// Error kinds reported by the providers
const (
	ErrKindNetwork = "network"
	ErrKindStatus  = "status"
	ErrKindParse   = "parse"
	ErrKindSchema  = "schema"
)

// DataError classifies what went wrong while fetching a remote document
type DataError struct {
	Kind string
	Err  error
}

func (e *DataError) Error() string {
	return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
}

func (e *DataError) Unwrap() error {
	return e.Err
}

// Client is the shared HTTP client for the outbound fetches
var Client = &http.Client{Timeout: 10 * time.Second}

// SetTimeout adjusts the outbound fetch timeout, driven by configuration
func SetTimeout(seconds int) {
	if seconds > 0 {
		Client.Timeout = time.Duration(seconds) * time.Second
	}
}

func fetchDocument(url string) ([]byte, *DataError) {
	response, reqErr := Client.Get(url)
	if reqErr != nil {
		return nil, &DataError{Kind: ErrKindNetwork, Err: reqErr}
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, &DataError{
			Kind: ErrKindStatus,
			Err:  fmt.Errorf("unexpected status %d from %s", response.StatusCode, url),
		}
	}

	body, readErr := io.ReadAll(response.Body)
	if readErr != nil {
		return nil, &DataError{Kind: ErrKindNetwork, Err: readErr}
	}

	return body, nil
}
