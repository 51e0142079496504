// Package feeds reads this week's win probabilities from the places they are published.
package feeds

import (
	"context"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"
)

// DefaultTimeout bounds a single feed download.
const DefaultTimeout = 30 * time.Second

func defaultClient() *http.Client {
	return &http.Client{Timeout: DefaultTimeout}
}

func getURLBody(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	if client == nil {
		client = defaultClient()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET \"%s\": %s", url, resp.Status)
	}
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return body, nil
}
