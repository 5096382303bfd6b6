// Package practicum talks to the Yandex Practicum homework status API.
package practicum

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"homework_status_bot/internal/domain/homework"

	"github.com/sirupsen/logrus"
)

// Client queries the homework status endpoint. It never retries on its own.
type Client struct {
	endpoint string
	token    string
	client   *http.Client
	logger   *logrus.Entry
}

func NewClient(endpoint, token string, timeout time.Duration, logger *logrus.Entry) *Client {
	return &Client{
		endpoint: endpoint,
		token:    token,
		client: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// FetchStatus returns the decoded JSON body of the statuses updated since the given
// epoch seconds. The value is not validated; JSON numbers are kept as json.Number.
func (c *Client) FetchStatus(ctx context.Context, since int64) (any, error) {
	reqURL, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, &homework.TransportError{Err: fmt.Errorf("invalid endpoint %q: %w", c.endpoint, err)}
	}
	query := reqURL.Query()
	query.Set("from_date", strconv.FormatInt(since, 10))
	reqURL.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, &homework.TransportError{Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Authorization", "OAuth "+c.token)

	c.logger.WithField("from_date", since).Debug("Sending request to Practicum API")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &homework.TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &homework.RemoteAPIError{
			StatusCode: resp.StatusCode,
			Endpoint:   c.endpoint,
			FromDate:   since,
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &homework.TransportError{Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	var payload any
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&payload); err != nil {
		return nil, &homework.SchemaError{Reason: "response body is not valid JSON", Err: err}
	}

	c.logger.WithField("bytes", len(body)).Debug("Got response from Practicum API")
	return payload, nil
}
