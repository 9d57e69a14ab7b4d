package lastfm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// call makes a single HTTP GET request to the Last.fm API.
//
// It handles:
// - Query string construction (method, api_key, format=json, params)
// - Response body reading
// - Mapping of HTTP and API failures onto the package's error types
// - Context cancellation
//
// One logical operation issues exactly one GET. Failed attempts are
// surfaced to the caller immediately; there is no retry or backoff.
func (c *Client) call(ctx context.Context, method string, params map[string]string) ([]byte, error) {
	query := url.Values{}
	query.Set("method", method)
	query.Set("api_key", c.apiKey)
	query.Set("format", "json")
	for k, v := range params {
		query.Set(k, v)
	}

	requestURL := c.baseURL + "?" + query.Encode()

	c.logDebugf("lastfm: calling %s", method)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", "lastnow/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return nil, &TransportError{StatusCode: resp.StatusCode, Err: err}
	}

	// Last.fm rejections usually arrive as a JSON error document with
	// a 4xx status. Surface those as *Error; anything else non-2xx is
	// a transport failure.
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if apiErr := decodeAPIError(body); apiErr != nil {
			return nil, apiErr
		}
		return nil, &TransportError{StatusCode: resp.StatusCode}
	}

	if apiErr := decodeAPIError(body); apiErr != nil {
		return nil, apiErr
	}

	c.logDebugf("lastfm: %s succeeded", method)
	return body, nil
}

// decodeAPIError returns the API error carried by body, or nil if the
// body is not a Last.fm error document.
func decodeAPIError(body []byte) *Error {
	var doc struct {
		Code    int    `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &doc); err != nil || doc.Code == 0 {
		return nil
	}
	return &Error{Code: doc.Code, Message: doc.Message}
}

// decodeBody unmarshals an API response body into v, mapping decode
// failures onto *ParseError.
func decodeBody(body []byte, v interface{}) error {
	if !json.Valid(body) {
		return &ParseError{Err: errors.New("body is not valid JSON")}
	}
	if err := json.Unmarshal(body, v); err != nil {
		return &ParseError{Err: err}
	}
	return nil
}
