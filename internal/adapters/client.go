package adapters

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

const defaultUserAgent = "LinkBio-API/1.0 (+metadata)"

// NewHTTPClient returns the resty client shared by the provider adapters.
// Each request is additionally bounded by the caller's context.
func NewHTTPClient(timeout time.Duration, userAgent string) *resty.Client {
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", userAgent).
		SetRetryCount(0)
}

// OEmbed is the subset of the oEmbed response format the providers read.
// Some providers send thumbnail instead of thumbnail_url; proxies report
// failures in Error with a 200 status.
type OEmbed struct {
	Title        string `json:"title"`
	AuthorName   string `json:"author_name"`
	ThumbnailURL string `json:"thumbnail_url"`
	Thumbnail    string `json:"thumbnail"`
	Error        string `json:"error"`
}

// Artwork returns thumbnail_url, falling back to thumbnail.
func (o OEmbed) Artwork() string {
	if o.ThumbnailURL != "" {
		return o.ThumbnailURL
	}
	return o.Thumbnail
}

// GetJSON performs a GET with query params and decodes a 2xx JSON body into
// out. Non-2xx statuses and malformed bodies are errors.
func GetJSON(ctx context.Context, client *resty.Client, endpoint string, params map[string]string, out interface{}) error {
	body, err := GetBody(ctx, client, endpoint, params)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrap(err, "decode response")
	}
	return nil
}

// GetBody performs a GET and returns the raw body of a 2xx response.
func GetBody(ctx context.Context, client *resty.Client, endpoint string, params map[string]string) ([]byte, error) {
	resp, err := client.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(endpoint)
	if err != nil {
		return nil, errors.Wrapf(err, "GET %s", endpoint)
	}
	if !resp.IsSuccess() {
		return nil, errors.Errorf("GET %s returned status %d", endpoint, resp.StatusCode())
	}
	return resp.Body(), nil
}
