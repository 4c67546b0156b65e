// Package apiclient talks to the link API on behalf of one page owner. It
// backs the ordering engine with the server's reorder and listing endpoints.
package apiclient

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"

	"github.com/jpp0ca/LinkBio-API/internal/adapters"
	"github.com/jpp0ca/LinkBio-API/internal/domain"
	"github.com/jpp0ca/LinkBio-API/internal/ordering"
	"github.com/jpp0ca/LinkBio-API/internal/ports"
)

// Client is an owner-scoped API client.
type Client struct {
	http *resty.Client
}

var (
	_ ordering.Persister = (*Client)(nil)
	_ ordering.Fetcher   = (*Client)(nil)
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// New creates a client for baseURL authenticated as the owner token.
func New(baseURL, token string, timeout time.Duration) *Client {
	c := adapters.NewHTTPClient(timeout, "").
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetAuthToken(token).
		SetError(&errorResponse{})
	return &Client{http: c}
}

// UpdateLinkOrder sends one reorder batch.
func (c *Client) UpdateLinkOrder(ctx context.Context, ids []string) (*domain.OrderResult, error) {
	var result domain.OrderResult
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(domain.ReorderRequest{IDs: ids}).
		SetResult(&result).
		Put("/api/v1/links/order")
	if err := check(resp, err, "reorder links"); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListLinks returns every link of the owner in display order.
func (c *Client) ListLinks(ctx context.Context) ([]domain.Link, error) {
	return c.listLinks(ctx, ports.LinkFilter{})
}

// ListScoped returns the owner's links in one folder, or at the top level
// when folderID is nil.
func (c *Client) ListScoped(ctx context.Context, folderID *string) ([]domain.Link, error) {
	return c.listLinks(ctx, ports.LinkFilter{Scoped: true, FolderID: folderID})
}

func (c *Client) listLinks(ctx context.Context, filter ports.LinkFilter) ([]domain.Link, error) {
	req := c.http.R().SetContext(ctx)
	if filter.Scoped {
		folder := "top"
		if filter.FolderID != nil {
			folder = *filter.FolderID
		}
		req.SetQueryParam("folder", folder)
	}

	var views []domain.LinkView
	resp, err := req.SetResult(&views).Get("/api/v1/links")
	if err := check(resp, err, "list links"); err != nil {
		return nil, err
	}

	links := make([]domain.Link, len(views))
	for i, v := range views {
		links[i] = v.Link
	}
	return links, nil
}

// MoveLink assigns a link to a folder, or to the top level for nil.
func (c *Client) MoveLink(ctx context.Context, linkID string, folderID *string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("id", linkID).
		SetBody(domain.MoveLinkRequest{FolderID: folderID}).
		Patch("/api/v1/links/{id}/folder")
	return check(resp, err, "move link")
}

// check turns transport failures and error statuses into errors, mapping
// the statuses the API uses for domain errors back to their sentinels.
func check(resp *resty.Response, err error, op string) error {
	if err != nil {
		return errors.Wrap(err, op)
	}
	if resp.IsSuccess() {
		return nil
	}

	msg := resp.Status()
	if e, ok := resp.Error().(*errorResponse); ok && e.Message != "" {
		msg = e.Message
	}

	var sentinel error
	switch resp.StatusCode() {
	case http.StatusBadRequest:
		sentinel = domain.ErrInvalidInput
	case http.StatusUnauthorized, http.StatusForbidden:
		sentinel = domain.ErrUnauthorized
	case http.StatusNotFound:
		sentinel = domain.ErrNotFound
	case http.StatusConflict:
		sentinel = domain.ErrConflictingPreview
	default:
		return errors.Errorf("%s: status %d: %s", op, resp.StatusCode(), msg)
	}
	return errors.Wrapf(sentinel, "%s: %s", op, msg)
}
