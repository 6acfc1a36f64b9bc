package confluence

import (
	"context"
	"errors"
	"net/url"
)

// GetSpace fetches a single space by key through the v1 API.
// The v2 API addresses spaces by id, so this is how keys are resolved.
func (c *Client) GetSpace(ctx context.Context, key string) (*Space, error) {
	var space Space
	if _, err := c.Get(ctx, PathV1+"/space/"+url.PathEscape(key), nil, &space); err != nil {
		return nil, err
	}
	return &space, nil
}

// CreatePage issues a single create-page request.
// A non-2xx response is reported as *PublishError.
func (c *Client) CreatePage(ctx context.Context, req CreatePageRequest) (*ContentV1, error) {
	var created ContentV1
	if err := c.Post(ctx, PathV1+"/content", req, &created); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return nil, &PublishError{StatusCode: apiErr.StatusCode, Body: apiErr.Body}
		}
		return nil, err
	}
	return &created, nil
}
