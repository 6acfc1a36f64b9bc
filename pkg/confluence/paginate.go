package confluence

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

// CollectCursor follows a cursor-paginated listing (v2 API) until the server
// stops returning a next link, accumulating results in batch-received order.
// maxItems caps the total number of items scanned; 0 means no cap.
func CollectCursor[T any](ctx context.Context, c *Client, path string, query url.Values, limit, maxItems int) ([]T, error) {
	q := cloneValues(query)
	q.Set("limit", itoa(limit))

	var all []T
	for {
		var env envelope[T]
		header, err := c.Get(ctx, path, q, &env)
		if err != nil {
			return nil, asListingError(path, err)
		}

		all = append(all, env.Results...)
		if maxItems > 0 && len(all) >= maxItems {
			return all[:maxItems], nil
		}

		// An empty batch that still advertises a next page would loop forever.
		if len(env.Results) == 0 {
			break
		}

		cursor := nextCursor(env.Links.Next, header)
		if cursor == "" || cursor == q.Get("cursor") {
			break
		}
		q.Set("cursor", cursor)
	}

	return all, nil
}

// CollectOffset follows a start/limit paginated listing (v1 API). It stops on a
// short batch, on a missing _links.next, or once maxItems items were scanned.
func CollectOffset[T any](ctx context.Context, c *Client, path string, query url.Values, limit, maxItems int) ([]T, error) {
	q := cloneValues(query)
	q.Set("limit", itoa(limit))

	var all []T
	start := 0
	for {
		q.Set("start", itoa(start))

		var env envelope[T]
		if _, err := c.Get(ctx, path, q, &env); err != nil {
			return nil, asListingError(path, err)
		}

		all = append(all, env.Results...)
		if maxItems > 0 && len(all) >= maxItems {
			return all[:maxItems], nil
		}

		if len(env.Results) < limit || env.Links.Next == "" {
			break
		}
		start += len(env.Results)
	}

	return all, nil
}

// nextCursor extracts the cursor of the next page from the body's next link,
// falling back to an RFC 5988 Link header with rel="next".
func nextCursor(bodyNext string, header http.Header) string {
	next := bodyNext
	if next == "" {
		next = linkHeaderNext(header)
	}
	if next == "" {
		return ""
	}

	u, err := url.Parse(next)
	if err != nil {
		return ""
	}
	return u.Query().Get("cursor")
}

// linkHeaderNext returns the URL of the rel="next" entry of a Link header.
func linkHeaderNext(header http.Header) string {
	for _, value := range header.Values("Link") {
		for _, part := range strings.Split(value, ",") {
			segments := strings.Split(part, ";")
			if len(segments) < 2 {
				continue
			}
			target := strings.Trim(strings.TrimSpace(segments[0]), "<>")
			for _, param := range segments[1:] {
				param = strings.TrimSpace(param)
				if param == `rel="next"` || param == "rel=next" {
					return target
				}
			}
		}
	}
	return ""
}

func cloneValues(v url.Values) url.Values {
	out := url.Values{}
	for k, vals := range v {
		out[k] = append([]string(nil), vals...)
	}
	return out
}
