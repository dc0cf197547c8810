package rest

import (
	"context"
	"net/http"
	"net/url"
)

// listenKeyPath returns the per-market path suffix; the two markets name the
// endpoint differently.
func (c *Client) listenKeyPath() string {
	if c.market == Futures {
		return "/listenKey"
	}
	return "/userDataStream"
}

// CreateListenKey obtains a listen key for the user-data stream. The key is
// valid for 60 minutes unless refreshed. Requires an API key.
func (c *Client) CreateListenKey(ctx context.Context) (string, error) {
	var resp struct {
		ListenKey string `json:"listenKey"`
	}
	if err := c.do(ctx, http.MethodPost, c.listenKeyPath(), nil, &resp); err != nil {
		return "", err
	}
	return resp.ListenKey, nil
}

// KeepAliveListenKey extends a listen key's validity by 60 minutes. The spot
// market requires the key on refresh; futures identifies it by API key.
func (c *Client) KeepAliveListenKey(ctx context.Context, key string) error {
	return c.do(ctx, http.MethodPut, c.listenKeyPath(), listenKeyQuery(c.market, key), nil)
}

// CloseListenKey invalidates a listen key.
func (c *Client) CloseListenKey(ctx context.Context, key string) error {
	return c.do(ctx, http.MethodDelete, c.listenKeyPath(), listenKeyQuery(c.market, key), nil)
}

func listenKeyQuery(m Market, key string) url.Values {
	if m == Futures {
		return nil
	}
	query := url.Values{}
	query.Set("listenKey", key)
	return query
}
