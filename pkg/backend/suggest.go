package backend

import (
	"context"
	"encoding/json"
	"net/url"
)

type suggestResponse struct {
	Suggestions []json.RawMessage `json:"suggestions"`
}

// Suggest calls one /api/<source>/suggest endpoint. Entries come back undecoded
// so the caller can merge duplicates key by key.
func (c *Client) Suggest(ctx context.Context, path, q string) ([]json.RawMessage, error) {
	var resp suggestResponse
	if err := c.getJSON(ctx, path, url.Values{"q": {q}}, &resp); err != nil {
		return nil, err
	}
	return resp.Suggestions, nil
}
