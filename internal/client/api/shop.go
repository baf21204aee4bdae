package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/liuwf/chainmarket/internal/client/session"
)

// ShopApplication is the form a merchant submits to open a shop. Review is
// manual; the resulting profile starts in the pending state.
type ShopApplication struct {
	ShopName        string `json:"shopName"`
	ShopDescription string `json:"shopDescription"`
	ShopLogo        string `json:"shopLogo"`
}

// MyShop fetches the signed-in merchant's shop profile. A merchant without
// a shop yet gets (nil, nil).
func (c *Client) MyShop(ctx context.Context) (*session.ShopProfile, error) {
	payload, err := c.Call(ctx, Request{
		Path:   "/merchant/shop",
		Method: http.MethodGet,
	})
	if err != nil {
		return nil, err
	}

	if len(payload) == 0 || bytes.Equal(payload, jsonNull) {
		return nil, nil
	}

	var p session.ShopProfile
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, fmt.Errorf("malformed shop profile: %w", err)
	}
	// a null data field falls back to the bare envelope, which has no name
	if p.ShopName == "" {
		return nil, nil
	}
	return &p, nil
}

// ApplyShop submits a shop application for the signed-in merchant.
func (c *Client) ApplyShop(ctx context.Context, app ShopApplication) error {
	_, err := c.Call(ctx, Request{
		Path:   "/merchant/shop/apply",
		Method: http.MethodPost,
		Body:   app,
	})
	return err
}
