package bybit

import (
	"context"

	"bybitrest/pkg/core"
)

// PositionService groups the position endpoints.
type PositionService struct {
	c *Client
}

// List calls GET /v5/position/list. Bybit requires category.
func (s *PositionService) List(ctx context.Context, params core.Params) (*Response, error) {
	return s.c.Get(ctx, APIVersion+"/position/list", params)
}

// ClosedPnL calls GET /v5/position/closed-pnl.
func (s *PositionService) ClosedPnL(ctx context.Context, params core.Params) (*Response, error) {
	return s.c.Get(ctx, APIVersion+"/position/closed-pnl", params)
}

// SetLeverage calls POST /v5/position/set-leverage.
func (s *PositionService) SetLeverage(ctx context.Context, category, symbol, buyLeverage, sellLeverage string) (*Response, error) {
	return s.c.Post(ctx, APIVersion+"/position/set-leverage", core.Params{
		"category":     category,
		"symbol":       symbol,
		"buyLeverage":  buyLeverage,
		"sellLeverage": sellLeverage,
	})
}
