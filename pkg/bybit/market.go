package bybit

import (
	"context"

	"bybitrest/pkg/core"
)

// MarketService groups the public market data endpoints.
// Responses are returned raw; decode them with Response.Unmarshal.
type MarketService struct {
	c *Client
}

// ServerTime calls GET /v5/market/time.
func (s *MarketService) ServerTime(ctx context.Context) (*Response, error) {
	return s.c.Get(ctx, APIVersion+"/market/time", nil)
}

// Kline calls GET /v5/market/kline. Bybit requires symbol and interval.
func (s *MarketService) Kline(ctx context.Context, params core.Params) (*Response, error) {
	return s.c.Get(ctx, APIVersion+"/market/kline", params)
}

// Tickers calls GET /v5/market/tickers. Bybit requires category.
func (s *MarketService) Tickers(ctx context.Context, params core.Params) (*Response, error) {
	return s.c.Get(ctx, APIVersion+"/market/tickers", params)
}

// OrderBook calls GET /v5/market/orderbook.
func (s *MarketService) OrderBook(ctx context.Context, params core.Params) (*Response, error) {
	return s.c.Get(ctx, APIVersion+"/market/orderbook", params)
}

// InstrumentsInfo calls GET /v5/market/instruments-info.
func (s *MarketService) InstrumentsInfo(ctx context.Context, params core.Params) (*Response, error) {
	return s.c.Get(ctx, APIVersion+"/market/instruments-info", params)
}

// RecentTrades calls GET /v5/market/recent-trade.
func (s *MarketService) RecentTrades(ctx context.Context, params core.Params) (*Response, error) {
	return s.c.Get(ctx, APIVersion+"/market/recent-trade", params)
}

// Announcement calls GET /v5/announcements/index.
func (s *MarketService) Announcement(ctx context.Context, params core.Params) (*Response, error) {
	return s.c.Get(ctx, APIVersion+"/announcements/index", params)
}

// MarkPriceKline calls GET /v5/market/mark-price-kline.
func (s *MarketService) MarkPriceKline(ctx context.Context, params core.Params) (*Response, error) {
	return s.c.Get(ctx, APIVersion+"/market/mark-price-kline", params)
}

// IndexPriceKline calls GET /v5/market/index-price-kline.
func (s *MarketService) IndexPriceKline(ctx context.Context, params core.Params) (*Response, error) {
	return s.c.Get(ctx, APIVersion+"/market/index-price-kline", params)
}

// PremiumIndexKline calls GET /v5/market/premium-index-price-kline.
func (s *MarketService) PremiumIndexKline(ctx context.Context, params core.Params) (*Response, error) {
	return s.c.Get(ctx, APIVersion+"/market/premium-index-price-kline", params)
}

// FundingHistory calls GET /v5/market/funding/history.
func (s *MarketService) FundingHistory(ctx context.Context, params core.Params) (*Response, error) {
	return s.c.Get(ctx, APIVersion+"/market/funding/history", params)
}

// RiskLimit calls GET /v5/market/risk-limit.
func (s *MarketService) RiskLimit(ctx context.Context, params core.Params) (*Response, error) {
	return s.c.Get(ctx, APIVersion+"/market/risk-limit", params)
}

// OpenInterest calls GET /v5/market/open-interest. Bybit requires intervalTime.
func (s *MarketService) OpenInterest(ctx context.Context, params core.Params) (*Response, error) {
	return s.c.Get(ctx, APIVersion+"/market/open-interest", params)
}

// Insurance calls GET /v5/market/insurance.
func (s *MarketService) Insurance(ctx context.Context, params core.Params) (*Response, error) {
	return s.c.Get(ctx, APIVersion+"/market/insurance", params)
}

// DeliveryPrice calls GET /v5/market/delivery-price.
func (s *MarketService) DeliveryPrice(ctx context.Context, params core.Params) (*Response, error) {
	return s.c.Get(ctx, APIVersion+"/market/delivery-price", params)
}

// HistoricalVolatility calls GET /v5/market/historical-volatility.
func (s *MarketService) HistoricalVolatility(ctx context.Context, params core.Params) (*Response, error) {
	return s.c.Get(ctx, APIVersion+"/market/historical-volatility", params)
}
