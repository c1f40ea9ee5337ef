package bybit

import (
	"context"
	"maps"

	"bybitrest/pkg/core"
)

// AccountService groups the account endpoints.
type AccountService struct {
	c *Client
}

// WalletBalance calls GET /v5/account/wallet-balance. accountType defaults to UNIFIED.
func (s *AccountService) WalletBalance(ctx context.Context, params core.Params) (*Response, error) {
	p := core.Params{"accountType": "UNIFIED"}
	maps.Copy(p, params)
	return s.c.Get(ctx, APIVersion+"/account/wallet-balance", p)
}

// FeeRate calls GET /v5/account/fee-rate.
func (s *AccountService) FeeRate(ctx context.Context, params core.Params) (*Response, error) {
	return s.c.Get(ctx, APIVersion+"/account/fee-rate", params)
}

// Info calls GET /v5/account/info.
func (s *AccountService) Info(ctx context.Context) (*Response, error) {
	return s.c.Get(ctx, APIVersion+"/account/info", nil)
}

// TransactionLog calls GET /v5/account/transaction-log.
func (s *AccountService) TransactionLog(ctx context.Context, params core.Params) (*Response, error) {
	return s.c.Get(ctx, APIVersion+"/account/transaction-log", params)
}

// BorrowHistory calls GET /v5/account/borrow-history.
func (s *AccountService) BorrowHistory(ctx context.Context, params core.Params) (*Response, error) {
	return s.c.Get(ctx, APIVersion+"/account/borrow-history", params)
}

// CollateralInfo calls GET /v5/account/collateral-info.
func (s *AccountService) CollateralInfo(ctx context.Context, params core.Params) (*Response, error) {
	return s.c.Get(ctx, APIVersion+"/account/collateral-info", params)
}

// SetCollateralSwitch calls POST /v5/account/set-collateral-switch.
// collateralSwitch is "ON" or "OFF".
func (s *AccountService) SetCollateralSwitch(ctx context.Context, coin, collateralSwitch string) (*Response, error) {
	return s.c.Post(ctx, APIVersion+"/account/set-collateral-switch", core.Params{
		"coin":             coin,
		"collateralSwitch": collateralSwitch,
	})
}

// UpgradeToUTA calls POST /v5/account/upgrade-to-uta with an empty body.
func (s *AccountService) UpgradeToUTA(ctx context.Context) (*Response, error) {
	return s.c.Post(ctx, APIVersion+"/account/upgrade-to-uta", nil)
}

// CoinGreeks calls GET /v5/asset/coin-greeks.
func (s *AccountService) CoinGreeks(ctx context.Context, params core.Params) (*Response, error) {
	return s.c.Get(ctx, APIVersion+"/asset/coin-greeks", params)
}
