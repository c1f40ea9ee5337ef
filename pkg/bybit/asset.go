package bybit

import (
	"context"

	"bybitrest/pkg/core"
)

// AssetService groups the asset endpoints: coin info, transfers, deposits and withdrawals.
type AssetService struct {
	c *Client
}

// CoinInfo calls GET /v5/asset/coin/query-info.
func (s *AssetService) CoinInfo(ctx context.Context, params core.Params) (*Response, error) {
	return s.c.Get(ctx, APIVersion+"/asset/coin/query-info", params)
}

// CoinExchangeRecords calls GET /v5/asset/exchange/order-record.
func (s *AssetService) CoinExchangeRecords(ctx context.Context, params core.Params) (*Response, error) {
	return s.c.Get(ctx, APIVersion+"/asset/exchange/order-record", params)
}

// DeliveryRecords calls GET /v5/asset/delivery-record.
func (s *AssetService) DeliveryRecords(ctx context.Context, params core.Params) (*Response, error) {
	return s.c.Get(ctx, APIVersion+"/asset/delivery-record", params)
}

// SettlementRecords calls GET /v5/asset/settlement-record.
func (s *AssetService) SettlementRecords(ctx context.Context, params core.Params) (*Response, error) {
	return s.c.Get(ctx, APIVersion+"/asset/settlement-record", params)
}

// AssetInfo calls GET /v5/asset/transfer/query-asset-info.
func (s *AssetService) AssetInfo(ctx context.Context, params core.Params) (*Response, error) {
	return s.c.Get(ctx, APIVersion+"/asset/transfer/query-asset-info", params)
}

// CoinBalance calls GET /v5/asset/transfer/query-account-coin-balance.
func (s *AssetService) CoinBalance(ctx context.Context, params core.Params) (*Response, error) {
	return s.c.Get(ctx, APIVersion+"/asset/transfer/query-account-coin-balance", params)
}

// AllCoinsBalance calls GET /v5/asset/transfer/query-account-coins-balance.
func (s *AssetService) AllCoinsBalance(ctx context.Context, params core.Params) (*Response, error) {
	return s.c.Get(ctx, APIVersion+"/asset/transfer/query-account-coins-balance", params)
}

// TransferableCoins calls GET /v5/asset/transfer/query-transfer-coin-list.
func (s *AssetService) TransferableCoins(ctx context.Context, params core.Params) (*Response, error) {
	return s.c.Get(ctx, APIVersion+"/asset/transfer/query-transfer-coin-list", params)
}

// InternalTransfer calls POST /v5/asset/transfer/inter-transfer.
// Bybit requires transferId, coin, amount, fromAccountType and toAccountType.
func (s *AssetService) InternalTransfer(ctx context.Context, params core.Params) (*Response, error) {
	return s.c.Post(ctx, APIVersion+"/asset/transfer/inter-transfer", params)
}

// InternalTransferRecords calls GET /v5/asset/transfer/query-inter-transfer-list.
func (s *AssetService) InternalTransferRecords(ctx context.Context, params core.Params) (*Response, error) {
	return s.c.Get(ctx, APIVersion+"/asset/transfer/query-inter-transfer-list", params)
}

// UniversalTransfer calls POST /v5/asset/transfer/universal-transfer.
func (s *AssetService) UniversalTransfer(ctx context.Context, params core.Params) (*Response, error) {
	return s.c.Post(ctx, APIVersion+"/asset/transfer/universal-transfer", params)
}

// UniversalTransferRecords calls GET /v5/asset/transfer/query-universal-transfer-list.
func (s *AssetService) UniversalTransferRecords(ctx context.Context, params core.Params) (*Response, error) {
	return s.c.Get(ctx, APIVersion+"/asset/transfer/query-universal-transfer-list", params)
}

// SubUIDs calls GET /v5/asset/transfer/query-sub-member-list.
func (s *AssetService) SubUIDs(ctx context.Context) (*Response, error) {
	return s.c.Get(ctx, APIVersion+"/asset/transfer/query-sub-member-list", nil)
}

// AllowedDepositCoins calls GET /v5/asset/deposit/query-allowed-list.
func (s *AssetService) AllowedDepositCoins(ctx context.Context, params core.Params) (*Response, error) {
	return s.c.Get(ctx, APIVersion+"/asset/deposit/query-allowed-list", params)
}

// SetDepositAccount calls POST /v5/asset/deposit/deposit-to-account.
func (s *AssetService) SetDepositAccount(ctx context.Context, accountType string) (*Response, error) {
	return s.c.Post(ctx, APIVersion+"/asset/deposit/deposit-to-account", core.Params{"accountType": accountType})
}

// DepositRecords calls GET /v5/asset/deposit/query-record.
func (s *AssetService) DepositRecords(ctx context.Context, params core.Params) (*Response, error) {
	return s.c.Get(ctx, APIVersion+"/asset/deposit/query-record", params)
}

// SubDepositRecords calls GET /v5/asset/deposit/query-sub-member-record.
func (s *AssetService) SubDepositRecords(ctx context.Context, params core.Params) (*Response, error) {
	return s.c.Get(ctx, APIVersion+"/asset/deposit/query-sub-member-record", params)
}

// InternalDepositRecords calls GET /v5/asset/deposit/query-internal-record.
func (s *AssetService) InternalDepositRecords(ctx context.Context, params core.Params) (*Response, error) {
	return s.c.Get(ctx, APIVersion+"/asset/deposit/query-internal-record", params)
}

// DepositAddress calls GET /v5/asset/deposit/query-address.
func (s *AssetService) DepositAddress(ctx context.Context, params core.Params) (*Response, error) {
	return s.c.Get(ctx, APIVersion+"/asset/deposit/query-address", params)
}

// WithdrawRecords calls GET /v5/asset/withdraw/query-record.
func (s *AssetService) WithdrawRecords(ctx context.Context, params core.Params) (*Response, error) {
	return s.c.Get(ctx, APIVersion+"/asset/withdraw/query-record", params)
}
