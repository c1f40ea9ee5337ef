package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequest(t *testing.T) {
	req := NewRequest("GET", "v5/market/tickers")

	assert.Equal(t, "GET", req.Method)
	assert.Equal(t, "v5/market/tickers", req.Path)
	assert.NotNil(t, req.Params)
	assert.Empty(t, req.Params)
}

func TestRequest_Set(t *testing.T) {
	req := NewRequest("GET", "v5/market/tickers")
	result := req.Set("symbol", "BTCUSDT")

	assert.Equal(t, req, result)
	assert.Equal(t, "BTCUSDT", req.Params["symbol"])
}

func TestRequest_Set_NilParams(t *testing.T) {
	req := &Request{Method: "GET", Path: "v5/market/time"}
	req.Set("a", "1")

	assert.Equal(t, Params{"a": "1"}, req.Params)
}

func TestRequest_SetParams(t *testing.T) {
	req := NewRequest("POST", "v5/position/set-leverage").Set("symbol", "ETHUSDT")
	req.SetParams(Params{"symbol": "BTCUSDT", "category": "linear"})

	assert.Equal(t, Params{"symbol": "BTCUSDT", "category": "linear"}, req.Params)
}

func TestRequest_SetParams_Nil(t *testing.T) {
	req := NewRequest("GET", "v5/market/time").SetParams(nil)

	assert.Empty(t, req.Params)
}

func TestParams_SortedKeys(t *testing.T) {
	params := Params{"symbol": "BTCUSDT", "category": "spot", "b": "2", "a": "1", "Z": "0"}

	assert.Equal(t, []string{"Z", "a", "b", "category", "symbol"}, params.SortedKeys())
	assert.Empty(t, Params(nil).SortedKeys())
}

func TestRequest_IsWrite(t *testing.T) {
	assert.False(t, NewRequest("GET", "x").IsWrite())
	assert.True(t, NewRequest("POST", "x").IsWrite())
}

func TestRequest_Validate(t *testing.T) {
	tests := []struct {
		method  string
		wantErr bool
	}{
		{"GET", false},
		{"POST", false},
		{"PUT", true},
		{"DELETE", true},
		{"get", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			err := NewRequest(tt.method, "v5/x").Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, IsErrorCode(err, ErrCodeUnsupported))
		})
	}
}
