package bybit

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"bybitrest/pkg/core"
)

// SignType is the X-BAPI-SIGN-TYPE value for HMAC-SHA256 signatures.
const SignType = "2"

// Payload builds the string Bybit expects to be signed:
// timestamp + apiKey + recvWindow followed by key=value for every parameter in
// lexicographic key order, with no separator between pairs.
func Payload(apiKey, recvWindow string, params core.Params, timestamp string) string {
	var b strings.Builder
	b.WriteString(timestamp)
	b.WriteString(apiKey)
	b.WriteString(recvWindow)
	for _, k := range params.SortedKeys() {
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(params[k])
	}
	return b.String()
}

// Sign returns the lowercase hex HMAC-SHA256 of Payload keyed by secretKey.
// The result depends only on its arguments.
func Sign(secretKey, apiKey, recvWindow string, params core.Params, timestamp string) (string, error) {
	if secretKey == "" {
		return "", core.NewExchangeError(core.ErrorTypeSigning, core.ErrCodeSigning,
			"cannot key hmac").WithCause(core.ErrEmptySecret)
	}
	return signHMAC(Payload(apiKey, recvWindow, params, timestamp), secretKey), nil
}

func signHMAC(message, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(message))
	return hex.EncodeToString(h.Sum(nil))
}
