// Package bybit is a signing client for the Bybit V5 REST API.
// Every request carries an HMAC-SHA256 signature over the timestamp, API key,
// receive window and sorted parameters. Responses are returned unparsed.
//
// Bybit API Documentation: https://bybit-exchange.github.io/docs/v5/intro
package bybit
