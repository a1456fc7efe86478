// Package handler contains helpers to assemble HTTP handler implementations
// using a composable API. It defines reusable components for request and
// response processing, which allows core handlers to implement only the logic
// that is unique to each endpoint.
//
// It is similar in principle to HTTP middlewares, but uses typed requests and
// responses instead of raw http.ResponseWriter writes.
package handler
