// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns such as
// request logging, correlation IDs, CORS, secure headers, and panic
// recovery.
package middleware
