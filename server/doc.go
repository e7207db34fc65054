// Package server runs the voicerouter webhook receiver: a Gin engine behind
// an h2c handler, wrapped in the net/http middleware stack from
// server/middleware.
//
// # Routes
//
// Registered by RegisterRoutes (handlers live in server/endpoint):
//
//   - POST /webhooks: detect the provider and normalize a webhook callback
//   - POST /webhooks/:provider: normalize a callback for a known provider
//   - POST /normalize/:provider: map a raw provider response to the unified envelope
//   - GET /health: service health with the registered providers
//
// # Middleware
//
// Applied around the whole mux by ApplyMiddleware, outermost first:
// Recovery, RequestID, BodySizeLimit and RequestLogger.
package server
