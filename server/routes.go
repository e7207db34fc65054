package server

import (
	"github.com/kbukum/voicerouter/normalize"
	"github.com/kbukum/voicerouter/observability"
	"github.com/kbukum/voicerouter/server/endpoint"
	"github.com/kbukum/voicerouter/version"
	"github.com/kbukum/voicerouter/webhook"
)

// Routes bundles what the receiver serves.
type Routes struct {
	Service    string
	Normalizer normalize.Normalizer
	Assembler  *normalize.Assembler // provider list for /health; may be nil
	Webhooks   *webhook.Normalizer
	Checkers   []observability.HealthChecker
}

// RegisterRoutes mounts the webhook, normalize and health endpoints.
func (s *Server) RegisterRoutes(r Routes) {
	listers := map[string]endpoint.ProviderLister{}
	if r.Webhooks != nil {
		s.engine.POST("/webhooks", endpoint.Webhook(r.Webhooks))
		s.engine.POST("/webhooks/:provider", endpoint.Webhook(r.Webhooks))
		listers["webhook"] = r.Webhooks.Providers
	}
	if r.Normalizer != nil {
		s.engine.POST("/normalize/:provider", endpoint.Normalize(r.Normalizer))
	}
	if r.Assembler != nil {
		listers["normalizer"] = r.Assembler.Registry().List
	}
	s.engine.GET("/health", endpoint.Health(r.Service, version.Get().Short(), listers, r.Checkers...))
}
