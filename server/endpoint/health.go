package endpoint

import (
	"maps"
	"slices"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/voicerouter/observability"
	"github.com/kbukum/voicerouter/transcription"
)

// ProviderLister reports the providers a component can handle.
type ProviderLister func() []transcription.Provider

// Health returns a handler reporting service health. Each lister becomes a
// component listing its providers; extra checkers are aggregated as-is.
func Health(service, version string, listers map[string]ProviderLister, checkers ...observability.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		sh := observability.NewServiceHealth(service, version)

		for _, name := range slices.Sorted(maps.Keys(listers)) {
			var names []string
			for _, p := range listers[name]() {
				names = append(names, p.String())
			}
			sh.AddComponent(observability.ProvidersHealth(name, names))
		}
		for _, checker := range checkers {
			sh.AddComponent(checker.CheckHealth(c.Request.Context()))
		}

		c.JSON(sh.HTTPStatus(), sh)
	}
}
