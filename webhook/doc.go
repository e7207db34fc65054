// Package webhook normalizes asynchronous provider notifications into a
// single Event shape.
//
// A Normalizer holds one Handler per provider. When the caller knows the
// provider (for example from the route the notification arrived on) it
// passes a hint; otherwise handlers are asked in a fixed order whether they
// recognize the body.
//
//	n := webhook.NewNormalizer()
//	ev, err := n.Normalize(ctx, body, nil)
package webhook
