// Package host provides the component host: the per-context orchestrator that
// resolves which registered components are enabled and owns their instances.
//
// # Overview
//
// A Host is created per request (or other logical operation) with the
// registry, the outer and inner settings scopes, and an opaque context
// object:
//
//	reg, err := components.Registry()
//	if err != nil {
//	    return err
//	}
//	h := host.New(reg, instanceSettings, courseSettings, req)
//
//	forum, ok, err := h.Lookup(ctx, "forum")
//	enabled, err := h.EnabledComponents(ctx)
//	items, err := h.SidebarItems(ctx)
//
// # Instantiation
//
// The first query builds exactly one instance per registered type, enabled
// or not, and memoizes the collection for the Host's lifetime. Concurrent
// first queries block on a single build. A failing factory aborts the build
// with an INTERNAL error naming the component key, and the Host stays
// unusable.
//
// # Enablement
//
// Enablement is resolved on every query with Resolve: an explicit inner
// value wins, then an explicit outer value, then the type's default. Settings
// changes between two queries change the partition without creating new
// instances. Settings read failures are returned as SERVICE_UNAVAILABLE
// errors; the host never guesses.
//
// # Metrics
//
// The package registers Prometheus collectors for build duration, created
// instances, build failures and settings read failures.
package host
