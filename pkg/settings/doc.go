// Package settings defines the two-scope settings contract the component host
// reads enablement from, plus an in-memory implementation.
//
// Each scope is an Accessor keyed by component key. The host only reads the
// "enabled" option, a Tristate; every other option is opaque and passed
// through to components.
//
//	outer := settings.NewStore(settings.ScopeOuter)
//	inner := settings.NewStore(settings.ScopeInner)
//	_ = inner.Set(ctx, "forum", settings.OptionEnabled, false)
//
// Scopes can be loaded from YAML or JSON documents:
//
//	doc, err := settings.LoadFile(ctx, "course.yaml")
//	inner := settings.NewStoreFromDocument(settings.ScopeInner, doc)
//
// Persistence is the surrounding application's concern; Store only holds
// values in memory.
package settings
