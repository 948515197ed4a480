// Package component defines the contract of pluggable feature modules and the
// registry that lists them.
//
// # Core Types
//
// Type: class-level descriptor of an implementation, with its derived Key,
// its EnabledByDefault flag and its Factory.
//
// Component: an instance built by a host. Embed Base to satisfy it.
//
// SidebarContributor: optional interface for components that add
// navigation entries.
//
// Registry: ordered, append-only, concurrency-safe list of Types.
//
// # Defining a Component
//
//	type ForumComponent struct {
//	    component.Base
//	}
//
//	func newForum(_ context.Context, deps component.Dependencies) (*ForumComponent, error) {
//	    return &ForumComponent{Base: component.NewBase(deps)}, nil
//	}
//
//	var ForumType = component.Define(newForum, component.EnabledByDefault())
//
// # Keys
//
// Keys are derived once from the Go type's qualified name by DeriveKey and
// are used both as settings storage keys and for lookups. Marker segments
// and suffixes ("components", "Component", "Module") are dropped, so the
// type above has key "forum". Caller input is normalized with ToKey.
//
// # Registration
//
// Registration is explicit; nothing registers itself on import:
//
//	reg := component.NewRegistry()
//	reg.MustRegister(ForumType, LeaderboardType)
//
// Registering the same Go type twice is a no-op. Two different Go types
// deriving the same key is a CONFLICT error reported by Register.
package component
