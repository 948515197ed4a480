// Package cli implements the componenthost command-line interface.
//
// # Overview
//
// componenthost inspects the built-in course components: which are
// registered, which are enabled for a given pair of settings documents, and
// what sidebar they produce. It is a thin shell over pkg/host.
//
// # Commands
//
// list - Show the registered components in registration order:
//
//	componenthost list [--format yaml|json|table]
//
// resolve - Show the effective enablement of every component and the scope
// that decided it:
//
//	componenthost resolve --outer instance.yaml --inner course.yaml
//
// show - Show one component by key:
//
//	componenthost show --inner course.yaml leaderboard
//
// sidebar - Print the aggregated sidebar items, ordered by weight:
//
//	componenthost sidebar --inner course.yaml --kind settings --path-prefix /courses/42
//
// # Settings Flags
//
//	--outer   Outer (instance-wide) settings document ($COMPONENTHOST_OUTER)
//	--inner   Inner (course) settings document ($COMPONENTHOST_INNER)
//
// Either may be a local YAML/JSON file, an HTTP(S) URL or a Kubernetes
// ConfigMap reference (cm://namespace/name[/key]). A missing flag means an
// empty scope.
//
// # Output Flags
//
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: yaml, json, table (default: yaml)
//
// # Exit Status
//
// 0 on success, 1 on any error, including an unknown key or an unreadable
// settings document.
package cli
