// Package defaults provides centralized configuration constants for the
// component host.
//
// This package defines timeout values, concurrency limits, and other
// configuration defaults used across the codebase. Centralizing these values
// ensures consistency and makes tuning easier.
//
// # Categories
//
//   - Resolution: bounds for enablement queries against settings accessors
//   - HTTP client timeouts: for settings documents fetched by URL
//   - Kubernetes: for settings documents stored in ConfigMaps
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/NVIDIA/componenthost/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.ResolveTimeout)
//	defer cancel()
//
// Host options (host.WithResolveTimeout, host.WithConcurrency) override the
// resolution defaults per host.
package defaults
