// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package host

import (
	"log/slog"
	"time"
)

// Option configures a Host.
type Option func(*Host)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(h *Host) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// WithConcurrency bounds how many components have their settings read in
// parallel during one enablement query. Values below 1 mean 1.
func WithConcurrency(n int) Option {
	return func(h *Host) {
		h.concurrency = max(n, 1)
	}
}

// WithResolveTimeout bounds an enablement query when the caller's context
// has no deadline. Zero disables the bound.
func WithResolveTimeout(d time.Duration) Option {
	return func(h *Host) {
		h.resolveTimeout = d
	}
}
