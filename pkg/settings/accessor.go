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

package settings

import (
	"context"
	"maps"
)

// OptionEnabled is the one option the host reads.
const OptionEnabled = "enabled"

// Scope labels one level of the settings hierarchy.
type Scope string

const (
	// ScopeOuter is the coarser scope (for example an instance-wide default).
	ScopeOuter Scope = "outer"
	// ScopeInner is the finer scope (for example a single course); it wins
	// over ScopeOuter when explicit.
	ScopeInner Scope = "inner"
)

// Options is the per-component view of one scope.
type Options struct {
	// Enabled is the scope's opinion on enablement.
	Enabled Tristate
	// Values holds component-specific options, opaque to the host.
	Values map[string]any
}

// Clone returns a deep-enough copy: the Values map is copied, its values are not.
func (o Options) Clone() Options {
	return Options{Enabled: o.Enabled, Values: maps.Clone(o.Values)}
}

// Accessor reads and mutates the settings of one scope, keyed by component
// key. Implementations may be remote and must be safe for concurrent use.
// Tenancy, if any, is the implementation's concern.
type Accessor interface {
	// Get returns the options stored for key. A key with nothing stored
	// yields zero Options (Enabled Unset), not an error.
	Get(ctx context.Context, key string) (Options, error)
	// Set changes one option. OptionEnabled takes anything ParseTristate
	// accepts; a nil value for any other option removes it.
	Set(ctx context.Context, key, option string, value any) error
}
