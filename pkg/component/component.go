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

package component

import (
	"context"
	"log/slog"
	"math"

	"github.com/NVIDIA/componenthost/pkg/logging"
	"github.com/NVIDIA/componenthost/pkg/settings"
)

// Component is the contract every pluggable feature module satisfies.
// Implementations usually embed Base, which provides Type.
type Component interface {
	// Type returns the descriptor the instance was built from.
	Type() *Type
}

// SidebarContributor is implemented by components that add navigation
// entries to the host's sidebar.
type SidebarContributor interface {
	SidebarItems(ctx context.Context) ([]SidebarItem, error)
}

// Dependencies are handed to a Factory when a host instantiates a component.
type Dependencies struct {
	// Type is the descriptor being instantiated. Set by the host.
	Type *Type
	// Context is the host application's opaque request context, passed
	// through unmodified.
	Context any
	// Outer is the coarser settings scope.
	Outer settings.Accessor
	// Inner is the finer settings scope; it overrides Outer.
	Inner settings.Accessor
	// Logger is scoped to the component being built.
	Logger *slog.Logger
}

// Base carries the dependencies a component was built with. Embed it to
// satisfy Component.
type Base struct {
	deps Dependencies
}

// NewBase captures deps for embedding.
func NewBase(deps Dependencies) Base {
	if deps.Logger == nil {
		deps.Logger = logging.Discard()
	}
	return Base{deps: deps}
}

// Type implements Component.
func (b Base) Type() *Type {
	return b.deps.Type
}

// Key returns the component's key.
func (b Base) Key() Key {
	return b.deps.Type.Key()
}

// Context returns the host application's context object.
func (b Base) Context() any {
	return b.deps.Context
}

// Logger returns the component-scoped logger.
func (b Base) Logger() *slog.Logger {
	return b.deps.Logger
}

// Option reads a component-specific option, preferring the inner scope over
// the outer one. The bool reports whether either scope set it.
func (b Base) Option(ctx context.Context, name string) (any, bool, error) {
	key := string(b.Key())
	for _, acc := range []settings.Accessor{b.deps.Inner, b.deps.Outer} {
		if acc == nil {
			continue
		}
		opts, err := acc.Get(ctx, key)
		if err != nil {
			return nil, false, err
		}
		if v, ok := opts.Values[name]; ok {
			return v, true, nil
		}
	}
	return nil, false, nil
}

// StringOption is Option for string values, returning def when unset or
// not a string.
func (b Base) StringOption(ctx context.Context, name, def string) (string, error) {
	v, ok, err := b.Option(ctx, name)
	if err != nil || !ok {
		return def, err
	}
	if s, isString := v.(string); isString && s != "" {
		return s, nil
	}
	return def, nil
}

// IntOption is Option for integer values, returning def when unset, not
// numeric, or a float that is not a whole number within the int range.
// YAML and JSON decoders produce int and float64 respectively.
func (b Base) IntOption(ctx context.Context, name string, def int) (int, error) {
	v, ok, err := b.Option(ctx, name)
	if err != nil || !ok {
		return def, err
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) || n < math.MinInt || n >= math.MaxInt {
			return def, nil
		}
		return int(n), nil
	default:
		return def, nil
	}
}
