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
	"fmt"
	"reflect"
	"slices"
	"sync"

	"github.com/NVIDIA/componenthost/pkg/errors"
)

// Registry is an ordered, append-only set of component types.
// Iteration order is registration order. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	types    []*Type
	byKey    map[Key]*Type
	byGoType map[reflect.Type]*Type
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		byKey:    make(map[Key]*Type),
		byGoType: make(map[reflect.Type]*Type),
	}
}

// Register adds types in order. Registering a Go type that is already known
// is a no-op. A key already owned by a different Go type is a CONFLICT error.
// The call is all-or-nothing: on error the registry is unchanged.
func (r *Registry) Register(types ...*Type) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	pendingKeys := make(map[Key]*Type, len(types))
	pendingGo := make(map[reflect.Type]struct{}, len(types))
	accepted := make([]*Type, 0, len(types))

	for _, t := range types {
		if err := validateType(t); err != nil {
			return err
		}
		if _, known := r.byGoType[t.goType]; known {
			continue
		}
		if _, dup := pendingGo[t.goType]; dup {
			continue
		}

		owner, taken := r.byKey[t.key]
		if !taken {
			owner, taken = pendingKeys[t.key]
		}
		if taken {
			return errors.NewWithContext(errors.ErrCodeConflict,
				fmt.Sprintf("component key %q is derived by both %s and %s", t.key, owner.name, t.name),
				map[string]any{
					"key":      string(t.key),
					"existing": owner.name,
					"incoming": t.name,
				})
		}

		pendingKeys[t.key] = t
		pendingGo[t.goType] = struct{}{}
		accepted = append(accepted, t)
	}

	for _, t := range accepted {
		r.types = append(r.types, t)
		r.byKey[t.key] = t
		r.byGoType[t.goType] = t
	}
	return nil
}

// MustRegister is Register that panics on error. Use it where an ambiguous
// registry must stop the process.
func (r *Registry) MustRegister(types ...*Type) {
	if err := r.Register(types...); err != nil {
		panic(err)
	}
}

// All returns the registered types in registration order.
func (r *Registry) All() []*Type {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.types)
}

// DefaultEnabled returns the registered types that are enabled by default,
// in registration order.
func (r *Registry) DefaultEnabled() []*Type {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Type, 0, len(r.types))
	for _, t := range r.types {
		if t.enabledByDefault {
			out = append(out, t)
		}
	}
	return out
}

// KeyFor returns the key of t. Keys are computed when a type is defined, so
// repeated calls always agree.
func (r *Registry) KeyFor(t *Type) Key {
	return t.Key()
}

// Lookup finds a registered type by key. The input is normalized with ToKey.
func (r *Registry) Lookup(key string) (*Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.byKey[ToKey(key)]
	return t, ok
}

// Keys returns every registered key in registration order.
func (r *Registry) Keys() []Key {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]Key, 0, len(r.types))
	for _, t := range r.types {
		keys = append(keys, t.key)
	}
	return keys
}

// Len returns the number of registered types.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.types)
}

func validateType(t *Type) error {
	if t == nil {
		return errors.New(errors.ErrCodeInvalidRequest, "component type is nil")
	}
	if t.factory == nil {
		return errors.NewWithContext(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("component type %s has no factory", t.name),
			map[string]any{"type": t.name})
	}
	if t.goType == nil || t.goType.Kind() == reflect.Interface {
		return errors.NewWithContext(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("component type %s must be a concrete type", t.name),
			map[string]any{"type": t.name})
	}
	if t.key == "" {
		return errors.NewWithContext(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("component type %s derives an empty key", t.name),
			map[string]any{"type": t.name})
	}
	return nil
}
