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
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Store is an in-memory Accessor. It is safe for concurrent use.
type Store struct {
	scope   Scope
	mu      sync.RWMutex
	entries map[string]Options
}

var _ Accessor = (*Store)(nil)

// NewStore creates an empty store for scope.
func NewStore(scope Scope) *Store {
	return &Store{
		scope:   scope,
		entries: make(map[string]Options),
	}
}

// Scope returns the scope label the store was created with.
func (s *Store) Scope() Scope {
	return s.scope
}

// Get implements Accessor.
func (s *Store) Get(ctx context.Context, key string) (Options, error) {
	if err := ctx.Err(); err != nil {
		return Options{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries[normalizeKey(key)].Clone(), nil
}

// Set implements Accessor.
func (s *Store) Set(ctx context.Context, key, option string, value any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	key = normalizeKey(key)
	if key == "" {
		return fmt.Errorf("settings key is empty")
	}
	option = strings.TrimSpace(option)
	if option == "" {
		return fmt.Errorf("option name is empty for key %q", key)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	opts := s.entries[key].Clone()
	if option == OptionEnabled {
		enabled, err := ParseTristate(value)
		if err != nil {
			return fmt.Errorf("%s.%s: %w", key, option, err)
		}
		opts.Enabled = enabled
	} else {
		if opts.Values == nil {
			opts.Values = make(map[string]any)
		}
		if value == nil {
			delete(opts.Values, option)
		} else {
			opts.Values[option] = value
		}
	}
	s.entries[key] = opts
	return nil
}

// SetEnabled is a typed shortcut for Set(ctx, key, OptionEnabled, v).
func (s *Store) SetEnabled(key string, v Tristate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key = normalizeKey(key)
	opts := s.entries[key].Clone()
	opts.Enabled = v
	s.entries[key] = opts
}

// Keys returns the keys with stored options, sorted.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
