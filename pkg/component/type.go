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
	"reflect"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Factory constructs one component instance for a host.
// Factories must not retain deps beyond the returned component.
type Factory func(ctx context.Context, deps Dependencies) (Component, error)

// Type is the class-level descriptor of a component implementation:
// its derived key, its default enablement and the factory that builds it.
// A Type is immutable once defined.
type Type struct {
	name             string
	key              Key
	title            string
	goType           reflect.Type
	enabledByDefault bool
	factory          Factory
}

// TypeOption configures a Type at definition time.
type TypeOption func(*Type)

// EnabledByDefault marks the type as enabled when neither settings scope
// has an opinion.
func EnabledByDefault() TypeOption {
	return func(t *Type) {
		t.enabledByDefault = true
	}
}

// WithName overrides the fully qualified name the key is derived from.
// Use it to keep a key stable across a Go rename.
func WithName(qualifiedName string) TypeOption {
	return func(t *Type) {
		t.name = qualifiedName
	}
}

// WithTitle sets the human-readable name. Defaults to the title-cased key.
func WithTitle(title string) TypeOption {
	return func(t *Type) {
		t.title = title
	}
}

// Define describes the component implementation T. The Go type T is the
// registration identity; its qualified name (import path and type name)
// feeds DeriveKey unless WithName is given.
//
//	var ForumType = component.Define(newForum, component.EnabledByDefault())
func Define[T Component](factory func(ctx context.Context, deps Dependencies) (T, error), opts ...TypeOption) *Type {
	goType := reflect.TypeFor[T]()
	t := &Type{
		name:   qualifiedName(goType),
		goType: goType,
	}
	if factory != nil {
		t.factory = func(ctx context.Context, deps Dependencies) (Component, error) {
			c, err := factory(ctx, deps)
			if err != nil {
				return nil, err
			}
			if v := reflect.ValueOf(c); !v.IsValid() || (v.Kind() == reflect.Pointer && v.IsNil()) {
				return nil, nil
			}
			return c, nil
		}
	}

	for _, opt := range opts {
		opt(t)
	}

	t.key = DeriveKey(t.name)
	if t.title == "" {
		t.title = titleFromKey(t.key)
	}
	return t
}

// Key returns the derived key. It never changes for the lifetime of the process.
func (t *Type) Key() Key {
	if t == nil {
		return ""
	}
	return t.key
}

// Name returns the fully qualified name the key was derived from.
func (t *Type) Name() string {
	return t.name
}

// DisplayName returns the human-readable component name.
func (t *Type) DisplayName() string {
	return t.title
}

// EnabledByDefault reports the class-level default used when no settings
// scope has an explicit value.
func (t *Type) EnabledByDefault() bool {
	return t.enabledByDefault
}

// GoType returns the Go type the descriptor was defined for.
func (t *Type) GoType() reflect.Type {
	return t.goType
}

// New runs the factory. Callers normally go through a host, which memoizes
// the result; New itself builds a fresh instance on every call.
func (t *Type) New(ctx context.Context, deps Dependencies) (Component, error) {
	deps.Type = t
	return t.factory(ctx, deps)
}

// String implements fmt.Stringer.
func (t *Type) String() string {
	return string(t.key)
}

func qualifiedName(rt reflect.Type) string {
	for rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	if rt.PkgPath() == "" {
		return rt.Name()
	}
	return rt.PkgPath() + "." + rt.Name()
}

func titleFromKey(k Key) string {
	words := strings.ReplaceAll(string(k), KeySeparator, " ")
	return cases.Title(language.English).String(words)
}
