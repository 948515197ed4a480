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
	"context"
	"fmt"

	"github.com/NVIDIA/componenthost/pkg/component"
	"github.com/NVIDIA/componenthost/pkg/errors"
	"github.com/NVIDIA/componenthost/pkg/settings"
)

// Source names where an effective enablement came from.
type Source string

const (
	// SourceInner means the inner scope set the value explicitly.
	SourceInner Source = "inner"
	// SourceOuter means the inner scope was unset and the outer scope decided.
	SourceOuter Source = "outer"
	// SourceDefault means neither scope had an opinion.
	SourceDefault Source = "default"
)

// Decision is the effective enablement of one component type.
type Decision struct {
	Key     component.Key `json:"key" yaml:"key"`
	Enabled bool          `json:"enabled" yaml:"enabled"`
	Source  Source        `json:"source" yaml:"source"`
}

// Resolve computes the effective enablement of t:
//
//  1. an explicit inner value wins;
//  2. otherwise an explicit outer value wins;
//  3. otherwise the type's EnabledByDefault applies.
//
// The outer scope is not read when the inner scope is explicit. Nothing is
// cached; every call reads the accessors again. A nil accessor behaves as
// one with nothing stored. Read failures are returned, never guessed over.
func Resolve(ctx context.Context, t *component.Type, outer, inner settings.Accessor) (Decision, error) {
	key := t.Key()

	innerValue, err := readEnabled(ctx, inner, settings.ScopeInner, key)
	if err != nil {
		return Decision{}, err
	}
	if innerValue.IsSet() {
		return Decision{Key: key, Enabled: innerValue.Bool(), Source: SourceInner}, nil
	}

	outerValue, err := readEnabled(ctx, outer, settings.ScopeOuter, key)
	if err != nil {
		return Decision{}, err
	}
	if outerValue.IsSet() {
		return Decision{Key: key, Enabled: outerValue.Bool(), Source: SourceOuter}, nil
	}

	return Decision{Key: key, Enabled: t.EnabledByDefault(), Source: SourceDefault}, nil
}

func readEnabled(ctx context.Context, acc settings.Accessor, scope settings.Scope, key component.Key) (settings.Tristate, error) {
	if acc == nil {
		return settings.Unset, nil
	}
	opts, err := acc.Get(ctx, string(key))
	if err != nil {
		resolutionErrors.WithLabelValues(string(scope)).Inc()
		return settings.Unset, errors.WrapWithContext(errors.ErrCodeUnavailable,
			fmt.Sprintf("failed to read %s settings for component %s", scope, key), err,
			map[string]any{
				"component": string(key),
				"scope":     string(scope),
			})
	}
	return opts.Enabled, nil
}
