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
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/NVIDIA/componenthost/pkg/errors"
)

// SidebarKind groups sidebar entries by the section they render in.
type SidebarKind string

const (
	// SidebarNormal entries are shown to every member.
	SidebarNormal SidebarKind = "normal"
	// SidebarAdmin entries are shown in the administration section.
	SidebarAdmin SidebarKind = "admin"
	// SidebarSettings entries link to component settings pages.
	SidebarSettings SidebarKind = "settings"
)

// SupportedSidebarKinds returns every valid SidebarKind.
func SupportedSidebarKinds() []SidebarKind {
	return []SidebarKind{SidebarNormal, SidebarAdmin, SidebarSettings}
}

// IsValid reports whether k is a known kind. Empty counts as SidebarNormal.
func (k SidebarKind) IsValid() bool {
	return k == "" || slices.Contains(SupportedSidebarKinds(), k)
}

func (k SidebarKind) normalized() SidebarKind {
	if k == "" {
		return SidebarNormal
	}
	return k
}

// SidebarItem is one navigation descriptor contributed by a component.
type SidebarItem struct {
	Key    string      `json:"key" yaml:"key"`
	Kind   SidebarKind `json:"kind" yaml:"kind"`
	Title  string      `json:"title" yaml:"title"`
	Icon   string      `json:"icon,omitempty" yaml:"icon,omitempty"`
	Path   string      `json:"path" yaml:"path"`
	Weight int         `json:"weight" yaml:"weight"`
	Unread int         `json:"unread,omitempty" yaml:"unread,omitempty"`
}

// CollectSidebarItems aggregates the items of every SidebarContributor in
// comps. Items are stable-sorted by Weight, so equal weights keep component
// order. An empty input yields an empty, non-nil slice.
func CollectSidebarItems(ctx context.Context, comps []Component) ([]SidebarItem, error) {
	items := make([]SidebarItem, 0, len(comps))
	for _, c := range comps {
		contributor, ok := c.(SidebarContributor)
		if !ok {
			continue
		}
		contributed, err := contributor.SidebarItems(ctx)
		if err != nil {
			key := c.Type().Key()
			return nil, errors.WrapWithContext(errors.ErrCodeInternal,
				fmt.Sprintf("failed to collect sidebar items for component %s", key), err,
				map[string]any{"component": string(key)})
		}
		for _, item := range contributed {
			item.Kind = item.Kind.normalized()
			items = append(items, item)
		}
	}

	slices.SortStableFunc(items, func(a, b SidebarItem) int {
		return cmp.Compare(a.Weight, b.Weight)
	})
	return items, nil
}

// FilterSidebarItems returns the items of the given kind, preserving order.
func FilterSidebarItems(items []SidebarItem, kind SidebarKind) []SidebarItem {
	kind = kind.normalized()
	out := make([]SidebarItem, 0, len(items))
	for _, item := range items {
		if item.Kind.normalized() == kind {
			out = append(out, item)
		}
	}
	return out
}
