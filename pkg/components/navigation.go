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
package components

import (
	"context"
	"path"

	"github.com/NVIDIA/componenthost/pkg/component"
)

// Options read by every built-in component.
const (
	OptionTitle  = "title"
	OptionWeight = "weight"
)

// PathPrefixer is implemented by host contexts that scope navigation paths.
type PathPrefixer interface {
	PathPrefix() string
}

// entry is the default main navigation item of a component.
type entry struct {
	title  string
	icon   string
	path   string
	weight int
}

// navigation builds the main entry, with title and weight overrides, and a
// settings entry pointing to the component's administration page.
func navigation(ctx context.Context, b component.Base, main entry) ([]component.SidebarItem, error) {
	title, err := b.StringOption(ctx, OptionTitle, main.title)
	if err != nil {
		return nil, err
	}
	weight, err := b.IntOption(ctx, OptionWeight, main.weight)
	if err != nil {
		return nil, err
	}

	key := string(b.Key())
	prefix := "/"
	if p, ok := b.Context().(PathPrefixer); ok {
		prefix = p.PathPrefix()
	}

	return []component.SidebarItem{
		{
			Key:    key,
			Kind:   component.SidebarNormal,
			Title:  title,
			Icon:   main.icon,
			Path:   path.Join(prefix, main.path),
			Weight: weight,
		},
		{
			Key:    key + "_settings",
			Kind:   component.SidebarSettings,
			Title:  b.Type().DisplayName(),
			Icon:   main.icon,
			Path:   path.Join(prefix, "admin", key),
			Weight: weight,
		},
	}, nil
}
