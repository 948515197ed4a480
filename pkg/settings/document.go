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
	"encoding/json"
	"fmt"
	"maps"

	"github.com/NVIDIA/componenthost/pkg/serializer"
)

// Document is the serialized form of one scope:
//
//	components:
//	  forum:
//	    enabled: false
//	  leaderboard:
//	    enabled: true
//	    display_user_count: 20
type Document struct {
	Components map[string]ComponentSettings `json:"components" yaml:"components"`
}

// ComponentSettings is one component's entry in a Document. Every key other
// than "enabled" lands in Values.
type ComponentSettings struct {
	Enabled Tristate       `json:"enabled" yaml:"enabled,omitempty"`
	Values  map[string]any `json:"-" yaml:",inline"`
}

// MarshalJSON flattens Values next to "enabled".
func (c ComponentSettings) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(c.Values)+1)
	maps.Copy(out, c.Values)
	if c.Enabled.IsSet() {
		out[OptionEnabled] = c.Enabled.Bool()
	}
	return json.Marshal(out)
}

// UnmarshalJSON splits "enabled" from the remaining options.
func (c *ComponentSettings) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	enabled, err := ParseTristate(raw[OptionEnabled])
	if err != nil {
		return err
	}
	delete(raw, OptionEnabled)
	c.Enabled = enabled
	c.Values = raw
	return nil
}

// LoadFile reads a Document from a YAML or JSON file path or HTTP(S) URL.
// An empty file yields an empty Document.
func LoadFile(ctx context.Context, path string) (*Document, error) {
	doc, err := serializer.FromFileWithContext[Document](ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings from %q: %w", path, err)
	}
	return doc, nil
}

// NewStoreFromDocument builds a Store for scope populated from doc.
// A nil doc yields an empty store.
func NewStoreFromDocument(scope Scope, doc *Document) *Store {
	s := NewStore(scope)
	if doc == nil {
		return s
	}
	for key, cs := range doc.Components {
		s.entries[normalizeKey(key)] = Options{
			Enabled: cs.Enabled,
			Values:  maps.Clone(cs.Values),
		}
	}
	return s
}

// Document exports the store's current contents.
func (s *Store) Document() *Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc := &Document{Components: make(map[string]ComponentSettings, len(s.entries))}
	for key, opts := range s.entries {
		doc.Components[key] = ComponentSettings{
			Enabled: opts.Enabled,
			Values:  maps.Clone(opts.Values),
		}
	}
	return doc
}
