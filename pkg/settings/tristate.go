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
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Tristate distinguishes "no opinion" from an explicit true or false.
type Tristate uint8

const (
	// Unset means the scope expresses no opinion.
	Unset Tristate = iota
	// True is an explicit true.
	True
	// False is an explicit false.
	False
)

// TristateOf converts a bool into an explicit Tristate.
func TristateOf(b bool) Tristate {
	if b {
		return True
	}
	return False
}

// IsSet reports whether the value is explicit.
func (t Tristate) IsSet() bool {
	return t == True || t == False
}

// Bool returns the explicit value; Unset reports false.
func (t Tristate) Bool() bool {
	return t == True
}

// String implements fmt.Stringer.
func (t Tristate) String() string {
	switch t {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "unset"
	}
}

// ParseTristate interprets a loosely typed value: nil and "" are Unset,
// booleans and Tristates map directly, and the strings "true"/"false"
// (any case) are accepted.
func ParseTristate(v any) (Tristate, error) {
	switch val := v.(type) {
	case nil:
		return Unset, nil
	case Tristate:
		if val > False {
			return Unset, fmt.Errorf("invalid tristate value %d", val)
		}
		return val, nil
	case bool:
		return TristateOf(val), nil
	case *bool:
		if val == nil {
			return Unset, nil
		}
		return TristateOf(*val), nil
	case string:
		switch strings.ToLower(strings.TrimSpace(val)) {
		case "", "unset", "null":
			return Unset, nil
		case "true":
			return True, nil
		case "false":
			return False, nil
		}
		return Unset, fmt.Errorf("invalid tristate value %q", val)
	default:
		return Unset, fmt.Errorf("invalid tristate value of type %T", v)
	}
}

// MarshalJSON encodes Unset as null.
func (t Tristate) MarshalJSON() ([]byte, error) {
	if !t.IsSet() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Bool())
}

// UnmarshalJSON accepts null, booleans and boolean strings.
func (t *Tristate) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseTristate(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalYAML encodes Unset as null.
func (t Tristate) MarshalYAML() (any, error) {
	if !t.IsSet() {
		return nil, nil
	}
	return t.Bool(), nil
}

// UnmarshalYAML accepts null, booleans and boolean strings.
func (t *Tristate) UnmarshalYAML(node *yaml.Node) error {
	var raw any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	parsed, err := ParseTristate(raw)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*t = parsed
	return nil
}
