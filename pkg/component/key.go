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
	"strings"
	"unicode"
)

// KeySeparator joins the segments of a derived key.
const KeySeparator = "_"

// Key is the canonical identifier of a component type. It is used as the
// settings storage key and for lookups, so its derivation rule is part of the
// external contract.
type Key string

// String implements fmt.Stringer.
func (k Key) String() string {
	return string(k)
}

// markerSegments are namespace segments that only mark "this is a component"
// and never contribute to a key.
var markerSegments = map[string]struct{}{
	"component":  {},
	"components": {},
	"module":     {},
	"modules":    {},
}

// markerSuffixes decorate implementation type names (ForumComponent).
var markerSuffixes = []string{"Component", "Module"}

// DeriveKey computes the key for a fully qualified type name.
//
// The rule:
//  1. Split on the namespace separators "/", "." and "::".
//  2. Strip a marker suffix ("Component", "Module") from the final segment.
//     A final segment that is exactly a marker is dropped.
//  3. Drop every segment up to and including the last marker segment
//     ("component", "components", "module", "modules"; case-insensitive).
//     Without a marker only the final segment is kept, so Go import paths
//     never leak into keys.
//  4. Convert each kept segment from CamelCase to snake_case and join the
//     segments with KeySeparator.
//
// Examples:
//
//	Course.Component.Forum                          -> forum
//	Course::Component::Forum::Topics                -> forum_topics
//	example.com/app/pkg/components.LessonPlanComponent -> lesson_plan
//	example.com/app/pkg/components/forum.Component  -> forum
//	host_test.DummyCourseModule                     -> dummy_course
//	Course.Component                                -> course
//	app/components.Component                        -> "" (rejected by Register)
func DeriveKey(qualifiedName string) Key {
	segments := splitQualifiedName(qualifiedName)
	if len(segments) == 0 {
		return ""
	}

	last := len(segments) - 1
	if isMarker(segments[last]) {
		segments = segments[:last]
	} else {
		for _, suffix := range markerSuffixes {
			if len(segments[last]) > len(suffix) && strings.HasSuffix(segments[last], suffix) {
				segments[last] = strings.TrimSuffix(segments[last], suffix)
				break
			}
		}
	}
	if len(segments) == 0 {
		return ""
	}

	start := len(segments) - 1
	for i := len(segments) - 1; i >= 0; i-- {
		if isMarker(segments[i]) {
			start = i + 1
			break
		}
	}

	kept := make([]string, 0, len(segments)-start)
	for _, s := range segments[start:] {
		if snake := toSnake(s); snake != "" {
			kept = append(kept, snake)
		}
	}
	return Key(strings.Join(kept, KeySeparator))
}

// ToKey normalizes caller input into a Key for lookups. It trims whitespace,
// strips a leading ":" (symbol notation) and lower-cases, so "forum",
// ":forum" and "Forum" all name the same component.
func ToKey(input string) Key {
	s := strings.TrimSpace(input)
	s = strings.TrimPrefix(s, ":")
	return Key(strings.ToLower(strings.TrimSpace(s)))
}

func splitQualifiedName(name string) []string {
	name = strings.ReplaceAll(name, "::", "/")
	return strings.FieldsFunc(name, func(r rune) bool {
		return r == '/' || r == '.'
	})
}

func isMarker(segment string) bool {
	_, ok := markerSegments[strings.ToLower(segment)]
	return ok
}

// toSnake converts CamelCase (including acronyms such as HTTPClient) to
// snake_case. Dashes become underscores; runs of underscores collapse.
func toSnake(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s) + 4)

	underscore := func() {
		str := b.String()
		if len(str) > 0 && !strings.HasSuffix(str, KeySeparator) {
			b.WriteString(KeySeparator)
		}
	}

	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || unicode.IsSpace(r):
			underscore()
		case unicode.IsUpper(r):
			if i > 0 {
				prev := runes[i-1]
				nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
				if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
					underscore()
				}
			}
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return strings.Trim(b.String(), KeySeparator)
}
