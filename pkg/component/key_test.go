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

import "testing"

func TestDeriveKey(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Key
	}{
		{"dotted namespace", "Course.Component.Forum", "forum"},
		{"double colon namespace", "Course::Component::Forum", "forum"},
		{"nested after marker", "Course::Component::Forum::Topics", "forum_topics"},
		{"marker suffix on type", "example.com/app/pkg/components.LessonPlanComponent", "lesson_plan"},
		{"type named Component", "example.com/app/pkg/components/forum.Component", "forum"},
		{"module suffix without marker", "host_test.DummyCourseModule", "dummy_course"},
		{"module segment marker", "app/modules/Leaderboard", "leaderboard"},
		{"no marker keeps final segment", "example.com/app/course.Announcements", "announcements"},
		{"acronym", "app/components.HTTPClient", "http_client"},
		{"already snake", "app/components.lesson_plan", "lesson_plan"},
		{"dashes", "app/components.video-library", "video_library"},
		{"case-insensitive marker", "App.COMPONENTS.Forum", "forum"},
		{"marker as type", "Course.Component", "course"},
		{"only a marker", "Component", ""},
		{"marker type under marker package", "app/components.Component", ""},
		{"empty", "", ""},
		{"separators only", "/./::", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveKey(tt.in); got != tt.want {
				t.Errorf("DeriveKey(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDeriveKeyDeterministic(t *testing.T) {
	inputs := []string{
		"Course.Component.Forum",
		"example.com/app/pkg/components.LessonPlanComponent",
		"host_test.DummyCourseModule",
	}
	for _, in := range inputs {
		first := DeriveKey(in)
		for i := 0; i < 5; i++ {
			if got := DeriveKey(in); got != first {
				t.Fatalf("DeriveKey(%q) changed between calls: %q then %q", in, first, got)
			}
		}
	}
}

func TestToKey(t *testing.T) {
	tests := []struct {
		in   string
		want Key
	}{
		{"forum", "forum"},
		{":forum", "forum"},
		{"Forum", "forum"},
		{"  :Lesson_Plan  ", "lesson_plan"},
		{"", ""},
		{":", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ToKey(tt.in); got != tt.want {
				t.Errorf("ToKey(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestToSnake(t *testing.T) {
	tests := map[string]string{
		"Forum":          "forum",
		"LessonPlan":     "lesson_plan",
		"HTTPClient":     "http_client",
		"Video2Stream":   "video2_stream",
		"already_snake":  "already_snake",
		"Mixed-Dash_Up":  "mixed_dash_up",
		"__Leading":      "leading",
		"ABC":            "abc",
		"GetHTTPResults": "get_http_results",
	}

	for in, want := range tests {
		if got := toSnake(in); got != want {
			t.Errorf("toSnake(%q) = %q, want %q", in, got, want)
		}
	}
}
