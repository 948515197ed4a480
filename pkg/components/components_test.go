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
package components_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/componenthost/pkg/component"
	"github.com/NVIDIA/componenthost/pkg/components"
	"github.com/NVIDIA/componenthost/pkg/host"
	"github.com/NVIDIA/componenthost/pkg/logging"
	"github.com/NVIDIA/componenthost/pkg/settings"
)

type course struct {
	id     int
	unread map[component.Key]int
}

func (c course) PathPrefix() string {
	return "/courses/7"
}

func (c course) Unread(key component.Key) int {
	return c.unread[key]
}

func TestTypes(t *testing.T) {
	want := []struct {
		key     component.Key
		title   string
		enabled bool
	}{
		{"announcements", "Announcements", true},
		{"assessments", "Assessments", true},
		{"lesson_plan", "Lesson Plan", true},
		{"materials", "Materials", true},
		{"forum", "Forum", true},
		{"achievements", "Achievements", false},
		{"leaderboard", "Leaderboard", false},
		{"videos", "Videos", false},
	}

	types := components.Types()
	require.Len(t, types, len(want))
	for i, w := range want {
		assert.Equal(t, w.key, types[i].Key())
		assert.Equal(t, w.title, types[i].DisplayName())
		assert.Equal(t, w.enabled, types[i].EnabledByDefault(), w.key)
	}
}

func TestRegisterAll(t *testing.T) {
	reg := component.NewRegistry()
	require.NoError(t, components.RegisterAll(reg))
	require.NoError(t, components.RegisterAll(reg), "registering twice is a no-op")

	assert.Equal(t, len(components.Types()), reg.Len())
	assert.Len(t, reg.DefaultEnabled(), 5)

	typ, ok := reg.Lookup(":lesson_plan")
	require.True(t, ok)
	assert.Same(t, components.LessonPlanType, typ)
}

func TestRegistry(t *testing.T) {
	first, err := components.Registry()
	require.NoError(t, err)
	second, err := components.Registry()
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, components.Types(), first.All())
}

func newHost(t *testing.T, outer, inner settings.Accessor, ctx any) *host.Host {
	t.Helper()
	reg, err := components.Registry()
	require.NoError(t, err)
	return host.New(reg, outer, inner, ctx, host.WithLogger(logging.Discard()))
}

func TestSidebarItems(t *testing.T) {
	h := newHost(t, nil, nil, nil)

	items, err := h.EnabledSidebarItems(context.Background())
	require.NoError(t, err)

	normal := component.FilterSidebarItems(items, component.SidebarNormal)
	keys := make([]string, 0, len(normal))
	for _, item := range normal {
		keys = append(keys, item.Key)
	}
	assert.Equal(t, []string{"announcements", "assessments", "lesson_plan", "materials", "forum"}, keys)

	assert.Equal(t, "/lesson_plan", normal[2].Path)
	assert.Equal(t, "Forums", normal[4].Title)

	settingsItems := component.FilterSidebarItems(items, component.SidebarSettings)
	require.Len(t, settingsItems, 5)
	assert.Equal(t, "lesson_plan_settings", settingsItems[2].Key)
	assert.Equal(t, "Lesson Plan", settingsItems[2].Title)
	assert.Equal(t, "/admin/lesson_plan", settingsItems[2].Path)
}

func TestSidebarItems_Overrides(t *testing.T) {
	ctx := context.Background()
	outer := settings.NewStore(settings.ScopeOuter)
	inner := settings.NewStore(settings.ScopeInner)

	require.NoError(t, outer.Set(ctx, "leaderboard", settings.OptionEnabled, true))
	require.NoError(t, outer.Set(ctx, "leaderboard", components.OptionWeight, 0))
	require.NoError(t, outer.Set(ctx, "leaderboard", components.OptionTitle, "Rankings"))
	require.NoError(t, inner.Set(ctx, "leaderboard", components.OptionTitle, "Hall of Fame"))
	require.NoError(t, inner.Set(ctx, "forum", settings.OptionEnabled, false))

	hostCtx := course{id: 7, unread: map[component.Key]int{"announcements": 3, "forum": 9}}
	h := newHost(t, outer, inner, hostCtx)

	items, err := h.EnabledSidebarItems(ctx)
	require.NoError(t, err)
	normal := component.FilterSidebarItems(items, component.SidebarNormal)
	require.NotEmpty(t, normal)

	first := normal[0]
	assert.Equal(t, "leaderboard", first.Key, "weight 0 sorts first")
	assert.Equal(t, "Hall of Fame", first.Title, "inner title wins")
	assert.Equal(t, "/courses/7/leaderboard", first.Path)

	for _, item := range normal {
		assert.NotEqual(t, "forum", item.Key, "disabled forum contributes nothing")
		if item.Key == "announcements" {
			assert.Equal(t, 3, item.Unread)
		}
	}
}

func TestLeaderboardOptions(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		options    map[string]any
		wantCount  int
		wantGroups bool
	}{
		{"defaults", nil, 30, false},
		{"custom count", map[string]any{components.OptionDisplayUserCount: 20}, 20, false},
		{"json number", map[string]any{components.OptionDisplayUserCount: float64(15)}, 15, false},
		{"non-positive count", map[string]any{components.OptionDisplayUserCount: 0}, 30, false},
		{"group boards", map[string]any{components.OptionEnableGroupBoards: true}, 30, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inner := settings.NewStore(settings.ScopeInner)
			for k, v := range tt.options {
				require.NoError(t, inner.Set(ctx, "leaderboard", k, v))
			}
			h := newHost(t, nil, inner, nil)

			c, ok, err := h.Lookup(ctx, "leaderboard")
			require.NoError(t, err)
			require.True(t, ok)
			lb, ok := c.(*components.LeaderboardComponent)
			require.True(t, ok)

			count, err := lb.DisplayUserCount(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCount, count)

			groups, err := lb.GroupBoardsEnabled(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.wantGroups, groups)
		})
	}
}
