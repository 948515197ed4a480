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

	"github.com/NVIDIA/componenthost/pkg/component"
)

// Leaderboard options.
const (
	OptionDisplayUserCount  = "display_user_count"
	OptionEnableGroupBoards = "enable_group_leaderboard"

	defaultDisplayUserCount = 30
)

// LeaderboardComponent ranks students by experience points and achievements.
type LeaderboardComponent struct {
	component.Base
}

func newLeaderboardComponent(_ context.Context, deps component.Dependencies) (*LeaderboardComponent, error) {
	return &LeaderboardComponent{Base: component.NewBase(deps)}, nil
}

// DisplayUserCount returns how many students the board lists.
// Non-positive values fall back to the default.
func (c *LeaderboardComponent) DisplayUserCount(ctx context.Context) (int, error) {
	n, err := c.IntOption(ctx, OptionDisplayUserCount, defaultDisplayUserCount)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return defaultDisplayUserCount, nil
	}
	return n, nil
}

// GroupBoardsEnabled reports whether per-group boards are shown.
func (c *LeaderboardComponent) GroupBoardsEnabled(ctx context.Context) (bool, error) {
	v, ok, err := c.Option(ctx, OptionEnableGroupBoards)
	if err != nil || !ok {
		return false, err
	}
	enabled, _ := v.(bool)
	return enabled, nil
}

// SidebarItems implements component.SidebarContributor.
func (c *LeaderboardComponent) SidebarItems(ctx context.Context) ([]component.SidebarItem, error) {
	return navigation(ctx, c.Base, entry{title: "Leaderboard", icon: "star", path: "leaderboard", weight: 7})
}
