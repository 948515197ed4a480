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

// UnreadCounter is implemented by host contexts that track unread items
// per component, for example for the current user.
type UnreadCounter interface {
	Unread(key component.Key) int
}

// AnnouncementsComponent publishes course-wide announcements.
type AnnouncementsComponent struct {
	component.Base
}

func newAnnouncementsComponent(_ context.Context, deps component.Dependencies) (*AnnouncementsComponent, error) {
	return &AnnouncementsComponent{Base: component.NewBase(deps)}, nil
}

// SidebarItems implements component.SidebarContributor.
func (c *AnnouncementsComponent) SidebarItems(ctx context.Context) ([]component.SidebarItem, error) {
	items, err := navigation(ctx, c.Base, entry{title: "Announcements", icon: "bullhorn", path: "announcements", weight: 1})
	if err != nil {
		return nil, err
	}
	if counter, ok := c.Context().(UnreadCounter); ok {
		items[0].Unread = counter.Unread(c.Key())
	}
	return items, nil
}
