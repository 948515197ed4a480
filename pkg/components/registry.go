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
	"sync"

	"github.com/NVIDIA/componenthost/pkg/component"
)

// Built-in component types. Core course features are enabled by default;
// gamification and videos are opt-in.
var (
	AnnouncementsType = component.Define(newAnnouncementsComponent, component.EnabledByDefault())
	AssessmentsType   = component.Define(newAssessmentsComponent, component.EnabledByDefault())
	LessonPlanType    = component.Define(newLessonPlanComponent, component.EnabledByDefault())
	MaterialsType     = component.Define(newMaterialsComponent, component.EnabledByDefault())
	ForumType         = component.Define(newForumComponent, component.EnabledByDefault())
	AchievementsType  = component.Define(newAchievementsComponent)
	LeaderboardType   = component.Define(newLeaderboardComponent)
	VideosType        = component.Define(newVideosComponent)
)

// Types returns the built-in types in registration order.
func Types() []*component.Type {
	return []*component.Type{
		AnnouncementsType,
		AssessmentsType,
		LessonPlanType,
		MaterialsType,
		ForumType,
		AchievementsType,
		LeaderboardType,
		VideosType,
	}
}

// RegisterAll adds every built-in type to reg. Calling it again is a no-op.
func RegisterAll(reg *component.Registry) error {
	return reg.Register(Types()...)
}

var defaultRegistry = sync.OnceValues(func() (*component.Registry, error) {
	reg := component.NewRegistry()
	if err := RegisterAll(reg); err != nil {
		return nil, err
	}
	return reg, nil
})

// Registry returns the process-wide registry holding the built-in types.
// It is built on first use; later calls return the same registry.
func Registry() (*component.Registry, error) {
	return defaultRegistry()
}
