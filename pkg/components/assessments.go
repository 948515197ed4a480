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

// AssessmentsComponent lists the course's assessments.
type AssessmentsComponent struct {
	component.Base
}

func newAssessmentsComponent(_ context.Context, deps component.Dependencies) (*AssessmentsComponent, error) {
	return &AssessmentsComponent{Base: component.NewBase(deps)}, nil
}

// SidebarItems implements component.SidebarContributor.
func (c *AssessmentsComponent) SidebarItems(ctx context.Context) ([]component.SidebarItem, error) {
	return navigation(ctx, c.Base, entry{title: "Assessments", icon: "plane", path: "assessments", weight: 2})
}
