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
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/componenthost/pkg/component"
	"github.com/NVIDIA/componenthost/pkg/errors"
	"github.com/NVIDIA/componenthost/pkg/host"
)

// componentDetail is the show command's output.
type componentDetail struct {
	Key              component.Key           `json:"key" yaml:"key"`
	Title            string                  `json:"title" yaml:"title"`
	Name             string                  `json:"name" yaml:"name"`
	EnabledByDefault bool                    `json:"enabled_by_default" yaml:"enabled_by_default"`
	Enabled          bool                    `json:"enabled" yaml:"enabled"`
	Source           host.Source             `json:"source" yaml:"source"`
	Sidebar          []component.SidebarItem `json:"sidebar" yaml:"sidebar"`
}

func showCmd() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show one component, its enablement and its sidebar items",
		ArgsUsage: "KEY",
		Flags: append(settingsFlags(),
			outputFlag(),
			formatFlag(),
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return errors.New(errors.ErrCodeInvalidRequest, "expected exactly one component key")
			}
			key := cmd.Args().First()

			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			h, err := newHost(ctx, cmd, nil)
			if err != nil {
				return err
			}

			c, ok, err := h.Lookup(ctx, key)
			if err != nil {
				return err
			}
			if !ok {
				return errors.NewWithContext(errors.ErrCodeNotFound,
					fmt.Sprintf("component %q is not registered", key),
					map[string]any{"key": key})
			}

			t := c.Type()
			d, _, err := h.Decision(ctx, key)
			if err != nil {
				return err
			}

			items, err := component.CollectSidebarItems(ctx, []component.Component{c})
			if err != nil {
				return err
			}

			return writeOutput(ctx, cmd, componentDetail{
				Key:              t.Key(),
				Title:            t.DisplayName(),
				Name:             t.Name(),
				EnabledByDefault: t.EnabledByDefault(),
				Enabled:          d.Enabled,
				Source:           d.Source,
				Sidebar:          items,
			})
		},
	}
}
