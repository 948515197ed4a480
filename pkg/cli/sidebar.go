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
)

func sidebarCmd() *cli.Command {
	return &cli.Command{
		Name:  "sidebar",
		Usage: "Print the aggregated sidebar items",
		Flags: append(settingsFlags(),
			&cli.BoolFlag{
				Name:  "enabled-only",
				Value: true,
				Usage: "Only aggregate enabled components",
			},
			&cli.StringFlag{
				Name:  "kind",
				Usage: fmt.Sprintf("Only print items of this kind (supported values: %v)", component.SupportedSidebarKinds()),
			},
			&cli.StringFlag{
				Name:  "path-prefix",
				Value: "/",
				Usage: "Prefix for every item path, for example /courses/42",
			},
			outputFlag(),
			formatFlag(),
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			kind := component.SidebarKind(cmd.String("kind"))
			if !kind.IsValid() {
				return errors.New(errors.ErrCodeInvalidRequest,
					fmt.Sprintf("invalid sidebar kind %q, supported values: %v", kind, component.SupportedSidebarKinds()))
			}
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			h, err := newHost(ctx, cmd, hostContext{prefix: cmd.String("path-prefix")})
			if err != nil {
				return err
			}

			var items []component.SidebarItem
			if cmd.Bool("enabled-only") {
				items, err = h.EnabledSidebarItems(ctx)
			} else {
				items, err = h.SidebarItems(ctx)
			}
			if err != nil {
				return err
			}

			if cmd.IsSet("kind") {
				items = component.FilterSidebarItems(items, kind)
			}
			return writeOutput(ctx, cmd, items)
		},
	}
}
