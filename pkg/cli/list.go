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

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/componenthost/pkg/component"
	"github.com/NVIDIA/componenthost/pkg/components"
)

// typeRow describes one registered component type.
type typeRow struct {
	Key              component.Key `json:"key" yaml:"key"`
	Title            string        `json:"title" yaml:"title"`
	EnabledByDefault bool          `json:"enabled_by_default" yaml:"enabled_by_default"`
	Name             string        `json:"name" yaml:"name"`
}

func listCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List the registered components in registration order",
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			reg, err := components.Registry()
			if err != nil {
				return err
			}

			types := reg.All()
			rows := make([]typeRow, 0, len(types))
			for _, t := range types {
				rows = append(rows, typeRow{
					Key:              reg.KeyFor(t),
					Title:            t.DisplayName(),
					EnabledByDefault: t.EnabledByDefault(),
					Name:             t.Name(),
				})
			}
			return writeOutput(ctx, cmd, rows)
		},
	}
}
