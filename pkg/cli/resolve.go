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
)

func resolveCmd() *cli.Command {
	return &cli.Command{
		Name:  "resolve",
		Usage: "Resolve the effective enablement of every component",
		Description: `Prints one decision per registered component with the scope that
decided it: "inner" when the inner document sets it, "outer" when only the
outer document does, "default" otherwise.`,
		Flags: append(settingsFlags(),
			&cli.BoolFlag{
				Name:  "enabled-only",
				Usage: "Only print enabled components",
			},
			outputFlag(),
			formatFlag(),
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			h, err := newHost(ctx, cmd, nil)
			if err != nil {
				return err
			}

			decisions, err := h.Decisions(ctx)
			if err != nil {
				return err
			}

			if cmd.Bool("enabled-only") {
				enabled := decisions[:0]
				for _, d := range decisions {
					if d.Enabled {
						enabled = append(enabled, d)
					}
				}
				decisions = enabled
			}
			return writeOutput(ctx, cmd, decisions)
		},
	}
}
