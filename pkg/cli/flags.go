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
	stderrors "errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"
	k8serrors "k8s.io/apimachinery/pkg/api/errors"

	"github.com/NVIDIA/componenthost/pkg/components"
	"github.com/NVIDIA/componenthost/pkg/errors"
	"github.com/NVIDIA/componenthost/pkg/host"
	"github.com/NVIDIA/componenthost/pkg/serializer"
	"github.com/NVIDIA/componenthost/pkg/settings"
)

// Environment variables read by the settings flags.
const (
	EnvOuterSettings = "COMPONENTHOST_OUTER"
	EnvInnerSettings = "COMPONENTHOST_INNER"
)

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage: fmt.Sprintf("Output format (supported values: %s)",
			strings.Join(serializer.SupportedFormats(), ", ")),
	}
}

func settingsFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "outer",
			Usage:   "Path, URL or cm://namespace/name[/key] of the outer (instance-wide) settings document",
			Sources: cli.EnvVars(EnvOuterSettings),
		},
		&cli.StringFlag{
			Name:    "inner",
			Usage:   "Path, URL or cm://namespace/name[/key] of the inner (course) settings document",
			Sources: cli.EnvVars(EnvInnerSettings),
		},
	}
}

// parseOutputFormat validates the --format flag.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	return serializer.ParseFormat(cmd.String("format"))
}

// writeOutput serializes v to --output (or stdout) in --format.
func writeOutput(ctx context.Context, cmd *cli.Command, v any) error {
	format, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	ser := serializer.NewFileWriterOrStdout(format, cmd.String("output"))
	defer func() {
		if err := ser.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}()

	return ser.Serialize(ctx, v)
}

// loadScope builds a settings store from the document at path.
// An empty path yields an empty store.
func loadScope(ctx context.Context, scope settings.Scope, path string) (*settings.Store, error) {
	if path == "" {
		return settings.NewStore(scope), nil
	}

	doc, err := settings.LoadFile(ctx, path)
	if err != nil {
		code := errors.ErrCodeInvalidRequest
		if stderrors.Is(err, fs.ErrNotExist) || k8serrors.IsNotFound(err) {
			code = errors.ErrCodeNotFound
		}
		return nil, errors.WrapWithContext(code,
			fmt.Sprintf("failed to load %s settings", scope), err,
			map[string]any{"path": path, "scope": string(scope)})
	}

	slog.Debug("loaded settings",
		"scope", scope,
		"path", path,
		"components", len(doc.Components))
	return settings.NewStoreFromDocument(scope, doc), nil
}

// hostContext is the context object handed to components by the CLI.
type hostContext struct {
	prefix string
}

func (c hostContext) PathPrefix() string {
	return c.prefix
}

// newHost builds a host over the built-in registry and the settings
// documents named by the command's flags.
func newHost(ctx context.Context, cmd *cli.Command, hostCtx any) (*host.Host, error) {
	reg, err := components.Registry()
	if err != nil {
		return nil, err
	}

	outer, err := loadScope(ctx, settings.ScopeOuter, cmd.String("outer"))
	if err != nil {
		return nil, err
	}
	inner, err := loadScope(ctx, settings.ScopeInner, cmd.String("inner"))
	if err != nil {
		return nil, err
	}

	return host.New(reg, outer, inner, hostCtx), nil
}
