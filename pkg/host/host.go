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

package host

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/NVIDIA/componenthost/pkg/component"
	"github.com/NVIDIA/componenthost/pkg/defaults"
	"github.com/NVIDIA/componenthost/pkg/errors"
	"github.com/NVIDIA/componenthost/pkg/settings"
)

// Host resolves and owns the components of one context, typically one
// request. Instances are built lazily on first use and reused for the Host's
// lifetime; enablement is re-resolved against the settings on every query.
// A Host is safe for concurrent use.
type Host struct {
	id             string
	types          []*component.Type
	outer          settings.Accessor
	inner          settings.Accessor
	hostCtx        any
	logger         *slog.Logger
	concurrency    int
	resolveTimeout time.Duration

	mu        sync.Mutex
	built     bool
	buildErr  error
	instances []component.Component
	byKey     map[component.Key]component.Component
}

// New creates a Host over the types registered in reg at call time.
// outer and inner are the two settings scopes, already scoped by the caller;
// hostCtx is handed unmodified to every component factory.
// Nothing is instantiated until the first query.
func New(reg *component.Registry, outer, inner settings.Accessor, hostCtx any, opts ...Option) *Host {
	h := &Host{
		id:             uuid.NewString(),
		outer:          outer,
		inner:          inner,
		hostCtx:        hostCtx,
		logger:         slog.Default(),
		concurrency:    defaults.ResolveConcurrency,
		resolveTimeout: defaults.ResolveTimeout,
	}
	if reg != nil {
		h.types = reg.All()
	}
	for _, opt := range opts {
		opt(h)
	}
	h.logger = h.logger.With(slog.String("host_id", h.id))
	return h
}

// ID returns the Host's identifier, included in its log records.
func (h *Host) ID() string {
	return h.id
}

// Types returns the component types this Host manages, in registry order.
func (h *Host) Types() []*component.Type {
	return slices.Clone(h.types)
}

// Components returns one instance per registered type, in registry order,
// regardless of enablement. The first call builds the instances; concurrent
// callers wait for that build and every caller observes the same instances.
// If any factory fails the Host is unusable and every call returns the
// same error. A factory failing with the caller's context cancellation or
// deadline is the exception: the error goes to that caller only and the
// next call builds again.
func (h *Host) Components(ctx context.Context) ([]component.Component, error) {
	if err := h.build(ctx); err != nil {
		return nil, err
	}
	return slices.Clone(h.instances), nil
}

// Lookup returns the instance whose key matches. The key is normalized with
// component.ToKey, so "forum" and ":forum" are equivalent. An unknown key
// reports false with a nil error.
func (h *Host) Lookup(ctx context.Context, key string) (component.Component, bool, error) {
	if err := h.build(ctx); err != nil {
		return nil, false, err
	}
	c, ok := h.byKey[component.ToKey(key)]
	return c, ok, nil
}

// Decisions resolves the effective enablement of every type, in registry
// order. It does not instantiate components.
func (h *Host) Decisions(ctx context.Context) ([]Decision, error) {
	ctx, cancel := h.resolveContext(ctx)
	defer cancel()

	decisions := make([]Decision, len(h.types))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(h.concurrency)
	for i, t := range h.types {
		g.Go(func() error {
			d, err := Resolve(gctx, t, h.outer, h.inner)
			if err != nil {
				return err
			}
			decisions[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		h.logger.Error("enablement resolution failed", "error", err)
		return nil, err
	}
	return decisions, nil
}

// Decision resolves the effective enablement of the type registered under
// key. An unknown key reports false with a nil error.
func (h *Host) Decision(ctx context.Context, key string) (Decision, bool, error) {
	want := component.ToKey(key)
	for _, t := range h.types {
		if t.Key() != want {
			continue
		}
		ctx, cancel := h.resolveContext(ctx)
		defer cancel()
		d, err := Resolve(ctx, t, h.outer, h.inner)
		return d, true, err
	}
	return Decision{}, false, nil
}

// Partition splits the instances into enabled and disabled, both in
// registry order. The two slices are disjoint and together hold every
// instance Components returns.
func (h *Host) Partition(ctx context.Context) (enabled, disabled []component.Component, err error) {
	comps, err := h.Components(ctx)
	if err != nil {
		return nil, nil, err
	}
	decisions, err := h.Decisions(ctx)
	if err != nil {
		return nil, nil, err
	}

	enabled = make([]component.Component, 0, len(comps))
	disabled = make([]component.Component, 0, len(comps))
	for i, d := range decisions {
		if d.Enabled {
			enabled = append(enabled, comps[i])
		} else {
			disabled = append(disabled, comps[i])
		}
	}
	return enabled, disabled, nil
}

// EnabledComponents returns the instances whose effective state is enabled.
func (h *Host) EnabledComponents(ctx context.Context) ([]component.Component, error) {
	enabled, _, err := h.Partition(ctx)
	return enabled, err
}

// DisabledComponents returns the instances whose effective state is disabled.
func (h *Host) DisabledComponents(ctx context.Context) ([]component.Component, error) {
	_, disabled, err := h.Partition(ctx)
	return disabled, err
}

// IsEnabled resolves a single component by key. Unknown keys report false.
func (h *Host) IsEnabled(ctx context.Context, key string) (bool, error) {
	d, _, err := h.Decision(ctx, key)
	if err != nil {
		return false, err
	}
	return d.Enabled, nil
}

// SidebarItems aggregates the sidebar items of every instance, enabled or
// not. Compose EnabledComponents with component.CollectSidebarItems for the
// enabled subset.
func (h *Host) SidebarItems(ctx context.Context) ([]component.SidebarItem, error) {
	comps, err := h.Components(ctx)
	if err != nil {
		return nil, err
	}
	return component.CollectSidebarItems(ctx, comps)
}

// EnabledSidebarItems aggregates the sidebar items of enabled instances only.
func (h *Host) EnabledSidebarItems(ctx context.Context) ([]component.SidebarItem, error) {
	enabled, err := h.EnabledComponents(ctx)
	if err != nil {
		return nil, err
	}
	return component.CollectSidebarItems(ctx, enabled)
}

func (h *Host) build(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.built {
		return h.buildErr
	}
	// a caller that gave up before the build started does not poison the host
	if err := ctx.Err(); err != nil {
		return err
	}

	start := time.Now()
	instances := make([]component.Component, 0, len(h.types))
	byKey := make(map[component.Key]component.Component, len(h.types))

	for _, t := range h.types {
		c, err := h.instantiate(ctx, t)
		if err != nil {
			buildFailures.WithLabelValues(string(t.Key())).Inc()
			h.logger.Error("component instantiation failed",
				"component", t.Key(),
				"type", t.Name(),
				"error", err)
			// a cancelled caller leaves the host unbuilt
			if !isContextErr(err) {
				h.built = true
				h.buildErr = err
			}
			return err
		}
		instances = append(instances, c)
		byKey[t.Key()] = c
		instancesCreated.WithLabelValues(string(t.Key())).Inc()
	}

	h.built = true
	h.instances = instances
	h.byKey = byKey

	elapsed := time.Since(start)
	buildDuration.Observe(elapsed.Seconds())
	h.logger.Debug("component host built",
		"components", len(instances),
		"duration_ms", elapsed.Milliseconds())
	return nil
}

func (h *Host) instantiate(ctx context.Context, t *component.Type) (c component.Component, err error) {
	attrs := map[string]any{
		"component": string(t.Key()),
		"type":      t.Name(),
	}

	defer func() {
		if r := recover(); r != nil {
			c = nil
			err = errors.NewWithContext(errors.ErrCodeInternal,
				fmt.Sprintf("component %s panicked during instantiation: %v", t.Key(), r), attrs)
		}
	}()

	c, err = t.New(ctx, component.Dependencies{
		Context: h.hostCtx,
		Outer:   h.outer,
		Inner:   h.inner,
		Logger:  h.logger.With(slog.String("component", string(t.Key()))),
	})
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInternal,
			fmt.Sprintf("failed to instantiate component %s", t.Key()), err, attrs)
	}
	if c == nil {
		return nil, errors.NewWithContext(errors.ErrCodeInternal,
			fmt.Sprintf("component %s factory returned nil", t.Key()), attrs)
	}
	return c, nil
}

func isContextErr(err error) bool {
	return stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded)
}

func (h *Host) resolveContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok || h.resolveTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, h.resolveTimeout)
}
