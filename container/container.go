// Package container implements the service container that wires the
// application object graph: a registry mapping tokens to lazily-constructed,
// optionally-singleton service instances with declared dependency edges.
package container

import (
	"context"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Factory constructs a service instance. The resolved dependencies are passed
// positionally, in the order they were declared at registration.
type Factory func(ctx context.Context, deps []any) (any, error)

// Options configures a registration.
type Options struct {
	// Singleton caches the constructed instance for the container lifetime.
	// Non-singleton (transient) registrations reconstruct on every resolution.
	Singleton bool

	// Dependencies are resolved depth-first, in declaration order, before the
	// factory runs.
	Dependencies []*Token
}

type registration struct {
	factory   Factory
	deps      []*Token
	singleton bool
}

// inflight tracks a singleton construction in progress so that concurrent
// first resolutions invoke the factory exactly once.
type inflight struct {
	done chan struct{}
	val  any
	err  error
}

// Container holds registrations and resolved singleton instances. The zero
// value is not usable; create one with New. A container is safe for
// concurrent use.
type Container struct {
	mu            sync.Mutex
	registrations map[*Token]*registration
	instances     map[*Token]any
	order         []*Token // construction order, for reverse-order disposal
	calls         map[*Token]*inflight
	blocked       map[*Token]*Token // in-flight token -> token it is waiting on
	ready         atomic.Bool
}

// New creates an empty container.
func New() *Container {
	return &Container{
		registrations: make(map[*Token]*registration),
		instances:     make(map[*Token]any),
		calls:         make(map[*Token]*inflight),
		blocked:       make(map[*Token]*Token),
	}
}

// Register stores a registration for token. Registering the same token twice
// replaces the prior registration; the last one wins.
func (c *Container) Register(token *Token, factory Factory, opts Options) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.registrations[token] = &registration{
		factory:   factory,
		deps:      opts.Dependencies,
		singleton: opts.Singleton,
	}
}

// RegisterInstance registers a pre-built value and caches it immediately.
// Used for plain configuration objects and the logger. Re-registering a token
// replaces the cached value; the replaced instance leaves the cache for good,
// so its io.Closer runs here instead of at Clear.
func (c *Container) RegisterInstance(token *Token, value any) {
	c.mu.Lock()
	prev, replaced := c.instances[token]
	c.registrations[token] = &registration{singleton: true}
	if !replaced {
		c.order = append(c.order, token)
	}
	c.instances[token] = value
	c.mu.Unlock()

	if replaced && prev != value {
		if closer, ok := prev.(io.Closer); ok {
			closer.Close()
		}
	}
}

// Resolve returns the instance for token, constructing it and its declared
// dependency subgraph as needed. Singleton instances are constructed at most
// once per container lifetime; either the whole dependency chain resolves or
// an error is returned with nothing partially cached.
func (c *Container) Resolve(ctx context.Context, token *Token) (any, error) {
	return c.resolve(ctx, token, nil)
}

func (c *Container) resolve(ctx context.Context, token *Token, path []*Token) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, ancestor := range path {
		if ancestor == token {
			return nil, cycleError(path, token)
		}
	}

	c.mu.Lock()
	if inst, ok := c.instances[token]; ok {
		c.mu.Unlock()
		return inst, nil
	}
	reg, ok := c.registrations[token]
	if !ok {
		c.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrNotRegistered, token)
	}

	var call *inflight
	if reg.singleton {
		if existing, ok := c.calls[token]; ok {
			// Another resolution of this singleton is in flight. If that
			// resolution is itself blocked, directly or through a chain of
			// waiters, on a token this chain is constructing, waiting here
			// would deadlock: the pair forms a cycle entered from both ends.
			cur := token
			for hops := len(c.blocked); hops >= 0; hops-- {
				next, ok := c.blocked[cur]
				if !ok {
					break
				}
				for _, ancestor := range path {
					if next == ancestor {
						c.mu.Unlock()
						return nil, cycleError(path, token)
					}
				}
				cur = next
			}

			// Record what this chain is waiting on so the owner of the
			// in-flight construction can spot the cycle from its side.
			var waiter *Token
			if len(path) > 0 {
				waiter = path[len(path)-1]
				c.blocked[waiter] = token
			}
			c.mu.Unlock()

			var val any
			var err error
			select {
			case <-existing.done:
				val, err = existing.val, existing.err
			case <-ctx.Done():
				val, err = nil, ctx.Err()
			}

			if waiter != nil {
				c.mu.Lock()
				delete(c.blocked, waiter)
				c.mu.Unlock()
			}
			return val, err
		}
		call = &inflight{done: make(chan struct{})}
		c.calls[token] = call
	}
	c.mu.Unlock()

	val, err := c.construct(ctx, reg, append(path, token))

	if reg.singleton {
		c.mu.Lock()
		// Cache only if this registration is still current: a Clear (or a
		// re-registration) that ran during construction must not be
		// repopulated with a stale instance.
		if err == nil && c.registrations[token] == reg {
			c.instances[token] = val
			c.order = append(c.order, token)
		}
		// Clearing the in-flight record on failure lets a later resolve
		// retry the construction. Only this construction's own record may
		// be dropped; a resolve started after a Clear and re-registration
		// may have installed a fresh one under the same token.
		if c.calls[token] == call {
			delete(c.calls, token)
		}
		c.mu.Unlock()

		call.val, call.err = val, err
		close(call.done)
	}
	return val, err
}

func (c *Container) construct(ctx context.Context, reg *registration, path []*Token) (any, error) {
	deps := make([]any, len(reg.deps))
	for i, dep := range reg.deps {
		v, err := c.resolve(ctx, dep, path)
		if err != nil {
			return nil, err
		}
		deps[i] = v
	}
	return reg.factory(ctx, deps)
}

// ResolveCached returns the cached singleton for token without constructing
// anything. It fails unless the token was already resolved.
func (c *Container) ResolveCached(token *Token) (any, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if inst, ok := c.instances[token]; ok {
		return inst, nil
	}
	if _, ok := c.registrations[token]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotRegistered, token)
	}
	return nil, fmt.Errorf("%w: %s", ErrNotResolved, token)
}

// Warmup eagerly resolves every singleton-registered token concurrently.
// Independent resolutions run to completion; the first error is returned.
func (c *Container) Warmup(ctx context.Context) error {
	c.mu.Lock()
	tokens := make([]*Token, 0, len(c.registrations))
	for token, reg := range c.registrations {
		if reg.singleton {
			tokens = append(tokens, token)
		}
	}
	c.mu.Unlock()

	var g errgroup.Group
	for _, token := range tokens {
		g.Go(func() error {
			if _, err := c.Resolve(ctx, token); err != nil {
				return fmt.Errorf("warmup %s: %w", token, err)
			}
			return nil
		})
	}
	return g.Wait()
}

// Clear disposes every cached instance that implements io.Closer, in reverse
// construction order, then empties both the registration map and the cache.
// Subsequent resolves fail with ErrNotRegistered.
func (c *Container) Clear() error {
	c.mu.Lock()
	order := c.order
	instances := c.instances
	c.registrations = make(map[*Token]*registration)
	c.instances = make(map[*Token]any)
	c.calls = make(map[*Token]*inflight)
	c.blocked = make(map[*Token]*Token)
	c.order = nil
	c.ready.Store(false)
	c.mu.Unlock()

	var errs []error
	for i := len(order) - 1; i >= 0; i-- {
		if closer, ok := instances[order[i]].(io.Closer); ok {
			if err := closer.Close(); err != nil {
				errs = append(errs, fmt.Errorf("dispose %s: %w", order[i], err))
			}
		}
	}
	return errors.Join(errs...)
}

// MarkReady opens the readiness gate. Bootstrap calls this once the object
// graph is registered and warmed up; accessor handles wait on it.
func (c *Container) MarkReady() {
	c.ready.Store(true)
}

// IsReady reports whether the container finished bootstrapping.
func (c *Container) IsReady() bool {
	return c.ready.Load()
}

func cycleError(path []*Token, token *Token) error {
	names := make([]string, 0, len(path)+1)
	for _, t := range path {
		names = append(names, t.String())
	}
	names = append(names, token.String())
	return fmt.Errorf("%w: %s", ErrCircularDependency, strings.Join(names, " -> "))
}

// Resolve is the typed variant of Container.Resolve.
func Resolve[T any](ctx context.Context, c *Container, token *Token) (T, error) {
	var zero T
	v, err := c.Resolve(ctx, token)
	if err != nil {
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("service %s has type %T, want %v", token, v, reflect.TypeFor[T]())
	}
	return typed, nil
}

// Cached is the typed variant of Container.ResolveCached.
func Cached[T any](c *Container, token *Token) (T, error) {
	var zero T
	v, err := c.ResolveCached(token)
	if err != nil {
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("service %s has type %T, want %v", token, v, reflect.TypeFor[T]())
	}
	return typed, nil
}
