package container

import (
	"context"
	"errors"
	"sync"
	"time"
)

// defaultRetryInterval is how often a pending handle re-checks the readiness
// gate while the container is still bootstrapping.
const defaultRetryInterval = 50 * time.Millisecond

// Handle is a lazy accessor for a single service. It tolerates the startup
// race between consumers and bootstrap: Get polls the readiness gate on a
// fixed interval until the container is marked ready, then resolves once.
// Resolved and errored are terminal states; both are memoized.
type Handle[T any] struct {
	c        *Container
	token    *Token
	interval time.Duration

	mu   sync.Mutex
	done bool
	val  T
	err  error
}

// NewHandle binds an accessor to a container and token.
func NewHandle[T any](c *Container, token *Token) *Handle[T] {
	return &Handle[T]{c: c, token: token, interval: defaultRetryInterval}
}

// Get returns the service, waiting for the container to become ready and
// resolving the token on first use. Context cancellation abandons the wait
// without settling the handle.
func (h *Handle[T]) Get(ctx context.Context) (T, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.done {
		return h.val, h.err
	}

	for !h.c.IsReady() {
		select {
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		case <-time.After(h.interval):
		}
	}

	val, err := Resolve[T](ctx, h.c, h.token)
	if err != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)) {
		// Cancellation is a retry signal, not a terminal state.
		var zero T
		return zero, err
	}

	h.done = true
	h.val, h.err = val, err
	return h.val, h.err
}

// Cached is the synchronous variant: it never waits and never constructs,
// failing unless the singleton is already resolved.
func (h *Handle[T]) Cached() (T, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.done {
		return h.val, h.err
	}

	val, err := Cached[T](h.c, h.token)
	if err != nil {
		var zero T
		return zero, err
	}
	h.done = true
	h.val = val
	return h.val, nil
}
