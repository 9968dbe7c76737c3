package container

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingService struct {
	name string
}

type closableService struct {
	closed int32
}

func (s *closableService) Close() error {
	atomic.AddInt32(&s.closed, 1)
	return nil
}

func staticFactory(v any) Factory {
	return func(ctx context.Context, deps []any) (any, error) {
		return v, nil
	}
}

func TestResolve_SingletonReturnsSameInstance(t *testing.T) {
	c := New()
	token := NewToken("service")
	constructions := 0

	c.Register(token, func(ctx context.Context, deps []any) (any, error) {
		constructions++
		return &countingService{name: "service"}, nil
	}, Options{Singleton: true})

	first, err := c.Resolve(context.Background(), token)
	require.NoError(t, err)
	second, err := c.Resolve(context.Background(), token)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, constructions)
}

func TestResolve_TransientReturnsDistinctInstances(t *testing.T) {
	c := New()
	token := NewToken("service")

	c.Register(token, func(ctx context.Context, deps []any) (any, error) {
		return &countingService{name: "service"}, nil
	}, Options{})

	first, err := c.Resolve(context.Background(), token)
	require.NoError(t, err)
	second, err := c.Resolve(context.Background(), token)
	require.NoError(t, err)

	assert.NotSame(t, first, second)
}

func TestResolve_UnregisteredToken(t *testing.T) {
	c := New()
	token := NewToken("ghost")

	_, err := c.Resolve(context.Background(), token)
	require.ErrorIs(t, err, ErrNotRegistered)
	assert.Contains(t, err.Error(), "ghost")

	// Nothing was cached by the failed resolution.
	_, err = c.ResolveCached(token)
	assert.ErrorIs(t, err, ErrNotRegistered)
}

func TestResolve_DependencyInjectionOrder(t *testing.T) {
	c := New()
	a := NewToken("a")
	b := NewToken("b")
	sum := NewToken("sum")

	c.Register(a, staticFactory(1), Options{Singleton: true})
	c.Register(b, staticFactory(2), Options{Singleton: true})
	c.Register(sum, func(ctx context.Context, deps []any) (any, error) {
		require.Len(t, deps, 2)
		return deps[0].(int)*10 + deps[1].(int), nil
	}, Options{Singleton: true, Dependencies: []*Token{a, b}})

	v, err := c.Resolve(context.Background(), sum)
	require.NoError(t, err)
	assert.Equal(t, 12, v)
}

func TestResolve_SharedDependencyConstructedOnce(t *testing.T) {
	c := New()
	a := NewToken("a")
	b := NewToken("b")
	var aConstructions, bConstructions int

	c.Register(a, func(ctx context.Context, deps []any) (any, error) {
		aConstructions++
		return &countingService{name: "a"}, nil
	}, Options{Singleton: true})
	c.Register(b, func(ctx context.Context, deps []any) (any, error) {
		bConstructions++
		return &countingService{name: "b"}, nil
	}, Options{Singleton: true, Dependencies: []*Token{a}})

	resolvedB, err := c.Resolve(context.Background(), b)
	require.NoError(t, err)
	assert.Equal(t, 1, aConstructions)
	assert.Equal(t, 1, bConstructions)

	resolvedA, err := c.Resolve(context.Background(), a)
	require.NoError(t, err)
	assert.Equal(t, 1, aConstructions, "dependency must not be reconstructed")

	again, err := c.Resolve(context.Background(), b)
	require.NoError(t, err)
	assert.Same(t, resolvedB, again)
	assert.NotNil(t, resolvedA)
}

func TestResolve_CircularDependency(t *testing.T) {
	tests := []struct {
		name  string
		wire  func(c *Container, a, b *Token)
		chain string
	}{
		{
			name: "self cycle",
			wire: func(c *Container, a, b *Token) {
				c.Register(a, staticFactory("a"), Options{Singleton: true, Dependencies: []*Token{a}})
			},
			chain: "a -> a",
		},
		{
			name: "two node cycle",
			wire: func(c *Container, a, b *Token) {
				c.Register(a, staticFactory("a"), Options{Singleton: true, Dependencies: []*Token{b}})
				c.Register(b, staticFactory("b"), Options{Singleton: true, Dependencies: []*Token{a}})
			},
			chain: "a -> b -> a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			a := NewToken("a")
			b := NewToken("b")
			tt.wire(c, a, b)

			_, err := c.Resolve(context.Background(), a)
			require.ErrorIs(t, err, ErrCircularDependency)
			assert.Contains(t, err.Error(), tt.chain)

			// No partial singleton may survive the failed chain.
			_, err = c.ResolveCached(a)
			assert.ErrorIs(t, err, ErrNotResolved)
		})
	}
}

func TestResolve_FailedConstructionRetries(t *testing.T) {
	c := New()
	token := NewToken("flaky")
	attempts := 0

	c.Register(token, func(ctx context.Context, deps []any) (any, error) {
		attempts++
		if attempts == 1 {
			return nil, errors.New("boom")
		}
		return "ok", nil
	}, Options{Singleton: true})

	_, err := c.Resolve(context.Background(), token)
	require.Error(t, err)

	// The failure must not leave the token permanently in progress.
	v, err := c.Resolve(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
	assert.Equal(t, 2, attempts)
}

func TestResolve_FactoryErrorPassesThrough(t *testing.T) {
	c := New()
	token := NewToken("failing")
	sentinel := errors.New("factory exploded")

	c.Register(token, func(ctx context.Context, deps []any) (any, error) {
		return nil, sentinel
	}, Options{Singleton: true})

	_, err := c.Resolve(context.Background(), token)
	assert.ErrorIs(t, err, sentinel)
}

func TestResolve_ConcurrentFirstResolutionConstructsOnce(t *testing.T) {
	c := New()
	token := NewToken("shared")
	var constructions int32

	c.Register(token, func(ctx context.Context, deps []any) (any, error) {
		atomic.AddInt32(&constructions, 1)
		return &countingService{name: "shared"}, nil
	}, Options{Singleton: true})

	const goroutines = 16
	results := make([]any, goroutines)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := c.Resolve(context.Background(), token)
			assert.NoError(t, err)
			results[i] = v
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), constructions)
	for i := 1; i < goroutines; i++ {
		assert.Same(t, results[0], results[i])
	}
}

func TestRegister_LastRegistrationWins(t *testing.T) {
	c := New()
	token := NewToken("service")

	c.Register(token, staticFactory("first"), Options{Singleton: true})
	c.Register(token, staticFactory("second"), Options{Singleton: true})

	v, err := c.Resolve(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "second", v)
}

func TestRegisterInstance(t *testing.T) {
	c := New()
	token := NewToken("config")
	cfg := &countingService{name: "config"}

	c.RegisterInstance(token, cfg)

	cached, err := c.ResolveCached(token)
	require.NoError(t, err)
	assert.Same(t, cfg, cached)

	resolved, err := c.Resolve(context.Background(), token)
	require.NoError(t, err)
	assert.Same(t, cfg, resolved)
}

func TestResolveCached_RequiresPriorResolution(t *testing.T) {
	c := New()
	token := NewToken("lazy")
	c.Register(token, staticFactory("value"), Options{Singleton: true})

	_, err := c.ResolveCached(token)
	require.ErrorIs(t, err, ErrNotResolved)

	_, err = c.Resolve(context.Background(), token)
	require.NoError(t, err)

	v, err := c.ResolveCached(token)
	require.NoError(t, err)
	assert.Equal(t, "value", v)
}

func TestWarmup_ResolvesEverySingletonOnce(t *testing.T) {
	c := New()
	var constructions [3]int32
	tokens := []*Token{NewToken("a"), NewToken("b"), NewToken("c")}
	for i, token := range tokens {
		c.Register(token, func(ctx context.Context, deps []any) (any, error) {
			atomic.AddInt32(&constructions[i], 1)
			return &countingService{}, nil
		}, Options{Singleton: true})
	}
	transient := NewToken("transient")
	transientCalls := int32(0)
	c.Register(transient, func(ctx context.Context, deps []any) (any, error) {
		atomic.AddInt32(&transientCalls, 1)
		return &countingService{}, nil
	}, Options{})

	require.NoError(t, c.Warmup(context.Background()))

	for i := range tokens {
		assert.Equal(t, int32(1), atomic.LoadInt32(&constructions[i]))
	}
	assert.Equal(t, int32(0), transientCalls, "warmup must skip transients")
}

func TestWarmup_SurfacesFirstFailureWithoutBlockingOthers(t *testing.T) {
	c := New()
	good := NewToken("good")
	bad := NewToken("bad")
	var goodConstructed int32

	c.Register(good, func(ctx context.Context, deps []any) (any, error) {
		atomic.AddInt32(&goodConstructed, 1)
		return "fine", nil
	}, Options{Singleton: true})
	c.Register(bad, func(ctx context.Context, deps []any) (any, error) {
		return nil, errors.New("broken factory")
	}, Options{Singleton: true})

	err := c.Warmup(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad")

	// The independent resolution completed despite the failure.
	assert.Equal(t, int32(1), goodConstructed)
	v, err := c.ResolveCached(good)
	require.NoError(t, err)
	assert.Equal(t, "fine", v)
}

func TestClear_DisposesOnceAndUnregistersEverything(t *testing.T) {
	c := New()
	first := NewToken("first")
	second := NewToken("second")
	a := &closableService{}
	b := &closableService{}

	c.Register(first, staticFactory(a), Options{Singleton: true})
	c.Register(second, staticFactory(b), Options{Singleton: true, Dependencies: []*Token{first}})
	require.NoError(t, c.Warmup(context.Background()))

	require.NoError(t, c.Clear())

	assert.Equal(t, int32(1), atomic.LoadInt32(&a.closed))
	assert.Equal(t, int32(1), atomic.LoadInt32(&b.closed))

	_, err := c.Resolve(context.Background(), first)
	assert.ErrorIs(t, err, ErrNotRegistered)
	_, err = c.Resolve(context.Background(), second)
	assert.ErrorIs(t, err, ErrNotRegistered)
}

func TestClear_JoinsDisposalErrors(t *testing.T) {
	c := New()
	token := NewToken("broken")
	c.RegisterInstance(token, failingCloser{})

	err := c.Clear()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}

type failingCloser struct{}

func (failingCloser) Close() error { return errors.New("close failed") }

func TestClear_DuringConstructionDoesNotRepopulate(t *testing.T) {
	c := New()
	token := NewToken("slow")
	started := make(chan struct{})
	release := make(chan struct{})
	svc := &closableService{}

	c.Register(token, func(ctx context.Context, deps []any) (any, error) {
		close(started)
		<-release
		return svc, nil
	}, Options{Singleton: true})

	done := make(chan struct{})
	go func() {
		defer close(done)
		v, err := c.Resolve(context.Background(), token)
		assert.NoError(t, err)
		assert.Same(t, svc, v)
	}()

	<-started
	require.NoError(t, c.Clear())
	close(release)
	<-done

	// The construction that outlived Clear must not land in the cache.
	_, err := c.Resolve(context.Background(), token)
	assert.ErrorIs(t, err, ErrNotRegistered)
	_, err = c.ResolveCached(token)
	assert.ErrorIs(t, err, ErrNotRegistered)
}

func TestResolve_ConcurrentCycleFromBothEnds(t *testing.T) {
	c := New()
	a := NewToken("a")
	b := NewToken("b")
	gateA := NewToken("gate-a")
	gateB := NewToken("gate-b")
	enteredA := make(chan struct{})
	enteredB := make(chan struct{})
	release := make(chan struct{})

	// The gate factories hold each chain mid-construction so both in-flight
	// records exist before either chain reaches the other's token.
	c.Register(gateA, func(ctx context.Context, deps []any) (any, error) {
		close(enteredA)
		<-release
		return "gate-a", nil
	}, Options{Singleton: true})
	c.Register(gateB, func(ctx context.Context, deps []any) (any, error) {
		close(enteredB)
		<-release
		return "gate-b", nil
	}, Options{Singleton: true})
	c.Register(a, staticFactory("a"), Options{Singleton: true, Dependencies: []*Token{gateA, b}})
	c.Register(b, staticFactory("b"), Options{Singleton: true, Dependencies: []*Token{gateB, a}})

	errs := make(chan error, 2)
	go func() {
		_, err := c.Resolve(context.Background(), a)
		errs <- err
	}()
	go func() {
		_, err := c.Resolve(context.Background(), b)
		errs <- err
	}()

	<-enteredA
	<-enteredB
	close(release)

	for i := 0; i < 2; i++ {
		select {
		case err := <-errs:
			assert.ErrorIs(t, err, ErrCircularDependency)
		case <-time.After(5 * time.Second):
			t.Fatal("resolution deadlocked instead of failing")
		}
	}
}

func TestRegisterInstance_ReplacementDisposesPrevious(t *testing.T) {
	c := New()
	token := NewToken("store")
	first := &closableService{}
	second := &closableService{}

	c.RegisterInstance(token, first)
	c.RegisterInstance(token, second)

	assert.Equal(t, int32(1), atomic.LoadInt32(&first.closed), "replaced instance must be disposed")
	assert.Equal(t, int32(0), atomic.LoadInt32(&second.closed))

	v, err := c.Resolve(context.Background(), token)
	require.NoError(t, err)
	assert.Same(t, second, v)

	require.NoError(t, c.Clear())
	assert.Equal(t, int32(1), atomic.LoadInt32(&first.closed), "replaced instance is not disposed twice")
	assert.Equal(t, int32(1), atomic.LoadInt32(&second.closed))
}

func TestTypedResolve(t *testing.T) {
	c := New()
	token := NewToken("number")
	c.Register(token, staticFactory(42), Options{Singleton: true})

	n, err := Resolve[int](context.Background(), c, token)
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	_, err = Resolve[string](context.Background(), c, token)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "number")
}

func TestTokenIdentity(t *testing.T) {
	a := NewToken("same-name")
	b := NewToken("same-name")
	assert.NotSame(t, a, b, "tokens with equal names are still distinct")

	c := New()
	c.Register(a, staticFactory("a"), Options{Singleton: true})

	_, err := c.Resolve(context.Background(), b)
	assert.ErrorIs(t, err, ErrNotRegistered, "lookup is by identity, not name")
}
