package cache

import (
	"context"
	"sync"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/meshverse/assetloader"
	"github.com/meshverse/assetloader/asset"
	"github.com/meshverse/assetloader/errors"
	"github.com/meshverse/assetloader/gate"
	"github.com/meshverse/assetloader/glb"
)

// Option configures a Cache.
type Option func(*Cache)

// WithAssetsRoot sets the base address asset:// locators resolve against.
func WithAssetsRoot(root string) Option {
	return func(c *Cache) { c.root = root }
}

// WithLogger sets the cache's logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Cache) { c.logger = l }
}

// Cache is the load orchestrator. Safe for concurrent use.
type Cache struct {
	fetcher assetloader.Fetcher
	root    string
	logger  *zap.Logger

	mu      sync.RWMutex
	results map[string]asset.View

	// flight is the pending-operation table: it collapses N concurrent
	// loads of one key into a single fetch+parse and drops the key once
	// the operation settles, success or failure.
	flight singleflight.Group
}

// New creates a cache that fetches through fetcher.
func New(fetcher assetloader.Fetcher, opts ...Option) *Cache {
	c := &Cache{
		fetcher: fetcher,
		logger:  zap.NewNop(),
		results: make(map[string]asset.View),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load returns the view for (kind, locator), fetching and parsing at most
// once per key across all concurrent and subsequent calls.
//
// A script that fails the admission gate resolves to (nil, nil): rejection
// is an expected outcome, not a fault, and nothing is cached so the content
// can be re-evaluated by a later call.
func (c *Cache) Load(ctx context.Context, kind asset.Kind, locator string) (asset.View, error) {
	// Unknown kinds fail before any resolution or network work.
	if !kind.Valid() {
		return nil, errors.UnsupportedKind(string(kind))
	}

	ref := asset.Ref{Kind: kind, Locator: locator}
	key := ref.Key()

	if view, ok := c.Get(kind, locator); ok {
		return view, nil
	}

	result, err, _ := c.flight.Do(key, func() (any, error) {
		// A flight that settled between the lookup above and this point
		// has already populated the result table.
		if view, ok := c.Get(kind, locator); ok {
			return view, nil
		}
		view, err := c.loadOnce(ctx, ref)
		if err != nil {
			return nil, err
		}
		if view != nil {
			c.store(key, view)
		}
		return view, nil
	})
	if err != nil || result == nil {
		return nil, err
	}
	return result.(asset.View), nil
}

// loadOnce performs the single physical resolve+fetch+parse for a key.
func (c *Cache) loadOnce(ctx context.Context, ref asset.Ref) (asset.View, error) {
	url, ok := asset.Resolve(ref.Locator, c.root)
	if !ok {
		return nil, errors.Unresolvable(ref.Key(), ref.Locator)
	}

	// Once in flight, the operation runs to completion: a caller that
	// abandons interest must not starve the other waiters or the cache.
	data, err := c.fetcher.Fetch(context.WithoutCancel(ctx), url)
	if err != nil {
		return nil, err
	}

	if ref.Kind == asset.KindScript {
		return c.admitScript(ref, data)
	}

	doc, err := glb.Decode(data)
	if err != nil {
		return nil, err
	}
	view, err := asset.BuildView(ref.Kind, doc, ref.Key())
	if err != nil {
		return nil, err
	}

	c.logger.Debug("asset loaded",
		zap.String("ref", ref.Key()),
		zap.String("url", url))
	return view, nil
}

// admitScript runs the admission gate over fetched script bytes. Rejection
// resolves to no view rather than an error.
func (c *Cache) admitScript(ref asset.Ref, data []byte) (asset.View, error) {
	if !utf8.Valid(data) {
		return nil, errors.InvalidInput(errors.PhaseDecode, "script payload is not valid UTF-8")
	}
	source := string(data)
	verdict := gate.Admit(source)
	if !verdict.Admitted {
		c.logger.Info("script rejected by admission gate",
			zap.String("ref", ref.Key()),
			zap.String("rule", verdict.Rule))
		return nil, nil
	}
	return &asset.ScriptView{Source: source}, nil
}

// Has reports cache membership. No side effects.
func (c *Cache) Has(kind asset.Kind, locator string) bool {
	_, ok := c.Get(kind, locator)
	return ok
}

// Get reads the cache without loading.
func (c *Cache) Get(kind asset.Kind, locator string) (asset.View, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	view, ok := c.results[asset.Ref{Kind: kind, Locator: locator}.Key()]
	return view, ok
}

// Preload is a reserved hook for an eager-prefetch strategy. It is a
// deliberate no-op; Load's observable contract does not depend on it.
func (c *Cache) Preload(ctx context.Context, kind asset.Kind, locator string) {
	_ = ctx
	_ = kind
	_ = locator
}

func (c *Cache) store(key string, view asset.View) {
	c.mu.Lock()
	defer c.mu.Unlock()
	// First writer wins; a stored view is never overwritten.
	if _, ok := c.results[key]; !ok {
		c.results[key] = view
	}
}

// Len returns the number of resolved entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.results)
}
