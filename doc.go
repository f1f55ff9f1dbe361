// Package assetloader provides the load-and-cache subsystem for binary
// 3D asset containers in a virtual-world client.
//
// Given a logical reference to a GLB container (a scene graph plus optional
// animation data and embedded script text), the subsystem resolves the
// reference to a fetchable URL, fetches the raw bytes exactly once per
// logical key, parses the bytes into a kind-specific view, and serves all
// concurrent and subsequent requests for that key from an in-memory cache.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	assetloader/         Root package with the Fetcher interface
//	├── cache/           Load cache: dedup, fetch, parse, result table
//	├── asset/           Asset kinds, references, URL resolver, typed views
//	├── glb/             GLB container binary decoding and validation
//	├── scene/           Scene-graph document model: nodes, clips, skins
//	├── gate/            Script admission gate (capability denylist)
//	├── fetch/           HTTP and filesystem Fetcher implementations
//	├── config/          Environment-driven configuration
//	└── errors/          Structured error types for debugging
//
// # Quick Start
//
// Load an asset and instantiate its scene nodes:
//
//	c := cache.New(&fetch.HTTP{}, cache.WithAssetsRoot("https://assets.example.com"))
//
//	view, err := c.Load(ctx, asset.KindModel, "asset://props/lantern.glb")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	root := view.(*asset.ModelView).Instantiate()
//
// # Asset Kinds
//
// Four kinds are supported, each producing a different view over the decoded
// container:
//
//   - model: static scene graph, instantiable node tree
//   - avatar: scene graph plus an optional humanoid rig factory
//   - emote: animation clip retargetable onto an external skeleton
//   - script: raw script text, admitted through a capability denylist
//
// # Thread Safety
//
// Cache is safe for concurrent use; N concurrent loads of one key perform
// one fetch and one parse. Views and the documents behind them are immutable
// once cached; Instantiate returns fresh deep copies.
//
// # Failure Model
//
// Every failure path removes the in-flight entry so a later call can retry;
// no partial results are ever visible. Cached results are never evicted or
// overwritten. Script rejection is not an error: a rejected script resolves
// to no view at all.
package assetloader
