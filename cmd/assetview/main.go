package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/meshverse/assetloader/asset"
	"github.com/meshverse/assetloader/cache"
	"github.com/meshverse/assetloader/config"
	"github.com/meshverse/assetloader/errors"
	"github.com/meshverse/assetloader/fetch"
	"github.com/meshverse/assetloader/gate"
	"github.com/meshverse/assetloader/glb"
	"github.com/meshverse/assetloader/scene"
)

func main() {
	var (
		root        = flag.String("root", "", "Assets root for asset:// locators (default $ASSETLOADER_ASSETS_ROOT)")
		kind        = flag.String("kind", "model", "Asset kind: model, avatar, emote or script")
		ref         = flag.String("ref", "", "Asset locator (asset://... or http(s)://...)")
		file        = flag.String("file", "", "Inspect a local container file instead of fetching")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *root == "" {
		*root = cfg.AssetsRoot
	}
	logger, err := cfg.Logger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*root, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *file != "" {
		if err := inspectFile(*file, asset.Kind(*kind)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *ref == "" {
		fmt.Fprintln(os.Stderr, "Usage: assetview -kind <kind> -ref <locator> [-root url]")
		fmt.Fprintln(os.Stderr, "       assetview -kind <kind> -file <container.glb>")
		fmt.Fprintln(os.Stderr, "       assetview -i  (interactive mode)")
		os.Exit(1)
	}

	if err := run(*root, asset.Kind(*kind), *ref, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(root string, kind asset.Kind, locator string, logger *zap.Logger) error {
	ctx := context.Background()
	c := cache.New(&fetch.HTTP{}, cache.WithAssetsRoot(root), cache.WithLogger(logger))

	view, err := c.Load(ctx, kind, locator)
	if err != nil {
		return err
	}
	if view == nil {
		fmt.Println("script rejected by admission gate")
		return nil
	}
	printView(view)
	return nil
}

// inspectFile decodes a local container without going through the cache.
func inspectFile(path string, kind asset.Kind) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.NotFound(errors.PhaseFetch, path)
		}
		return err
	}

	if kind == asset.KindScript {
		verdict := gate.Admit(string(data))
		if !verdict.Admitted {
			fmt.Printf("script rejected by admission gate (rule %s)\n", verdict.Rule)
			return nil
		}
		printView(&asset.ScriptView{Source: string(data)})
		return nil
	}

	doc, err := glb.Decode(data)
	if err != nil {
		return err
	}
	view, err := asset.BuildView(kind, doc, string(kind)+"/"+path)
	if err != nil {
		return err
	}
	printView(view)
	return nil
}

func printView(view asset.View) {
	switch v := view.(type) {
	case *asset.ModelView:
		root := v.Instantiate()
		bounds := scene.TreeBounds(root)
		fmt.Printf("model: %d nodes, %d animations\n", root.Count(), len(v.Document().Animations))
		fmt.Printf("bounds: min %.2f max %.2f\n", bounds.Min, bounds.Max)

	case *asset.AvatarView:
		root := v.Instantiate()
		fmt.Printf("avatar: %d nodes, %d skins\n", root.Count(), len(v.Document().Skins))
		if v.Factory == nil {
			fmt.Println("rig: none (node instantiation only)")
			break
		}
		fmt.Printf("rig: v%s, height %.2f\n", v.Factory.Version().String(), v.Factory.Height())
		fmt.Printf("bones: %v\n", v.Factory.BoneNames())

	case *asset.EmoteView:
		fmt.Printf("emote: clip %q, %.2fs\n", v.ClipName(), v.Duration())
		clip, err := v.Retarget(asset.RetargetOptions{})
		if err != nil {
			fmt.Printf("retarget failed: %v\n", err)
			break
		}
		fmt.Printf("channels: %d\n", len(clip.Channels))

	case *asset.ScriptView:
		fmt.Printf("script: %d bytes, admitted\n", len(v.Source))
	}
}
