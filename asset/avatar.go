package asset

import (
	"sort"
	"strings"

	"github.com/coreos/go-semver/semver"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/meshverse/assetloader/glb"
	"github.com/meshverse/assetloader/scene"
)

// RigExtension is the key under which a container's top-level extensions
// object carries the humanoid rig descriptor.
const RigExtension = "MV_avatar_rig"

// rigMajor is the descriptor spec generation this loader understands.
const rigMajor = 1

// Canonical bone names every usable rig must resolve.
var requiredBones = []string{"hips", "head", "leftUpperArm", "rightUpperArm"}

// AvatarFactory provides humanoid capabilities over an avatar container:
// bone lookups, external bone-name mapping, and the standing height and
// bounds used for third-person camera placement.
type AvatarFactory struct {
	bones   map[string]*scene.Node
	version semver.Version

	height float64
	bounds scene.Bounds
}

// buildAvatarFactory probes the container's extensions for a rig
// descriptor. A missing or structurally invalid descriptor is a capability
// reduction, not an error: the result is nil and the problem is logged.
func buildAvatarFactory(doc *glb.Document, ref string) *AvatarFactory {
	if len(doc.Extensions) == 0 {
		Logger().Warn("avatar container has no rig descriptor",
			zap.String("ref", ref))
		return nil
	}
	rig := gjson.GetBytes(doc.Extensions, RigExtension)
	if !rig.Exists() {
		Logger().Warn("avatar container has no rig descriptor",
			zap.String("ref", ref))
		return nil
	}

	version, reason := parseRigVersion(rig.Get("specVersion").String())
	if reason != "" {
		Logger().Warn("avatar rig descriptor rejected",
			zap.String("ref", ref),
			zap.String("reason", reason))
		return nil
	}

	bones := make(map[string]*scene.Node)
	valid := true
	rig.Get("bones").ForEach(func(key, value gjson.Result) bool {
		node, ok := doc.NodeByIndex(int(value.Int()))
		if !ok {
			Logger().Warn("avatar rig descriptor rejected",
				zap.String("ref", ref),
				zap.String("reason", "bone references node out of range"),
				zap.String("bone", key.String()))
			valid = false
			return false
		}
		bones[key.String()] = node
		return true
	})
	if !valid {
		return nil
	}

	for _, name := range requiredBones {
		if _, ok := bones[name]; !ok {
			Logger().Warn("avatar rig descriptor rejected",
				zap.String("ref", ref),
				zap.String("reason", "required bone missing"),
				zap.String("bone", name))
			return nil
		}
	}

	f := &AvatarFactory{bones: bones, version: *version}
	f.UpdatePose()
	return f
}

// parseRigVersion validates the descriptor's specVersion. Short forms like
// "1.0" are accepted. Returns a non-empty reason on rejection.
func parseRigVersion(raw string) (*semver.Version, string) {
	if raw == "" {
		return nil, "specVersion missing"
	}
	normalized := raw
	for strings.Count(normalized, ".") < 2 {
		normalized += ".0"
	}
	version, err := semver.NewVersion(normalized)
	if err != nil {
		return nil, "specVersion is not a semantic version: " + raw
	}
	if version.Major != rigMajor {
		return nil, "unsupported specVersion " + raw
	}
	return version, ""
}

// Version returns the rig descriptor's spec version.
func (f *AvatarFactory) Version() semver.Version {
	return f.version
}

// Bone resolves a canonical bone name to its node in the document.
func (f *AvatarFactory) Bone(canonical string) (*scene.Node, bool) {
	node, ok := f.bones[canonical]
	return node, ok
}

// BoneNames returns the rig's canonical bone names, sorted.
func (f *AvatarFactory) BoneNames() []string {
	names := make([]string, 0, len(f.bones))
	for name := range f.bones {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ExternalBone maps a canonical bone name to an external skeleton's bone
// name via the caller-supplied mapping function. With a nil mapping it
// returns the bone's node name in the document.
func (f *AvatarFactory) ExternalBone(canonical string, mapBone func(string) (string, bool)) (string, bool) {
	node, ok := f.bones[canonical]
	if !ok {
		return "", false
	}
	if mapBone == nil {
		return node.Name, true
	}
	return mapBone(canonical)
}

// Height returns the approximate standing height: the head bone's world
// position on the vertical axis as of the last pose update.
func (f *AvatarFactory) Height() float64 {
	return f.height
}

// Bounds returns the world-space bounds of the rig's bones as of the last
// pose update, for third-person camera placement.
func (f *AvatarFactory) Bounds() scene.Bounds {
	return f.bounds
}

// UpdatePose re-runs the rig's pose step: world transforms are walked
// again and the cached height and bounds refreshed.
func (f *AvatarFactory) UpdatePose() {
	head := f.bones["head"]
	f.height = head.WorldTranslation()[1]

	first := true
	for _, node := range f.bones {
		pos := node.WorldTranslation()
		if first {
			f.bounds = scene.Bounds{Min: pos, Max: pos}
			first = false
			continue
		}
		f.bounds.Expand(pos)
	}
}
