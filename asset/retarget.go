package asset

import (
	"go.uber.org/zap"

	"github.com/meshverse/assetloader/errors"
	"github.com/meshverse/assetloader/glb"
	"github.com/meshverse/assetloader/scene"
)

// EmoteView exposes the container's first animation clip for retargeting
// onto an external skeleton. Construction guarantees at least one clip.
type EmoteView struct {
	doc *glb.Document
}

func (v *EmoteView) Kind() Kind { return KindEmote }

// ClipName returns the name of the clip that Retarget operates on.
func (v *EmoteView) ClipName() string {
	return v.doc.Animations[0].Name
}

// Duration returns the clip length in seconds.
func (v *EmoteView) Duration() float64 {
	return v.doc.Animations[0].Duration
}

// RetargetOptions controls how a clip is mapped onto an external skeleton.
type RetargetOptions struct {
	// HipsScale scales translation keyframes to compensate for the height
	// difference between the authoring rig and the target rig. Zero means
	// no scaling.
	HipsScale float64

	// RigVersion tags the produced clip with the target rig's version.
	RigVersion string

	// MapBone translates an authoring bone name to the target skeleton's
	// name. Returning false drops the channel. Nil keeps names unchanged.
	MapBone func(bone string) (string, bool)
}

// Retarget maps the view's first clip onto an external skeleton and
// returns the result. The stored document is never mutated; every call
// produces an independent clip.
func (v *EmoteView) Retarget(opts RetargetOptions) (*scene.Clip, error) {
	src := v.doc.Animations[0]
	out := &scene.Clip{
		Name:     src.Name,
		Duration: src.Duration,
	}
	if opts.RigVersion != "" {
		out.Name = src.Name + "@" + opts.RigVersion
	}

	scale := opts.HipsScale
	if scale == 0 {
		scale = 1
	}

	dropped := 0
	for _, ch := range src.Channels {
		bone := ch.TargetBone
		if opts.MapBone != nil {
			mapped, ok := opts.MapBone(bone)
			if !ok {
				dropped++
				continue
			}
			bone = mapped
		}
		channel := scene.Channel{
			TargetBone: bone,
			Path:       ch.Path,
			Times:      append([]float32(nil), ch.Times...),
			Values:     append([]float32(nil), ch.Values...),
		}
		if ch.Path == scene.PathTranslation && scale != 1 {
			for i := range channel.Values {
				channel.Values[i] *= float32(scale)
			}
		}
		out.Channels = append(out.Channels, channel)
	}

	if dropped > 0 {
		Logger().Debug("retarget dropped unmapped channels",
			zap.String("clip", src.Name),
			zap.Int("dropped", dropped),
			zap.Int("kept", len(out.Channels)))
	}
	if len(src.Channels) > 0 && len(out.Channels) == 0 {
		return nil, errors.New(errors.PhaseView, errors.KindMissingBone).
			Value(src.Name).
			Detail("no clip channel maps onto the target skeleton").
			Build()
	}
	return out, nil
}
