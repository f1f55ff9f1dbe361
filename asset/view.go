package asset

import (
	"github.com/meshverse/assetloader/errors"
	"github.com/meshverse/assetloader/glb"
	"github.com/meshverse/assetloader/scene"
)

// View is the typed result of a load. Exactly four implementations exist:
// ModelView, AvatarView, EmoteView and ScriptView.
type View interface {
	Kind() Kind
}

// BuildView constructs the kind-specific view over a decoded container.
// ref is the reference key, used for error context and logging only.
//
// Script assets never reach BuildView; they bypass container decoding and
// go through the admission gate instead.
func BuildView(kind Kind, doc *glb.Document, ref string) (View, error) {
	switch kind {
	case KindModel:
		return &ModelView{doc: doc}, nil
	case KindEmote:
		if len(doc.Animations) == 0 {
			return nil, errors.MissingAnimation(ref)
		}
		return &EmoteView{doc: doc}, nil
	case KindAvatar:
		return &AvatarView{doc: doc, Factory: buildAvatarFactory(doc, ref)}, nil
	case KindScript:
		return nil, errors.InvalidInput(errors.PhaseView, "script assets do not decode as containers")
	}
	return nil, errors.UnsupportedKind(string(kind))
}

// ModelView exposes a static scene graph.
type ModelView struct {
	doc *glb.Document
}

func (v *ModelView) Kind() Kind { return KindModel }

// Instantiate returns a fresh attachable copy of the container's scene
// graph. The cached document is never shared mutably.
func (v *ModelView) Instantiate() *scene.Node {
	return v.doc.Root.Clone()
}

// Document exposes the decoded container for inspection.
func (v *ModelView) Document() *glb.Document { return v.doc }

// AvatarView exposes a scene graph plus an optional humanoid rig factory.
// Factory is nil when the container carries no valid rig descriptor; node
// instantiation still works, only avatar capabilities are reduced.
type AvatarView struct {
	doc *glb.Document

	Factory *AvatarFactory
}

func (v *AvatarView) Kind() Kind { return KindAvatar }

// Instantiate returns a fresh attachable copy of the container's scene graph.
func (v *AvatarView) Instantiate() *scene.Node {
	return v.doc.Root.Clone()
}

// Document exposes the decoded container for inspection.
func (v *AvatarView) Document() *glb.Document { return v.doc }

// ScriptView holds script text that passed the admission gate. Execution
// is the sandbox collaborator's responsibility; no further API is exposed.
type ScriptView struct {
	Source string
}

func (v *ScriptView) Kind() Kind { return KindScript }
