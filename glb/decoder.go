package glb

import (
	"encoding/binary"
	"encoding/json"
	"math"

	"go.uber.org/zap"

	"github.com/meshverse/assetloader/errors"
	"github.com/meshverse/assetloader/scene"
)

const (
	magic             = 0x46546C67 // "glTF"
	version           = 2
	headerSize        = 12
	chunkJSON         = 0x4E4F534A // "JSON"
	chunkBIN          = 0x004E4942 // "BIN\0"
	chunkHeader       = 8
	maxChunks         = 16      // a well-formed container has 1 or 2
	maxAccessorFloats = 1 << 20 // allocation cap for accessor decoding
	floatType         = 5126
	accessorVec3      = "VEC3"
	accessorVec4      = "VEC4"
	scalarType        = "SCALAR"
)

// IsContainer reports whether data starts with a GLB v2 header.
func IsContainer(data []byte) bool {
	if len(data) < headerSize {
		return false
	}
	if binary.LittleEndian.Uint32(data[0:4]) != magic {
		return false
	}
	return binary.LittleEndian.Uint32(data[4:8]) == version
}

// Decode parses a GLB container into a Document.
func Decode(data []byte) (*Document, error) {
	if len(data) < headerSize {
		return nil, errors.InvalidContainer("container shorter than header", nil)
	}
	if binary.LittleEndian.Uint32(data[0:4]) != magic {
		return nil, errors.InvalidContainer("bad magic", nil)
	}
	if v := binary.LittleEndian.Uint32(data[4:8]); v != version {
		return nil, errors.New(errors.PhaseDecode, errors.KindInvalidContainer).
			Detail("unsupported container version %d", v).
			Value(v).
			Build()
	}
	total := binary.LittleEndian.Uint32(data[8:12])
	if total < headerSize || total > uint32(len(data)) {
		return nil, errors.New(errors.PhaseDecode, errors.KindInvalidContainer).
			Detail("declared length %d outside container size %d", total, len(data)).
			Build()
	}

	jsonChunk, binChunk, err := walkChunks(data[headerSize:total])
	if err != nil {
		return nil, err
	}
	if jsonChunk == nil {
		return nil, errors.InvalidContainer("JSON chunk missing", nil)
	}

	var raw jsonDocument
	if err := json.Unmarshal(jsonChunk, &raw); err != nil {
		return nil, errors.InvalidContainer("JSON chunk malformed", err)
	}

	doc := &Document{
		Generator:  raw.Asset.Generator,
		Version:    raw.Asset.Version,
		Extensions: raw.Extensions,
		Bin:        binChunk,
	}
	if err := buildNodes(doc, &raw); err != nil {
		return nil, err
	}
	if err := buildAnimations(doc, &raw); err != nil {
		return nil, err
	}
	if err := buildSkins(doc, &raw); err != nil {
		return nil, err
	}

	Logger().Debug("decoded container",
		zap.Int("nodes", len(doc.Nodes)),
		zap.Int("animations", len(doc.Animations)),
		zap.Int("skins", len(doc.Skins)))
	return doc, nil
}

// walkChunks validates chunk framing and returns the JSON and BIN payloads.
func walkChunks(body []byte) (jsonChunk, binChunk []byte, err error) {
	offset := 0
	for count := 0; offset < len(body); count++ {
		if count >= maxChunks {
			return nil, nil, errors.InvalidContainer("too many chunks", nil)
		}
		if len(body)-offset < chunkHeader {
			return nil, nil, errors.InvalidContainer("truncated chunk header", nil)
		}
		length := int(binary.LittleEndian.Uint32(body[offset : offset+4]))
		kind := binary.LittleEndian.Uint32(body[offset+4 : offset+8])
		offset += chunkHeader
		if length < 0 || length > len(body)-offset {
			return nil, nil, errors.New(errors.PhaseDecode, errors.KindInvalidContainer).
				Detail("chunk %d length %d overruns container", count, length).
				Build()
		}
		payload := body[offset : offset+length]
		offset += length
		// Chunks are padded to 4-byte alignment.
		if rem := length % 4; rem != 0 {
			pad := 4 - rem
			if pad > len(body)-offset {
				pad = len(body) - offset
			}
			offset += pad
		}

		switch kind {
		case chunkJSON:
			if count != 0 {
				return nil, nil, errors.InvalidContainer("JSON chunk must come first", nil)
			}
			jsonChunk = payload
		case chunkBIN:
			binChunk = payload
		default:
			// Unknown chunk types are skipped per the container spec.
			Logger().Debug("skipping unknown chunk", zap.Uint32("type", kind))
		}
	}
	return jsonChunk, binChunk, nil
}

func buildNodes(doc *Document, raw *jsonDocument) error {
	doc.Nodes = make([]*scene.Node, len(raw.Nodes))
	for i, jn := range raw.Nodes {
		n := scene.New(jn.Name)
		if jn.Translation != nil {
			n.Translation = *jn.Translation
		}
		if jn.Rotation != nil {
			n.Rotation = *jn.Rotation
		}
		if jn.Scale != nil {
			n.Scale = *jn.Scale
		}
		doc.Nodes[i] = n
	}

	for i, jn := range raw.Nodes {
		for _, child := range jn.Children {
			if child < 0 || child >= len(doc.Nodes) {
				return errors.New(errors.PhaseDecode, errors.KindInvalidData).
					Detail("node %d references child %d out of range", i, child).
					Build()
			}
			if doc.Nodes[child].Parent != nil {
				return errors.New(errors.PhaseDecode, errors.KindInvalidData).
					Detail("node %d has multiple parents", child).
					Build()
			}
			if child == i {
				return errors.New(errors.PhaseDecode, errors.KindInvalidData).
					Detail("node %d is its own child", i).
					Build()
			}
			doc.Nodes[i].Attach(doc.Nodes[child])
		}
	}

	root := scene.New("")
	if len(raw.Scenes) > 0 {
		idx := 0
		if raw.Scene != nil {
			idx = *raw.Scene
		}
		if idx < 0 || idx >= len(raw.Scenes) {
			return errors.New(errors.PhaseDecode, errors.KindInvalidData).
				Detail("default scene %d out of range", idx).
				Build()
		}
		sc := raw.Scenes[idx]
		root.Name = sc.Name
		for _, ni := range sc.Nodes {
			n, ok := doc.NodeByIndex(ni)
			if !ok {
				return errors.New(errors.PhaseDecode, errors.KindInvalidData).
					Detail("scene references node %d out of range", ni).
					Build()
			}
			root.Attach(n)
		}
	} else {
		// No scene table: treat parentless nodes as scene roots.
		for _, n := range doc.Nodes {
			if n.Parent == nil {
				root.Attach(n)
			}
		}
	}
	doc.Root = root
	return nil
}

func buildAnimations(doc *Document, raw *jsonDocument) error {
	for ai, ja := range raw.Animations {
		clip := &scene.Clip{Name: ja.Name}
		for ci, jc := range ja.Channels {
			if jc.Target.Node == nil {
				// Channels without a target node drive nothing we keep.
				continue
			}
			target, ok := doc.NodeByIndex(*jc.Target.Node)
			if !ok {
				return errors.New(errors.PhaseDecode, errors.KindInvalidData).
					Detail("animation %d channel %d targets node %d out of range", ai, ci, *jc.Target.Node).
					Build()
			}
			path := scene.TargetPath(jc.Target.Path)
			if !path.Valid() {
				continue
			}
			if jc.Sampler < 0 || jc.Sampler >= len(ja.Samplers) {
				return errors.New(errors.PhaseDecode, errors.KindInvalidData).
					Detail("animation %d channel %d sampler %d out of range", ai, ci, jc.Sampler).
					Build()
			}
			sampler := ja.Samplers[jc.Sampler]
			times, err := readFloatAccessor(doc, raw, sampler.Input, scalarType)
			if err != nil {
				return err
			}
			values, err := readFloatAccessor(doc, raw, sampler.Output, "")
			if err != nil {
				return err
			}
			clip.Channels = append(clip.Channels, scene.Channel{
				TargetBone: target.Name,
				Path:       path,
				Times:      times,
				Values:     values,
			})
			for _, t := range times {
				if float64(t) > clip.Duration {
					clip.Duration = float64(t)
				}
			}
		}
		doc.Animations = append(doc.Animations, clip)
	}
	return nil
}

func buildSkins(doc *Document, raw *jsonDocument) error {
	for si, js := range raw.Skins {
		skin := Skin{Name: js.Name}
		for _, ji := range js.Joints {
			joint, ok := doc.NodeByIndex(ji)
			if !ok {
				return errors.New(errors.PhaseDecode, errors.KindInvalidData).
					Detail("skin %d references joint %d out of range", si, ji).
					Build()
			}
			skin.Joints = append(skin.Joints, joint.Name)
		}
		doc.Skins = append(doc.Skins, skin)
	}
	return nil
}

// readFloatAccessor decodes a float32 accessor from the BIN chunk.
// wantType restricts the accessor element type; empty accepts any.
func readFloatAccessor(doc *Document, raw *jsonDocument, index int, wantType string) ([]float32, error) {
	if index < 0 || index >= len(raw.Accessors) {
		return nil, errors.New(errors.PhaseDecode, errors.KindInvalidData).
			Detail("accessor %d out of range", index).
			Build()
	}
	acc := raw.Accessors[index]
	if acc.ComponentType != floatType {
		return nil, errors.New(errors.PhaseDecode, errors.KindInvalidData).
			Detail("accessor %d component type %d is not float32", index, acc.ComponentType).
			Build()
	}
	if wantType != "" && acc.Type != wantType {
		return nil, errors.New(errors.PhaseDecode, errors.KindInvalidData).
			Detail("accessor %d type %s, want %s", index, acc.Type, wantType).
			Build()
	}
	components := componentsOf(acc.Type)
	if components == 0 {
		return nil, errors.New(errors.PhaseDecode, errors.KindInvalidData).
			Detail("accessor %d has unsupported type %s", index, acc.Type).
			Build()
	}
	if acc.Count < 0 || acc.Count > maxAccessorFloats/components {
		return nil, errors.New(errors.PhaseDecode, errors.KindInvalidData).
			Detail("accessor %d count %d out of range", index, acc.Count).
			Build()
	}
	if acc.View == nil {
		// Sparse/zero-filled accessors are legal; the loader has no use
		// for them in animation samplers.
		return make([]float32, acc.Count*components), nil
	}
	vi := *acc.View
	if vi < 0 || vi >= len(raw.Views) {
		return nil, errors.New(errors.PhaseDecode, errors.KindInvalidData).
			Detail("accessor %d references buffer view %d out of range", index, vi).
			Build()
	}
	view := raw.Views[vi]
	if view.Buffer != 0 {
		return nil, errors.New(errors.PhaseDecode, errors.KindInvalidData).
			Detail("buffer view %d references external buffer %d", vi, view.Buffer).
			Build()
	}
	start := view.ByteOffset + acc.ByteOffset
	size := acc.Count * components * 4
	if view.ByteOffset < 0 || acc.ByteOffset < 0 || start < 0 || start > len(doc.Bin)-size {
		return nil, errors.New(errors.PhaseDecode, errors.KindInvalidData).
			Detail("accessor %d spans [%d,%d) outside BIN chunk of %d bytes", index, start, start+size, len(doc.Bin)).
			Build()
	}

	out := make([]float32, acc.Count*components)
	for i := range out {
		bits := binary.LittleEndian.Uint32(doc.Bin[start+i*4:])
		out[i] = math.Float32frombits(bits)
	}
	return out, nil
}

func componentsOf(accessorType string) int {
	switch accessorType {
	case scalarType:
		return 1
	case accessorVec3:
		return 3
	case accessorVec4:
		return 4
	}
	return 0
}
