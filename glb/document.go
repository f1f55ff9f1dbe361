package glb

import (
	"encoding/json"

	"github.com/meshverse/assetloader/scene"
)

// Document is the decoded form of a GLB container.
type Document struct {
	// Generator and Version come from the container's asset block.
	Generator string
	Version   string

	// Root is a synthetic node holding the default scene's root nodes.
	// Always non-nil after a successful decode, even for empty scenes.
	Root *scene.Node

	// Nodes is index-aligned with the container's node table, so metadata
	// that refers to nodes by index (the avatar rig descriptor) can be
	// resolved against it.
	Nodes []*scene.Node

	// Animations holds the container's clips in declaration order.
	Animations []*scene.Clip

	// Skins lists skin bindings by joint node name.
	Skins []Skin

	// Extensions is the raw JSON of the container's top-level extensions
	// object, nil when absent. Kept opaque; view construction probes it.
	Extensions []byte

	// Bin is the raw binary chunk, nil when absent.
	Bin []byte
}

// Skin is a skeleton binding decoded from the container.
type Skin struct {
	Name   string
	Joints []string
}

// NodeByIndex returns the node at the container's node-table index.
func (d *Document) NodeByIndex(i int) (*scene.Node, bool) {
	if i < 0 || i >= len(d.Nodes) {
		return nil, false
	}
	return d.Nodes[i], true
}

// JSON chunk schema. Only the fields the loader consumes are declared;
// everything else is ignored by encoding/json.

type jsonDocument struct {
	Asset struct {
		Version   string `json:"version"`
		Generator string `json:"generator"`
	} `json:"asset"`
	Scene      *int            `json:"scene"`
	Scenes     []jsonScene     `json:"scenes"`
	Nodes      []jsonNode      `json:"nodes"`
	Animations []jsonAnimation `json:"animations"`
	Skins      []jsonSkin      `json:"skins"`
	Accessors  []jsonAccessor  `json:"accessors"`
	Views      []jsonView      `json:"bufferViews"`
	Buffers    []jsonBuffer    `json:"buffers"`
	Extensions json.RawMessage `json:"extensions"`
}

type jsonScene struct {
	Name  string `json:"name"`
	Nodes []int  `json:"nodes"`
}

type jsonNode struct {
	Name        string      `json:"name"`
	Children    []int       `json:"children"`
	Translation *[3]float64 `json:"translation"`
	Rotation    *[4]float64 `json:"rotation"`
	Scale       *[3]float64 `json:"scale"`
}

type jsonAnimation struct {
	Name     string            `json:"name"`
	Channels []jsonAnimChannel `json:"channels"`
	Samplers []jsonAnimSampler `json:"samplers"`
}

type jsonAnimChannel struct {
	Sampler int `json:"sampler"`
	Target  struct {
		Node *int   `json:"node"`
		Path string `json:"path"`
	} `json:"target"`
}

type jsonAnimSampler struct {
	Input  int `json:"input"`
	Output int `json:"output"`
}

type jsonSkin struct {
	Name   string `json:"name"`
	Joints []int  `json:"joints"`
}

type jsonAccessor struct {
	View          *int   `json:"bufferView"`
	ByteOffset    int    `json:"byteOffset"`
	ComponentType int    `json:"componentType"`
	Count         int    `json:"count"`
	Type          string `json:"type"`
}

type jsonView struct {
	Buffer     int `json:"buffer"`
	ByteOffset int `json:"byteOffset"`
	ByteLength int `json:"byteLength"`
	ByteStride int `json:"byteStride"`
}

type jsonBuffer struct {
	ByteLength int    `json:"byteLength"`
	URI        string `json:"uri"`
}
