package asset

// Kind is the declared type of an asset, which selects how its container
// bytes are parsed and what view the load produces.
type Kind string

const (
	KindModel  Kind = "model"  // static scene graph
	KindAvatar Kind = "avatar" // scene graph with an optional humanoid rig
	KindEmote  Kind = "emote"  // animation clip for retargeting
	KindScript Kind = "script" // embedded script text, gated before exposure
)

// Valid reports whether k is one of the supported kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindModel, KindAvatar, KindEmote, KindScript:
		return true
	}
	return false
}

// Ref is a logical asset reference. Two refs are equal iff both fields
// match exactly; no normalization is applied.
type Ref struct {
	Kind    Kind
	Locator string
}

// Key returns the cache key for the reference.
func (r Ref) Key() string {
	return string(r.Kind) + "/" + r.Locator
}

func (r Ref) String() string {
	return r.Key()
}
