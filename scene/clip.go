package scene

// TargetPath identifies which node property an animation channel drives.
type TargetPath string

const (
	PathTranslation TargetPath = "translation"
	PathRotation    TargetPath = "rotation"
	PathScale       TargetPath = "scale"
)

// componentCount returns values per keyframe for the path, 0 if unknown.
func (p TargetPath) componentCount() int {
	switch p {
	case PathTranslation, PathScale:
		return 3
	case PathRotation:
		return 4
	}
	return 0
}

// Valid reports whether p is a recognized target path.
func (p TargetPath) Valid() bool {
	return p.componentCount() != 0
}

// Clip is a decoded animation clip.
type Clip struct {
	Name     string
	Duration float64
	Channels []Channel
}

// Channel drives one property of one bone over time. Times holds keyframe
// timestamps in seconds; Values holds componentCount(Path) floats per key.
type Channel struct {
	TargetBone string
	Path       TargetPath
	Times      []float32
	Values     []float32
}

// Components returns the number of value components per keyframe.
func (c Channel) Components() int {
	return c.Path.componentCount()
}

// Clone deep-copies the clip so callers can rescale or rename channels
// without touching the cached document.
func (c *Clip) Clone() *Clip {
	out := &Clip{
		Name:     c.Name,
		Duration: c.Duration,
		Channels: make([]Channel, len(c.Channels)),
	}
	for i, ch := range c.Channels {
		out.Channels[i] = Channel{
			TargetBone: ch.TargetBone,
			Path:       ch.Path,
			Times:      append([]float32(nil), ch.Times...),
			Values:     append([]float32(nil), ch.Values...),
		}
	}
	return out
}
