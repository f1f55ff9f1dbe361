package scene

import "testing"

// rig builds a three-level tree: root -> spine -> head, with scaling on root.
func rig() (*Node, *Node, *Node) {
	root := New("root")
	root.Scale = [3]float64{2, 2, 2}
	spine := New("spine")
	spine.Translation = [3]float64{0, 0.5, 0}
	head := New("head")
	head.Translation = [3]float64{0, 0.3, 0}
	root.Attach(spine)
	spine.Attach(head)
	return root, spine, head
}

func TestWorldTranslation(t *testing.T) {
	_, spine, head := rig()

	if got := spine.WorldTranslation()[1]; got != 1.0 {
		t.Errorf("spine world Y = %v, want 1.0", got)
	}
	// head: root scale 2 applied to both spine and head local translations
	if got := head.WorldTranslation()[1]; got != 1.6 {
		t.Errorf("head world Y = %v, want 1.6", got)
	}
}

func TestWorldTranslation_Root(t *testing.T) {
	n := New("only")
	n.Translation = [3]float64{1, 2, 3}
	if got := n.WorldTranslation(); got != [3]float64{1, 2, 3} {
		t.Errorf("world = %v", got)
	}
}

func TestFind(t *testing.T) {
	root, _, head := rig()

	if found := root.Find("head"); found != head {
		t.Error("Find did not locate head")
	}
	if found := root.Find("tail"); found != nil {
		t.Errorf("Find located nonexistent node %v", found)
	}
}

func TestWalkAndCount(t *testing.T) {
	root, _, _ := rig()

	if got := root.Count(); got != 3 {
		t.Errorf("Count = %d, want 3", got)
	}

	visited := 0
	root.Walk(func(*Node) bool {
		visited++
		return visited < 2 // stop early
	})
	if visited != 2 {
		t.Errorf("early-stopped walk visited %d nodes, want 2", visited)
	}
}

func TestClone(t *testing.T) {
	root, _, _ := rig()
	copied := root.Clone()

	if copied == root {
		t.Fatal("Clone returned the receiver")
	}
	if copied.Parent != nil {
		t.Error("cloned root has a parent")
	}
	if copied.Count() != root.Count() {
		t.Errorf("clone has %d nodes, want %d", copied.Count(), root.Count())
	}

	// Mutating the copy must not touch the original.
	copied.Find("head").Translation[1] = 99
	if root.Find("head").Translation[1] == 99 {
		t.Error("clone shares nodes with the original")
	}

	// Parent pointers must be internal to the copy.
	if copied.Find("head").Parent == root.Find("spine") {
		t.Error("clone's parent pointers reference the original tree")
	}
}

func TestTreeBounds(t *testing.T) {
	root := New("root")
	left := New("left")
	left.Translation = [3]float64{-1, 0, 0}
	right := New("right")
	right.Translation = [3]float64{2, 3, 0}
	root.Attach(left)
	root.Attach(right)

	bounds := TreeBounds(root)
	if bounds.Min != [3]float64{-1, 0, 0} {
		t.Errorf("Min = %v", bounds.Min)
	}
	if bounds.Max != [3]float64{2, 3, 0} {
		t.Errorf("Max = %v", bounds.Max)
	}
}

func TestClipClone(t *testing.T) {
	clip := &Clip{
		Name:     "wave",
		Duration: 1.5,
		Channels: []Channel{{
			TargetBone: "arm",
			Path:       PathRotation,
			Times:      []float32{0, 1.5},
			Values:     []float32{0, 0, 0, 1, 0, 0, 0, 1},
		}},
	}
	copied := clip.Clone()

	copied.Channels[0].Values[0] = 7
	if clip.Channels[0].Values[0] == 7 {
		t.Error("clone shares value slices with the original")
	}
	if copied.Name != "wave" || copied.Duration != 1.5 {
		t.Errorf("clone header = %q/%v", copied.Name, copied.Duration)
	}
}

func TestTargetPath(t *testing.T) {
	tests := []struct {
		path       TargetPath
		valid      bool
		components int
	}{
		{PathTranslation, true, 3},
		{PathRotation, true, 4},
		{PathScale, true, 3},
		{TargetPath("weights"), false, 0},
	}
	for _, tt := range tests {
		if tt.path.Valid() != tt.valid {
			t.Errorf("%s Valid = %v", tt.path, tt.path.Valid())
		}
		if got := (Channel{Path: tt.path}).Components(); got != tt.components {
			t.Errorf("%s Components = %d, want %d", tt.path, got, tt.components)
		}
	}
}
