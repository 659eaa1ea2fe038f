package integration_tests

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/vk/scenec/internal/scene"
)

// flatNode is the part of a compiled node the scenarios assert on.
type flatNode struct {
	ID     string
	Parent string
	Text   string
	X, Y   float64
	Width  float64
	Alpha  float64
}

func project(nodes []scene.Node) []flatNode {
	out := make([]flatNode, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, flatNode{
			ID:     n.ID,
			Parent: n.Parent,
			Text:   n.Text,
			X:      n.Position.X,
			Y:      n.Position.Y,
			Width:  n.Size.X,
			Alpha:  n.AlphaValue(),
		})
	}
	return out
}

func assertNodes(t *testing.T, want []flatNode, got []scene.Node) {
	t.Helper()
	if diff := cmp.Diff(want, project(got), cmpopts.EquateApprox(0, 1e-6)); diff != "" {
		t.Errorf("compiled nodes mismatch (-want +got):\n%s", diff)
	}
}

func layout(t *testing.T, s *scene.Scene, name string) []scene.Node {
	t.Helper()
	l, ok := s.Layout(name)
	if !ok {
		t.Fatalf("compiled scene has no layout %q", name)
	}
	return l.Nodes
}
