package jsonc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	tjsonc "github.com/tidwall/jsonc"

	"github.com/vk/scenec/internal/ctxlog"
	"github.com/vk/scenec/internal/scene"
)

// ParseError reports a malformed scene file. Offset is the byte offset in
// the comment-stripped document when the JSON decoder reports one.
type ParseError struct {
	Path   string
	Offset int64
	Err    error
}

func (e *ParseError) Error() string {
	if e.Offset > 0 {
		return fmt.Sprintf("failed to parse scene %s at offset %d: %v", e.Path, e.Offset, e.Err)
	}
	return fmt.Sprintf("failed to parse scene %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

type document struct {
	Script   string `json:"script"`
	Material string `json:"material"`

	Nodes   []json.RawMessage `json:"nodes"`
	Layouts []struct {
		Name  string            `json:"name"`
		Nodes []json.RawMessage `json:"nodes"`
	} `json:"layouts"`

	Fonts       []scene.FontDesc       `json:"fonts"`
	Textures    []scene.TextureDesc    `json:"textures"`
	Materials   []scene.MaterialDesc   `json:"materials"`
	Particlefxs []scene.ParticlefxDesc `json:"particlefxs"`
	SpineScenes []scene.SpineSceneDesc `json:"spine_scenes"`
	Resources   []scene.ResourceDesc   `json:"resources"`
	Layers      []scene.LayerDesc      `json:"layers"`
}

// Decode parses a JSONC scene file. filename becomes the scene's Path.
func Decode(ctx context.Context, src []byte, filename string) (*scene.Scene, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("JSONC scene decoding started.", "path", filename, "bytes", len(src))

	clean := tjsonc.ToJSON(src)

	var doc document
	if err := strictUnmarshal(clean, &doc); err != nil {
		return nil, parseError(filename, err)
	}

	s := &scene.Scene{
		Path:        filename,
		Script:      doc.Script,
		Material:    doc.Material,
		Fonts:       doc.Fonts,
		Textures:    doc.Textures,
		Materials:   doc.Materials,
		Particlefxs: doc.Particlefxs,
		SpineScenes: doc.SpineScenes,
		Resources:   doc.Resources,
		Layers:      doc.Layers,
	}

	for i, raw := range doc.Nodes {
		n, err := decodeNode(raw, scene.NewNode("", scene.TypeBox))
		if err != nil {
			return nil, parseError(filename, fmt.Errorf("nodes[%d]: %w", i, err))
		}
		s.Nodes = append(s.Nodes, n)
	}

	defaults := scene.NodeMap(s.Nodes)
	for _, dl := range doc.Layouts {
		l := scene.Layout{Name: dl.Name}
		for i, raw := range dl.Nodes {
			id, err := peekID(raw)
			if err != nil {
				return nil, parseError(filename, fmt.Errorf("layout %q nodes[%d]: %w", dl.Name, i, err))
			}
			n, err := decodeNode(raw, scene.LayoutBase(defaults, id))
			if err != nil {
				return nil, parseError(filename, fmt.Errorf("layout %q nodes[%d]: %w", dl.Name, i, err))
			}
			l.Nodes = append(l.Nodes, n.WithLegacyAlpha())
		}
		s.Layouts = append(s.Layouts, l)
	}

	logger.Debug("JSONC scene decoded.", "path", filename, "nodes", len(s.Nodes), "layouts", len(s.Layouts))
	return s, nil
}

// decodeNode unmarshals raw on top of base, so absent keys keep the base
// values.
func decodeNode(raw json.RawMessage, base scene.Node) (scene.Node, error) {
	n := base
	if err := strictUnmarshal(raw, &n); err != nil {
		return scene.Node{}, err
	}
	if n.ID == "" {
		return scene.Node{}, errors.New("node has no id")
	}
	t, err := scene.ParseNodeType(string(n.Type))
	if err != nil {
		return scene.Node{}, fmt.Errorf("node %q: %w", n.ID, err)
	}
	n.Type = t
	for _, f := range n.OverriddenFields {
		if _, err := scene.ParseFieldID(string(f)); err != nil {
			return scene.Node{}, fmt.Errorf("node %q: %w", n.ID, err)
		}
	}
	return n, nil
}

func peekID(raw json.RawMessage) (string, error) {
	var head struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		return "", err
	}
	return head.ID, nil
}

func strictUnmarshal(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func parseError(path string, err error) *ParseError {
	pe := &ParseError{Path: path, Err: err}
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr):
		pe.Offset = syntaxErr.Offset
	case errors.As(err, &typeErr):
		pe.Offset = typeErr.Offset
	}
	return pe
}
