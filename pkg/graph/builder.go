package graph

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/tilesmith/tilesmith/pkg/errors"
	"github.com/tilesmith/tilesmith/pkg/pixel"
	"github.com/tilesmith/tilesmith/pkg/raster"
	"github.com/tilesmith/tilesmith/pkg/taskspec"
)

// Builder turns task specification trees into graph nodes. One builder is
// shared across every catalogue entry of a run so that the visited set can
// collapse sub-trees reused between materials.
type Builder struct {
	// Pool supplies output buffers to every node body.
	Pool *pixel.BufferPool
	// TileWidth is the rasterization width for vector sources.
	TileWidth int
	// SVGRoot is the directory of vector sources; a spec's logical source
	// name resolves to <SVGRoot>/<name>.svg.
	SVGRoot string
	// OutRoot is prepended to every sink destination.
	OutRoot string
}

// AddTo registers spec and, recursively, all of its dependencies into g,
// exactly once per structurally distinct node. Specs already present in
// visited (keyed by structural key) are skipped, which is what collapses
// shared sub-trees into single nodes. Children are registered before their
// dependents, so g's insertion order stays topological.
//
// Errors carry the GRAPH_CONSTRUCTION code: they indicate catalogue or
// builder bugs, not conditions a rebuild could fix.
func (b *Builder) AddTo(g *Graph, visited map[string]bool, spec taskspec.Spec) error {
	if b.TileWidth <= 0 {
		return errors.Wrap(errors.ErrCodeGraphConstruction, ErrInvalidTileWidth,
			"builder configured with tile width %d", b.TileWidth)
	}
	if spec.Kind() == taskspec.KindNone {
		return errors.Wrap(errors.ErrCodeGraphConstruction, ErrNoneSpec,
			"spec tree contains a none placeholder")
	}

	key := taskspec.Key(spec)
	if visited[key] {
		return nil
	}

	for _, child := range spec.Children() {
		if err := b.AddTo(g, visited, child); err != nil {
			return err
		}
	}

	node, err := b.node(spec, key)
	if err != nil {
		return err
	}
	if err := g.AddNode(node); err != nil {
		return errors.Wrap(errors.ErrCodeGraphConstruction, err,
			"register node %s", node.Display)
	}
	visited[key] = true
	return nil
}

// node constructs the graph node for one spec variant: its input slot
// bindings and the body closure invoking the matching raster operation.
func (b *Builder) node(spec taskspec.Spec, key string) (*Node, error) {
	n := &Node{
		Key:     key,
		Spec:    spec,
		Display: spec.String(),
		Inputs:  make(map[string]string),
	}

	switch s := spec.(type) {
	case taskspec.FromSVG:
		if err := errors.ValidateSourceName(s.Source); err != nil {
			return nil, errors.Wrap(errors.ErrCodeGraphConstruction, err,
				"source of %s", n.Display)
		}
		path := filepath.Join(b.SVGRoot, s.Source+".svg")
		width := b.TileWidth
		n.Run = func(_ context.Context, _ map[string]*pixel.Pixmap) (*pixel.Pixmap, error) {
			return raster.FromSVG(b.Pool, path, width)
		}

	case taskspec.Semitransparent:
		// The lookup table is built once here and reused for every
		// execution of the node.
		scaler, err := raster.NewAlphaScaler(s.Alpha)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeGraphConstruction, err,
				"alpha of %s", n.Display)
		}
		n.Inputs["base"] = taskspec.Key(s.Base)
		n.Run = func(_ context.Context, in map[string]*pixel.Pixmap) (*pixel.Pixmap, error) {
			return scaler.Apply(b.Pool, in["base"])
		}

	case taskspec.Repaint:
		color := s.Color
		n.Inputs["base"] = taskspec.Key(s.Base)
		n.Run = func(_ context.Context, in map[string]*pixel.Pixmap) (*pixel.Pixmap, error) {
			return raster.Paint(b.Pool, in["base"], color)
		}

	case taskspec.ToAlpha:
		n.Inputs["base"] = taskspec.Key(s.Base)
		n.Run = func(_ context.Context, in map[string]*pixel.Pixmap) (*pixel.Pixmap, error) {
			return raster.ToMask(b.Pool, in["base"])
		}

	case taskspec.StackOnLayer:
		n.Inputs["background"] = taskspec.Key(s.Background)
		n.Inputs["foreground"] = taskspec.Key(s.Foreground)
		n.Run = func(_ context.Context, in map[string]*pixel.Pixmap) (*pixel.Pixmap, error) {
			return raster.StackOnLayer(b.Pool, in["background"], in["foreground"])
		}

	case taskspec.StackOnColor:
		color := s.Background
		n.Inputs["foreground"] = taskspec.Key(s.Foreground)
		n.Run = func(_ context.Context, in map[string]*pixel.Pixmap) (*pixel.Pixmap, error) {
			return raster.StackOnColor(b.Pool, color, in["foreground"])
		}

	case taskspec.Animate:
		n.Inputs["background"] = taskspec.Key(s.Background)
		slots := make([]string, len(s.Frames))
		for i, f := range s.Frames {
			slots[i] = fmt.Sprintf("frame%d", i)
			n.Inputs[slots[i]] = taskspec.Key(f)
		}
		// The memo compares buffers by identity across executions, so
		// neither they nor the stored output may return to the pool.
		n.Retain = true
		memo := &animateMemo{}
		n.Run = func(_ context.Context, in map[string]*pixel.Pixmap) (*pixel.Pixmap, error) {
			ordered := make([]*pixel.Pixmap, 0, len(slots)+1)
			ordered = append(ordered, in["background"])
			for _, slot := range slots {
				ordered = append(ordered, in[slot])
			}
			if out, ok := memo.lookup(ordered); ok {
				return out, nil
			}
			out, err := raster.Animate(b.Pool, ordered[0], ordered[1:])
			if err != nil {
				return nil, err
			}
			memo.store(ordered, out)
			return out, nil
		}

	case taskspec.PNGOutput:
		if len(s.Destinations) == 0 {
			return nil, errors.New(errors.ErrCodeGraphConstruction,
				"%s has no destinations", n.Display)
		}
		dests := make([]string, len(s.Destinations))
		for i, d := range s.Destinations {
			if err := errors.ValidateDestination(d); err != nil {
				return nil, errors.Wrap(errors.ErrCodeGraphConstruction, err,
					"destination of %s", n.Display)
			}
			dests[i] = filepath.Join(b.OutRoot, d)
		}
		n.Sink = true
		n.Destinations = dests
		n.Inputs["base"] = taskspec.Key(s.Base)
		n.Run = func(_ context.Context, in map[string]*pixel.Pixmap) (*pixel.Pixmap, error) {
			if err := raster.WritePNG(in["base"], dests); err != nil {
				return nil, err
			}
			return in["base"], nil
		}

	default:
		return nil, errors.New(errors.ErrCodeGraphConstruction,
			"unsupported spec variant %s", spec.Kind())
	}

	return n, nil
}

// animateMemo caches an animate node's last output keyed by the identity of
// its input buffers. Dedup already guarantees one render per run; this layer
// additionally short-circuits repeated executions of the same graph when no
// input was re-rendered in between.
type animateMemo struct {
	mu     sync.Mutex
	inputs []*pixel.Pixmap
	out    *pixel.Pixmap
}

func (m *animateMemo) lookup(inputs []*pixel.Pixmap) (*pixel.Pixmap, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.out == nil || len(inputs) != len(m.inputs) {
		return nil, false
	}
	for i := range inputs {
		if inputs[i] != m.inputs[i] {
			return nil, false
		}
	}
	return m.out, true
}

func (m *animateMemo) store(inputs []*pixel.Pixmap, out *pixel.Pixmap) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inputs = append([]*pixel.Pixmap(nil), inputs...)
	m.out = out
}
