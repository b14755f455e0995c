package graph

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/tilesmith/tilesmith/pkg/errors"
	"github.com/tilesmith/tilesmith/pkg/palette"
	"github.com/tilesmith/tilesmith/pkg/pixel"
	"github.com/tilesmith/tilesmith/pkg/taskspec"
)

const testSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 16 16">
  <rect x="0" y="0" width="16" height="16" fill="#7e7e7e"/>
</svg>`

// newTestBuilder writes the named vector sources into a temp root and returns
// a builder pointed at it.
func newTestBuilder(t *testing.T, sources ...string) *Builder {
	t.Helper()
	pool, err := pixel.NewBufferPool(16)
	if err != nil {
		t.Fatal(err)
	}
	svgRoot := t.TempDir()
	for _, src := range sources {
		if err := os.WriteFile(filepath.Join(svgRoot, src+".svg"), []byte(testSVG), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return &Builder{
		Pool:      pool,
		TileWidth: 16,
		SVGRoot:   svgRoot,
		OutRoot:   t.TempDir(),
	}
}

func TestAddToRejectsNone(t *testing.T) {
	b := newTestBuilder(t)
	err := b.AddTo(New(), map[string]bool{}, taskspec.None)
	if !stderrors.Is(err, ErrNoneSpec) {
		t.Errorf("error = %v, want ErrNoneSpec", err)
	}
	if !errors.Is(err, errors.ErrCodeGraphConstruction) {
		t.Errorf("error = %v, want GRAPH_CONSTRUCTION code", err)
	}
}

func TestAddToRejectsInvalidTileWidth(t *testing.T) {
	b := newTestBuilder(t, "stone")
	b.TileWidth = 0
	err := b.AddTo(New(), map[string]bool{}, taskspec.FromSVG{Source: "stone"})
	if !stderrors.Is(err, ErrInvalidTileWidth) {
		t.Errorf("error = %v, want ErrInvalidTileWidth", err)
	}
}

func TestAddToRegistersChildrenFirst(t *testing.T) {
	b := newTestBuilder(t, "stone", "coal")
	g := New()

	spec := taskspec.PNGOutput{
		Base: taskspec.StackOnLayer{
			Background: taskspec.FromSVG{Source: "stone"},
			Foreground: taskspec.FromSVG{Source: "coal"},
		},
		Destinations: []string{"block/coal_ore.png"},
	}
	if err := b.AddTo(g, map[string]bool{}, spec); err != nil {
		t.Fatal(err)
	}

	if g.NodeCount() != 4 {
		t.Fatalf("NodeCount() = %d, want 4", g.NodeCount())
	}
	order := g.TopoOrder()
	if order[len(order)-1].Spec.Kind() != taskspec.KindPNGOutput {
		t.Error("sink is not last in topological order")
	}
	sinks := g.Sinks()
	if len(sinks) != 1 || !sinks[0].Sink {
		t.Fatalf("Sinks() = %v, want exactly the output node", sinks)
	}
	if got := sinks[0].Destinations[0]; filepath.Dir(got) != filepath.Join(b.OutRoot, "block") {
		t.Errorf("sink destination %q not under output root", got)
	}
}

func TestAddToDeduplicatesSharedSubtrees(t *testing.T) {
	b := newTestBuilder(t, "stone", "coal", "iron")
	g := New()
	visited := map[string]bool{}

	// Two independently built trees sharing the same stone base.
	stoneA := taskspec.FromSVG{Source: "stone"}
	stoneB := taskspec.FromSVG{Source: "stone"}
	coalOre := taskspec.PNGOutput{
		Base: taskspec.StackOnLayer{
			Background: stoneA,
			Foreground: taskspec.FromSVG{Source: "coal"},
		},
		Destinations: []string{"block/coal_ore.png"},
	}
	ironOre := taskspec.PNGOutput{
		Base: taskspec.StackOnLayer{
			Background: stoneB,
			Foreground: taskspec.FromSVG{Source: "iron"},
		},
		Destinations: []string{"block/iron_ore.png"},
	}

	if err := b.AddTo(g, visited, coalOre); err != nil {
		t.Fatal(err)
	}
	if err := b.AddTo(g, visited, ironOre); err != nil {
		t.Fatal(err)
	}

	// 4 nodes per tree, minus the shared stone leaf.
	if g.NodeCount() != 7 {
		t.Errorf("NodeCount() = %d, want 7", g.NodeCount())
	}
	if counts := g.Consumers(); counts[taskspec.Key(stoneA)] != 2 {
		t.Errorf("stone consumers = %d, want 2", counts[taskspec.Key(stoneA)])
	}
}

func TestAddToIdempotentPerSpec(t *testing.T) {
	b := newTestBuilder(t, "stone")
	g := New()
	visited := map[string]bool{}
	spec := taskspec.Repaint{Base: taskspec.FromSVG{Source: "stone"}, Color: palette.Hex(0xff0000)}

	if err := b.AddTo(g, visited, spec); err != nil {
		t.Fatal(err)
	}
	if err := b.AddTo(g, visited, spec); err != nil {
		t.Fatal(err)
	}
	if g.NodeCount() != 2 {
		t.Errorf("NodeCount() = %d after re-adding, want 2", g.NodeCount())
	}
}

func TestAddToMarksAnimateRetained(t *testing.T) {
	b := newTestBuilder(t, "bg", "f0", "f1")
	g := New()

	spec := taskspec.Animate{
		Background: taskspec.FromSVG{Source: "bg"},
		Frames:     []taskspec.Spec{taskspec.FromSVG{Source: "f0"}, taskspec.FromSVG{Source: "f1"}},
	}
	if err := b.AddTo(g, map[string]bool{}, spec); err != nil {
		t.Fatal(err)
	}

	anim, ok := g.Node(taskspec.Key(spec))
	if !ok {
		t.Fatal("animate node missing")
	}
	if !anim.Retain {
		t.Error("animate node must retain its buffers for the memo")
	}
	leaf, ok := g.Node(taskspec.Key(taskspec.FromSVG{Source: "bg"}))
	if !ok {
		t.Fatal("background node missing")
	}
	if leaf.Retain {
		t.Error("plain nodes must not retain buffers")
	}
}

func TestAddToRejectsBadAlpha(t *testing.T) {
	b := newTestBuilder(t, "stone")
	spec := taskspec.Semitransparent{Base: taskspec.FromSVG{Source: "stone"}, Alpha: 1.5}
	err := b.AddTo(New(), map[string]bool{}, spec)
	if !errors.Is(err, errors.ErrCodeGraphConstruction) {
		t.Errorf("error = %v, want GRAPH_CONSTRUCTION code", err)
	}
}

func TestAddToRejectsEmptyDestinations(t *testing.T) {
	b := newTestBuilder(t, "stone")
	spec := taskspec.PNGOutput{Base: taskspec.FromSVG{Source: "stone"}}
	err := b.AddTo(New(), map[string]bool{}, spec)
	if !errors.Is(err, errors.ErrCodeGraphConstruction) {
		t.Errorf("error = %v, want GRAPH_CONSTRUCTION code", err)
	}
}
