package menu_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/fwpath/config"
	"github.com/katalvlaran/fwpath/core"
	"github.com/katalvlaran/fwpath/menu"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const squareScript = `add vertex 1
add vertex 2
add vertex 3
add vertex 4
add edge 1 2 3
add edge 2 3 4
add edge 1 3 8
add edge 3 4 2
add edge 4 1 1
`

func newTestSession(out *bytes.Buffer, opts ...menu.SessionOption) *menu.Session {
	base := []menu.SessionOption{
		menu.WithPlainOutput(),
		menu.WithBanner(false),
		menu.WithPrompt(""),
	}

	return menu.NewSession(out, append(base, opts...)...)
}

func TestRun_FloydWarshallListing(t *testing.T) {
	var out bytes.Buffer
	s := newTestSession(&out)

	err := s.Run(context.Background(), strings.NewReader(squareScript+"floyd-warshall\nquit\n"))
	require.NoError(t, err)

	want := `Shortest distances:
From 1 to 2: 1 -> 2 (distance 3)
From 1 to 3: 1 -> 2 -> 3 (distance 7)
From 1 to 4: 1 -> 2 -> 3 -> 4 (distance 9)
From 2 to 1: 2 -> 3 -> 4 -> 1 (distance 7)
From 2 to 3: 2 -> 3 (distance 4)
From 2 to 4: 2 -> 3 -> 4 (distance 6)
From 3 to 1: 3 -> 4 -> 1 (distance 3)
From 3 to 2: 3 -> 4 -> 1 -> 2 (distance 6)
From 3 to 4: 3 -> 4 (distance 2)
From 4 to 1: 4 -> 1 (distance 1)
From 4 to 2: 4 -> 1 -> 2 (distance 4)
From 4 to 3: 4 -> 1 -> 2 -> 3 (distance 8)
`
	assert.Equal(t, want, out.String())
}

func TestRun_Display(t *testing.T) {
	var out bytes.Buffer
	s := newTestSession(&out)

	require.NoError(t, s.Run(context.Background(), strings.NewReader("add vertex 2\nadd vertex 1\nadd edge 2 1 5\ndisplay\n")))

	assert.Equal(t, "Vertices: 2 1\nEdges:\n(src=2, dest=1, weight=5)\n\n", out.String())
}

func TestRun_RecoverableMessages(t *testing.T) {
	var out bytes.Buffer
	s := newTestSession(&out)

	script := `add vertex 1
add vertex 1
add edge 1 2 5
add vertex 2
add edge 1 2 5
add edge 1 2 9
add edge 1 two 9
frobnicate
add vertex
quit
display
`
	require.NoError(t, s.Run(context.Background(), strings.NewReader(script)))

	want := `Vertex already exists.
Vertex 2 does not exist.
Edge already exists.
Not an integer: "two"
Unknown command. Type 'help' for the menu.
Usage: add vertex <key>
`
	assert.Equal(t, want, out.String(), "display after quit must not run")

	w, ok := s.Graph().EdgeWeight(1, 2)
	require.True(t, ok)
	assert.Equal(t, int64(5), w, "rejected duplicate must not overwrite the weight")
}

func TestRun_BannerAndPrompt(t *testing.T) {
	var out bytes.Buffer
	s := menu.NewSession(&out, menu.WithPlainOutput(), menu.WithPrompt("> "))

	require.NoError(t, s.Run(context.Background(), strings.NewReader("\nquit\n")))

	got := out.String()
	assert.True(t, strings.HasPrefix(got, "Menu\nadd vertex <key>\nadd edge <src> <dest> <weight>\n"))
	assert.Contains(t, got, "floyd-warshall\ndisplay\n")
	assert.True(t, strings.HasSuffix(got, "quit\n> > "), "blank lines re-prompt: %q", got)
}

func TestRun_EOFEndsSession(t *testing.T) {
	var out bytes.Buffer
	s := newTestSession(&out)

	require.NoError(t, s.Run(context.Background(), strings.NewReader("add vertex 9")))
	assert.True(t, s.Graph().HasVertex(9))
}

func TestRun_ContextCancelled(t *testing.T) {
	var out bytes.Buffer
	s := newTestSession(&out)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Run(ctx, strings.NewReader("add vertex 1\n"))
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, s.Graph().HasVertex(1))
}

type failingWriter struct{}

var errDiskFull = errors.New("disk full")

func (failingWriter) Write([]byte) (int, error) { return 0, errDiskFull }

func TestRun_WriteErrorEndsSession(t *testing.T) {
	s := menu.NewSession(failingWriter{}, menu.WithPlainOutput(), menu.WithBanner(false))

	err := s.Run(context.Background(), strings.NewReader("display\n"))
	require.ErrorIs(t, err, errDiskFull)
	assert.False(t, menu.IsRecoverable(err))
}

func TestExecute_ReturnsDomainErrors(t *testing.T) {
	var out bytes.Buffer
	s := newTestSession(&out)

	_, err := s.Execute(menu.AddVertex{Key: 1})
	require.NoError(t, err)

	_, err = s.Execute(menu.AddVertex{Key: 1})
	assert.ErrorIs(t, err, core.ErrDuplicateVertex)

	_, err = s.Execute(menu.AddEdge{Src: 1, Dest: 3, Weight: 1})
	assert.ErrorIs(t, err, core.ErrUnknownVertex)

	_, err = s.Execute(menu.AddEdge{Src: 1, Dest: 1, Weight: 1})
	require.NoError(t, err)
	_, err = s.Execute(menu.AddEdge{Src: 1, Dest: 1, Weight: 2})
	assert.ErrorIs(t, err, core.ErrDuplicateEdge)

	quit, err := s.Execute(menu.Quit{})
	require.NoError(t, err)
	assert.True(t, quit)
}

func TestExecute_ShowPath(t *testing.T) {
	var out bytes.Buffer
	s := newTestSession(&out)
	require.NoError(t, s.Run(context.Background(), strings.NewReader(squareScript+"add vertex 5\n")))
	out.Reset()

	_, err := s.Execute(menu.ShowPath{From: 4, To: 3})
	require.NoError(t, err)
	_, err = s.Execute(menu.ShowPath{From: 2, To: 2})
	require.NoError(t, err)
	_, err = s.Execute(menu.ShowPath{From: 1, To: 5})
	require.NoError(t, err)
	_, err = s.Execute(menu.ShowPath{From: 1, To: 6})
	require.ErrorIs(t, err, core.ErrUnknownVertex)

	want := `From 4 to 3: 4 -> 1 -> 2 -> 3 (distance 8)
From 2 to 2: 2 (distance 0)
No path from 1 to 5.
Vertex 6 does not exist.
`
	assert.Equal(t, want, out.String())
}

func TestExecute_ShowPathSeesLaterEdges(t *testing.T) {
	var out bytes.Buffer
	s := newTestSession(&out)
	require.NoError(t, s.Run(context.Background(), strings.NewReader(squareScript)))

	_, err := s.Execute(menu.AddEdge{Src: 1, Dest: 4, Weight: 1})
	require.NoError(t, err)
	out.Reset()

	_, err = s.Execute(menu.ShowPath{From: 1, To: 4})
	require.NoError(t, err)
	assert.Equal(t, "From 1 to 4: 1 -> 4 (distance 1)\n", out.String())
}

func TestExecute_LoadSeed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
vertices: [1, 2, 3]
edges:
  - {src: 1, dest: 2, weight: 3}
  - {src: 2, dest: 3, weight: 4}
  - {src: 3, dest: 9, weight: 1}
`), 0o600))

	var out bytes.Buffer
	s := newTestSession(&out)
	_, err := s.Execute(menu.AddVertex{Key: 1})
	require.NoError(t, err)

	_, err = s.Execute(menu.Load{Path: path})
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrDuplicateVertex)
	assert.ErrorIs(t, err, core.ErrUnknownVertex)
	assert.True(t, menu.IsRecoverable(err))

	assert.Equal(t, 3, s.Graph().VertexCount())
	assert.Equal(t, 2, s.Graph().EdgeCount())
	assert.Equal(t, "Vertex already exists.\nVertex 9 does not exist.\nLoaded 2 vertices and 2 edges from "+path+".\n", out.String())
}

func TestExecute_LoadMissingSeed(t *testing.T) {
	var out bytes.Buffer
	s := newTestSession(&out)

	_, err := s.Execute(menu.Load{Path: filepath.Join(t.TempDir(), "none.yaml")})
	require.ErrorIs(t, err, config.ErrInvalidSeed)
	assert.True(t, menu.IsRecoverable(err))
	assert.True(t, strings.HasPrefix(out.String(), "Cannot load "))
}

func TestApply_Seed(t *testing.T) {
	seed, err := config.ParseSeed([]byte("vertices: [0, 1]\nedges:\n  - {src: 0, dest: 1, weight: 2}\n"))
	require.NoError(t, err)

	g := core.NewGraph[int, int64]()
	var out bytes.Buffer
	s := newTestSession(&out, menu.WithGraph(g))

	require.NoError(t, s.Apply(seed))
	assert.Same(t, g, s.Graph())
	assert.True(t, g.HasEdge(0, 1))
	assert.Empty(t, out.String())
}

func TestExecute_LogsOutcomes(t *testing.T) {
	var out, logs bytes.Buffer
	logger := zerolog.New(&logs).Level(zerolog.DebugLevel)
	s := newTestSession(&out, menu.WithLogger(logger))

	_, _ = s.Execute(menu.AddVertex{Key: 1})
	_, _ = s.Execute(menu.AddVertex{Key: 1})
	_, _ = s.Execute(menu.FloydWarshall{})

	got := logs.String()
	assert.Contains(t, got, `"command":"add vertex"`)
	assert.Contains(t, got, `"message":"command executed"`)
	assert.Contains(t, got, `"level":"warn"`)
	assert.Contains(t, got, `"message":"command rejected"`)
	assert.Contains(t, got, `"message":"floyd-warshall complete"`)
}

func TestStyledOutput_KeepsContent(t *testing.T) {
	var out bytes.Buffer
	s := menu.NewSession(&out, menu.WithBanner(false), menu.WithPrompt(""))

	require.NoError(t, s.Run(context.Background(), strings.NewReader(squareScript+"floyd-warshall\n")))
	assert.Contains(t, out.String(), "Shortest distances:")
	assert.Contains(t, out.String(), "1 -> 2 -> 3 -> 4")
}

func TestApply_RejectsSeedWithMissingEndpoint(t *testing.T) {
	src := 0
	seed := &config.Seed{
		Vertices: []int{0, 1},
		Edges:    []config.SeedEdge{{Src: &src, Weight: 2}},
	}

	var out bytes.Buffer
	s := newTestSession(&out)

	var err error
	require.NotPanics(t, func() { err = s.Apply(seed) })
	require.ErrorIs(t, err, config.ErrInvalidSeed)
	assert.True(t, menu.IsRecoverable(err))
	assert.Zero(t, s.Graph().VertexCount(), "an invalid seed must not touch the graph")
	assert.True(t, strings.HasPrefix(out.String(), "Invalid seed: "))

	require.ErrorIs(t, s.Apply(nil), config.ErrInvalidSeed)
}

func TestRun_OverflowingPathIsNotListed(t *testing.T) {
	var out bytes.Buffer
	s := newTestSession(&out)

	script := `add vertex 1
add vertex 2
add vertex 3
add edge 1 2 9223372036854775807
add edge 2 3 9223372036854775807
floyd-warshall
path 1 3
`
	require.NoError(t, s.Run(context.Background(), strings.NewReader(script)))

	want := `Shortest distances:
From 1 to 2: 1 -> 2 (distance 9223372036854775807)
From 2 to 3: 2 -> 3 (distance 9223372036854775807)
No path from 1 to 3.
`
	assert.Equal(t, want, out.String())
}
