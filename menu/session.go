package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/fwpath/config"
	"github.com/katalvlaran/fwpath/core"
	"github.com/katalvlaran/fwpath/floyd"
	"github.com/rs/zerolog"
)

// Graph is the graph type driven by the menu.
type Graph = core.Graph[int, int64]

// Session owns one graph and writes all user-facing output to out.
// It is not safe for concurrent use.
type Session struct {
	graph  *Graph
	out    io.Writer
	log    zerolog.Logger
	prompt string
	banner bool
	styled bool
	styles styles
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithLogger routes session and engine diagnostics to l.
func WithLogger(l zerolog.Logger) SessionOption {
	return func(s *Session) { s.log = l }
}

// WithPrompt replaces the input prompt.
func WithPrompt(p string) SessionOption {
	return func(s *Session) { s.prompt = p }
}

// WithBanner toggles printing the menu when Run starts.
func WithBanner(on bool) SessionOption {
	return func(s *Session) { s.banner = on }
}

// WithPlainOutput disables all styling.
func WithPlainOutput() SessionOption {
	return func(s *Session) { s.styled = false }
}

// WithGraph makes the session drive g instead of a fresh graph.
func WithGraph(g *Graph) SessionOption {
	return func(s *Session) { s.graph = g }
}

// NewSession creates a session writing to out.
func NewSession(out io.Writer, opts ...SessionOption) *Session {
	s := &Session{
		out:    out,
		log:    zerolog.Nop(),
		prompt: config.DefaultPrompt,
		banner: true,
		styled: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.graph == nil {
		s.graph = core.NewGraph[int, int64]()
	}
	s.styles = newStyles(out, s.styled)

	return s
}

// Graph returns the session graph.
func (s *Session) Graph() *Graph { return s.graph }

// IsRecoverable reports whether err is a usage or domain rejection that the
// session has already reported to the user. Anything else (I/O) ends Run.
func IsRecoverable(err error) bool {
	for _, target := range []error{
		ErrEmptyCommand, ErrUnknownCommand, ErrUsage, ErrBadNumber,
		core.ErrDuplicateVertex, core.ErrDuplicateEdge, core.ErrUnknownVertex, core.ErrBadWeight,
		config.ErrInvalidSeed,
	} {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}

// Execute runs one command and prints its outcome.
//
// A rejected command returns the core or config sentinel that caused it
// (see IsRecoverable) after printing the user message; the graph is left
// unchanged. quit is true only for Quit.
func (s *Session) Execute(cmd Command) (quit bool, err error) {
	log := s.log.With().Str("command", cmd.verb()).Logger()

	switch c := cmd.(type) {
	case AddVertex:
		err = s.addVertex(c)
	case AddEdge:
		err = s.addEdge(c)
	case FloydWarshall:
		err = s.floydWarshall()
	case Display:
		err = s.display()
	case ShowPath:
		err = s.showPath(c)
	case Load:
		err = s.load(c)
	case Help:
		err = s.printMenu()
	case Quit:
		log.Debug().Msg("session closed")
		return true, nil
	default:
		err = fmt.Errorf("%w: %T", ErrUnknownCommand, cmd)
	}

	switch {
	case err == nil:
		log.Debug().Int("vertices", s.graph.VertexCount()).Int("edges", s.graph.EdgeCount()).Msg("command executed")
	case IsRecoverable(err):
		log.Warn().Err(err).Msg("command rejected")
	default:
		log.Error().Err(err).Msg("command failed")
	}

	return false, err
}

// Run prints the menu (if enabled) and executes commands read from in until
// quit, end of input, or ctx is done. Recoverable errors are reported and
// skipped; the first I/O error is returned.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	if s.banner {
		if err := s.printMenu(); err != nil {
			return err
		}
	}

	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := io.WriteString(s.out, s.prompt); err != nil {
			return err
		}
		if !scanner.Scan() {
			return scanner.Err()
		}

		cmd, err := Parse(scanner.Text())
		if errors.Is(err, ErrEmptyCommand) {
			continue
		}
		if err != nil {
			s.log.Warn().Err(err).Str("input", scanner.Text()).Msg("parse failed")
			if werr := s.printf(s.styles.warn, "%s\n", userMessage(err)); werr != nil {
				return werr
			}
			continue
		}

		quit, err := s.Execute(cmd)
		if err != nil && !IsRecoverable(err) {
			return err
		}
		if quit {
			return nil
		}
	}
}

// Apply adds every vertex then every edge of seed, reporting each rejection
// like the interactive commands do. The joined rejections are returned.
//
// A seed that fails validation (for example an edge without an endpoint)
// is reported and rejected with config.ErrInvalidSeed before the graph is
// touched.
func (s *Session) Apply(seed *config.Seed) error {
	if err := seed.Validate(); err != nil {
		if werr := s.printf(s.styles.warn, "Invalid seed: %v\n", err); werr != nil {
			return werr
		}
		return err
	}

	var errs []error
	for _, key := range seed.Vertices {
		if err := s.addVertex(AddVertex{Key: key}); err != nil {
			if !IsRecoverable(err) {
				return err
			}
			errs = append(errs, err)
		}
	}
	for _, e := range seed.Edges {
		if err := s.addEdge(AddEdge{Src: *e.Src, Dest: *e.Dest, Weight: e.Weight}); err != nil {
			if !IsRecoverable(err) {
				return err
			}
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (s *Session) addVertex(c AddVertex) error {
	if s.graph.HasVertex(c.Key) {
		if err := s.printf(s.styles.warn, "Vertex already exists.\n"); err != nil {
			return err
		}
		return fmt.Errorf("%w: %d", core.ErrDuplicateVertex, c.Key)
	}

	return s.graph.AddVertex(c.Key)
}

func (s *Session) addEdge(c AddEdge) error {
	for _, key := range []int{c.Src, c.Dest} {
		if !s.graph.HasVertex(key) {
			if err := s.printf(s.styles.warn, "Vertex %d does not exist.\n", key); err != nil {
				return err
			}
			return fmt.Errorf("%w: %d", core.ErrUnknownVertex, key)
		}
	}
	if s.graph.HasEdge(c.Src, c.Dest) {
		if err := s.printf(s.styles.warn, "Edge already exists.\n"); err != nil {
			return err
		}
		return fmt.Errorf("%w: %d→%d", core.ErrDuplicateEdge, c.Src, c.Dest)
	}

	return s.graph.AddEdge(c.Src, c.Dest, c.Weight)
}

func (s *Session) floydWarshall() error {
	dist, next := floyd.Run(s.graph, floyd.WithLogger(s.log))

	if err := s.printf(s.styles.title, "Shortest distances:\n"); err != nil {
		return err
	}
	keys := dist.Keys()
	for _, start := range keys {
		for _, end := range keys {
			if _, ok := next.At(start, end); !ok {
				continue
			}
			if err := s.printPath(dist, next, start, end); err != nil {
				return err
			}
		}
	}

	return nil
}

func (s *Session) showPath(c ShowPath) error {
	for _, key := range []int{c.From, c.To} {
		if !s.graph.HasVertex(key) {
			if err := s.printf(s.styles.warn, "Vertex %d does not exist.\n", key); err != nil {
				return err
			}
			return fmt.Errorf("%w: %d", core.ErrUnknownVertex, key)
		}
	}

	// Tables are recomputed per query; they are never patched.
	dist, next := floyd.Run(s.graph, floyd.WithLogger(s.log))
	if !floyd.PathExists(next, dist, c.From, c.To) {
		return s.printf(s.styles.plain, "No path from %d to %d.\n", c.From, c.To)
	}

	return s.printPath(dist, next, c.From, c.To)
}

func (s *Session) load(c Load) error {
	seed, err := config.LoadSeed(c.Path)
	if err != nil {
		if werr := s.printf(s.styles.warn, "Cannot load %s: %v\n", c.Path, err); werr != nil {
			return werr
		}
		return err
	}

	v0, e0 := s.graph.VertexCount(), s.graph.EdgeCount()
	err = s.Apply(seed)
	if err != nil && !IsRecoverable(err) {
		return err
	}
	if werr := s.printf(s.styles.plain, "Loaded %d vertices and %d edges from %s.\n",
		s.graph.VertexCount()-v0, s.graph.EdgeCount()-e0, c.Path); werr != nil {
		return werr
	}

	return err
}
