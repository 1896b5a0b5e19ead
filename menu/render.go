package menu

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/katalvlaran/fwpath/floyd"
)

// styles groups the lipgloss styles of one session. The renderer is bound
// to the session writer, so non-terminal writers get plain text.
type styles struct {
	title lipgloss.Style
	warn  lipgloss.Style
	path  lipgloss.Style
	plain lipgloss.Style
}

func newStyles(out io.Writer, styled bool) styles {
	if !styled {
		plain := lipgloss.NewStyle()
		return styles{title: plain, warn: plain, path: plain, plain: plain}
	}

	r := lipgloss.NewRenderer(out)
	return styles{
		title: r.NewStyle().Bold(true),
		warn:  r.NewStyle().Foreground(lipgloss.Color("3")),
		path:  r.NewStyle().Foreground(lipgloss.Color("6")),
		plain: r.NewStyle(),
	}
}

// printf renders one formatted chunk with st. A trailing newline is kept
// outside the style so that escape sequences never span lines.
func (s *Session) printf(st lipgloss.Style, format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	body, nl := strings.CutSuffix(text, "\n")
	if body != "" {
		body = st.Render(body)
	}
	if nl {
		body += "\n"
	}
	_, err := io.WriteString(s.out, body)

	return err
}

// printPath writes "From u to v: u -> … -> v (distance d)".
func (s *Session) printPath(dist *floyd.Distances[int, int64], next *floyd.NextHops[int], u, v int) error {
	var hops []string
	for k := range next.Path(u, v) {
		hops = append(hops, strconv.Itoa(k))
	}
	d, _ := dist.At(u, v)

	line := fmt.Sprintf("From %d to %d: %s (distance %d)",
		u, v, s.styles.path.Render(strings.Join(hops, " -> ")), d)

	return s.printf(s.styles.plain, "%s\n", line)
}

// display writes the vertex list in insertion order, then one line per edge
// and a closing blank line.
func (s *Session) display() error {
	keys := make([]string, 0, s.graph.VertexCount())
	for v := range s.graph.Vertices() {
		keys = append(keys, strconv.Itoa(v.Key()))
	}
	if err := s.printf(s.styles.title, "Vertices: %s\n", strings.Join(keys, " ")); err != nil {
		return err
	}

	if err := s.printf(s.styles.title, "Edges:\n"); err != nil {
		return err
	}
	for e := range s.graph.Edges() {
		if err := s.printf(s.styles.plain, "(src=%d, dest=%d, weight=%d)\n", e.From, e.To, e.Weight); err != nil {
			return err
		}
	}

	return s.printf(s.styles.plain, "\n")
}

// printMenu writes the command summary.
func (s *Session) printMenu() error {
	if err := s.printf(s.styles.title, "Menu\n"); err != nil {
		return err
	}
	for _, line := range []string{
		usageAddVertex, usageAddEdge, usageFloyd, usageDisplay,
		usagePath, usageLoad, usageHelp, usageQuit,
	} {
		if err := s.printf(s.styles.plain, "%s\n", line); err != nil {
			return err
		}
	}

	return nil
}

// userMessage turns a parser error into the line shown to the user.
func userMessage(err error) string {
	switch {
	case errors.Is(err, ErrUsage):
		_, detail, _ := strings.Cut(err.Error(), "usage: ")
		return "Usage: " + detail
	case errors.Is(err, ErrBadNumber):
		_, detail, _ := strings.Cut(err.Error(), ": ")
		_, detail, _ = strings.Cut(detail, ": ")
		return "Not an integer: " + detail
	case errors.Is(err, ErrUnknownCommand):
		return "Unknown command. Type 'help' for the menu."
	}

	return err.Error()
}
