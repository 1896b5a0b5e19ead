// Package menu is the line-oriented front end of fwpath: it parses user
// commands into a closed set of Command values and dispatches them against
// a session-owned graph.
//
// Grammar (one command per line, whitespace separated):
//
//	add vertex <key>
//	add edge <src> <dest> <weight>
//	floyd-warshall
//	display
//	path <from> <to>
//	load <seed.yaml>
//	help
//	quit
//
// Keys are ints and weights int64.
package menu

import "errors"

// Parser errors. All of them are recoverable: the session prints a message
// and keeps reading.
var (
	// ErrEmptyCommand indicates a blank line.
	ErrEmptyCommand = errors.New("menu: empty command")

	// ErrUnknownCommand indicates an unrecognised verb.
	ErrUnknownCommand = errors.New("menu: unknown command")

	// ErrUsage indicates a known verb with the wrong arguments.
	ErrUsage = errors.New("menu: wrong arguments")

	// ErrBadNumber indicates a key or weight that is not an integer.
	ErrBadNumber = errors.New("menu: not an integer")
)

// Command is one parsed menu command. The set of implementations is closed.
type Command interface {
	verb() string
}

// AddVertex is "add vertex <key>".
type AddVertex struct{ Key int }

// AddEdge is "add edge <src> <dest> <weight>".
type AddEdge struct {
	Src, Dest int
	Weight    int64
}

// FloydWarshall is "floyd-warshall": compute and print all shortest paths.
type FloydWarshall struct{}

// Display is "display": print vertices and edges.
type Display struct{}

// ShowPath is "path <from> <to>": print one shortest path.
type ShowPath struct{ From, To int }

// Load is "load <file>": apply a YAML seed file to the graph.
type Load struct{ Path string }

// Help is "help": print the menu.
type Help struct{}

// Quit is "quit": end the session.
type Quit struct{}

func (AddVertex) verb() string     { return "add vertex" }
func (AddEdge) verb() string       { return "add edge" }
func (FloydWarshall) verb() string { return "floyd-warshall" }
func (Display) verb() string       { return "display" }
func (ShowPath) verb() string      { return "path" }
func (Load) verb() string          { return "load" }
func (Help) verb() string          { return "help" }
func (Quit) verb() string          { return "quit" }
