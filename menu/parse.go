package menu

import (
	"fmt"
	"strconv"
	"strings"
)

// Usage lines, also printed by Help.
const (
	usageAddVertex = "add vertex <key>"
	usageAddEdge   = "add edge <src> <dest> <weight>"
	usageFloyd     = "floyd-warshall"
	usageDisplay   = "display"
	usagePath      = "path <from> <to>"
	usageLoad      = "load <seed.yaml>"
	usageHelp      = "help"
	usageQuit      = "quit"
)

// Parse turns one input line into a Command.
//
// Errors:
//   - ErrEmptyCommand: blank line.
//   - ErrUnknownCommand: unrecognised verb.
//   - ErrUsage: wrong number of arguments (message carries the usage line).
//   - ErrBadNumber: a key or weight is not a base-10 integer.
func Parse(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, ErrEmptyCommand
	}

	switch strings.ToLower(fields[0]) {
	case "add":
		if len(fields) < 2 {
			return nil, usage(usageAddVertex + " | " + usageAddEdge)
		}
		switch strings.ToLower(fields[1]) {
		case "vertex":
			if len(fields) != 3 {
				return nil, usage(usageAddVertex)
			}
			key, err := parseKey(fields[2])
			if err != nil {
				return nil, err
			}
			return AddVertex{Key: key}, nil
		case "edge":
			if len(fields) != 5 {
				return nil, usage(usageAddEdge)
			}
			src, err := parseKey(fields[2])
			if err != nil {
				return nil, err
			}
			dest, err := parseKey(fields[3])
			if err != nil {
				return nil, err
			}
			weight, err := strconv.ParseInt(fields[4], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrBadNumber, fields[4])
			}
			return AddEdge{Src: src, Dest: dest, Weight: weight}, nil
		default:
			return nil, fmt.Errorf("%w: add %s", ErrUnknownCommand, fields[1])
		}

	case "floyd-warshall", "fw":
		if len(fields) != 1 {
			return nil, usage(usageFloyd)
		}
		return FloydWarshall{}, nil

	case "display":
		if len(fields) != 1 {
			return nil, usage(usageDisplay)
		}
		return Display{}, nil

	case "path":
		if len(fields) != 3 {
			return nil, usage(usagePath)
		}
		from, err := parseKey(fields[1])
		if err != nil {
			return nil, err
		}
		to, err := parseKey(fields[2])
		if err != nil {
			return nil, err
		}
		return ShowPath{From: from, To: to}, nil

	case "load":
		if len(fields) != 2 {
			return nil, usage(usageLoad)
		}
		return Load{Path: fields[1]}, nil

	case "help", "?":
		return Help{}, nil

	case "quit", "exit":
		return Quit{}, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, fields[0])
}

func parseKey(s string) (int, error) {
	key, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadNumber, s)
	}

	return key, nil
}

func usage(line string) error {
	return fmt.Errorf("%w: usage: %s", ErrUsage, line)
}
