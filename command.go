package main

import (
	"unicode"
)

type cmdKind int

const (
	kindPrintAndSet cmdKind = iota // bare address, or an empty line
	kindPrint
	kindAppend
	kindInsert
	kindChange
	kindDelete
	kindEdit
	kindWrite
)

func (k cmdKind) String() string {
	switch k {
	case kindPrintAndSet:
		return "print-and-set"
	case kindPrint:
		return "p"
	case kindAppend:
		return "a"
	case kindInsert:
		return "i"
	case kindChange:
		return "c"
	case kindDelete:
		return "d"
	case kindEdit:
		return "e"
	case kindWrite:
		return "w"
	}
	return "?"
}

// verbs maps the command characters that take no argument.
var verbs = map[rune]cmdKind{
	'p': kindPrint,
	'a': kindAppend,
	'i': kindInsert,
	'c': kindChange,
	'd': kindDelete,
}

// command is one parsed line of user input in command mode.
type command struct {
	addr *address
	kind cmdKind
	path string // e and w only, empty means the remembered file name
}

// parseCommand parses a full command line: an optional address, the
// command character and, for e and w, a file name.
func parseCommand(line string) (command, error) {
	var in input
	in.doInput(line)
	addr, err := parseAddress(&in)
	if err != nil {
		return command{}, err
	}
	c := command{addr: addr}
	r := in.token()
	in.consume()
	switch r {
	case EOF:
		c.kind = kindPrintAndSet
	case 'e', 'w':
		c.kind = kindEdit
		if r == 'w' {
			c.kind = kindWrite
		}
		if c.path, err = parsePath(&in, r == 'e'); err != nil {
			return command{}, err
		}
	default:
		kind, ok := verbs[r]
		if !ok {
			return command{}, ErrUnknownCmd
		}
		c.kind = kind
	}
	if !in.eof() {
		return command{}, ErrInvalidCmdSuffix
	}
	return c, nil
}

// parsePath parses the optional file name following e or w. The name
// must be separated from the command by exactly one white space
// character; anything after the separator is taken verbatim. If
// required is set, a separator followed by nothing is an error.
func parsePath(in *input, required bool) (string, error) {
	if in.eof() {
		return "", nil
	}
	if _, ok := in.consumeIf(unicode.IsSpace); !ok {
		return "", ErrUnexpectedCmdSuffix
	}
	path := in.rest()
	if path == "" && required {
		return "", ErrMissingArgument
	}
	return path, nil
}
