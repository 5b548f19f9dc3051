package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
)

// Ed is limited to displaying this one error message; the rest are only
// shown in debug mode.
var (
	ErrDefault             = errors.New("?") // descriptive error message, don't you think?
	ErrCannotOpenFile      = errors.New("cannot open input file")
	ErrCannotReadFile      = errors.New("cannot read input file")
	ErrCannotWriteFile     = errors.New("cannot write file")
	ErrInvalidAddress      = errors.New("invalid address")
	ErrInvalidCmdSuffix    = errors.New("invalid command suffix")
	ErrInvalidNumber       = errors.New("number out of range")
	ErrMissingArgument     = errors.New("missing command argument")
	ErrMultipleFiles       = errors.New("multiple file names given")
	ErrNoFileName          = errors.New("no current filename")
	ErrNoWritePath         = errors.New("no filename to write to")
	ErrUnexpectedAddress   = errors.New("unexpected address")
	ErrUnexpectedCmdSuffix = errors.New("unexpected command suffix")
	ErrUnknownCmd          = errors.New("unknown command")
)

type Editor struct {
	file
	input

	dot  int  // current line
	mode mode // command or insert mode

	prompt string // prompt shown in command mode, empty for none
	silent bool   // suppress byte counts
	debug  bool   // print diagnostics to stderr
	script bool   // stdin is not a terminal
	lc     int    // input line count (script mode)

	log *log.Logger

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

type Option func(*Editor)

func WithStdin(stdin io.Reader) Option {
	return func(ed *Editor) {
		ed.stdin = stdin
		ed.input = newInput(ed.stdin)
	}
}

func WithStdout(stdout io.Writer) Option {
	return func(ed *Editor) { ed.stdout = stdout }
}

func WithStderr(stderr io.Writer) Option {
	return func(ed *Editor) { ed.stderr = stderr }
}

func WithSilent(t bool) Option {
	return func(ed *Editor) { ed.silent = t }
}

func WithPrompt(prompt string) Option {
	return func(ed *Editor) { ed.prompt = prompt }
}

func WithDebug(t bool) Option {
	return func(ed *Editor) { ed.debug = t }
}

// WithScript marks stdin as a script rather than a terminal, which
// makes diagnostics carry the input line number.
func WithScript(t bool) Option {
	return func(ed *Editor) { ed.script = t }
}

func NewEditor(opts ...Option) *Editor {
	ed := &Editor{
		file:   file{lines: []string{}},
		mode:   commandMode{},
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	ed.input = newInput(ed.stdin)
	for _, opt := range opts {
		opt(ed)
	}
	ed.log = log.New(io.Discard, "", 0)
	if ed.debug {
		ed.log = log.New(ed.stderr, "led: ", log.Lmsgprefix)
	}
	return ed
}

// Cursor returns the current line. In insert mode it is the line
// number the next inserted line will get, which may be one past the
// last line.
func (ed *Editor) Cursor() int {
	if m, ok := ed.mode.(*insertMode); ok {
		return m.at
	}
	return ed.dot
}

// Lines returns the buffer.
func (ed *Editor) Lines() []string { return ed.file.lines }

// Path returns the remembered file name.
func (ed *Editor) Path() string { return ed.file.path }

// Load replaces the buffer with the contents of path and remembers
// path as the current file name. The size of the file is printed
// unless the editor is silent. Nothing is changed if the file cannot
// be read.
func (ed *Editor) Load(path string) error {
	f, size, err := readFile(path)
	if err != nil {
		return err
	}
	ed.file = f
	ed.dot = len(f.lines)
	ed.mode = commandMode{}
	ed.log.Printf("Loaded %d lines (%d bytes) from %s\n", len(f.lines), size, path)
	if !ed.silent {
		fmt.Fprintln(ed.stdout, size)
	}
	return nil
}

func (ed *Editor) doPrompt() {
	if _, ok := ed.mode.(commandMode); ok && ed.prompt != "" {
		fmt.Fprint(ed.stdout, ed.prompt)
	}
}

func (ed *Editor) errorln(err error) {
	fmt.Fprintln(ed.stdout, ErrDefault)
	if !ed.debug {
		return
	}
	if ed.script {
		fmt.Fprintf(ed.stderr, "line %d: %s\n", ed.lc, err)
		return
	}
	fmt.Fprintln(ed.stderr, err)
}

// Do handles one line of input in the current mode.
func (ed *Editor) Do(line string) error {
	return ed.mode.handle(ed, line)
}

// Run reads and handles lines from stdin until it is exhausted. Errors
// in individual lines are reported and do not stop the loop; only a
// failure to read stdin is returned.
func (ed *Editor) Run() error {
	for {
		ed.doPrompt()
		if !ed.input.Scan() {
			break
		}
		ed.lc++
		if err := ed.Do(ed.input.buf); err != nil {
			ed.errorln(err)
		}
	}
	if err := ed.input.Err(); err != nil {
		ed.errorln(err)
		return err
	}
	return nil
}
