package main

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"unicode/utf8"
)

const EOF rune = -1

// input reads one line at a time and walks it forward, rune by rune.
// pos is a byte offset into buf and never decreases.
type input struct {
	*bufio.Reader
	buf string
	pos int
	err error
}

func newInput(r io.Reader) input {
	return input{Reader: bufio.NewReader(r)}
}

func (i *input) doInput(s string) { i.buf, i.pos = s, 0 }

func (i *input) eof() bool { return i.pos >= len(i.buf) }

func (i *input) consume() {
	if i.eof() {
		return
	}
	_, n := utf8.DecodeRuneInString(i.buf[i.pos:])
	i.pos += n
}

func (i *input) token() rune {
	if i.eof() {
		return EOF
	}
	tok, _ := utf8.DecodeRuneInString(i.buf[i.pos:])
	return tok
}

// consumeIf consumes the current token if f reports true for it.
func (i *input) consumeIf(f func(rune) bool) (rune, bool) {
	r := i.token()
	if r == EOF || !f(r) {
		return r, false
	}
	i.consume()
	return r, true
}

// consumeWhile consumes the longest run of tokens accepted by f and
// returns the slice of the line they cover.
func (i *input) consumeWhile(f func(rune) bool) string {
	start := i.pos
	for !i.eof() && f(i.token()) {
		i.consume()
	}
	return i.buf[start:i.pos]
}

// rest consumes the remainder of the line verbatim.
func (i *input) rest() string {
	s := i.buf[i.pos:]
	i.pos = len(i.buf)
	return s
}

// Scan reads the next line and rewinds onto it. Only the newline is
// stripped; a final line without one is still returned. Lines may be
// of any length.
func (i *input) Scan() bool {
	if i.err != nil {
		return false
	}
	ln, err := i.ReadString('\n')
	if err != nil {
		i.err = err
		if ln == "" {
			return false
		}
	}
	i.doInput(strings.TrimSuffix(ln, "\n"))
	return true
}

// Err returns the first read error other than io.EOF.
func (i *input) Err() error {
	if errors.Is(i.err, io.EOF) {
		return nil
	}
	return i.err
}
