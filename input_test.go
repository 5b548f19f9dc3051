package main

import (
	"strings"
	"testing"
	"unicode"
)

func TestInputWalk(t *testing.T) {
	var in input
	in.doInput("12,$pé")
	if got := in.consumeWhile(unicode.IsDigit); got != "12" {
		t.Fatalf("want %q, got %q", "12", got)
	}
	if r, ok := in.consumeIf(func(r rune) bool { return r == '$' }); ok {
		t.Fatalf("consumed %q, want nothing", r)
	}
	if r, ok := in.consumeIf(func(r rune) bool { return r == ',' }); !ok || r != ',' {
		t.Fatalf("want ',', got %q (ok=%t)", r, ok)
	}
	if in.token() != '$' {
		t.Fatalf("want '$', got %q", in.token())
	}
	in.consume()
	if got := in.rest(); got != "pé" {
		t.Fatalf("want %q, got %q", "pé", got)
	}
	if !in.eof() || in.token() != EOF {
		t.Fatalf("want EOF, got %q at %d", in.token(), in.pos)
	}
	in.consume()
	if got := in.consumeWhile(func(rune) bool { return true }); got != "" {
		t.Fatalf("want empty run at EOF, got %q", got)
	}
}

func TestInputMultibyte(t *testing.T) {
	var in input
	in.doInput("ééx")
	got := in.consumeWhile(func(r rune) bool { return r == 'é' })
	if got != "éé" || in.pos != len("éé") {
		t.Fatalf("want %q at %d, got %q at %d", "éé", len("éé"), got, in.pos)
	}
}

func TestInputScan(t *testing.T) {
	in := newInput(strings.NewReader("1p\r\n\nlast"))
	var got []string
	for in.Scan() {
		got = append(got, in.buf)
		if in.pos != 0 {
			t.Fatalf("line %q: want position 0, got %d", in.buf, in.pos)
		}
	}
	want := []string{"1p\r", "", "last"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestInputScanLongLine(t *testing.T) {
	long := strings.Repeat("x", 2<<20)
	in := newInput(strings.NewReader(long + "\n1p\n"))
	if !in.Scan() || in.buf != long {
		t.Fatalf("want a line of %d bytes, got %d", len(long), len(in.buf))
	}
	if !in.Scan() || in.buf != "1p" {
		t.Fatalf("want %q after the long line, got %q", "1p", in.buf)
	}
	if in.Scan() {
		t.Fatalf("want end of input, got %q", in.buf)
	}
	if err := in.Err(); err != nil {
		t.Fatal(err)
	}
}
