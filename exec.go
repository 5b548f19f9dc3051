package main

import (
	"fmt"
	"strings"
)

type cmd func(ed *Editor, c command, r lineRange) error

var cmds map[cmdKind]cmd

func init() {
	cmds = map[cmdKind]cmd{
		kindPrintAndSet: cmdPrint,
		kindPrint:       cmdPrint,
		kindAppend:      cmdAppend,
		kindInsert:      cmdInsert,
		kindChange:      cmdChange,
		kindDelete:      cmdDelete,
		kindEdit:        cmdEdit,
		kindWrite:       cmdWrite,
	}
}

// exec resolves the address of c and runs it. The buffer is left
// untouched if the address is invalid.
func (ed *Editor) exec(c command) error {
	r, err := resolve(c, len(ed.file.lines), ed.dot)
	if err != nil {
		return err
	}
	ed.log.Printf("%s: range %d,%d dot=%d len=%d\n", c.kind, r.first, r.second, ed.dot, len(ed.file.lines))
	return cmds[c.kind](ed, c, r)
}

// validatePath returns path, or the remembered file name if path is
// empty. err is returned if there is neither.
func (ed *Editor) validatePath(path string, err error) (string, error) {
	if path != "" {
		return path, nil
	}
	if ed.file.path == "" {
		return "", err
	}
	return ed.file.path, nil
}

func cmdPrint(ed *Editor, c command, r lineRange) error {
	fmt.Fprintln(ed.stdout, strings.Join(r.lines(ed.file.lines), "\n"))
	ed.dot = r.second
	return nil
}

func cmdAppend(ed *Editor, c command, r lineRange) error {
	ed.dot = r.first
	ed.mode = &insertMode{at: r.first + 1, dot: ed.dot}
	return nil
}

func cmdInsert(ed *Editor, c command, r lineRange) error {
	at := max(r.first, 1)
	ed.dot = min(at, len(ed.file.lines))
	ed.mode = &insertMode{at: at, dot: ed.dot}
	return nil
}

func cmdChange(ed *Editor, c command, r lineRange) error {
	ed.delete(r)
	ed.mode = &insertMode{at: r.first, dot: ed.dot}
	return nil
}

func cmdDelete(ed *Editor, c command, r lineRange) error {
	ed.delete(r)
	return nil
}

// delete removes the lines in r and makes the line that followed them
// current, or the last line if there is none.
func (ed *Editor) delete(r lineRange) {
	ed.file.delete(r.first, r.second)
	ed.dot = min(r.first, len(ed.file.lines))
}

func cmdEdit(ed *Editor, c command, r lineRange) error {
	path, err := ed.validatePath(c.path, ErrNoFileName)
	if err != nil {
		return err
	}
	return ed.Load(path)
}

func cmdWrite(ed *Editor, c command, r lineRange) error {
	path, err := ed.validatePath(c.path, ErrNoWritePath)
	if err != nil {
		return err
	}
	ed.log.Printf("Write range %d to %d to %s\n", r.first, r.second, path)
	n, err := writeFile(path, r.lines(ed.file.lines))
	if err != nil {
		return err
	}
	ed.file.path = path
	if !ed.silent {
		fmt.Fprintln(ed.stdout, n)
	}
	return nil
}
