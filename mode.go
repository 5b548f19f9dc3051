package main

// mode decides what a line of user input means.
type mode interface {
	handle(ed *Editor, line string) error
}

// commandMode parses each line as a command and executes it.
type commandMode struct{}

func (commandMode) handle(ed *Editor, line string) error {
	c, err := parseCommand(line)
	if err != nil {
		return err
	}
	return ed.exec(c)
}

// insertMode adds each line to the buffer until a line containing a
// single period is seen.
type insertMode struct {
	at  int // line number of the next inserted line
	dot int // current line once insert mode is left
}

func (m *insertMode) handle(ed *Editor, line string) error {
	if line == "." {
		ed.dot = m.dot
		ed.mode = commandMode{}
		return nil
	}
	ed.file.append(m.at-1, []string{line})
	m.dot = m.at
	m.at++
	ed.dot = m.dot
	return nil
}
