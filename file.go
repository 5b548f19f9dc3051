package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

type file struct {
	lines []string // file content
	path  string   // remembered file name
}

// append inserts lines after line dest, 0 meaning before the first line.
func (f *file) append(dest int, lines []string) {
	f.lines = append(f.lines[:dest], append(lines, f.lines[dest:]...)...)
}

// delete removes the lines start to end, inclusive.
func (f *file) delete(start, end int) {
	f.lines = append(f.lines[:start-1], f.lines[end:]...)
}

// readFile reads the file at path into a new file value and returns it
// along with the size of the file in bytes. Lines end in "\n" or "\r\n";
// a missing final newline is not an error.
func readFile(path string) (file, int64, error) {
	fd, err := os.Open(path)
	if err != nil {
		return file{}, 0, fmt.Errorf("%w: %v", ErrCannotOpenFile, err)
	}
	defer fd.Close()
	stat, err := fd.Stat()
	if err != nil {
		return file{}, 0, fmt.Errorf("%w: %v", ErrCannotOpenFile, err)
	}
	f := file{lines: []string{}, path: path}
	r := bufio.NewReader(fd)
	for {
		ln, err := r.ReadString('\n')
		if ln != "" {
			ln = strings.TrimSuffix(ln, "\n")
			f.lines = append(f.lines, strings.TrimSuffix(ln, "\r"))
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return file{}, 0, fmt.Errorf("%w: %v", ErrCannotReadFile, err)
		}
	}
	return f, stat.Size(), nil
}

// writeFile writes lines to path, one per line, and returns the number
// of bytes written. The output always ends in a newline unless lines is
// empty.
func writeFile(path string, lines []string) (int, error) {
	var content string
	if len(lines) > 0 {
		content = strings.Join(lines, "\n")
		if !strings.HasSuffix(content, "\n") {
			content += "\n"
		}
	}
	fd, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrCannotWriteFile, err)
	}
	n, err := fd.WriteString(content)
	if err != nil {
		fd.Close()
		return n, fmt.Errorf("%w: %v", ErrCannotWriteFile, err)
	}
	if err := fd.Close(); err != nil {
		return n, fmt.Errorf("%w: %v", ErrCannotWriteFile, err)
	}
	return n, nil
}
