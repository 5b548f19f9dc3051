package main

// lineRange is an inclusive, 1-based range of lines. The zero value
// means no range, which is what e resolves to. An empty range
// (first > second) is only produced for a w on an empty buffer.
type lineRange struct {
	first  int
	second int
}

// lines returns the addressed lines of buf.
func (r lineRange) lines(buf []string) []string {
	if r.first > r.second {
		return nil
	}
	return buf[r.first-1 : r.second]
}

func (t addrToken) resolve(length int) int {
	if t.dollar {
		return length
	}
	return t.n
}

// resolve turns the address of c into a validated line range, given
// the buffer length and the current line. Commands without an address
// use a default range that depends on the command. Both ends of the
// range must lie within the buffer and must not be reversed, except
// that a and i may also address line 0, the gap before the first line.
func resolve(c command, length, dot int) (lineRange, error) {
	var r lineRange
	switch {
	case c.kind == kindEdit:
		if c.addr != nil {
			return lineRange{}, ErrUnexpectedAddress
		}
		return lineRange{}, nil
	case c.addr != nil:
		r.first = c.addr.first.resolve(length)
		r.second = r.first
		if c.addr.second != nil {
			r.second = c.addr.second.resolve(length)
		}
	case c.kind == kindPrintAndSet:
		r = lineRange{first: dot + 1, second: dot + 1}
	case c.kind == kindWrite:
		if length == 0 {
			return lineRange{first: 1, second: 0}, nil
		}
		r = lineRange{first: 1, second: length}
	default:
		r = lineRange{first: dot, second: dot}
	}
	low := 1
	if c.kind == kindAppend || c.kind == kindInsert {
		low = 0
	}
	if r.first < low || r.first > r.second || r.second > length {
		return lineRange{}, ErrInvalidAddress
	}
	return r, nil
}
