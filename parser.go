package main

import (
	"fmt"
	"strconv"
)

// addrToken is a single line locator: either the last line ($) or a
// literal line number.
type addrToken struct {
	dollar bool
	n      int
}

func (t addrToken) String() string {
	if t.dollar {
		return "$"
	}
	return strconv.Itoa(t.n)
}

// address is one token, or a range of two when second is set.
type address struct {
	first  addrToken
	second *addrToken
}

func (a address) String() string {
	if a.second == nil {
		return a.first.String()
	}
	return a.first.String() + "," + a.second.String()
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isAddrStart(r rune) bool { return r == '$' || isDigit(r) }

// parseAddress parses the optional address at the start of the user
// input. A nil address means none was given. A trailing comma with no
// second token is tolerated and yields a single address.
func parseAddress(in *input) (*address, error) {
	first, ok, err := parseAddrToken(in)
	if err != nil || !ok {
		return nil, err
	}
	addr := &address{first: first}
	if _, ok := in.consumeIf(func(r rune) bool { return r == ',' }); !ok {
		return addr, nil
	}
	second, ok, err := parseAddrToken(in)
	if err != nil {
		return nil, err
	}
	if ok {
		addr.second = &second
	}
	return addr, nil
}

// parseAddrToken parses '$' or a run of decimal digits. ok is false if
// the current token starts neither.
func parseAddrToken(in *input) (addrToken, bool, error) {
	if !isAddrStart(in.token()) {
		return addrToken{}, false, nil
	}
	if _, ok := in.consumeIf(func(r rune) bool { return r == '$' }); ok {
		return addrToken{dollar: true}, true, nil
	}
	digits := in.consumeWhile(isDigit)
	n, err := strconv.Atoi(digits)
	if err != nil {
		return addrToken{}, false, fmt.Errorf("%w: %s", ErrInvalidNumber, digits)
	}
	return addrToken{n: n}, true, nil
}
