package parse

import "errors"

// ErrParseError is the sentinel wrapped around any malformed netlist or
// stimulus line: unknown statement keyword, wrong argument count, an
// unparseable delay, or an unrecognized logic value.
var ErrParseError = errors.New("parse: malformed line")
