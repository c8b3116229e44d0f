// Package span provides the byte-offset source ranges shared by every
// syntax-tree node.
package span

import "fmt"

// Span represents a half-open byte range [Start, End) in source code.
type Span struct {
	Start int `json:"start"` // byte offset of the first byte of the construct
	End   int `json:"end"`   // byte offset one past the last byte
}

// New returns the span [start, end).
func New(start, end int) Span {
	return Span{Start: start, End: end}
}

// Cover returns the span reaching from the start of from through the end
// of to. It is the primitive every composite node location is built from.
func Cover(from, to Span) Span {
	return Span{Start: from.Start, End: to.End}
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// Len returns the byte length of the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Empty reports whether the span covers no bytes.
func (s Span) Empty() bool {
	return s.Start == s.End
}
