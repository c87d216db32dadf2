package postgres

import (
	"fmt"
	"strings"
)

// setClause accumulates the SET fragment of a partial UPDATE with positional
// placeholders.
type setClause struct {
	cols []string
	vals []any
}

func newSetClause() *setClause {
	return &setClause{}
}

// addSet appends a column when the patch field is present.
func addSet[T any](s *setClause, col string, v *T) {
	if v == nil {
		return
	}
	s.vals = append(s.vals, *v)
	s.cols = append(s.cols, fmt.Sprintf("%s = $%d", col, len(s.vals)))
}

func (s *setClause) empty() bool {
	return len(s.cols) == 0
}

func (s *setClause) sql() string {
	return strings.Join(s.cols, ", ")
}

func (s *setClause) args() []any {
	return s.vals
}

// next returns the placeholder index following the accumulated values.
func (s *setClause) next() int {
	return len(s.vals) + 1
}
