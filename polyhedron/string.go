package polyhedron

import (
	"fmt"
	"strings"
)

// String renders the constraint system as one line per inequality
// (and, if present, one per equality), matching the teacher's dense
// matrix dump convention (one row per line, comma-separated entries).
func (p *AbstractPolyhedra[T]) String() string {
	var sb strings.Builder
	for c := 0; c < p.A.NumCol(); c++ {
		col := p.A.GetCol(c)
		fmt.Fprintf(&sb, "[")
		for v, coeff := range col {
			if v > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%d", coeff)
		}
		fmt.Fprintf(&sb, "] <= %v\n", p.B[c])
	}
	for c := 0; c < p.NumEqualities(); c++ {
		col := p.E.GetCol(c)
		fmt.Fprintf(&sb, "[")
		for v, coeff := range col {
			if v > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%d", coeff)
		}
		fmt.Fprintf(&sb, "] == %v\n", p.Q[c])
	}
	return sb.String()
}
