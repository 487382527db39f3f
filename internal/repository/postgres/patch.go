package postgres

import (
	"fmt"
	"strings"
)

// patchBuilder assembles an UPDATE that touches exactly the columns given
// to Set. Columns never Set keep their stored value. Replaces the old
// string-concatenation edits with one placeholder-numbered statement.
type patchBuilder struct {
	table   string
	keyCol  string
	columns []string
	args    []any
}

func newPatch(table, keyCol string) *patchBuilder {
	return &patchBuilder{table: table, keyCol: keyCol}
}

func (p *patchBuilder) Set(column string, value any) {
	p.columns = append(p.columns, column)
	p.args = append(p.args, value)
}

func (p *patchBuilder) Empty() bool {
	return len(p.columns) == 0
}

// Build returns the UPDATE statement and its args, with the key value
// appended as the final placeholder. Callers must not Build an empty patch.
func (p *patchBuilder) Build(key string) (string, []any) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "UPDATE %s SET ", p.table)
	for i, col := range p.columns {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s = $%d", col, i+1)
	}
	fmt.Fprintf(&sb, " WHERE %s = $%d", p.keyCol, len(p.columns)+1)
	return sb.String(), append(p.args, key)
}
