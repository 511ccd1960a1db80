package repository

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lumenstudio/backend/internal/model"
)

// collection describes how a remote collection maps onto a table.
type collection struct {
	table string
	// columns are the select expressions, in scan order.
	columns []string
	// fields maps the names accepted by ListQuery to column expressions.
	fields map[string]string
}

// selectSQL renders q as a parameterised SELECT over c.
func (c collection) selectSQL(q model.ListQuery) (string, []any, error) {
	var b strings.Builder
	var args []any

	b.WriteString("SELECT ")
	b.WriteString(strings.Join(c.columns, ", "))
	b.WriteString(" FROM ")
	b.WriteString(c.table)

	for i, f := range q.Filters {
		col, ok := c.fields[f.Field]
		if !ok {
			return "", nil, fmt.Errorf("%s: filter %q: %w", c.table, f.Field, ErrUnknownField)
		}
		if i == 0 {
			b.WriteString(" WHERE ")
		} else {
			b.WriteString(" AND ")
		}
		args = append(args, f.Value)
		b.WriteString(col + " = $" + strconv.Itoa(len(args)))
	}

	if q.OrderBy != "" {
		col, ok := c.fields[q.OrderBy]
		if !ok {
			return "", nil, fmt.Errorf("%s: order %q: %w", c.table, q.OrderBy, ErrUnknownField)
		}
		b.WriteString(" ORDER BY " + col)
		if q.Direction == model.Descending {
			b.WriteString(" DESC")
		} else {
			b.WriteString(" ASC")
		}
	}

	if q.Limit > 0 {
		args = append(args, q.Limit)
		b.WriteString(" LIMIT $" + strconv.Itoa(len(args)))
	}

	return b.String(), args, nil
}
