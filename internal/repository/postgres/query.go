package postgres

import (
	"fmt"
	"strconv"
	"strings"

	"cmsapi/internal/repository"
)

type rowScanner interface {
	Scan(dest ...any) error
}

// placeholders renders n positional parameters starting at $start: "$3, $4, $5".
func placeholders(start, n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('$')
		b.WriteString(strconv.Itoa(start + i))
	}
	return b.String()
}

func int64Args(ids []int64) []any {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return args
}

// sortColumns maps public sort field names to qualified SQL columns.
type sortColumns map[string]string

// orderBy renders an ORDER BY clause for pq, falling back to def when pq.SortBy is empty.
// The id column breaks ties so pages are stable.
func (s sortColumns) orderBy(pq repository.PageQuery, def, idColumn string) (string, error) {
	key := pq.SortBy
	if key == "" {
		key = def
	}
	col, ok := s[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", repository.ErrInvalidSort, pq.SortBy)
	}
	dir := "ASC"
	if pq.Desc {
		dir = "DESC"
	}
	return fmt.Sprintf("ORDER BY %s %s NULLS LAST, %s %s", col, dir, idColumn, dir), nil
}

// whereClause accumulates AND-ed conditions with their positional arguments.
type whereClause struct {
	conds []string
	args  []any
}

// add appends a condition whose single %d verb receives the next parameter index.
func (w *whereClause) add(cond string, arg any) {
	w.args = append(w.args, arg)
	w.conds = append(w.conds, strings.ReplaceAll(cond, "%d", strconv.Itoa(len(w.args))))
}

func (w *whereClause) addRaw(cond string) {
	w.conds = append(w.conds, cond)
}

func (w *whereClause) String() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

// limitOffset renders the LIMIT/OFFSET tail using the next two parameter indexes.
func (w *whereClause) limitOffset(pq repository.PageQuery) (string, []any) {
	n := len(w.args)
	args := append(append([]any{}, w.args...), pq.Limit, pq.Offset)
	return fmt.Sprintf(" LIMIT $%d OFFSET $%d", n+1, n+2), args
}
