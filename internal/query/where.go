package query

import (
	"strconv"
	"strings"
)

// Where accumulates conjunctive SQL predicates with numbered placeholders.
// Column names are always code-supplied; only values become arguments.
type Where struct {
	conds []string
	args  []any
}

// Eq adds "column = $n".
func (w *Where) Eq(column string, value any) {
	w.args = append(w.args, value)
	w.conds = append(w.conds, column+" = $"+strconv.Itoa(len(w.args)))
}

// EqIf adds "column = $n" only when value is non-empty.
func (w *Where) EqIf(column, value string) {
	if value != "" {
		w.Eq(column, value)
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// ILike adds a case-insensitive substring match when value is non-empty.
// Wildcards in value match literally.
func (w *Where) ILike(column, value string) {
	if value == "" {
		return
	}
	w.args = append(w.args, "%"+likeEscaper.Replace(value)+"%")
	w.conds = append(w.conds, column+" ILIKE $"+strconv.Itoa(len(w.args))+` ESCAPE '\'`)
}

// Or adds "(a = $n OR b = $n)" with one shared argument.
func (w *Where) Or(value any, columns ...string) {
	w.args = append(w.args, value)
	ph := "$" + strconv.Itoa(len(w.args))
	parts := make([]string, len(columns))
	for i, c := range columns {
		parts[i] = c + " = " + ph
	}
	w.conds = append(w.conds, "("+strings.Join(parts, " OR ")+")")
}

// Never adds a predicate that matches no rows. Used when a filter value can
// never match, such as an unknown enum or a malformed identifier.
func (w *Where) Never() {
	w.conds = append(w.conds, "FALSE")
}

// SQL returns the WHERE clause (with leading space) or "".
func (w *Where) SQL() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

// Args returns the bound values in placeholder order.
func (w *Where) Args() []any {
	return w.args
}

// Paginate appends LIMIT/OFFSET placeholders and returns the clause and the
// full argument list.
func (w *Where) Paginate(p Page) (string, []any) {
	args := append(append([]any{}, w.args...), p.Limit, p.Offset)
	n := len(w.args)
	return " LIMIT $" + strconv.Itoa(n+1) + " OFFSET $" + strconv.Itoa(n+2), args
}
