package query

import (
	"strings"

	"cloud.google.com/go/spanner"
)

// Direction represents ORDER BY direction.
type Direction int

const (
	// Asc represents ascending order.
	Asc Direction = iota
	// Desc represents descending order.
	Desc
)

// Builder constructs SQL SELECT queries for Cloud Spanner.
// It provides a fluent API for building queries with INNER JOINs,
// WHERE clauses, ORDER BY, LIMIT, and OFFSET. Parameter names are
// auto-generated to prevent manual synchronization errors.
//
// Tables may carry an alias ("orders o"), and condition fields and
// ORDER BY columns accept arbitrary SQL expressions, so report
// queries can compare on computed values such as DATE(order_date).
type Builder struct {
	table        string
	joins        []joinClause
	selectCols   []string
	whereClauses []Condition
	orderByExpr  string
	orderByDir   Direction
	limitVal     int64
	offsetVal    int64
}

type joinClause struct {
	table string
	on    string
}

// From creates a new Builder for the specified table.
// The table string may include an alias, e.g. "orders o".
func From(table string) *Builder {
	return &Builder{
		table:        table,
		selectCols:   []string{},
		whereClauses: []Condition{},
	}
}

// Select specifies the columns to retrieve.
// Entries may be qualified ("o.order_date") or aliased
// ("c.name AS customer_name").
func (b *Builder) Select(columns ...string) *Builder {
	newBuilder := b.clone()
	newBuilder.selectCols = append(newBuilder.selectCols, columns...)
	return newBuilder
}

// InnerJoin adds an INNER JOIN with the given ON condition.
// Rows without a join partner are dropped, so joining orders to
// customers silently excludes orders whose customer_id is dangling.
func (b *Builder) InnerJoin(table, on string) *Builder {
	newBuilder := b.clone()
	newBuilder.joins = append(newBuilder.joins, joinClause{table: table, on: on})
	return newBuilder
}

// Where adds a WHERE condition.
// Multiple calls are combined with AND logic.
func (b *Builder) Where(condition Condition) *Builder {
	newBuilder := b.clone()
	newBuilder.whereClauses = append(newBuilder.whereClauses, condition)
	return newBuilder
}

// OrderBy specifies the column or expression and direction for sorting.
func (b *Builder) OrderBy(expr string, direction Direction) *Builder {
	newBuilder := b.clone()
	newBuilder.orderByExpr = expr
	newBuilder.orderByDir = direction
	return newBuilder
}

// Limit sets the maximum number of rows to return.
func (b *Builder) Limit(limit int64) *Builder {
	newBuilder := b.clone()
	newBuilder.limitVal = limit
	return newBuilder
}

// Offset sets the number of rows to skip.
func (b *Builder) Offset(offset int64) *Builder {
	newBuilder := b.clone()
	newBuilder.offsetVal = offset
	return newBuilder
}

// Count returns a new builder that generates a COUNT(*) query
// with the same FROM, JOIN, and WHERE clauses.
// This eliminates duplication when you need both result rows and a
// qualifying-row count.
func (b *Builder) Count() *Builder {
	newBuilder := b.clone()
	newBuilder.selectCols = []string{"COUNT(*)"}
	// Clear pagination and ordering for count query
	newBuilder.limitVal = 0
	newBuilder.offsetVal = 0
	newBuilder.orderByExpr = ""
	return newBuilder
}

// Build constructs the final spanner.Statement with SQL and parameters.
func (b *Builder) Build() spanner.Statement {
	var sql strings.Builder
	params := make(map[string]interface{})

	// SELECT clause
	sql.WriteString("SELECT ")
	if len(b.selectCols) == 0 {
		sql.WriteString("*")
	} else {
		sql.WriteString(strings.Join(b.selectCols, ", "))
	}

	// FROM clause
	sql.WriteString(" FROM ")
	sql.WriteString(b.table)

	// JOIN clauses
	for _, join := range b.joins {
		sql.WriteString(" INNER JOIN ")
		sql.WriteString(join.table)
		sql.WriteString(" ON ")
		sql.WriteString(join.on)
	}

	// WHERE clause
	if len(b.whereClauses) > 0 {
		sql.WriteString(" WHERE ")
		whereParts := make([]string, 0, len(b.whereClauses))
		paramIndex := 0
		for _, condition := range b.whereClauses {
			fragment, condParams := condition.SQL(paramIndex)
			whereParts = append(whereParts, fragment)
			for k, v := range condParams {
				params[k] = v
			}
			paramIndex += len(condParams)
		}
		sql.WriteString(strings.Join(whereParts, " AND "))
	}

	// ORDER BY clause
	if b.orderByExpr != "" {
		sql.WriteString(" ORDER BY ")
		sql.WriteString(b.orderByExpr)
		if b.orderByDir == Desc {
			sql.WriteString(" DESC")
		} else {
			sql.WriteString(" ASC")
		}
	}

	// LIMIT clause
	if b.limitVal > 0 {
		sql.WriteString(" LIMIT @limit")
		params["limit"] = b.limitVal
	}

	// OFFSET clause
	if b.offsetVal > 0 {
		sql.WriteString(" OFFSET @offset")
		params["offset"] = b.offsetVal
	}

	return spanner.Statement{
		SQL:    sql.String(),
		Params: params,
	}
}

// clone creates a copy of the builder for immutable chaining.
func (b *Builder) clone() *Builder {
	newBuilder := &Builder{
		table:       b.table,
		orderByExpr: b.orderByExpr,
		orderByDir:  b.orderByDir,
		limitVal:    b.limitVal,
		offsetVal:   b.offsetVal,
	}
	newBuilder.joins = append([]joinClause{}, b.joins...)
	newBuilder.selectCols = append([]string{}, b.selectCols...)
	newBuilder.whereClauses = append([]Condition{}, b.whereClauses...)
	return newBuilder
}
