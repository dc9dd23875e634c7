package repo

import (
	"testing"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
)

const joinedSelect = "SELECT o.customer_id, c.name AS customer_name, o.product_id, p.name AS product_name, o.order_date, o.total_price " +
	"FROM orders o " +
	"INNER JOIN customers c ON o.customer_id = c.customer_id " +
	"INNER JOIN products p ON o.product_id = p.product_id"

func TestCountRecentStmt(t *testing.T) {
	cutoff := civil.Date{Year: 2023, Month: 12, Day: 6}

	stmt := countRecentStmt(cutoff)

	assert.Equal(t, `SELECT COUNT(*) FROM orders o WHERE DATE(o.order_date, "UTC") >= @p0`, stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": cutoff,
	}, stmt.Params)
}

func TestActivityStmt_WithCutoff(t *testing.T) {
	cutoff := civil.Date{Year: 2023, Month: 12, Day: 6}

	stmt := activityStmt(&cutoff)

	assert.Equal(t, joinedSelect+
		` WHERE DATE(o.order_date, "UTC") >= @p0`+
		` ORDER BY DATE(o.order_date, "UTC") DESC`, stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": cutoff,
	}, stmt.Params)
}

func TestActivityStmt_NoCutoff(t *testing.T) {
	stmt := activityStmt(nil)

	assert.Equal(t, joinedSelect+
		` ORDER BY DATE(o.order_date, "UTC") DESC`, stmt.SQL)
	assert.Empty(t, stmt.Params)
}
