package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/hamyaran/admin-api/internal/model"
	apperrors "github.com/hamyaran/admin-api/pkg/errors"
	"github.com/hamyaran/admin-api/pkg/metrics"
)

// crud implements the storage operations every resource table shares:
// get by id, paged list with optional search, partial update, delete.
// Inserts stay with the owning repository because column sets differ.
type crud[T any] struct {
	db         *sqlx.DB
	table      string
	resource   string
	searchCols []string
	metrics    *metrics.Metrics
}

func newCRUD[T any](db *sqlx.DB, m *metrics.Metrics, table, resource string, searchCols ...string) crud[T] {
	return crud[T]{db: db, table: table, resource: resource, searchCols: searchCols, metrics: m}
}

func (c *crud[T]) observe(op string, start time.Time, err error) {
	if c.metrics == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	operation := c.table + "." + op
	c.metrics.DatabaseOperations.WithLabelValues(operation, status).Inc()
	c.metrics.DatabaseLatency.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

func (c *crud[T]) Get(ctx context.Context, id int64) (*T, error) {
	start := time.Now()
	var row T
	err := c.db.GetContext(ctx, &row, fmt.Sprintf(`SELECT * FROM %s WHERE id = $1`, c.table), id)
	c.observe("get", start, err)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound(c.resource, err)
		}
		return nil, fmt.Errorf("failed to get %s: %w", c.resource, err)
	}
	return &row, nil
}

func (c *crud[T]) List(ctx context.Context, f model.ListFilter) ([]*T, int, error) {
	start := time.Now()
	f.Normalize()

	var where string
	var args []any
	if f.Search != "" && len(c.searchCols) > 0 {
		clauses := make([]string, len(c.searchCols))
		for i, col := range c.searchCols {
			clauses[i] = col + " ILIKE $1"
		}
		where = " WHERE (" + strings.Join(clauses, " OR ") + ")"
		args = append(args, "%"+f.Search+"%")
	}

	var total int
	if err := c.db.GetContext(ctx, &total, fmt.Sprintf(`SELECT COUNT(*) FROM %s%s`, c.table, where), args...); err != nil {
		c.observe("list", start, err)
		return nil, 0, fmt.Errorf("failed to count %s: %w", c.resource, err)
	}

	query := fmt.Sprintf(`SELECT * FROM %s%s ORDER BY id DESC LIMIT %d OFFSET %d`,
		c.table, where, f.PageSize, f.Offset())
	rows := []*T{}
	err := c.db.SelectContext(ctx, &rows, query, args...)
	c.observe("list", start, err)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list %s: %w", c.resource, err)
	}
	return rows, total, nil
}

func (c *crud[T]) Update(ctx context.Context, id int64, set map[string]any) error {
	if len(set) == 0 {
		return nil
	}
	start := time.Now()

	cols := make([]string, 0, len(set))
	for col := range set {
		cols = append(cols, col)
	}
	sort.Strings(cols)

	assignments := make([]string, len(cols))
	args := make([]any, 0, len(cols)+1)
	for i, col := range cols {
		assignments[i] = fmt.Sprintf("%s = $%d", col, i+1)
		args = append(args, set[col])
	}
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE %s SET %s WHERE id = $%d`,
		c.table, strings.Join(assignments, ", "), len(cols)+1)
	res, err := c.db.ExecContext(ctx, query, args...)
	c.observe("update", start, err)
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", c.resource, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return apperrors.NotFound(c.resource, sql.ErrNoRows)
	}
	return nil
}

func (c *crud[T]) Delete(ctx context.Context, id int64) error {
	start := time.Now()
	res, err := c.db.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, c.table), id)
	c.observe("delete", start, err)
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", c.resource, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return apperrors.NotFound(c.resource, sql.ErrNoRows)
	}
	return nil
}
