package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/go-todo-service/internal/domain"
	"github.com/jsamuelsen11/go-todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/go-todo-service/internal/ports"
)

const selectTodo = `
	SELECT id, text, category, done, created_at, updated_at, completed_at
	FROM todos`

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// List returns todos ordered by insertion.
func (s *Store) List(ctx context.Context, filter todo.Filter) ([]todo.Todo, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if filter.Category == "" {
		rows, err = s.db.QueryContext(ctx, selectTodo+` ORDER BY rowid`)
	} else {
		rows, err = s.db.QueryContext(ctx, selectTodo+` WHERE category_key = ? ORDER BY rowid`,
			todo.CategoryKey(filter.Category))
	}
	if err != nil {
		return nil, fmt.Errorf("querying todos: %w", err)
	}
	defer func() { _ = rows.Close() }()

	todos := make([]todo.Todo, 0)
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		todos = append(todos, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating todos: %w", err)
	}
	return todos, nil
}

// Get returns a single todo.
func (s *Store) Get(ctx context.Context, id string) (*todo.Todo, error) {
	return get(ctx, s.db, id)
}

// Categories returns, for each category key, the spelling of the earliest
// inserted row with that key. SQLite takes bare columns from the MIN() row.
func (s *Store) Categories(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT category, MIN(rowid)
		FROM todos
		GROUP BY category_key
		ORDER BY category_key`)
	if err != nil {
		return nil, fmt.Errorf("querying categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	categories := make([]string, 0)
	for rows.Next() {
		var (
			name  string
			rowid int64
		)
		if err := rows.Scan(&name, &rowid); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		categories = append(categories, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating categories: %w", err)
	}
	return categories, nil
}

// Atomic runs fn in an immediate write transaction.
func (s *Store) Atomic(ctx context.Context, fn func(tx ports.TodoTx) error) error {
	sqlTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	if err := fn(&tx{tx: sqlTx}); err != nil {
		if rbErr := sqlTx.Rollback(); rbErr != nil {
			s.logger.ErrorContext(ctx, "rollback failed",
				slog.String("operation", "Atomic"),
				slog.Any("error", rbErr),
			)
		}
		return err
	}

	if err := sqlTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// tx implements ports.TodoTx over a *sql.Tx.
type tx struct {
	tx *sql.Tx
}

func (t *tx) Get(ctx context.Context, id string) (*todo.Todo, error) {
	return get(ctx, t.tx, id)
}

func (t *tx) CountActive(ctx context.Context, categoryKey string) (int, error) {
	var n int
	err := t.tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM todos WHERE category_key = ? AND done = 0`, categoryKey,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting active todos: %w", err)
	}
	return n, nil
}

func (t *tx) Insert(ctx context.Context, td *todo.Todo) error {
	_, err := t.tx.ExecContext(ctx, `
		INSERT INTO todos (id, text, category, category_key, done, created_at, updated_at, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		td.ID, td.Text, td.Category, td.CategoryKey(), td.Done,
		td.CreatedAt.UnixMilli(), td.UpdatedAt.UnixMilli(), nullMillis(td.CompletedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting todo: %w", err)
	}
	return nil
}

func (t *tx) Update(ctx context.Context, td *todo.Todo) error {
	res, err := t.tx.ExecContext(ctx, `
		UPDATE todos
		SET text = ?, category = ?, category_key = ?, done = ?, updated_at = ?, completed_at = ?
		WHERE id = ?`,
		td.Text, td.Category, td.CategoryKey(), td.Done,
		td.UpdatedAt.UnixMilli(), nullMillis(td.CompletedAt), td.ID,
	)
	if err != nil {
		return fmt.Errorf("updating todo: %w", err)
	}
	return requireAffected(res, td.ID)
}

func (t *tx) Delete(ctx context.Context, id string) error {
	res, err := t.tx.ExecContext(ctx, `DELETE FROM todos WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting todo: %w", err)
	}
	return requireAffected(res, id)
}

func get(ctx context.Context, q queryer, id string) (*todo.Todo, error) {
	row := q.QueryRowContext(ctx, selectTodo+` WHERE id = ?`, id)
	t, err := scanTodo(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound(id)
	}
	return t, err
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanTodo(s scanner) (*todo.Todo, error) {
	var (
		t                    todo.Todo
		createdAt, updatedAt int64
		completedAt          sql.NullInt64
	)
	err := s.Scan(&t.ID, &t.Text, &t.Category, &t.Done, &createdAt, &updatedAt, &completedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scanning todo: %w", err)
	}

	t.CreatedAt = fromMillis(createdAt)
	t.UpdatedAt = fromMillis(updatedAt)
	if completedAt.Valid {
		c := fromMillis(completedAt.Int64)
		t.CompletedAt = &c
	}
	return &t, nil
}

func requireAffected(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}
	if n == 0 {
		return notFound(id)
	}
	return nil
}

func notFound(id string) error {
	return fmt.Errorf("todo with ID %q %w", id, domain.ErrNotFound)
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

func nullMillis(t *time.Time) sql.NullInt64 {
	if t == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: t.UnixMilli(), Valid: true}
}
