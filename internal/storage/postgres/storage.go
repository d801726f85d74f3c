package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shopzone/checkout/internal/domain/model"
	"github.com/shopzone/checkout/internal/domain/repository"
)

// Pool is the subset of pgxpool.Pool the storage relies on.
type Pool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// Storage is the append-only order log backed by PostgreSQL.
type Storage struct {
	pool   Pool
	logger *slog.Logger
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	logger.Debug("order log schema ready")

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// OrderLog returns the repository view of the storage.
func (s *Storage) OrderLog() repository.OrderLog {
	return s
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS verified_orders (
            id UUID PRIMARY KEY,
            order_id TEXT NOT NULL,
            payment_id TEXT NOT NULL,
            customer_name TEXT NOT NULL,
            customer_email TEXT NOT NULL,
            customer_phone TEXT NOT NULL,
            total_amount BIGINT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS order_items (
            order_ref UUID NOT NULL REFERENCES verified_orders(id),
            position INT NOT NULL,
            product_ref TEXT NOT NULL,
            unit_price BIGINT NOT NULL,
            quantity BIGINT NOT NULL,
            PRIMARY KEY (order_ref, position)
        )`,
		`CREATE INDEX IF NOT EXISTS idx_verified_orders_created ON verified_orders(created_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// Append records a verified order together with its line items in one
// transaction. Rows are only ever inserted, never updated or deleted.
func (s *Storage) Append(ctx context.Context, order *model.VerifiedOrder) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now().UTC()
	}

	return s.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insertOrder = `INSERT INTO verified_orders
            (id, order_id, payment_id, customer_name, customer_email, customer_phone, total_amount, created_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
		if _, err := tx.Exec(ctx, insertOrder,
			order.ID, order.OrderID, order.PaymentID,
			order.Customer.Name, order.Customer.Email, order.Customer.Phone,
			order.TotalAmount, order.CreatedAt,
		); err != nil {
			return err
		}

		const insertItem = `INSERT INTO order_items (order_ref, position, product_ref, unit_price, quantity)
            VALUES ($1, $2, $3, $4, $5)`
		for i, item := range order.LineItems {
			if _, err := tx.Exec(ctx, insertItem, order.ID, i, item.ProductRef, item.UnitPrice, item.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
}

// List returns all verified orders, newest first.
func (s *Storage) List(ctx context.Context) ([]model.VerifiedOrder, error) {
	const ordersQuery = `SELECT id, order_id, payment_id, customer_name, customer_email, customer_phone, total_amount, created_at
        FROM verified_orders ORDER BY created_at DESC`
	rows, err := s.pool.Query(ctx, ordersQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.VerifiedOrder
	index := make(map[string]int)
	for rows.Next() {
		var o model.VerifiedOrder
		if err := rows.Scan(&o.ID, &o.OrderID, &o.PaymentID,
			&o.Customer.Name, &o.Customer.Email, &o.Customer.Phone,
			&o.TotalAmount, &o.CreatedAt); err != nil {
			return nil, err
		}
		index[o.ID] = len(result)
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(result) == 0 {
		return result, nil
	}

	const itemsQuery = `SELECT order_ref, product_ref, unit_price, quantity
        FROM order_items ORDER BY order_ref, position`
	itemRows, err := s.pool.Query(ctx, itemsQuery)
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var ref string
		var item model.LineItem
		if err := itemRows.Scan(&ref, &item.ProductRef, &item.UnitPrice, &item.Quantity); err != nil {
			return nil, err
		}
		if i, ok := index[ref]; ok {
			result[i].LineItems = append(result[i].LineItems, item)
		}
	}
	if err := itemRows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}
