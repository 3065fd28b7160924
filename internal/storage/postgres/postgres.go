// Package postgres is the PostgreSQL implementation of the backend the
// importer reads categories and wallets from and writes transactions to.
package postgres

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/grachmannico95/wallet-import/internal/domain"
	"github.com/grachmannico95/wallet-import/internal/storage"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// DB is the subset of *pgxpool.Pool the store uses.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type PoolConfig struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
}

func Connect(ctx context.Context, cfg PoolConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse database dsn: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		poolCfg.MinConns = cfg.MinConns
	}
	if cfg.MaxConnLifetime > 0 {
		poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	}
	if cfg.MaxConnIdleTime > 0 {
		poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("open database pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}

// Migrate applies the embedded migrations.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

type Store struct {
	db DB
}

func New(db DB) *Store {
	return &Store{db: db}
}

var _ domain.Backend = (*Store)(nil)

func (s *Store) FetchCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	query := `
		SELECT id::text, name, kind
		FROM categories
		WHERE user_id = $1
		ORDER BY name
	`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		var kind string
		if err := rows.Scan(&c.ID, &c.Name, &kind); err != nil {
			return nil, err
		}
		c.Kind = domain.Kind(kind)
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

func (s *Store) FetchWallets(ctx context.Context, userID string) ([]domain.Wallet, error) {
	query := `
		SELECT id::text, name
		FROM wallets
		WHERE user_id = $1
		ORDER BY name
	`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	wallets := []domain.Wallet{}
	for rows.Next() {
		var w domain.Wallet
		if err := rows.Scan(&w.ID, &w.Name); err != nil {
			return nil, err
		}
		wallets = append(wallets, w)
	}

	return wallets, rows.Err()
}

// CreateTransaction inserts only when both the category and the wallet belong
// to userID; otherwise it returns storage.ErrUnknownReference.
func (s *Store) CreateTransaction(ctx context.Context, userID string, c domain.Candidate) (string, error) {
	query := `
		INSERT INTO transactions (user_id, category_id, wallet_id, date, description, amount, kind, tags)
		SELECT $1, c.id, w.id, $4::date, $5, $6::numeric, $7, $8
		FROM categories c
		JOIN wallets w ON w.id = $3::uuid AND w.user_id = $1
		WHERE c.id = $2::uuid AND c.user_id = $1
		RETURNING id::text
	`

	tags := c.Tags
	if tags == nil {
		tags = []string{}
	}

	var id string
	err := s.db.QueryRow(ctx, query,
		userID,
		c.CategoryID,
		c.WalletID,
		c.Date,
		c.Description,
		c.Amount.String(),
		string(c.Kind),
		tags,
	).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", storage.ErrUnknownReference
	}
	if err != nil {
		return "", err
	}

	return id, nil
}

func (s *Store) AddNotification(ctx context.Context, n domain.Notification) error {
	query := `
		INSERT INTO notifications (user_id, title, message, type)
		VALUES ($1, $2, $3, $4)
	`

	_, err := s.db.Exec(ctx, query, n.UserID, n.Title, n.Message, n.Type)
	return err
}

func (s *Store) ListNotifications(ctx context.Context, userID string) ([]domain.Notification, error) {
	query := `
		SELECT id::text, user_id, title, message, type, read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 100
	`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := []domain.Notification{}
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.Type, &n.Read, &n.CreatedAt); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}

	return notifications, rows.Err()
}
