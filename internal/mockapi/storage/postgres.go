package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/vcrobe/userform/config"
)

// ErrNotStarted is returned when a Postgres registry is used before OnStart.
var ErrNotStarted = errors.New("storage: postgres registry not started")

const schema = `
CREATE TABLE IF NOT EXISTS locations (
	name     TEXT PRIMARY KEY,
	position INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS taken_names (
	name TEXT PRIMARY KEY
);`

// Postgres is a Registry backed by PostgreSQL.
type Postgres struct {
	cfg  config.PostgresConfig
	seed Seed
	log  *zap.SugaredLogger
	pool *pgxpool.Pool
}

// NewPostgres returns an unstarted Postgres registry. OnStart connects,
// creates the schema and inserts the seed when the tables are empty.
func NewPostgres(cfg config.PostgresConfig, seed Seed, log *zap.SugaredLogger) *Postgres {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Postgres{cfg: cfg, seed: seed, log: log}
}

// OnStart opens the pool and prepares the tables.
func (p *Postgres) OnStart(ctx context.Context) error {
	poolCfg, err := pgxpool.ParseConfig(p.cfg.DSN())
	if err != nil {
		return fmt.Errorf("parse postgres config: %w", err)
	}
	if p.cfg.MaxConns > 0 {
		poolCfg.MaxConns = p.cfg.MaxConns
	}
	if p.cfg.MinConns > 0 {
		poolCfg.MinConns = p.cfg.MinConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return fmt.Errorf("ping postgres: %w", err)
	}
	p.pool = pool

	if err := p.prepare(ctx); err != nil {
		pool.Close()
		p.pool = nil
		return err
	}
	p.log.Infow("postgres registry started", "host", p.cfg.Host, "db", p.cfg.DBName)
	return nil
}

// OnStop closes the pool.
func (p *Postgres) OnStop(_ context.Context) error {
	if p.pool != nil {
		p.pool.Close()
		p.pool = nil
	}
	return nil
}

func (p *Postgres) prepare(ctx context.Context) error {
	if _, err := p.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return p.applySeed(ctx)
}

func (p *Postgres) applySeed(ctx context.Context) error {
	return pgx.BeginFunc(ctx, p.pool, func(tx pgx.Tx) error {
		var n int
		if err := tx.QueryRow(ctx, `SELECT count(*) FROM locations`).Scan(&n); err != nil {
			return fmt.Errorf("count locations: %w", err)
		}
		if n == 0 {
			for i, loc := range p.seed.Locations {
				if _, err := tx.Exec(ctx,
					`INSERT INTO locations (name, position) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING`,
					loc, i,
				); err != nil {
					return fmt.Errorf("seed location %q: %w", loc, err)
				}
			}
		}
		for _, name := range p.seed.TakenNames {
			if _, err := tx.Exec(ctx,
				`INSERT INTO taken_names (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`,
				NormalizeName(name),
			); err != nil {
				return fmt.Errorf("seed taken name: %w", err)
			}
		}
		return nil
	})
}

func (p *Postgres) queryCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.cfg.QueryTimeout > 0 {
		return context.WithTimeout(ctx, p.cfg.QueryTimeout)
	}
	return context.WithCancel(ctx)
}

// Locations returns the locations ordered by position.
func (p *Postgres) Locations(ctx context.Context) ([]string, error) {
	if p.pool == nil {
		return nil, ErrNotStarted
	}
	ctx, cancel := p.queryCtx(ctx)
	defer cancel()

	rows, err := p.pool.Query(ctx, `SELECT name FROM locations ORDER BY position, name`)
	if err != nil {
		return nil, fmt.Errorf("query locations: %w", err)
	}
	locations, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scan locations: %w", err)
	}
	return locations, nil
}

// IsNameTaken looks the normalized name up in taken_names.
func (p *Postgres) IsNameTaken(ctx context.Context, name string) (bool, error) {
	if p.pool == nil {
		return false, ErrNotStarted
	}
	ctx, cancel := p.queryCtx(ctx)
	defer cancel()

	start := time.Now()
	var taken bool
	err := p.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM taken_names WHERE name = $1)`,
		NormalizeName(name),
	).Scan(&taken)
	if err != nil {
		return false, fmt.Errorf("query taken name: %w", err)
	}
	p.log.Debugw("taken name lookup", "duration", time.Since(start), "taken", taken)
	return taken, nil
}
