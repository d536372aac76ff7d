package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"

	"academicevents/internal/config"
	"academicevents/internal/domain"
)

// Conn is the subset of *pgx.Conn used by the repositories.
type Conn interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// Querier is what a repository statement runs against: a connection or a transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ConfigSource supplies the connection settings. It is consulted on every acquisition.
type ConfigSource interface {
	LoadDatabase() (config.Database, error)
}

// Connector opens a single connection.
type Connector interface {
	Connect(ctx context.Context, cfg config.Database) (Conn, error)
}

// PgxConnector opens plain pgx connections. Tracer is optional.
type PgxConnector struct {
	Tracer pgx.QueryTracer
}

func (c PgxConnector) Connect(ctx context.Context, cfg config.Database) (Conn, error) {
	connCfg, err := pgx.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: db.url: %v", domain.ErrConfigurationInvalid, err)
	}
	if cfg.Username != "" {
		connCfg.User = cfg.Username
	}
	if cfg.Password != "" {
		connCfg.Password = cfg.Password
	}
	if cfg.ConnectTimeout > 0 {
		connCfg.ConnectTimeout = cfg.ConnectTimeout
	}
	if c.Tracer != nil {
		connCfg.Tracer = c.Tracer
	}
	conn, err := pgx.ConnectConfig(ctx, connCfg)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

const defaultRetryDelay = 250 * time.Millisecond

// Provider hands out one connection per repository operation. There is no pooling:
// every call connects, runs its statements and closes before returning.
type Provider struct {
	source     ConfigSource
	connector  Connector
	log        zerolog.Logger
	retryDelay time.Duration
}

type ProviderOption func(*Provider)

// WithRetryDelay sets the base delay between connection attempts. Attempt n waits n×d.
func WithRetryDelay(d time.Duration) ProviderOption {
	return func(p *Provider) { p.retryDelay = d }
}

func NewProvider(source ConfigSource, connector Connector, log zerolog.Logger, opts ...ProviderOption) *Provider {
	p := &Provider{
		source:     source,
		connector:  connector,
		log:        log.With().Str("component", "db").Logger(),
		retryDelay: defaultRetryDelay,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Acquire loads the settings and opens a connection. Only the connect step is retried,
// and not when the connector rejects the settings themselves.
// The caller owns the connection and must close it.
func (p *Provider) Acquire(ctx context.Context) (Conn, error) {
	cfg, err := p.source.LoadDatabase()
	if err != nil {
		if errors.Is(err, domain.ErrConfigurationMissing) || errors.Is(err, domain.ErrConfigurationInvalid) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrConfigurationInvalid, err)
	}
	attempts := cfg.ConnectAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		conn, err := p.connector.Connect(ctx, cfg)
		if err == nil {
			return conn, nil
		}
		if errors.Is(err, domain.ErrConfigurationInvalid) {
			return nil, err
		}
		lastErr = err
		p.log.Warn().Err(err).Int("attempt", attempt).Int("max_attempts", attempts).Msg("database connection failed")
		if attempt == attempts {
			break
		}
		timer := time.NewTimer(time.Duration(attempt) * p.retryDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, &domain.ConnectionError{Err: ctx.Err()}
		case <-timer.C:
		}
	}
	return nil, &domain.ConnectionError{Err: lastErr}
}

// With runs fn on a fresh connection and closes it on every exit path.
func (p *Provider) With(ctx context.Context, fn func(Querier) error) error {
	conn, err := p.Acquire(ctx)
	if err != nil {
		return err
	}
	defer p.release(conn)
	return fn(conn)
}

// InTx runs fn inside a transaction on a fresh connection. fn's error rolls the transaction back.
func (p *Provider) InTx(ctx context.Context, fn func(pgx.Tx) error) error {
	conn, err := p.Acquire(ctx)
	if err != nil {
		return err
	}
	defer p.release(conn)

	tx, err := conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			p.log.Error().Err(rbErr).Msg("rollback failed")
		}
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Ping opens a connection and checks the server answers.
func (p *Provider) Ping(ctx context.Context) error {
	conn, err := p.Acquire(ctx)
	if err != nil {
		return err
	}
	defer p.release(conn)
	if err := conn.Ping(ctx); err != nil {
		return &domain.ConnectionError{Err: err}
	}
	p.log.Info().Msg("✅ PostgreSQL database reachable")
	return nil
}

func (p *Provider) release(conn Conn) {
	if err := conn.Close(context.Background()); err != nil {
		p.log.Warn().Err(err).Msg("closing connection")
	}
}
