package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"academicevents/internal/config"
	"academicevents/internal/domain"
)

// mockConn keeps the pgxmock connection usable across repository calls: the
// provider closes after every operation, the test closes once at the end.
type mockConn struct {
	pgxmock.PgxConnIface
}

func (mockConn) Close(context.Context) error { return nil }

type mockConnector struct {
	conn     pgxmock.PgxConnIface
	connects int
	failures int
	err      error
}

func (c *mockConnector) Connect(context.Context, config.Database) (Conn, error) {
	c.connects++
	if c.failures > 0 {
		c.failures--
		return nil, c.err
	}
	return mockConn{c.conn}, nil
}

type failingSource struct{ err error }

func (s failingSource) LoadDatabase() (config.Database, error) { return config.Database{}, s.err }

var testDB = config.StaticSource{URL: "postgres://localhost:5432/test", ConnectAttempts: 3}

func newMockProvider(t *testing.T) (*Provider, pgxmock.PgxConnIface, *mockConnector) {
	t.Helper()
	mock, err := pgxmock.NewConn()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = mock.Close(context.Background())
	})
	connector := &mockConnector{conn: mock, err: errors.New("connection refused")}
	return NewProvider(testDB, connector, zerolog.Nop(), WithRetryDelay(time.Millisecond)), mock, connector
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func isPersistenceError(err error) bool {
	var persistErr *domain.PersistenceError
	return errors.As(err, &persistErr)
}

// anyArgs matches n statement arguments of any value.
func anyArgs(n int) []any {
	args := make([]any, n)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return args
}
