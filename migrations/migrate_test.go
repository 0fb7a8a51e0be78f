package migrations

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUp_NilDB(t *testing.T) {
	var db *sql.DB

	err := Up(context.Background(), db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db is nil")
}

func TestUp_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// The mock has no expectations, so goose's version query fails and the
	// error must come back wrapped.
	err = Up(context.Background(), db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}
