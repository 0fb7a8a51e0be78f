package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"passport/internal/domain/entity"
	"passport/internal/domain/repository"
)

func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func userColumns() []string {
	return []string{"id", "first_name", "last_name", "login", "password_hash", "mail", "date_of_registration"}
}

func TestUserRepository_FindByLogin(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(db)

	registeredAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(userColumns()).
		AddRow(int64(42), "John", "Doe", "john_doe", "hashed-secret", "john@example.com", registeredAt)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE login = \$1`).
		WithArgs("john_doe", 1).
		WillReturnRows(rows)

	user, err := repo.FindByLogin(context.Background(), "john_doe")

	require.NoError(t, err)
	assert.Equal(t, &entity.User{
		ID:                 42,
		FirstName:          "John",
		LastName:           "Doe",
		Login:              "john_doe",
		PasswordHash:       "hashed-secret",
		Mail:               "john@example.com",
		DateOfRegistration: registeredAt,
	}, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByLogin_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE login = \$1`).
		WithArgs("ghost", 1).
		WillReturnRows(sqlmock.NewRows(userColumns()))

	user, err := repo.FindByLogin(context.Background(), "ghost")

	assert.Nil(t, user)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByLoginOrMail(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(db)

	rows := sqlmock.NewRows(userColumns()).
		AddRow(int64(7), "Jane", "Doe", "jane_doe", "hash", "jane@example.com", time.Now())

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE login = \$1 OR mail = \$2`).
		WithArgs("jane_doe", "jane@example.com", 1).
		WillReturnRows(rows)

	user, err := repo.FindByLoginOrMail(context.Background(), "jane_doe", "jane@example.com")

	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_AssignsID(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

	user := &entity.User{
		FirstName:    "John",
		LastName:     "Doe",
		Login:        "john_doe",
		PasswordHash: "hashed-secret",
		Mail:         "john@example.com",
	}

	err := repo.Create(context.Background(), user)

	require.NoError(t, err)
	assert.Equal(t, int64(42), user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_UniqueViolation(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "idx_users_login"})

	user := &entity.User{
		FirstName:    "John",
		LastName:     "Doe",
		Login:        "john_doe",
		PasswordHash: "hashed-secret",
		Mail:         "john@example.com",
	}

	err := repo.Create(context.Background(), user)

	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrDuplicateUser)
	assert.NoError(t, mock.ExpectationsWereMet())
}
