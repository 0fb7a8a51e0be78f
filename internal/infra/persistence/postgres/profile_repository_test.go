package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passport/internal/domain/entity"
	"passport/internal/domain/repository"
)

func profileColumns() []string {
	return []string{"user_id", "first_name", "last_name", "gender", "date_of_birth", "country", "city", "profile_picture", "updated_at"}
}

func TestProfileRepository_FindByUserID(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewProfileRepository(db)

	dob := time.Date(1990, 4, 17, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(profileColumns()).
		AddRow(int64(42), "John", nil, nil, dob, nil, "Berlin", nil, time.Now())

	mock.ExpectQuery(`SELECT \* FROM "profiles" WHERE user_id = \$1`).
		WithArgs(int64(42), 1).
		WillReturnRows(rows)

	profile, err := repo.FindByUserID(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, int64(42), profile.UserID)
	require.NotNil(t, profile.FirstName)
	assert.Equal(t, "John", *profile.FirstName)
	assert.Nil(t, profile.LastName)
	require.NotNil(t, profile.City)
	assert.Equal(t, "Berlin", *profile.City)
	require.NotNil(t, profile.DateOfBirth)
	assert.True(t, profile.DateOfBirth.Equal(dob))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepository_FindByUserID_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewProfileRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "profiles" WHERE user_id = \$1`).
		WithArgs(int64(42), 1).
		WillReturnRows(sqlmock.NewRows(profileColumns()))

	profile, err := repo.FindByUserID(context.Background(), 42)

	assert.Nil(t, profile)
	assert.ErrorIs(t, err, repository.ErrProfileNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepository_Create(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewProfileRepository(db)

	city := "Berlin"
	profile := &entity.Profile{UserID: 42, City: &city}

	// gorm returns the declared primary key, so the insert runs as a query.
	mock.ExpectQuery(`INSERT INTO "profiles"`).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(int64(42)))

	err := repo.Create(context.Background(), profile)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepository_Save(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewProfileRepository(db)

	city := "Berlin"
	profile := &entity.Profile{UserID: 42, City: &city}

	mock.ExpectExec(`UPDATE "profiles" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Save(context.Background(), profile)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
