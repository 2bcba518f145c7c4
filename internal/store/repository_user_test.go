package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return newPostgresDB(conn, logger.Nop()), mock
}

func newTestUserRepo(t *testing.T) (UserRepository, *DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock := newMockDB(t)
	return NewUserRepository(db, logger.Nop()), db, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var userRowColumns = []string{"id", "username", "password_hash", "image_url", "bio"}

func TestCreateUser_Success(t *testing.T) {
	repo, _, mock := newTestUserRepo(t)
	user := models.User{Username: "ChefJohn", PasswordHash: "hash", Bio: strPtr("I cook")}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("ChefJohn", "hash", sqlmock.AnyArg(), "I cook").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	created, err := repo.CreateUser(context.Background(), user)
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "ChefJohn", created.Username)
	assert.Equal(t, "hash", created.PasswordHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	repo, _, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Username: "ChefJohn", PasswordHash: "hash"})

	assert.ErrorIs(t, err, ErrUsernameAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_DriverError(t *testing.T) {
	repo, _, mock := newTestUserRepo(t)
	boom := errors.New("connection reset")

	mock.ExpectQuery("INSERT INTO users").WillReturnError(boom)

	_, err := repo.CreateUser(context.Background(), models.User{Username: "a", PasswordHash: "b"})

	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrUsernameAlreadyExists)
}

func TestFindUserByUsername(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, _, mock := newTestUserRepo(t)

		mock.ExpectQuery("SELECT (.+) FROM users WHERE username = \\$1").
			WithArgs("ChefJohn").
			WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(3, "ChefJohn", "hash", nil, "bio"))

		user, err := repo.FindUserByUsername(context.Background(), "ChefJohn")
		require.NoError(t, err)

		assert.Equal(t, int64(3), user.ID)
		assert.Equal(t, "hash", user.PasswordHash)
		assert.Nil(t, user.ImageURL)
		require.NotNil(t, user.Bio)
		assert.Equal(t, "bio", *user.Bio)
	})

	t.Run("not found", func(t *testing.T) {
		repo, _, mock := newTestUserRepo(t)

		mock.ExpectQuery("SELECT (.+) FROM users").
			WithArgs("ghost").
			WillReturnRows(sqlmock.NewRows(userRowColumns))

		_, err := repo.FindUserByUsername(context.Background(), "ghost")
		assert.ErrorIs(t, err, ErrNoUserWasFound)
	})

	t.Run("driver error", func(t *testing.T) {
		repo, _, mock := newTestUserRepo(t)

		mock.ExpectQuery("SELECT (.+) FROM users").WillReturnError(errors.New("timeout"))

		_, err := repo.FindUserByUsername(context.Background(), "ChefJohn")
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})

	t.Run("malformed row", func(t *testing.T) {
		repo, _, mock := newTestUserRepo(t)

		mock.ExpectQuery("SELECT (.+) FROM users").
			WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow("not-a-number", "ChefJohn", "hash", nil, nil))

		_, err := repo.FindUserByUsername(context.Background(), "ChefJohn")
		assert.ErrorIs(t, err, ErrScanningRow)
		assert.NotErrorIs(t, err, ErrExecutingQuery)
	})

	t.Run("row iteration error", func(t *testing.T) {
		repo, _, mock := newTestUserRepo(t)

		mock.ExpectQuery("SELECT (.+) FROM users").
			WillReturnRows(sqlmock.NewRows(userRowColumns).RowError(0, errors.New("connection reset")).
				AddRow(1, "ChefJohn", "hash", nil, nil))

		_, err := repo.FindUserByUsername(context.Background(), "ChefJohn")
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})
}

func TestFindUserByID(t *testing.T) {
	repo, _, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE id = \\$1").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(userRowColumns))

	_, err := repo.FindUserByID(context.Background(), 5)

	assert.ErrorIs(t, err, ErrNoUserWasFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTransaction_Commit(t *testing.T) {
	repo, db, mock := newTestUserRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	err := db.WithinTransaction(context.Background(), func(ctx context.Context) error {
		_, err := repo.CreateUser(ctx, models.User{Username: "a", PasswordHash: "b"})
		return err
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTransaction_RollbackOnError(t *testing.T) {
	repo, db, mock := newTestUserRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))
	mock.ExpectRollback()

	err := db.WithinTransaction(context.Background(), func(ctx context.Context) error {
		_, err := repo.CreateUser(ctx, models.User{Username: "a", PasswordHash: "b"})
		return err
	})

	assert.ErrorIs(t, err, ErrUsernameAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTransaction_BeginError(t *testing.T) {
	_, db, mock := newTestUserRepo(t)

	mock.ExpectBegin().WillReturnError(errors.New("pool exhausted"))

	called := false
	err := db.WithinTransaction(context.Background(), func(ctx context.Context) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, ErrBeginningTransaction)
	assert.False(t, called)
}

func TestWithinTransaction_CommitError(t *testing.T) {
	_, db, mock := newTestUserRepo(t)

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(errors.New("serialization failure"))

	err := db.WithinTransaction(context.Background(), func(ctx context.Context) error {
		return nil
	})

	assert.ErrorIs(t, err, ErrCommitingTransaction)
}

func TestWithinTransaction_NestedSharesTransaction(t *testing.T) {
	_, db, mock := newTestUserRepo(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := db.WithinTransaction(context.Background(), func(ctx context.Context) error {
		return db.WithinTransaction(ctx, func(ctx context.Context) error {
			return nil
		})
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
