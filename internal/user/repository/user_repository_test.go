package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jo4ovms/psychology-project/internal/user/domain"
)

var userRowColumns = []string{"id", "name", "email", "password", "role", "created_at", "updated_at"}

func newUser() *domain.User {
	return &domain.User{
		Name:     "Ana Souza",
		Email:    "ana@example.com",
		Password: "hash",
		Role:     domain.RolePsychologist,
	}
}

func TestPostgreSQLUserRepository_Create(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		user := newUser()
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
			WithArgs(user.Name, user.Email, user.Password, "psychologist", sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(12)))

		err = NewPostgreSQLUserRepository(db).Create(context.Background(), user)

		require.NoError(t, err)
		assert.Equal(t, int64(12), user.ID)
		assert.False(t, user.CreatedAt.IsZero())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error_DuplicateEmail", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
			WillReturnError(&pq.Error{Code: "23505"})

		err = NewPostgreSQLUserRepository(db).Create(context.Background(), newUser())

		assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
	})
}

func TestPostgreSQLUserRepository_GetByID(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		now := time.Now().UTC()
		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows(userRowColumns).
				AddRow(int64(1), "Ana", "ana@example.com", "hash", "admin", now, now))

		user, err := NewPostgreSQLUserRepository(db).GetByID(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, domain.RoleAdmin, user.Role)
		assert.Equal(t, "ana@example.com", user.Email)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
			WithArgs(int64(9)).
			WillReturnError(sql.ErrNoRows)

		user, err := NewPostgreSQLUserRepository(db).GetByID(context.Background(), 9)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("Error_Database", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
			WillReturnError(errors.New("connection reset"))

		_, err = NewPostgreSQLUserRepository(db).GetByID(context.Background(), 1)

		assert.ErrorContains(t, err, "failed to get user")
	})
}

func TestPostgreSQLUserRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY id ASC LIMIT $1 OFFSET $2")).
		WithArgs(2, 0).
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow(int64(1), "Ana", "ana@example.com", "hash", "admin", now, now).
			AddRow(int64(2), "Bia", "bia@example.com", "hash", "psychologist", now, now))

	users, err := NewPostgreSQLUserRepository(db).List(context.Background(), 0, 2)

	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, int64(2), users[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLUserRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	user := newUser()
	user.ID = 3
	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET")).
		WithArgs(user.Name, user.Email, user.Password, "psychologist", sqlmock.AnyArg(), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, NewPostgreSQLUserRepository(db).Update(context.Background(), user))
	assert.False(t, user.UpdatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLUserRepository_Delete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id = $1")).
			WithArgs(int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, NewPostgreSQLUserRepository(db).Delete(context.Background(), 3))
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id = $1")).
			WithArgs(int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err = NewPostgreSQLUserRepository(db).Delete(context.Background(), 3)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestMySQLUserRepository_Create(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		user := newUser()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
			WithArgs(user.Name, user.Email, user.Password, "psychologist", sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(21, 1))

		require.NoError(t, NewMySQLUserRepository(db).Create(context.Background(), user))
		assert.Equal(t, int64(21), user.ID)
	})

	t.Run("Error_DuplicateEmail", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
			WillReturnError(&mysql.MySQLError{Number: 1062})

		err = NewMySQLUserRepository(db).Create(context.Background(), newUser())
		assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
	})
}

func TestMySQLUserRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = ?")).
		WithArgs(int64(4)).
		WillReturnError(sql.ErrNoRows)

	_, err = NewMySQLUserRepository(db).GetByID(context.Background(), 4)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestMySQLUserRepository_ListUpdateDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now().UTC()
	repo := NewMySQLUserRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY id ASC LIMIT ? OFFSET ?")).
		WithArgs(10, 5).
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow(int64(6), "Ana", "ana@example.com", "hash", "admin", now, now))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET")).
		WillReturnError(&mysql.MySQLError{Number: 1062})
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id = ?")).
		WithArgs(int64(6)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	users, err := repo.List(ctx, 5, 10)
	require.NoError(t, err)
	require.Len(t, users, 1)

	err = repo.Update(ctx, users[0])
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)

	assert.NoError(t, repo.Delete(ctx, 6))
	assert.NoError(t, mock.ExpectationsWereMet())
}
