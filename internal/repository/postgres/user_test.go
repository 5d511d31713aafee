package postgres

import (
	"fmt"
	"testing"

	"smartedybot/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestUserRepo_UpsertUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepo(db)

	user := domain.User{UserID: 123, FirstName: "Anna", LanguageCode: "de"}

	mock.ExpectExec("INSERT INTO users").
		WithArgs(user.UserID, user.FirstName, user.LanguageCode).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.UpsertUser(user)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_UpsertUser_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepo(db)

	mock.ExpectExec("INSERT INTO users").
		WithArgs(int64(1), "", "").
		WillReturnError(fmt.Errorf("connection reset"))

	err = repo.UpsertUser(domain.User{UserID: 1})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
