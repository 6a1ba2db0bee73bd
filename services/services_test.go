package services_test

import (
	"path/filepath"
	"testing"

	"github.com/Abdul-Mateen-1/Railway-Management-System/database"
	"github.com/Abdul-Mateen-1/Railway-Management-System/models"
	"github.com/Abdul-Mateen-1/Railway-Management-System/repository"
	"github.com/Abdul-Mateen-1/Railway-Management-System/services"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) (*gorm.DB, repository.Repository) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "railsafar_test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	return db, repository.New(db)
}

func newTestBackend(t *testing.T) (*services.Backend, repository.Repository) {
	t.Helper()
	return newTestBackendWithPolicy(t, services.CancellationPolicy{AllowPending: true})
}

func newTestBackendWithPolicy(t *testing.T, policy services.CancellationPolicy) (*services.Backend, repository.Repository) {
	t.Helper()

	db, repo := newTestDB(t)
	backend := services.NewBackend(db, repo, nil, nil, policy)
	return backend, repo
}

func addTrain(t *testing.T, repo repository.Repository, number, name, trainType, route string) *models.Train {
	t.Helper()

	train := &models.Train{
		TrainNumber: number,
		TrainName:   name,
		Type:        trainType,
		Route:       route,
		Status:      "On-time",
	}
	require.NoError(t, repo.AddTrain(train))
	return train
}

func addUser(t *testing.T, repo repository.Repository, name, email, password, role string) *models.User {
	t.Helper()

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     role,
	}
	require.NoError(t, repo.AddUser(user))
	return user
}
