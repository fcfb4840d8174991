package repo

import (
	"testing"

	creditrepo "github.com/arta-commerce/bajetpay/internal/repo/credit-repo"
	orderrepo "github.com/arta-commerce/bajetpay/internal/repo/order-repo"
	settingsrepo "github.com/arta-commerce/bajetpay/internal/repo/settings-repo"
	userrepo "github.com/arta-commerce/bajetpay/internal/repo/user-repo"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.UserRepo)
	assert.NotNil(t, repo.CreditRepo)
	assert.NotNil(t, repo.OrderRepo)
	assert.NotNil(t, repo.SettingsRepo)

	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &creditrepo.Repository{}, repo.CreditRepo)
	assert.IsType(t, &orderrepo.Repository{}, repo.OrderRepo)
	assert.IsType(t, &settingsrepo.Repository{}, repo.SettingsRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
