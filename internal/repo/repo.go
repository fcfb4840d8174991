package repo

import (
	"github.com/arta-commerce/bajetpay/internal/pg"
	creditrepo "github.com/arta-commerce/bajetpay/internal/repo/credit-repo"
	orderrepo "github.com/arta-commerce/bajetpay/internal/repo/order-repo"
	settingsrepo "github.com/arta-commerce/bajetpay/internal/repo/settings-repo"
	userrepo "github.com/arta-commerce/bajetpay/internal/repo/user-repo"
	"github.com/arta-commerce/bajetpay/internal/service/authservice"
	"github.com/arta-commerce/bajetpay/internal/service/creditservice"
	"github.com/arta-commerce/bajetpay/internal/service/gatewayservice"
)

type Repositories struct {
	UserRepo     authservice.Repo
	CreditRepo   creditservice.CreditRepo
	OrderRepo    *orderrepo.Repository
	SettingsRepo gatewayservice.SettingsRepo
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:     userrepo.New(conn),
		CreditRepo:   creditrepo.New(conn),
		OrderRepo:    orderrepo.New(conn),
		SettingsRepo: settingsrepo.New(conn),
	}
}
