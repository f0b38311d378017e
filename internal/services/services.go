package services

import (
	"github.com/sahakari/go-fd-product/internal/config"
	"github.com/sahakari/go-fd-product/internal/repositories"
)

type service struct {
	srv *Services
}

type Services struct {
	conf config.Config

	sqlRepo repositories.SQLRepository

	common service

	Product *product
}

func New(
	conf config.Config,
	sqlRepo repositories.SQLRepository,
) *Services {
	srv := &Services{
		conf:    conf,
		sqlRepo: sqlRepo,
	}
	srv.common.srv = srv
	srv.Product = (*product)(&srv.common)

	return srv
}
