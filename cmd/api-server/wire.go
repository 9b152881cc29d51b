//go:build wireinject
// +build wireinject

package main

import (
	"Immob/config"
	"Immob/dao"
	"Immob/dao/cache"
	"Immob/handler"
	"Immob/pkg/client"
	"Immob/pkg/database"
	"Immob/pkg/mail"
	"Immob/pkg/server"
	"Immob/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		client.NewRedisClient,
		config.ProvideOssConfig,
		mail.NewSender,
		server.NewGinEngine,
		cache.ProviderSet,
		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.User), "*"),
		wire.Struct(new(handler.Property), "*"),
		wire.Struct(new(handler.Favorite), "*"),
		wire.Struct(new(handler.Review), "*"),
		wire.Struct(new(handler.Feedback), "*"),
		wire.Struct(new(handler.Notification), "*"),
		wire.Struct(new(handler.Web), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,

		service.ProviderSet,
		database.NewDB,
	)
	return nil
}
