package di

import (
	"go.uber.org/fx"

	"github.com/shopzone/checkout/internal/adapter/razorpay"
	"github.com/shopzone/checkout/internal/app"
	"github.com/shopzone/checkout/internal/config"
	"github.com/shopzone/checkout/internal/logger"
	"github.com/shopzone/checkout/internal/metrics"
	"github.com/shopzone/checkout/internal/pkg/signature"
	"github.com/shopzone/checkout/internal/server/http/handlers"
	"github.com/shopzone/checkout/internal/server/http/router"
	"github.com/shopzone/checkout/internal/storage/inmem"
	"github.com/shopzone/checkout/internal/storage/postgres"
	"github.com/shopzone/checkout/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		metrics.Module,
		signature.Module,
		postgres.Module,
		inmem.Module,
		razorpay.Module,
		usecase.Module,
		fx.Provide(
			func(client razorpay.Client) usecase.OrderProvider { return client },
			func(f *app.CheckoutFacade) handlers.CheckoutFacade { return f },
			func(s *postgres.Storage) handlers.Pinger { return s },
		),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
