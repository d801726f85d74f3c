package razorpay

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/shopzone/checkout/internal/config"
)

// Module exposes the provider client implementation to the fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(p.Config.ProviderAddress, p.Config.ProviderKeyID, p.Config.ProviderKeySecret, p.Config.ProviderTimeout, p.Logger)
}
