package inmem

import (
	"go.uber.org/fx"

	"github.com/shopzone/checkout/internal/domain/repository"
)

// Module wires the in-memory catalog into the fx graph.
var Module = fx.Provide(
	func() *Catalog { return NewCatalog(DefaultProducts()) },
	func(c *Catalog) repository.Catalog { return c },
)
