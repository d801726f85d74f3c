package metrics

import "go.uber.org/fx"

// Module provides service metrics to the fx container.
var Module = fx.Provide(New)
