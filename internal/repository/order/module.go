package order

import "go.uber.org/fx"

// Module provides the order store to Fx.
var Module = fx.Provide(
	fx.Annotate(NewRepository, fx.As(new(Store))),
)
