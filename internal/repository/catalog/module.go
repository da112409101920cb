package catalog

import "go.uber.org/fx"

// Module provides the package store to Fx.
var Module = fx.Provide(
	fx.Annotate(NewRepository, fx.As(new(Store))),
)
