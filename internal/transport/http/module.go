package http

import (
	"go.uber.org/fx"

	admintransport "instagrow/internal/transport/http/admin"
	catalogtransport "instagrow/internal/transport/http/catalog"
	ordertransport "instagrow/internal/transport/http/order"
	systemtransport "instagrow/internal/transport/http/system"
)

// Module aggregates all HTTP transport handlers.
var Module = fx.Options(
	catalogtransport.Module,
	ordertransport.Module,
	admintransport.Module,
	systemtransport.Module,
)
