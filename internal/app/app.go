package app

import (
	"go.uber.org/fx"

	"instagrow/internal/config"
	"instagrow/internal/database"
	"instagrow/internal/logger"
	"instagrow/internal/observability"
	repositorycatalog "instagrow/internal/repository/catalog"
	repositoryorder "instagrow/internal/repository/order"
	"instagrow/internal/seeder"
	httpserver "instagrow/internal/server/http"
	servicecatalog "instagrow/internal/service/catalog"
	serviceorder "instagrow/internal/service/order"
	transporthttp "instagrow/internal/transport/http"
	"instagrow/internal/validation"
)

// Core provides the foundational modules shared across executables.
var Core = fx.Options(
	config.Module,
	database.Module,
	logger.Module,
	observability.Module,
	validation.Module,
	repositorycatalog.Module,
	repositoryorder.Module,
	servicecatalog.Module,
	serviceorder.Module,
	seeder.Module,
)

// HTTP wires the HTTP transport on top of the core modules.
var HTTP = fx.Options(
	Core,
	httpserver.Module,
	transporthttp.Module,
)

// Module is the default application wiring (HTTP only).
var Module = HTTP
