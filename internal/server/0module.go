package server

import (
	"go.uber.org/fx"

	"mergington.edu/activities-backend/internal/server/httpserver"
	"mergington.edu/activities-backend/internal/server/svr"
)

func Module() fx.Option {
	return fx.Module("server",
		fx.Provide(httpserver.Create),
		fx.Provide(svr.CreateEndpointGroups))
}
