package bootstrap

import (
	"meetbook/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	components.RepositoryModule,
	components.ProviderModule,
	components.UseCaseModule,
	components.HandlerModule,
)
