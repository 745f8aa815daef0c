package bootstrap

import (
	"toolshare/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// InfraModule wires the external resources: PostgreSQL, Redis, JWT signing.
var InfraModule = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	RedisModule,
	JWTModule,
)

// AppModule wires everything that sits on top of the infrastructure.
var AppModule = fx.Options(
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)

var Module = fx.Options(
	InfraModule,
	AppModule,
	JobsModule,
)
