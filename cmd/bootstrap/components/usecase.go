package components

import (
	"toolshare/internal/domain/pricing"
	"toolshare/internal/domain/reservation"
	"toolshare/internal/pkg/clock"
	"toolshare/internal/pkg/config"
	"toolshare/internal/pkg/password"
	"toolshare/internal/usecase"
	"toolshare/internal/usecase/commands"
	"toolshare/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	func(cfg config.Config) clock.Clock {
		return clock.NewRealClockIn(cfg.Server.Location())
	},
	password.NewBcryptHasher,
	fx.Annotate(
		pricing.NewDailyRateCalculator,
		fx.As(new(pricing.PriceCalculator)),
	),
	func(clk clock.Clock, calc pricing.PriceCalculator) reservation.Services {
		return reservation.Services{
			Clock:           clk,
			PriceCalculator: calc,
		}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewUserCommands,
		commands.NewToolCommands,
		commands.NewReservationCommands,
		commands.NewReviewCommands,
		commands.NewCompletionCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewToolQueries,
		queries.NewAvailabilityQueries,
		queries.NewReservationQueries,
		queries.NewReviewQueries,
		queries.NewAdminQueries,
		queries.NewReportQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
