package components

import (
	"context"

	"salon-booking/internal/domain/appointment"
	"salon-booking/internal/domain/schedule"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/usecase"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
	fx.Invoke(seedOwner),
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) *schedule.Generator {
		return schedule.NewGenerator(schedule.DefaultWeeklyHours(), cfg.Salon.Location())
	},
	appointment.NewFactory,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewAccountCommands,
		commands.NewServiceCommands,
		commands.NewAppointmentCommands,
		commands.NewNotificationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewServiceQueries,
		queries.NewAvailabilityQueries,
		queries.NewAppointmentQueries,
		queries.NewNotificationQueries,
		queries.NewRatingQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func seedOwner(lc fx.Lifecycle, cfg config.Config, auth commands.AuthCommands) {
	if cfg.Owner.Email == "" {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			_, err := auth.EnsureOwner(ctx, commands.RegisterInput{
				Name:     cfg.Owner.Name,
				Email:    cfg.Owner.Email,
				Phone:    cfg.Owner.Phone,
				Password: cfg.Owner.Password,
			})
			return err
		},
	})
}
