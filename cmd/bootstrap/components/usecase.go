package components

import (
	"time"

	"salon-booking/internal/domain/schedule"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/pkg/metrics"
	"salon-booking/internal/usecase"
	"salon-booking/internal/usecase/availability"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"
	"salon-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewSchedulePolicy,
	NewAlternativesConfig,
	NewAvailabilityEngine,
	func(e *availability.Engine) availability.Checker { return e },
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAppointmentUseCase,
		commands.NewServiceUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAppointmentQueries,
		queries.NewServiceQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewSchedulePolicy(cfg config.Config) (*schedule.Policy, error) {
	loc, err := time.LoadLocation(cfg.Salon.TimeZone)
	if err != nil {
		return nil, errs.Wrapf(err, "load SALON_TIMEZONE %q", cfg.Salon.TimeZone)
	}
	opens, err := schedule.ParseTimeOfDay(cfg.Salon.OpensAt)
	if err != nil {
		return nil, errs.Wrap(err, "parse SALON_OPENS_AT")
	}
	closes, err := schedule.ParseTimeOfDay(cfg.Salon.ClosesAt)
	if err != nil {
		return nil, errs.Wrap(err, "parse SALON_CLOSES_AT")
	}
	closed, err := schedule.ParseWeekdays(cfg.Salon.ClosedDays)
	if err != nil {
		return nil, errs.Wrap(err, "parse SALON_CLOSED_DAYS")
	}
	return schedule.NewPolicy(schedule.PolicyConfig{
		OpensAt:    opens,
		ClosesAt:   closes,
		ClosedDays: closed,
		Location:   loc,
	})
}

func NewAlternativesConfig(cfg config.Config) (schedule.AlternativesConfig, error) {
	nextDayStart, err := schedule.ParseTimeOfDay(cfg.Availability.NextDayStartAt)
	if err != nil {
		return schedule.AlternativesConfig{}, errs.Wrap(err, "parse AVAILABILITY_NEXT_DAY_START_AT")
	}
	return schedule.AlternativesConfig{
		SameDayOffsets: cfg.Availability.SameDayOffsets,
		NextDayStartAt: nextDayStart,
		NextDaySlots:   cfg.Availability.NextDaySlots,
		NextDayStep:    cfg.Availability.NextDayStep,
	}, nil
}

func NewAvailabilityEngine(reads shared.CommandReads, policy *schedule.Policy, alt schedule.AlternativesConfig, clk clock.Clock, rec metrics.Recorder) *availability.Engine {
	return availability.NewEngine(reads, policy, alt, clk, rec)
}
