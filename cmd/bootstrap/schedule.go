package bootstrap

import (
	"vetclinic-booking-api/internal/domain/schedule"
	"vetclinic-booking-api/internal/pkg/config"

	"go.uber.org/fx"
)

var ScheduleModule = fx.Module("schedule",
	fx.Provide(
		NewSchedulePolicy,
	),
)

func NewSchedulePolicy(cfg config.Config) (*schedule.Policy, error) {
	loc, err := cfg.Clinic.Location()
	if err != nil {
		return nil, err
	}
	return schedule.NewPolicy(loc), nil
}
