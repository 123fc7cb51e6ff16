package health

import (
	"go.uber.org/fx"
)

func NewModule() fx.Option {
	return fx.Provide(
		newReadiness,
		func(r *readiness) ComponentManager { return r },
		func(r *readiness) ReadinessChecker { return r },
	)
}
