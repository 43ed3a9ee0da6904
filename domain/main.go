package domain

import (
	"github.com/Orbtrix-Space/Orbtrix-website/config"
	"github.com/Orbtrix-Space/Orbtrix-website/domain/contact"
	"github.com/Orbtrix-Space/Orbtrix-website/domain/monitoring"
	"github.com/Orbtrix-Space/Orbtrix-website/domain/waitlist"
	"github.com/Orbtrix-Space/Orbtrix-website/internal/metrics"
)

func SetupCoreDomain(appConfig *config.ApplicationConfig) {
	rs := appConfig.RouterService
	intakeMetrics := metrics.NewIntakeMetrics(rs.MetricsRegistry())

	rs.MountController(monitoring.NewMonitoringController(appConfig.Store, appConfig.Config.StoreDriver, appConfig.Config.ServiceName, appConfig.Logger))
	rs.MountController(contact.NewContactController(appConfig.Store, appConfig.Logger, intakeMetrics))
	rs.MountController(waitlist.NewWaitlistController(appConfig.Store, appConfig.Logger, intakeMetrics))
}
