package monitoring

import (
	"context"
	"net/http"
	"time"

	"github.com/Orbtrix-Space/Orbtrix-website/config/router"
	"github.com/Orbtrix-Space/Orbtrix-website/internal/log"
)

const storePingTimeout = 2 * time.Second

// Pinger is the slice of the submission store the health check needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthStatus struct {
	Store       int    `json:"store"` // 1 = healthy, 0 = unhealthy
	StoreDriver string `json:"store_driver"`
	Uptime      int    `json:"uptime"` // seconds
}

type MonitoringController struct {
	store       Pinger
	storeDriver string
	serviceName string
	logger      *log.Logger
	startTime   time.Time
}

func NewMonitoringController(store Pinger, storeDriver, serviceName string, logger *log.Logger) *router.RESTController {
	ctrl := &MonitoringController{
		store:       store,
		storeDriver: storeDriver,
		serviceName: serviceName,
		logger:      logger,
		startTime:   time.Now(),
	}

	return router.NewRESTController(
		"MonitoringController",
		"/",
		func(routerService *router.RouterService, controller *router.RESTController) {
			routerService.AddGetHandler(controller, "", func(c *router.RequestContext) *router.ServiceResult {
				return ctrl.monitor(c)
			})

			routerService.AddGetHandler(controller, "health", func(c *router.RequestContext) *router.ServiceResult {
				return ctrl.healthCheck(routerService, c)
			})
		},
	)
}

func (ctrl *MonitoringController) healthCheck(
	routerService *router.RouterService,
	c *router.RequestContext,
) *router.ServiceResult {
	logger := routerService.GetLogger(c)
	logger.Debug("Health check endpoint called")

	ctx, cancel := context.WithTimeout(c.Request.Context(), storePingTimeout)
	defer cancel()

	return router.OKResult(ctrl.performHealthChecks(ctx, logger), ctrl.serviceName+" health check completed")
}

func (ctrl *MonitoringController) monitor(
	c *router.RequestContext,
) *router.ServiceResult {
	return &router.ServiceResult{
		StatusCode: http.StatusOK,
		Data:       "Monitoring endpoint is operational.",
		Message:    "Monitoring successful",
	}
}

func (ctrl *MonitoringController) performHealthChecks(ctx context.Context, logger *log.Logger) HealthStatus {
	status := HealthStatus{
		StoreDriver: ctrl.storeDriver,
		Uptime:      int(time.Since(ctrl.startTime).Seconds()),
	}

	if ctrl.store == nil {
		logger.Error("Store health check skipped: no store configured")
		return status
	}

	if err := ctrl.store.Ping(ctx); err != nil {
		logger.Error("Store health check failed", "error", err)
		return status
	}

	status.Store = 1
	return status
}
