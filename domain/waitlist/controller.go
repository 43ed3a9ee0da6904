package waitlist

import (
	"github.com/Orbtrix-Space/Orbtrix-website/config/router"
	"github.com/Orbtrix-Space/Orbtrix-website/internal/intake"
	"github.com/Orbtrix-Space/Orbtrix-website/internal/log"
	"github.com/Orbtrix-Space/Orbtrix-website/internal/metrics"
	"github.com/Orbtrix-Space/Orbtrix-website/internal/store"
)

const (
	joinedMessage          = "Successfully added to waitlist"
	alreadyJoinedMessage   = "You're already on the waitlist!"
	invalidEmailMessage    = "Please enter a valid email address"
	joinFailedMessage      = "Failed to join waitlist"
	listEntriesFailMessage = "Failed to fetch waitlist entries"
)

func NewWaitlistController(
	st store.Store,
	logger *log.Logger,
	intakeMetrics *metrics.IntakeMetrics,
) *router.RESTController {

	return router.NewRESTController(
		"WaitlistController",
		"/api/waitlist",
		func(rs *router.RouterService, c *router.RESTController) {
			service := NewWaitlistService(logger, st, intake.NewValidator(), intakeMetrics)

			rs.AddPostHandler(c, "", joinWaitlistHandler(service))
			rs.AddGetHandler(c, "", getAllWaitlistEntriesHandler(service))
		},
	)
}

func joinWaitlistHandler(service WaitlistService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		payload, failure := router.BindJSONObject(ctx)
		if failure != nil {
			return failure
		}

		response, err := service.Join(ctx.Request.Context(), payload)
		if err != nil {
			return router.FailureResult(err, invalidEmailMessage, joinFailedMessage)
		}

		if response.AlreadySubscribed {
			return router.OKResult(nil, alreadyJoinedMessage)
		}

		return router.CreatedResult(response.ID, joinedMessage)
	}
}

func getAllWaitlistEntriesHandler(service WaitlistService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		response, err := service.GetAllEntries(ctx.Request.Context())
		if err != nil {
			return router.FailureResult(err, listEntriesFailMessage, listEntriesFailMessage)
		}

		return router.ListResult(response)
	}
}
