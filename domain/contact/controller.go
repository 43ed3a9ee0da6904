package contact

import (
	"github.com/Orbtrix-Space/Orbtrix-website/config/router"
	"github.com/Orbtrix-Space/Orbtrix-website/internal/intake"
	"github.com/Orbtrix-Space/Orbtrix-website/internal/log"
	"github.com/Orbtrix-Space/Orbtrix-website/internal/metrics"
	"github.com/Orbtrix-Space/Orbtrix-website/internal/store"
)

const (
	receivedMessage     = "Contact submission received"
	validationMessage   = "Validation error"
	submitFailedMessage = "Failed to submit contact form"
	listFailedMessage   = "Failed to fetch contact submissions"
)

func NewContactController(
	st store.Store,
	logger *log.Logger,
	intakeMetrics *metrics.IntakeMetrics,
) *router.RESTController {

	return router.NewRESTController(
		"ContactController",
		"/api/contact",
		func(rs *router.RouterService, c *router.RESTController) {
			service := NewContactService(logger, st, intake.NewValidator(), intakeMetrics)

			rs.AddPostHandler(c, "", submitContactHandler(service))
			rs.AddGetHandler(c, "", getAllSubmissionsHandler(service))
		},
	)
}

func submitContactHandler(service ContactService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		payload, failure := router.BindJSONObject(ctx)
		if failure != nil {
			return failure
		}

		response, err := service.Submit(ctx.Request.Context(), payload)
		if err != nil {
			return router.FailureResult(err, validationMessage, submitFailedMessage)
		}

		return router.CreatedResult(response.ID, receivedMessage)
	}
}

func getAllSubmissionsHandler(service ContactService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		response, err := service.GetAllSubmissions(ctx.Request.Context())
		if err != nil {
			return router.FailureResult(err, listFailedMessage, listFailedMessage)
		}

		return router.ListResult(response)
	}
}
