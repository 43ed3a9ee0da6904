package router

import (
	"github.com/gin-gonic/gin"
)

type RequestContext = gin.Context

type MiddlewareFunc = gin.HandlerFunc

// ServiceResult is what every handler returns. The envelope is
// {success, message, id?, errors?, data?}; Raw replaces the envelope entirely
// for endpoints that answer with a bare JSON value.
type ServiceResult struct {
	StatusCode int
	Message    string
	ID         string
	Errors     any
	Data       any
	Raw        any
}

type HandlerFunction func(*RequestContext) *ServiceResult

type RESTController struct {
	name         string
	mountPoint   string
	version      string
	handlerCount int
	prepare      func(*RouterService, *RESTController)
}

func (result *ServiceResult) ToJSON() any {
	if result.Raw != nil {
		return result.Raw
	}

	body := gin.H{
		"success": result.IsSuccess(),
		"message": result.Message,
	}

	if result.ID != "" {
		body["id"] = result.ID
	}

	if result.Errors != nil {
		body["errors"] = result.Errors
	}

	if result.Data != nil {
		body["data"] = result.Data
	}

	return body
}

func (result *ServiceResult) IsSuccess() bool {
	return result.StatusCode >= 200 && result.StatusCode < 300
}

func (result *ServiceResult) IsError() bool {
	return result.StatusCode >= 400
}
