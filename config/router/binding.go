package router

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

const invalidRequestBodyMessage = "Invalid request body"

var errTrailingData = errors.New("unexpected data after JSON value")

// BindJSONObject decodes the request body as exactly one JSON object. Any
// other body yields a 400 result, or 413 when it exceeds the body limit.
func BindJSONObject(ctx *RequestContext) (map[string]any, *ServiceResult) {
	payload, err := decodeJSONObject(ctx.Request.Body)
	if err != nil {
		if IsBodyTooLarge(err) {
			return nil, ErrorResult(http.StatusRequestEntityTooLarge, "Request payload too large", nil)
		}

		GetLogger(ctx).Warn("Rejected request body", "error", err)
		return nil, BadRequestResult(invalidRequestBodyMessage, nil)
	}

	if payload == nil {
		return nil, BadRequestResult(invalidRequestBodyMessage, nil)
	}

	return payload, nil
}

func decodeJSONObject(body io.Reader) (map[string]any, error) {
	if body == nil {
		return nil, io.EOF
	}

	var payload map[string]any
	dec := json.NewDecoder(body)
	if err := dec.Decode(&payload); err != nil {
		return nil, err
	}

	var extra json.RawMessage
	switch err := dec.Decode(&extra); {
	case errors.Is(err, io.EOF):
		return payload, nil
	case err != nil:
		return nil, err
	default:
		return nil, errTrailingData
	}
}
