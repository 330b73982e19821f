package apierr

import (
	"errors"
	"net/http"

	"github.com/bilgiteknoresmi-prog/3d-baski-studio/pkg/zerror"
)

// ErrorResponse is what an error page shows to the user.
type ErrorResponse struct {
	Code    string
	Message string

	// StatusCode is the status code for the error response.
	StatusCode int
}

func New(err error) ErrorResponse {
	return errorToErrorResponse(err)
}

var InternalServerErr = ErrorResponse{
	Code:       "internalServerError",
	Message:    "Beklenmeyen bir hata oluştu.",
	StatusCode: http.StatusInternalServerError,
}

var NotFoundErr = ErrorResponse{
	Code:       "notFound",
	Message:    "Sayfa bulunamadı.",
	StatusCode: http.StatusNotFound,
}

var MethodNotAllowedErr = ErrorResponse{
	Code:       "methodNotAllowed",
	Message:    "Bu işlem desteklenmiyor.",
	StatusCode: http.StatusMethodNotAllowed,
}

func errorToErrorResponse(err error) ErrorResponse {
	var zErr zerror.ZError
	if errors.As(err, &zErr) {
		return ErrorResponse{
			Code:       zErr.Code(),
			Message:    zErr.Msg(),
			StatusCode: ZErrorStatusToHTTPStatus(zErr.Status()),
		}
	}

	return InternalServerErr
}

func ZErrorStatusToHTTPStatus(status zerror.Status) int {
	switch status {
	case zerror.StatusUnauthorized:
		return http.StatusUnauthorized
	case zerror.StatusForbidden:
		return http.StatusForbidden
	case zerror.StatusNotFound:
		return http.StatusNotFound
	case zerror.StatusUnprocessableEntity:
		return http.StatusUnprocessableEntity
	case zerror.StatusConflict:
		return http.StatusConflict
	case zerror.StatusTooManyRequests:
		return http.StatusTooManyRequests
	case zerror.StatusBadRequest:
		return http.StatusBadRequest
	case zerror.StatusValidationFailed:
		return http.StatusBadRequest
	case zerror.StatusUnknown, zerror.StatusInternalServerError:
		return http.StatusInternalServerError
	case zerror.StatusTimeout:
		return http.StatusGatewayTimeout
	case zerror.StatusNotImplemented:
		return http.StatusNotImplemented
	case zerror.StatusBadGateway:
		return http.StatusBadGateway
	case zerror.StatusServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
