package public

import (
	"errors"

	"github.com/avtorazbor/internal/http/response"
	"github.com/avtorazbor/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError binds one service sentinel to a response code.
// Matched errors respond with the sentinel's own message; only the
// fallback logs and exposes the wrapped cause.
type mappedHandlerError struct {
	target error
	code   int
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackMsg string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, err.Error(), nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackMsg, err)
}

var registerErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidEmail, code: response.CodeBadRequest},
	{target: service.ErrWeakPassword, code: response.CodeBadRequest},
	{target: service.ErrRoleNotAllowed, code: response.CodeForbidden},
	{target: service.ErrUsernameTaken, code: response.CodeConflict},
	{target: service.ErrEmailTaken, code: response.CodeConflict},
}

var profileUpdateErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidEmail, code: response.CodeBadRequest},
	{target: service.ErrWeakPassword, code: response.CodeBadRequest},
	{target: service.ErrUsernameTaken, code: response.CodeConflict},
	{target: service.ErrEmailTaken, code: response.CodeConflict},
	{target: service.ErrUserNotFound, code: response.CodeNotFound},
}

var loginErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidCredentials, code: response.CodeUnauthorized},
}

var accountReadErrorRules = []mappedHandlerError{
	{target: service.ErrUserNotFound, code: response.CodeNotFound},
}

var partReadErrorRules = []mappedHandlerError{
	{target: service.ErrPartNotFound, code: response.CodeNotFound},
}

var supplierReadErrorRules = []mappedHandlerError{
	{target: service.ErrSupplierNotFound, code: response.CodeNotFound},
}

var orderCreateErrorRules = []mappedHandlerError{
	{target: service.ErrEmptyOrderItems, code: response.CodeBadRequest},
	{target: service.ErrInvalidOrderItem, code: response.CodeBadRequest},
	{target: service.ErrInvalidDeliveryMethod, code: response.CodeBadRequest},
	{target: service.ErrAddressRequired, code: response.CodeBadRequest},
	{target: service.ErrInsufficientStock, code: response.CodeBadRequest},
	{target: service.ErrPartNotFound, code: response.CodeNotFound},
}

var orderReadErrorRules = []mappedHandlerError{
	{target: service.ErrOrderNotFound, code: response.CodeNotFound},
	{target: service.ErrOrderAccessDenied, code: response.CodeForbidden},
}

var orderCancelErrorRules = []mappedHandlerError{
	{target: service.ErrOrderNotFound, code: response.CodeNotFound},
	{target: service.ErrOrderAccessDenied, code: response.CodeForbidden},
	{target: service.ErrOrderNotPending, code: response.CodeBadRequest},
}

var reviewWriteErrorRules = []mappedHandlerError{
	{target: service.ErrRoleNotAllowed, code: response.CodeForbidden},
	{target: service.ErrInvalidRating, code: response.CodeBadRequest},
	{target: service.ErrPartNotFound, code: response.CodeNotFound},
	{target: service.ErrReviewExists, code: response.CodeConflict},
	{target: service.ErrReviewNotFound, code: response.CodeNotFound},
	{target: service.ErrReviewAccessDenied, code: response.CodeForbidden},
}

var favoriteErrorRules = []mappedHandlerError{
	{target: service.ErrPartNotFound, code: response.CodeNotFound},
	{target: service.ErrFavoriteExists, code: response.CodeConflict},
	{target: service.ErrFavoriteNotFound, code: response.CodeNotFound},
}
