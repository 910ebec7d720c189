package operator

import (
	"errors"

	"github.com/avtorazbor/internal/http/response"
	"github.com/avtorazbor/internal/service"

	"github.com/gin-gonic/gin"
)

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

var partWriteErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidPrice, code: response.CodeBadRequest},
	{target: service.ErrInvalidQuantity, code: response.CodeBadRequest},
	{target: service.ErrSupplierNotFound, code: response.CodeBadRequest},
	{target: service.ErrPartNotFound, code: response.CodeNotFound},
}

var partImageErrorRules = []mappedHandlerError{
	{target: service.ErrPartNotFound, code: response.CodeNotFound},
	{target: service.ErrUploadTooLarge, code: response.CodeBadRequest},
	{target: service.ErrUploadBadExtension, code: response.CodeBadRequest},
	{target: service.ErrUploadBadType, code: response.CodeBadRequest},
	{target: service.ErrUploadBadImage, code: response.CodeBadRequest},
	{target: service.ErrUploadTooBig, code: response.CodeBadRequest},
}

var supplierWriteErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidRating, code: response.CodeBadRequest},
	{target: service.ErrSupplierNameTaken, code: response.CodeConflict},
	{target: service.ErrSupplierNotFound, code: response.CodeNotFound},
	{target: service.ErrSupplierReferenced, code: response.CodeConflict},
}

var inventoryWriteErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidQuantity, code: response.CodeBadRequest},
	{target: service.ErrPartNotFound, code: response.CodeBadRequest},
	{target: service.ErrSupplierNotFound, code: response.CodeBadRequest},
	{target: service.ErrInventoryNotFound, code: response.CodeNotFound},
}

var userAdminErrorRules = []mappedHandlerError{
	{target: service.ErrUserNotFound, code: response.CodeNotFound},
}

var orderStatusErrorRules = []mappedHandlerError{
	{target: service.ErrOrderNotFound, code: response.CodeNotFound},
	{target: service.ErrUnknownOrderStatus, code: response.CodeBadRequest},
	{target: service.ErrOrderNotPending, code: response.CodeBadRequest},
}
