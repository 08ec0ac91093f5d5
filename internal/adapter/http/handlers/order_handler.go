package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	request "imagine_hub/internal/adapter/http/dto/request"
	response "imagine_hub/internal/adapter/http/dto/response"
	"imagine_hub/internal/usecase"
	"imagine_hub/internal/usecase/interfaces"
	"imagine_hub/internal/validation"
	"imagine_hub/pkg"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
)

var errInvalidExtraIndex = pkg.NewDomainErrorSimple("INVALID_INDEX", "Extra index must be an integer", http.StatusBadRequest)

// OrderHandler handles the order editing session endpoints.
//
// Every endpoint is one discrete edit command against a session order;
// the response always carries the full order so the UI can re-render.

type OrderHandler struct {
	usecase   usecase.IOrderUseCase
	validator *validatorv10.Validate
	maxImage  int64
}

func NewOrderHandler(uc usecase.IOrderUseCase, v *validatorv10.Validate, maxImageBytes int64) *OrderHandler {
	return &OrderHandler{usecase: uc, validator: v, maxImage: maxImageBytes}
}

// CreateOrder godoc
// @Summary  Start an editing session
// @Tags     orders
// @Produce  json
// @Success  201 {object} response.OrderResponse
// @Router   /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	order, err := h.usecase.Create(c.Request.Context())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromOrder(order))
}

// GetOrder godoc
// @Summary  Current order of a session
// @Tags     orders
// @Produce  json
// @Param    id path string true "order id"
// @Success  200 {object} response.OrderResponse
// @Router   /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// UpdateOrder godoc
// @Summary  Apply scalar field edits
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    id   path string true "order id"
// @Param    body body request.UpdateOrderRequest true "field edits"
// @Success  200 {object} response.OrderResponse
// @Router   /orders/{id} [patch]
func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	var payload request.UpdateOrderRequest
	if err := validation.BindAndValidate(c, &payload, h.validator); err != nil {
		return
	}

	order, err := h.usecase.UpdateFields(c.Request.Context(), c.Param("id"), payload.ToEdit())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// DeleteOrder godoc
// @Summary  Discard an editing session
// @Tags     orders
// @Param    id path string true "order id"
// @Success  204
// @Router   /orders/{id} [delete]
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	if err := h.usecase.Discard(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// AddExtra godoc
// @Summary  Append a default line item
// @Tags     extras
// @Produce  json
// @Param    id path string true "order id"
// @Success  200 {object} response.OrderResponse
// @Router   /orders/{id}/extras [post]
func (h *OrderHandler) AddExtra(c *gin.Context) {
	order, err := h.usecase.AddExtra(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// UpdateExtra godoc
// @Summary  Edit one line item
// @Tags     extras
// @Accept   json
// @Produce  json
// @Param    id    path string true "order id"
// @Param    index path int    true "extra index"
// @Param    body  body request.UpdateExtraRequest true "line item edits"
// @Success  200 {object} response.OrderResponse
// @Router   /orders/{id}/extras/{index} [patch]
func (h *OrderHandler) UpdateExtra(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(errInvalidExtraIndex.HTTPStatus, errInvalidExtraIndex.ToHTTPError())
		return
	}

	var payload request.UpdateExtraRequest
	if err := validation.BindAndValidate(c, &payload, h.validator); err != nil {
		return
	}

	order, err := h.usecase.UpdateExtra(c.Request.Context(), c.Param("id"), index, payload.ToEdit())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// RemoveExtra godoc
// @Summary  Remove one line item
// @Tags     extras
// @Produce  json
// @Param    id    path string true "order id"
// @Param    index path int    true "extra index"
// @Success  200 {object} response.OrderResponse
// @Router   /orders/{id}/extras/{index} [delete]
func (h *OrderHandler) RemoveExtra(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(errInvalidExtraIndex.HTTPStatus, errInvalidExtraIndex.ToHTTPError())
		return
	}

	// Out-of-bounds indexes (negative included) are absorbed by the
	// model; the unchanged order comes back with 200.
	order, err := h.usecase.RemoveExtra(c.Request.Context(), c.Param("id"), index)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// UploadImage godoc
// @Summary  Upload the product image
// @Tags     image
// @Accept   multipart/form-data
// @Produce  json
// @Param    id    path     string true "order id"
// @Param    image formData file   true "image file"
// @Success  200 {object} response.OrderResponse
// @Failure  415 {object} pkg.HTTPError
// @Router   /orders/{id}/image [post]
func (h *OrderHandler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("MISSING_IMAGE", "Multipart field 'image' is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if file.Size > h.maxImage {
		appErr := pkg.NewDomainErrorSimple("IMAGE_TOO_LARGE", "Image exceeds the upload size limit", http.StatusRequestEntityTooLarge)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	src, err := file.Open()
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	order, err := h.usecase.AttachImage(c.Request.Context(), c.Param("id"), data, file.Filename)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// ClearImage godoc
// @Summary  Clear the product image
// @Tags     image
// @Produce  json
// @Param    id path string true "order id"
// @Success  200 {object} response.OrderResponse
// @Router   /orders/{id}/image [delete]
func (h *OrderHandler) ClearImage(c *gin.Context) {
	order, err := h.usecase.ClearImage(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidSize), errors.Is(err, usecase.ErrEmptyImage):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, interfaces.ErrUnsupportedFile):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_IMAGE", "Image format not supported", http.StatusUnsupportedMediaType)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
