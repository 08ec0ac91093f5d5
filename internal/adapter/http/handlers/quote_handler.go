package handlers

import (
	"net/http"

	response "imagine_hub/internal/adapter/http/dto/response"
	"imagine_hub/internal/usecase"

	"github.com/gin-gonic/gin"
)

// QuoteHandler serves the derived document views of an order: the
// snapshot view-model, the rendered HTML preview and the print trigger.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// GetQuote godoc
// @Summary  Snapshot view-model of the quote document
// @Tags     quote
// @Produce  json
// @Param    id path string true "order id"
// @Success  200 {object} response.QuoteResponse
// @Router   /orders/{id}/quote [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	snapshot, err := h.usecase.Snapshot(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSnapshot(snapshot))
}

// GetDocument godoc
// @Summary  Rendered HTML document for screen preview
// @Tags     quote
// @Produce  html
// @Param    id path string true "order id"
// @Success  200 {string} string "HTML document"
// @Router   /orders/{id}/document [get]
func (h *QuoteHandler) GetDocument(c *gin.Context) {
	doc, err := h.usecase.Document(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", doc)
}

// PrintQuote godoc
// @Summary  Fire-and-forget print of the current snapshot
// @Tags     quote
// @Param    id path string true "order id"
// @Success  202
// @Router   /orders/{id}/print [post]
func (h *QuoteHandler) PrintQuote(c *gin.Context) {
	if err := h.usecase.Print(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusAccepted)
}
