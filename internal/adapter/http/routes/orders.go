package routes

import (
	"imagine_hub/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders = "/orders"
)

func addOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler, quoteHandler *handlers.QuoteHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.PATCH("/:id", orderHandler.UpdateOrder)
		orders.DELETE("/:id", orderHandler.DeleteOrder)

		orders.POST("/:id/extras", orderHandler.AddExtra)
		orders.PATCH("/:id/extras/:index", orderHandler.UpdateExtra)
		orders.DELETE("/:id/extras/:index", orderHandler.RemoveExtra)

		orders.POST("/:id/image", orderHandler.UploadImage)
		orders.DELETE("/:id/image", orderHandler.ClearImage)

		orders.GET("/:id/quote", quoteHandler.GetQuote)
		orders.GET("/:id/document", quoteHandler.GetDocument)
		orders.POST("/:id/print", quoteHandler.PrintQuote)
	}
}
