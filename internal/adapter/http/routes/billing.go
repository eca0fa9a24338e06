package routes

import (
	"lab_management/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathPayments = "/payments"

func addBillingRoutes(rg *gin.RouterGroup, h *handlers.BillingPaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/:result_id", h.CreatePaymentByResultID)
		payments.GET("/:result_id", h.GetPaymentByResultID)
	}
}
