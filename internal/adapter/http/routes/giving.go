package routes

import (
	"church_giving/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments  = "/payments/mpesa"
	PathCampaigns = "/campaigns"
	PathAdmin     = "/admin"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/initiate", paymentHandler.InitiatePayment)
		// Daraja cannot authenticate; the callback stays public.
		payments.POST("/callback", paymentHandler.MpesaCallback)
	}
}

func addCampaignRoutes(rg *gin.RouterGroup, campaignHandler *handlers.CampaignHandler) {
	campaigns := rg.Group(PathCampaigns)
	{
		campaigns.GET("", campaignHandler.ListActiveCampaigns)
		campaigns.GET("/:id", campaignHandler.GetCampaign)
	}
}

func addAdminRoutes(rg *gin.RouterGroup, h Handlers) {
	rg.POST(PathAdmin+"/login", h.Auth.Login)

	admin := rg.Group(PathAdmin, h.Auth.RequireAdmin())
	{
		admin.GET("/payments", h.Payments.ListPayments)
		admin.GET("/payments/:transaction_id", h.Payments.GetPayment)
		admin.POST("/payments/:transaction_id/query", h.Payments.QueryPaymentStatus)
		admin.GET("/metrics", h.Payments.Metrics)

		admin.POST("/campaigns", h.Campaigns.CreateCampaign)
		admin.PATCH("/campaigns/:id/close", h.Campaigns.CloseCampaign)
		admin.PATCH("/campaigns/:id/reopen", h.Campaigns.ReopenCampaign)
	}
}
