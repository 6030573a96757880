package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	request "church_giving/internal/adapter/http/dto/request"
	response "church_giving/internal/adapter/http/dto/response"
	"church_giving/internal/domain/entities"
	"church_giving/internal/usecase"
	"church_giving/pkg"

	"github.com/gin-gonic/gin"
)

type CampaignHandler struct {
	usecase usecase.ICampaignUseCase
}

func NewCampaignHandler(uc usecase.ICampaignUseCase) *CampaignHandler {
	return &CampaignHandler{usecase: uc}
}

// ListActiveCampaigns godoc
// @Summary  Campaigns open for giving
// @Tags     campaigns
// @Produce  json
// @Success  200  {array}  response.CampaignResponse
// @Router   /campaigns [get]
func (h *CampaignHandler) ListActiveCampaigns(c *gin.Context) {
	items, err := h.usecase.ListActive(c.Request.Context())
	if err != nil {
		log.Printf("[campaign][handler] list active failed err=%v", err)
		appErr := mapCampaignError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCampaigns(items))
}

func (h *CampaignHandler) GetCampaign(c *gin.Context) {
	campaign, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCampaignError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCampaign(campaign))
}

// CreateCampaign godoc
// @Summary   Open a new giving campaign
// @Tags      admin
// @Accept    json
// @Produce   json
// @Security  Bearer
// @Param     payload  body      request.CreateCampaignRequest  true  "Campaign"
// @Success   201      {object}  response.CampaignResponse
// @Failure   400      {object}  pkg.HTTPError
// @Failure   409      {object}  pkg.HTTPError
// @Router    /admin/campaigns [post]
func (h *CampaignHandler) CreateCampaign(c *gin.Context) {
	var payload request.CreateCampaignRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := mapBindingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	campaign, err := h.usecase.Create(c.Request.Context(), payload.Name, payload.Description, payload.GoalAmount)
	if err != nil {
		log.Printf("[campaign][handler] create failed name=%q err=%v", payload.Name, err)
		appErr := mapCampaignError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCampaign(campaign))
}

func (h *CampaignHandler) CloseCampaign(c *gin.Context) {
	h.patchCampaignStatus(c, h.usecase.Close)
}

func (h *CampaignHandler) ReopenCampaign(c *gin.Context) {
	h.patchCampaignStatus(c, h.usecase.Reopen)
}

func (h *CampaignHandler) patchCampaignStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.Campaign, error),
) {
	id := c.Param("id")
	campaign, err := updater(c.Request.Context(), id)
	if err != nil {
		log.Printf("[campaign][handler] status update failed id=%s err=%v", id, err)
		appErr := mapCampaignError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCampaign(campaign))
}

func mapCampaignError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCampaignID), errors.Is(err, usecase.ErrInvalidCampaignName), errors.Is(err, usecase.ErrInvalidCampaignGoal):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCampaignAlreadyExists):
		return pkg.NewDomainErrorSimple("CAMPAIGN_ALREADY_EXISTS", "An active campaign with this name already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrCampaignNotFound):
		return pkg.NewDomainErrorSimple("CAMPAIGN_NOT_FOUND", "Campaign not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
