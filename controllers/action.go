package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/omarj21/solana-actions-backend/models"
	"github.com/omarj21/solana-actions-backend/services"
	"go.uber.org/zap"
)

const (
	msgPrepareFailed = "failed to prepare transaction"
	msgDetailsFailed = "failed to load NFT details"
)

// ActionController handles the four actions-protocol routes.
type ActionController struct {
	Service *services.ActionService
}

// NewActionController creates a new ActionController instance.
func NewActionController(service *services.ActionService) *ActionController {
	return &ActionController{Service: service}
}

// GetNft handles GET /:mint
func (ctrl *ActionController) GetNft(c *gin.Context) {
	mint := c.Param("mint")

	response, err := ctrl.Service.Discovery(c.Request.Context(), mint)
	if err != nil {
		ctrl.renderGetError(c, "discovery", mint, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// GetNftWithAmount handles GET /:mint/:amount
func (ctrl *ActionController) GetNftWithAmount(c *gin.Context) {
	mint := c.Param("mint")
	amount := c.Param("amount")

	response, err := ctrl.Service.AmountMetadata(c.Request.Context(), mint, amount)
	if err != nil {
		ctrl.renderGetError(c, "amount metadata", mint, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// PostBuy handles POST /:mint
func (ctrl *ActionController) PostBuy(c *gin.Context) {
	mint := c.Param("mint")

	var req models.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "invalid request body: " + err.Error()})
		return
	}

	tx, err := ctrl.Service.CreateBuyTransaction(c.Request.Context(), mint, req.Account)
	if err != nil {
		ctrl.renderPostError(c, "buy", mint, err)
		return
	}
	c.JSON(http.StatusOK, models.PostResponse{Transaction: tx})
}

// PostBid handles POST /:mint/:amount
func (ctrl *ActionController) PostBid(c *gin.Context) {
	mint := c.Param("mint")
	amount := c.Param("amount")

	var req models.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "invalid request body: " + err.Error()})
		return
	}

	tx, err := ctrl.Service.CreateBidTransaction(c.Request.Context(), mint, amount, req.Account)
	if err != nil {
		ctrl.renderPostError(c, "bid", mint, err)
		return
	}
	c.JSON(http.StatusOK, models.PostResponse{Transaction: tx})
}

// renderGetError answers 422 when the mint did not resolve; everything else
// is an internal failure answered generically with the cause logged.
func (ctrl *ActionController) renderGetError(c *gin.Context, operation string, mint string, err error) {
	var svcErr *services.Error
	if errors.As(err, &svcErr) && svcErr.Kind == services.KindNotFound {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{Message: svcErr.Message})
		return
	}

	zap.L().With(zap.String("mint", mint), zap.String("operation", operation), zap.Error(err)).Error("Failed to resolve NFT details")
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: msgDetailsFailed})
}

// renderPostError answers 422 for the user-correctable kinds and normalizes
// everything else, collection inconsistencies and builder failures included,
// to the generic message. The caller never sees internal detail.
func (ctrl *ActionController) renderPostError(c *gin.Context, operation string, mint string, err error) {
	var svcErr *services.Error
	if errors.As(err, &svcErr) {
		switch svcErr.Kind {
		case services.KindNotFound, services.KindNotListed:
			c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{Message: svcErr.Message})
			return
		}
	}

	zap.L().With(zap.String("mint", mint), zap.String("operation", operation), zap.Error(err)).Error("Failed to prepare transaction")
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: msgPrepareFailed})
}
