package handler

import (
	"net/http"

	"crypto-wallet/internal/adapter/http/dto"
	"crypto-wallet/internal/core/ports"
	"crypto-wallet/pkg/apperror"
	"crypto-wallet/pkg/response"

	"github.com/gin-gonic/gin"
)

// WalletHandler handles wallet endpoints.
type WalletHandler struct {
	walletSvc ports.WalletService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletSvc ports.WalletService) *WalletHandler {
	return &WalletHandler{walletSvc: walletSvc}
}

// ListAssets handles GET /api/v1/assets.
func (h *WalletHandler) ListAssets(c *gin.Context) {
	assets := h.walletSvc.ListAssets(c.Request.Context())
	response.OK(c, dto.FromAssets(assets))
}

// GetPortfolio handles GET /api/v1/portfolio.
func (h *WalletHandler) GetPortfolio(c *gin.Context) {
	ctx := c.Request.Context()
	response.OK(c, dto.PortfolioResponse{
		TotalValue: h.walletSvc.TotalValue(ctx),
		Assets:     dto.FromAssets(h.walletSvc.ListAssets(ctx)),
	})
}

// ListTransactions handles GET /api/v1/transactions.
func (h *WalletHandler) ListTransactions(c *gin.Context) {
	records := h.walletSvc.ListTransactions(c.Request.Context())
	response.OK(c, dto.FromTransactions(records))
}

// GetAddress handles GET /api/v1/assets/:id/address.
func (h *WalletHandler) GetAddress(c *gin.Context) {
	assetID := c.Param("id")
	response.OK(c, dto.AddressResponse{
		AssetID: assetID,
		Address: h.walletSvc.AddressFor(assetID),
	})
}

// Send handles POST /api/v1/transfers/send.
func (h *WalletHandler) Send(c *gin.Context) {
	var req dto.SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	txn, err := h.walletSvc.Send(c.Request.Context(), ports.SendRequest{
		AssetID: req.AssetID,
		Amount:  req.Amount,
		Address: req.Address,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.FromTransaction(*txn))
}

// Receive handles POST /api/v1/transfers/receive.
func (h *WalletHandler) Receive(c *gin.Context) {
	var req dto.ReceiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	txn, err := h.walletSvc.Receive(c.Request.Context(), ports.ReceiveRequest{
		AssetID: req.AssetID,
		Amount:  req.Amount,
		Source:  req.Source,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.FromTransaction(*txn))
}

// Convert handles POST /api/v1/transfers/convert.
func (h *WalletHandler) Convert(c *gin.Context) {
	var req dto.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	txn, err := h.walletSvc.Convert(c.Request.Context(), ports.ConvertRequest{
		FromAssetID: req.FromAssetID,
		ToAssetID:   req.ToAssetID,
		Amount:      req.Amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.FromTransaction(*txn))
}

// UpdatePrice handles PUT /api/v1/assets/:id/price.
func (h *WalletHandler) UpdatePrice(c *gin.Context) {
	var req dto.PriceUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	asset, err := h.walletSvc.SetPrice(c.Request.Context(), c.Param("id"), req.Price)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.FromAsset(*asset))
}

// HealthCheck handles GET /health. It pings every registered dependency
// and reports degraded with 503 if any fails.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
