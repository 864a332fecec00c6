package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	clickdto "github.com/LavaJover/shvark-attribution-service/internal/delivery/http/dto/click"
	"github.com/LavaJover/shvark-attribution-service/internal/domain"
	"github.com/LavaJover/shvark-attribution-service/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-attribution-service/internal/usecase"
	"github.com/gin-gonic/gin"
)

type ClickHandler struct {
	ClickUsecase usecase.ClickUsecase
}

func NewClickHandler(clickUsecase usecase.ClickUsecase) *ClickHandler {
	return &ClickHandler{ClickUsecase: clickUsecase}
}

// Submit handles POST /frontend-utm-data.
func (h *ClickHandler) Submit(c *gin.Context) {
	var request clickdto.SubmitRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		metrics.ClicksRejectedTotal.Inc()
		c.JSON(http.StatusBadRequest, clickdto.ErrorResponse{Error: "invalid request body"})
		return
	}

	if err := request.Validate(); err != nil {
		metrics.ClicksRejectedTotal.Inc()
		slog.Warn("click submission rejected",
			"click_id", request.UniqueClickID, "error", err.Error())
		c.JSON(http.StatusBadRequest, clickdto.ErrorResponse{Error: err.Error()})
		return
	}

	ip := request.IP
	if ip == "" {
		ip = c.ClientIP()
	}

	err := h.ClickUsecase.IngestClick(&usecase.IngestClickInput{
		ClickID:     request.UniqueClickID,
		TimestampMs: request.Timestamp,
		Amount:      request.Amount(),
		FBCLID:      request.FBCLID,
		Source:      request.UTMSource,
		Medium:      request.UTMMedium,
		Campaign:    request.UTMCampaign,
		Content:     request.UTMContent,
		Term:        request.UTMTerm,
		ClientIP:    ip,
	})
	if err != nil {
		if isValidationError(err) {
			metrics.ClicksRejectedTotal.Inc()
			c.JSON(http.StatusBadRequest, clickdto.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Error("failed to save click", "click_id", request.UniqueClickID, "error", err.Error())
		c.JSON(http.StatusInternalServerError, clickdto.ErrorResponse{Error: "failed to save click data"})
		return
	}

	c.String(http.StatusOK, "Dados recebidos com sucesso!")
}

// Lookup handles GET /id/:id.
func (h *ClickHandler) Lookup(c *gin.Context) {
	clickID := c.Param("id")
	if clickID == "" {
		c.JSON(http.StatusBadRequest, clickdto.ErrorResponse{Error: "id is required"})
		return
	}

	click, err := h.ClickUsecase.GetClickByID(clickID)
	if err != nil {
		if errors.Is(err, domain.ErrClickNotFound) {
			c.JSON(http.StatusNotFound, clickdto.ErrorResponse{Error: "no data found"})
			return
		}
		slog.Error("click lookup failed", "click_id", clickID, "error", err.Error())
		c.JSON(http.StatusInternalServerError, clickdto.ErrorResponse{Error: "internal lookup error"})
		return
	}

	c.JSON(http.StatusOK, clickdto.LookupResponse{
		Success: true,
		Data: clickdto.LookupData{
			UniqueClickID: click.ClickID,
			TimestampMs:   click.ObservedAtMs,
			Valor:         click.Amount,
			FBCLID:        click.FBCLID,
			UTMSource:     click.Tags.Source,
			UTMMedium:     click.Tags.Medium,
			UTMCampaign:   click.Tags.Campaign,
			UTMContent:    click.Tags.Content,
			UTMTerm:       click.Tags.Term,
			IP:            click.ClientIP,
		},
	})
}

// Ping handles GET /ping, the keep-alive probe.
func (h *ClickHandler) Ping(c *gin.Context) {
	c.String(http.StatusOK, "Pong!")
}

func isValidationError(err error) bool {
	return errors.Is(err, domain.ErrMissingClickID) ||
		errors.Is(err, domain.ErrMissingTimestamp) ||
		errors.Is(err, domain.ErrInvalidClickID) ||
		errors.Is(err, domain.ErrNullAmount)
}
