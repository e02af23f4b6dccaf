package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/voyago/travel-admin-api/internal/service"
	"github.com/voyago/travel-admin-api/pkg/response"
)

type statisticsService interface {
	Get(kind string, seed int64) (interface{}, error)
	Export(format string, seed int64) (*service.ExportResult, error)
}

// StatisticsHandler serves the statistics cards and their file exports.
type StatisticsHandler struct {
	service statisticsService
}

// NewStatisticsHandler constructs the handler.
func NewStatisticsHandler(service statisticsService) *StatisticsHandler {
	return &StatisticsHandler{service: service}
}

// Get godoc
// @Summary One statistics card
// @Tags Statistics
// @Produce json
// @Param kind path string true "chats|employees|images|kpi|reports|reviews"
// @Param seed query int false "Fixed random seed"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /statistics/{kind} [get]
func (h *StatisticsHandler) Get(c *gin.Context) {
	data, err := h.service.Get(c.Param("kind"), parseSeed(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, data, nil)
}

// Export godoc
// @Summary Download all statistics as CSV or PDF
// @Tags Statistics
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv (default) or pdf"
// @Success 200 {file} file
// @Router /statistics/export [get]
func (h *StatisticsHandler) Export(c *gin.Context) {
	result, err := h.service.Export(c.Query("format"), parseSeed(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, result.ContentType, result.Body)
}
