package api

import (
	"net/http"

	resdto "lendhub/internal/handler/dto/response"
	"lendhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportQueries queries.ReportQueries
}

func NewReportHandler(reportQueries queries.ReportQueries) *ReportHandler {
	return &ReportHandler{reportQueries: reportQueries}
}

// @Summary Overdue risk report
// @Description Borrowers with an unusually high number of pending requests
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.OverdueRiskResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /reports/overdue-risk [get]
func (h *ReportHandler) OverdueRisk(c *gin.Context) {
	rows, err := h.reportQueries.OverdueRisk(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromOverdueRiskRows(rows))
}

// @Summary Category distribution report
// @Description Item counts grouped by category
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CategoryCountResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /reports/categories [get]
func (h *ReportHandler) CategoryDistribution(c *gin.Context) {
	rows, err := h.reportQueries.CategoryDistribution(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromCategoryCounts(rows))
}

// @Summary Listing growth report
// @Description Items listed per month
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ListingGrowthResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /reports/growth [get]
func (h *ReportHandler) ListingGrowth(c *gin.Context) {
	rows, err := h.reportQueries.ListingGrowth(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromListingGrowth(rows))
}
