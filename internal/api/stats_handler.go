package api

import (
	"alcyxob/fitness-tracker/internal/service"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	statsService service.StatsService
}

func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GetSummary godoc
// @Summary Aggregate workout and exercise statistics
// @Tags Stats
// @Produce json
// @Param target query int false "Monthly workout target"
// @Success 200 {object} domain.Summary
// @Router /stats [get]
func (h *StatsHandler) GetSummary(c *gin.Context) {
	target := 0
	if raw := c.Query("target"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			abortWithError(c, http.StatusBadRequest, "target must be a positive integer")
			return
		}
		target = n
	}

	summary, err := h.statsService.Summary(c.Request.Context(), target)
	if err != nil {
		respondError(c, err, "Failed to compute stats.")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetCalendar godoc
// @Summary Dates with workouts in a month
// @Tags Stats
// @Produce json
// @Param month query string false "YYYY-MM, defaults to the current month"
// @Success 200 {array} domain.CalendarDay
// @Router /calendar [get]
func (h *StatsHandler) GetCalendar(c *gin.Context) {
	days, err := h.statsService.Calendar(c.Request.Context(), c.Query("month"))
	if err != nil {
		respondError(c, err, "Failed to build calendar.")
		return
	}
	c.JSON(http.StatusOK, days)
}
