package api

import (
	"net/http"
	"strconv"
	"time"

	resdto "pricewatch/internal/handler/dto/response"
	"pricewatch/internal/handler/httperr"
	"pricewatch/internal/pkg/clock"
	"pricewatch/internal/pkg/config"
	"pricewatch/internal/pkg/errs"
	"pricewatch/internal/usecase/queries"
	"pricewatch/internal/usecase/reportcache"

	"github.com/gin-gonic/gin"
)

type DiscountHandler struct {
	q     queries.DiscountQueries
	cache *reportcache.Cache
	cfg   config.ReportConfig
	clock clock.Clock
}

func NewDiscountHandler(q queries.DiscountQueries, cache *reportcache.Cache, cfg config.ReportConfig, clk clock.Clock) *DiscountHandler {
	return &DiscountHandler{q: q, cache: cache, cfg: cfg, clock: clk}
}

// @Summary Recent discounts
// @Description Ranked report of editions whose price dropped inside the lookback window
// @Tags discounts
// @Produce json
// @Param days query int false "Lookback window in days (default from config)"
// @Param limit query int false "Cap on the number of rows (default from config)"
// @Success 200 {object} resdto.DiscountReportResponse
// @Failure 400 {object} map[string]string
// @Router /discounts [get]
func (h *DiscountHandler) Report(c *gin.Context) {
	days, limit, ok := h.reportParams(c)
	if !ok {
		return
	}
	opts := queries.ReportOptions{
		Window: time.Duration(days) * 24 * time.Hour,
		Limit:  limit,
	}

	// the scheduler keeps a warm report for the default parameters
	if days == h.cfg.LookbackDays && limit == h.cfg.ResultCap {
		if rows, hit := h.cache.Get(h.clock.Now()); hit {
			c.JSON(http.StatusOK, resdto.FromDiscountRows(rows, resdto.ReportStatusOK))
			return
		}
	}

	rows, err := h.q.Report(c.Request.Context(), opts)
	if err != nil {
		if errs.Is(err, errs.ErrNoComparisonData) {
			c.JSON(http.StatusOK, resdto.FromDiscountRows(nil, resdto.ReportStatusNoComparisonData))
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to compute discount report", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDiscountRows(rows, resdto.ReportStatusOK))
}

// @Summary Item discounts
// @Description Active discounts of a single item inside the lookback window
// @Tags discounts
// @Produce json
// @Param id path string true "Item ID"
// @Param days query int false "Lookback window in days (default from config)"
// @Success 200 {object} resdto.DiscountReportResponse
// @Failure 400 {object} map[string]string
// @Router /items/{id}/discounts [get]
func (h *DiscountHandler) ItemDiscounts(c *gin.Context) {
	days, limit, ok := h.reportParams(c)
	if !ok {
		return
	}
	opts := queries.ReportOptions{
		Window: time.Duration(days) * 24 * time.Hour,
		Limit:  limit,
	}

	rows, err := h.q.ItemDiscounts(c.Request.Context(), c.Param("id"), opts)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to compute item discounts", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDiscountRows(rows, resdto.ReportStatusOK))
}

func (h *DiscountHandler) reportParams(c *gin.Context) (days, limit int, ok bool) {
	days = h.cfg.LookbackDays
	if raw := c.Query("days"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			httperr.AbortWithError(c, http.StatusBadRequest, errs.New("days must be a positive integer"), "Invalid days", nil)
			return 0, 0, false
		}
		days = v
	}

	limit = h.cfg.ResultCap
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			httperr.AbortWithError(c, http.StatusBadRequest, errs.New("limit must be a non-negative integer"), "Invalid limit", nil)
			return 0, 0, false
		}
		limit = v
	}
	return days, limit, true
}
