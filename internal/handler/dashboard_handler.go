package handler

import (
	"strconv"

	"go-rental-inventory/internal/format"
	"go-rental-inventory/internal/model"
	"go-rental-inventory/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	metricsService service.MetricsService
	txService      service.TransactionService
}

func NewDashboardHandler(metricsService service.MetricsService, txService service.TransactionService) *DashboardHandler {
	return &DashboardHandler{metricsService: metricsService, txService: txService}
}

// metricsView decorates the raw snapshot with display-formatted amounts.
type metricsView struct {
	model.DashboardMetric
	TotalRevenueDisplay string `json:"total_revenue_display"`
	StockValueDisplay   string `json:"stock_value_display"`
	MetricDateDisplay   string `json:"metric_date_display"`
	YardPercent         int    `json:"yard_percent"`
}

func toMetricsView(m *model.DashboardMetric) metricsView {
	return metricsView{
		DashboardMetric:     *m,
		TotalRevenueDisplay: format.Currency(m.TotalRevenue),
		StockValueDisplay:   format.Currency(m.StockValue),
		MetricDateDisplay:   format.Date(m.MetricDate),
		YardPercent:         100 - m.UtilizationPercent,
	}
}

// GetMetrics returns the latest snapshot
// GET /api/v1/dashboard/metrics
func (h *DashboardHandler) GetMetrics(c *fiber.Ctx) error {
	metric, err := h.metricsService.Latest()
	if err != nil {
		return errorResponse(c, 500, "Failed to fetch dashboard metrics")
	}
	return dataResponse(c, 200, toMetricsView(metric))
}

// Recalculate recomputes and stores today's snapshot
// POST /api/v1/dashboard/metrics/recalculate
func (h *DashboardHandler) Recalculate(c *fiber.Ctx) error {
	metric, err := h.metricsService.Recalculate()
	if err != nil {
		return errorResponse(c, 500, "Failed to recalculate dashboard metrics")
	}
	return dataResponse(c, 200, toMetricsView(metric))
}

// GetRecentActivity returns the latest transactions grouped by date
// GET /api/v1/dashboard/recent?limit=10
func (h *DashboardHandler) GetRecentActivity(c *fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Query("limit", "10"))
	if err != nil || limit <= 0 {
		limit = 10
	}

	txs, err := h.txService.ListRecent(limit)
	if err != nil {
		return errorResponse(c, 500, "Failed to fetch recent activity")
	}

	dates, grouped := format.GroupByDate(txs)
	return dataResponse(c, 200, fiber.Map{
		"dates":  dates,
		"groups": grouped,
	})
}
