// One-shot dashboard metrics recompute, for backfills and ops use.
package main

import (
	"log"

	"go-rental-inventory/internal/config"
	"go-rental-inventory/internal/repository"
	"go-rental-inventory/internal/service"
	"go-rental-inventory/pkg/database"
	"go-rental-inventory/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	zlog := logger.Must(logger.New())
	defer zlog.Sync()

	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	metricsService := service.NewMetricsService(repository.NewMetricRepo(db), logger.Named(zlog, "metrics"))

	metric, err := metricsService.Recalculate()
	if err != nil {
		log.Fatalf("Recalculation failed: %v", err)
	}

	log.Printf("Snapshot stored for %s: revenue=%.2f stock_value=%.2f parties=%d products=%d utilization=%d%%",
		metric.MetricDate.Format("2006-01-02"),
		metric.TotalRevenue, metric.StockValue,
		metric.ActiveParties, metric.ActiveProducts, metric.UtilizationPercent)
}
