package service

import (
	"time"

	"go.uber.org/zap"

	"go-rental-inventory/internal/format"
	"go-rental-inventory/internal/model"
	"go-rental-inventory/internal/repository"
)

type MetricsService interface {
	Recalculate() (*model.DashboardMetric, error)
	Latest() (*model.DashboardMetric, error)
}

type metricsService struct {
	metricRepo repository.MetricRepository
	log        *zap.Logger
}

func NewMetricsService(metricRepo repository.MetricRepository, log *zap.Logger) MetricsService {
	if log == nil {
		log = zap.NewNop()
	}
	return &metricsService{metricRepo: metricRepo, log: log}
}

// Recalculate computes today's snapshot from the live tables and upserts it
// under today's metric date. Revenue is the monthly rate earned by party-held
// stock; stock value prices the full quantity at the same rate.
func (s *metricsService) Recalculate() (*model.DashboardMetric, error) {
	agg, err := s.metricRepo.AggregateStock()
	if err != nil {
		s.log.Error("metrics recalculation: stock aggregation failed", zap.Error(err))
		return nil, err
	}
	activeParties, err := s.metricRepo.CountActiveParties()
	if err != nil {
		s.log.Error("metrics recalculation: party count failed", zap.Error(err))
		return nil, err
	}
	activeProducts, err := s.metricRepo.CountProducts()
	if err != nil {
		s.log.Error("metrics recalculation: product count failed", zap.Error(err))
		return nil, err
	}

	totalStock := agg.TotalPartyStock + agg.TotalYardStock
	metric := &model.DashboardMetric{
		MetricDate:         repository.Truncate(time.Now()),
		TotalRevenue:       agg.MonthlyRevenue,
		StockValue:         agg.StockValue,
		ActiveParties:      activeParties,
		ActiveProducts:     activeProducts,
		UtilizationPercent: format.UtilizationPercent(int(agg.TotalPartyStock), int(totalStock)),
		TotalPartyStock:    agg.TotalPartyStock,
		TotalYardStock:     agg.TotalYardStock,
	}

	if err := s.metricRepo.UpsertForDate(metric); err != nil {
		s.log.Error("metrics recalculation: snapshot upsert failed", zap.Error(err))
		return nil, err
	}
	return metric, nil
}

// Latest returns the newest snapshot without recomputing.
func (s *metricsService) Latest() (*model.DashboardMetric, error) {
	metric, err := s.metricRepo.Latest()
	if err != nil {
		s.log.Error("fetch dashboard metrics failed", zap.Error(err))
		return nil, err
	}
	return metric, nil
}
