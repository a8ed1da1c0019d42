package repository

import (
	"time"

	"go-rental-inventory/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MetricRepository interface {
	Latest() (*model.DashboardMetric, error)
	UpsertForDate(metric *model.DashboardMetric) error
	AggregateStock() (StockAggregates, error)
	CountActiveParties() (int64, error)
	CountProducts() (int64, error)
}

// StockAggregates carries the SUM rows the recompute query produces.
type StockAggregates struct {
	TotalPartyStock int64
	TotalYardStock  int64
	MonthlyRevenue  float64
	StockValue      float64
}

type metricRepo struct {
	db *gorm.DB
}

func NewMetricRepo(db *gorm.DB) MetricRepository {
	return &metricRepo{db}
}

// Latest returns the single newest snapshot by metric date.
func (r *metricRepo) Latest() (*model.DashboardMetric, error) {
	var metric model.DashboardMetric
	err := r.db.Order("metric_date DESC").First(&metric).Error
	if err != nil {
		return nil, err
	}
	return &metric, nil
}

// UpsertForDate writes the snapshot for its metric date, replacing any
// earlier computation for the same day.
func (r *metricRepo) UpsertForDate(metric *model.DashboardMetric) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "metric_date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"total_revenue", "stock_value", "active_parties", "active_products",
			"utilization_percent", "total_party_stock", "total_yard_stock", "updated_at",
		}),
	}).Create(metric).Error
}

func (r *metricRepo) AggregateStock() (StockAggregates, error) {
	var agg StockAggregates
	err := r.db.Model(&model.Product{}).
		Select(`
			COALESCE(SUM(party_stock), 0) as total_party_stock,
			COALESCE(SUM(yard_stock), 0) as total_yard_stock,
			COALESCE(SUM(party_stock * rate_per_month), 0) as monthly_revenue,
			COALESCE(SUM(total_quantity * rate_per_month), 0) as stock_value
		`).
		Scan(&agg).Error
	return agg, err
}

func (r *metricRepo) CountActiveParties() (int64, error) {
	var count int64
	err := r.db.Model(&model.Party{}).Where("status = ?", model.PartyActive).Count(&count).Error
	return count, err
}

func (r *metricRepo) CountProducts() (int64, error) {
	var count int64
	err := r.db.Model(&model.Product{}).Count(&count).Error
	return count, err
}

// Truncate normalizes a timestamp to its metric date.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
