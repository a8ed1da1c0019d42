package model

import "time"

// DashboardMetric is a server-computed aggregate snapshot keyed by metric
// date. The client never derives these numbers itself; it asks for a
// recompute after any write that could change them and reads the latest row.
type DashboardMetric struct {
	BaseModel
	MetricDate         time.Time `gorm:"type:date;uniqueIndex;not null" json:"metric_date"`
	TotalRevenue       float64   `gorm:"not null;default:0" json:"total_revenue"`
	StockValue         float64   `gorm:"not null;default:0" json:"stock_value"`
	ActiveParties      int64     `gorm:"not null;default:0" json:"active_parties"`
	ActiveProducts     int64     `gorm:"not null;default:0" json:"active_products"`
	UtilizationPercent int       `gorm:"not null;default:0" json:"utilization_percent"`
	TotalPartyStock    int64     `gorm:"not null;default:0" json:"total_party_stock"`
	TotalYardStock     int64     `gorm:"not null;default:0" json:"total_yard_stock"`
}

func (DashboardMetric) TableName() string {
	return "dashboard_metrics"
}
