package postgres

import (
	"context"
	"fmt"

	"gw-fraud-scoring/internal/models"
	"gw-fraud-scoring/internal/storage"
)

type StatisticsRepository interface {
	Totals(ctx context.Context, blockProbability, reviewProbability float64) (*models.DashboardTotals, error)
	TopRiskyCustomers(ctx context.Context, limit int) ([]models.RiskyCustomer, error)
	DailyVolume(ctx context.Context) ([]models.DailyVolume, error)
}

// PgStatisticsRepository агрегаты для дашборда считаются в базе
type PgStatisticsRepository struct {
	db DBTX
}

func NewStatisticsRepository(db DBTX) *PgStatisticsRepository {
	return &PgStatisticsRepository{db: db}
}

func (r *PgStatisticsRepository) Totals(ctx context.Context, blockProbability, reviewProbability float64) (*models.DashboardTotals, error) {
	const op = "storage.DashboardTotals"

	var t models.DashboardTotals
	err := r.db.QueryRow(ctx, storage.DashboardTotalsQuery, blockProbability, reviewProbability).Scan(
		&t.Total,
		&t.Fraud,
		&t.TotalAmount,
		&t.FraudAmount,
		&t.Blocked,
		&t.Review,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &t, nil
}

// TopRiskyCustomers только клиенты с мошенничеством, по убыванию доли мошенничества
func (r *PgStatisticsRepository) TopRiskyCustomers(ctx context.Context, limit int) ([]models.RiskyCustomer, error) {
	const op = "storage.TopRiskyCustomers"

	rows, err := r.db.Query(ctx, storage.TopRiskyCustomersQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	customers := make([]models.RiskyCustomer, 0)
	for rows.Next() {
		var c models.RiskyCustomer
		if err := rows.Scan(&c.CustomerID, &c.TransactionCount, &c.FraudCount, &c.TotalAmount, &c.AvgRiskScore); err != nil {
			return nil, fmt.Errorf("%s: scan error: %w", op, err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return customers, nil
}

func (r *PgStatisticsRepository) DailyVolume(ctx context.Context) ([]models.DailyVolume, error) {
	const op = "storage.DailyVolume"

	rows, err := r.db.Query(ctx, storage.DailyVolumeQuery)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	days := make([]models.DailyVolume, 0)
	for rows.Next() {
		var d models.DailyVolume
		if err := rows.Scan(&d.Date, &d.Count, &d.FraudCount, &d.TotalAmount); err != nil {
			return nil, fmt.Errorf("%s: scan error: %w", op, err)
		}
		days = append(days, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return days, nil
}
