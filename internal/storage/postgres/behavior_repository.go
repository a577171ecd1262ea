package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"gw-fraud-scoring/internal/models"
	"gw-fraud-scoring/internal/storage"
)

type BehaviorRepository interface {
	LatestByCustomer(ctx context.Context, customerID string) (*models.BehaviorPattern, error)
	Insert(ctx context.Context, p *models.BehaviorPattern) (int64, error)
}

type PgBehaviorRepository struct {
	db DBTX
}

func NewBehaviorRepository(db DBTX) *PgBehaviorRepository {
	return &PgBehaviorRepository{db: db}
}

// LatestByCustomer возвращает nil, nil если у клиента нет ни одной записи
func (r *PgBehaviorRepository) LatestByCustomer(ctx context.Context, customerID string) (*models.BehaviorPattern, error) {
	const op = "storage.LatestBehaviorByCustomer"

	var p models.BehaviorPattern
	err := r.db.QueryRow(ctx, storage.GetLatestBehaviorPatternQuery, customerID).Scan(
		&p.ID,
		&p.CustomerID,
		&p.Date,
		&p.UniqueOsVersions30d,
		&p.UniquePhoneModels30d,
		&p.LatestPhoneModel,
		&p.LatestOsVersion,
		&p.LoginsLast7d,
		&p.LoginsLast30d,
		&p.AvgLoginsPerDay7d,
		&p.AvgLoginsPerDay30d,
		&p.LoginFreqChangeRatio,
		&p.LoginRatio7d30d,
		&p.AvgSessionIntervalSec,
		&p.SessionIntervalStd,
		&p.SessionIntervalVar,
		&p.ExpWeightedAvgInterval,
		&p.BurstinessScore,
		&p.FanoFactor,
		&p.IntervalZscore,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}

func (r *PgBehaviorRepository) Insert(ctx context.Context, p *models.BehaviorPattern) (int64, error) {
	const op = "storage.InsertBehaviorPattern"

	var id int64
	err := r.db.QueryRow(ctx, storage.CreateBehaviorPatternQuery,
		p.CustomerID, p.Date,
		p.UniqueOsVersions30d, p.UniquePhoneModels30d,
		p.LatestPhoneModel, p.LatestOsVersion,
		p.LoginsLast7d, p.LoginsLast30d,
		p.AvgLoginsPerDay7d, p.AvgLoginsPerDay30d,
		p.LoginFreqChangeRatio, p.LoginRatio7d30d,
		p.AvgSessionIntervalSec, p.SessionIntervalStd, p.SessionIntervalVar,
		p.ExpWeightedAvgInterval, p.BurstinessScore, p.FanoFactor, p.IntervalZscore,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}
