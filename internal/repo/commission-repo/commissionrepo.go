package commissionrepo

import (
	"context"
	"time"

	"github.com/GlebRadaev/roulette/internal/domain"
	"github.com/GlebRadaev/roulette/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// total_commission is always derived from the accumulated total_bets.
const addQuery = `
		INSERT INTO commission_summaries (user_id, summary_date, total_bets, total_commission)
		VALUES ($1, $2, $3::numeric, ROUND($3::numeric * $4::numeric, 2))
		ON CONFLICT (user_id, summary_date) DO UPDATE
		SET total_bets = commission_summaries.total_bets + EXCLUDED.total_bets,
			total_commission = ROUND((commission_summaries.total_bets + EXCLUDED.total_bets) * $4::numeric, 2)
	`

// Add accumulates stake into the (user, day) row and recomputes its commission at rate.
func (r *Repository) Add(ctx context.Context, userID int, day time.Time, stake, rate float64) error {
	_, err := r.db.Exec(ctx, addQuery, userID, day, stake, rate)
	if err != nil {
		zap.L().Error("can't save commission", zap.Int("user_id", userID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) List(ctx context.Context, userID int, from, to time.Time) ([]domain.CommissionSummary, error) {
	query := `
        SELECT user_id, summary_date, total_bets, total_commission
        FROM commission_summaries
        WHERE user_id = $1 AND summary_date BETWEEN $2 AND $3
        ORDER BY summary_date DESC
    `
	rows, err := r.db.Query(ctx, query, userID, from, to)
	if err != nil {
		zap.L().Error("failed to fetch commission summaries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var summaries []domain.CommissionSummary
	for rows.Next() {
		var s domain.CommissionSummary
		err := rows.Scan(&s.UserID, &s.Date, &s.TotalBets, &s.TotalCommission)
		if err != nil {
			zap.L().Error("failed to scan commission row", zap.Error(err))
			return nil, err
		}
		summaries = append(summaries, s)
	}

	return summaries, rows.Err()
}
