package drawrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

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

const stateColumns = `current_draw_number, next_draw_number, countdown_deadline, manual_mode, phase,
	last_draw_number, last_winning_number, version, updated_at`

func scanState(row pgx.Row) (*domain.DrawState, error) {
	var s domain.DrawState
	var phase string
	err := row.Scan(&s.CurrentDrawNumber, &s.NextDrawNumber, &s.CountdownDeadline, &s.ManualMode, &phase,
		&s.LastDrawNumber, &s.LastWinningNumber, &s.Version, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	s.Phase = domain.Phase(phase)
	return &s, nil
}

// GetState returns nil without error when the singleton row does not exist yet.
func (r *Repository) GetState(ctx context.Context) (*domain.DrawState, error) {
	query := `SELECT ` + stateColumns + ` FROM draw_state WHERE id = 1`
	state, err := scanState(r.db.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get draw state", zap.Error(err))
		return nil, err
	}
	return state, nil
}

// ShareState reads the state row under a share lock. It must run inside a
// transaction: phase changes wait for it to end, while concurrent sales
// holding the same lock do not block each other.
func (r *Repository) ShareState(ctx context.Context) (*domain.DrawState, error) {
	query := `SELECT ` + stateColumns + ` FROM draw_state WHERE id = 1 FOR SHARE`
	state, err := scanState(r.db.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to share-lock draw state", zap.Error(err))
		return nil, err
	}
	return state, nil
}

// CreateState inserts the singleton row. Losing the insert race to another
// instance is not an error; the stored row is returned instead.
func (r *Repository) CreateState(ctx context.Context, state *domain.DrawState) (*domain.DrawState, error) {
	query := `
		INSERT INTO draw_state (id, current_draw_number, next_draw_number, countdown_deadline, manual_mode, phase, version)
		VALUES (1, $1, $2, $3, $4, $5, 0)
		ON CONFLICT (id) DO NOTHING
	`
	_, err := r.db.Exec(ctx, query,
		state.CurrentDrawNumber, state.NextDrawNumber, state.CountdownDeadline, state.ManualMode, string(state.Phase))
	if err != nil {
		zap.L().Error("failed to create draw state", zap.Error(err))
		return nil, err
	}
	return r.GetState(ctx)
}

// UpdateState writes the row only if it still carries expectedVersion and
// bumps the version. A stale version yields ErrConcurrentModification.
func (r *Repository) UpdateState(ctx context.Context, state *domain.DrawState, expectedVersion int64) (*domain.DrawState, error) {
	query := `
		UPDATE draw_state
		SET current_draw_number = $1,
			next_draw_number = $2,
			countdown_deadline = $3,
			manual_mode = $4,
			phase = $5,
			last_draw_number = $6,
			last_winning_number = $7,
			version = version + 1,
			updated_at = NOW()
		WHERE id = 1 AND version = $8
		RETURNING ` + stateColumns
	updated, err := scanState(r.db.QueryRow(ctx, query,
		state.CurrentDrawNumber, state.NextDrawNumber, state.CountdownDeadline, state.ManualMode, string(state.Phase),
		state.LastDrawNumber, state.LastWinningNumber, expectedVersion))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrConcurrentModification
		}
		zap.L().Error("failed to update draw state", zap.Error(err))
		return nil, err
	}
	return updated, nil
}

// InsertDraw is insert-once: it reports false when the draw number already exists.
func (r *Repository) InsertDraw(ctx context.Context, draw *domain.Draw) (bool, error) {
	query := `
		INSERT INTO draws (draw_number, winning_number, winning_color, is_manual, drawn_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (draw_number) DO NOTHING
	`
	tag, err := r.db.Exec(ctx, query, draw.DrawNumber, draw.WinningNumber, draw.WinningColor, draw.IsManual, draw.DrawnAt)
	if err != nil {
		zap.L().Error("failed to insert draw", zap.Int("draw_number", draw.DrawNumber), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) GetDraw(ctx context.Context, drawNumber int) (*domain.Draw, error) {
	query := `
		SELECT draw_number, winning_number, winning_color, is_manual, drawn_at
		FROM draws
		WHERE draw_number = $1
	`
	var d domain.Draw
	err := r.db.QueryRow(ctx, query, drawNumber).Scan(&d.DrawNumber, &d.WinningNumber, &d.WinningColor, &d.IsManual, &d.DrawnAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get draw", zap.Int("draw_number", drawNumber), zap.Error(err))
		return nil, err
	}
	return &d, nil
}

func (r *Repository) ListRecentDraws(ctx context.Context, limit int) ([]domain.Draw, error) {
	query := `
		SELECT draw_number, winning_number, winning_color, is_manual, drawn_at
		FROM draws
		ORDER BY draw_number DESC
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("failed to fetch recent draws", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var draws []domain.Draw
	for rows.Next() {
		var d domain.Draw
		if err := rows.Scan(&d.DrawNumber, &d.WinningNumber, &d.WinningColor, &d.IsManual, &d.DrawnAt); err != nil {
			zap.L().Error("failed to scan draw row", zap.Error(err))
			return nil, err
		}
		draws = append(draws, d)
	}
	return draws, rows.Err()
}

func (r *Repository) GetForcedNumber(ctx context.Context, drawNumber int) (*domain.ForcedNumber, error) {
	query := `
		SELECT draw_number, winning_number, created_by, created_at
		FROM forced_numbers
		WHERE draw_number = $1
	`
	var f domain.ForcedNumber
	err := r.db.QueryRow(ctx, query, drawNumber).Scan(&f.DrawNumber, &f.WinningNumber, &f.CreatedBy, &f.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get forced number", zap.Int("draw_number", drawNumber), zap.Error(err))
		return nil, err
	}
	return &f, nil
}

func (r *Repository) SetForcedNumber(ctx context.Context, forced *domain.ForcedNumber) error {
	query := `
		INSERT INTO forced_numbers (draw_number, winning_number, created_by)
		VALUES ($1, $2, $3)
		ON CONFLICT (draw_number) DO UPDATE
		SET winning_number = EXCLUDED.winning_number,
			created_by = EXCLUDED.created_by,
			created_at = NOW()
	`
	_, err := r.db.Exec(ctx, query, forced.DrawNumber, forced.WinningNumber, forced.CreatedBy)
	if err != nil {
		zap.L().Error("failed to set forced number", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) DeleteForcedNumber(ctx context.Context, drawNumber int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM forced_numbers WHERE draw_number = $1`, drawNumber)
	if err != nil {
		zap.L().Error("failed to delete forced number", zap.Error(err))
		return err
	}
	return nil
}

// FindGaps lists draw numbers in 1..upTo that have no row in draws.
func (r *Repository) FindGaps(ctx context.Context, upTo int) ([]int, error) {
	query := `
		SELECT s.n
		FROM generate_series(1, $1::int) AS s(n)
		LEFT JOIN draws d ON d.draw_number = s.n
		WHERE d.draw_number IS NULL
		ORDER BY s.n
	`
	rows, err := r.db.Query(ctx, query, upTo)
	if err != nil {
		zap.L().Error("failed to detect draw gaps", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var gaps []int
	for rows.Next() {
		var n int
		if err := rows.Scan(&n); err != nil {
			zap.L().Error("failed to scan gap row", zap.Error(err))
			return nil, err
		}
		gaps = append(gaps, n)
	}
	return gaps, rows.Err()
}
