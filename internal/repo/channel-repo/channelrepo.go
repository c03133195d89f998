package channelrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/boostpanel/boostpanel/internal/domain"
	"github.com/boostpanel/boostpanel/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const channelColumns = `id, name, username, reward_points, active, added_at`

func scanChannel(row pgx.Row) (*domain.Channel, error) {
	var ch domain.Channel
	err := row.Scan(&ch.ID, &ch.Name, &ch.Username, &ch.RewardPoints, &ch.Active, &ch.AddedAt)
	if err != nil {
		return nil, err
	}
	return &ch, nil
}

// Save inserts the channel or refreshes its editable fields. Reward edits do
// not touch past grants; the paid amount lives on the grant row.
func (r *Repository) Save(ctx context.Context, ch *domain.Channel) (*domain.Channel, error) {
	query := `
        INSERT INTO channels (id, name, username, reward_points, active)
        VALUES ($1, $2, $3, $4, TRUE)
        ON CONFLICT (id) DO UPDATE SET
            name = EXCLUDED.name,
            username = EXCLUDED.username,
            reward_points = EXCLUDED.reward_points,
            active = TRUE
        RETURNING ` + channelColumns
	saved, err := scanChannel(r.db.QueryRow(ctx, query, ch.ID, ch.Name, ch.Username, ch.RewardPoints))
	if err != nil {
		zap.L().Error("failed to save channel", zap.Error(err))
		return nil, err
	}
	return saved, nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Channel, error) {
	query := `SELECT ` + channelColumns + ` FROM channels WHERE id = $1`
	ch, err := scanChannel(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to get channel", zap.Error(err))
		return nil, err
	}
	return ch, nil
}

func (r *Repository) FindActive(ctx context.Context) ([]domain.Channel, error) {
	query := `SELECT ` + channelColumns + ` FROM channels WHERE active ORDER BY added_at`
	return r.list(ctx, query)
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Channel, error) {
	query := `SELECT ` + channelColumns + ` FROM channels ORDER BY added_at`
	return r.list(ctx, query)
}

// Deactivate removes a channel from the reward rotation. The row stays so
// historical grants keep their reference.
func (r *Repository) Deactivate(ctx context.Context, id string) (bool, error) {
	query := `UPDATE channels SET active = FALSE WHERE id = $1 AND active`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("failed to deactivate channel", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) list(ctx context.Context, query string) ([]domain.Channel, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to fetch channels", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var channels []domain.Channel
	for rows.Next() {
		ch, err := scanChannel(rows)
		if err != nil {
			zap.L().Error("failed to scan channel row", zap.Error(err))
			return nil, err
		}
		channels = append(channels, *ch)
	}
	return channels, nil
}
