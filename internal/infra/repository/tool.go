package repository

import (
	"context"

	"toolshare/internal/domain/tool"
	"toolshare/internal/infra"
	"toolshare/internal/infra/db"
	"toolshare/internal/infra/repository/converter"
	"toolshare/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const toolColumns = `id, owner_id, name, description, daily_price_cents, category, status, image_url, created_at, updated_at`

type ToolRepository struct {
	db db.DBTX
}

func NewToolRepository(dbtx db.DBTX) *ToolRepository {
	return &ToolRepository{db: dbtx}
}

func (r *ToolRepository) Create(ctx context.Context, t *tool.Tool) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO tools (id, owner_id, name, description, daily_price_cents, category, status, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		t.ID(), t.OwnerID(), t.Name(), t.Description(), t.DailyPrice().Cents(), t.Category(),
		t.Status().String(), pgconv.StringPtrToPgtype(t.ImageURL()),
		pgconv.TimeToPgtype(t.CreatedAt()), pgconv.TimeToPgtype(t.UpdatedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create tool", err)
	}
	return nil
}

func (r *ToolRepository) FindByID(ctx context.Context, id uuid.UUID) (*tool.Tool, error) {
	return r.findOne(ctx, `SELECT `+toolColumns+` FROM tools WHERE id = $1`, id)
}

func (r *ToolRepository) LockByID(ctx context.Context, id uuid.UUID) (*tool.Tool, error) {
	return r.findOne(ctx, `SELECT `+toolColumns+` FROM tools WHERE id = $1 FOR UPDATE`, id)
}

func (r *ToolRepository) findOne(ctx context.Context, query string, id uuid.UUID) (*tool.Tool, error) {
	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find tool", err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[converter.ToolRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find tool", err)
	}
	t, err := converter.ToolToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored tool is invalid", err, infra.KindDBFailure)
	}
	return t, nil
}

func (r *ToolRepository) Update(ctx context.Context, t *tool.Tool) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE tools
		SET name = $2, description = $3, daily_price_cents = $4, category = $5, status = $6, image_url = $7, updated_at = $8
		WHERE id = $1`,
		t.ID(), t.Name(), t.Description(), t.DailyPrice().Cents(), t.Category(), t.Status().String(),
		pgconv.StringPtrToPgtype(t.ImageURL()), pgconv.TimeToPgtype(t.UpdatedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update tool", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("tool not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ToolRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM tools WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete tool", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("tool not found", nil, infra.KindNotFound)
	}
	return nil
}
