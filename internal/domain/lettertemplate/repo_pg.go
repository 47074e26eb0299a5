package lettertemplate

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

// NewRepoPG creates the PostgreSQL-backed repository.
func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const tplCols = `id, title, category, content, is_default, created_at, updated_at`

func scanTemplate(row pgx.Row) (*LetterTemplate, error) {
	var t LetterTemplate
	err := row.Scan(&t.ID, &t.Title, &t.Category, &t.Content, &t.IsDefault, &t.CreatedAt, &t.UpdatedAt)
	return &t, err
}

func (r *repoPG) Create(ctx context.Context, t *LetterTemplate) error {
	t.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO letter_templates (id, title, category, content, is_default)
		VALUES ($1,$2,$3,$4,$5)`,
		t.ID, t.Title, t.Category, t.Content, t.IsDefault)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*LetterTemplate, error) {
	return scanTemplate(r.pool.QueryRow(ctx,
		`SELECT `+tplCols+` FROM letter_templates WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, t *LetterTemplate) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE letter_templates SET title=$2, category=$3, content=$4, is_default=$5, updated_at=NOW()
		WHERE id = $1`,
		t.ID, t.Title, t.Category, t.Content, t.IsDefault)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM letter_templates WHERE id = $1`, id)
	return err
}

func (r *repoPG) List(ctx context.Context, category string, limit, offset int) ([]*LetterTemplate, int, error) {
	where := ``
	args := []interface{}{}
	if category != "" {
		where = ` WHERE category = $1`
		args = append(args, category)
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM letter_templates`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + tplCols + ` FROM letter_templates` + where + ` ORDER BY is_default DESC, title`
	if len(args) == 0 {
		query += ` LIMIT $1 OFFSET $2`
	} else {
		query += ` LIMIT $2 OFFSET $3`
	}
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*LetterTemplate
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, t)
	}
	return items, total, rows.Err()
}

func (r *repoPG) CountDefaults(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM letter_templates WHERE is_default`).Scan(&n)
	return n, err
}
