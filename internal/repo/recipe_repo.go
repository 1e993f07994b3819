package repo

import (
	"context"

	dom "recipeshare/internal/domain"
)

type RecipeRepo interface {
	Create(ctx context.Context, r dom.Recipe) (dom.Recipe, error)
	List(ctx context.Context) ([]dom.Recipe, error)
}

type PGRecipeRepo struct {
	db DB
}

func NewPGRecipeRepo(db DB) *PGRecipeRepo {
	return &PGRecipeRepo{db: db}
}

func (r *PGRecipeRepo) Create(ctx context.Context, rec dom.Recipe) (dom.Recipe, error) {
	query := `
		INSERT INTO recipes (title, instructions, minutes_to_complete, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, title, instructions, minutes_to_complete, user_id, created_at`
	var out dom.Recipe
	err := r.db.QueryRow(ctx, query, rec.Title, rec.Instructions, rec.MinutesToComplete, rec.UserID).Scan(
		&out.ID, &out.Title, &out.Instructions, &out.MinutesToComplete, &out.UserID, &out.CreatedAt,
	)
	return out, err
}

// List returns every recipe with its owner joined in, oldest first.
func (r *PGRecipeRepo) List(ctx context.Context) ([]dom.Recipe, error) {
	query := `
		SELECT r.id, r.title, r.instructions, r.minutes_to_complete, r.user_id, r.created_at,
		       u.id, u.username, u.image_url, u.bio
		FROM recipes r
		JOIN users u ON u.id = r.user_id
		ORDER BY r.id ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Recipe
	for rows.Next() {
		var rec dom.Recipe
		var owner dom.User
		if err := rows.Scan(&rec.ID, &rec.Title, &rec.Instructions, &rec.MinutesToComplete,
			&rec.UserID, &rec.CreatedAt,
			&owner.ID, &owner.Username, &owner.ImageURL, &owner.Bio); err != nil {
			return nil, err
		}
		rec.Owner = &owner
		list = append(list, rec)
	}
	return list, rows.Err()
}
