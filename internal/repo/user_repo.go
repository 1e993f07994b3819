package repo

import (
	"context"

	dom "recipeshare/internal/domain"
)

// UserRepo provides user persistence.
type UserRepo interface {
	GetByUsername(ctx context.Context, username string) (dom.User, error)
	GetByID(ctx context.Context, id int64) (dom.User, error)
	Create(ctx context.Context, username, passwordHash string, imageURL, bio *string) (dom.User, error)
}

// PGUserRepo implements UserRepo with Postgres.
type PGUserRepo struct {
	db DB
}

// NewPGUserRepo returns a new PGUserRepo.
func NewPGUserRepo(db DB) *PGUserRepo {
	return &PGUserRepo{db: db}
}

// GetByUsername returns the user by username.
func (r *PGUserRepo) GetByUsername(ctx context.Context, username string) (dom.User, error) {
	var u dom.User
	err := r.db.QueryRow(ctx,
		`SELECT id, username, password_hash, image_url, bio, created_at FROM users WHERE username = $1`,
		username,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.ImageURL, &u.Bio, &u.CreatedAt)
	return u, err
}

// GetByID returns the user by ID.
func (r *PGUserRepo) GetByID(ctx context.Context, id int64) (dom.User, error) {
	var u dom.User
	err := r.db.QueryRow(ctx,
		`SELECT id, username, password_hash, image_url, bio, created_at FROM users WHERE id = $1`,
		id,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.ImageURL, &u.Bio, &u.CreatedAt)
	return u, err
}

// Create inserts a new user and returns it. The unique index on username
// makes the insert fail atomically on a duplicate; nothing is persisted.
func (r *PGUserRepo) Create(ctx context.Context, username, passwordHash string, imageURL, bio *string) (dom.User, error) {
	query := `
		INSERT INTO users (username, password_hash, image_url, bio)
		VALUES ($1, $2, $3, $4)
		RETURNING id, username, password_hash, image_url, bio, created_at`
	var u dom.User
	err := r.db.QueryRow(ctx, query, username, passwordHash, imageURL, bio).Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.ImageURL, &u.Bio, &u.CreatedAt,
	)
	return u, err
}
