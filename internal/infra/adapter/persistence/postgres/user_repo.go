package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"newsboard/internal/domain/entity"
	"newsboard/internal/repository"
)

const userColumns = `email, username, password, avatar_url`

type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) repository.UserRepository {
	return &UserRepo{db: db}
}

func (repo *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users`, userColumns)

	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	users := make([]*entity.User, 0, 16)
	for rows.Next() {
		var user entity.User
		if err := rows.Scan(&user.Email, &user.Username, &user.Password, &user.AvatarURL); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		users = append(users, &user)
	}
	return users, rows.Err()
}

func (repo *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1`, userColumns)

	var user entity.User
	err := repo.db.QueryRowContext(ctx, query, email).
		Scan(&user.Email, &user.Username, &user.Password, &user.AvatarURL)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetByEmail: %w", err)
	}
	return &user, nil
}

func (repo *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE username = $1`, userColumns)

	var user entity.User
	err := repo.db.QueryRowContext(ctx, query, username).
		Scan(&user.Email, &user.Username, &user.Password, &user.AvatarURL)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetByUsername: %w", err)
	}
	return &user, nil
}

// Insert stores a new user. The avatar URL is defaulted by the schema, so
// the created row is read back in full.
func (repo *UserRepo) Insert(ctx context.Context, user *entity.User) (*entity.User, error) {
	const query = `
INSERT INTO users (email, username, password)
VALUES ($1, $2, $3)
RETURNING email, username, password, avatar_url`

	var created entity.User
	err := repo.db.QueryRowContext(ctx, query, user.Email, user.Username, user.Password).
		Scan(&created.Email, &created.Username, &created.Password, &created.AvatarURL)
	if err != nil {
		return nil, fmt.Errorf("Insert: %w", err)
	}
	return &created, nil
}
