package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/mahendrairawan/sociable/internal/domain/entity"
	"github.com/mahendrairawan/sociable/internal/domain/repository"
)

const uniqueViolation = "23505"

type UserRepository struct {
	db Querier
}

func NewUserRepository(db Querier) *UserRepository {
	return &UserRepository{db: db}
}

// userColumns is the profile column list shared by the lookup queries. The
// two ARRAY subqueries materialize the follower/following sets.
const userColumns = `
		u.id, u.username, u.email, u.password_hash, u.full_name, u.bio, u.link,
		u.profile_img, u.cover_img, u.created_at, u.updated_at,
		ARRAY(SELECT f.follower_id FROM follows f WHERE f.followee_id = u.id),
		ARRAY(SELECT f.followee_id FROM follows f WHERE f.follower_id = u.id)`

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO users (id, username, email, password_hash, full_name, bio, link, profile_img, cover_img)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING created_at, updated_at
	`, u.ID, u.Username, u.Email, u.Password, u.FullName, u.Bio, u.Link, u.ProfileImg, u.CoverImg)

	if err := row.Scan(&u.CreatedAt, &u.UpdatedAt); err != nil {
		return mapUniqueViolation(err)
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.getBy(ctx, `WHERE u.id = $1`, id)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.getBy(ctx, `WHERE u.username = $1`, username)
}

func (r *UserRepository) getBy(ctx context.Context, where string, arg any) (*entity.User, error) {
	u := &entity.User{}
	row := r.db.QueryRow(ctx, `
		SELECT`+userColumns+`
		FROM users u
		`+where, arg)

	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Password, &u.FullName, &u.Bio, &u.Link,
		&u.ProfileImg, &u.CoverImg, &u.CreatedAt, &u.UpdatedAt, &u.Followers, &u.Following); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	u.UpdatedAt = time.Now()
	res, err := r.db.Exec(ctx, `
		UPDATE users
		SET username = $1, email = $2, password_hash = $3, full_name = $4,
		    bio = $5, link = $6, profile_img = $7, cover_img = $8, updated_at = $9
		WHERE id = $10
	`, u.Username, u.Email, u.Password, u.FullName, u.Bio, u.Link, u.ProfileImg, u.CoverImg, u.UpdatedAt, u.ID)
	if err != nil {
		return mapUniqueViolation(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UserRepository) UsernameTaken(ctx context.Context, username string) (bool, error) {
	var taken bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`, username).Scan(&taken)
	return taken, err
}

func (r *UserRepository) EmailTaken(ctx context.Context, email string) (bool, error) {
	var taken bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email).Scan(&taken)
	return taken, err
}

func (r *UserRepository) IsFollowing(ctx context.Context, followerID, followeeID string) (bool, error) {
	var following bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM follows WHERE follower_id = $1 AND followee_id = $2)
	`, followerID, followeeID).Scan(&following)
	return following, err
}

func (r *UserRepository) Follow(ctx context.Context, followerID, followeeID string) (bool, error) {
	res, err := r.db.Exec(ctx, `
		INSERT INTO follows (follower_id, followee_id)
		VALUES ($1,$2)
		ON CONFLICT DO NOTHING
	`, followerID, followeeID)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

func (r *UserRepository) Unfollow(ctx context.Context, followerID, followeeID string) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM follows WHERE follower_id = $1 AND followee_id = $2
	`, followerID, followeeID)
	return err
}

// Suggested draws a random sample first and filters it afterwards, so the
// result may come up short of the limit even when enough candidates exist.
func (r *UserRepository) Suggested(ctx context.Context, userID string, sampleSize, limit int) ([]entity.User, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, username, email, full_name, bio, link, profile_img, cover_img, created_at, updated_at
		FROM (
			SELECT * FROM users WHERE id <> $1 ORDER BY random() LIMIT $2
		) candidates
		WHERE id NOT IN (SELECT followee_id FROM follows WHERE follower_id = $1)
		LIMIT $3
	`, userID, sampleSize, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []entity.User{}
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.FullName, &u.Bio, &u.Link,
			&u.ProfileImg, &u.CoverImg, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// mapUniqueViolation turns the users table unique constraint violations into
// the same repository errors the pre-insert existence checks produce, so a
// lost race still surfaces as a duplicate, not a 500.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		switch pgErr.ConstraintName {
		case "users_username_key":
			return repository.ErrDuplicateUsername
		case "users_email_key":
			return repository.ErrDuplicateEmail
		}
	}
	return err
}

var _ repository.UserRepository = (*UserRepository)(nil)
