package postgres

import (
	"context"

	"github.com/mahendrairawan/sociable/internal/domain/entity"
	"github.com/mahendrairawan/sociable/internal/domain/repository"
)

type PostRepository struct {
	db Querier
}

func NewPostRepository(db Querier) *PostRepository {
	return &PostRepository{db: db}
}

// postColumns joins the author's public profile onto every post row; the
// password hash is never selected here.
const postColumns = `
		p.id, p.author_id, p.body, p.image_url, p.created_at, p.updated_at,
		a.username, a.email, a.full_name, a.bio, a.link, a.profile_img, a.cover_img,
		a.created_at, a.updated_at`

const postFrom = `
		FROM posts p
		JOIN users a ON a.id = p.author_id`

func (r *PostRepository) Create(ctx context.Context, p *entity.Post) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO posts (id, author_id, body, image_url)
		VALUES ($1,$2,$3,$4)
		RETURNING created_at, updated_at
	`, p.ID, p.AuthorID, p.Text, p.ImageURL)
	return row.Scan(&p.CreatedAt, &p.UpdatedAt)
}

func (r *PostRepository) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	posts, err := r.list(ctx, `WHERE p.id = $1`, id)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, repository.ErrNotFound
	}
	return &posts[0], nil
}

func (r *PostRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PostRepository) AddComment(ctx context.Context, postID string, c *entity.Comment) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO post_comments (id, post_id, user_id, body)
		VALUES ($1,$2,$3,$4)
		RETURNING created_at
	`, c.ID, postID, c.UserID, c.Text)
	return row.Scan(&c.CreatedAt)
}

func (r *PostRepository) Like(ctx context.Context, postID, userID string) (bool, error) {
	res, err := r.db.Exec(ctx, `
		INSERT INTO post_likes (post_id, user_id)
		VALUES ($1,$2)
		ON CONFLICT DO NOTHING
	`, postID, userID)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

func (r *PostRepository) Unlike(ctx context.Context, postID, userID string) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM post_likes WHERE post_id = $1 AND user_id = $2
	`, postID, userID)
	return err
}

func (r *PostRepository) HasLiked(ctx context.Context, postID, userID string) (bool, error) {
	var liked bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM post_likes WHERE post_id = $1 AND user_id = $2)
	`, postID, userID).Scan(&liked)
	return liked, err
}

func (r *PostRepository) ListAll(ctx context.Context) ([]entity.Post, error) {
	return r.list(ctx, `ORDER BY p.created_at DESC`)
}

func (r *PostRepository) ListByAuthor(ctx context.Context, authorID string) ([]entity.Post, error) {
	return r.list(ctx, `WHERE p.author_id = $1 ORDER BY p.created_at DESC`, authorID)
}

func (r *PostRepository) ListByFollowed(ctx context.Context, viewerID string) ([]entity.Post, error) {
	return r.list(ctx, `
		WHERE p.author_id IN (SELECT followee_id FROM follows WHERE follower_id = $1)
		ORDER BY p.created_at DESC`, viewerID)
}

func (r *PostRepository) ListLikedBy(ctx context.Context, userID string) ([]entity.Post, error) {
	return r.list(ctx, `
		WHERE p.id IN (SELECT post_id FROM post_likes WHERE user_id = $1)
		ORDER BY p.created_at DESC`, userID)
}

func (r *PostRepository) list(ctx context.Context, tail string, args ...any) ([]entity.Post, error) {
	rows, err := r.db.Query(ctx, `SELECT`+postColumns+postFrom+`
		`+tail, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []entity.Post{}
	var ids []string
	for rows.Next() {
		var p entity.Post
		author := &entity.User{}
		if err := rows.Scan(&p.ID, &p.AuthorID, &p.Text, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt,
			&author.Username, &author.Email, &author.FullName, &author.Bio, &author.Link,
			&author.ProfileImg, &author.CoverImg, &author.CreatedAt, &author.UpdatedAt); err != nil {
			return nil, err
		}
		author.ID = p.AuthorID
		p.Author = author
		p.Likes = []string{}
		p.Comments = []entity.Comment{}
		ids = append(ids, p.ID)
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return posts, nil
	}

	likes, err := r.loadLikes(ctx, ids)
	if err != nil {
		return nil, err
	}
	comments, err := r.loadComments(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range posts {
		if l, ok := likes[posts[i].ID]; ok {
			posts[i].Likes = l
		}
		if c, ok := comments[posts[i].ID]; ok {
			posts[i].Comments = c
		}
	}
	return posts, nil
}

func (r *PostRepository) loadLikes(ctx context.Context, postIDs []string) (map[string][]string, error) {
	rows, err := r.db.Query(ctx, `
		SELECT post_id, user_id
		FROM post_likes WHERE post_id = ANY($1)
		ORDER BY created_at
	`, postIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	likes := map[string][]string{}
	for rows.Next() {
		var postID, userID string
		if err := rows.Scan(&postID, &userID); err != nil {
			return nil, err
		}
		likes[postID] = append(likes[postID], userID)
	}
	return likes, rows.Err()
}

func (r *PostRepository) loadComments(ctx context.Context, postIDs []string) (map[string][]entity.Comment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT c.id, c.post_id, c.user_id, c.body, c.created_at,
		       u.username, u.email, u.full_name, u.bio, u.link, u.profile_img, u.cover_img,
		       u.created_at, u.updated_at
		FROM post_comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.post_id = ANY($1)
		ORDER BY c.created_at, c.id
	`, postIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := map[string][]entity.Comment{}
	for rows.Next() {
		var c entity.Comment
		var postID string
		user := &entity.User{}
		if err := rows.Scan(&c.ID, &postID, &c.UserID, &c.Text, &c.CreatedAt,
			&user.Username, &user.Email, &user.FullName, &user.Bio, &user.Link,
			&user.ProfileImg, &user.CoverImg, &user.CreatedAt, &user.UpdatedAt); err != nil {
			return nil, err
		}
		user.ID = c.UserID
		c.User = user
		comments[postID] = append(comments[postID], c)
	}
	return comments, rows.Err()
}

var _ repository.PostRepository = (*PostRepository)(nil)
