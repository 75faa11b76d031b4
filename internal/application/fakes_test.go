package application

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/mahendrairawan/sociable/internal/domain/entity"
	"github.com/mahendrairawan/sociable/internal/domain/repository"
)

// In-memory fakes for the service tests. They implement the repository
// interfaces with maps and honor the same idempotence rules the SQL
// implementations get from their composite primary keys.

type fakeUserRepo struct {
	mu      sync.Mutex
	users   map[string]*entity.User // by id
	follows map[string]bool         // follower|followee
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}, follows: map[string]bool{}}
}

func edgeKey(follower, followee string) string { return follower + "|" + followee }

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, have := range r.users {
		if have.Username == u.Username {
			return repository.ErrDuplicateUsername
		}
		if have.Email == u.Email {
			return repository.ErrDuplicateEmail
		}
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID]; !ok {
		return repository.ErrNotFound
	}
	for id, have := range r.users {
		if id == u.ID {
			continue
		}
		if have.Username == u.Username {
			return repository.ErrDuplicateUsername
		}
		if have.Email == u.Email {
			return repository.ErrDuplicateEmail
		}
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) UsernameTaken(_ context.Context, username string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) EmailTaken(_ context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) IsFollowing(_ context.Context, followerID, followeeID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.follows[edgeKey(followerID, followeeID)], nil
}

func (r *fakeUserRepo) Follow(_ context.Context, followerID, followeeID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := edgeKey(followerID, followeeID)
	if r.follows[key] {
		return false, nil
	}
	r.follows[key] = true
	return true, nil
}

func (r *fakeUserRepo) Unfollow(_ context.Context, followerID, followeeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.follows, edgeKey(followerID, followeeID))
	return nil
}

func (r *fakeUserRepo) Suggested(_ context.Context, userID string, sampleSize, limit int) ([]entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	sort.Strings(ids) // deterministic instead of random; fine for tests

	out := []entity.User{}
	sampled := 0
	for _, id := range ids {
		if id == userID {
			continue
		}
		if sampled >= sampleSize {
			break
		}
		sampled++
		if r.follows[edgeKey(userID, id)] {
			continue
		}
		out = append(out, *r.users[id])
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}

type fakePostRepo struct {
	mu    sync.Mutex
	users *fakeUserRepo
	posts map[string]*entity.Post
	likes map[string]bool // post|user
	order []string        // insertion order, oldest first
}

func newFakePostRepo(users *fakeUserRepo) *fakePostRepo {
	return &fakePostRepo{users: users, posts: map[string]*entity.Post{}, likes: map[string]bool{}}
}

func likeKey(postID, userID string) string { return postID + "|" + userID }

func (r *fakePostRepo) Create(_ context.Context, p *entity.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.posts[p.ID] = &cp
	r.order = append(r.order, p.ID)
	return nil
}

func (r *fakePostRepo) hydrate(p *entity.Post) entity.Post {
	cp := *p
	if u, ok := r.users.users[p.AuthorID]; ok {
		cu := *u
		cp.Author = &cu
	}
	cp.Likes = []string{}
	for key := range r.likes {
		if len(key) > len(p.ID) && key[:len(p.ID)] == p.ID && key[len(p.ID)] == '|' {
			cp.Likes = append(cp.Likes, key[len(p.ID)+1:])
		}
	}
	sort.Strings(cp.Likes)
	if cp.Comments == nil {
		cp.Comments = []entity.Comment{}
	}
	return cp
}

func (r *fakePostRepo) GetByID(_ context.Context, id string) (*entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := r.hydrate(p)
	return &cp, nil
}

func (r *fakePostRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.posts, id)
	return nil
}

func (r *fakePostRepo) AddComment(_ context.Context, postID string, c *entity.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[postID]
	if !ok {
		return repository.ErrNotFound
	}
	cc := *c
	if u, ok := r.users.users[c.UserID]; ok {
		cu := *u
		cc.User = &cu
	}
	p.Comments = append(p.Comments, cc)
	return nil
}

func (r *fakePostRepo) Like(_ context.Context, postID, userID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := likeKey(postID, userID)
	if r.likes[key] {
		return false, nil
	}
	r.likes[key] = true
	return true, nil
}

func (r *fakePostRepo) Unlike(_ context.Context, postID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.likes, likeKey(postID, userID))
	return nil
}

func (r *fakePostRepo) HasLiked(_ context.Context, postID, userID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.likes[likeKey(postID, userID)], nil
}

func (r *fakePostRepo) listNewestFirst(keep func(*entity.Post) bool) []entity.Post {
	out := []entity.Post{}
	for i := len(r.order) - 1; i >= 0; i-- {
		p, ok := r.posts[r.order[i]]
		if !ok || !keep(p) {
			continue
		}
		out = append(out, r.hydrate(p))
	}
	return out
}

func (r *fakePostRepo) ListAll(_ context.Context) ([]entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.listNewestFirst(func(*entity.Post) bool { return true }), nil
}

func (r *fakePostRepo) ListByAuthor(_ context.Context, authorID string) ([]entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.listNewestFirst(func(p *entity.Post) bool { return p.AuthorID == authorID }), nil
}

func (r *fakePostRepo) ListByFollowed(_ context.Context, viewerID string) ([]entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.listNewestFirst(func(p *entity.Post) bool {
		return r.users.follows[edgeKey(viewerID, p.AuthorID)]
	}), nil
}

func (r *fakePostRepo) ListLikedBy(_ context.Context, userID string) ([]entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.listNewestFirst(func(p *entity.Post) bool {
		return r.likes[likeKey(p.ID, userID)]
	}), nil
}

type fakeNotifRepo struct {
	mu    sync.Mutex
	items []entity.Notification
}

func newFakeNotifRepo() *fakeNotifRepo { return &fakeNotifRepo{} }

func (r *fakeNotifRepo) Create(_ context.Context, n *entity.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, *n)
	return nil
}

func (r *fakeNotifRepo) ListForUser(_ context.Context, toID string) ([]entity.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []entity.Notification{}
	for i := len(r.items) - 1; i >= 0; i-- {
		if r.items[i].ToID == toID {
			out = append(out, r.items[i])
		}
	}
	return out, nil
}

func (r *fakeNotifRepo) MarkAllRead(_ context.Context, toID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ToID == toID {
			r.items[i].Read = true
		}
	}
	return nil
}

func (r *fakeNotifRepo) DeleteAllForUser(_ context.Context, toID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.items[:0]
	for _, n := range r.items {
		if n.ToID != toID {
			kept = append(kept, n)
		}
	}
	r.items = kept
	return nil
}

// fakeImageStore records uploads and removals and hands out predictable URLs.
type fakeImageStore struct {
	mu       sync.Mutex
	uploads  int
	removed  []string
	failNext bool
}

func (s *fakeImageStore) Upload(_ context.Context, data []byte, contentType string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failNext {
		s.failNext = false
		return "", fmt.Errorf("upload rejected")
	}
	s.uploads++
	return fmt.Sprintf("https://img.example/%d", s.uploads), nil
}

func (s *fakeImageStore) Remove(_ context.Context, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removed = append(s.removed, url)
	return nil
}

type fakePublisher struct {
	mu   sync.Mutex
	sent []any
}

func (p *fakePublisher) PublishJSON(_ context.Context, body any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sent = append(p.sent, body)
	return nil
}
