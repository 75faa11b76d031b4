package main

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/mahendrairawan/sociable/config"
	"github.com/mahendrairawan/sociable/pkg/helpers"
)

type seedUser struct {
	username string
	fullName string
	email    string
	bio      string
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	users := []seedUser{
		{"demoUser", "Demo User", "demo@example.com", "just here to try things out"},
		{"al", "Al Example", "al@example.com", ""},
		{"jane", "Jane Roe", "jane@example.com", "hello"},
	}

	ids := make(map[string]string, len(users))
	for _, u := range users {
		var id string
		err := db.QueryRow(`
			INSERT INTO users (id, username, email, password_hash, full_name, bio)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (username) DO UPDATE SET full_name = EXCLUDED.full_name
			RETURNING id
		`, uuid.NewString(), u.username, u.email, hash, u.fullName, u.bio).Scan(&id)
		if err != nil {
			log.Fatalf("failed to seed user %s: %v", u.username, err)
		}
		ids[u.username] = id
		fmt.Printf("seeded user: id=%s username=%s password=%s\n", id, u.username, password)
	}

	if _, err := db.Exec(`
		INSERT INTO follows (follower_id, followee_id)
		VALUES ($1, $2), ($3, $1)
		ON CONFLICT DO NOTHING
	`, ids["demoUser"], ids["jane"], ids["al"]); err != nil {
		log.Fatalf("failed to seed follows: %v", err)
	}

	var postID string
	if err := db.QueryRow(`
		INSERT INTO posts (id, author_id, body)
		VALUES ($1, $2, $3)
		RETURNING id
	`, uuid.NewString(), ids["jane"], "first post").Scan(&postID); err != nil {
		log.Fatalf("failed to seed post: %v", err)
	}
	if _, err := db.Exec(`
		INSERT INTO post_likes (post_id, user_id) VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, postID, ids["demoUser"]); err != nil {
		log.Fatalf("failed to seed like: %v", err)
	}
	fmt.Printf("seeded post: id=%s author=jane\n", postID)
}
