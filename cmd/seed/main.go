// Command seed inserts sample categories into the database named by DB_URL.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"blog-backend/config"
	"blog-backend/db"
	"blog-backend/models"
	"blog-backend/store"
	"blog-backend/utils"
)

var topics = []string{
	"go", "databases", "web", "devops", "testing", "security", "cloud",
	"frontend", "networking", "career", "tooling", "performance",
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	count := 20
	if raw := os.Getenv("SEED_COUNT"); raw != "" {
		if count, err = strconv.Atoi(raw); err != nil || count < 0 {
			log.Fatal("SEED_COUNT must be a positive integer")
		}
	}

	if err := db.InitDB(cfg.DBURL); err != nil {
		log.Fatal("Could not connect to the database: ", err)
	}
	defer db.Close()

	utils.LogInfo("Seed start")
	ctx := context.Background()
	for _, input := range sampleCategories(count) {
		if _, err := store.CreateCategory(ctx, input); err != nil {
			utils.LogError(err, "Could not seed category "+input.Slug)
		}
	}
	utils.LogSuccess("Seed done")
}

func sampleCategories(n int) []models.CategoryCreate {
	out := make([]models.CategoryCreate, 0, n)
	for i := 0; i < n; i++ {
		topic := topics[i%len(topics)]
		slug := topic
		if i >= len(topics) {
			slug = fmt.Sprintf("%s-%d", topic, i/len(topics)+1)
		}
		description := fmt.Sprintf("Posts about %s.", topic)
		out = append(out, models.CategoryCreate{
			Name:        slug,
			Description: &description,
			Slug:        slug,
		})
	}
	return out
}
