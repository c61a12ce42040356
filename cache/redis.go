package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"inkwell-backend/models"
	"inkwell-backend/utils"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

var RedisClient *redis.Client

const (
	latestPostsKey = "posts:latest"
	latestPostsTTL = 5 * time.Minute
)

// InitRedis connects the optional cache. When REDIS_HOST is unset the
// client stays nil and every read falls through to the database.
func InitRedis() error {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		utils.LogInfo("REDIS_HOST not set, latest-posts cache disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, os.Getenv("REDIS_PORT")),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx := context.Background()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return err
	}

	RedisClient = client
	utils.LogSuccess("Redis connected successfully")
	return nil
}

// LatestPosts returns the n most recent published posts, served from the
// cache when possible and refilled on a miss.
func LatestPosts(db *gorm.DB, n int) ([]models.Post, error) {
	if cached, ok := getLatestPosts(); ok && len(cached) >= n {
		return cached[:n], nil
	}

	posts, err := models.LatestPosts(db, n)
	if err != nil {
		return nil, err
	}

	if err := cacheLatestPosts(posts); err != nil {
		utils.LogError(err, "Error caching latest posts")
	}
	return posts, nil
}

func getLatestPosts() ([]models.Post, bool) {
	if RedisClient == nil {
		return nil, false
	}

	ctx := context.Background()
	payload, err := RedisClient.Get(ctx, latestPostsKey).Result()
	if err != nil {
		if err != redis.Nil {
			utils.LogError(err, "Error reading latest posts from cache")
		}
		return nil, false
	}

	var posts []models.Post
	if err := json.Unmarshal([]byte(payload), &posts); err != nil {
		utils.LogError(err, "Error decoding cached latest posts")
		return nil, false
	}
	return posts, true
}

func cacheLatestPosts(posts []models.Post) error {
	if RedisClient == nil {
		return nil
	}

	payload, err := json.Marshal(posts)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return RedisClient.Set(ctx, latestPostsKey, payload, latestPostsTTL).Err()
}
