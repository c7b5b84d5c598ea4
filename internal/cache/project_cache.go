package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"projectpad/internal/model"
)

// ProjectListCache is a read-through cache for per-user project lists.
// Writers invalidate; readers fill. TTL bounds staleness if an invalidation
// is ever lost.
type ProjectListCache struct {
	client *redisv9.Client
	ttl    time.Duration
}

func NewProjectListCache(client *redisv9.Client, ttl time.Duration) *ProjectListCache {
	if ttl <= 0 {
		ttl = 60 * time.Second
	}
	return &ProjectListCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *ProjectListCache) GetList(ctx context.Context, userID string) ([]model.Project, bool, error) {
	raw, err := c.client.Get(ctx, c.listKey(userID)).Result()
	if err == redisv9.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get project list failed: %w", err)
	}

	var projects []model.Project
	if err := json.Unmarshal([]byte(raw), &projects); err != nil {
		return nil, false, fmt.Errorf("unmarshal cached project list failed: %w", err)
	}
	return projects, true, nil
}

func (c *ProjectListCache) SetList(ctx context.Context, userID string, projects []model.Project) error {
	payload, err := json.Marshal(projects)
	if err != nil {
		return fmt.Errorf("marshal project list failed: %w", err)
	}
	if err := c.client.Set(ctx, c.listKey(userID), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set project list failed: %w", err)
	}
	return nil
}

func (c *ProjectListCache) Invalidate(ctx context.Context, userID string) error {
	if err := c.client.Del(ctx, c.listKey(userID)).Err(); err != nil {
		return fmt.Errorf("redis delete project list failed: %w", err)
	}
	return nil
}

func (c *ProjectListCache) listKey(userID string) string {
	return fmt.Sprintf("projects:list:%s", userID)
}
