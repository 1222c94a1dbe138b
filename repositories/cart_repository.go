package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gran-estacion/models"

	"github.com/redis/go-redis/v9"
)

const cartTTL = 30 * 24 * time.Hour

// CartRepository persists one cart snapshot per session. Snapshots go to Redis
// when a client is available, to JSON files under dir otherwise. Writes are
// last-write-wins; two writers to the same session can silently clobber each
// other, matching the original two-tab behavior.
type CartRepository struct {
	redis *redis.Client
	dir   string
}

func NewCartRepository(redisClient *redis.Client, dir string) *CartRepository {
	return &CartRepository{redis: redisClient, dir: dir}
}

func cartKey(sessionID string) string {
	return "cart:" + sessionID
}

func (r *CartRepository) filePath(sessionID string) string {
	return filepath.Join(r.dir, filepath.Base(sessionID)+".json")
}

// Load restores a session's cart. A missing snapshot yields an empty cart; a
// broken one is an error the caller treats the same way.
func (r *CartRepository) Load(ctx context.Context, sessionID string) ([]models.CartItem, error) {
	var data []byte

	if r.redis != nil {
		raw, err := r.redis.Get(ctx, cartKey(sessionID)).Result()
		if err == redis.Nil {
			return []models.CartItem{}, nil
		}
		if err != nil {
			return []models.CartItem{}, fmt.Errorf("failed to read cart snapshot: %w", err)
		}
		data = []byte(raw)
	} else {
		raw, err := os.ReadFile(r.filePath(sessionID))
		if os.IsNotExist(err) {
			return []models.CartItem{}, nil
		}
		if err != nil {
			return []models.CartItem{}, fmt.Errorf("failed to read cart snapshot: %w", err)
		}
		data = raw
	}

	items := []models.CartItem{}
	if err := json.Unmarshal(data, &items); err != nil {
		return []models.CartItem{}, fmt.Errorf("failed to parse cart snapshot: %w", err)
	}
	return items, nil
}

// Save writes the full snapshot after every mutation.
func (r *CartRepository) Save(ctx context.Context, sessionID string, items []models.CartItem) error {
	if items == nil {
		items = []models.CartItem{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to serialize cart: %w", err)
	}

	if r.redis != nil {
		if err := r.redis.Set(ctx, cartKey(sessionID), data, cartTTL).Err(); err != nil {
			return fmt.Errorf("failed to write cart snapshot: %w", err)
		}
		return nil
	}

	if err := os.MkdirAll(r.dir, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create cart directory: %w", err)
	}
	if err := os.WriteFile(r.filePath(sessionID), data, 0o644); err != nil {
		return fmt.Errorf("failed to write cart snapshot: %w", err)
	}
	return nil
}
