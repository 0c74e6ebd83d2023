package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shashwat-builds/ecommerce-backend/pkg/models"
)

const productCacheTTL = 24 * time.Hour

func productKey(id string) string {
	return fmt.Sprintf("product:%s", id)
}

// CacheProduct stores a product for single-product lookups and keeps a
// per-category list of recently seen product ids for warm-up.
func CacheProduct(ctx context.Context, product *models.Product) error {
	client := RedisClient()
	defer client.Close()

	productJSON, err := json.Marshal(product)
	if err != nil {
		return fmt.Errorf("failed to marshal product %s: %w", product.ID.Hex(), err)
	}

	pipe := client.TxPipeline()
	pipe.Set(ctx, productKey(product.ID.Hex()), productJSON, productCacheTTL)
	if product.Category != "" {
		categoryKey := fmt.Sprintf("category:%s", product.Category)
		pipe.LPush(ctx, categoryKey, product.ID.Hex())
		pipe.LTrim(ctx, categoryKey, 0, 99)
		pipe.Expire(ctx, categoryKey, productCacheTTL)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to cache product %s: %w", product.ID.Hex(), err)
	}
	return nil
}

func GetProductFromCache(ctx context.Context, id string) (*models.Product, error) {
	client := RedisClient()
	defer client.Close()

	productJSON, err := client.Get(ctx, productKey(id)).Result()
	if err != nil {
		return nil, err
	}

	var product models.Product
	if err := json.Unmarshal([]byte(productJSON), &product); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached product: %w", err)
	}
	return &product, nil
}

// EvictProduct removes a product's cache entries after catalog deletion.
func EvictProduct(ctx context.Context, product *models.Product) error {
	client := RedisClient()
	defer client.Close()

	pipe := client.TxPipeline()
	pipe.Del(ctx, productKey(product.ID.Hex()))
	if product.Category != "" {
		pipe.LRem(ctx, fmt.Sprintf("category:%s", product.Category), 0, product.ID.Hex())
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to evict product %s: %w", product.ID.Hex(), err)
	}
	return nil
}
