package cartstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

const (
	keyPrefix = "cart:"

	// cartTTL время жизни неактивной корзины
	cartTTL = 7 * 24 * time.Hour
)

// Store хранилище корзин в Redis
// Корзина сериализуется в JSON целиком, одна запись на пользователя
type Store struct {
	client *redis.Client
}

// NewStore создает новое хранилище корзин
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

func cartKey(userID int64) string {
	return fmt.Sprintf("%s%d", keyPrefix, userID)
}

// Load загружает корзину пользователя
// Отсутствующая или повреждённая запись трактуется как пустая корзина
func (s *Store) Load(ctx context.Context, userID int64) (*domain.Cart, error) {
	raw, err := s.client.Get(ctx, cartKey(userID)).Bytes()
	if err == redis.Nil {
		return domain.NewCart(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Load - get key: %v", ErrStoreUnavailable, err)
	}

	var cart domain.Cart
	if err := json.Unmarshal(raw, &cart); err != nil {
		return domain.NewCart(), nil
	}

	return &cart, nil
}

// Save сохраняет корзину пользователя, сбрасывая TTL
func (s *Store) Save(ctx context.Context, userID int64, cart *domain.Cart) error {
	raw, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("%w: Save - marshal cart: %v", ErrEncodeCart, err)
	}

	if err := s.client.Set(ctx, cartKey(userID), raw, cartTTL).Err(); err != nil {
		return fmt.Errorf("%w: Save - set key: %v", ErrStoreUnavailable, err)
	}

	return nil
}

// Clear удаляет корзину пользователя
func (s *Store) Clear(ctx context.Context, userID int64) error {
	if err := s.client.Del(ctx, cartKey(userID)).Err(); err != nil {
		return fmt.Errorf("%w: Clear - delete key: %v", ErrStoreUnavailable, err)
	}

	return nil
}
