package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/maison-next/internal/cache"
	"github.com/maison-next/internal/constants"
	"github.com/maison-next/internal/models"
)

// CartLine 购物车行，身份键为 (product_id, color, size)
type CartLine struct {
	ProductID uint         `json:"product_id"`
	Title     string       `json:"title"`
	UnitPrice models.Money `json:"unit_price"`
	Image     string       `json:"image"`
	Color     string       `json:"color"`
	Size      string       `json:"size"`
	Quantity  int          `json:"quantity"`
}

// CartStore 游客购物车存储接口，以购物车令牌为键
type CartStore interface {
	Load(ctx context.Context, token string) ([]CartLine, error)
	Save(ctx context.Context, token string, lines []CartLine) error
	Delete(ctx context.Context, token string) error
}

// RedisCartStore 基于 Redis 的购物车存储
type RedisCartStore struct {
	ttl time.Duration
}

// NewRedisCartStore 创建 Redis 购物车存储
func NewRedisCartStore(ttlHours int) *RedisCartStore {
	if ttlHours <= 0 {
		ttlHours = constants.CartDefaultTTLHour
	}
	return &RedisCartStore{ttl: time.Duration(ttlHours) * time.Hour}
}

func cartKey(token string) string {
	return fmt.Sprintf("%s:%s", constants.CartKeyPrefix, token)
}

// Load 读取购物车；键不存在返回空
func (s *RedisCartStore) Load(ctx context.Context, token string) ([]CartLine, error) {
	var lines []CartLine
	found, err := cache.GetJSON(ctx, cartKey(token), &lines)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return lines, nil
}

// Save 写入购物车并续期
func (s *RedisCartStore) Save(ctx context.Context, token string, lines []CartLine) error {
	return cache.SetJSON(ctx, cartKey(token), lines, s.ttl)
}

// Delete 清空购物车
func (s *RedisCartStore) Delete(ctx context.Context, token string) error {
	return cache.Del(ctx, cartKey(token))
}

// MemoryCartStore 内存购物车存储，供单测与无 Redis 的本地运行使用
type MemoryCartStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryCartStore 创建内存购物车存储
func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{data: make(map[string][]byte)}
}

// Load 读取购物车
func (s *MemoryCartStore) Load(_ context.Context, token string) ([]CartLine, error) {
	s.mu.RLock()
	raw, ok := s.data[token]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	var lines []CartLine
	if err := json.Unmarshal(raw, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// Save 写入购物车
func (s *MemoryCartStore) Save(_ context.Context, token string, lines []CartLine) error {
	payload, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data[token] = payload
	s.mu.Unlock()
	return nil
}

// Delete 清空购物车
func (s *MemoryCartStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	delete(s.data, token)
	s.mu.Unlock()
	return nil
}

// SeedRaw 直接写入原始负载（用于模拟损坏数据）
func (s *MemoryCartStore) SeedRaw(token string, raw []byte) {
	s.mu.Lock()
	s.data[token] = raw
	s.mu.Unlock()
}
