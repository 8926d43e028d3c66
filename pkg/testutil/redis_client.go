package testutil

import (
	"context"
	"encoding/json"
	"time"

	"github.com/strandsapp/backend/pkg/xredis"
)

type MockRedisClient struct {
	ExistFunc  func(ctx context.Context, key string) (bool, error)
	DelFunc    func(ctx context.Context, key ...string) error
	SetObjFunc func(ctx context.Context, key string, obj any, ttl time.Duration) error
	GetObjFunc func(ctx context.Context, key string, v any) error
}

func (m *MockRedisClient) Exist(ctx context.Context, key string) (bool, error) {
	if m.ExistFunc != nil {
		return m.ExistFunc(ctx, key)
	}

	return false, nil
}

func (m *MockRedisClient) Del(ctx context.Context, key ...string) error {
	if m.DelFunc != nil {
		return m.DelFunc(ctx, key...)
	}

	return nil
}

func (m *MockRedisClient) SetObj(ctx context.Context, key string, obj any, ttl time.Duration) error {
	if m.SetObjFunc != nil {
		return m.SetObjFunc(ctx, key, obj, ttl)
	}

	return nil
}

func (m *MockRedisClient) GetObj(ctx context.Context, key string, v any) error {
	if m.GetObjFunc != nil {
		return m.GetObjFunc(ctx, key, v)
	}

	return xredis.Nil
}

// InMemoryRedisClient keeps values in a map with real expirations. It is not
// safe for concurrent use.
type InMemoryRedisClient struct {
	values  map[string]string
	expires map[string]time.Time
	TTLs    map[string]time.Duration
}

func NewInMemoryRedisClient() *InMemoryRedisClient {
	return &InMemoryRedisClient{
		values:  make(map[string]string),
		expires: make(map[string]time.Time),
		TTLs:    make(map[string]time.Duration),
	}
}

func (c *InMemoryRedisClient) lookup(key string) (string, bool) {
	expiration, ok := c.expires[key]
	if ok && time.Now().After(expiration) {
		delete(c.values, key)
		delete(c.expires, key)
		return "", false
	}

	value, ok := c.values[key]
	return value, ok
}

func (c *InMemoryRedisClient) Exist(ctx context.Context, key string) (bool, error) {
	_, ok := c.lookup(key)
	return ok, nil
}

func (c *InMemoryRedisClient) Del(ctx context.Context, key ...string) error {
	for _, k := range key {
		delete(c.values, k)
		delete(c.expires, k)
	}

	return nil
}

func (c *InMemoryRedisClient) SetObj(ctx context.Context, key string, obj any, ttl time.Duration) error {
	b, err := json.Marshal(obj)
	if err != nil {
		return err
	}

	c.values[key] = string(b)
	c.expires[key] = time.Now().Add(ttl)
	c.TTLs[key] = ttl
	return nil
}

func (c *InMemoryRedisClient) GetObj(ctx context.Context, key string, v any) error {
	value, ok := c.lookup(key)
	if !ok {
		return xredis.Nil
	}

	return json.Unmarshal([]byte(value), v)
}
