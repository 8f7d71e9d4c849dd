package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vladimiradmaev/diabetes-tracker/internal/logger"
)

// stateTTL drops state of users who went quiet
const stateTTL = 24 * time.Hour

// RedisManager manages user states using Redis
type RedisManager struct {
	client *redis.Client
}

// NewRedisManager creates a Redis-based state manager over a connected client
func NewRedisManager(client *redis.Client) *RedisManager {
	return &RedisManager{client: client}
}

func stateKey(userID int64) string { return fmt.Sprintf("user:%d:state", userID) }
func tempKey(userID int64) string  { return fmt.Sprintf("user:%d:temp", userID) }

// SetUserState sets the state for a user with TTL
func (m *RedisManager) SetUserState(userID int64, state string) {
	if err := m.client.Set(context.Background(), stateKey(userID), state, stateTTL).Err(); err != nil {
		logger.Error("Failed to save user state", "user_id", userID, "error", err)
	}
}

// GetUserState gets the state for a user
func (m *RedisManager) GetUserState(userID int64) string {
	result, err := m.client.Get(context.Background(), stateKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return None
	}
	if err != nil {
		logger.Error("Failed to load user state", "user_id", userID, "error", err)
		return None
	}
	return result
}

// ClearUserState clears the state for a user
func (m *RedisManager) ClearUserState(userID int64) {
	m.client.Del(context.Background(), stateKey(userID))
}

// SetTempData sets temporary data for a user
func (m *RedisManager) SetTempData(userID int64, key string, value interface{}) {
	tempData := m.getTempDataMap(userID)
	if tempData == nil {
		tempData = make(map[string]interface{})
	}
	tempData[key] = value
	m.saveTempDataMap(userID, tempData)
}

// GetTempData gets temporary data for a user
func (m *RedisManager) GetTempData(userID int64, key string) (interface{}, bool) {
	tempData := m.getTempDataMap(userID)
	if tempData == nil {
		return nil, false
	}
	value, exists := tempData[key]
	return value, exists
}

// DeleteTempData removes one key for a user
func (m *RedisManager) DeleteTempData(userID int64, key string) {
	tempData := m.getTempDataMap(userID)
	if tempData == nil {
		return
	}
	delete(tempData, key)
	m.saveTempDataMap(userID, tempData)
}

// ClearTempData clears all temporary data for a user
func (m *RedisManager) ClearTempData(userID int64) {
	m.client.Del(context.Background(), tempKey(userID))
}

func (m *RedisManager) getTempDataMap(userID int64) map[string]interface{} {
	result, err := m.client.Get(context.Background(), tempKey(userID)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Error("Failed to load temp data", "user_id", userID, "error", err)
		}
		return nil
	}

	var tempData map[string]interface{}
	if err := json.Unmarshal([]byte(result), &tempData); err != nil {
		return nil
	}
	return tempData
}

func (m *RedisManager) saveTempDataMap(userID int64, tempData map[string]interface{}) {
	data, err := json.Marshal(tempData)
	if err != nil {
		return
	}
	if err := m.client.Set(context.Background(), tempKey(userID), data, stateTTL).Err(); err != nil {
		logger.Error("Failed to save temp data", "user_id", userID, "error", err)
	}
}
