package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

const healthCheckInterval = time.Minute

// HealthStatus is the latest dependency snapshot served by the health
// endpoint. Redis entries are keyed by the client's role (cache, sessions).
type HealthStatus struct {
	Mongo     bool            `json:"mongo"`
	Redis     map[string]bool `json:"redis"`
	CheckedAt time.Time       `json:"checkedAt"`
}

var (
	healthMu      sync.RWMutex
	currentHealth HealthStatus
)

// GetHealthStatus returns the most recent snapshot. Zero-valued until the
// first sweep completes.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor pings each dependency once a minute and keeps the
// snapshot current. Probes share a deadline so one hung dependency cannot
// stall the sweep indefinitely.
func StartHealthMonitor(redisClients map[string]*redis.Client, mongoClient *mongo.Client) {
	go func() {
		ticker := time.NewTicker(healthCheckInterval)
		defer ticker.Stop()

		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)

			snapshot := HealthStatus{
				Redis:     make(map[string]bool, len(redisClients)),
				CheckedAt: time.Now(),
			}
			for role, client := range redisClients {
				snapshot.Redis[role] = client.Ping(ctx).Err() == nil
			}
			snapshot.Mongo = mongoClient.Ping(ctx, nil) == nil
			cancel()

			healthMu.Lock()
			currentHealth = snapshot
			healthMu.Unlock()
		}
	}()
}
