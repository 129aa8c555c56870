package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus is the latest snapshot of the external backends. Transcripts
// reports Mongo only when a transcript log is configured.
type HealthStatus struct {
	Sessions    bool      `json:"sessions"`
	Transcripts *bool     `json:"transcripts,omitempty"`
	CheckedAt   time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor performs periodic health checks and updates in-memory
// state. Either client may be nil when that backend is not configured.
func StartHealthMonitor(sessionClient *redis.Client, mongoClient *mongo.Client) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		ctx := context.Background()

		for range ticker.C {
			status := HealthStatus{Sessions: true, CheckedAt: time.Now()}
			if sessionClient != nil {
				status.Sessions = sessionClient.Ping(ctx).Err() == nil
			}
			if mongoClient != nil {
				ok := mongoClient.Ping(ctx, nil) == nil
				status.Transcripts = &ok
			}

			healthMu.Lock()
			currentHealth = status
			healthMu.Unlock()
		}
	}()
}
