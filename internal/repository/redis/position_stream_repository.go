package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/config"
	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/domain"
	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/domain/repository"
	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/pkg/utils"
)

// positionMessage is the wire format a location feed publishes into the
// stream's "data" field.
type positionMessage struct {
	Lat        float64   `json:"lat"`
	Lng        float64   `json:"lng"`
	RecordedAt time.Time `json:"recorded_at"`
}

type positionStreamRepository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewClient connects a Redis client for the position feed.
func NewClient(cfg *config.Config, logger *zap.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("Redis connected", zap.String("addr", cfg.GetRedisAddr()))
	return client, nil
}

// NewPositionStreamRepository consumes GPS fixes from a Redis stream.
func NewPositionStreamRepository(client *redis.Client, logger *zap.Logger) repository.PositionStreamRepository {
	return &positionStreamRepository{
		client: client,
		logger: logger,
	}
}

// CreateConsumerGroup creates the consumer group, starting at new
// messages. MKSTREAM creates the stream itself when absent.
func (r *positionStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	err := r.client.XGroupCreateMkStream(ctx, stream, group, "$").Err()
	if err != nil {
		// BUSYGROUP means the group already exists
		if err.Error() == "BUSYGROUP Consumer Group name already exists" {
			r.logger.Debug("Consumer group already exists",
				zap.String("stream", stream),
				zap.String("group", group))
			return nil
		}
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	r.logger.Info("Consumer group created",
		zap.String("stream", stream),
		zap.String("group", group))
	return nil
}

// ConsumeStream reads fixes with XReadGroup until the context is
// cancelled. Malformed or out-of-range messages are acknowledged and
// dropped; a broken feed must never stall the engine.
func (r *positionStreamRepository) ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan repository.PositionUpdate, error) {
	updates := make(chan repository.PositionUpdate, 10)

	go func() {
		defer close(updates)

		for {
			select {
			case <-ctx.Done():
				r.logger.Info("Position stream consumer stopped",
					zap.String("stream", stream),
					zap.String("consumer", consumer))
				return
			default:
				result, err := r.client.XReadGroup(ctx, &redis.XReadGroupArgs{
					Group:    group,
					Consumer: consumer,
					Streams:  []string{stream, ">"},
					Count:    10,
					Block:    1 * time.Second,
				}).Result()

				if err != nil {
					if err == redis.Nil {
						continue
					}
					if ctx.Err() != nil {
						return
					}
					r.logger.Error("Failed to read position stream",
						zap.String("stream", stream),
						zap.Error(err))
					time.Sleep(time.Second)
					continue
				}

				for _, str := range result {
					for _, msg := range str.Messages {
						update, ok := r.decode(msg)
						if ok {
							updates <- update
						}
						r.client.XAck(ctx, stream, group, msg.ID)
					}
				}
			}
		}
	}()

	return updates, nil
}

func (r *positionStreamRepository) decode(msg redis.XMessage) (repository.PositionUpdate, bool) {
	data, ok := msg.Values["data"].(string)
	if !ok {
		r.logger.Warn("Position message without data field", zap.String("id", msg.ID))
		return repository.PositionUpdate{}, false
	}

	var payload positionMessage
	if err := json.Unmarshal([]byte(data), &payload); err != nil {
		r.logger.Warn("Malformed position message",
			zap.String("id", msg.ID),
			zap.Error(err))
		return repository.PositionUpdate{}, false
	}

	if !utils.ValidateCoordinates(payload.Lat, payload.Lng) {
		r.logger.Warn("Position message out of range",
			zap.String("id", msg.ID),
			zap.Float64("lat", payload.Lat),
			zap.Float64("lng", payload.Lng))
		return repository.PositionUpdate{}, false
	}

	return repository.PositionUpdate{
		Coords:     domain.Coordinates{Lat: payload.Lat, Lng: payload.Lng},
		RecordedAt: payload.RecordedAt,
	}, true
}
