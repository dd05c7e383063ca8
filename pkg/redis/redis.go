package redis

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

type IRedis interface {
	SetSharedConfig(ctx context.Context, code string, payload string, expiration time.Duration) error
	GetSharedConfig(ctx context.Context, code string) (string, error)
	DeleteSharedConfig(ctx context.Context, code string) error
}

var ErrShareCodeNotFound = errors.New("share code not found")

const shareKeyPrefix = "share:config:"

type redisClient struct {
	client *redis.Client
}

func New() IRedis {
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	redisAddr := os.Getenv("REDIS_ADDRESS")
	redisPassword := os.Getenv("REDIS_PASSWORD")

	logrus.Info(fmt.Sprintf("Connecting to Redis at %s...", redisAddr))

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
	} else {
		logrus.Info("Successfully connected to Redis")
	}

	return &redisClient{client: client}
}

func (r *redisClient) SetSharedConfig(ctx context.Context, code string, payload string, expiration time.Duration) error {
	logrus.Debug(fmt.Sprintf("Storing shared config %s with expiration %v", code, expiration))
	if err := r.client.Set(ctx, shareKeyPrefix+code, payload, expiration).Err(); err != nil {
		logrus.Error(fmt.Sprintf("Error storing shared config %s: %v", code, err))
		return err
	}
	return nil
}

func (r *redisClient) GetSharedConfig(ctx context.Context, code string) (string, error) {
	val, err := r.client.Get(ctx, shareKeyPrefix+code).Result()
	if errors.Is(err, redis.Nil) {
		logrus.Debug(fmt.Sprintf("Shared config %s not found", code))
		return "", ErrShareCodeNotFound
	} else if err != nil {
		logrus.Error(fmt.Sprintf("Error getting shared config %s: %v", code, err))
		return "", err
	}
	return val, nil
}

func (r *redisClient) DeleteSharedConfig(ctx context.Context, code string) error {
	if err := r.client.Del(ctx, shareKeyPrefix+code).Err(); err != nil {
		logrus.Error(fmt.Sprintf("Error deleting shared config %s: %v", code, err))
		return err
	}
	return nil
}
