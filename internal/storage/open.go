package storage

import (
	"context"
	"fmt"

	"alcyxob/fitness-tracker/internal/config"

	"github.com/sirupsen/logrus"
)

// Open builds the backend named by cfg.Driver.
func Open(ctx context.Context, cfg config.StorageConfig) (KV, error) {
	logrus.Infof("opening %s storage", cfg.Driver)

	switch cfg.Driver {
	case DriverMemory:
		return NewMemoryKV(), nil

	case DriverSQLite, "":
		return NewSQLiteKV(ctx, cfg.SQLite.Path)

	case DriverMongo:
		return NewMongoKV(cfg.Mongo.URI, cfg.Mongo.Name, cfg.Mongo.Collection)

	case DriverRedis:
		client, err := DialRedis(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, err
		}
		return NewRedisKV(client, cfg.Redis.Prefix), nil

	case DriverDynamoDB:
		client, err := NewDynamoDBClient(ctx, cfg.DynamoDB.Region, cfg.DynamoDB.Endpoint)
		if err != nil {
			return nil, err
		}
		return NewDynamoDBKV(client, cfg.DynamoDB.Table), nil

	case DriverS3:
		if cfg.S3.BucketName == "" {
			return nil, fmt.Errorf("s3 storage: bucket_name is required")
		}
		client, err := NewS3Client(ctx, cfg.S3)
		if err != nil {
			return nil, err
		}
		return NewS3KV(client, cfg.S3.BucketName, cfg.S3.Prefix), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
}
