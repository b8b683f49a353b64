package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsCfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Attribute names of a kv item. The table's partition key must be "pk" (string).
const (
	dynamoAttrPK = "pk"
)

// DynamoDBClient is the subset of the DynamoDB API the store needs.
// Tests substitute a fake.
type DynamoDBClient interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

var _ DynamoDBClient = (*dynamodb.Client)(nil)

var _ KV = (*DynamoDBKV)(nil)

type dynamoItem struct {
	PK        string `dynamodbav:"pk"`
	Value     string `dynamodbav:"value"`
	UpdatedAt string `dynamodbav:"updatedAt"`
}

// DynamoDBKV stores one item per key in a single table.
type DynamoDBKV struct {
	client    DynamoDBClient
	tableName string
}

func NewDynamoDBKV(client DynamoDBClient, tableName string) *DynamoDBKV {
	return &DynamoDBKV{client: client, tableName: tableName}
}

// NewDynamoDBClient loads the default AWS config for region. A non-empty endpoint
// points the client at a local or compatible server.
func NewDynamoDBClient(ctx context.Context, region, endpoint string) (*dynamodb.Client, error) {
	sdkConfig, err := awsCfg.LoadDefaultConfig(ctx, awsCfg.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return dynamodb.NewFromConfig(sdkConfig, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	}), nil
}

func (d *DynamoDBKV) itemKey(key string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		dynamoAttrPK: &types.AttributeValueMemberS{Value: key},
	}
}

func (d *DynamoDBKV) Get(ctx context.Context, key string) (string, bool, error) {
	result, err := d.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(d.tableName),
		Key:            d.itemKey(key),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return "", false, fmt.Errorf("dynamodb get %q: %w", key, err)
	}
	if result.Item == nil {
		return "", false, nil
	}

	var item dynamoItem
	if err := attributevalue.UnmarshalMap(result.Item, &item); err != nil {
		return "", false, fmt.Errorf("dynamodb unmarshal %q: %w", key, err)
	}
	return item.Value, true, nil
}

func (d *DynamoDBKV) Set(ctx context.Context, key, value string) error {
	item, err := attributevalue.MarshalMap(dynamoItem{
		PK:        key,
		Value:     value,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("dynamodb marshal %q: %w", key, err)
	}

	_, err = d.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(d.tableName),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("dynamodb set %q: %w", key, err)
	}
	return nil
}

func (d *DynamoDBKV) Remove(ctx context.Context, key string) error {
	_, err := d.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(d.tableName),
		Key:       d.itemKey(key),
	})
	if err != nil {
		return fmt.Errorf("dynamodb remove %q: %w", key, err)
	}
	return nil
}

// Close is a no-op; the SDK client holds no connection to release.
func (d *DynamoDBKV) Close() error {
	return nil
}
