package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	attrUserID    = "user_id"
	attrPillType  = "pill_type"
	attrTimestamp = "ingestion_timestamp"
)

// dynamodbAPI is the minimal DynamoDB interface required by Client.
// Defined here for testability.
type dynamodbAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
}

// Client wraps the DynamoDB ingestions table. Each item holds the last
// ingestion timestamp for one (user, pill type) pair.
type Client struct {
	api       dynamodbAPI
	tableName string
}

// New creates a new repository Client.
func New(api dynamodbAPI, tableName string) (*Client, error) {
	if api == nil {
		return nil, errors.New("repository: api must not be nil")
	}
	if strings.TrimSpace(tableName) == "" {
		return nil, errors.New("repository: table name must not be empty")
	}
	return &Client{api: api, tableName: tableName}, nil
}

func recordKey(userID, pillType string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		attrUserID:   &types.AttributeValueMemberS{Value: userID},
		attrPillType: &types.AttributeValueMemberS{Value: pillType},
	}
}

// GetLastIngestion reads the stored ingestion timestamp for a
// (user, pill type) pair. The boolean reports whether a record exists.
func (c *Client) GetLastIngestion(ctx context.Context, userID, pillType string) (time.Time, bool, error) {
	if userID == "" || pillType == "" {
		return time.Time{}, false, errors.New("repository: GetLastIngestion: user id and pill type are required")
	}

	out, err := c.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(c.tableName),
		Key:       recordKey(userID, pillType),
	})
	if err != nil {
		return time.Time{}, false, fmt.Errorf("repository: GetLastIngestion get item: %w", err)
	}
	if out == nil || len(out.Item) == 0 {
		return time.Time{}, false, nil
	}

	ts, err := timeAttr(out.Item, attrTimestamp)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("repository: GetLastIngestion decode timestamp: %w", err)
	}
	return ts, true, nil
}

// RecordIngestion writes the ingestion timestamp for a (user, pill type)
// pair, overwriting any previous value. No history is kept.
func (c *Client) RecordIngestion(ctx context.Context, userID, pillType string, takenAt time.Time) error {
	if userID == "" || pillType == "" {
		return errors.New("repository: RecordIngestion: user id and pill type are required")
	}

	_, err := c.api.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(c.tableName),
		Key:              recordKey(userID, pillType),
		UpdateExpression: aws.String("SET " + attrTimestamp + " = :t"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":t": &types.AttributeValueMemberN{Value: strconv.FormatInt(takenAt.UTC().Unix(), 10)},
		},
	})
	if err != nil {
		return fmt.Errorf("repository: RecordIngestion update item: %w", err)
	}
	return nil
}

func timeAttr(item map[string]types.AttributeValue, key string) (time.Time, error) {
	v, ok := item[key]
	if !ok {
		return time.Time{}, fmt.Errorf("repository: missing attribute %q", key)
	}
	n, ok := v.(*types.AttributeValueMemberN)
	if !ok {
		return time.Time{}, fmt.Errorf("repository: attribute %q is not a number", key)
	}
	unix, err := strconv.ParseInt(n.Value, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("repository: parse attribute %q: %w", key, err)
	}
	return time.Unix(unix, 0).UTC(), nil
}
