package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/jhalaktiwarii/dealerspot-backend/internal/domain"
)

// SettingsRepo provides typed DynamoDB operations for the user-settings table.
type SettingsRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewSettingsRepo(client *dynamodb.Client, tableName string) *SettingsRepo {
	return &SettingsRepo{client: client, tableName: tableName}
}

// Get returns the settings row, or (nil, nil) when the company has never
// configured anything. Callers apply the default-on semantics; a missing
// row is not an error and is never materialized as a sentinel row.
func (r *SettingsRepo) Get(ctx context.Context, companyName string) (*domain.NotificationSettings, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey(fieldCompanyName, companyName),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, nil
	}
	var s domain.NotificationSettings
	if err := attributevalue.UnmarshalMap(out.Item, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Put is an unconditional upsert that replaces the whole row.
func (r *SettingsRepo) Put(ctx context.Context, s *domain.NotificationSettings) error {
	item, err := attributevalue.MarshalMap(s)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}
