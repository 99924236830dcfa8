package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/jhalaktiwarii/dealerspot-backend/internal/domain"
)

// CustomerRepo provides typed DynamoDB operations for the customer-feedback table.
type CustomerRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewCustomerRepo(client *dynamodb.Client, tableName string) *CustomerRepo {
	return &CustomerRepo{client: client, tableName: tableName}
}

func (r *CustomerRepo) Put(ctx context.Context, f *domain.CustomerFeedback) error {
	item, err := attributevalue.MarshalMap(f)
	if err != nil {
		return fmt.Errorf("marshal customer feedback: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

// ListByOwner returns one dealer's feedback records, split by walk-in flag.
func (r *CustomerRepo) ListByOwner(ctx context.Context, owner string, isWalkIn bool) ([]domain.CustomerFeedback, error) {
	var records []domain.CustomerFeedback
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String("#o = :owner AND is_walk_in = :walkIn"),
			ExpressionAttributeNames: map[string]string{
				"#o": fieldOwner,
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":owner":  &types.AttributeValueMemberS{Value: owner},
				":walkIn": &types.AttributeValueMemberBOOL{Value: isWalkIn},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		var page []domain.CustomerFeedback
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		records = append(records, page...)
		if out.LastEvaluatedKey == nil {
			return records, nil
		}
		startKey = out.LastEvaluatedKey
	}
}
