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

// friendClient is the subset of the DynamoDB API the friend repo uses.
type friendClient interface {
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

// FriendRepo provides typed DynamoDB operations for the friends table.
// Edges are partitioned by owner with the friend id as sort key.
type FriendRepo struct {
	client    friendClient
	tableName string
}

func NewFriendRepo(client *dynamodb.Client, tableName string) *FriendRepo {
	return &FriendRepo{client: client, tableName: tableName}
}

func (r *FriendRepo) Put(ctx context.Context, f *domain.FriendLink) error {
	item, err := attributevalue.MarshalMap(f)
	if err != nil {
		return fmt.Errorf("marshal friend link: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

// ListByOwner returns all of one owner's edges in sort-key order, following
// result pages past DynamoDB's 1MB query limit.
func (r *FriendRepo) ListByOwner(ctx context.Context, owner string) ([]domain.FriendLink, error) {
	var friends []domain.FriendLink
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.client.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			KeyConditionExpression: aws.String("#o = :owner"),
			ExpressionAttributeNames: map[string]string{
				"#o": fieldOwner,
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":owner": &types.AttributeValueMemberS{Value: owner},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		var page []domain.FriendLink
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		friends = append(friends, page...)
		if out.LastEvaluatedKey == nil {
			return friends, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

// ExistsCompany reports whether owner already holds an edge to company.
// This is the duplicate pre-check: a query plus a later insert, not an
// atomic operation, so two concurrent adds for the same pair can both pass.
// The filter runs after each page is read, so an early page can come back
// empty with more pages remaining; every page must be checked.
func (r *FriendRepo) ExistsCompany(ctx context.Context, owner, company string) (bool, error) {
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.client.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			KeyConditionExpression: aws.String("#o = :owner"),
			FilterExpression:       aws.String("company = :company"),
			ExpressionAttributeNames: map[string]string{
				"#o": fieldOwner,
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":owner":   &types.AttributeValueMemberS{Value: owner},
				":company": &types.AttributeValueMemberS{Value: company},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return false, err
		}
		if len(out.Items) > 0 {
			return true, nil
		}
		if out.LastEvaluatedKey == nil {
			return false, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

// Delete removes an edge by composite key. Deleting a missing key succeeds.
func (r *FriendRepo) Delete(ctx context.Context, owner, friendID string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       compositeKey(fieldOwner, owner, fieldFriendID, friendID),
	})
	return err
}
