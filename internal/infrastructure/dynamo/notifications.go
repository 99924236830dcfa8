package dynamo

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/jhalaktiwarii/dealerspot-backend/internal/domain"
)

// NotificationRepo provides typed DynamoDB operations for the notifications table.
// Rows are keyed by (id, company_name); list operations are tenant-filtered scans.
type NotificationRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewNotificationRepo(client *dynamodb.Client, tableName string) *NotificationRepo {
	return &NotificationRepo{client: client, tableName: tableName}
}

func (r *NotificationRepo) Put(ctx context.Context, n *domain.Notification) error {
	item, err := attributevalue.MarshalMap(n)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

// ListAll returns every notification for a company, in store order.
func (r *NotificationRepo) ListAll(ctx context.Context, companyName string) ([]domain.Notification, error) {
	return r.scan(ctx, aws.String("#c = :company"), map[string]types.AttributeValue{
		":company": &types.AttributeValueMemberS{Value: companyName},
	})
}

// ListUnread returns the company's notifications with is_read=false.
func (r *NotificationRepo) ListUnread(ctx context.Context, companyName string) ([]domain.Notification, error) {
	return r.scan(ctx, aws.String("#c = :company AND is_read = :f"), map[string]types.AttributeValue{
		":company": &types.AttributeValueMemberS{Value: companyName},
		":f":       &types.AttributeValueMemberBOOL{Value: false},
	})
}

// ListUnseen returns the company's notifications with is_seen=false.
func (r *NotificationRepo) ListUnseen(ctx context.Context, companyName string) ([]domain.Notification, error) {
	return r.scan(ctx, aws.String("#c = :company AND is_seen = :f"), map[string]types.AttributeValue{
		":company": &types.AttributeValueMemberS{Value: companyName},
		":f":       &types.AttributeValueMemberBOOL{Value: false},
	})
}

// MarkRead sets is_read=true. Marking a missing row is a no-op success:
// the condition guards against DynamoDB's update-creates-item behavior.
func (r *NotificationRepo) MarkRead(ctx context.Context, id, companyName string) error {
	return r.setFlag(ctx, id, companyName, fieldIsRead)
}

// MarkSeen sets is_seen=true, independently of is_read. Same missing-row
// semantics as MarkRead.
func (r *NotificationRepo) MarkSeen(ctx context.Context, id, companyName string) error {
	return r.setFlag(ctx, id, companyName, fieldIsSeen)
}

func (r *NotificationRepo) setFlag(ctx context.Context, id, companyName, flag string) error {
	ue, err := buildUpdateExpr(map[string]interface{}{flag: true})
	if err != nil {
		return err
	}
	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       compositeKey(fieldID, id, fieldCompanyName, companyName),
		UpdateExpression:          aws.String(ue.Expr),
		ConditionExpression:       aws.String("attribute_exists(id)"),
		ExpressionAttributeNames:  ue.Names,
		ExpressionAttributeValues: ue.Values,
	})
	var ccf *types.ConditionalCheckFailedException
	if errors.As(err, &ccf) {
		return nil
	}
	return err
}

func (r *NotificationRepo) scan(ctx context.Context, filter *string, values map[string]types.AttributeValue) ([]domain.Notification, error) {
	var notifications []domain.Notification
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:                 aws.String(r.tableName),
			FilterExpression:          filter,
			ExpressionAttributeNames:  map[string]string{"#c": fieldCompanyName},
			ExpressionAttributeValues: values,
			ExclusiveStartKey:         startKey,
		})
		if err != nil {
			return nil, err
		}
		var page []domain.Notification
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		notifications = append(notifications, page...)
		if out.LastEvaluatedKey == nil {
			return notifications, nil
		}
		startKey = out.LastEvaluatedKey
	}
}
