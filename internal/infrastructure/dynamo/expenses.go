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

// ExpenseRepo provides typed DynamoDB operations for the monthly-expenses table.
type ExpenseRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewExpenseRepo(client *dynamodb.Client, tableName string) *ExpenseRepo {
	return &ExpenseRepo{client: client, tableName: tableName}
}

func (r *ExpenseRepo) Put(ctx context.Context, e *domain.MonthlyExpense) error {
	item, err := attributevalue.MarshalMap(e)
	if err != nil {
		return fmt.Errorf("marshal monthly expense: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

// ListByCompany returns every expense row logged by one dealership.
func (r *ExpenseRepo) ListByCompany(ctx context.Context, companyName string) ([]domain.MonthlyExpense, error) {
	var expenses []domain.MonthlyExpense
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String("#c = :company"),
			ExpressionAttributeNames: map[string]string{
				"#c": fieldCompanyName,
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":company": &types.AttributeValueMemberS{Value: companyName},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		var page []domain.MonthlyExpense
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		expenses = append(expenses, page...)
		if out.LastEvaluatedKey == nil {
			return expenses, nil
		}
		startKey = out.LastEvaluatedKey
	}
}
