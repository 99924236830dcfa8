package dynamo

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/jhalaktiwarii/dealerspot-backend/internal/domain"
)

// CarRepo provides typed DynamoDB operations for the cars table.
// Listings are keyed by (owner, created_at).
type CarRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewCarRepo(client *dynamodb.Client, tableName string) *CarRepo {
	return &CarRepo{client: client, tableName: tableName}
}

func (r *CarRepo) Put(ctx context.Context, c *domain.Car) error {
	item, err := attributevalue.MarshalMap(c)
	if err != nil {
		return fmt.Errorf("marshal car: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

// ListByOwner returns one dealer's full inventory, oldest first.
func (r *CarRepo) ListByOwner(ctx context.Context, owner string) ([]domain.Car, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("#o = :owner"),
		ExpressionAttributeNames: map[string]string{
			"#o": fieldOwner,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":owner": &types.AttributeValueMemberS{Value: owner},
		},
	})
	if err != nil {
		return nil, err
	}
	var cars []domain.Car
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &cars); err != nil {
		return nil, err
	}
	return cars, nil
}

// ScanByStatus returns every listing with the given status, across all
// dealers. The friends-listings join filters this set in memory.
func (r *CarRepo) ScanByStatus(ctx context.Context, status string) ([]domain.Car, error) {
	var cars []domain.Car
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String("#s = :status"),
			ExpressionAttributeNames: map[string]string{
				"#s": fieldStatus,
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":status": &types.AttributeValueMemberS{Value: status},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		var page []domain.Car
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		cars = append(cars, page...)
		if out.LastEvaluatedKey == nil {
			return cars, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

// ScanPage returns one page of listings across all dealers.
// cursor is a base64-encoded composite key used as ExclusiveStartKey.
// Returns the items, a next cursor (empty string when no more pages), and any error.
func (r *CarRepo) ScanPage(ctx context.Context, limit int32, cursor string) ([]domain.Car, string, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
		Limit:     aws.Int32(limit),
	}
	if cursor != "" {
		owner, createdAt, err := decodeCarCursor(cursor)
		if err != nil {
			return nil, "", fmt.Errorf("invalid cursor: %w", domain.ErrBadRequest)
		}
		input.ExclusiveStartKey = compositeKey(fieldOwner, owner, fieldCreatedAt, createdAt)
	}
	out, err := r.client.Scan(ctx, input)
	if err != nil {
		return nil, "", err
	}
	var cars []domain.Car
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &cars); err != nil {
		return nil, "", err
	}
	nextCursor := ""
	if out.LastEvaluatedKey != nil {
		owner, okO := out.LastEvaluatedKey[fieldOwner].(*types.AttributeValueMemberS)
		createdAt, okC := out.LastEvaluatedKey[fieldCreatedAt].(*types.AttributeValueMemberS)
		if okO && okC {
			nextCursor = encodeCarCursor(owner.Value, createdAt.Value)
		}
	}
	return cars, nextCursor, nil
}

// UpdateStatus flips a listing between available and sold and returns the
// updated row. A missing listing yields ErrNotFound.
func (r *CarRepo) UpdateStatus(ctx context.Context, owner string, createdAt time.Time, status string) (*domain.Car, error) {
	ue, err := buildUpdateExpr(map[string]interface{}{fieldStatus: status})
	if err != nil {
		return nil, err
	}
	out, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       compositeKey(fieldOwner, owner, fieldCreatedAt, createdAt.Format(time.RFC3339Nano)),
		UpdateExpression:          aws.String(ue.Expr),
		ConditionExpression:       aws.String("attribute_exists(#o)"),
		ExpressionAttributeNames:  mergeNames(ue.Names, map[string]string{"#o": fieldOwner}),
		ExpressionAttributeValues: ue.Values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	var ccf *types.ConditionalCheckFailedException
	if errors.As(err, &ccf) {
		return nil, fmt.Errorf("car listing: %w", domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	var c domain.Car
	if err := attributevalue.UnmarshalMap(out.Attributes, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func mergeNames(a, b map[string]string) map[string]string {
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

type carCursor struct {
	Owner     string `json:"o"`
	CreatedAt string `json:"c"`
}

func encodeCarCursor(owner, createdAt string) string {
	b, _ := json.Marshal(carCursor{Owner: owner, CreatedAt: createdAt})
	return base64.RawURLEncoding.EncodeToString(b)
}

func decodeCarCursor(cursor string) (owner, createdAt string, err error) {
	b, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return "", "", err
	}
	var c carCursor
	if err := json.Unmarshal(b, &c); err != nil {
		return "", "", err
	}
	return c.Owner, c.CreatedAt, nil
}
