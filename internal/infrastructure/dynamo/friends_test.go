package dynamo

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pagedQueryClient replays a fixed sequence of query pages, the way DynamoDB
// serves a partition larger than one response.
type pagedQueryClient struct {
	pages []*dynamodb.QueryOutput
	calls []*dynamodb.QueryInput
}

func (c *pagedQueryClient) Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	c.calls = append(c.calls, params)
	out := c.pages[0]
	c.pages = c.pages[1:]
	return out, nil
}

func (c *pagedQueryClient) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	return &dynamodb.PutItemOutput{}, nil
}

func (c *pagedQueryClient) DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	return &dynamodb.DeleteItemOutput{}, nil
}

func edgeItem(owner, friendID, company string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		fieldOwner:    &types.AttributeValueMemberS{Value: owner},
		fieldFriendID: &types.AttributeValueMemberS{Value: friendID},
		"company":     &types.AttributeValueMemberS{Value: company},
		"name":        &types.AttributeValueMemberS{Value: company},
	}
}

func TestExistsCompany_FindsMatchPastEmptyFilteredPage(t *testing.T) {
	// Page one is fully filtered out but carries a continuation key; the
	// match sits on page two.
	client := &pagedQueryClient{pages: []*dynamodb.QueryOutput{
		{
			Items:            nil,
			LastEvaluatedKey: compositeKey(fieldOwner, "AutoHub", fieldFriendID, "100"),
		},
		{
			Items: []map[string]types.AttributeValue{
				edgeItem("AutoHub", "200", "Prime Motors"),
			},
		},
	}}
	repo := &FriendRepo{client: client, tableName: "Friends"}

	exists, err := repo.ExistsCompany(context.Background(), "AutoHub", "Prime Motors")

	require.NoError(t, err)
	assert.True(t, exists)
	require.Len(t, client.calls, 2)
	assert.Nil(t, client.calls[0].ExclusiveStartKey)
	assert.NotNil(t, client.calls[1].ExclusiveStartKey)
}

func TestExistsCompany_ExhaustsAllPagesBeforeReportingAbsent(t *testing.T) {
	client := &pagedQueryClient{pages: []*dynamodb.QueryOutput{
		{LastEvaluatedKey: compositeKey(fieldOwner, "AutoHub", fieldFriendID, "100")},
		{},
	}}
	repo := &FriendRepo{client: client, tableName: "Friends"}

	exists, err := repo.ExistsCompany(context.Background(), "AutoHub", "Ghost Motors")

	require.NoError(t, err)
	assert.False(t, exists)
	assert.Len(t, client.calls, 2)
}

func TestListByOwner_FollowsContinuationKeys(t *testing.T) {
	client := &pagedQueryClient{pages: []*dynamodb.QueryOutput{
		{
			Items: []map[string]types.AttributeValue{
				edgeItem("AutoHub", "100", "Prime Motors"),
			},
			LastEvaluatedKey: compositeKey(fieldOwner, "AutoHub", fieldFriendID, "100"),
		},
		{
			Items: []map[string]types.AttributeValue{
				edgeItem("AutoHub", "200", "City Motors"),
			},
		},
	}}
	repo := &FriendRepo{client: client, tableName: "Friends"}

	friends, err := repo.ListByOwner(context.Background(), "AutoHub")

	require.NoError(t, err)
	require.Len(t, friends, 2)
	assert.Equal(t, "Prime Motors", friends[0].Company)
	assert.Equal(t, "City Motors", friends[1].Company)
}
