package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"church_giving/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/require"
)

func mustMarshalCampaign(t *testing.T, c entities.Campaign) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(toCampaignItem(c))
	require.NoError(t, err)
	return av
}

func TestCampaignRepository_CreateAndGet(t *testing.T) {
	ddb := &fakeDynamo{}
	repo := NewCampaignDynamoRepository(ddb, "campaigns")
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	c := entities.Campaign{ID: "c1", Name: "Building Fund", GoalAmount: 100000, Status: entities.CampaignStatusActive, CreatedAt: now, UpdatedAt: now}
	_, err := repo.Create(context.Background(), c)
	require.NoError(t, err)
	require.Equal(t, "attribute_not_exists(#id)", aws.ToString(ddb.putIn.ConditionExpression))
	require.Equal(t, &types.AttributeValueMemberS{Value: "Building Fund"}, ddb.putIn.Item["name"])

	got, err := repo.GetByID(context.Background(), "c1")
	require.NoError(t, err)
	require.Empty(t, got.ID)

	ddb.getOut = &dynamodb.GetItemOutput{Item: mustMarshalCampaign(t, c)}
	got, err = repo.GetByID(context.Background(), "c1")
	require.NoError(t, err)
	require.Equal(t, "Building Fund", got.Name)
	require.True(t, got.CreatedAt.Equal(now))
}

func TestCampaignRepository_ListByStatus(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	ddb := &fakeDynamo{scanOuts: []*dynamodb.ScanOutput{
		{
			Items:            []map[string]types.AttributeValue{mustMarshalCampaign(t, entities.Campaign{ID: "a", CreatedAt: base})},
			LastEvaluatedKey: map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: "a"}},
		},
		{
			Items: []map[string]types.AttributeValue{mustMarshalCampaign(t, entities.Campaign{ID: "b", CreatedAt: base.Add(time.Hour)})},
		},
	}}
	repo := NewCampaignDynamoRepository(ddb, "campaigns")

	got, err := repo.ListByStatus(context.Background(), entities.CampaignStatusActive)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "b", got[0].ID)
	require.Equal(t, &types.AttributeValueMemberS{Value: "active"}, ddb.scanIns[0].ExpressionAttributeValues[":status"])
}

func TestCampaignRepository_UpdateStatusByID(t *testing.T) {
	ddb := &fakeDynamo{updateOut: &dynamodb.UpdateItemOutput{}}
	repo := NewCampaignDynamoRepository(ddb, "campaigns")
	ddb.updateOut.Attributes = mustMarshalCampaign(t, entities.Campaign{ID: "c1", Status: entities.CampaignStatusClosed})

	got, err := repo.UpdateStatusByID(context.Background(), "c1", entities.CampaignStatusClosed)
	require.NoError(t, err)
	require.Equal(t, entities.CampaignStatusClosed, got.Status)
	require.Equal(t, "attribute_exists(#id)", aws.ToString(ddb.updateIn.ConditionExpression))

	ddb.updateErr = &types.ConditionalCheckFailedException{}
	got, err = repo.UpdateStatusByID(context.Background(), "missing", entities.CampaignStatusClosed)
	require.NoError(t, err)
	require.Empty(t, got.ID)

	ddb.updateErr = errors.New("boom")
	_, err = repo.UpdateStatusByID(context.Background(), "c1", entities.CampaignStatusClosed)
	require.EqualError(t, err, "boom")
}
