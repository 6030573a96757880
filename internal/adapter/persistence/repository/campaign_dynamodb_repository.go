package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"church_giving/internal/domain/entities"
	"church_giving/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type campaignItem struct {
	ID          string  `dynamodbav:"id"`
	Name        string  `dynamodbav:"name"`
	Description string  `dynamodbav:"description"`
	GoalAmount  float64 `dynamodbav:"goal_amount"`
	Status      string  `dynamodbav:"status"`
	CreatedAt   string  `dynamodbav:"created_at"`
	UpdatedAt   string  `dynamodbav:"updated_at"`
}

// CampaignDynamoRepository persists Campaign entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type CampaignDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.ICampaignRepository = (*CampaignDynamoRepository)(nil)

func NewCampaignDynamoRepository(ddb DynamoDBAPI, tableName string) *CampaignDynamoRepository {
	return &CampaignDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *CampaignDynamoRepository) Create(ctx context.Context, c entities.Campaign) (entities.Campaign, error) {
	av, err := attributevalue.MarshalMap(toCampaignItem(c))
	if err != nil {
		return entities.Campaign{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Campaign{}, err
	}
	return c, nil
}

func (r *CampaignDynamoRepository) GetByID(ctx context.Context, id string) (entities.Campaign, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Campaign{}, err
	}
	if len(out.Item) == 0 {
		return entities.Campaign{}, nil
	}

	var it campaignItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Campaign{}, err
	}
	return fromCampaignItem(it), nil
}

func (r *CampaignDynamoRepository) ListByStatus(ctx context.Context, status entities.CampaignStatus) ([]entities.Campaign, error) {
	input := &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
	}

	var campaigns []entities.Campaign
	for {
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it campaignItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			campaigns = append(campaigns, fromCampaignItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}

	sort.Slice(campaigns, func(i, j int) bool {
		return campaigns[i].CreatedAt.After(campaigns[j].CreatedAt)
	})
	return campaigns, nil
}

func (r *CampaignDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.CampaignStatus) (entities.Campaign, error) {
	now := formatTime(time.Now())

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Campaign{}, nil
		}
		return entities.Campaign{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Campaign{}, nil
	}
	var it campaignItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Campaign{}, err
	}
	return fromCampaignItem(it), nil
}

func toCampaignItem(c entities.Campaign) campaignItem {
	return campaignItem{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		GoalAmount:  c.GoalAmount,
		Status:      string(c.Status),
		CreatedAt:   formatTime(c.CreatedAt),
		UpdatedAt:   formatTime(c.UpdatedAt),
	}
}

func fromCampaignItem(it campaignItem) entities.Campaign {
	return entities.Campaign{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		GoalAmount:  it.GoalAmount,
		Status:      entities.CampaignStatus(it.Status),
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}
