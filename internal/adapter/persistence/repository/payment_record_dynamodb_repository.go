package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	"church_giving/internal/domain/entities"
	"church_giving/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	paymentsCheckoutRequestIDIndex = "checkout_request_id-index"
)

type paymentRecordItem struct {
	TransactionID     string  `dynamodbav:"transaction_id"`
	CheckoutRequestID string  `dynamodbav:"checkout_request_id,omitempty"`
	MerchantRequestID string  `dynamodbav:"merchant_request_id,omitempty"`
	Amount            float64 `dynamodbav:"amount"`
	PhoneNumber       string  `dynamodbav:"phone_number"`
	PaidPhoneNumber   string  `dynamodbav:"paid_phone_number,omitempty"`
	Category          string  `dynamodbav:"category"`
	CampaignName      string  `dynamodbav:"campaign_name,omitempty"`
	FullName          string  `dynamodbav:"full_name,omitempty"`
	Email             string  `dynamodbav:"email,omitempty"`
	Status            string  `dynamodbav:"status"`
	ReceiptNumber     string  `dynamodbav:"mpesa_receipt_number,omitempty"`
	ResultCode        *int    `dynamodbav:"result_code,omitempty"`
	ResultDesc        string  `dynamodbav:"result_desc,omitempty"`
	CreatedAt         string  `dynamodbav:"created_at"`
	UpdatedAt         string  `dynamodbav:"updated_at"`
}

// PaymentRecordDynamoRepository persists PaymentRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: transaction_id (string)
//   - GSI: checkout_request_id-index (PK: checkout_request_id, projection ALL)
//
// The GSI is sparse: records whose push was never accepted have no
// checkout_request_id and never appear in it.
type PaymentRecordDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IPaymentRecordRepository = (*PaymentRecordDynamoRepository)(nil)

func NewPaymentRecordDynamoRepository(ddb DynamoDBAPI, tableName string) *PaymentRecordDynamoRepository {
	return &PaymentRecordDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PaymentRecordDynamoRepository) Create(ctx context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error) {
	av, err := attributevalue.MarshalMap(toPaymentRecordItem(p))
	if err != nil {
		return entities.PaymentRecord{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "transaction_id",
		},
	})
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	return p, nil
}

func (r *PaymentRecordDynamoRepository) GetByTransactionID(ctx context.Context, transactionID string) (entities.PaymentRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"transaction_id": &types.AttributeValueMemberS{Value: transactionID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentRecord{}, nil
	}

	var it paymentRecordItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentRecord{}, err
	}
	return fromPaymentRecordItem(it), nil
}

func (r *PaymentRecordDynamoRepository) GetByCheckoutRequestID(ctx context.Context, checkoutRequestID string) (entities.PaymentRecord, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsCheckoutRequestIDIndex),
		KeyConditionExpression: aws.String("checkout_request_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: checkoutRequestID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if len(out.Items) == 0 {
		return entities.PaymentRecord{}, nil
	}

	var it paymentRecordItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.PaymentRecord{}, err
	}
	return fromPaymentRecordItem(it), nil
}

func (r *PaymentRecordDynamoRepository) SetCheckoutRequestID(ctx context.Context, transactionID, checkoutRequestID, merchantRequestID string) (entities.PaymentRecord, error) {
	return r.update(ctx, transactionID, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #checkout = :checkout, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":checkout":   &types.AttributeValueMemberS{Value: checkoutRequestID},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#checkout":   "checkout_request_id",
			"#updated_at": "updated_at",
		}
		if merchantRequestID != "" {
			expr += ", #merchant = :merchant"
			vals[":merchant"] = &types.AttributeValueMemberS{Value: merchantRequestID}
			names["#merchant"] = "merchant_request_id"
		}
		return expr, vals, names
	})
}

// ApplyOutcome writes the callback result. It does not look at the current
// status, so a repeated callback overwrites the previous one. A failed
// outcome drops any receipt and paid phone left by an earlier success.
func (r *PaymentRecordDynamoRepository) ApplyOutcome(ctx context.Context, transactionID string, outcome entities.PaymentOutcome) (entities.PaymentRecord, error) {
	return r.update(ctx, transactionID, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #result_code = :result_code, #result_desc = :result_desc, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":      &types.AttributeValueMemberS{Value: string(outcome.Status)},
			":result_code": &types.AttributeValueMemberN{Value: strconv.Itoa(outcome.ResultCode)},
			":result_desc": &types.AttributeValueMemberS{Value: outcome.ResultDesc},
			":updated_at":  &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":      "status",
			"#result_code": "result_code",
			"#result_desc": "result_desc",
			"#updated_at":  "updated_at",
		}
		if outcome.Status == entities.PaymentStatusFailed {
			expr += " REMOVE #receipt, #paid_phone"
			names["#receipt"] = "mpesa_receipt_number"
			names["#paid_phone"] = "paid_phone_number"
			return expr, vals, names
		}
		if outcome.ReceiptNumber != "" {
			expr += ", #receipt = :receipt"
			vals[":receipt"] = &types.AttributeValueMemberS{Value: outcome.ReceiptNumber}
			names["#receipt"] = "mpesa_receipt_number"
		}
		if outcome.PaidPhoneNumber != "" {
			expr += ", #paid_phone = :paid_phone"
			vals[":paid_phone"] = &types.AttributeValueMemberS{Value: outcome.PaidPhoneNumber}
			names["#paid_phone"] = "paid_phone_number"
		}
		return expr, vals, names
	})
}

// List scans the table. Giving volume is small enough that a filtered scan
// sorted in memory is acceptable for the admin screens.
func (r *PaymentRecordDynamoRepository) List(ctx context.Context, filter interfaces.PaymentRecordFilter) ([]entities.PaymentRecord, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}
	if filter.Status != "" {
		input.FilterExpression = aws.String("#status = :status")
		input.ExpressionAttributeNames = map[string]string{"#status": "status"}
		input.ExpressionAttributeValues = map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(filter.Status)},
		}
	}

	var items []entities.PaymentRecord
	for {
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it paymentRecordItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			p := fromPaymentRecordItem(it)
			if !filter.CreatedBefore.IsZero() && !p.CreatedAt.Before(filter.CreatedBefore) {
				continue
			}
			items = append(items, p)
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	if filter.Limit > 0 && len(items) > filter.Limit {
		items = items[:filter.Limit]
	}
	return items, nil
}

func (r *PaymentRecordDynamoRepository) update(
	ctx context.Context,
	transactionID string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.PaymentRecord, error) {
	updateExpr, values, names := build(formatTime(time.Now()))

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"transaction_id": &types.AttributeValueMemberS{Value: transactionID},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "transaction_id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.PaymentRecord{}, nil
		}
		return entities.PaymentRecord{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.PaymentRecord{}, nil
	}
	var it paymentRecordItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PaymentRecord{}, err
	}
	return fromPaymentRecordItem(it), nil
}

func toPaymentRecordItem(p entities.PaymentRecord) paymentRecordItem {
	return paymentRecordItem{
		TransactionID:     p.TransactionID,
		CheckoutRequestID: p.CheckoutRequestID,
		MerchantRequestID: p.MerchantRequestID,
		Amount:            p.Amount,
		PhoneNumber:       p.PhoneNumber,
		PaidPhoneNumber:   p.PaidPhoneNumber,
		Category:          string(p.Category),
		CampaignName:      p.CampaignName,
		FullName:          p.FullName,
		Email:             p.Email,
		Status:            string(p.Status),
		ReceiptNumber:     p.ReceiptNumber,
		ResultCode:        p.ResultCode,
		ResultDesc:        p.ResultDesc,
		CreatedAt:         formatTime(p.CreatedAt),
		UpdatedAt:         formatTime(p.UpdatedAt),
	}
}

func fromPaymentRecordItem(it paymentRecordItem) entities.PaymentRecord {
	return entities.PaymentRecord{
		TransactionID:     it.TransactionID,
		CheckoutRequestID: it.CheckoutRequestID,
		MerchantRequestID: it.MerchantRequestID,
		Amount:            it.Amount,
		PhoneNumber:       it.PhoneNumber,
		PaidPhoneNumber:   it.PaidPhoneNumber,
		Category:          entities.PaymentCategory(it.Category),
		CampaignName:      it.CampaignName,
		FullName:          it.FullName,
		Email:             it.Email,
		Status:            entities.PaymentStatus(it.Status),
		ReceiptNumber:     it.ReceiptNumber,
		ResultCode:        it.ResultCode,
		ResultDesc:        it.ResultDesc,
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
}
