package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"crpms_ledger/internal/domain/entities"
	"crpms_ledger/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	log "github.com/sirupsen/logrus"
)

const (
	paymentsRecordNumberIndex = "record_number-index"

	settleMaxAttempts = 5
	settleBackoff     = 15 * time.Millisecond
)

// Positions of the settlement transaction items.
const (
	settleItemCounter = iota
	settleItemPayment
	settleItemRecord
)

type paymentItem struct {
	PaymentNumber  int64   `dynamodbav:"payment_number"`
	RecordNumber   int64   `dynamodbav:"record_number"`
	AmountPaid     float64 `dynamodbav:"amount_paid"`
	PaymentDate    string  `dynamodbav:"payment_date"`
	ReceivedBy     string  `dynamodbav:"received_by,omitempty"`
	ReceivedByName string  `dynamodbav:"received_by_name,omitempty"`
	CreatedAt      string  `dynamodbav:"created_at"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - PK: payment_number (number)
//   - GSI: record_number-index (PK: record_number)
type PaymentDynamoRepository struct {
	ddb          DynamoAPI
	tableName    string
	recordsTable string
	sequencer    *DynamoSequencer
	backoff      time.Duration
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb DynamoAPI, tables Tables) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:          ddb,
		tableName:    tables.Payments,
		recordsTable: tables.ServiceRecords,
		sequencer:    NewDynamoSequencer(ddb, tables.Sequences),
		backoff:      settleBackoff,
	}
}

type settleOutcome int

const (
	settleRetry settleOutcome = iota
	settleRecordMissing
	settleRecordNotPending
)

// Settle writes the counter advance, the payment and the Paid flip as one transaction.
//
// The payment number is current+1 of the payment counter, and the counter advance is guarded
// on current, so two settlements can never share a number. A caller that loses the Pending
// guard leaves the counter untouched.
func (r *PaymentDynamoRepository) Settle(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	logger := log.WithField("record_number", p.RecordNumber)

	for attempt := 1; attempt <= settleMaxAttempts; attempt++ {
		current, err := r.sequencer.Current(ctx, entities.SequencePayment)
		if err != nil {
			return entities.Payment{}, err
		}
		p.PaymentNumber = current + 1

		input, err := r.settleInput(p, current)
		if err != nil {
			return entities.Payment{}, err
		}
		_, err = r.ddb.TransactWriteItems(ctx, input)
		if err == nil {
			return p, nil
		}

		var tce *types.TransactionCanceledException
		if !errors.As(err, &tce) {
			logStoreError("payment", err)
			return entities.Payment{}, err
		}
		switch classifyCancellation(tce.CancellationReasons) {
		case settleRecordMissing:
			return entities.Payment{}, interfaces.ErrSettlementRecordMissing
		case settleRecordNotPending:
			return entities.Payment{}, interfaces.ErrSettlementRecordNotPending
		}

		logger.WithFields(log.Fields{"attempt": attempt, "payment_number": p.PaymentNumber}).Debug("[payment][dynamodb] settlement lost counter race, retrying")
		if err := sleepCtx(ctx, r.backoff*time.Duration(attempt)); err != nil {
			return entities.Payment{}, err
		}
	}
	return entities.Payment{}, interfaces.ErrSequenceContention
}

func (r *PaymentDynamoRepository) settleInput(p entities.Payment, current int64) (*dynamodb.TransactWriteItemsInput, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return nil, err
	}

	items := make([]types.TransactWriteItem, 3)
	items[settleItemCounter] = r.sequencer.advanceItem(entities.SequencePayment, current)
	items[settleItemPayment] = types.TransactWriteItem{Put: &types.Put{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#payment_number)"),
		ExpressionAttributeNames: map[string]string{
			"#payment_number": "payment_number",
		},
	}}
	items[settleItemRecord] = types.TransactWriteItem{Update: &types.Update{
		TableName:           aws.String(r.recordsTable),
		Key:                 numberKey("record_number", p.RecordNumber),
		ConditionExpression: aws.String(pendingCondition),
		UpdateExpression:    aws.String("SET #payment_status = :paid, #payment_number = :payment_number, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#record_number":  "record_number",
			"#payment_status": "payment_status",
			"#payment_number": "payment_number",
			"#updated_at":     "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending":        &types.AttributeValueMemberS{Value: string(entities.PaymentStatusPending)},
			":paid":           &types.AttributeValueMemberS{Value: string(entities.PaymentStatusPaid)},
			":payment_number": &types.AttributeValueMemberN{Value: strconv.FormatInt(p.PaymentNumber, 10)},
			":updated_at":     &types.AttributeValueMemberS{Value: formatTime(p.CreatedAt)},
		},
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	}}
	return &dynamodb.TransactWriteItemsInput{TransactItems: items}, nil
}

// classifyCancellation decides the outcome of a cancelled settlement. A failed record guard
// wins over a lost counter race, because retrying could never succeed.
func classifyCancellation(reasons []types.CancellationReason) settleOutcome {
	if len(reasons) > settleItemRecord {
		rec := reasons[settleItemRecord]
		if aws.ToString(rec.Code) == "ConditionalCheckFailed" {
			if len(rec.Item) == 0 {
				return settleRecordMissing
			}
			return settleRecordNotPending
		}
	}
	return settleRetry
}

func (r *PaymentDynamoRepository) GetByRecordNumber(ctx context.Context, recordNumber int64) (entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsRecordNumberIndex),
		KeyConditionExpression: aws.String("record_number = :rn"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rn": &types.AttributeValueMemberN{Value: strconv.FormatInt(recordNumber, 10)},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Items) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) List(ctx context.Context) ([]entities.Payment, error) {
	return r.scan(ctx, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
}

// ListByDateRange returns payments dated within [from, to]. Dates are stored in a fixed-width
// layout, so BETWEEN on the strings is a time range.
func (r *PaymentDynamoRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]entities.Payment, error) {
	return r.scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#payment_date BETWEEN :from AND :to"),
		ExpressionAttributeNames: map[string]string{
			"#payment_date": "payment_date",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from": &types.AttributeValueMemberS{Value: formatTime(from)},
			":to":   &types.AttributeValueMemberS{Value: formatTime(to)},
		},
	})
}

func (r *PaymentDynamoRepository) scan(ctx context.Context, input *dynamodb.ScanInput) ([]entities.Payment, error) {
	items, err := scanAll[paymentItem](ctx, r.ddb, input)
	if err != nil {
		return nil, err
	}
	payments := make([]entities.Payment, 0, len(items))
	for _, it := range items {
		payments = append(payments, fromPaymentItem(it))
	}
	return payments, nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		PaymentNumber:  p.PaymentNumber,
		RecordNumber:   p.RecordNumber,
		AmountPaid:     p.AmountPaid,
		PaymentDate:    formatTime(p.PaymentDate),
		ReceivedBy:     p.ReceivedBy,
		ReceivedByName: p.ReceivedByName,
		CreatedAt:      formatTime(p.CreatedAt),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	return entities.Payment{
		PaymentNumber:  it.PaymentNumber,
		RecordNumber:   it.RecordNumber,
		AmountPaid:     it.AmountPaid,
		PaymentDate:    parseTime(it.PaymentDate),
		ReceivedBy:     it.ReceivedBy,
		ReceivedByName: it.ReceivedByName,
		CreatedAt:      parseTime(it.CreatedAt),
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return fmt.Errorf("settlement retry: %w", ctx.Err())
	case <-t.C:
		return nil
	}
}
