package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"crpms_ledger/internal/adapter/persistence/repository/mocks"
	"crpms_ledger/internal/domain/entities"
	"crpms_ledger/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/mock/gomock"
)

func newTestPaymentRepo(t *testing.T) (*PaymentDynamoRepository, *mocks.MockDynamoAPI) {
	ctrl := gomock.NewController(t)
	ddb := mocks.NewMockDynamoAPI(ctrl)
	repo := NewPaymentDynamoRepository(ddb, DefaultTables())
	repo.backoff = 0
	return repo, ddb
}

func counterItem(v string) *dynamodb.GetItemOutput {
	return &dynamodb.GetItemOutput{Item: map[string]types.AttributeValue{
		"value": &types.AttributeValueMemberN{Value: v},
	}}
}

func cancelled(reasons ...string) error {
	out := &types.TransactionCanceledException{Message: aws.String("Transaction cancelled")}
	for _, code := range reasons {
		out.CancellationReasons = append(out.CancellationReasons, types.CancellationReason{Code: aws.String(code)})
	}
	return out
}

var pendingPayment = entities.Payment{
	RecordNumber: 12,
	AmountPaid:   60000,
	PaymentDate:  time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC),
	ReceivedBy:   "u-1",
	CreatedAt:    time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC),
}

func TestPaymentDynamoRepository_Settle(t *testing.T) {
	t.Run("first payment creates counter", func(t *testing.T) {
		repo, ddb := newTestPaymentRepo(t)
		ddb.EXPECT().GetItem(gomock.Any(), gomock.Any()).Return(&dynamodb.GetItemOutput{}, nil)
		ddb.EXPECT().TransactWriteItems(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
				if len(in.TransactItems) != 3 {
					t.Fatalf("expected 3 items, got %d", len(in.TransactItems))
				}
				counter := in.TransactItems[settleItemCounter].Update
				if aws.ToString(counter.ConditionExpression) != "attribute_not_exists(#value)" {
					t.Fatalf("unexpected counter guard %q", aws.ToString(counter.ConditionExpression))
				}
				if aws.ToString(counter.TableName) != "sequences" {
					t.Fatalf("unexpected counter table %q", aws.ToString(counter.TableName))
				}
				put := in.TransactItems[settleItemPayment].Put
				if n := put.Item["payment_number"].(*types.AttributeValueMemberN).Value; n != "1" {
					t.Fatalf("expected payment number 1, got %s", n)
				}
				if d := put.Item["payment_date"].(*types.AttributeValueMemberS).Value; d != "2025-03-10T09:30:00.000Z" {
					t.Fatalf("unexpected stored date %s", d)
				}
				rec := in.TransactItems[settleItemRecord].Update
				if aws.ToString(rec.ConditionExpression) != pendingCondition {
					t.Fatalf("unexpected record guard %q", aws.ToString(rec.ConditionExpression))
				}
				if rec.ReturnValuesOnConditionCheckFailure != types.ReturnValuesOnConditionCheckFailureAllOld {
					t.Fatalf("expected ALL_OLD on condition failure")
				}
				return &dynamodb.TransactWriteItemsOutput{}, nil
			})

		got, err := repo.Settle(context.Background(), pendingPayment)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.PaymentNumber != 1 {
			t.Fatalf("expected payment number 1, got %d", got.PaymentNumber)
		}
	})

	t.Run("guards counter on current value", func(t *testing.T) {
		repo, ddb := newTestPaymentRepo(t)
		ddb.EXPECT().GetItem(gomock.Any(), gomock.Any()).Return(counterItem("41"), nil)
		ddb.EXPECT().TransactWriteItems(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
				counter := in.TransactItems[settleItemCounter].Update
				if aws.ToString(counter.ConditionExpression) != "#value = :current" {
					t.Fatalf("unexpected counter guard %q", aws.ToString(counter.ConditionExpression))
				}
				if v := counter.ExpressionAttributeValues[":next"].(*types.AttributeValueMemberN).Value; v != "42" {
					t.Fatalf("expected next 42, got %s", v)
				}
				return &dynamodb.TransactWriteItemsOutput{}, nil
			})

		got, err := repo.Settle(context.Background(), pendingPayment)
		if err != nil || got.PaymentNumber != 42 {
			t.Fatalf("expected payment 42, got %d (%v)", got.PaymentNumber, err)
		}
	})

	t.Run("record already paid", func(t *testing.T) {
		repo, ddb := newTestPaymentRepo(t)
		ddb.EXPECT().GetItem(gomock.Any(), gomock.Any()).Return(counterItem("3"), nil)
		ex := &types.TransactionCanceledException{CancellationReasons: []types.CancellationReason{
			{Code: aws.String("None")},
			{Code: aws.String("None")},
			{Code: aws.String("ConditionalCheckFailed"), Item: map[string]types.AttributeValue{
				"record_number":  &types.AttributeValueMemberN{Value: "12"},
				"payment_status": &types.AttributeValueMemberS{Value: "Paid"},
			}},
		}}
		ddb.EXPECT().TransactWriteItems(gomock.Any(), gomock.Any()).Return(nil, ex)

		if _, err := repo.Settle(context.Background(), pendingPayment); !errors.Is(err, interfaces.ErrSettlementRecordNotPending) {
			t.Fatalf("expected ErrSettlementRecordNotPending, got %v", err)
		}
	})

	t.Run("record guard wins over counter race", func(t *testing.T) {
		repo, ddb := newTestPaymentRepo(t)
		ddb.EXPECT().GetItem(gomock.Any(), gomock.Any()).Return(counterItem("3"), nil)
		ddb.EXPECT().TransactWriteItems(gomock.Any(), gomock.Any()).Return(nil, cancelled("ConditionalCheckFailed", "None", "ConditionalCheckFailed"))

		if _, err := repo.Settle(context.Background(), pendingPayment); !errors.Is(err, interfaces.ErrSettlementRecordMissing) {
			t.Fatalf("expected ErrSettlementRecordMissing, got %v", err)
		}
	})

	t.Run("retries a lost counter race", func(t *testing.T) {
		repo, ddb := newTestPaymentRepo(t)
		gomock.InOrder(
			ddb.EXPECT().GetItem(gomock.Any(), gomock.Any()).Return(counterItem("3"), nil),
			ddb.EXPECT().TransactWriteItems(gomock.Any(), gomock.Any()).Return(nil, cancelled("ConditionalCheckFailed", "None", "None")),
			ddb.EXPECT().GetItem(gomock.Any(), gomock.Any()).Return(counterItem("4"), nil),
			ddb.EXPECT().TransactWriteItems(gomock.Any(), gomock.Any()).Return(nil, cancelled("None", "None", "TransactionConflict")),
			ddb.EXPECT().GetItem(gomock.Any(), gomock.Any()).Return(counterItem("4"), nil),
			ddb.EXPECT().TransactWriteItems(gomock.Any(), gomock.Any()).Return(&dynamodb.TransactWriteItemsOutput{}, nil),
		)

		got, err := repo.Settle(context.Background(), pendingPayment)
		if err != nil || got.PaymentNumber != 5 {
			t.Fatalf("expected payment 5, got %d (%v)", got.PaymentNumber, err)
		}
	})

	t.Run("contention exhausts retries", func(t *testing.T) {
		repo, ddb := newTestPaymentRepo(t)
		ddb.EXPECT().GetItem(gomock.Any(), gomock.Any()).Return(counterItem("3"), nil).Times(settleMaxAttempts)
		ddb.EXPECT().TransactWriteItems(gomock.Any(), gomock.Any()).Return(nil, cancelled("ConditionalCheckFailed", "None", "None")).Times(settleMaxAttempts)

		if _, err := repo.Settle(context.Background(), pendingPayment); !errors.Is(err, interfaces.ErrSequenceContention) {
			t.Fatalf("expected ErrSequenceContention, got %v", err)
		}
	})

	t.Run("store error is not retried", func(t *testing.T) {
		repo, ddb := newTestPaymentRepo(t)
		ddb.EXPECT().GetItem(gomock.Any(), gomock.Any()).Return(counterItem("3"), nil)
		ddb.EXPECT().TransactWriteItems(gomock.Any(), gomock.Any()).Return(nil, context.DeadlineExceeded)

		if _, err := repo.Settle(context.Background(), pendingPayment); !errors.Is(err, context.DeadlineExceeded) {
			t.Fatalf("expected deadline error, got %v", err)
		}
	})
}

func TestPaymentDynamoRepository_Reads(t *testing.T) {
	t.Run("by record uses index", func(t *testing.T) {
		repo, ddb := newTestPaymentRepo(t)
		ddb.EXPECT().Query(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
				if aws.ToString(in.IndexName) != paymentsRecordNumberIndex {
					t.Fatalf("expected index %s, got %s", paymentsRecordNumberIndex, aws.ToString(in.IndexName))
				}
				return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{{
					"payment_number": &types.AttributeValueMemberN{Value: "7"},
					"record_number":  &types.AttributeValueMemberN{Value: "12"},
					"amount_paid":    &types.AttributeValueMemberN{Value: "60000"},
					"payment_date":   &types.AttributeValueMemberS{Value: "2025-03-10T09:30:00.000Z"},
				}}}, nil
			})

		p, err := repo.GetByRecordNumber(context.Background(), 12)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.PaymentNumber != 7 || p.AmountPaid != 60000 || !p.PaymentDate.Equal(pendingPayment.PaymentDate) {
			t.Fatalf("unexpected payment: %+v", p)
		}
	})

	t.Run("by record miss", func(t *testing.T) {
		repo, ddb := newTestPaymentRepo(t)
		ddb.EXPECT().Query(gomock.Any(), gomock.Any()).Return(&dynamodb.QueryOutput{}, nil)

		p, err := repo.GetByRecordNumber(context.Background(), 12)
		if err != nil || p.PaymentNumber != 0 {
			t.Fatalf("expected zero payment, got %+v (%v)", p, err)
		}
	})

	t.Run("date range filter is inclusive", func(t *testing.T) {
		repo, ddb := newTestPaymentRepo(t)
		from := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
		to := from.AddDate(0, 0, 1).Add(-time.Millisecond)
		ddb.EXPECT().Scan(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
				if aws.ToString(in.FilterExpression) != "#payment_date BETWEEN :from AND :to" {
					t.Fatalf("unexpected filter %q", aws.ToString(in.FilterExpression))
				}
				if v := in.ExpressionAttributeValues[":to"].(*types.AttributeValueMemberS).Value; v != "2025-03-10T23:59:59.999Z" {
					t.Fatalf("unexpected upper bound %s", v)
				}
				return &dynamodb.ScanOutput{}, nil
			})

		got, err := repo.ListByDateRange(context.Background(), from, to)
		if err != nil || len(got) != 0 {
			t.Fatalf("expected empty result, got %+v (%v)", got, err)
		}
	})
}
