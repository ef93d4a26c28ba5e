package repository

import (
	"context"
	"fmt"
	"strconv"

	"crpms_ledger/internal/domain/entities"
	"crpms_ledger/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoSequencer hands out per-kind counters stored in one DynamoDB table.
//
// Table requirements:
//   - PK: kind (string)
//   - attribute value (number), absent until first use
type DynamoSequencer struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ISequencer = (*DynamoSequencer)(nil)

func NewDynamoSequencer(ddb DynamoAPI, tableName string) *DynamoSequencer {
	return &DynamoSequencer{ddb: ddb, tableName: tableName}
}

// Next increments the counter in place and returns the new value. The first call returns 1.
func (s *DynamoSequencer) Next(ctx context.Context, kind entities.SequenceKind) (int64, error) {
	out, err := s.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(s.tableName),
		Key:              stringKey("kind", string(kind)),
		UpdateExpression: aws.String("ADD #value :one"),
		ExpressionAttributeNames: map[string]string{
			"#value": "value",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		logStoreError("sequence", err)
		return 0, fmt.Errorf("next %s: %w", kind, err)
	}
	return readCounter(out.Attributes)
}

// Current reads the last value handed out for kind, 0 when none.
func (s *DynamoSequencer) Current(ctx context.Context, kind entities.SequenceKind) (int64, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:            aws.String(s.tableName),
		Key:                  stringKey("kind", string(kind)),
		ConsistentRead:       aws.Bool(true),
		ProjectionExpression: aws.String("#value"),
		ExpressionAttributeNames: map[string]string{
			"#value": "value",
		},
	})
	if err != nil {
		return 0, fmt.Errorf("read %s counter: %w", kind, err)
	}
	if len(out.Item) == 0 {
		return 0, nil
	}
	return readCounter(out.Item)
}

// advanceItem moves kind from current to current+1 inside a transaction. It fails its
// condition when another writer advanced the counter first.
func (s *DynamoSequencer) advanceItem(kind entities.SequenceKind, current int64) types.TransactWriteItem {
	update := &types.Update{
		TableName:        aws.String(s.tableName),
		Key:              stringKey("kind", string(kind)),
		UpdateExpression: aws.String("SET #value = :next"),
		ExpressionAttributeNames: map[string]string{
			"#value": "value",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":next": &types.AttributeValueMemberN{Value: strconv.FormatInt(current+1, 10)},
		},
	}
	if current == 0 {
		update.ConditionExpression = aws.String("attribute_not_exists(#value)")
	} else {
		update.ConditionExpression = aws.String("#value = :current")
		update.ExpressionAttributeValues[":current"] = &types.AttributeValueMemberN{Value: strconv.FormatInt(current, 10)}
	}
	return types.TransactWriteItem{Update: update}
}

func readCounter(attrs map[string]types.AttributeValue) (int64, error) {
	raw, ok := attrs["value"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("sequence counter missing from response")
	}
	v, err := strconv.ParseInt(raw.Value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse sequence counter %q: %w", raw.Value, err)
	}
	return v, nil
}
