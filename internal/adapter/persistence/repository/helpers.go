package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
	log "github.com/sirupsen/logrus"
)

// timeLayout is fixed width so lexical order equals time order.
const timeLayout = "2006-01-02T15:04:05.000Z"

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(timeLayout, s); err == nil {
		return t
	}
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func numberKey(name string, v int64) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		name: &types.AttributeValueMemberN{Value: strconv.FormatInt(v, 10)},
	}
}

func stringKey(name, v string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		name: &types.AttributeValueMemberS{Value: v},
	}
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// conditionFailed reports whether err is a failed condition expression and returns the
// old item when the request asked for it.
func conditionFailed(err error) (map[string]types.AttributeValue, bool) {
	var cfe *types.ConditionalCheckFailedException
	if errors.As(err, &cfe) {
		return cfe.Item, true
	}
	return nil, false
}

// logStoreError logs the DynamoDB error code when err came from the service.
func logStoreError(scope string, err error) {
	entry := log.WithError(err)
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		entry = entry.WithFields(log.Fields{"code": apiErr.ErrorCode(), "fault": apiErr.ErrorFault().String()})
	}
	entry.Warnf("[%s][dynamodb] request failed", scope)
}

// scanAll walks every page of a scan and unmarshals each item into T.
func scanAll[T any](ctx context.Context, ddb DynamoAPI, input *dynamodb.ScanInput) ([]T, error) {
	out := make([]T, 0)
	p := dynamodb.NewScanPaginator(ddb, input)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []T
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		out = append(out, items...)
	}
	return out, nil
}

// countAll counts the items of a table with COUNT scans.
func countAll(ctx context.Context, ddb DynamoAPI, table string) (int64, error) {
	var total int64
	p := dynamodb.NewScanPaginator(ddb, &dynamodb.ScanInput{
		TableName: aws.String(table),
		Select:    types.SelectCount,
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return 0, err
		}
		total += int64(page.Count)
	}
	return total, nil
}
