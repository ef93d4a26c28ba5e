package repository

import (
	"context"
	"strings"
	"time"

	"crpms_ledger/internal/domain/entities"
	"crpms_ledger/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// pendingCondition holds while a record is unsettled. Rows written before the status
// attribute existed count as pending.
const pendingCondition = "attribute_exists(#record_number) AND (attribute_not_exists(#payment_status) OR #payment_status = :pending)"

type serviceRecordItem struct {
	RecordNumber  int64  `dynamodbav:"record_number"`
	PlateNumber   string `dynamodbav:"plate_number"`
	ServiceCode   string `dynamodbav:"service_code"`
	ServiceDate   string `dynamodbav:"service_date"`
	PaymentStatus string `dynamodbav:"payment_status"`
	PaymentNumber int64  `dynamodbav:"payment_number,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// ServiceRecordDynamoRepository persists ServiceRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: record_number (number)
//
// payment_status only moves to Paid through the settlement transaction in
// PaymentDynamoRepository.Settle.
type ServiceRecordDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IServiceRecordRepository = (*ServiceRecordDynamoRepository)(nil)

func NewServiceRecordDynamoRepository(ddb DynamoAPI, tableName string) *ServiceRecordDynamoRepository {
	return &ServiceRecordDynamoRepository{ddb: ddb, tableName: tableName, now: time.Now}
}

func (r *ServiceRecordDynamoRepository) Create(ctx context.Context, rec entities.ServiceRecord) (entities.ServiceRecord, error) {
	av, err := attributevalue.MarshalMap(toServiceRecordItem(rec))
	if err != nil {
		return entities.ServiceRecord{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#record_number)"),
		ExpressionAttributeNames: map[string]string{
			"#record_number": "record_number",
		},
	})
	if err != nil {
		if _, ok := conditionFailed(err); ok {
			return entities.ServiceRecord{}, interfaces.ErrAlreadyExists
		}
		logStoreError("record", err)
		return entities.ServiceRecord{}, err
	}
	return rec, nil
}

func (r *ServiceRecordDynamoRepository) GetByNumber(ctx context.Context, recordNumber int64) (entities.ServiceRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            numberKey("record_number", recordNumber),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceRecord{}, err
	}
	return decodeServiceRecord(out.Item)
}

func (r *ServiceRecordDynamoRepository) List(ctx context.Context) ([]entities.ServiceRecord, error) {
	return r.scan(ctx, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
}

func (r *ServiceRecordDynamoRepository) ListByStatus(ctx context.Context, status entities.PaymentStatus) ([]entities.ServiceRecord, error) {
	filter := "#payment_status = :status"
	if status == entities.PaymentStatusPending {
		filter = "attribute_not_exists(#payment_status) OR " + filter
	}
	return r.scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String(filter),
		ExpressionAttributeNames: map[string]string{
			"#payment_status": "payment_status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
	})
}

func (r *ServiceRecordDynamoRepository) scan(ctx context.Context, input *dynamodb.ScanInput) ([]entities.ServiceRecord, error) {
	items, err := scanAll[serviceRecordItem](ctx, r.ddb, input)
	if err != nil {
		return nil, err
	}
	records := make([]entities.ServiceRecord, 0, len(items))
	for _, it := range items {
		records = append(records, fromServiceRecordItem(it))
	}
	return records, nil
}

// Update sets the descriptive fields present in patch. A missing record yields a zero value.
func (r *ServiceRecordDynamoRepository) Update(ctx context.Context, recordNumber int64, patch entities.ServiceRecordPatch) (entities.ServiceRecord, error) {
	sets := []string{"#updated_at = :updated_at"}
	names := map[string]string{"#updated_at": "updated_at"}
	values := map[string]types.AttributeValue{
		":updated_at": &types.AttributeValueMemberS{Value: formatTime(r.now())},
	}
	if patch.PlateNumber != nil {
		sets = append(sets, "#plate_number = :plate_number")
		names["#plate_number"] = "plate_number"
		values[":plate_number"] = &types.AttributeValueMemberS{Value: *patch.PlateNumber}
	}
	if patch.ServiceCode != nil {
		sets = append(sets, "#service_code = :service_code")
		names["#service_code"] = "service_code"
		values[":service_code"] = &types.AttributeValueMemberS{Value: *patch.ServiceCode}
	}
	if patch.ServiceDate != nil {
		sets = append(sets, "#service_date = :service_date")
		names["#service_date"] = "service_date"
		values[":service_date"] = &types.AttributeValueMemberS{Value: formatTime(*patch.ServiceDate)}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       numberKey("record_number", recordNumber),
		ConditionExpression:       aws.String("attribute_exists(#record_number)"),
		UpdateExpression:          aws.String("SET " + strings.Join(sets, ", ")),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#record_number": "record_number"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if _, ok := conditionFailed(err); ok {
			return entities.ServiceRecord{}, nil
		}
		logStoreError("record", err)
		return entities.ServiceRecord{}, err
	}
	return decodeServiceRecord(out.Attributes)
}

// DeletePending removes the record only while it is unsettled.
func (r *ServiceRecordDynamoRepository) DeletePending(ctx context.Context, recordNumber int64) (bool, error) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 numberKey("record_number", recordNumber),
		ConditionExpression: aws.String(pendingCondition),
		ExpressionAttributeNames: map[string]string{
			"#record_number":  "record_number",
			"#payment_status": "payment_status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending": &types.AttributeValueMemberS{Value: string(entities.PaymentStatusPending)},
		},
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		if old, ok := conditionFailed(err); ok {
			if len(old) == 0 {
				return false, nil
			}
			return false, interfaces.ErrSettlementRecordNotPending
		}
		logStoreError("record", err)
		return false, err
	}
	return true, nil
}

func decodeServiceRecord(attrs map[string]types.AttributeValue) (entities.ServiceRecord, error) {
	if len(attrs) == 0 {
		return entities.ServiceRecord{}, nil
	}
	var it serviceRecordItem
	if err := attributevalue.UnmarshalMap(attrs, &it); err != nil {
		return entities.ServiceRecord{}, err
	}
	return fromServiceRecordItem(it), nil
}

func toServiceRecordItem(rec entities.ServiceRecord) serviceRecordItem {
	status := rec.PaymentStatus
	if status == "" {
		status = entities.PaymentStatusPending
	}
	return serviceRecordItem{
		RecordNumber:  rec.RecordNumber,
		PlateNumber:   rec.PlateNumber,
		ServiceCode:   rec.ServiceCode,
		ServiceDate:   formatTime(rec.ServiceDate),
		PaymentStatus: string(status),
		PaymentNumber: rec.PaymentNumber,
		CreatedAt:     formatTime(rec.CreatedAt),
		UpdatedAt:     formatTime(rec.UpdatedAt),
	}
}

func fromServiceRecordItem(it serviceRecordItem) entities.ServiceRecord {
	status := entities.PaymentStatus(it.PaymentStatus)
	if status == "" {
		status = entities.PaymentStatusPending
	}
	return entities.ServiceRecord{
		RecordNumber:  it.RecordNumber,
		PlateNumber:   it.PlateNumber,
		ServiceCode:   it.ServiceCode,
		ServiceDate:   parseTime(it.ServiceDate),
		PaymentStatus: status,
		PaymentNumber: it.PaymentNumber,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
