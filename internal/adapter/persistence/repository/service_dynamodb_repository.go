package repository

import (
	"context"

	"crpms_ledger/internal/domain/entities"
	"crpms_ledger/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type serviceItem struct {
	ServiceCode  string  `dynamodbav:"service_code"`
	ServiceName  string  `dynamodbav:"service_name"`
	ServicePrice float64 `dynamodbav:"service_price"`
	CreatedAt    string  `dynamodbav:"created_at"`
}

// ServiceDynamoRepository persists the service catalog in DynamoDB.
//
// Table requirements:
//   - PK: service_code (string)
type ServiceDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IServiceRepository = (*ServiceDynamoRepository)(nil)

func NewServiceDynamoRepository(ddb DynamoAPI, tableName string) *ServiceDynamoRepository {
	return &ServiceDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ServiceDynamoRepository) Create(ctx context.Context, s entities.Service) (entities.Service, error) {
	av, err := attributevalue.MarshalMap(toServiceItem(s))
	if err != nil {
		return entities.Service{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#service_code)"),
		ExpressionAttributeNames: map[string]string{
			"#service_code": "service_code",
		},
	})
	if err != nil {
		if _, ok := conditionFailed(err); ok {
			return entities.Service{}, interfaces.ErrAlreadyExists
		}
		logStoreError("service", err)
		return entities.Service{}, err
	}
	return s, nil
}

func (r *ServiceDynamoRepository) GetByCode(ctx context.Context, code string) (entities.Service, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       stringKey("service_code", code),
	})
	if err != nil {
		return entities.Service{}, err
	}
	if len(out.Item) == 0 {
		return entities.Service{}, nil
	}

	var it serviceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Service{}, err
	}
	return fromServiceItem(it), nil
}

func (r *ServiceDynamoRepository) List(ctx context.Context) ([]entities.Service, error) {
	items, err := scanAll[serviceItem](ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	services := make([]entities.Service, 0, len(items))
	for _, it := range items {
		services = append(services, fromServiceItem(it))
	}
	return services, nil
}

func (r *ServiceDynamoRepository) Count(ctx context.Context) (int64, error) {
	return countAll(ctx, r.ddb, r.tableName)
}

func toServiceItem(s entities.Service) serviceItem {
	return serviceItem{
		ServiceCode:  s.ServiceCode,
		ServiceName:  s.ServiceName,
		ServicePrice: s.ServicePrice,
		CreatedAt:    formatTime(s.CreatedAt),
	}
}

func fromServiceItem(it serviceItem) entities.Service {
	return entities.Service{
		ServiceCode:  it.ServiceCode,
		ServiceName:  it.ServiceName,
		ServicePrice: it.ServicePrice,
		CreatedAt:    parseTime(it.CreatedAt),
	}
}
