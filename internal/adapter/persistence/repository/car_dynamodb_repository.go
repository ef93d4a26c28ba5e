package repository

import (
	"context"

	"crpms_ledger/internal/domain/entities"
	"crpms_ledger/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type carItem struct {
	PlateNumber       string `dynamodbav:"plate_number"`
	Type              string `dynamodbav:"car_type"`
	Model             string `dynamodbav:"model"`
	ManufacturingYear int    `dynamodbav:"manufacturing_year"`
	DriverPhone       string `dynamodbav:"driver_phone"`
	MechanicName      string `dynamodbav:"mechanic_name"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

// CarDynamoRepository persists Car entities in DynamoDB.
//
// Table requirements:
//   - PK: plate_number (string)
//
// The plate is the key, so the conditional put is the uniqueness check.
type CarDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ICarRepository = (*CarDynamoRepository)(nil)

func NewCarDynamoRepository(ddb DynamoAPI, tableName string) *CarDynamoRepository {
	return &CarDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *CarDynamoRepository) Create(ctx context.Context, c entities.Car) (entities.Car, error) {
	av, err := attributevalue.MarshalMap(toCarItem(c))
	if err != nil {
		return entities.Car{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#plate_number)"),
		ExpressionAttributeNames: map[string]string{
			"#plate_number": "plate_number",
		},
	})
	if err != nil {
		if _, ok := conditionFailed(err); ok {
			return entities.Car{}, interfaces.ErrAlreadyExists
		}
		logStoreError("car", err)
		return entities.Car{}, err
	}
	return c, nil
}

func (r *CarDynamoRepository) GetByPlate(ctx context.Context, plate string) (entities.Car, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey("plate_number", plate),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Car{}, err
	}
	if len(out.Item) == 0 {
		return entities.Car{}, nil
	}

	var it carItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Car{}, err
	}
	return fromCarItem(it), nil
}

func (r *CarDynamoRepository) List(ctx context.Context) ([]entities.Car, error) {
	items, err := scanAll[carItem](ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	cars := make([]entities.Car, 0, len(items))
	for _, it := range items {
		cars = append(cars, fromCarItem(it))
	}
	return cars, nil
}

func (r *CarDynamoRepository) Delete(ctx context.Context, plate string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(r.tableName),
		Key:          stringKey("plate_number", plate),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		logStoreError("car", err)
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func (r *CarDynamoRepository) Count(ctx context.Context) (int64, error) {
	return countAll(ctx, r.ddb, r.tableName)
}

func toCarItem(c entities.Car) carItem {
	return carItem{
		PlateNumber:       c.PlateNumber,
		Type:              c.Type,
		Model:             c.Model,
		ManufacturingYear: c.ManufacturingYear,
		DriverPhone:       c.DriverPhone,
		MechanicName:      c.MechanicName,
		CreatedAt:         formatTime(c.CreatedAt),
		UpdatedAt:         formatTime(c.UpdatedAt),
	}
}

func fromCarItem(it carItem) entities.Car {
	return entities.Car{
		PlateNumber:       it.PlateNumber,
		Type:              it.Type,
		Model:             it.Model,
		ManufacturingYear: it.ManufacturingYear,
		DriverPhone:       it.DriverPhone,
		MechanicName:      it.MechanicName,
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
}
