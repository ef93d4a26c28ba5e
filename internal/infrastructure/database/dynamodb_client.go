package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crpms_ledger/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	log "github.com/sirupsen/logrus"
)

const (
	PaymentsByRecordIndex = "record_number-index"
	tableWaitTimeout      = 2 * time.Minute
)

// ConnectDynamoDB creates a DynamoDB client from cfg. DYNAMODB_ENDPOINT points it at a local
// instance; static credentials are always set because the SDK requires some.
func ConnectDynamoDB(ctx context.Context, cfg *config.Config) (*dynamodb.Client, error) {
	awsCfg, err := NewAWSConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("aws config: %w", err)
	}

	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.DynamoDBEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.DynamoDBEndpoint)
		}
	})
	log.WithFields(log.Fields{
		"region":   cfg.AWSRegion,
		"endpoint": cfg.DynamoDBEndpoint,
	}).Info("[database] dynamodb client ready")
	return client, nil
}

func NewAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	creds := credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, "")
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
		awsconfig.WithCredentialsProvider(creds),
	)
}

// TableAdmin is the part of the client used to bootstrap tables.
type TableAdmin interface {
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

// EnsureTables creates any missing table and waits until it is active. Existing tables are left alone.
func EnsureTables(ctx context.Context, admin TableAdmin, tables config.Tables) error {
	for _, in := range TableDefinitions(tables) {
		name := aws.ToString(in.TableName)
		_, err := admin.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: in.TableName})
		if err == nil {
			continue
		}
		var notFound *types.ResourceNotFoundException
		if !errors.As(err, &notFound) {
			return fmt.Errorf("describe table %s: %w", name, err)
		}

		if _, err := admin.CreateTable(ctx, in); err != nil {
			var inUse *types.ResourceInUseException
			if !errors.As(err, &inUse) {
				return fmt.Errorf("create table %s: %w", name, err)
			}
		}
		waiter := dynamodb.NewTableExistsWaiter(admin, func(o *dynamodb.TableExistsWaiterOptions) {
			o.MinDelay = 200 * time.Millisecond
			o.MaxDelay = 5 * time.Second
		})
		if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: in.TableName}, tableWaitTimeout); err != nil {
			return fmt.Errorf("wait for table %s: %w", name, err)
		}
		log.WithField("table", name).Info("[database] table created")
	}
	return nil
}

// TableDefinitions describes every table with on-demand billing.
func TableDefinitions(tables config.Tables) []*dynamodb.CreateTableInput {
	return []*dynamodb.CreateTableInput{
		hashTable(tables.Cars, "plate_number", types.ScalarAttributeTypeS),
		hashTable(tables.Services, "service_code", types.ScalarAttributeTypeS),
		hashTable(tables.ServiceRecords, "record_number", types.ScalarAttributeTypeN),
		paymentsTable(tables.Payments),
		hashTable(tables.Sequences, "kind", types.ScalarAttributeTypeS),
	}
}

func hashTable(name, key string, keyType types.ScalarAttributeType) *dynamodb.CreateTableInput {
	return &dynamodb.CreateTableInput{
		TableName:            aws.String(name),
		BillingMode:          types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{{AttributeName: aws.String(key), AttributeType: keyType}},
		KeySchema:            []types.KeySchemaElement{{AttributeName: aws.String(key), KeyType: types.KeyTypeHash}},
	}
}

func paymentsTable(name string) *dynamodb.CreateTableInput {
	in := hashTable(name, "payment_number", types.ScalarAttributeTypeN)
	in.AttributeDefinitions = append(in.AttributeDefinitions, types.AttributeDefinition{
		AttributeName: aws.String("record_number"),
		AttributeType: types.ScalarAttributeTypeN,
	})
	in.GlobalSecondaryIndexes = []types.GlobalSecondaryIndex{{
		IndexName:  aws.String(PaymentsByRecordIndex),
		KeySchema:  []types.KeySchemaElement{{AttributeName: aws.String("record_number"), KeyType: types.KeyTypeHash}},
		Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
	}}
	return in
}
