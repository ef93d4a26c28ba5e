package routes

import (
	"context"
	"fmt"

	"crpms_ledger/internal/adapter/persistence/memory"
	"crpms_ledger/internal/adapter/persistence/repository"
	"crpms_ledger/internal/infrastructure/config"
	"crpms_ledger/internal/infrastructure/database"
	"crpms_ledger/internal/usecase"
	"crpms_ledger/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

// Dependencies are the use cases the HTTP layer and the scheduler call.
type Dependencies struct {
	Cars     usecase.ICarUseCase
	Services usecase.IServiceCatalogUseCase
	Records  usecase.IServiceRecordUseCase
	Payments usecase.IPaymentUseCase
	Reports  usecase.IReportUseCase
}

type stores struct {
	cars      interfaces.ICarRepository
	services  interfaces.IServiceRepository
	records   interfaces.IServiceRecordRepository
	payments  interfaces.IPaymentRepository
	sequencer interfaces.ISequencer
}

// NewDependencies wires the use cases on the store selected by STORE_DRIVER.
func NewDependencies(ctx context.Context, cfg *config.Config) (Dependencies, error) {
	var s stores
	switch cfg.StoreDriver {
	case config.DriverMemory:
		log.Warn("[routes] using the in-memory store, data is lost on restart")
		s = memoryStores(memory.NewStore())
	default:
		ddb, err := database.ConnectDynamoDB(ctx, cfg)
		if err != nil {
			return Dependencies{}, err
		}
		if cfg.DynamoDBAutoCreate {
			if err := database.EnsureTables(ctx, ddb, cfg.Tables); err != nil {
				return Dependencies{}, fmt.Errorf("ensure tables: %w", err)
			}
		}
		s = dynamoStores(ddb, cfg.Tables)
	}
	return newDependencies(s, cfg), nil
}

func newDependencies(s stores, cfg *config.Config) Dependencies {
	return Dependencies{
		Cars:     usecase.NewCarUseCase(s.cars),
		Services: usecase.NewServiceCatalogUseCase(s.services, s.sequencer),
		Records:  usecase.NewServiceRecordUseCase(s.records, s.cars, s.services, s.sequencer),
		Payments: usecase.NewPaymentUseCase(s.payments, s.records, s.cars, s.services),
		Reports:  usecase.NewReportUseCase(s.cars, s.services, s.records, s.payments, cfg.ReportLocation, cfg.Currency),
	}
}

func memoryStores(st *memory.Store) stores {
	return stores{
		cars:      st.Cars(),
		services:  st.Services(),
		records:   st.ServiceRecords(),
		payments:  st.Payments(),
		sequencer: st.Sequencer(),
	}
}

func dynamoStores(ddb repository.DynamoAPI, t config.Tables) stores {
	tables := repository.Tables{
		Cars:           t.Cars,
		Services:       t.Services,
		ServiceRecords: t.ServiceRecords,
		Payments:       t.Payments,
		Sequences:      t.Sequences,
	}
	return stores{
		cars:      repository.NewCarDynamoRepository(ddb, tables.Cars),
		services:  repository.NewServiceDynamoRepository(ddb, tables.Services),
		records:   repository.NewServiceRecordDynamoRepository(ddb, tables.ServiceRecords),
		payments:  repository.NewPaymentDynamoRepository(ddb, tables),
		sequencer: repository.NewDynamoSequencer(ddb, tables.Sequences),
	}
}
