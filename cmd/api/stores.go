package main

import (
	"context"
	"fmt"

	"lab_management/internal/adapter/persistence/memory"
	"lab_management/internal/adapter/persistence/postgres"
	"lab_management/internal/adapter/persistence/repository"
	"lab_management/internal/config"
	"lab_management/internal/domain/entities"
	"lab_management/internal/infrastructure/database"
	"lab_management/internal/usecase/interfaces"
)

// stores is the repository set of one backend.
type stores struct {
	catalog  interfaces.ICatalogRepository
	patients interfaces.IPatientRepository
	results  interfaces.ITestResultRepository
	payments interfaces.IBillingPaymentRepository
	sequence interfaces.ISequenceGenerator

	configureSequence func(ctx context.Context, seq entities.Sequence) error
	close             func()
}

func resultSequence(cfg *config.Config) entities.Sequence {
	return entities.Sequence{
		Name:    cfg.ResultSequence,
		Prefix:  cfg.ResultSequencePrefix,
		Padding: cfg.ResultSequencePadding,
	}
}

func openStores(ctx context.Context, cfg *config.Config) (*stores, error) {
	switch cfg.StoreBackend {
	case config.StoreDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg)
		if err != nil {
			return nil, err
		}
		tables := database.NewTables(cfg.TablePrefix)
		seq := repository.NewSequenceDynamoRepository(ddb, tables)
		return &stores{
			catalog:           repository.NewCatalogDynamoRepository(ddb, tables),
			patients:          repository.NewPatientDynamoRepository(ddb, tables),
			results:           repository.NewTestResultDynamoRepository(ddb, tables),
			payments:          repository.NewBillingPaymentDynamoRepository(ddb, tables),
			sequence:          seq,
			configureSequence: seq.Configure,
			close:             func() {},
		}, nil

	case config.StorePostgres:
		pool, err := database.NewPool(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if _, err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		seq := postgres.NewSequenceRepository(pool)
		return &stores{
			catalog:           postgres.NewCatalogRepository(pool),
			patients:          postgres.NewPatientRepository(pool),
			results:           postgres.NewTestResultRepository(pool),
			payments:          postgres.NewBillingPaymentRepository(pool),
			sequence:          seq,
			configureSequence: seq.Configure,
			close:             pool.Close,
		}, nil

	case config.StoreMemory:
		s := memory.NewStore()
		seq := memory.NewSequenceGenerator(s)
		return &stores{
			catalog:  memory.NewCatalogRepository(s),
			patients: memory.NewPatientRepository(s),
			results:  memory.NewTestResultRepository(s),
			payments: memory.NewBillingPaymentRepository(s),
			sequence: seq,
			configureSequence: func(_ context.Context, es entities.Sequence) error {
				seq.Configure(es)
				return nil
			},
			close: func() {},
		}, nil
	}
	return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
}
