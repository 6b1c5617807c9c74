// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Workstream HQ

package store

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/workstreamhq/credvault/internal/config"
	"github.com/workstreamhq/credvault/internal/logger"
	"github.com/workstreamhq/credvault/migrations"
)

// Storages aggregates everything the vault needs from the persistence
// layer: the active credential store, the table resolver, and the owned
// database handle (nil when the key/value backend is active).
type Storages struct {
	Credentials CredentialStore
	Tables      *TableResolver

	db *DB
}

// NewStorages selects and constructs the active backend from configuration.
// The selection happens exactly once here; no vault code branches on the
// backend mode afterwards.
//
// The "filesystem" selector names the JSON file store of the legacy CRUD
// layer, which cannot hold encrypted credentials, and fails fast.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	tables := NewTableResolver(cfg.Tables.Prefix, cfg.Tables.Env)

	switch cfg.Backend {
	case config.BackendKeyValue:
		client, err := newDynamoClient(ctx, cfg.KV)
		if err != nil {
			return nil, err
		}

		return &Storages{
			Credentials: NewKVCredentialStore(NewDynamoStore(client, log), log),
			Tables:      tables,
		}, nil

	case config.BackendRelational:
		db, err := NewConnect(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}

		if err = migrations.Migrate(db.DB, db.GooseDialect()); err != nil {
			db.Close()
			return nil, fmt.Errorf("running credential schema migrations: %w", err)
		}

		return &Storages{
			Credentials: NewCredentialRepository(db, log),
			Tables:      tables,
			db:          db,
		}, nil

	case config.BackendFilesystem:
		return nil, fmt.Errorf("%w: the filesystem store cannot hold vault credentials", ErrUnsupportedBackend)

	default:
		return nil, fmt.Errorf("%w: unknown backend %q", ErrUnsupportedBackend, cfg.Backend)
	}
}

// Close releases the relational pool when one is owned. Safe to call for
// the key/value backend.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// newDynamoClient builds the DynamoDB client, honoring an optional custom
// endpoint and static credentials for local stacks and tests.
func newDynamoClient(ctx context.Context, cfg config.KVConfig) (*dynamodb.Client, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}

	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	var clientOpts []func(*dynamodb.Options)
	if cfg.Endpoint != "" {
		clientOpts = append(clientOpts, func(o *dynamodb.Options) {
			o.BaseEndpoint = &cfg.Endpoint
		})
	}

	return dynamodb.NewFromConfig(awsCfg, clientOpts...), nil
}
