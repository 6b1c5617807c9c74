// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Workstream HQ

package store

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/workstreamhq/credvault/internal/logger"
)

// DynamoDBClientAPI is the subset of the DynamoDB client the adapter uses.
// Defined as an interface so tests can substitute a fake client.
type DynamoDBClientAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// dynamoStore is the DynamoDB implementation of [KeyValueStore].
type dynamoStore struct {
	client DynamoDBClientAPI
	logger *logger.Logger
}

// NewDynamoStore constructs a [KeyValueStore] over the given DynamoDB client.
func NewDynamoStore(client DynamoDBClientAPI, log *logger.Logger) KeyValueStore {
	return &dynamoStore{
		client: client,
		logger: log,
	}
}

// Get implements [KeyValueStore]. A missing item returns (nil, nil).
func (d *dynamoStore) Get(ctx context.Context, table string, key Item) (Item, error) {
	marshaledKey, err := attributevalue.MarshalMap(map[string]any(key))
	if err != nil {
		return nil, fmt.Errorf("marshal key: %w", err)
	}

	out, err := d.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key:       marshaledKey,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: get item from %s: %w", ErrKeyValueOperation, table, err)
	}
	if out.Item == nil {
		return nil, nil
	}

	return unmarshalItem(out.Item)
}

// Put implements [KeyValueStore].
func (d *dynamoStore) Put(ctx context.Context, table string, item Item) error {
	marshaled, err := attributevalue.MarshalMap(map[string]any(item))
	if err != nil {
		return fmt.Errorf("marshal item: %w", err)
	}

	_, err = d.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(table),
		Item:      marshaled,
	})
	if err != nil {
		return fmt.Errorf("%w: put item into %s: %w", ErrKeyValueOperation, table, err)
	}

	return nil
}

// Update implements [KeyValueStore].
func (d *dynamoStore) Update(ctx context.Context, table string, key Item, updateExpr string, values map[string]any, names map[string]string) error {
	marshaledKey, err := attributevalue.MarshalMap(map[string]any(key))
	if err != nil {
		return fmt.Errorf("marshal key: %w", err)
	}

	marshaledValues, err := attributevalue.MarshalMap(values)
	if err != nil {
		return fmt.Errorf("marshal expression values: %w", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName:                 aws.String(table),
		Key:                       marshaledKey,
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: marshaledValues,
	}
	if len(names) > 0 {
		input.ExpressionAttributeNames = names
	}

	if _, err = d.client.UpdateItem(ctx, input); err != nil {
		return fmt.Errorf("%w: update item in %s: %w", ErrKeyValueOperation, table, err)
	}

	return nil
}

// Delete implements [KeyValueStore].
func (d *dynamoStore) Delete(ctx context.Context, table string, key Item) error {
	marshaledKey, err := attributevalue.MarshalMap(map[string]any(key))
	if err != nil {
		return fmt.Errorf("marshal key: %w", err)
	}

	_, err = d.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(table),
		Key:       marshaledKey,
	})
	if err != nil {
		return fmt.Errorf("%w: delete item from %s: %w", ErrKeyValueOperation, table, err)
	}

	return nil
}

// QueryByKeyPrefix implements [KeyValueStore]. Pages through the full result
// set before returning.
func (d *dynamoStore) QueryByKeyPrefix(ctx context.Context, table, partitionKey, sortKeyPrefix string) ([]Item, error) {
	values, err := attributevalue.MarshalMap(map[string]any{
		":pk": partitionKey,
		":sk": sortKeyPrefix,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal key condition values: %w", err)
	}

	var (
		items     []Item
		exclusive map[string]types.AttributeValue
	)

	for {
		out, queryErr := d.client.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(table),
			KeyConditionExpression: aws.String("#pk = :pk AND begins_with(#sk, :sk)"),
			ExpressionAttributeNames: map[string]string{
				"#pk": attrPK,
				"#sk": attrSK,
			},
			ExpressionAttributeValues: values,
			ExclusiveStartKey:         exclusive,
		})
		if queryErr != nil {
			return nil, fmt.Errorf("%w: query %s: %w", ErrKeyValueOperation, table, queryErr)
		}

		for _, raw := range out.Items {
			item, unmarshalErr := unmarshalItem(raw)
			if unmarshalErr != nil {
				return nil, unmarshalErr
			}
			items = append(items, item)
		}

		if out.LastEvaluatedKey == nil {
			break
		}
		exclusive = out.LastEvaluatedKey
	}

	return items, nil
}

// ScanByAttribute implements [KeyValueStore]. Pages through the whole table;
// callers treat this as the expensive last resort it is.
func (d *dynamoStore) ScanByAttribute(ctx context.Context, table, attribute string, value any) ([]Item, error) {
	values, err := attributevalue.MarshalMap(map[string]any{":val": value})
	if err != nil {
		return nil, fmt.Errorf("marshal filter value: %w", err)
	}

	var (
		items     []Item
		exclusive map[string]types.AttributeValue
	)

	for {
		out, scanErr := d.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:                 aws.String(table),
			FilterExpression:          aws.String("#attr = :val"),
			ExpressionAttributeNames:  map[string]string{"#attr": attribute},
			ExpressionAttributeValues: values,
			ExclusiveStartKey:         exclusive,
		})
		if scanErr != nil {
			return nil, fmt.Errorf("%w: scan %s: %w", ErrKeyValueOperation, table, scanErr)
		}

		for _, raw := range out.Items {
			item, unmarshalErr := unmarshalItem(raw)
			if unmarshalErr != nil {
				return nil, unmarshalErr
			}
			items = append(items, item)
		}

		if out.LastEvaluatedKey == nil {
			break
		}
		exclusive = out.LastEvaluatedKey
	}

	return items, nil
}

func unmarshalItem(raw map[string]types.AttributeValue) (Item, error) {
	var item map[string]any
	if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
		return nil, fmt.Errorf("unmarshal item: %w", err)
	}

	return Item(item), nil
}
