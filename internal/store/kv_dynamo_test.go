package store

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/workstreamhq/credvault/internal/logger"
)

// fakeDynamoClient implements DynamoDBClientAPI with pluggable behaviour.
type fakeDynamoClient struct {
	getFn    func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error)
	putFn    func(*dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error)
	deleteFn func(*dynamodb.DeleteItemInput) (*dynamodb.DeleteItemOutput, error)
	queryFn  func(*dynamodb.QueryInput) (*dynamodb.QueryOutput, error)
	scanFn   func(*dynamodb.ScanInput) (*dynamodb.ScanOutput, error)
}

func (f *fakeDynamoClient) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return f.getFn(in)
}

func (f *fakeDynamoClient) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	return f.putFn(in)
}

func (f *fakeDynamoClient) UpdateItem(_ context.Context, _ *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	return &dynamodb.UpdateItemOutput{}, nil
}

func (f *fakeDynamoClient) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	return f.deleteFn(in)
}

func (f *fakeDynamoClient) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	return f.queryFn(in)
}

func (f *fakeDynamoClient) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	return f.scanFn(in)
}

func mustMarshalAttrs(t *testing.T, m map[string]any) map[string]types.AttributeValue {
	t.Helper()
	out, err := attributevalue.MarshalMap(m)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	return out
}

func TestDynamoGet_MissingItemIsNilNil(t *testing.T) {
	client := &fakeDynamoClient{
		getFn: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{}, nil
		},
	}
	store := NewDynamoStore(client, logger.NewLogger("test"))

	item, err := store.Get(context.Background(), "ws-vault-test", Item{attrPK: "VAULT#X", attrSK: "TOKEN#1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item != nil {
		t.Errorf("missing item should yield nil, got %+v", item)
	}
}

func TestDynamoGet_Found(t *testing.T) {
	client := &fakeDynamoClient{
		getFn: func(in *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			if aws.ToString(in.TableName) != "ws-vault-test" {
				t.Errorf("table = %q, want ws-vault-test", aws.ToString(in.TableName))
			}
			return &dynamodb.GetItemOutput{
				Item: mustMarshalAttrs(t, map[string]any{attrPK: "VAULT#X", "id": "rec-1"}),
			}, nil
		},
	}
	store := NewDynamoStore(client, logger.NewLogger("test"))

	item, err := store.Get(context.Background(), "ws-vault-test", Item{attrPK: "VAULT#X"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item["id"] != "rec-1" {
		t.Errorf("id = %v, want rec-1", item["id"])
	}
}

func TestDynamoPut_ErrorWrapsKeyValueOperation(t *testing.T) {
	client := &fakeDynamoClient{
		putFn: func(*dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
			return nil, errors.New("provisioned throughput exceeded")
		},
	}
	store := NewDynamoStore(client, logger.NewLogger("test"))

	err := store.Put(context.Background(), "ws-vault-test", Item{attrPK: "VAULT#X", attrSK: "TOKEN#1"})
	if !errors.Is(err, ErrKeyValueOperation) {
		t.Fatalf("expected ErrKeyValueOperation, got %v", err)
	}
}

func TestDynamoQueryByKeyPrefix_Paginates(t *testing.T) {
	pageTwoStart := mustMarshalAttrs(t, map[string]any{attrPK: "VAULT#X", attrSK: "TOKEN#1"})

	calls := 0
	client := &fakeDynamoClient{
		queryFn: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
			calls++
			switch calls {
			case 1:
				if in.ExclusiveStartKey != nil {
					t.Error("first page must not carry an exclusive start key")
				}
				return &dynamodb.QueryOutput{
					Items:            []map[string]types.AttributeValue{mustMarshalAttrs(t, map[string]any{"id": "rec-1"})},
					LastEvaluatedKey: pageTwoStart,
				}, nil
			default:
				if in.ExclusiveStartKey == nil {
					t.Error("second page must resume from the last evaluated key")
				}
				return &dynamodb.QueryOutput{
					Items: []map[string]types.AttributeValue{mustMarshalAttrs(t, map[string]any{"id": "rec-2"})},
				}, nil
			}
		},
	}
	store := NewDynamoStore(client, logger.NewLogger("test"))

	items, err := store.QueryByKeyPrefix(context.Background(), "ws-vault-test", "VAULT#X", SKTokenPrefix)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 2 {
		t.Errorf("made %d query calls, want 2", calls)
	}
	if len(items) != 2 || items[0]["id"] != "rec-1" || items[1]["id"] != "rec-2" {
		t.Errorf("items = %+v, want both pages in order", items)
	}
}

func TestDynamoScanByAttribute_FilterExpression(t *testing.T) {
	client := &fakeDynamoClient{
		scanFn: func(in *dynamodb.ScanInput) (*dynamodb.ScanOutput, error) {
			if aws.ToString(in.FilterExpression) != "#attr = :val" {
				t.Errorf("filter expression = %q", aws.ToString(in.FilterExpression))
			}
			if in.ExpressionAttributeNames["#attr"] != attrEntityType {
				t.Errorf("filter attribute = %q, want %q", in.ExpressionAttributeNames["#attr"], attrEntityType)
			}
			return &dynamodb.ScanOutput{
				Items: []map[string]types.AttributeValue{mustMarshalAttrs(t, map[string]any{"id": "rec-1"})},
			}, nil
		},
	}
	store := NewDynamoStore(client, logger.NewLogger("test"))

	items, err := store.ScanByAttribute(context.Background(), "ws-vault-test", attrEntityType, "CREDENTIAL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
}

func TestDynamoScanByAttribute_Error(t *testing.T) {
	client := &fakeDynamoClient{
		scanFn: func(*dynamodb.ScanInput) (*dynamodb.ScanOutput, error) {
			return nil, errors.New("access denied")
		},
	}
	store := NewDynamoStore(client, logger.NewLogger("test"))

	if _, err := store.ScanByAttribute(context.Background(), "ws-vault-test", attrEntityType, "CREDENTIAL"); !errors.Is(err, ErrKeyValueOperation) {
		t.Fatalf("expected ErrKeyValueOperation, got %v", err)
	}
}
