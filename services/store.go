package services

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Store is the storage capability every service gets injected. DynamoService
// is the production implementation; tests substitute an in-memory fake.
type Store interface {
	// PutItem marshals and writes an item unconditionally.
	PutItem(ctx context.Context, tableName string, item interface{}) error

	// PutItemIfAbsent writes an item only if no item with the same value for
	// keyAttr exists. Returns false (and no error) when the write lost to an
	// existing item.
	PutItemIfAbsent(ctx context.Context, tableName string, item interface{}, keyAttr string) (bool, error)

	// GetItem fetches a single item by key. Returns (nil, nil) when absent.
	GetItem(ctx context.Context, tableName string, key map[string]types.AttributeValue) (map[string]types.AttributeValue, error)

	// UpdateItem applies an update expression and returns the new attributes.
	UpdateItem(ctx context.Context, tableName, updateExpression string, key, expressionAttributeValues map[string]types.AttributeValue, expressionAttributeNames map[string]string) (map[string]types.AttributeValue, error)

	// DeleteItem removes a single item by key.
	DeleteItem(ctx context.Context, tableName string, key map[string]types.AttributeValue) error

	// QueryItemsWithIndex queries a Global Secondary Index.
	QueryItemsWithIndex(ctx context.Context, tableName, indexName, keyConditionExpression string, expressionAttributeValues map[string]types.AttributeValue, expressionAttributeNames map[string]string, limit int32) ([]map[string]types.AttributeValue, error)

	// QueryItemsWithOptions queries the base table with an explicit sort
	// direction on the range key.
	QueryItemsWithOptions(ctx context.Context, tableName, keyConditionExpression string, expressionAttributeValues map[string]types.AttributeValue, expressionAttributeNames map[string]string, limit int32, ascending bool) ([]map[string]types.AttributeValue, error)

	// ScanWithFilter scans a table, keeping items whose attributes equal every
	// entry in matchFields and that pass the filterFunc callback, then
	// unmarshals the survivors into result (a pointer to a slice of structs).
	ScanWithFilter(ctx context.Context, tableName string, filterFunc func(map[string]types.AttributeValue) bool, matchFields map[string]string, result interface{}) error

	// BatchDeleteItems deletes the given keys in batches.
	BatchDeleteItems(ctx context.Context, tableName string, keys []map[string]types.AttributeValue) error

	// CountItems counts items, optionally constrained by attribute equality.
	CountItems(ctx context.Context, tableName string, matchFields map[string]string) (int, error)

	// DistinctStrings returns the distinct string values of one attribute.
	DistinctStrings(ctx context.Context, tableName, field string) ([]string, error)
}
