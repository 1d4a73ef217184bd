package services

import (
	"context"
	"sort"
	"strings"
	"sync"

	"matchmaking_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeStore is an in-memory Store used by the service tests. It relies on
// the convention that expression placeholders are named after the attribute
// they constrain (":toUserId" constrains "toUserId"), which every service in
// this package follows, and only understands equality conditions.
type fakeStore struct {
	mu     sync.Mutex
	tables map[string][]map[string]types.AttributeValue
}

func newFakeStore() *fakeStore {
	return &fakeStore{tables: map[string][]map[string]types.AttributeValue{}}
}

// tableKeyAttrs mirrors the primary key layout of the real tables.
func tableKeyAttrs(tableName string) []string {
	switch tableName {
	case models.UserAuthTable, models.ProfilesTable:
		return []string{"userId"}
	case models.LikesTable:
		return []string{"likeId"}
	case models.MatchesTable:
		return []string{"pairKey"}
	case models.MessagesTable:
		return []string{"matchId", "createdAt"}
	}
	return nil
}

func attrEq(a, b types.AttributeValue) bool {
	switch av := a.(type) {
	case *types.AttributeValueMemberS:
		bv, ok := b.(*types.AttributeValueMemberS)
		return ok && av.Value == bv.Value
	case *types.AttributeValueMemberBOOL:
		bv, ok := b.(*types.AttributeValueMemberBOOL)
		return ok && av.Value == bv.Value
	case *types.AttributeValueMemberN:
		bv, ok := b.(*types.AttributeValueMemberN)
		return ok && av.Value == bv.Value
	}
	return false
}

func matchesKey(item, key map[string]types.AttributeValue, attrs []string) bool {
	for _, attr := range attrs {
		want, ok := key[attr]
		if !ok {
			return false
		}
		have, ok := item[attr]
		if !ok || !attrEq(want, have) {
			return false
		}
	}
	return true
}

// matchesPlaceholders applies every ":name" placeholder as an equality
// constraint on attribute "name".
func matchesPlaceholders(item map[string]types.AttributeValue, values map[string]types.AttributeValue) bool {
	for placeholder, want := range values {
		attr := strings.TrimPrefix(placeholder, ":")
		have, ok := item[attr]
		if !ok || !attrEq(want, have) {
			return false
		}
	}
	return true
}

func (f *fakeStore) PutItem(ctx context.Context, tableName string, item interface{}) error {
	marshaled, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	keyAttrs := tableKeyAttrs(tableName)
	items := f.tables[tableName]
	for i, existing := range items {
		if matchesKey(existing, marshaled, keyAttrs) {
			items[i] = marshaled
			return nil
		}
	}
	f.tables[tableName] = append(items, marshaled)
	return nil
}

func (f *fakeStore) PutItemIfAbsent(ctx context.Context, tableName string, item interface{}, keyAttr string) (bool, error) {
	marshaled, err := attributevalue.MarshalMap(item)
	if err != nil {
		return false, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.tables[tableName] {
		if attrEq(existing[keyAttr], marshaled[keyAttr]) {
			return false, nil
		}
	}
	f.tables[tableName] = append(f.tables[tableName], marshaled)
	return true, nil
}

func (f *fakeStore) GetItem(ctx context.Context, tableName string, key map[string]types.AttributeValue) (map[string]types.AttributeValue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	keyAttrs := tableKeyAttrs(tableName)
	for _, item := range f.tables[tableName] {
		if matchesKey(item, key, keyAttrs) {
			return item, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) UpdateItem(ctx context.Context, tableName, updateExpression string, key, expressionAttributeValues map[string]types.AttributeValue, expressionAttributeNames map[string]string) (map[string]types.AttributeValue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	keyAttrs := tableKeyAttrs(tableName)
	for _, item := range f.tables[tableName] {
		if !matchesKey(item, key, keyAttrs) {
			continue
		}
		for placeholder, value := range expressionAttributeValues {
			item[strings.TrimPrefix(placeholder, ":")] = value
		}
		return item, nil
	}
	return map[string]types.AttributeValue{}, nil
}

func (f *fakeStore) DeleteItem(ctx context.Context, tableName string, key map[string]types.AttributeValue) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	keyAttrs := tableKeyAttrs(tableName)
	items := f.tables[tableName]
	for i, item := range items {
		if matchesKey(item, key, keyAttrs) {
			f.tables[tableName] = append(items[:i], items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeStore) QueryItemsWithIndex(ctx context.Context, tableName, indexName, keyConditionExpression string, expressionAttributeValues map[string]types.AttributeValue, expressionAttributeNames map[string]string, limit int32) ([]map[string]types.AttributeValue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var results []map[string]types.AttributeValue
	for _, item := range f.tables[tableName] {
		if matchesPlaceholders(item, expressionAttributeValues) {
			results = append(results, item)
			if limit > 0 && int32(len(results)) >= limit {
				break
			}
		}
	}
	return results, nil
}

func (f *fakeStore) QueryItemsWithOptions(ctx context.Context, tableName, keyConditionExpression string, expressionAttributeValues map[string]types.AttributeValue, expressionAttributeNames map[string]string, limit int32, ascending bool) ([]map[string]types.AttributeValue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var results []map[string]types.AttributeValue
	for _, item := range f.tables[tableName] {
		if matchesPlaceholders(item, expressionAttributeValues) {
			results = append(results, item)
		}
	}

	// The range key of every queried table is createdAt
	sort.SliceStable(results, func(i, j int) bool {
		a, _ := results[i]["createdAt"].(*types.AttributeValueMemberS)
		b, _ := results[j]["createdAt"].(*types.AttributeValueMemberS)
		if a == nil || b == nil {
			return false
		}
		if ascending {
			return a.Value < b.Value
		}
		return a.Value > b.Value
	})

	if limit > 0 && int32(len(results)) > limit {
		results = results[:limit]
	}
	return results, nil
}

func (f *fakeStore) ScanWithFilter(ctx context.Context, tableName string, filterFunc func(map[string]types.AttributeValue) bool, matchFields map[string]string, result interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	var filtered []map[string]types.AttributeValue
	for _, item := range f.tables[tableName] {
		keep := true
		for field, want := range matchFields {
			have, ok := item[field]
			if !ok || !attrEq(&types.AttributeValueMemberS{Value: want}, have) {
				keep = false
				break
			}
		}
		if keep && (filterFunc == nil || filterFunc(item)) {
			filtered = append(filtered, item)
		}
	}
	return attributevalue.UnmarshalListOfMaps(filtered, result)
}

func (f *fakeStore) BatchDeleteItems(ctx context.Context, tableName string, keys []map[string]types.AttributeValue) error {
	keyAttrs := tableKeyAttrs(tableName)
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, key := range keys {
		items := f.tables[tableName]
		for i, item := range items {
			if matchesKey(item, key, keyAttrs) {
				f.tables[tableName] = append(items[:i], items[i+1:]...)
				break
			}
		}
	}
	return nil
}

func (f *fakeStore) CountItems(ctx context.Context, tableName string, matchFields map[string]string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	count := 0
	for _, item := range f.tables[tableName] {
		keep := true
		for field, want := range matchFields {
			have, ok := item[field]
			if !ok {
				keep = false
				break
			}
			if want == "true" || want == "false" {
				if !attrEq(&types.AttributeValueMemberBOOL{Value: want == "true"}, have) {
					keep = false
					break
				}
			} else if !attrEq(&types.AttributeValueMemberS{Value: want}, have) {
				keep = false
				break
			}
		}
		if keep {
			count++
		}
	}
	return count, nil
}

func (f *fakeStore) DistinctStrings(ctx context.Context, tableName, field string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	seen := map[string]struct{}{}
	var values []string
	for _, item := range f.tables[tableName] {
		s, ok := item[field].(*types.AttributeValueMemberS)
		if !ok {
			continue
		}
		if _, dup := seen[s.Value]; dup {
			continue
		}
		seen[s.Value] = struct{}{}
		values = append(values, s.Value)
	}
	return values, nil
}

// countTable reports how many items a table holds, for invariant assertions.
func (f *fakeStore) countTable(tableName string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.tables[tableName])
}

var _ Store = (*fakeStore)(nil)
