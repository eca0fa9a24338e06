package repository

import (
	"context"
	"fmt"
	"sort"

	"lab_management/internal/domain/entities"
	"lab_management/internal/infrastructure/database"
	"lab_management/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// maxBatchGetKeys is the DynamoDB limit on keys in one BatchGetItem request.
const maxBatchGetKeys = 100

type categoryItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	Description string `dynamodbav:"description,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
}

type parameterItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	NormalRange string `dynamodbav:"normal_range"`
	Unit        string `dynamodbav:"unit,omitempty"`
}

// testTypeItem stores a test type with its parameters embedded, so they are
// written and deleted in the same request. category_id is omitted when empty
// to keep the category index sparse.
type testTypeItem struct {
	ID         string          `dynamodbav:"id"`
	Name       string          `dynamodbav:"name"`
	CategoryID string          `dynamodbav:"category_id,omitempty"`
	Price      string          `dynamodbav:"price"`
	Parameters []parameterItem `dynamodbav:"parameters"`
	CreatedAt  string          `dynamodbav:"created_at"`
	UpdatedAt  string          `dynamodbav:"updated_at"`
}

// CatalogDynamoRepository persists categories and test types.
//
// Table requirements:
//   - test_categories PK: id
//   - test_types PK: id, GSI category_id-index (PK: category_id)
type CatalogDynamoRepository struct {
	ddb        *dynamodb.Client
	categories string
	testTypes  string
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb *dynamodb.Client, tables database.Tables) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{ddb: ddb, categories: tables.Categories, testTypes: tables.TestTypes}
}

func (r *CatalogDynamoRepository) CreateCategory(ctx context.Context, c entities.TestCategory) (entities.TestCategory, error) {
	av, err := attributevalue.MarshalMap(categoryItem{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   formatTime(c.CreatedAt),
	})
	if err != nil {
		return entities.TestCategory{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.categories),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.TestCategory{}, err
	}
	return c, nil
}

func (r *CatalogDynamoRepository) GetCategory(ctx context.Context, id string) (entities.TestCategory, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.categories),
		Key:       stringKey("id", id),
	})
	if err != nil {
		return entities.TestCategory{}, err
	}
	if len(out.Item) == 0 {
		return entities.TestCategory{}, nil
	}
	var it categoryItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.TestCategory{}, err
	}
	return fromCategoryItem(it)
}

func (r *CatalogDynamoRepository) ListCategories(ctx context.Context) ([]entities.TestCategory, error) {
	var raw []categoryItem
	if err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.categories)}, &raw); err != nil {
		return nil, err
	}
	out := make([]entities.TestCategory, 0, len(raw))
	for _, it := range raw {
		c, err := fromCategoryItem(it)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *CatalogDynamoRepository) CreateTestType(ctx context.Context, t entities.TestType) (entities.TestType, error) {
	if err := r.putTestType(ctx, t, "attribute_not_exists(#id)"); err != nil {
		return entities.TestType{}, err
	}
	return t, nil
}

// UpdateTestType replaces the whole item. A missing test type returns the
// zero value.
func (r *CatalogDynamoRepository) UpdateTestType(ctx context.Context, t entities.TestType) (entities.TestType, error) {
	if err := r.putTestType(ctx, t, "attribute_exists(#id)"); err != nil {
		if isConditionFailed(err) {
			return entities.TestType{}, nil
		}
		return entities.TestType{}, err
	}
	return t, nil
}

func (r *CatalogDynamoRepository) putTestType(ctx context.Context, t entities.TestType, condition string) error {
	av, err := attributevalue.MarshalMap(toTestTypeItem(t))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.testTypes),
		Item:                     av,
		ConditionExpression:      aws.String(condition),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	return err
}

func (r *CatalogDynamoRepository) GetTestType(ctx context.Context, id string) (entities.TestType, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.testTypes),
		Key:            stringKey("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.TestType{}, err
	}
	if len(out.Item) == 0 {
		return entities.TestType{}, nil
	}
	var it testTypeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.TestType{}, err
	}
	return fromTestTypeItem(it)
}

// GetTestTypes batch-reads test types. Ids that do not exist are simply
// absent from the result.
func (r *CatalogDynamoRepository) GetTestTypes(ctx context.Context, ids []string) (map[string]entities.TestType, error) {
	found := make(map[string]entities.TestType, len(ids))
	for start := 0; start < len(ids); start += maxBatchGetKeys {
		end := min(start+maxBatchGetKeys, len(ids))
		keys := make([]map[string]types.AttributeValue, 0, end-start)
		for _, id := range ids[start:end] {
			keys = append(keys, stringKey("id", id))
		}

		request := map[string]types.KeysAndAttributes{
			r.testTypes: {Keys: keys, ConsistentRead: aws.Bool(true)},
		}
		for len(request) > 0 {
			out, err := r.ddb.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{RequestItems: request})
			if err != nil {
				return nil, fmt.Errorf("batch get test types: %w", err)
			}
			var raw []testTypeItem
			if err := attributevalue.UnmarshalListOfMaps(out.Responses[r.testTypes], &raw); err != nil {
				return nil, err
			}
			for _, it := range raw {
				t, err := fromTestTypeItem(it)
				if err != nil {
					return nil, err
				}
				found[it.ID] = t
			}
			request = out.UnprocessedKeys
		}
	}
	return found, nil
}

func (r *CatalogDynamoRepository) ListTestTypes(ctx context.Context, categoryID string) ([]entities.TestType, error) {
	var raw []testTypeItem
	if categoryID == "" {
		if err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.testTypes)}, &raw); err != nil {
			return nil, err
		}
	} else {
		p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
			TableName:              aws.String(r.testTypes),
			IndexName:              aws.String(database.IndexTestTypesByCategory),
			KeyConditionExpression: aws.String("category_id = :cid"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":cid": &types.AttributeValueMemberS{Value: categoryID},
			},
		})
		for p.HasMorePages() {
			page, err := p.NextPage(ctx)
			if err != nil {
				return nil, err
			}
			var items []testTypeItem
			if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
				return nil, err
			}
			raw = append(raw, items...)
		}
	}

	out := make([]entities.TestType, 0, len(raw))
	for _, it := range raw {
		t, err := fromTestTypeItem(it)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *CatalogDynamoRepository) DeleteTestType(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(r.testTypes),
		Key:          stringKey("id", id),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

// scanAll reads every page of a scan into out, which must point to a slice.
func scanAll[T any](ctx context.Context, ddb *dynamodb.Client, in *dynamodb.ScanInput, out *[]T) error {
	p := dynamodb.NewScanPaginator(ddb, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return err
		}
		var items []T
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return err
		}
		*out = append(*out, items...)
	}
	return nil
}

func fromCategoryItem(it categoryItem) (entities.TestCategory, error) {
	dec := newItemDecoder("test_categories", it.ID)
	c := entities.TestCategory{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		CreatedAt:   dec.time("created_at", it.CreatedAt),
	}
	return c, dec.err
}

func toTestTypeItem(t entities.TestType) testTypeItem {
	params := make([]parameterItem, 0, len(t.Parameters))
	for _, p := range t.Parameters {
		params = append(params, parameterItem{ID: p.ID, Name: p.Name, NormalRange: p.NormalRange, Unit: p.Unit})
	}
	return testTypeItem{
		ID:         t.ID,
		Name:       t.Name,
		CategoryID: t.CategoryID,
		Price:      floatToString(t.Price),
		Parameters: params,
		CreatedAt:  formatTime(t.CreatedAt),
		UpdatedAt:  formatTime(t.UpdatedAt),
	}
}

func fromTestTypeItem(it testTypeItem) (entities.TestType, error) {
	dec := newItemDecoder("test_types", it.ID)
	t := entities.TestType{
		ID:         it.ID,
		Name:       it.Name,
		CategoryID: it.CategoryID,
		Parameters: make([]entities.TestParameter, 0, len(it.Parameters)),
		Price:      dec.number("price", it.Price),
		CreatedAt:  dec.time("created_at", it.CreatedAt),
		UpdatedAt:  dec.time("updated_at", it.UpdatedAt),
	}
	for _, p := range it.Parameters {
		t.Parameters = append(t.Parameters, entities.TestParameter{
			ID:          p.ID,
			TestTypeID:  it.ID,
			Name:        p.Name,
			NormalRange: p.NormalRange,
			Unit:        p.Unit,
		})
	}
	return t, dec.err
}
