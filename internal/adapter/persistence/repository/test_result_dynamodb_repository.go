package repository

import (
	"context"
	"sort"
	"strconv"
	"time"

	"lab_management/internal/domain/entities"
	"lab_management/internal/infrastructure/database"
	"lab_management/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type resultItem struct {
	ID          string   `dynamodbav:"id"`
	ResultNo    string   `dynamodbav:"result_no"`
	ResultDate  string   `dynamodbav:"result_date"`
	PatientID   string   `dynamodbav:"patient_id,omitempty"`
	PatientName string   `dynamodbav:"patient_name"`
	Age         int      `dynamodbav:"age"`
	Gender      string   `dynamodbav:"gender,omitempty"`
	Phone       string   `dynamodbav:"phone,omitempty"`
	Email       string   `dynamodbav:"email,omitempty"`
	TestIDs     []string `dynamodbav:"test_ids"`
	State       string   `dynamodbav:"state"`
	Version     int64    `dynamodbav:"version"`
	CreatedAt   string   `dynamodbav:"created_at"`
	UpdatedAt   string   `dynamodbav:"updated_at"`
}

// Lines carry a position so a result reads them back in the order they were
// added; the sort key (id) is random.
type resultLineItem struct {
	ResultID      string `dynamodbav:"result_id"`
	ID            string `dynamodbav:"id"`
	ParameterID   string `dynamodbav:"parameter_id"`
	TestTypeID    string `dynamodbav:"test_type_id"`
	ParameterName string `dynamodbav:"parameter_name"`
	Value         string `dynamodbav:"value"`
	NormalRange   string `dynamodbav:"normal_range"`
	Unit          string `dynamodbav:"unit"`
	Position      int64  `dynamodbav:"position"`
}

type billLineItem struct {
	ResultID   string `dynamodbav:"result_id"`
	ID         string `dynamodbav:"id"`
	TestTypeID string `dynamodbav:"test_type_id"`
	TestName   string `dynamodbav:"test_name"`
	Amount     string `dynamodbav:"amount"`
	Position   int64  `dynamodbav:"position"`
}

// TestResultDynamoRepository stores a result as a header item plus one item
// per result line and bill line.
//
// Table requirements:
//   - test_results PK: id, GSI patient_id-index (PK: patient_id)
//   - result_lines PK: result_id, SK: id
//   - bill_lines   PK: result_id, SK: id
//
// Every write after creation updates the header on the condition that its
// version is still the one the caller read, and bumps it. Header and line
// changes go through one TransactWriteItems call, so either all of them apply
// or none does.
type TestResultDynamoRepository struct {
	ddb    *dynamodb.Client
	tables database.Tables
}

var _ interfaces.ITestResultRepository = (*TestResultDynamoRepository)(nil)

func NewTestResultDynamoRepository(ddb *dynamodb.Client, tables database.Tables) *TestResultDynamoRepository {
	return &TestResultDynamoRepository{ddb: ddb, tables: tables}
}

func (r *TestResultDynamoRepository) Create(ctx context.Context, res entities.TestResult) (entities.TestResult, error) {
	header, err := attributevalue.MarshalMap(toResultItem(res))
	if err != nil {
		return entities.TestResult{}, err
	}
	items := []types.TransactWriteItem{{
		Put: &types.Put{
			TableName:                aws.String(r.tables.Results),
			Item:                     header,
			ConditionExpression:      aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		},
	}}
	lines, err := r.linePuts(entities.ChildChanges[entities.ResultLine]{Add: res.ResultLines}, entities.ChildChanges[entities.BillLine]{Add: res.BillLines}, time.Now())
	if err != nil {
		return entities.TestResult{}, err
	}
	items = append(items, lines...)

	if err := r.transact(ctx, items); err != nil {
		return entities.TestResult{}, err
	}
	return res, nil
}

func (r *TestResultDynamoRepository) GetByID(ctx context.Context, id string) (entities.TestResult, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tables.Results),
		Key:            stringKey("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.TestResult{}, err
	}
	if len(out.Item) == 0 {
		return entities.TestResult{}, nil
	}
	var it resultItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.TestResult{}, err
	}
	res, err := fromResultItem(it)
	if err != nil {
		return entities.TestResult{}, err
	}
	return r.withLines(ctx, res)
}

func (r *TestResultDynamoRepository) List(ctx context.Context, f entities.ResultFilter) ([]entities.TestResult, error) {
	names := map[string]string{}
	values := map[string]types.AttributeValue{}
	var filter *string
	if f.State != "" {
		filter = aws.String("#state = :state")
		names["#state"] = "state"
		values[":state"] = &types.AttributeValueMemberS{Value: string(f.State)}
	}

	var raw []resultItem
	if f.PatientID != "" {
		names["#pid"] = "patient_id"
		values[":pid"] = &types.AttributeValueMemberS{Value: f.PatientID}
		p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
			TableName:                 aws.String(r.tables.Results),
			IndexName:                 aws.String(database.IndexResultsByPatient),
			KeyConditionExpression:    aws.String("#pid = :pid"),
			FilterExpression:          filter,
			ExpressionAttributeNames:  names,
			ExpressionAttributeValues: values,
		})
		for p.HasMorePages() {
			page, err := p.NextPage(ctx)
			if err != nil {
				return nil, err
			}
			var items []resultItem
			if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
				return nil, err
			}
			raw = append(raw, items...)
		}
	} else {
		in := &dynamodb.ScanInput{TableName: aws.String(r.tables.Results), FilterExpression: filter}
		if filter != nil {
			in.ExpressionAttributeNames = names
			in.ExpressionAttributeValues = values
		}
		if err := scanAll(ctx, r.ddb, in, &raw); err != nil {
			return nil, err
		}
	}

	out := make([]entities.TestResult, 0, len(raw))
	for _, it := range raw {
		res, err := fromResultItem(it)
		if err != nil {
			return nil, err
		}
		res, err = r.withLines(ctx, res)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ResultNo > out[j].ResultNo })
	return out, nil
}

func (r *TestResultDynamoRepository) SaveSelection(ctx context.Context, res entities.TestResult, changes entities.LineChanges) error {
	testIDs, err := attributevalue.Marshal(res.TestIDs)
	if err != nil {
		return err
	}
	items := []types.TransactWriteItem{{
		Update: r.versionedUpdate(res, "#test_ids = :test_ids",
			map[string]string{"#test_ids": "test_ids"},
			map[string]types.AttributeValue{":test_ids": testIDs}),
	}}
	puts, err := r.linePuts(changes.ResultLines, changes.BillLines, time.Now())
	if err != nil {
		return err
	}
	items = append(items, puts...)
	items = append(items, r.lineDeletes(r.tables.ResultLines, res.ID, changes.ResultLines.Remove)...)
	items = append(items, r.lineDeletes(r.tables.BillLines, res.ID, changes.BillLines.Remove)...)

	return r.transact(ctx, items)
}

func (r *TestResultDynamoRepository) UpdateResultValues(ctx context.Context, res entities.TestResult, values map[string]string) error {
	items := []types.TransactWriteItem{{Update: r.versionedUpdate(res, "", nil, nil)}}
	for lineID, v := range values {
		items = append(items, types.TransactWriteItem{
			Update: &types.Update{
				TableName:                aws.String(r.tables.ResultLines),
				Key:                      lineKey(res.ID, lineID),
				UpdateExpression:         aws.String("SET #value = :value"),
				ConditionExpression:      aws.String("attribute_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#value": "value", "#id": "id"},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":value": &types.AttributeValueMemberS{Value: v},
				},
			},
		})
	}
	return r.transact(ctx, items)
}

func (r *TestResultDynamoRepository) UpdateBillLineAmount(ctx context.Context, res entities.TestResult, lineID string, amount float64) error {
	return r.transact(ctx, []types.TransactWriteItem{
		{Update: r.versionedUpdate(res, "", nil, nil)},
		{
			Update: &types.Update{
				TableName:                aws.String(r.tables.BillLines),
				Key:                      lineKey(res.ID, lineID),
				UpdateExpression:         aws.String("SET #amount = :amount"),
				ConditionExpression:      aws.String("attribute_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#amount": "amount", "#id": "id"},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":amount": &types.AttributeValueMemberS{Value: floatToString(amount)},
				},
			},
		},
	})
}

func (r *TestResultDynamoRepository) UpdateDemographics(ctx context.Context, res entities.TestResult, d entities.Demographics) error {
	return r.updateHeader(ctx, res,
		"#patient_name = :name, #age = :age, #gender = :gender, #phone = :phone, #email = :email",
		map[string]string{
			"#patient_name": "patient_name",
			"#age":          "age",
			"#gender":       "gender",
			"#phone":        "phone",
			"#email":        "email",
		},
		map[string]types.AttributeValue{
			":name":   &types.AttributeValueMemberS{Value: d.Name},
			":age":    &types.AttributeValueMemberN{Value: strconv.Itoa(d.Age)},
			":gender": &types.AttributeValueMemberS{Value: string(d.Gender)},
			":phone":  &types.AttributeValueMemberS{Value: d.Phone},
			":email":  &types.AttributeValueMemberS{Value: d.Email},
		})
}

func (r *TestResultDynamoRepository) UpdateState(ctx context.Context, res entities.TestResult, to entities.ResultState) error {
	return r.updateHeader(ctx, res,
		"#state = :to",
		map[string]string{"#state": "state"},
		map[string]types.AttributeValue{
			":to": &types.AttributeValueMemberS{Value: string(to)},
		})
}

// ReferencesTestType reports whether any result still selects the test.
func (r *TestResultDynamoRepository) ReferencesTestType(ctx context.Context, testTypeID string) (bool, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:                aws.String(r.tables.Results),
		FilterExpression:         aws.String("contains(#test_ids, :tid)"),
		ProjectionExpression:     aws.String("#id"),
		ExpressionAttributeNames: map[string]string{"#test_ids": "test_ids", "#id": "id"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid": &types.AttributeValueMemberS{Value: testTypeID},
		},
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return false, err
		}
		if len(page.Items) > 0 {
			return true, nil
		}
	}
	return false, nil
}

// updateHeader applies a header-only update outside a transaction.
func (r *TestResultDynamoRepository) updateHeader(ctx context.Context, res entities.TestResult, set string, names map[string]string, values map[string]types.AttributeValue) error {
	u := r.versionedUpdate(res, set, names, values)
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 u.TableName,
		Key:                       u.Key,
		UpdateExpression:          u.UpdateExpression,
		ConditionExpression:       u.ConditionExpression,
		ExpressionAttributeNames:  u.ExpressionAttributeNames,
		ExpressionAttributeValues: u.ExpressionAttributeValues,
	})
	if err != nil {
		if isConditionFailed(err) {
			return interfaces.ErrConcurrentUpdate
		}
		return err
	}
	return nil
}

// versionedUpdate builds the header update every write goes through. set
// holds extra comma separated assignments. The update only applies while the
// stored version equals res.Version and stores res.Version+1.
func (r *TestResultDynamoRepository) versionedUpdate(res entities.TestResult, set string, names map[string]string, values map[string]types.AttributeValue) *types.Update {
	expr := "SET #version = :next, #updated_at = :updated_at"
	if set != "" {
		expr += ", " + set
	}
	vals := map[string]types.AttributeValue{
		":expected":   &types.AttributeValueMemberN{Value: strconv.FormatInt(res.Version, 10)},
		":next":       &types.AttributeValueMemberN{Value: strconv.FormatInt(res.Version+1, 10)},
		":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
	}
	for k, v := range values {
		vals[k] = v
	}
	return &types.Update{
		TableName:                 aws.String(r.tables.Results),
		Key:                       stringKey("id", res.ID),
		UpdateExpression:          aws.String(expr),
		ConditionExpression:       aws.String("#version = :expected"),
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#version": "version", "#updated_at": "updated_at"}),
		ExpressionAttributeValues: vals,
	}
}

func (r *TestResultDynamoRepository) linePuts(results entities.ChildChanges[entities.ResultLine], bills entities.ChildChanges[entities.BillLine], now time.Time) ([]types.TransactWriteItem, error) {
	base := now.UnixNano()
	items := make([]types.TransactWriteItem, 0, len(results.Add)+len(bills.Add))
	for i, l := range results.Add {
		av, err := attributevalue.MarshalMap(toResultLineItem(l, base+int64(i)))
		if err != nil {
			return nil, err
		}
		items = append(items, newLinePut(r.tables.ResultLines, av))
	}
	for i, l := range bills.Add {
		av, err := attributevalue.MarshalMap(toBillLineItem(l, base+int64(i)))
		if err != nil {
			return nil, err
		}
		items = append(items, newLinePut(r.tables.BillLines, av))
	}
	return items, nil
}

func newLinePut(table string, item map[string]types.AttributeValue) types.TransactWriteItem {
	return types.TransactWriteItem{
		Put: &types.Put{
			TableName:                aws.String(table),
			Item:                     item,
			ConditionExpression:      aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		},
	}
}

// lineDeletes requires every removed line to still exist: a line deleted by
// someone else in between means the caller worked from a stale read.
func (r *TestResultDynamoRepository) lineDeletes(table, resultID string, ids []string) []types.TransactWriteItem {
	items := make([]types.TransactWriteItem, 0, len(ids))
	for _, id := range ids {
		items = append(items, types.TransactWriteItem{
			Delete: &types.Delete{
				TableName:                aws.String(table),
				Key:                      lineKey(resultID, id),
				ConditionExpression:      aws.String("attribute_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			},
		})
	}
	return items
}

func (r *TestResultDynamoRepository) transact(ctx context.Context, items []types.TransactWriteItem) error {
	if len(items) > maxTransactItems {
		return ErrTooManyLines
	}
	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		if isTransactionConditionFailed(err) {
			return interfaces.ErrConcurrentUpdate
		}
		return err
	}
	return nil
}

func (r *TestResultDynamoRepository) withLines(ctx context.Context, res entities.TestResult) (entities.TestResult, error) {
	var resultLines []resultLineItem
	if err := r.queryLines(ctx, r.tables.ResultLines, res.ID, &resultLines); err != nil {
		return entities.TestResult{}, err
	}
	var billLines []billLineItem
	if err := r.queryLines(ctx, r.tables.BillLines, res.ID, &billLines); err != nil {
		return entities.TestResult{}, err
	}

	sort.Slice(resultLines, func(i, j int) bool { return resultLines[i].Position < resultLines[j].Position })
	sort.Slice(billLines, func(i, j int) bool { return billLines[i].Position < billLines[j].Position })

	res.ResultLines = make([]entities.ResultLine, 0, len(resultLines))
	for _, it := range resultLines {
		res.ResultLines = append(res.ResultLines, fromResultLineItem(it))
	}
	res.BillLines = make([]entities.BillLine, 0, len(billLines))
	for _, it := range billLines {
		l, err := fromBillLineItem(it)
		if err != nil {
			return entities.TestResult{}, err
		}
		res.BillLines = append(res.BillLines, l)
	}
	return res, nil
}

func (r *TestResultDynamoRepository) queryLines(ctx context.Context, table, resultID string, out any) error {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(table),
		KeyConditionExpression: aws.String("result_id = :rid"),
		ConsistentRead:         aws.Bool(true),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: resultID},
		},
	})
	var all []map[string]types.AttributeValue
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return err
		}
		all = append(all, page.Items...)
	}
	return attributevalue.UnmarshalListOfMaps(all, out)
}

func toResultItem(res entities.TestResult) resultItem {
	return resultItem{
		ID:          res.ID,
		ResultNo:    res.ResultNo,
		ResultDate:  formatTime(res.ResultDate),
		PatientID:   res.PatientID,
		PatientName: res.Demographics.Name,
		Age:         res.Demographics.Age,
		Gender:      string(res.Demographics.Gender),
		Phone:       res.Demographics.Phone,
		Email:       res.Demographics.Email,
		TestIDs:     res.TestIDs,
		State:       string(res.State),
		Version:     res.Version,
		CreatedAt:   formatTime(res.CreatedAt),
		UpdatedAt:   formatTime(res.UpdatedAt),
	}
}

func fromResultItem(it resultItem) (entities.TestResult, error) {
	dec := newItemDecoder("test_results", it.ID)
	res := entities.TestResult{
		ID:         it.ID,
		ResultNo:   it.ResultNo,
		ResultDate: dec.time("result_date", it.ResultDate),
		PatientID:  it.PatientID,
		Demographics: entities.Demographics{
			Name:   it.PatientName,
			Age:    it.Age,
			Gender: entities.Gender(it.Gender),
			Phone:  it.Phone,
			Email:  it.Email,
		},
		TestIDs:   it.TestIDs,
		State:     entities.ResultState(it.State),
		Version:   it.Version,
		CreatedAt: dec.time("created_at", it.CreatedAt),
		UpdatedAt: dec.time("updated_at", it.UpdatedAt),
	}
	return res, dec.err
}

func toResultLineItem(l entities.ResultLine, position int64) resultLineItem {
	return resultLineItem{
		ResultID:      l.ResultID,
		ID:            l.ID,
		ParameterID:   l.ParameterID,
		TestTypeID:    l.TestTypeID,
		ParameterName: l.ParameterName,
		Value:         l.Value,
		NormalRange:   l.NormalRange,
		Unit:          l.Unit,
		Position:      position,
	}
}

func fromResultLineItem(it resultLineItem) entities.ResultLine {
	return entities.ResultLine{
		ID:            it.ID,
		ResultID:      it.ResultID,
		ParameterID:   it.ParameterID,
		TestTypeID:    it.TestTypeID,
		ParameterName: it.ParameterName,
		Value:         it.Value,
		NormalRange:   it.NormalRange,
		Unit:          it.Unit,
	}
}

func toBillLineItem(l entities.BillLine, position int64) billLineItem {
	return billLineItem{
		ResultID:   l.ResultID,
		ID:         l.ID,
		TestTypeID: l.TestTypeID,
		TestName:   l.TestName,
		Amount:     floatToString(l.Amount),
		Position:   position,
	}
}

func fromBillLineItem(it billLineItem) (entities.BillLine, error) {
	dec := newItemDecoder("bill_lines", it.ID)
	l := entities.BillLine{
		ID:         it.ID,
		ResultID:   it.ResultID,
		TestTypeID: it.TestTypeID,
		TestName:   it.TestName,
		Amount:     dec.number("amount", it.Amount),
	}
	return l, dec.err
}
