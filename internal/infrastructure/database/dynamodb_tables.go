package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog/log"
)

const (
	IndexTestTypesByCategory = "category_id-index"
	IndexResultsByPatient    = "patient_id-index"
	IndexPaymentsByResult    = "result_id-index"
)

// Tables holds the DynamoDB table names, all sharing one prefix so several
// environments can live in the same account.
type Tables struct {
	Categories  string
	TestTypes   string
	Patients    string
	Results     string
	ResultLines string
	BillLines   string
	Payments    string
	Sequences   string
}

func NewTables(prefix string) Tables {
	return Tables{
		Categories:  prefix + "test_categories",
		TestTypes:   prefix + "test_types",
		Patients:    prefix + "patients",
		Results:     prefix + "test_results",
		ResultLines: prefix + "result_lines",
		BillLines:   prefix + "bill_lines",
		Payments:    prefix + "payments",
		Sequences:   prefix + "sequences",
	}
}

// Definitions returns the CreateTable input of every table. Result and bill
// lines are keyed by (result_id, id) so one Query loads a result's lines.
func (t Tables) Definitions() []*dynamodb.CreateTableInput {
	byID := func(name string) *dynamodb.CreateTableInput {
		return &dynamodb.CreateTableInput{
			TableName:            aws.String(name),
			BillingMode:          types.BillingModePayPerRequest,
			AttributeDefinitions: []types.AttributeDefinition{stringAttr("id")},
			KeySchema:            []types.KeySchemaElement{hashKey("id")},
		}
	}
	lines := func(name string) *dynamodb.CreateTableInput {
		return &dynamodb.CreateTableInput{
			TableName:            aws.String(name),
			BillingMode:          types.BillingModePayPerRequest,
			AttributeDefinitions: []types.AttributeDefinition{stringAttr("result_id"), stringAttr("id")},
			KeySchema: []types.KeySchemaElement{
				hashKey("result_id"),
				{AttributeName: aws.String("id"), KeyType: types.KeyTypeRange},
			},
		}
	}
	withIndex := func(in *dynamodb.CreateTableInput, index, attr string) *dynamodb.CreateTableInput {
		in.AttributeDefinitions = append(in.AttributeDefinitions, stringAttr(attr))
		in.GlobalSecondaryIndexes = []types.GlobalSecondaryIndex{{
			IndexName:  aws.String(index),
			KeySchema:  []types.KeySchemaElement{hashKey(attr)},
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		}}
		return in
	}

	sequences := byID(t.Sequences)
	sequences.AttributeDefinitions = []types.AttributeDefinition{stringAttr("name")}
	sequences.KeySchema = []types.KeySchemaElement{hashKey("name")}

	return []*dynamodb.CreateTableInput{
		byID(t.Categories),
		withIndex(byID(t.TestTypes), IndexTestTypesByCategory, "category_id"),
		byID(t.Patients),
		withIndex(byID(t.Results), IndexResultsByPatient, "patient_id"),
		lines(t.ResultLines),
		lines(t.BillLines),
		withIndex(byID(t.Payments), IndexPaymentsByResult, "result_id"),
		sequences,
	}
}

// CreateTables creates every missing table and waits until it is active.
// Existing tables are left as they are.
func CreateTables(ctx context.Context, ddb *dynamodb.Client, t Tables) error {
	waiter := dynamodb.NewTableExistsWaiter(ddb)
	for _, def := range t.Definitions() {
		name := aws.ToString(def.TableName)
		_, err := ddb.CreateTable(ctx, def)
		if err != nil {
			var inUse *types.ResourceInUseException
			if errors.As(err, &inUse) {
				log.Info().Str("component", "database").Str("table", name).Msg("table already exists")
				continue
			}
			return fmt.Errorf("create table %s: %w", name, err)
		}
		if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(name)}, 2*time.Minute); err != nil {
			return fmt.Errorf("wait for table %s: %w", name, err)
		}
		log.Info().Str("component", "database").Str("table", name).Msg("table created")
	}
	return nil
}

func stringAttr(name string) types.AttributeDefinition {
	return types.AttributeDefinition{AttributeName: aws.String(name), AttributeType: types.ScalarAttributeTypeS}
}

func hashKey(name string) types.KeySchemaElement {
	return types.KeySchemaElement{AttributeName: aws.String(name), KeyType: types.KeyTypeHash}
}
