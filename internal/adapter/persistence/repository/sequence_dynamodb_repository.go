package repository

import (
	"context"
	"fmt"

	"lab_management/internal/domain/entities"
	"lab_management/internal/infrastructure/database"
	"lab_management/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type sequenceItem struct {
	Name    string `dynamodbav:"name"`
	Prefix  string `dynamodbav:"prefix"`
	Padding int    `dynamodbav:"padding"`
	Last    int64  `dynamodbav:"last"`
}

// SequenceDynamoRepository issues result numbers from an atomic counter
// item per sequence (PK: name).
type SequenceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISequenceGenerator = (*SequenceDynamoRepository)(nil)

func NewSequenceDynamoRepository(ddb *dynamodb.Client, tables database.Tables) *SequenceDynamoRepository {
	return &SequenceDynamoRepository{ddb: ddb, tableName: tables.Sequences}
}

// Configure creates the counter if it does not exist yet. An existing
// counter keeps its value, prefix and padding.
func (r *SequenceDynamoRepository) Configure(ctx context.Context, seq entities.Sequence) error {
	av, err := attributevalue.MarshalMap(sequenceItem{Name: seq.Name, Prefix: seq.Prefix, Padding: seq.Padding, Last: seq.Last})
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#name)"),
		ExpressionAttributeNames: map[string]string{"#name": "name"},
	})
	if err != nil && !isConditionFailed(err) {
		return fmt.Errorf("configure sequence %q: %w", seq.Name, err)
	}
	return nil
}

// Next increments the counter and formats the new value. Numbers are never
// reused, even when the caller later fails to store its result.
func (r *SequenceDynamoRepository) Next(ctx context.Context, name string) (string, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 stringKey("name", name),
		UpdateExpression:    aws.String("ADD #last :one"),
		ConditionExpression: aws.String("attribute_exists(#name)"),
		ExpressionAttributeNames: map[string]string{
			"#last": "last",
			"#name": "name",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return "", fmt.Errorf("%q: %w", name, interfaces.ErrSequenceNotConfigured)
		}
		return "", err
	}

	var it sequenceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return "", err
	}
	seq := entities.Sequence{Name: it.Name, Prefix: it.Prefix, Padding: it.Padding, Last: it.Last}
	return seq.Format(seq.Last), nil
}
