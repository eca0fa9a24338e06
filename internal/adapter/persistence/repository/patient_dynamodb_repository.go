package repository

import (
	"context"
	"sort"

	"lab_management/internal/domain/entities"
	"lab_management/internal/infrastructure/database"
	"lab_management/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type patientItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Age       int    `dynamodbav:"age"`
	Gender    string `dynamodbav:"gender,omitempty"`
	Phone     string `dynamodbav:"phone,omitempty"`
	Email     string `dynamodbav:"email,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// PatientDynamoRepository persists registered patients (PK: id).
type PatientDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPatientRepository = (*PatientDynamoRepository)(nil)

func NewPatientDynamoRepository(ddb *dynamodb.Client, tables database.Tables) *PatientDynamoRepository {
	return &PatientDynamoRepository{ddb: ddb, tableName: tables.Patients}
}

func (r *PatientDynamoRepository) Create(ctx context.Context, p entities.Patient) (entities.Patient, error) {
	if err := r.put(ctx, p, "attribute_not_exists(#id)"); err != nil {
		return entities.Patient{}, err
	}
	return p, nil
}

func (r *PatientDynamoRepository) GetByID(ctx context.Context, id string) (entities.Patient, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Patient{}, err
	}
	if len(out.Item) == 0 {
		return entities.Patient{}, nil
	}
	var it patientItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Patient{}, err
	}
	return fromPatientItem(it)
}

func (r *PatientDynamoRepository) Update(ctx context.Context, p entities.Patient) (entities.Patient, error) {
	if err := r.put(ctx, p, "attribute_exists(#id)"); err != nil {
		if isConditionFailed(err) {
			return entities.Patient{}, nil
		}
		return entities.Patient{}, err
	}
	return p, nil
}

func (r *PatientDynamoRepository) List(ctx context.Context) ([]entities.Patient, error) {
	var raw []patientItem
	if err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)}, &raw); err != nil {
		return nil, err
	}
	out := make([]entities.Patient, 0, len(raw))
	for _, it := range raw {
		p, err := fromPatientItem(it)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *PatientDynamoRepository) put(ctx context.Context, p entities.Patient, condition string) error {
	av, err := attributevalue.MarshalMap(patientItem{
		ID:        p.ID,
		Name:      p.Name,
		Age:       p.Age,
		Gender:    string(p.Gender),
		Phone:     p.Phone,
		Email:     p.Email,
		CreatedAt: formatTime(p.CreatedAt),
		UpdatedAt: formatTime(p.UpdatedAt),
	})
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String(condition),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	return err
}

func fromPatientItem(it patientItem) (entities.Patient, error) {
	dec := newItemDecoder("patients", it.ID)
	p := entities.Patient{
		ID:        it.ID,
		Name:      it.Name,
		Age:       it.Age,
		Gender:    entities.Gender(it.Gender),
		Phone:     it.Phone,
		Email:     it.Email,
		CreatedAt: dec.time("created_at", it.CreatedAt),
		UpdatedAt: dec.time("updated_at", it.UpdatedAt),
	}
	return p, dec.err
}
