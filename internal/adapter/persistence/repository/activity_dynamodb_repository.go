package repository

import (
	"context"
	"errors"
	"time"

	"github.com/henriquewc/sistema-atividades/internal/domain/entities"
	"github.com/henriquewc/sistema-atividades/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultActivitiesTableName = "activities"

type activityItem struct {
	ID                   string `dynamodbav:"id"`
	Nome                 string `dynamodbav:"nome"`
	TipoServico          string `dynamodbav:"tipo_servico"`
	ClienteID            string `dynamodbav:"cliente_id"`
	DataVencimento       string `dynamodbav:"data_vencimento"`
	Observacoes          string `dynamodbav:"observacoes,omitempty"`
	Responsavel          string `dynamodbav:"responsavel,omitempty"`
	TipoRecorrencia      string `dynamodbav:"tipo_recorrencia"`
	IntervaloRecorrencia int    `dynamodbav:"intervalo_recorrencia"`
	Status               string `dynamodbav:"status"`
	Concluida            bool   `dynamodbav:"concluida"`
	DataConclusao        string `dynamodbav:"data_conclusao,omitempty"`
	CreatedAt            string `dynamodbav:"created_at"`
}

// ActivityDynamoRepository persists Activity entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// UpdateStatus carries the lazy reconciliation write-back; Complete flips the
// one-way completion flag together with status and completion date.

type ActivityDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IActivityRepository = (*ActivityDynamoRepository)(nil)

func NewActivityDynamoRepository(ddb *dynamodb.Client) *ActivityDynamoRepository {
	return &ActivityDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ACTIVITIES_TABLE", defaultActivitiesTableName),
	}
}

func (r *ActivityDynamoRepository) Create(ctx context.Context, a entities.Activity) (entities.Activity, error) {
	it := toActivityItem(a)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Activity{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Activity{}, err
	}
	return a, nil
}

func (r *ActivityDynamoRepository) GetByID(ctx context.Context, id string) (entities.Activity, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Activity{}, err
	}
	if len(out.Item) == 0 {
		return entities.Activity{}, nil
	}

	var it activityItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Activity{}, err
	}
	return fromActivityItem(it), nil
}

func (r *ActivityDynamoRepository) List(ctx context.Context) ([]entities.Activity, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}
	return unmarshalActivities(out.Items)
}

func (r *ActivityDynamoRepository) ListByClienteID(ctx context.Context, clienteID string) ([]entities.Activity, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("cliente_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: clienteID},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalActivities(out.Items)
}

func (r *ActivityDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.ActivityStatus) (entities.Activity, error) {
	return r.update(ctx, id, func() (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status"
		vals := map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		}
		names := map[string]string{
			"#status": "status",
		}
		return expr, vals, names
	})
}

func (r *ActivityDynamoRepository) Complete(ctx context.Context, id string, dataConclusao time.Time) (entities.Activity, error) {
	return r.update(ctx, id, func() (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #concluida = :concluida, #data_conclusao = :data_conclusao"
		vals := map[string]types.AttributeValue{
			":status":         &types.AttributeValueMemberS{Value: string(entities.ActivityStatusConcluida)},
			":concluida":      &types.AttributeValueMemberBOOL{Value: true},
			":data_conclusao": &types.AttributeValueMemberS{Value: dataConclusao.UTC().Format(time.RFC3339Nano)},
		}
		names := map[string]string{
			"#status":         "status",
			"#concluida":      "concluida",
			"#data_conclusao": "data_conclusao",
		}
		return expr, vals, names
	})
}

func (r *ActivityDynamoRepository) update(
	ctx context.Context,
	id string,
	build func() (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Activity, error) {
	updateExpr, values, names := build()

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Activity{}, nil
		}
		return entities.Activity{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Activity{}, nil
	}
	var it activityItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Activity{}, err
	}
	return fromActivityItem(it), nil
}

func unmarshalActivities(raw []map[string]types.AttributeValue) ([]entities.Activity, error) {
	items := make([]entities.Activity, 0, len(raw))
	for _, r := range raw {
		var it activityItem
		if err := attributevalue.UnmarshalMap(r, &it); err != nil {
			return nil, err
		}
		items = append(items, fromActivityItem(it))
	}
	return items, nil
}

func toActivityItem(a entities.Activity) activityItem {
	it := activityItem{
		ID:                   a.ID,
		Nome:                 a.Nome,
		TipoServico:          string(a.TipoServico),
		ClienteID:            a.ClienteID,
		DataVencimento:       a.DataVencimento.UTC().Format(time.RFC3339Nano),
		Observacoes:          a.Observacoes,
		Responsavel:          a.Responsavel,
		TipoRecorrencia:      string(a.TipoRecorrencia),
		IntervaloRecorrencia: a.IntervaloRecorrencia,
		Status:               string(a.Status),
		Concluida:            a.Concluida,
		CreatedAt:            a.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if a.DataConclusao != nil {
		it.DataConclusao = a.DataConclusao.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromActivityItem(it activityItem) entities.Activity {
	dataVencimento, _ := time.Parse(time.RFC3339Nano, it.DataVencimento)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	a := entities.Activity{
		ID:                   it.ID,
		Nome:                 it.Nome,
		TipoServico:          entities.TipoServico(it.TipoServico),
		ClienteID:            it.ClienteID,
		DataVencimento:       dataVencimento,
		Observacoes:          it.Observacoes,
		Responsavel:          it.Responsavel,
		TipoRecorrencia:      entities.TipoRecorrencia(it.TipoRecorrencia),
		IntervaloRecorrencia: it.IntervaloRecorrencia,
		Status:               entities.ActivityStatus(it.Status),
		Concluida:            it.Concluida,
		CreatedAt:            createdAt,
	}
	if it.DataConclusao != "" {
		if dt, err := time.Parse(time.RFC3339Nano, it.DataConclusao); err == nil {
			a.DataConclusao = &dt
		}
	}
	return a
}
