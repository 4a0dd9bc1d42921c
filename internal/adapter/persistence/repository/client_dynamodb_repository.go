package repository

import (
	"context"
	"time"

	"github.com/henriquewc/sistema-atividades/internal/domain/entities"
	"github.com/henriquewc/sistema-atividades/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultClientsTableName = "clients"

type clientItem struct {
	ID                  string `dynamodbav:"id"`
	NomeCompleto        string `dynamodbav:"nome_completo"`
	Documento           string `dynamodbav:"documento"`
	Endereco            string `dynamodbav:"endereco"`
	Celular             string `dynamodbav:"celular"`
	NumeroContrato      string `dynamodbav:"numero_contrato"`
	LoginConcessionaria string `dynamodbav:"login_concessionaria"`
	SenhaConcessionaria string `dynamodbav:"senha_concessionaria"`
	Ativo               bool   `dynamodbav:"ativo"`
	CreatedAt           string `dynamodbav:"created_at"`
}

// ClientDynamoRepository persists Client entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Documento uniqueness is enforced by the use case via GetByDocumento; the
// table stays small (internal tool), so the lookup scans with a filter.

type ClientDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IClientRepository = (*ClientDynamoRepository)(nil)

func NewClientDynamoRepository(ddb *dynamodb.Client) *ClientDynamoRepository {
	return &ClientDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CLIENTS_TABLE", defaultClientsTableName),
	}
}

func (r *ClientDynamoRepository) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	it := toClientItem(c)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Client{}, err
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
		return entities.Client{}, err
	}
	return c, nil
}

func (r *ClientDynamoRepository) GetByID(ctx context.Context, id string) (entities.Client, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Client{}, err
	}
	if len(out.Item) == 0 {
		return entities.Client{}, nil
	}

	var it clientItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Client{}, err
	}
	return fromClientItem(it), nil
}

func (r *ClientDynamoRepository) GetByDocumento(ctx context.Context, documento string) (entities.Client, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("documento = :documento"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":documento": &types.AttributeValueMemberS{Value: documento},
		},
	})
	if err != nil {
		return entities.Client{}, err
	}
	if len(out.Items) == 0 {
		return entities.Client{}, nil
	}

	var it clientItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Client{}, err
	}
	return fromClientItem(it), nil
}

func (r *ClientDynamoRepository) List(ctx context.Context) ([]entities.Client, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Client, 0, len(out.Items))
	for _, raw := range out.Items {
		var it clientItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromClientItem(it))
	}
	return items, nil
}

func (r *ClientDynamoRepository) Update(ctx context.Context, c entities.Client) (entities.Client, error) {
	it := toClientItem(c)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Client{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Client{}, err
	}
	return c, nil
}

func toClientItem(c entities.Client) clientItem {
	return clientItem{
		ID:                  c.ID,
		NomeCompleto:        c.NomeCompleto,
		Documento:           c.Documento,
		Endereco:            c.Endereco,
		Celular:             c.Celular,
		NumeroContrato:      c.NumeroContrato,
		LoginConcessionaria: c.LoginConcessionaria,
		SenhaConcessionaria: c.SenhaConcessionaria,
		Ativo:               c.Ativo,
		CreatedAt:           c.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromClientItem(it clientItem) entities.Client {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Client{
		ID:                  it.ID,
		NomeCompleto:        it.NomeCompleto,
		Documento:           it.Documento,
		Endereco:            it.Endereco,
		Celular:             it.Celular,
		NumeroContrato:      it.NumeroContrato,
		LoginConcessionaria: it.LoginConcessionaria,
		SenhaConcessionaria: it.SenhaConcessionaria,
		Ativo:               it.Ativo,
		CreatedAt:           createdAt,
	}
}
