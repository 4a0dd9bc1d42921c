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

const (
	defaultPagamentosTableName = "proposta_pagamentos"
	pagamentosPropostaIDIndex  = "proposta_id-index"
)

type propostaPagamentoItem struct {
	ID                 string                 `dynamodbav:"id"`
	PropostaID         string                 `dynamodbav:"proposta_id"`
	Date               string                 `dynamodbav:"date"`
	Status             string                 `dynamodbav:"status"`
	ProviderPayload    map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string                 `dynamodbav:"provider_payload_raw,omitempty"`
}

// PropostaPagamentoDynamoRepository persists down payments in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: proposta_id-index (PK: proposta_id)

type PropostaPagamentoDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPropostaPagamentoRepository = (*PropostaPagamentoDynamoRepository)(nil)

func NewPropostaPagamentoDynamoRepository(ddb *dynamodb.Client) *PropostaPagamentoDynamoRepository {
	return &PropostaPagamentoDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAGAMENTOS_TABLE", defaultPagamentosTableName),
	}
}

func (r *PropostaPagamentoDynamoRepository) Create(ctx context.Context, p entities.PropostaPagamento) (entities.PropostaPagamento, error) {
	it := toPropostaPagamentoItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.PropostaPagamento{}, err
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
		return entities.PropostaPagamento{}, err
	}
	return p, nil
}

func (r *PropostaPagamentoDynamoRepository) GetByID(ctx context.Context, id string) (entities.PropostaPagamento, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PropostaPagamento{}, err
	}
	if len(out.Item) == 0 {
		return entities.PropostaPagamento{}, nil
	}

	var it propostaPagamentoItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PropostaPagamento{}, err
	}
	return fromPropostaPagamentoItem(it), nil
}

func (r *PropostaPagamentoDynamoRepository) ListByPropostaID(ctx context.Context, propostaID string) ([]entities.PropostaPagamento, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(pagamentosPropostaIDIndex),
		KeyConditionExpression: aws.String("proposta_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: propostaID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.PropostaPagamento, 0, len(out.Items))
	for _, raw := range out.Items {
		var it propostaPagamentoItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPropostaPagamentoItem(it))
	}
	return items, nil
}

func toPropostaPagamentoItem(p entities.PropostaPagamento) propostaPagamentoItem {
	return propostaPagamentoItem{
		ID:                 p.ID,
		PropostaID:         p.PropostaID,
		Date:               p.Date.UTC().Format(time.RFC3339Nano),
		Status:             string(p.Status),
		ProviderPayload:    p.ProviderPayload,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromPropostaPagamentoItem(it propostaPagamentoItem) entities.PropostaPagamento {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	return entities.PropostaPagamento{
		ID:                 it.ID,
		PropostaID:         it.PropostaID,
		Date:               dt,
		Status:             entities.PagamentoStatus(it.Status),
		ProviderPayload:    it.ProviderPayload,
		ProviderPayloadRaw: []byte(it.ProviderPayloadRaw),
	}
}
