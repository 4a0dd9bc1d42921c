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

const defaultPropostasTableName = "propostas"

type propostaItem struct {
	ID string `dynamodbav:"id"`

	NomeCliente     string `dynamodbav:"nome_cliente"`
	EmailCliente    string `dynamodbav:"email_cliente"`
	TelefoneCliente string `dynamodbav:"telefone_cliente"`
	TitularCliente  string `dynamodbav:"titular_cliente"`
	NumeroContrato  string `dynamodbav:"numero_contrato"`
	EnderecoCliente string `dynamodbav:"endereco_cliente,omitempty"`

	PotenciaID     string `dynamodbav:"potencia_id"`
	TipoTelhado    string `dynamodbav:"tipo_telhado"`
	DiasInstalacao int    `dynamodbav:"dias_instalacao"`

	CidadeID            string `dynamodbav:"cidade_id"`
	MargemID            string `dynamodbav:"margem_id"`
	CondicaoPagamentoID string `dynamodbav:"condicao_pagamento_id"`

	ValorSistema    int64 `dynamodbav:"valor_sistema"`
	MaterialAC      int64 `dynamodbav:"material_ac"`
	MaoObra         int64 `dynamodbav:"mao_obra"`
	Deslocamento    int64 `dynamodbav:"deslocamento"`
	ValorProjeto    int64 `dynamodbav:"valor_projeto"`
	Subtotal        int64 `dynamodbav:"subtotal"`
	ValorMargem     int64 `dynamodbav:"valor_margem"`
	TotalSemImposto int64 `dynamodbav:"total_sem_imposto"`
	ValorImposto    int64 `dynamodbav:"valor_imposto"`
	TotalFinal      int64 `dynamodbav:"total_final"`

	ValorFinalPersonalizado *int64 `dynamodbav:"valor_final_personalizado,omitempty"`
	MargemRealObtida        int64  `dynamodbav:"margem_real_obtida"`
	ValorPorWp              int64  `dynamodbav:"valor_por_wp"`

	DataVistoria        string `dynamodbav:"data_vistoria,omitempty"`
	ObservacoesTecnicas string `dynamodbav:"observacoes_tecnicas,omitempty"`

	Status    string `dynamodbav:"status"`
	CreatedAt string `dynamodbav:"created_at"`
}

// PropostaDynamoRepository persists Proposta entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type PropostaDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPropostaRepository = (*PropostaDynamoRepository)(nil)

func NewPropostaDynamoRepository(ddb *dynamodb.Client) *PropostaDynamoRepository {
	return &PropostaDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROPOSTAS_TABLE", defaultPropostasTableName),
	}
}

func (r *PropostaDynamoRepository) Create(ctx context.Context, p entities.Proposta) (entities.Proposta, error) {
	it := toPropostaItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Proposta{}, err
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
		return entities.Proposta{}, err
	}
	return p, nil
}

func (r *PropostaDynamoRepository) GetByID(ctx context.Context, id string) (entities.Proposta, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Proposta{}, err
	}
	if len(out.Item) == 0 {
		return entities.Proposta{}, nil
	}

	var it propostaItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Proposta{}, err
	}
	return fromPropostaItem(it), nil
}

func (r *PropostaDynamoRepository) List(ctx context.Context) ([]entities.Proposta, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Proposta, 0, len(out.Items))
	for _, raw := range out.Items {
		var it propostaItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPropostaItem(it))
	}
	return items, nil
}

func (r *PropostaDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.PropostaStatus) (entities.Proposta, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Proposta{}, nil
		}
		return entities.Proposta{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Proposta{}, nil
	}

	var it propostaItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Proposta{}, err
	}
	return fromPropostaItem(it), nil
}

func toPropostaItem(p entities.Proposta) propostaItem {
	it := propostaItem{
		ID:                      p.ID,
		NomeCliente:             p.NomeCliente,
		EmailCliente:            p.EmailCliente,
		TelefoneCliente:         p.TelefoneCliente,
		TitularCliente:          p.TitularCliente,
		NumeroContrato:          p.NumeroContrato,
		EnderecoCliente:         p.EnderecoCliente,
		PotenciaID:              p.PotenciaID,
		TipoTelhado:             string(p.TipoTelhado),
		DiasInstalacao:          p.DiasInstalacao,
		CidadeID:                p.CidadeID,
		MargemID:                p.MargemID,
		CondicaoPagamentoID:     p.CondicaoPagamentoID,
		ValorSistema:            p.ValorSistema,
		MaterialAC:              p.MaterialAC,
		MaoObra:                 p.MaoObra,
		Deslocamento:            p.Deslocamento,
		ValorProjeto:            p.ValorProjeto,
		Subtotal:                p.Subtotal,
		ValorMargem:             p.ValorMargem,
		TotalSemImposto:         p.TotalSemImposto,
		ValorImposto:            p.ValorImposto,
		TotalFinal:              p.TotalFinal,
		ValorFinalPersonalizado: p.ValorFinalPersonalizado,
		MargemRealObtida:        p.MargemRealObtida,
		ValorPorWp:              p.ValorPorWp,
		ObservacoesTecnicas:     p.ObservacoesTecnicas,
		Status:                  string(p.Status),
		CreatedAt:               p.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if p.DataVistoria != nil {
		it.DataVistoria = p.DataVistoria.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromPropostaItem(it propostaItem) entities.Proposta {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	p := entities.Proposta{
		ID:                      it.ID,
		NomeCliente:             it.NomeCliente,
		EmailCliente:            it.EmailCliente,
		TelefoneCliente:         it.TelefoneCliente,
		TitularCliente:          it.TitularCliente,
		NumeroContrato:          it.NumeroContrato,
		EnderecoCliente:         it.EnderecoCliente,
		PotenciaID:              it.PotenciaID,
		TipoTelhado:             entities.TipoTelhado(it.TipoTelhado),
		DiasInstalacao:          it.DiasInstalacao,
		CidadeID:                it.CidadeID,
		MargemID:                it.MargemID,
		CondicaoPagamentoID:     it.CondicaoPagamentoID,
		ValorSistema:            it.ValorSistema,
		MaterialAC:              it.MaterialAC,
		MaoObra:                 it.MaoObra,
		Deslocamento:            it.Deslocamento,
		ValorProjeto:            it.ValorProjeto,
		Subtotal:                it.Subtotal,
		ValorMargem:             it.ValorMargem,
		TotalSemImposto:         it.TotalSemImposto,
		ValorImposto:            it.ValorImposto,
		TotalFinal:              it.TotalFinal,
		ValorFinalPersonalizado: it.ValorFinalPersonalizado,
		MargemRealObtida:        it.MargemRealObtida,
		ValorPorWp:              it.ValorPorWp,
		ObservacoesTecnicas:     it.ObservacoesTecnicas,
		Status:                  entities.PropostaStatus(it.Status),
		CreatedAt:               createdAt,
	}
	if it.DataVistoria != "" {
		if dv, err := time.Parse(time.RFC3339Nano, it.DataVistoria); err == nil {
			p.DataVistoria = &dv
		}
	}
	return p
}
