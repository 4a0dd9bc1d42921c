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

// Reference-table repositories (potencias, cidades, margens, condicoes de
// pagamento). All four share the same storage model:
//   - PK: id (string)
// Tables are tiny, so listing scans.

const (
	defaultPotenciasTableName = "potencias"
	defaultCidadesTableName   = "cidades"
	defaultMargensTableName   = "margens"
	defaultCondicoesTableName = "condicoes_pagamento"
)

type potenciaItem struct {
	ID                    string `dynamodbav:"id"`
	Potencia              string `dynamodbav:"potencia"`
	MaterialAC            int64  `dynamodbav:"material_ac"`
	DescricaoEquipamentos string `dynamodbav:"descricao_equipamentos"`
	PrecoCeramica         int64  `dynamodbav:"preco_ceramica"`
	PrecoFibrocimento     int64  `dynamodbav:"preco_fibrocimento"`
	PrecoLaje             int64  `dynamodbav:"preco_laje"`
	PrecoSolo             int64  `dynamodbav:"preco_solo"`
	PrecoMetalico         int64  `dynamodbav:"preco_metalico"`
	EstimativaGeracao     int64  `dynamodbav:"estimativa_geracao"`
	ValorEconomia         int64  `dynamodbav:"valor_economia"`
	Ativo                 bool   `dynamodbav:"ativo"`
	CreatedAt             string `dynamodbav:"created_at"`
}

type cidadeItem struct {
	ID            string `dynamodbav:"id"`
	Nome          string `dynamodbav:"nome"`
	CustoExtraDia int64  `dynamodbav:"custo_extra_dia"`
	Ativo         bool   `dynamodbav:"ativo"`
	CreatedAt     string `dynamodbav:"created_at"`
}

type margemItem struct {
	ID         string `dynamodbav:"id"`
	Descricao  string `dynamodbav:"descricao"`
	Percentual int64  `dynamodbav:"percentual"`
	Ativo      bool   `dynamodbav:"ativo"`
	CreatedAt  string `dynamodbav:"created_at"`
}

type condicaoPagamentoItem struct {
	ID        string `dynamodbav:"id"`
	Condicao  string `dynamodbav:"condicao"`
	Ativo     bool   `dynamodbav:"ativo"`
	CreatedAt string `dynamodbav:"created_at"`
}

type PotenciaDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPotenciaRepository = (*PotenciaDynamoRepository)(nil)

func NewPotenciaDynamoRepository(ddb *dynamodb.Client) *PotenciaDynamoRepository {
	return &PotenciaDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("POTENCIAS_TABLE", defaultPotenciasTableName),
	}
}

func (r *PotenciaDynamoRepository) Create(ctx context.Context, p entities.Potencia) (entities.Potencia, error) {
	if err := putNewItem(ctx, r.ddb, r.tableName, toPotenciaItem(p)); err != nil {
		return entities.Potencia{}, err
	}
	return p, nil
}

func (r *PotenciaDynamoRepository) GetByID(ctx context.Context, id string) (entities.Potencia, error) {
	var it potenciaItem
	found, err := getItemByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Potencia{}, err
	}
	return fromPotenciaItem(it), nil
}

func (r *PotenciaDynamoRepository) List(ctx context.Context) ([]entities.Potencia, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	items := make([]entities.Potencia, 0, len(out.Items))
	for _, raw := range out.Items {
		var it potenciaItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPotenciaItem(it))
	}
	return items, nil
}

type CidadeDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICidadeRepository = (*CidadeDynamoRepository)(nil)

func NewCidadeDynamoRepository(ddb *dynamodb.Client) *CidadeDynamoRepository {
	return &CidadeDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CIDADES_TABLE", defaultCidadesTableName),
	}
}

func (r *CidadeDynamoRepository) Create(ctx context.Context, c entities.Cidade) (entities.Cidade, error) {
	if err := putNewItem(ctx, r.ddb, r.tableName, toCidadeItem(c)); err != nil {
		return entities.Cidade{}, err
	}
	return c, nil
}

func (r *CidadeDynamoRepository) GetByID(ctx context.Context, id string) (entities.Cidade, error) {
	var it cidadeItem
	found, err := getItemByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Cidade{}, err
	}
	return fromCidadeItem(it), nil
}

func (r *CidadeDynamoRepository) GetByNome(ctx context.Context, nome string) (entities.Cidade, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("nome = :nome"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":nome": &types.AttributeValueMemberS{Value: nome},
		},
	})
	if err != nil {
		return entities.Cidade{}, err
	}
	if len(out.Items) == 0 {
		return entities.Cidade{}, nil
	}
	var it cidadeItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Cidade{}, err
	}
	return fromCidadeItem(it), nil
}

func (r *CidadeDynamoRepository) List(ctx context.Context) ([]entities.Cidade, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	items := make([]entities.Cidade, 0, len(out.Items))
	for _, raw := range out.Items {
		var it cidadeItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromCidadeItem(it))
	}
	return items, nil
}

type MargemDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMargemRepository = (*MargemDynamoRepository)(nil)

func NewMargemDynamoRepository(ddb *dynamodb.Client) *MargemDynamoRepository {
	return &MargemDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MARGENS_TABLE", defaultMargensTableName),
	}
}

func (r *MargemDynamoRepository) Create(ctx context.Context, m entities.Margem) (entities.Margem, error) {
	if err := putNewItem(ctx, r.ddb, r.tableName, toMargemItem(m)); err != nil {
		return entities.Margem{}, err
	}
	return m, nil
}

func (r *MargemDynamoRepository) GetByID(ctx context.Context, id string) (entities.Margem, error) {
	var it margemItem
	found, err := getItemByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Margem{}, err
	}
	return fromMargemItem(it), nil
}

func (r *MargemDynamoRepository) List(ctx context.Context) ([]entities.Margem, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	items := make([]entities.Margem, 0, len(out.Items))
	for _, raw := range out.Items {
		var it margemItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromMargemItem(it))
	}
	return items, nil
}

type CondicaoPagamentoDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICondicaoPagamentoRepository = (*CondicaoPagamentoDynamoRepository)(nil)

func NewCondicaoPagamentoDynamoRepository(ddb *dynamodb.Client) *CondicaoPagamentoDynamoRepository {
	return &CondicaoPagamentoDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CONDICOES_PAGAMENTO_TABLE", defaultCondicoesTableName),
	}
}

func (r *CondicaoPagamentoDynamoRepository) Create(ctx context.Context, c entities.CondicaoPagamento) (entities.CondicaoPagamento, error) {
	if err := putNewItem(ctx, r.ddb, r.tableName, toCondicaoPagamentoItem(c)); err != nil {
		return entities.CondicaoPagamento{}, err
	}
	return c, nil
}

func (r *CondicaoPagamentoDynamoRepository) GetByID(ctx context.Context, id string) (entities.CondicaoPagamento, error) {
	var it condicaoPagamentoItem
	found, err := getItemByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.CondicaoPagamento{}, err
	}
	return fromCondicaoPagamentoItem(it), nil
}

func (r *CondicaoPagamentoDynamoRepository) List(ctx context.Context) ([]entities.CondicaoPagamento, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	items := make([]entities.CondicaoPagamento, 0, len(out.Items))
	for _, raw := range out.Items {
		var it condicaoPagamentoItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromCondicaoPagamentoItem(it))
	}
	return items, nil
}

func putNewItem(ctx context.Context, ddb *dynamodb.Client, tableName string, item any) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	_, err = ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

func getItemByID(ctx context.Context, ddb *dynamodb.Client, tableName, id string, dest any) (bool, error) {
	out, err := ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	if len(out.Item) == 0 {
		return false, nil
	}
	return true, attributevalue.UnmarshalMap(out.Item, dest)
}

func toPotenciaItem(p entities.Potencia) potenciaItem {
	return potenciaItem{
		ID:                    p.ID,
		Potencia:              p.Potencia,
		MaterialAC:            p.MaterialAC,
		DescricaoEquipamentos: p.DescricaoEquipamentos,
		PrecoCeramica:         p.PrecoCeramica,
		PrecoFibrocimento:     p.PrecoFibrocimento,
		PrecoLaje:             p.PrecoLaje,
		PrecoSolo:             p.PrecoSolo,
		PrecoMetalico:         p.PrecoMetalico,
		EstimativaGeracao:     p.EstimativaGeracao,
		ValorEconomia:         p.ValorEconomia,
		Ativo:                 p.Ativo,
		CreatedAt:             p.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPotenciaItem(it potenciaItem) entities.Potencia {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Potencia{
		ID:                    it.ID,
		Potencia:              it.Potencia,
		MaterialAC:            it.MaterialAC,
		DescricaoEquipamentos: it.DescricaoEquipamentos,
		PrecoCeramica:         it.PrecoCeramica,
		PrecoFibrocimento:     it.PrecoFibrocimento,
		PrecoLaje:             it.PrecoLaje,
		PrecoSolo:             it.PrecoSolo,
		PrecoMetalico:         it.PrecoMetalico,
		EstimativaGeracao:     it.EstimativaGeracao,
		ValorEconomia:         it.ValorEconomia,
		Ativo:                 it.Ativo,
		CreatedAt:             createdAt,
	}
}

func toCidadeItem(c entities.Cidade) cidadeItem {
	return cidadeItem{
		ID:            c.ID,
		Nome:          c.Nome,
		CustoExtraDia: c.CustoExtraDia,
		Ativo:         c.Ativo,
		CreatedAt:     c.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromCidadeItem(it cidadeItem) entities.Cidade {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Cidade{
		ID:            it.ID,
		Nome:          it.Nome,
		CustoExtraDia: it.CustoExtraDia,
		Ativo:         it.Ativo,
		CreatedAt:     createdAt,
	}
}

func toMargemItem(m entities.Margem) margemItem {
	return margemItem{
		ID:         m.ID,
		Descricao:  m.Descricao,
		Percentual: m.Percentual,
		Ativo:      m.Ativo,
		CreatedAt:  m.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromMargemItem(it margemItem) entities.Margem {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Margem{
		ID:         it.ID,
		Descricao:  it.Descricao,
		Percentual: it.Percentual,
		Ativo:      it.Ativo,
		CreatedAt:  createdAt,
	}
}

func toCondicaoPagamentoItem(c entities.CondicaoPagamento) condicaoPagamentoItem {
	return condicaoPagamentoItem{
		ID:        c.ID,
		Condicao:  c.Condicao,
		Ativo:     c.Ativo,
		CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromCondicaoPagamentoItem(it condicaoPagamentoItem) entities.CondicaoPagamento {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.CondicaoPagamento{
		ID:        it.ID,
		Condicao:  it.Condicao,
		Ativo:     it.Ativo,
		CreatedAt: createdAt,
	}
}
