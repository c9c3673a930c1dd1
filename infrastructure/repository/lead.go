package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/business-pulse-api/infrastructure/database/postgres"
)

const (
	leadsTable    = "leads l"
	contactsTable = "contacts c"
)

// Estágios terminais do funil: leads nesses estágios não contam como ativos
var terminalStages = []string{"won", "lost"}

// LeadRepository fornece os agregados do funil comercial consumidos pelo
// coletor de pipeline. Todas as consultas são por workspace.
type LeadRepository interface {
	CountByStage(workspaceID string) (map[string]int, error)
	CountByTemperature(workspaceID string) (map[string]int, error)
	CountCreatedSince(workspaceID string, since time.Time) (int, error)
	StaleSummary(workspaceID string, inactiveSince time.Time) (int, float64, error)
	SumOpenValue(workspaceID string) (float64, error)
	CountContacts(workspaceID string) (int, error)
}

type leadRepository struct {
	conn *postgres.Connection
}

func NewLeadRepository(conn *postgres.Connection) LeadRepository {
	return &leadRepository{
		conn: conn,
	}
}

func (r *leadRepository) CountByStage(workspaceID string) (map[string]int, error) {
	query, args, err := squirrel.
		Select("l.stage, COUNT(*)").
		From(leadsTable).
		Where(squirrel.Eq{"l.workspace_id": workspaceID}).
		GroupBy("l.stage").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.scanBreakdown(query, args)
}

func (r *leadRepository) CountByTemperature(workspaceID string) (map[string]int, error) {
	query, args, err := squirrel.
		Select("l.temperature, COUNT(*)").
		From(leadsTable).
		Where(squirrel.Eq{"l.workspace_id": workspaceID}).
		Where(squirrel.NotEq{"l.stage": terminalStages}).
		GroupBy("l.temperature").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.scanBreakdown(query, args)
}

func (r *leadRepository) CountCreatedSince(workspaceID string, since time.Time) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(leadsTable).
		Where(squirrel.Eq{"l.workspace_id": workspaceID}).
		Where(squirrel.GtOrEq{"l.created_at": since}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao escanear contagem de leads: %w", err)
	}

	return count, nil
}

// StaleSummary retorna a quantidade e o valor somado dos leads sem atividade
// desde inactiveSince que ainda estão em estágio não-terminal.
func (r *leadRepository) StaleSummary(workspaceID string, inactiveSince time.Time) (int, float64, error) {
	query, args, err := squirrel.
		Select("COUNT(*), COALESCE(SUM(l.value), 0)").
		From(leadsTable).
		Where(squirrel.Eq{"l.workspace_id": workspaceID}).
		Where(squirrel.NotEq{"l.stage": terminalStages}).
		Where(squirrel.Lt{"l.last_activity_at": inactiveSince}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var (
		count int
		value float64
	)
	if err := r.conn.QueryRow(query, args...).Scan(&count, &value); err != nil {
		return 0, 0, fmt.Errorf("erro ao escanear resumo de leads parados: %w", err)
	}

	return count, value, nil
}

func (r *leadRepository) SumOpenValue(workspaceID string) (float64, error) {
	query, args, err := squirrel.
		Select("COALESCE(SUM(l.value), 0)").
		From(leadsTable).
		Where(squirrel.Eq{"l.workspace_id": workspaceID}).
		Where(squirrel.NotEq{"l.stage": terminalStages}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var value float64
	if err := r.conn.QueryRow(query, args...).Scan(&value); err != nil {
		return 0, fmt.Errorf("erro ao escanear valor do pipeline: %w", err)
	}

	return value, nil
}

func (r *leadRepository) CountContacts(workspaceID string) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(contactsTable).
		Where(squirrel.Eq{"c.workspace_id": workspaceID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao escanear contagem de contatos: %w", err)
	}

	return count, nil
}

func (r *leadRepository) scanBreakdown(query string, args []interface{}) (map[string]int, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	breakdown := make(map[string]int)
	for rows.Next() {
		var (
			key   string
			count int
		)
		if err := rows.Scan(&key, &count); err != nil {
			return nil, fmt.Errorf("erro ao escanear breakdown de leads: %w", err)
		}
		breakdown[key] = count
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return breakdown, nil
}
