package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/business-pulse-api/infrastructure/database/postgres"
)

const (
	agentsTable    = "agents a"
	agentRunsTable = "agent_runs ar"
)

// AgentRepository fornece as contagens de agentes de automação consumidas
// pelo coletor de operações.
type AgentRepository interface {
	CountActive(workspaceID string) (int, error)
	CountRunsSince(workspaceID string, since time.Time) (int, error)
}

type agentRepository struct {
	conn *postgres.Connection
}

func NewAgentRepository(conn *postgres.Connection) AgentRepository {
	return &agentRepository{
		conn: conn,
	}
}

func (r *agentRepository) CountActive(workspaceID string) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(agentsTable).
		Where(squirrel.Eq{"a.workspace_id": workspaceID, "a.status": "active"}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao escanear contagem de agentes: %w", err)
	}

	return count, nil
}

func (r *agentRepository) CountRunsSince(workspaceID string, since time.Time) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(agentRunsTable).
		Where(squirrel.Eq{"ar.workspace_id": workspaceID}).
		Where(squirrel.GtOrEq{"ar.ran_at": since}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao escanear execuções de agentes: %w", err)
	}

	return count, nil
}
