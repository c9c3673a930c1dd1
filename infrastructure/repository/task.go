package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/business-pulse-api/infrastructure/database/postgres"
)

const tasksTable = "tasks t"

// Estados de tarefa ainda não concluída
var openTaskStatuses = []string{"open", "in_progress"}

// TaskAggregates agrupa as contagens de tarefas consumidas pelo coletor de
// operações.
type TaskAggregates struct {
	Open           int
	Overdue        int
	CompletedSince int
}

type TaskRepository interface {
	Summary(workspaceID string, reference, completedSince time.Time) (*TaskAggregates, error)
	StatusBreakdown(workspaceID string) (map[string]int, error)
}

type taskRepository struct {
	conn *postgres.Connection
}

func NewTaskRepository(conn *postgres.Connection) TaskRepository {
	return &taskRepository{
		conn: conn,
	}
}

// Summary conta tarefas abertas, atrasadas (vencimento antes da data de
// referência) e concluídas desde a data informada, em uma única consulta.
func (r *taskRepository) Summary(workspaceID string, reference, completedSince time.Time) (*TaskAggregates, error) {
	query, args, err := squirrel.
		Select("t.status, t.due_date, t.completed_at").
		From(tasksTable).
		Where(squirrel.Eq{"t.workspace_id": workspaceID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	summary := &TaskAggregates{}

	for rows.Next() {
		var (
			status      string
			dueDate     *time.Time
			completedAt *time.Time
		)
		if err := rows.Scan(&status, &dueDate, &completedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear tarefa: %w", err)
		}

		switch status {
		case "open", "in_progress":
			summary.Open++
			if dueDate != nil && dueDate.Before(reference) {
				summary.Overdue++
			}
		case "done":
			if completedAt != nil && !completedAt.Before(completedSince) {
				summary.CompletedSince++
			}
		}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return summary, nil
}

func (r *taskRepository) StatusBreakdown(workspaceID string) (map[string]int, error) {
	query, args, err := squirrel.
		Select("t.status, COUNT(*)").
		From(tasksTable).
		Where(squirrel.Eq{"t.workspace_id": workspaceID}).
		GroupBy("t.status").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	breakdown := make(map[string]int)
	for rows.Next() {
		var (
			status string
			count  int
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("erro ao escanear breakdown de tarefas: %w", err)
		}
		breakdown[status] = count
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return breakdown, nil
}
