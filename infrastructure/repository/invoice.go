package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/business-pulse-api/infrastructure/database/postgres"
)

const invoicesTable = "invoices i"

// InvoiceRepository fornece os agregados financeiros consumidos pelo coletor
// de finanças.
type InvoiceRepository interface {
	SumPaidBetween(workspaceID string, from, to time.Time) (float64, error)
	OverdueSummary(workspaceID string, reference time.Time) (int, float64, error)
	OutstandingAmount(workspaceID string) (float64, error)
	CountPaidSince(workspaceID string, since time.Time) (int, error)
	AvgPaidAmountSince(workspaceID string, since time.Time) (float64, error)
	StatusBreakdown(workspaceID string) (map[string]int, error)
}

type invoiceRepository struct {
	conn *postgres.Connection
}

func NewInvoiceRepository(conn *postgres.Connection) InvoiceRepository {
	return &invoiceRepository{
		conn: conn,
	}
}

func (r *invoiceRepository) SumPaidBetween(workspaceID string, from, to time.Time) (float64, error) {
	query, args, err := squirrel.
		Select("COALESCE(SUM(i.amount), 0)").
		From(invoicesTable).
		Where(squirrel.Eq{"i.workspace_id": workspaceID, "i.status": "paid"}).
		Where(squirrel.GtOrEq{"i.paid_at": from}).
		Where(squirrel.Lt{"i.paid_at": to}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total float64
	if err := r.conn.QueryRow(query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao escanear receita paga: %w", err)
	}

	return total, nil
}

// OverdueSummary considera vencidas as faturas marcadas como overdue e as
// enviadas cujo vencimento já passou da data de referência.
func (r *invoiceRepository) OverdueSummary(workspaceID string, reference time.Time) (int, float64, error) {
	query, args, err := squirrel.
		Select("COUNT(*), COALESCE(SUM(i.amount), 0)").
		From(invoicesTable).
		Where(squirrel.Eq{"i.workspace_id": workspaceID}).
		Where(squirrel.Or{
			squirrel.Eq{"i.status": "overdue"},
			squirrel.And{
				squirrel.Eq{"i.status": "sent"},
				squirrel.Lt{"i.due_date": reference},
			},
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var (
		count int
		total float64
	)
	if err := r.conn.QueryRow(query, args...).Scan(&count, &total); err != nil {
		return 0, 0, fmt.Errorf("erro ao escanear faturas vencidas: %w", err)
	}

	return count, total, nil
}

func (r *invoiceRepository) OutstandingAmount(workspaceID string) (float64, error) {
	query, args, err := squirrel.
		Select("COALESCE(SUM(i.amount), 0)").
		From(invoicesTable).
		Where(squirrel.Eq{"i.workspace_id": workspaceID}).
		Where(squirrel.Eq{"i.status": []string{"sent", "overdue"}}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total float64
	if err := r.conn.QueryRow(query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao escanear valor em aberto: %w", err)
	}

	return total, nil
}

func (r *invoiceRepository) CountPaidSince(workspaceID string, since time.Time) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(invoicesTable).
		Where(squirrel.Eq{"i.workspace_id": workspaceID, "i.status": "paid"}).
		Where(squirrel.GtOrEq{"i.paid_at": since}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao escanear contagem de faturas pagas: %w", err)
	}

	return count, nil
}

func (r *invoiceRepository) AvgPaidAmountSince(workspaceID string, since time.Time) (float64, error) {
	query, args, err := squirrel.
		Select("COALESCE(AVG(i.amount), 0)").
		From(invoicesTable).
		Where(squirrel.Eq{"i.workspace_id": workspaceID, "i.status": "paid"}).
		Where(squirrel.GtOrEq{"i.paid_at": since}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var avg float64
	if err := r.conn.QueryRow(query, args...).Scan(&avg); err != nil {
		return 0, fmt.Errorf("erro ao escanear ticket médio de faturas: %w", err)
	}

	return avg, nil
}

func (r *invoiceRepository) StatusBreakdown(workspaceID string) (map[string]int, error) {
	query, args, err := squirrel.
		Select("i.status, COUNT(*)").
		From(invoicesTable).
		Where(squirrel.Eq{"i.workspace_id": workspaceID}).
		GroupBy("i.status").
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
			return nil, fmt.Errorf("erro ao escanear breakdown de faturas: %w", err)
		}
		breakdown[status] = count
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return breakdown, nil
}
