package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/business-pulse-api/infrastructure/database/postgres"
)

const campaignsTable = "campaigns cp"

// CampaignAggregates agrupa as métricas de campanhas da janela consultada.
// Taxas em percentual (0-100).
type CampaignAggregates struct {
	ActiveCampaigns int
	RecentCampaigns int
	AvgOpenRate     float64
	AvgClickRate    float64
	BestOpenRate    float64
	WorstOpenRate   float64
	TotalRecipients int
}

// CampaignRepository fornece os agregados de marketing consumidos pelo
// coletor de campanhas.
type CampaignRepository interface {
	Summary(workspaceID string, since time.Time) (*CampaignAggregates, error)
	StatusBreakdown(workspaceID string) (map[string]int, error)
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

type campaignRow struct {
	status     string
	sentAt     sql.NullTime
	recipients int
	opens      int
	clicks     int
}

// Summary agrega em memória as campanhas do workspace: as taxas consideram
// apenas campanhas enviadas dentro da janela e com destinatários.
func (r *campaignRepository) Summary(workspaceID string, since time.Time) (*CampaignAggregates, error) {
	query, args, err := squirrel.
		Select("cp.status, cp.sent_at, cp.recipients, cp.opens, cp.clicks").
		From(campaignsTable).
		Where(squirrel.Eq{"cp.workspace_id": workspaceID}).
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

	summary := &CampaignAggregates{}

	var (
		openRateSum  float64
		clickRateSum float64
		sampled      int
	)

	for rows.Next() {
		var campaign campaignRow
		if err := rows.Scan(&campaign.status, &campaign.sentAt, &campaign.recipients, &campaign.opens, &campaign.clicks); err != nil {
			return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
		}

		if campaign.status == "active" {
			summary.ActiveCampaigns++
		}

		// Fora da janela ou nunca enviada: não entra nas taxas
		if !campaign.sentAt.Valid || campaign.sentAt.Time.Before(since) {
			continue
		}

		summary.RecentCampaigns++
		summary.TotalRecipients += campaign.recipients

		if campaign.recipients == 0 {
			continue
		}

		openRate := float64(campaign.opens) * 100 / float64(campaign.recipients)
		clickRate := float64(campaign.clicks) * 100 / float64(campaign.recipients)

		openRateSum += openRate
		clickRateSum += clickRate

		if sampled == 0 || openRate > summary.BestOpenRate {
			summary.BestOpenRate = openRate
		}
		if sampled == 0 || openRate < summary.WorstOpenRate {
			summary.WorstOpenRate = openRate
		}

		sampled++
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	if sampled > 0 {
		summary.AvgOpenRate = openRateSum / float64(sampled)
		summary.AvgClickRate = clickRateSum / float64(sampled)
	}

	return summary, nil
}

func (r *campaignRepository) StatusBreakdown(workspaceID string) (map[string]int, error) {
	query, args, err := squirrel.
		Select("cp.status, COUNT(*)").
		From(campaignsTable).
		Where(squirrel.Eq{"cp.workspace_id": workspaceID}).
		GroupBy("cp.status").
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
			return nil, fmt.Errorf("erro ao escanear breakdown de campanhas: %w", err)
		}
		breakdown[status] = count
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return breakdown, nil
}
