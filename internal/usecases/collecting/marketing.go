package collecting

import (
	"fmt"
	"time"

	"github.com/vfg2006/business-pulse-api/infrastructure/repository"
	"github.com/vfg2006/business-pulse-api/internal/domain"
)

// MarketingCollector agrega os sinais de campanhas de um workspace
type MarketingCollector interface {
	Collect(workspaceID string, reference time.Time) (domain.MarketingSignals, error)
}

type marketingCollector struct {
	campaignRepo repository.CampaignRepository
}

func NewMarketingCollector(campaignRepo repository.CampaignRepository) MarketingCollector {
	return &marketingCollector{campaignRepo: campaignRepo}
}

func (c *marketingCollector) Collect(workspaceID string, reference time.Time) (domain.MarketingSignals, error) {
	aggregates, err := c.campaignRepo.Summary(workspaceID, reference.AddDate(0, 0, -30))
	if err != nil {
		return domain.MarketingSignals{}, fmt.Errorf("erro ao agregar campanhas: %w", err)
	}

	statusBreakdown, err := c.campaignRepo.StatusBreakdown(workspaceID)
	if err != nil {
		return domain.MarketingSignals{}, fmt.Errorf("erro ao buscar campanhas por status: %w", err)
	}

	return domain.MarketingSignals{
		ActiveCampaigns: aggregates.ActiveCampaigns,
		RecentCampaigns: aggregates.RecentCampaigns,
		AvgOpenRate:     aggregates.AvgOpenRate,
		AvgClickRate:    aggregates.AvgClickRate,
		BestOpenRate:    aggregates.BestOpenRate,
		WorstOpenRate:   aggregates.WorstOpenRate,
		TotalRecipients: aggregates.TotalRecipients,
		StatusBreakdown: statusBreakdown,
	}, nil
}
