package domain

import "time"

// SignalSnapshot é o retrato pontual dos sinais de negócio de um workspace.
// É montado uma única vez por computação e consumido sem mutação tanto pelo
// motor de correlações quanto pelo cálculo de saúde.
type SignalSnapshot struct {
	WorkspaceID string    `json:"workspace_id"`
	GeneratedAt time.Time `json:"generated_at"`

	Pipeline   PipelineSignals   `json:"pipeline"`
	Marketing  MarketingSignals  `json:"marketing"`
	Finance    FinanceSignals    `json:"finance"`
	Operations OperationsSignals `json:"operations"`
}

// PipelineSignals resume o funil comercial do workspace.
type PipelineSignals struct {
	TotalLeads       int     `json:"total_leads"`
	TotalContacts    int     `json:"total_contacts"`
	NewLeadsThisWeek int     `json:"new_leads_this_week"`
	HotLeads         int     `json:"hot_leads"`
	ColdLeads        int     `json:"cold_leads"`
	StaleLeads       int     `json:"stale_leads"`
	StaleLeadValue   float64 `json:"stale_lead_value"`
	LateStageLeads   int     `json:"late_stage_leads"`
	PipelineValue    float64 `json:"pipeline_value"`

	// StageBreakdown mapeia cada estágio do funil para a quantidade de leads
	StageBreakdown map[string]int `json:"stage_breakdown"`
}

// MarketingSignals resume o desempenho das campanhas recentes.
// Taxas em percentual (0-100).
type MarketingSignals struct {
	ActiveCampaigns  int            `json:"active_campaigns"`
	RecentCampaigns  int            `json:"recent_campaigns"`
	AvgOpenRate      float64        `json:"avg_open_rate"`
	AvgClickRate     float64        `json:"avg_click_rate"`
	BestOpenRate     float64        `json:"best_open_rate"`
	WorstOpenRate    float64        `json:"worst_open_rate"`
	TotalRecipients  int            `json:"total_recipients"`
	StatusBreakdown  map[string]int `json:"status_breakdown"`
}

// FinanceSignals resume faturamento e inadimplência.
type FinanceSignals struct {
	MonthlyRevenue       float64        `json:"monthly_revenue"`
	PreviousMonthRevenue float64        `json:"previous_month_revenue"`
	RevenueGrowth        float64        `json:"revenue_growth"`
	OverdueAmount        float64        `json:"overdue_amount"`
	OverdueCount         int            `json:"overdue_count"`
	OutstandingAmount    float64        `json:"outstanding_amount"`
	RecentInvoiceCount   int            `json:"recent_invoice_count"`
	AvgInvoiceValue      float64        `json:"avg_invoice_value"`
	StatusBreakdown      map[string]int `json:"status_breakdown"`
}

// OperationsSignals resume tarefas e automações.
type OperationsSignals struct {
	OpenTasks             int            `json:"open_tasks"`
	OverdueTasks          int            `json:"overdue_tasks"`
	CompletedThisWeek     int            `json:"completed_this_week"`
	CompletionRate        float64        `json:"completion_rate"`
	ActiveAgents          int            `json:"active_agents"`
	AutomationRunsThisWeek int           `json:"automation_runs_this_week"`
	StatusBreakdown       map[string]int `json:"status_breakdown"`
}

// Nomes de domínio usados em tags de insights e nas listas de forças/riscos
const (
	DomainPipeline   = "pipeline"
	DomainMarketing  = "marketing"
	DomainFinance    = "finance"
	DomainOperations = "operations"
)
