package domain

import "github.com/shopspring/decimal"

// MonthLabels são os rótulos fixos dos 12 meses, em ordem de calendário
var MonthLabels = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// MonthBucket acumula o total de um mês do calendário
type MonthBucket struct {
	Month string          `json:"month"`
	Total decimal.Decimal `json:"total"`
}

// ReportSnapshot é a projeção mensal derivada da lista de vendas.
// Buckets tem sempre 12 posições, de Jan a Dec.
type ReportSnapshot struct {
	Buckets         []MonthBucket      `json:"buckets"`
	GrandTotal      decimal.Decimal    `json:"grand_total"`
	Unassigned      int                `json:"unassigned"`
	UnassignedTotal decimal.Decimal    `json:"unassigned_total"`
	Issues          []DataQualityIssue `json:"issues,omitempty"`
}

// FormattedMonth é uma linha do relatório pronta para gráfico ou tabela
type FormattedMonth struct {
	Month     string          `json:"month"`
	Total     decimal.Decimal `json:"total"` // Moeda base, sem arredondamento de exibição
	Formatted string          `json:"formatted"`
}

// MonthlyReport é o relatório mensal formatado em uma moeda de exibição
type MonthlyReport struct {
	Currency            CurrencyCode     `json:"currency"`
	Months              []FormattedMonth `json:"months"`
	GrandTotal          decimal.Decimal  `json:"grand_total"`
	GrandTotalFormatted string           `json:"grand_total_formatted"`
	Unassigned          int              `json:"unassigned"`
	UnassignedTotal     decimal.Decimal  `json:"unassigned_total"`
	CurrencyFallback    bool             `json:"currency_fallback"`
}

// ExportedFile é o resultado de uma exportação de relatório
type ExportedFile struct {
	Name        string
	ContentType string
	Data        []byte
}
