package domain

type DataQualityReason string

const (
	ReasonMissingDate    DataQualityReason = "missing_date"
	ReasonInvalidDate    DataQualityReason = "invalid_date"
	ReasonNegativeAmount DataQualityReason = "negative_amount"
	ReasonInvalidAmount  DataQualityReason = "invalid_amount"
)

// DataQualityIssue registra uma venda que ficou fora dos 12 meses do relatório
type DataQualityIssue struct {
	RecordID string            `json:"record_id"`
	Reason   DataQualityReason `json:"reason"`
}
