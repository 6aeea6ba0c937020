// Package aggregating agrupa vendas por mês do calendário.
package aggregating

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nuellacreatives/ledger-api/internal/domain"
	"github.com/nuellacreatives/ledger-api/pkg/utils"
)

// UnknownDatePolicy define o que fazer com vendas sem data válida.
// Não existe política que atribua essas vendas ao mês corrente.
type UnknownDatePolicy string

const (
	// UnknownDateExclude deixa a venda fora dos 12 meses e a contabiliza como não atribuída
	UnknownDateExclude UnknownDatePolicy = "exclude"
	// UnknownDateReject interrompe a agregação na primeira venda sem data válida
	UnknownDateReject UnknownDatePolicy = "reject"
)

// ParsePolicy converte o valor de configuração em uma política
func ParsePolicy(value string) (UnknownDatePolicy, error) {
	policy := UnknownDatePolicy(strings.ToLower(strings.TrimSpace(value)))
	switch policy {
	case UnknownDateExclude, UnknownDateReject:
		return policy, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, value)
}

// ParseSaleDate interpreta a data da venda como escrita, sem conversão de fuso
func ParseSaleDate(value string) (time.Time, error) {
	return utils.ParseDate(value)
}

// SaleMonth retorna o mês do calendário de uma venda. O ano é ignorado.
func SaleMonth(record *domain.SaleRecord) (int, domain.DataQualityReason, bool) {
	if strings.TrimSpace(record.Date) == "" {
		return 0, domain.ReasonMissingDate, false
	}

	date, err := ParseSaleDate(record.Date)
	if err != nil {
		if errors.Is(err, utils.ErrEmptyDate) {
			return 0, domain.ReasonMissingDate, false
		}
		return 0, domain.ReasonInvalidDate, false
	}

	return int(date.Month()) - 1, "", true
}

// Aggregate agrupa as vendas por mês e soma os valores na moeda base.
// O resultado tem sempre 12 meses, de Jan a Dec, e não depende da ordem da entrada.
func Aggregate(records []*domain.SaleRecord, policy UnknownDatePolicy) (*domain.ReportSnapshot, error) {
	if policy != UnknownDateExclude && policy != UnknownDateReject {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, policy)
	}

	var totals [12]decimal.Decimal
	for i := range totals {
		totals[i] = decimal.Zero
	}
	unassignedTotal := decimal.Zero
	issues := make([]domain.DataQualityIssue, 0)

	for _, record := range records {
		if record == nil {
			continue
		}

		month, reason, ok := SaleMonth(record)
		switch {
		case !ok:
		case record.AmountInvalid:
			ok = false
			reason = domain.ReasonInvalidAmount
		case record.Amount.IsNegative():
			ok = false
			reason = domain.ReasonNegativeAmount
		}

		if !ok {
			if policy == UnknownDateReject {
				return nil, newDataQualityError(record.ID, reason)
			}
			issues = append(issues, domain.DataQualityIssue{RecordID: record.ID, Reason: reason})
			unassignedTotal = unassignedTotal.Add(record.Amount)
			continue
		}

		totals[month] = totals[month].Add(record.Amount)
	}

	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].RecordID != issues[j].RecordID {
			return issues[i].RecordID < issues[j].RecordID
		}
		return issues[i].Reason < issues[j].Reason
	})

	snapshot := &domain.ReportSnapshot{
		Buckets:         make([]domain.MonthBucket, 0, len(domain.MonthLabels)),
		GrandTotal:      decimal.Zero,
		Unassigned:      len(issues),
		UnassignedTotal: unassignedTotal,
		Issues:          issues,
	}

	for i, label := range domain.MonthLabels {
		snapshot.Buckets = append(snapshot.Buckets, domain.MonthBucket{Month: label, Total: totals[i]})
		snapshot.GrandTotal = snapshot.GrandTotal.Add(totals[i])
	}

	return snapshot, nil
}
