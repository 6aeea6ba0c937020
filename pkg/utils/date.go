package utils

import (
	"errors"
	"strings"
	"time"
)

var ErrEmptyDate = errors.New("data vazia")

// dateLayouts aceitos na entrada de vendas, do mais comum ao menos comum
var dateLayouts = []string{
	time.DateOnly,
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006/01/02",
}

// ParseDate interpreta a data em um dos formatos aceitos.
// O fuso informado é preservado, então o mês retornado é o mês escrito na data.
func ParseDate(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return time.Time{}, ErrEmptyDate
	}

	var lastErr error
	for _, layout := range dateLayouts {
		date, err := time.Parse(layout, dateStr)
		if err == nil {
			return date, nil
		}
		lastErr = err
	}

	return time.Time{}, lastErr
}
