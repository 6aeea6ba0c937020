package aggregating

import (
	"errors"
	"fmt"

	"github.com/nuellacreatives/ledger-api/internal/domain"
)

var (
	ErrMissingDate    = errors.New("sale date is missing")
	ErrInvalidDate    = errors.New("sale date is invalid")
	ErrNegativeAmount = errors.New("sale amount is negative")
	ErrInvalidAmount  = errors.New("sale amount is not a number")
	ErrUnknownPolicy  = errors.New("unknown date policy")
)

// DataQualityError indica uma venda que não pode ser atribuída a um mês
type DataQualityError struct {
	Err      error
	RecordID string
	Reason   domain.DataQualityReason
}

func (e *DataQualityError) Error() string {
	return fmt.Sprintf("venda %s: %s", e.RecordID, e.Err.Error())
}

func (e *DataQualityError) Unwrap() error {
	return e.Err
}

func newDataQualityError(recordID string, reason domain.DataQualityReason) *DataQualityError {
	var err error
	switch reason {
	case domain.ReasonMissingDate:
		err = ErrMissingDate
	case domain.ReasonNegativeAmount:
		err = ErrNegativeAmount
	case domain.ReasonInvalidAmount:
		err = ErrInvalidAmount
	default:
		err = ErrInvalidDate
	}

	return &DataQualityError{Err: err, RecordID: recordID, Reason: reason}
}
