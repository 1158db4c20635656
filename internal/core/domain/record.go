package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// LedgerType identifies one of the three record collections.
type LedgerType string

const (
	LedgerIncome     LedgerType = "income"
	LedgerExpense    LedgerType = "expense"
	LedgerInvestment LedgerType = "investment"
)

// AutomatedInvestmentType tags investment records created by automation rules.
const AutomatedInvestmentType = "SIP/Automated"

// Ledgers lists every ledger in a stable order.
var Ledgers = []LedgerType{LedgerIncome, LedgerExpense, LedgerInvestment}

// ParseLedgerType converts external input into a LedgerType.
func ParseLedgerType(s string) (LedgerType, error) {
	l := LedgerType(s)
	if !l.Valid() {
		return "", fmt.Errorf("unknown ledger type %q", s)
	}
	return l, nil
}

// Valid reports whether l is one of the known ledgers.
func (l LedgerType) Valid() bool {
	switch l {
	case LedgerIncome, LedgerExpense, LedgerInvestment:
		return true
	}
	return false
}

// Record is a single ledger entry. Investment records also carry InvestmentType.
type Record struct {
	ID             string          `json:"id"`
	Date           string          `json:"date"`
	Amount         decimal.Decimal `json:"amount"`
	Category       string          `json:"category"`
	Description    string          `json:"description"`
	Type           LedgerType      `json:"type"`
	Timestamp      time.Time       `json:"timestamp"`
	InvestmentType string          `json:"investmentType,omitempty"`
}

// RecordDraft holds the caller-supplied fields of a new record.
type RecordDraft struct {
	Date           string          `json:"date" validate:"required,datetime=2006-01-02"`
	Amount         decimal.Decimal `json:"amount"`
	Category       string          `json:"category" validate:"required,max=100"`
	Description    string          `json:"description" validate:"max=500"`
	Type           LedgerType      `json:"type" validate:"omitempty,oneof=income expense investment"`
	InvestmentType string          `json:"investmentType" validate:"max=100"`
}

// NewRecord builds a persisted record from a draft.
func NewRecord(id string, ledger LedgerType, draft RecordDraft, now time.Time) Record {
	rec := Record{
		ID:          id,
		Date:        draft.Date,
		Amount:      draft.Amount,
		Category:    draft.Category,
		Description: draft.Description,
		Type:        ledger,
		Timestamp:   NewTimestamp(now),
	}
	if ledger == LedgerInvestment {
		rec.InvestmentType = draft.InvestmentType
	}
	return rec
}

// RecordUpdate carries the fields to merge over an existing record. Nil fields are left as they are.
type RecordUpdate struct {
	ID             string
	Date           *string
	Amount         *decimal.Decimal
	Category       *string
	Description    *string
	InvestmentType *string
}

// ApplyTo merges u over rec. ID, Type and Timestamp never change.
func (u RecordUpdate) ApplyTo(rec *Record) {
	if u.Date != nil {
		rec.Date = *u.Date
	}
	if u.Amount != nil {
		rec.Amount = *u.Amount
	}
	if u.Category != nil {
		rec.Category = *u.Category
	}
	if u.Description != nil {
		rec.Description = *u.Description
	}
	if u.InvestmentType != nil && rec.Type == LedgerInvestment {
		rec.InvestmentType = *u.InvestmentType
	}
}
