package dto

import (
	"time"

	"github.com/SscSPs/mtrack/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateRecordRequest defines the data needed to add a record to a ledger.
// The ledger comes from the path, never from the body.
type CreateRecordRequest struct {
	Date           string          `json:"date" binding:"required"`
	Amount         decimal.Decimal `json:"amount"`
	Category       string          `json:"category" binding:"required"`
	Description    string          `json:"description"`
	InvestmentType string          `json:"investmentType"` // investment ledger only
}

// ToDraft converts the request into a domain draft.
func (r CreateRecordRequest) ToDraft(ledger domain.LedgerType) domain.RecordDraft {
	return domain.RecordDraft{
		Date:           r.Date,
		Amount:         r.Amount,
		Category:       r.Category,
		Description:    r.Description,
		Type:           ledger,
		InvestmentType: r.InvestmentType,
	}
}

// UpdateRecordRequest defines the fields allowed for updating a record.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateRecordRequest struct {
	Date           *string          `json:"date"`
	Amount         *decimal.Decimal `json:"amount"`
	Category       *string          `json:"category"`
	Description    *string          `json:"description"`
	InvestmentType *string          `json:"investmentType"`
}

// ToUpdate converts the request into a domain update for the record with the given id.
func (r UpdateRecordRequest) ToUpdate(id string) domain.RecordUpdate {
	return domain.RecordUpdate{
		ID:             id,
		Date:           r.Date,
		Amount:         r.Amount,
		Category:       r.Category,
		Description:    r.Description,
		InvestmentType: r.InvestmentType,
	}
}

// RecordResponse defines the data returned for a record.
type RecordResponse struct {
	ID             string            `json:"id"`
	Date           string            `json:"date"`
	Amount         decimal.Decimal   `json:"amount"`
	Category       string            `json:"category"`
	Description    string            `json:"description"`
	Type           domain.LedgerType `json:"type"`
	Timestamp      time.Time         `json:"timestamp"`
	InvestmentType string            `json:"investmentType,omitempty"`
}

// ToRecordResponse converts a domain.Record to RecordResponse DTO
func ToRecordResponse(rec *domain.Record) RecordResponse {
	return RecordResponse{
		ID:             rec.ID,
		Date:           rec.Date,
		Amount:         rec.Amount,
		Category:       rec.Category,
		Description:    rec.Description,
		Type:           rec.Type,
		Timestamp:      rec.Timestamp,
		InvestmentType: rec.InvestmentType,
	}
}

// ToListRecordResponse converts a slice of domain.Record to a slice of RecordResponse DTOs
func ToListRecordResponse(records []domain.Record) []RecordResponse {
	res := make([]RecordResponse, len(records))
	for i := range records {
		res[i] = ToRecordResponse(&records[i])
	}
	return res
}

// MutationResponse reports the outcome of an update or delete.
type MutationResponse struct {
	ID     string                `json:"id"`
	Result domain.MutationResult `json:"result"`
}

// ListRecordsParams defines query parameters for listing records.
// Without a limit the whole ledger is returned.
type ListRecordsParams struct {
	Limit     int    `form:"limit,default=0" binding:"min=0,max=1000"`
	NextToken string `form:"nextToken"`
}

// NextTokenHeader carries the cursor for the following page of a record listing.
const NextTokenHeader = "X-Next-Token"
