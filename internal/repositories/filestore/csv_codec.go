package filestore

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/SscSPs/mtrack/internal/core/domain"
	"github.com/shopspring/decimal"
)

const (
	colID             = "id"
	colDate           = "date"
	colAmount         = "amount"
	colCategory       = "category"
	colDescription    = "description"
	colType           = "type"
	colTimestamp      = "timestamp"
	colInvestmentType = "investmentType"
)

var baseHeader = []string{colID, colDate, colAmount, colCategory, colDescription, colType, colTimestamp}

// ledgerHeader returns the fixed header row written for a ledger.
func ledgerHeader(ledger domain.LedgerType) []string {
	header := append([]string(nil), baseHeader...)
	if ledger == domain.LedgerInvestment {
		header = append(header, colInvestmentType)
	}
	return header
}

// ledgerFileName maps a ledger to its file inside the data directory.
func ledgerFileName(ledger domain.LedgerType) string {
	switch ledger {
	case domain.LedgerIncome:
		return IncomeFile
	case domain.LedgerExpense:
		return ExpensesFile
	default:
		return InvestmentsFile
	}
}

// encodeLedger renders records with the ledger's header row.
func encodeLedger(ledger domain.LedgerType, records []domain.Record) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := ledgerHeader(ledger)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, rec := range records {
		row := []string{
			rec.ID,
			rec.Date,
			rec.Amount.String(),
			rec.Category,
			rec.Description,
			string(rec.Type),
			formatRecordTimestamp(rec.Timestamp),
		}
		if ledger == domain.LedgerInvestment {
			row = append(row, rec.InvestmentType)
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatRecordTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return domain.FormatTimestamp(t)
}

// decodeLedger parses a ledger file. Columns are found by header name so reordered or extra
// columns are tolerated. An empty file holds no records.
func decodeLedger(ledger domain.LedgerType, data []byte) ([]domain.Record, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return []domain.Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("invalid header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}
	if _, ok := index[colID]; !ok {
		return nil, fmt.Errorf("header has no %q column", colID)
	}

	records := []domain.Record{}
	for line := 2; ; line++ {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if isBlankRow(row) {
			continue
		}

		field := func(name string) string {
			i, ok := index[name]
			if !ok || i >= len(row) {
				return ""
			}
			return row[i]
		}

		rec := domain.Record{
			ID:          field(colID),
			Date:        field(colDate),
			Category:    field(colCategory),
			Description: field(colDescription),
			Type:        domain.LedgerType(field(colType)),
		}
		if rec.Type == "" {
			rec.Type = ledger
		}
		if ledger == domain.LedgerInvestment {
			rec.InvestmentType = field(colInvestmentType)
		}

		rec.Amount = decimal.Zero
		if raw := strings.TrimSpace(field(colAmount)); raw != "" {
			amount, err := decimal.NewFromString(raw)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid amount %q", line, raw)
			}
			rec.Amount = amount
		}

		if raw := strings.TrimSpace(field(colTimestamp)); raw != "" {
			ts, err := domain.ParseTimestamp(raw)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			rec.Timestamp = ts
		}

		records = append(records, rec)
	}
	return records, nil
}

func isBlankRow(row []string) bool {
	for _, f := range row {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
