// Package models defines the core data types shared across the parsing
// pipeline: transaction types, the extraction collaborator's structured guess,
// categories, and the ledger entry shapes.
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// ParseTransactionType converts a raw string into a TransactionType.
func ParseTransactionType(s string) (TransactionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(TypeIncome):
		return TypeIncome, nil
	case string(TypeExpense):
		return TypeExpense, nil
	default:
		return "", fmt.Errorf("unknown transaction type: %q", s)
	}
}

// Valid reports whether t is one of the two known transaction types.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// ParsedTransaction is the structured guess produced by the extraction
// collaborator for a single utterance. Optional fields are pointers so the
// pipeline can tell "absent" apart from a zero value.
type ParsedTransaction struct {
	Amount          *decimal.Decimal `json:"amount,omitempty"`
	Type            *TransactionType `json:"type,omitempty"`
	Description     *string          `json:"description,omitempty"`
	CategoryKeyword *string          `json:"category_keyword,omitempty"`
	Date            *time.Time       `json:"date,omitempty"`
	Notes           *string          `json:"notes,omitempty"`
	Confidence      float64          `json:"confidence"`
}

// CommitRequest is the assembled entry-creation request handed to the ledger
// store once the confidence gate has passed.
type CommitRequest struct {
	UserID      string
	Type        TransactionType
	Amount      decimal.Decimal
	Description string
	CategoryID  string
	Date        time.Time
	Notes       *string
}

// Entry is a persisted ledger entry.
type Entry struct {
	ID          uuid.UUID       `json:"id" csv:"id"`
	UserID      string          `json:"user_id" csv:"user_id"`
	Type        TransactionType `json:"type" csv:"type"`
	Amount      decimal.Decimal `json:"amount" csv:"amount"`
	Description string          `json:"description" csv:"description"`
	CategoryID  string          `json:"category_id" csv:"category_id"`
	Date        time.Time       `json:"date" csv:"date"`
	Notes       *string         `json:"notes,omitempty" csv:"notes"`
	CreatedAt   time.Time       `json:"created_at" csv:"created_at"`
}

// ParsingInfo describes how a committed entry was produced.
type ParsingInfo struct {
	Method        string  `json:"method"`
	Confidence    float64 `json:"confidence"`
	CategoryFound bool    `json:"category_found"`
}

// ParseResult is the outcome of one pipeline invocation. Exactly one of the
// two branches is populated: a committed entry with its parsing metadata, or
// a confirmation payload when confidence fell below the threshold.
type ParseResult struct {
	NeedsConfirmation bool               `json:"needsConfirmation,omitempty"`
	Parsed            *ParsedTransaction `json:"parsed,omitempty"`

	Transaction *Entry       `json:"transaction,omitempty"`
	Parsing     *ParsingInfo `json:"parsing,omitempty"`
}
