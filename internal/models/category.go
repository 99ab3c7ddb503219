package models

// Category is a user-owned ledger category. Categories are persisted by the
// store; the resolver only ever reads the snapshot it is handed.
type Category struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Name      string          `json:"name"`
	Type      TransactionType `json:"type"`
	Icon      string          `json:"icon"`
	Color     string          `json:"color"`
	IsDefault bool            `json:"is_default"`
	IsActive  bool            `json:"is_active"`
}

// ResolutionResult is the resolver's answer for one keyword. Found=false
// means the caller must fall back to the type's default category.
type ResolutionResult struct {
	CategoryID string
	Found      bool
}
