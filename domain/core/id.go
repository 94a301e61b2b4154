package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	// Use UUID v7 for time-ordered, sortable IDs
	// Falls back to v4 if v7 is not available (for compatibility)
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// Domain-specific ID types
type (
	// ImportJobID identifies one upload as it moves through the pipeline.
	ImportJobID ID
	// StoreID is the surrogate row ID of a canonical store record.
	StoreID ID
	// PriceItemID is the surrogate row ID of a canonical price list item.
	PriceItemID ID
)

// String conversions for domain IDs
func (id ImportJobID) String() string { return ID(id).String() }
func (id StoreID) String() string     { return ID(id).String() }
func (id PriceItemID) String() string { return ID(id).String() }

// NewImportJobID creates a fresh job identifier for one upload
func NewImportJobID() ImportJobID {
	return ImportJobID(NewID())
}

// ParseImportJobID parses a string into ImportJobID
func ParseImportJobID(s string) (ImportJobID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("import job ID cannot be empty")
	}
	return ImportJobID(s), nil
}
