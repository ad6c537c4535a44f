// Package resolver turns a raw dataset row into the typed call-details record.
// Resolve is a pure function of (dataset, key); all request-time work is
// in-memory.
package resolver

import (
	"errors"
	"fmt"
	"strconv"

	"call-retrieval-go/internal/dataset"
	"call-retrieval-go/internal/types"
)

var (
	// ErrUnavailable means the snapshot is empty (load failed or zero rows).
	ErrUnavailable = errors.New("dataset not loaded")
	// ErrNotFound means the recording URL is not in the snapshot.
	ErrNotFound = errors.New("recording url not found")
)

// FieldDecodeError reports a cell that cannot be coerced to its declared type.
type FieldDecodeError struct {
	Field string
	Key   string
	Value string
	Err   error
}

func (e *FieldDecodeError) Error() string {
	return fmt.Sprintf("decode field %s for %s: %v", e.Field, e.Key, e.Err)
}

func (e *FieldDecodeError) Unwrap() error { return e.Err }

// Source column names.
const (
	colCallID           = "CallID"
	colDuration         = "AudioDurationMinutes"
	colUserType         = "UserType"
	colObjective        = "CallObjective"
	colThemes           = "Top3Themes"
	colNextAction       = "NextAction"
	colSentiment        = "CallSentiment"
	colSummary          = "Summary"
	colFeedback         = "AgentImprovementFeedback"
	colOrderID          = "OrderID"
	colProductType      = "ProductType"
	colCity             = "City"
	colCallType         = "CallType"
	colBuyingIntent     = "BuyingIntent"
	colCustomerLanguage = "CustomerLanguage"
	colAgentLanguage    = "AgentLanguage"
	colLanguage         = "Language"
)

// Resolve looks up key and decodes the row. Outcomes are distinct:
// ErrUnavailable when the snapshot is empty, ErrNotFound when the key is
// absent, *FieldDecodeError when a typed cell is malformed. Decoding is
// all-or-nothing; no partial record is returned.
func Resolve(ds *dataset.Dataset, key string) (*types.CallDetails, error) {
	if ds.Len() == 0 {
		return nil, ErrUnavailable
	}
	row, ok := ds.Get(key)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}

	rec := &types.CallDetails{
		UserType:      row[colUserType],
		CallObjective: row[colObjective],
		NextAction:    row[colNextAction],
		CallSentiment: row[colSentiment],
		Summary:       row[colSummary],
	}

	if raw, ok := row[colCallID]; ok {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return nil, &FieldDecodeError{Field: colCallID, Key: key, Value: raw, Err: err}
		}
		rec.CallID = id
	}
	if raw, ok := row[colDuration]; ok {
		minutes, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, &FieldDecodeError{Field: colDuration, Key: key, Value: raw, Err: err}
		}
		rec.AudioDurationMinutes = minutes
	}
	if raw, ok := row[colThemes]; ok {
		// malformed literals degrade to absent, they never fail the request
		if themes, ok := decodeListLiteral(raw); ok {
			rec.Top3Themes = themes
		}
	}

	rec.AgentImprovementFeedback = optional(row, colFeedback)
	rec.OrderID = optional(row, colOrderID)
	rec.ProductType = optional(row, colProductType)
	rec.City = optional(row, colCity)
	rec.CallType = optional(row, colCallType)
	rec.BuyingIntent = optional(row, colBuyingIntent)

	// Later revisions split the languages into their own columns; earlier ones
	// hold a single dict cell. Split columns win when both exist.
	rec.CustomerLanguage = optional(row, colCustomerLanguage)
	rec.AgentLanguage = optional(row, colAgentLanguage)
	if rec.CustomerLanguage == nil && rec.AgentLanguage == nil {
		if raw, ok := row[colLanguage]; ok {
			if langs, ok := decodeDictLiteral(raw); ok {
				if v, ok := langs["customer"]; ok {
					rec.CustomerLanguage = &v
				}
				if v, ok := langs["agent"]; ok {
					rec.AgentLanguage = &v
				}
			}
		}
	}

	return rec, nil
}

func optional(row dataset.Row, col string) *string {
	if v, ok := row[col]; ok {
		return &v
	}
	return nil
}
