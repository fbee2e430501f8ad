/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the chrono value types from the external API contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

VALIDATION:
  Validation is done in handlers, not in DTOs. DTOs are pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
  - chrono/range.go: The values being described
*/
package api

import (
	"math"

	"github.com/warp/chrono-extra/chrono"
)

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// RangeDTO describes a date range in API responses.
type RangeDTO struct {
	Text           string `json:"text"`
	Start          string `json:"start"`
	EndExclusive   string `json:"end_exclusive"`
	EndInclusive   string `json:"end_inclusive"`
	Empty          bool   `json:"empty"`
	UnboundedStart bool   `json:"unbounded_start"`
	UnboundedEnd   bool   `json:"unbounded_end"`
	// LengthDays saturates at 2^31-1 for unbounded ranges.
	LengthDays int `json:"length_days"`
	Saturated  bool `json:"saturated,omitempty"`
}

func toRangeDTO(r chrono.DateRange) RangeDTO {
	length := r.LengthInDays()
	return RangeDTO{
		Text:           r.String(),
		Start:          r.Start().String(),
		EndExclusive:   r.EndExclusive().String(),
		EndInclusive:   r.EndInclusive().String(),
		Empty:          r.IsEmpty(),
		UnboundedStart: r.IsUnboundedStart(),
		UnboundedEnd:   r.IsUnboundedEnd(),
		LengthDays:     length,
		Saturated:      length == math.MaxInt32,
	}
}

// NamedRangeDTO is a stored range snapshot in API responses.
type NamedRangeDTO struct {
	Name      string   `json:"name"`
	Range     RangeDTO `json:"range"`
	UpdatedAt string   `json:"updated_at"`
}

// SaveRangeRequest stores a range under a name. The range is the canonical
// "start/end" text form, period sides allowed.
type SaveRangeRequest struct {
	Name  string `json:"name"`
	Range string `json:"range"`
}

// EvalRequest applies one interval-algebra operation to two range literals.
type EvalRequest struct {
	Op string `json:"op"`
	A  string `json:"a"`
	B  string `json:"b"`
}

// EvalResponse carries whichever result shape the operation produces:
// a range for combinators, a boolean for predicates, a decimal string for
// coverage.
type EvalResponse struct {
	Op       string    `json:"op"`
	A        RangeDTO  `json:"a"`
	B        RangeDTO  `json:"b"`
	Range    *RangeDTO `json:"range,omitempty"`
	Bool     *bool     `json:"bool,omitempty"`
	Coverage string    `json:"coverage,omitempty"`
}

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
