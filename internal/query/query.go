// Package query translates the generic list-query parameters (range, sort,
// search) into a storage-agnostic descriptor applied as a GORM scope.
//
// The wire format is the one the frontend has always sent: each parameter is
// a JSON array in the query string. range is [from, to] (inclusive), sort
// and search are flat arrays of (field, value) pairs.
package query

import (
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	apperrors "centsible/internal/errors"
)

// Raw carries the three optional list-query parameters verbatim from the
// query string. An empty string means the parameter was not supplied.
type Raw struct {
	Range  string
	Sort   string
	Search string
}

// Order is a single order-by clause.
type Order struct {
	Column    string
	Direction string // "ASC" or "DESC"
}

// Filter is a single substring (LIKE) filter. Filters combine with AND.
type Filter struct {
	Column    string
	Substring string
}

// Options is the normalized representation of pagination/sort/filter
// intent. It is constructed once by Parse and never mutated afterwards.
type Options struct {
	Offset  int // -1 when no range was supplied
	Limit   int // -1 when no range was supplied
	Orders  []Order
	Filters []Filter
}

// Parse translates raw range/sort/search parameters into Options.
//
// allowed maps the exposed field names clients may reference to the storage
// column names they resolve to. Referencing any other field, or violating
// the parameter shapes, yields an INVALID_PARAMETER error. Absent
// parameters mean "no constraint" and are not an error.
func Parse(raw Raw, allowed map[string]string) (*Options, error) {
	opts := &Options{Offset: -1, Limit: -1}

	if raw.Range != "" {
		var r []int
		if err := json.Unmarshal([]byte(raw.Range), &r); err != nil {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidParameter, "Range parameter must be an Array.")
		}
		if len(r) != 2 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidParameter, "Range must contain exactly 2 elements.")
		}
		if r[0] < 0 || r[1] < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidParameter, "Range must contain positive integers.")
		}
		if r[1] < r[0] {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidParameter, "Range end must be greater (or equal) than the range start.")
		}
		opts.Offset = r[0]
		opts.Limit = r[1] - r[0] + 1
	}

	if raw.Sort != "" {
		pairs, err := parsePairs(raw.Sort, "Sort")
		if err != nil {
			return nil, err
		}
		for i := 0; i < len(pairs); i += 2 {
			column, ok := allowed[pairs[i]]
			if !ok {
				return nil, apperrors.WithMessage(apperrors.ErrInvalidParameter,
					fmt.Sprintf("Sort field %q is not allowed.", pairs[i]))
			}
			if pairs[i+1] != "ASC" && pairs[i+1] != "DESC" {
				return nil, apperrors.WithMessage(apperrors.ErrInvalidParameter, `Sort orders must be either "ASC" or "DESC".`)
			}
			opts.Orders = append(opts.Orders, Order{Column: column, Direction: pairs[i+1]})
		}
	}

	if raw.Search != "" {
		pairs, err := parsePairs(raw.Search, "Search")
		if err != nil {
			return nil, err
		}
		for i := 0; i < len(pairs); i += 2 {
			column, ok := allowed[pairs[i]]
			if !ok {
				return nil, apperrors.WithMessage(apperrors.ErrInvalidParameter,
					fmt.Sprintf("Search field %q is not allowed.", pairs[i]))
			}
			if pairs[i+1] == "" {
				return nil, apperrors.WithMessage(apperrors.ErrInvalidParameter, "Search keywords must be at least one character long.")
			}
			opts.Filters = append(opts.Filters, Filter{Column: column, Substring: pairs[i+1]})
		}
	}

	return opts, nil
}

// parsePairs decodes a JSON array of strings and checks it forms non-empty
// (field, value) pairs.
func parsePairs(rawJSON, name string) ([]string, error) {
	var pairs []string
	if err := json.Unmarshal([]byte(rawJSON), &pairs); err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidParameter, name+" parameter must be an Array of strings.")
	}
	if len(pairs) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidParameter, name+" must contain at least 2 elements.")
	}
	if len(pairs)%2 == 1 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidParameter, name+" length must be even.")
	}
	return pairs, nil
}

// FilterScope returns a GORM scope applying only the substring filters,
// for counting total matches independently of pagination.
func (o *Options) FilterScope() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		for _, f := range o.Filters {
			db = db.Where(f.Column+" LIKE ?", "%"+f.Substring+"%")
		}
		return db
	}
}

// Scope returns a GORM scope applying the options. Columns come from the
// allow-list resolved at Parse time, so interpolating them is safe.
func (o *Options) Scope() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		for _, f := range o.Filters {
			db = db.Where(f.Column+" LIKE ?", "%"+f.Substring+"%")
		}
		for _, ord := range o.Orders {
			db = db.Order(ord.Column + " " + ord.Direction)
		}
		if o.Offset >= 0 {
			db = db.Offset(o.Offset).Limit(o.Limit)
		}
		return db
	}
}
