// Package query holds the pagination window and filter predicates shared by
// every list read.
package query

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/crucial707/hci-inventory/internal/apperr"
)

const (
	DefaultLimit = 50
	MaxLimit     = 100
)

// Page is a pagination window. Limit is applied after Offset.
type Page struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// Meta describes the page returned alongside a list.
type Meta struct {
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Page   int `json:"page"`
}

// NewMeta computes the 1-based page number for p.
func NewMeta(total int, p Page) Meta {
	page := 1
	if p.Limit > 0 {
		page = p.Offset/p.Limit + 1
	}
	return Meta{Total: total, Limit: p.Limit, Offset: p.Offset, Page: page}
}

// ParsePage reads limit and offset from q. Missing values take the defaults,
// limits above maxLimit are capped, and anything negative, zero-limit or
// non-numeric is rejected. maxLimit <= 0 means MaxLimit.
func ParsePage(q url.Values, maxLimit int) (Page, error) {
	if maxLimit <= 0 {
		maxLimit = MaxLimit
	}
	p := Page{Limit: DefaultLimit, Offset: 0}
	var col apperr.Collector

	if raw := strings.TrimSpace(q.Get("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			col.Add("limit", "must be an integer")
		case n < 1:
			col.Add("limit", "must be a positive integer")
		default:
			p.Limit = min(n, maxLimit)
		}
	}
	if raw := strings.TrimSpace(q.Get("offset")); raw != "" {
		n, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			col.Add("offset", "must be an integer")
		case n < 0:
			col.Add("offset", "must be zero or greater")
		default:
			p.Offset = n
		}
	}
	if err := col.Err(); err != nil {
		return Page{}, err
	}
	return p, nil
}
