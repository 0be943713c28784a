package client

import (
	"net/url"
	"strconv"
)

// Query builds list query parameters, skipping empty values.
type Query struct {
	url.Values
}

func NewQuery() Query {
	return Query{Values: url.Values{}}
}

// Set adds key=value when value is non-empty.
func (q Query) Set(key, value string) Query {
	if value != "" {
		q.Values.Set(key, value)
	}
	return q
}

// Page adds limit and offset when they differ from the server defaults.
func (q Query) Page(limit, offset int) Query {
	if limit > 0 {
		q.Values.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		q.Values.Set("offset", strconv.Itoa(offset))
	}
	return q
}
