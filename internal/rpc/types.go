package rpc

import "github.com/jcdickinson/ferrisdoc/internal/docs"

// LookupRequest carries the arguments of the lookup_crate tool and the
// lookup command.
type LookupRequest struct {
	Name     string `json:"name"`
	Limit    *int   `json:"limit,omitempty"`
	Offset   *int   `json:"offset,omitempty"`
	ItemType string `json:"item_type,omitempty"`
	Query    string `json:"query,omitempty"`
}

// Query converts the request's optional filters into a docs.Query.
func (r LookupRequest) Query() docs.Query {
	q := docs.Query{Kind: r.ItemType, Text: r.Query, Limit: docs.NoLimit}
	if r.Offset != nil {
		q.Offset = *r.Offset
	}
	if r.Limit != nil {
		q.Limit = *r.Limit
	}
	return q
}

// GenerateRequest carries the arguments of the generate_docs tool.
type GenerateRequest struct {
	Flags []string `json:"flags,omitempty"`
}
