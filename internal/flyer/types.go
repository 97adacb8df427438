package flyer

import (
	"bytes"
	"encoding/json"

	domain "github.com/kagiso-dev/flyer-deals/pkg/types"
)

// looseString accepts a JSON string or number. The OCR service is loose
// about scalar types: ids arrive as integers or strings, prices as numbers
// or currency text.
type looseString string

func (s *looseString) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		*s = ""
		return nil
	}

	if trimmed[0] == '"' {
		var v string
		if err := json.Unmarshal(trimmed, &v); err != nil {
			*s = ""
			return nil //nolint:nilerr // malformed input degrades to empty
		}
		*s = looseString(v)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err != nil {
		*s = ""
		return nil //nolint:nilerr // malformed input degrades to empty
	}
	*s = looseString(n.String())
	return nil
}

// wireDeal is a deal record as published by the OCR/catalog service.
type wireDeal struct {
	ID    looseString      `json:"id"`
	Item  domain.ItemNames `json:"item"`
	Price looseString      `json:"price"`
	Store string           `json:"store"`
	Type  string           `json:"type"`
	Unit  string           `json:"unit"`
}

// wireEvent is an incremental catalog notification on the wire.
type wireEvent struct {
	Kind string      `json:"kind"`
	ID   looseString `json:"id"`
	Deal *wireDeal   `json:"deal"`
}

type dealsResponse struct {
	Deals []wireDeal `json:"deals"`
}

type eventsResponse struct {
	Events []wireEvent `json:"events"`
	Cursor string      `json:"cursor"`
}
