package apicode

import (
	"encoding/json"
	"fmt"
)

// APIError is the {"code": n, "msg": s} payload the venue returns for a
// failed request, with the code classified into its tier.
type APIError struct {
	Code Code
	Msg  string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("(%s) %s", e.Code, e.Msg)
}

// Parse decodes a venue error payload, resolving its code against api.
func Parse(data []byte, api Table) (*APIError, error) {
	var raw struct {
		Code int64  `json:"code"`
		Msg  string `json:"msg"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode error payload: %w", err)
	}

	code, err := Classify(raw.Code, api)
	if err != nil {
		return nil, err
	}

	return &APIError{Code: code, Msg: raw.Msg}, nil
}
