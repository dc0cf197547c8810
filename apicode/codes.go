package apicode

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Tier identifies which band of the code space a value fell into.
type Tier int

const (
	// TierCommon codes are shared by every API surface.
	TierCommon Tier = iota
	// TierAPI codes are specific to one API surface (spot, futures, stream).
	TierAPI
	// TierFilter codes report exchange filter failures and carry no name.
	TierFilter
)

// String returns the tier name.
func (t Tier) String() string {
	switch t {
	case TierCommon:
		return "common"
	case TierAPI:
		return "api"
	case TierFilter:
		return "filter"
	}
	return "unknown"
}

// Code is a classified venue error code.
type Code struct {
	Tier  Tier
	Value int16
	Name  string // empty for filter codes
}

// String returns "NAME (-1234)" for named codes and the bare value otherwise.
func (c Code) String() string {
	if c.Name == "" {
		return strconv.Itoa(int(c.Value))
	}
	return fmt.Sprintf("%s (%d)", c.Name, c.Value)
}

// Table names the API-specific codes for one API surface.
type Table map[int16]string

// Classification failures.
var (
	ErrOutOfRange  = errors.New("apicode: value outside signed 16-bit range")
	ErrUnknownCode = errors.New("apicode: value not present in code table")
)

// Classify maps a raw code into its tier, resolving names against api for the
// API band and against Common for the shared band. The bands are checked in
// this exact order: filter, API, common.
func Classify(v int64, api Table) (Code, error) {
	if v < math.MinInt16 || v > math.MaxInt16 {
		return Code{}, fmt.Errorf("%w: %d", ErrOutOfRange, v)
	}
	c := int16(v)

	switch {
	case c <= -9000:
		return Code{Tier: TierFilter, Value: c}, nil

	case c <= -3000 || c >= 0:
		name, ok := api[c]
		if !ok {
			return Code{}, fmt.Errorf("%w: %d", ErrUnknownCode, c)
		}
		return Code{Tier: TierAPI, Value: c, Name: name}, nil

	default:
		name, ok := Common[c]
		if !ok {
			return Code{}, fmt.Errorf("%w: %d", ErrUnknownCode, c)
		}
		return Code{Tier: TierCommon, Value: c, Name: name}, nil
	}
}
