// Package request validates raw search parameters for the transports.
package request

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/bastiangx/wordfind/internal/utils"
	"github.com/bastiangx/wordfind/pkg/config"
)

var (
	ErrMissingQuery    = errors.New("Query parameter is required")
	ErrInvalidQuery    = errors.New("query contains control characters")
	ErrQueryTooLong    = errors.New("query too long")
	ErrInvalidLimit    = errors.New("limit must be a non-negative integer")
	ErrInvalidDistance = errors.New("maxDistance must be a non-negative integer")
)

// Params is one search request after transport decoding. Nil pointers mean
// the caller left the field out.
type Params struct {
	Query       string
	Limit       *int
	Fuzzy       bool
	MaxDistance *int
}

// Resolved is a validated request ready for search.Engine.Query.
type Resolved struct {
	Query       string
	Limit       int
	Fuzzy       bool
	MaxDistance int
}

// Resolve applies the limit defaults from cfg, clamps the limit to the
// configured maximum and rejects malformed input. defaultMaxDistance is used
// when the request carries no distance; callers pass the engine's
// Options().DefaultMaxDistance.
func Resolve(p Params, cfg *config.Config, defaultMaxDistance int) (Resolved, error) {
	if !utils.IsValidQuery(p.Query) {
		if utils.IsBlank(p.Query) {
			return Resolved{}, ErrMissingQuery
		}
		return Resolved{}, ErrInvalidQuery
	}
	if maxLen := cfg.Server.MaxQueryLen; maxLen > 0 && utf8.RuneCountInString(p.Query) > maxLen {
		return Resolved{}, fmt.Errorf("%w: maximum is %d characters", ErrQueryTooLong, maxLen)
	}

	limit := cfg.Server.DefaultLimit
	if p.Limit != nil {
		if *p.Limit < 0 {
			return Resolved{}, ErrInvalidLimit
		}
		limit = *p.Limit
	}
	if cfg.Server.MaxLimit > 0 && limit > cfg.Server.MaxLimit {
		limit = cfg.Server.MaxLimit
	}

	maxDistance := defaultMaxDistance
	if p.MaxDistance != nil {
		if *p.MaxDistance < 0 {
			return Resolved{}, ErrInvalidDistance
		}
		maxDistance = *p.MaxDistance
	}

	return Resolved{
		Query:       p.Query,
		Limit:       limit,
		Fuzzy:       p.Fuzzy,
		MaxDistance: maxDistance,
	}, nil
}
