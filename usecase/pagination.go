package usecase

import "math"

const (
	DefaultPageLimit   = 20
	MaxPageLimit       = 100
	DefaultLatestLimit = 5
	MaxLatestLimit     = 50

	// MaxPage keeps (Page-1)*Limit within int32 so the skip never wraps
	MaxPage = math.MaxInt32 / MaxPageLimit
)

type Page struct {
	Page  int
	Limit int
}

// Normalize applies the defaults and clamps the limit
func (p Page) Normalize() Page {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Page > MaxPage {
		p.Page = MaxPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	return p
}

func (p Page) skip() int64 {
	return int64((p.Page - 1) * p.Limit)
}

type PageResult[T any] struct {
	Items []T
	Total int64
	Page  int
	Limit int
}

// LatestLimit clamps a "latest N" request
func LatestLimit(n int) int {
	if n < 1 {
		return DefaultLatestLimit
	}
	if n > MaxLatestLimit {
		return MaxLatestLimit
	}
	return n
}
