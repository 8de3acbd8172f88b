package pagination

import "math"

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	MaxPageNumber   = math.MaxInt32
)

type (
	Pageable struct {
		Number int
		Size   int
	}

	Page[T any] struct {
		Content       []T `json:"content"`
		TotalElements int `json:"totalElements"`
		Number        int `json:"number"`
		Size          int `json:"size"`
	}
)

// NewPageable clamps the page number to [0, MaxPageNumber] and the size to (0, MaxPageSize],
// defaulting to DefaultPageSize.
func NewPageable(number, size *int) Pageable {
	p := Pageable{Number: 0, Size: DefaultPageSize}
	if number != nil && *number > 0 {
		p.Number = min(*number, MaxPageNumber)
	}
	if size != nil && *size > 0 {
		p.Size = min(*size, MaxPageSize)
	}

	return p
}

func (p Pageable) Offset() uint64 {
	return uint64(p.Number) * uint64(p.Size)
}

func (p Pageable) Limit() uint64 {
	return uint64(p.Size)
}

func NewPage[T any](content []T, total int, pageable Pageable) Page[T] {
	if content == nil {
		content = []T{}
	}

	return Page[T]{
		Content:       content,
		TotalElements: total,
		Number:        pageable.Number,
		Size:          pageable.Size,
	}
}
