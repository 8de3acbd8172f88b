package pagination_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/klwxsrx/securite-service/pkg/pagination"
)

func TestNewPageable(t *testing.T) {
	ptr := func(i int) *int { return &i }

	tests := []struct {
		name   string
		number *int
		size   *int
		expect pagination.Pageable
	}{
		{name: "defaults", expect: pagination.Pageable{Number: 0, Size: pagination.DefaultPageSize}},
		{name: "negative_values", number: ptr(-1), size: ptr(-5), expect: pagination.Pageable{Number: 0, Size: pagination.DefaultPageSize}},
		{name: "size_is_clamped", number: ptr(3), size: ptr(1000), expect: pagination.Pageable{Number: 3, Size: pagination.MaxPageSize}},
		{name: "explicit", number: ptr(2), size: ptr(10), expect: pagination.Pageable{Number: 2, Size: 10}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, pagination.NewPageable(tc.number, tc.size))
		})
	}
}

func TestPageable_OffsetLimit(t *testing.T) {
	p := pagination.Pageable{Number: 2, Size: 10}
	assert.Equal(t, uint64(20), p.Offset())
	assert.Equal(t, uint64(10), p.Limit())
}

func TestPageable_HugePageNumberOffsetDoesNotOverflow(t *testing.T) {
	number := 90_000_000_000_000_000
	size := pagination.MaxPageSize

	p := pagination.NewPageable(&number, &size)

	assert.Equal(t, pagination.MaxPageNumber, p.Number)
	assert.Equal(t, uint64(pagination.MaxPageNumber)*pagination.MaxPageSize, p.Offset())
	assert.LessOrEqual(t, p.Offset(), uint64(math.MaxInt64))
}

func TestNewPage_EmptyContentIsNotNil(t *testing.T) {
	page := pagination.NewPage[int](nil, 0, pagination.Pageable{Size: 20})
	assert.NotNil(t, page.Content)
}
