package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cmsapi/internal/repository"
)

func TestListing_Normalize(t *testing.T) {
	l := listing{size: 10, sortBy: "createdAt"}

	tests := []struct {
		name    string
		in      PageRequest
		want    PageRequest
		wantErr bool
	}{
		{
			name: "defaults",
			in:   PageRequest{},
			want: PageRequest{Page: 0, Size: 10, SortBy: "createdAt", SortDir: "desc"},
		},
		{
			name: "negative page and oversized page",
			in:   PageRequest{Page: -3, Size: 500, SortBy: "title", SortDir: "ASC"},
			want: PageRequest{Page: 0, Size: 100, SortBy: "title", SortDir: "asc"},
		},
		{
			name:    "unknown direction",
			in:      PageRequest{SortDir: "sideways"},
			wantErr: true,
		},
		{
			name:    "page whose offset overflows",
			in:      PageRequest{Page: math.MaxInt / 50, Size: 100},
			wantErr: true,
		},
		{
			name: "largest page that still fits",
			in:   PageRequest{Page: math.MaxInt / 100, Size: 100},
			want: PageRequest{Page: math.MaxInt / 100, Size: 100, SortBy: "createdAt", SortDir: "desc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := l.normalize(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRequest)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPageRequest_Query(t *testing.T) {
	pq := PageRequest{Page: 2, Size: 20, SortBy: "title", SortDir: "asc"}.query()
	assert.Equal(t, repository.PageQuery{Limit: 20, Offset: 40, SortBy: "title", Desc: false}, pq)
}

func TestNewPage(t *testing.T) {
	res := &repository.PageResult[int]{Items: []int{1, 2, 3}, Total: 23}
	double := func(v *int) int { return *v * 2 }

	p := newPage(res, PageRequest{Page: 1, Size: 10}, double)
	assert.Equal(t, []int{2, 4, 6}, p.Content)
	assert.Equal(t, int64(23), p.TotalElements)
	assert.Equal(t, 3, p.TotalPages)
	assert.False(t, p.Last)

	p = newPage(res, PageRequest{Page: 2, Size: 10}, double)
	assert.True(t, p.Last)

	empty := newPage(&repository.PageResult[int]{}, PageRequest{Size: 10}, identity[int])
	assert.NotNil(t, empty.Content)
	assert.Equal(t, 0, empty.TotalPages)
	assert.True(t, empty.Last)
}
