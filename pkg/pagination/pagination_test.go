package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromRequest(t *testing.T) {
	cases := []struct {
		name   string
		query  string
		page   int
		limit  int
		offset int
	}{
		{"defaults", "", 1, 100, 0},
		{"explicit", "?page=3&limit=20", 3, 20, 40},
		{"garbage", "?page=abc&limit=-5", 1, 100, 0},
		{"capped", "?page=2&limit=500", 2, 100, 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/api/v1/patients"+tc.query, nil)
			p := FromRequest(r)
			assert.Equal(t, tc.page, p.Page)
			assert.Equal(t, tc.limit, p.Limit)
			assert.Equal(t, tc.offset, p.Offset())
		})
	}
}

func TestMeta(t *testing.T) {
	meta := New(2, 10).Meta(25)

	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 10, meta.Limit)
	assert.Equal(t, int64(25), meta.Total)
	assert.Equal(t, 3, meta.TotalPages)

	assert.Equal(t, 0, New(1, 10).Meta(0).TotalPages)
}
