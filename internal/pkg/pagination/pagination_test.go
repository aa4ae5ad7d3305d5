package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, query string) (int, int, error) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+query, nil)
	return Parse(c)
}

func TestParse(t *testing.T) {
	cases := []struct {
		name       string
		query      string
		wantLimit  int
		wantOffset int
		wantErr    bool
	}{
		{"defaults", "", DefaultLimit, 0, false},
		{"explicit", "limit=5&offset=10", 5, 10, false},
		{"limit clamped high", "limit=500", MaxLimit, 0, false},
		{"limit clamped low", "limit=0", 1, 0, false},
		{"limit clamped negative", "limit=-3", 1, 0, false},
		{"offset negative rejected", "offset=-1", 0, 0, true},
		{"limit garbage rejected", "limit=abc", 0, 0, true},
		{"offset garbage rejected", "offset=abc", 0, 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			limit, offset, err := parse(t, tc.query)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantLimit, limit)
			assert.Equal(t, tc.wantOffset, offset)
		})
	}
}
