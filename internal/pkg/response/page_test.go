package response

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPageResponse(t *testing.T) {
	tests := []struct {
		name      string
		items     []string
		pageSize  int
		total     int
		wantPages int
	}{
		{"empty", nil, 20, 0, 0},
		{"exact fit", []string{"a", "b"}, 2, 4, 2},
		{"partial last page", []string{"a"}, 20, 41, 3},
		{"zero page size", []string{"a"}, 0, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPageResponse(tt.items, 1, tt.pageSize, tt.total)
			assert.NotNil(t, p.Items)
			assert.Equal(t, tt.wantPages, p.TotalPages)
		})
	}
}

func TestPageResponseJSON(t *testing.T) {
	b, err := json.Marshal(NewPageResponse[int](nil, 1, 20, 0))
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[],"page":1,"page_size":20,"total":0,"total_pages":0}`, string(b))
}
