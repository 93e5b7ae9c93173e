package people

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"people-directory/internal/platform/apperr"
)

func TestExtractPagination(t *testing.T) {
	intp := func(v int) *int { return &v }

	tests := []struct {
		name    string
		params  map[string]string
		want    Pagination
		wantErr apperr.Kind
	}{
		{name: "no params", params: map[string]string{}, want: Pagination{}},
		{name: "nil params", params: nil, want: Pagination{}},
		{name: "both", params: map[string]string{"limit": "10", "offset": "2"}, want: Pagination{Limit: intp(10), Offset: 2}},
		{name: "only limit", params: map[string]string{"limit": "10"}, wantErr: apperr.KindMissingParameters},
		{name: "only offset", params: map[string]string{"offset": "1"}, wantErr: apperr.KindMissingParameters},
		{name: "unrelated param", params: map[string]string{"sort": "asc"}, wantErr: apperr.KindMissingParameters},
		{name: "bad limit", params: map[string]string{"limit": "ten", "offset": "1"}, wantErr: apperr.KindParse},
		{name: "bad offset", params: map[string]string{"limit": "10", "offset": "1.5"}, wantErr: apperr.KindParse},
		{name: "zero limit", params: map[string]string{"limit": "0", "offset": "0"}, wantErr: apperr.KindInvalidParameters},
		{name: "negative offset", params: map[string]string{"limit": "1", "offset": "-1"}, wantErr: apperr.KindInvalidParameters},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractPagination(tt.params)
			if tt.wantErr != apperr.KindUnknown {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, apperr.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractPagination_ParseErrorKeepsCause(t *testing.T) {
	_, err := ExtractPagination(map[string]string{"limit": "x", "offset": "0"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `parsing "x"`)
}
