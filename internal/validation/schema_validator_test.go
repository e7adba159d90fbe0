package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaValidator_PoolSchema(t *testing.T) {
	v := NewSchemaValidator()

	tests := []struct {
		name      string
		data      string
		wantError bool
		errorMsg  string
	}{
		{
			name: "valid pool",
			data: `{"set_id": "base2", "pools": {"common": ["base2-1"], "uncommon": [], "rare": ["base2-9"], "holo": []}}`,
		},
		{
			name: "missing set id is allowed",
			data: `{"pools": {"common": ["a"]}}`,
		},
		{
			name: "numeric card ids are allowed",
			data: `{"pools": {"common": [1, 2, 3]}}`,
		},
		{
			name:      "missing pools",
			data:      `{"set_id": "base2"}`,
			wantError: true,
			errorMsg:  "required",
		},
		{
			name:      "bucket is not a list",
			data:      `{"pools": {"rare": "base2-1"}}`,
			wantError: true,
			errorMsg:  "/pools/rare",
		},
		{
			name:      "bucket item is an object",
			data:      `{"pools": {"holo": [{"id": "x"}]}}`,
			wantError: true,
			errorMsg:  "/pools/holo/0",
		},
		{
			name:      "root is a list",
			data:      `[]`,
			wantError: true,
			errorMsg:  "(root)",
		},
		{
			name:      "not JSON",
			data:      `{"pools":`,
			wantError: true,
			errorMsg:  "failed to parse JSON data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), PoolSchema)
			if !tt.wantError {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_ValidateFile(t *testing.T) {
	v := NewSchemaValidator()
	path := filepath.Join(t.TempDir(), "jungle.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"set_id":"jungle","pools":{"common":["jungle-1"]}}`), 0o644))

	assert.NoError(t, v.ValidateFile(path, PoolSchema))
	assert.Error(t, v.ValidateFile(filepath.Join(t.TempDir(), "missing.json"), PoolSchema))
}

func TestSchemaValidator_UnknownSchema(t *testing.T) {
	err := NewSchemaValidator().ValidateBytes([]byte(`{}`), "nope.schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load schema")
}
