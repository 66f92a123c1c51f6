package crack

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToJSON(t *testing.T) {
	results := []Result{
		{
			Model:  &LCGModel{A: 3, C: 5, M: 1 << 31, TruncMod: 1000, LastState: 92},
			Future: []uint64{281, 848},
		},
		{
			Model: &AffineModel{A: -2, B: 7, D: 100, LastOutput: 1},
		},
	}

	b, err := ToJSON(results)
	assert.NoError(t, err)

	var decoded []map[string]any
	assert.NoError(t, json.Unmarshal(b, &decoded))
	if len(decoded) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(decoded))
	}

	assert.Equal(t, "lcg", decoded[0]["model"])
	assert.Equal(t, float64(3), decoded[0]["a"])
	assert.Equal(t, float64(1<<31), decoded[0]["m"])
	assert.Equal(t, []any{float64(281), float64(848)}, decoded[0]["future"])

	assert.Equal(t, "affine", decoded[1]["model"])
	assert.Equal(t, float64(-2), decoded[1]["a"])
	assert.Equal(t, float64(7), decoded[1]["b"])
	_, hasFuture := decoded[1]["future"]
	assert.False(t, hasFuture)

	// Field order is part of the report: model first, then parameters in
	// declaration order, then the future sequence.
	out := string(b)
	for _, keys := range [][]string{
		{`"model"`, `"a"`, `"c"`, `"m"`, `"trunc_mod"`, `"last_state"`, `"future"`},
		{`"b"`, `"d"`, `"last_output"`},
	} {
		for i := 1; i < len(keys); i++ {
			assert.Less(t, strings.Index(out, keys[i-1]), strings.Index(out, keys[i]))
		}
	}
}

func TestToJSONEmpty(t *testing.T) {
	b, err := ToJSON(nil)
	assert.NoError(t, err)
	assert.Equal(t, "[]\n", string(b))
}
