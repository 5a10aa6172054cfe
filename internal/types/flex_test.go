package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexUint64FromNumber(t *testing.T) {
	var f FlexUint64
	require.NoError(t, json.Unmarshal([]byte(`42`), &f))
	assert.Equal(t, uint64(42), f.Uint64())
}

func TestFlexUint64FromString(t *testing.T) {
	var f FlexUint64
	require.NoError(t, json.Unmarshal([]byte(`"42"`), &f))
	assert.Equal(t, uint64(42), f.Uint64())
}

func TestFlexUint64RejectsGarbage(t *testing.T) {
	var f FlexUint64
	assert.Error(t, json.Unmarshal([]byte(`"forty-two"`), &f))
	assert.Error(t, json.Unmarshal([]byte(`"-5"`), &f))
	assert.Error(t, json.Unmarshal([]byte(`true`), &f))
}

func TestFlexListFromArray(t *testing.T) {
	var f FlexList[string]
	require.NoError(t, json.Unmarshal([]byte(`["a","b"]`), &f))
	assert.Equal(t, []string{"a", "b"}, f.Slice())
}

func TestFlexListFromSingleObject(t *testing.T) {
	type item struct {
		Name string `json:"name"`
	}
	var f FlexList[item]
	require.NoError(t, json.Unmarshal([]byte(`{"name":"solo"}`), &f))
	require.Len(t, f, 1)
	assert.Equal(t, "solo", f[0].Name)
}

func TestFlexListNull(t *testing.T) {
	var f FlexList[string]
	require.NoError(t, json.Unmarshal([]byte(`null`), &f))
	assert.Empty(t, f)
}
