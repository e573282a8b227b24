package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fieldPayload struct {
	Name Field[string] `json:"name"`
}

func TestField_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantSet  bool
		wantNull bool
		wantVal  string
	}{
		{name: "absent key", body: `{}`, wantSet: false},
		{name: "explicit null", body: `{"name": null}`, wantSet: true, wantNull: true},
		{name: "value", body: `{"name": "SCB"}`, wantSet: true, wantVal: "SCB"},
		{name: "empty string is a value", body: `{"name": ""}`, wantSet: true, wantVal: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p fieldPayload
			require.NoError(t, json.Unmarshal([]byte(tt.body), &p))

			assert.Equal(t, tt.wantSet, p.Name.IsSet())
			assert.Equal(t, tt.wantNull, p.Name.IsNull())
			if tt.wantSet && !tt.wantNull {
				require.NotNil(t, p.Name.Ptr())
				assert.Equal(t, tt.wantVal, *p.Name.Ptr())
			}
		})
	}
}

func TestField_UnmarshalJSON_WrongType(t *testing.T) {
	var p fieldPayload
	err := json.Unmarshal([]byte(`{"name": 12}`), &p)
	assert.Error(t, err)
}

func TestField_Constructors(t *testing.T) {
	var absent Field[string]
	assert.False(t, absent.IsSet())
	assert.Nil(t, absent.Ptr())

	null := Null[string]()
	assert.True(t, null.IsSet())
	assert.True(t, null.IsNull())

	v := Set("x")
	assert.True(t, v.IsSet())
	assert.False(t, v.IsNull())
	assert.Equal(t, "x", *v.Ptr())
}
