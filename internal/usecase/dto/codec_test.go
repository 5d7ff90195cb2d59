package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/restoration-tracker/internal/usecase/dto"
)

func TestFlexBool_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    bool
		wantErr bool
	}{
		{name: "native true", input: `true`, want: true},
		{name: "native false", input: `false`, want: false},
		{name: "string true", input: `"true"`, want: true},
		{name: "string false", input: `"false"`, want: false},
		{name: "null reads as false", input: `null`, want: false},
		{name: "truthy string rejected", input: `"1"`, wantErr: true},
		{name: "yes rejected", input: `"yes"`, wantErr: true},
		{name: "number rejected", input: `1`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b dto.FlexBool
			err := json.Unmarshal([]byte(tt.input), &b)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, b.Bool())
		})
	}
}

func TestYNToString(t *testing.T) {
	assert.Equal(t, "true", dto.YNToString("Y"))
	assert.Equal(t, "false", dto.YNToString("N"))
	assert.Equal(t, "false", dto.YNToString(""))
	assert.Equal(t, "false", dto.YNToString("y"))
}

func TestBoolToYN(t *testing.T) {
	assert.Equal(t, "Y", dto.BoolToYN(true))
	assert.Equal(t, "N", dto.BoolToYN(false))
}
