package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{name: "date only", input: `"1990-05-17"`, want: NewDate(1990, time.May, 17)},
		{name: "rfc3339 keeps date part", input: `"1990-05-17T23:10:00+03:00"`, want: NewDate(1990, time.May, 17)},
		{name: "other layout", input: `"17.05.1990"`, wantErr: true},
		{name: "invalid day", input: `"1990-02-30"`, wantErr: true},
		{name: "not a string", input: `19900517`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Date
			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got.Time), "got %s", got)
		})
	}
}

func TestDate_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(NewDate(2001, time.January, 2))
	require.NoError(t, err)
	assert.Equal(t, `"2001-01-02"`, string(b))

	b, err = json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, `null`, string(b))
}

func TestDate_String(t *testing.T) {
	assert.Equal(t, "1815-12-10", NewDate(1815, time.December, 10).String())
}
