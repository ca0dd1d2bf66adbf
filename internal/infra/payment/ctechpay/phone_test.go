package ctechpay

import (
	"testing"

	domainerrors "licensing/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "trunk prefix", input: "0991234567", want: "+265991234567"},
		{name: "bare country code", input: "265991234567", want: "+265991234567"},
		{name: "already international", input: "+265991234567", want: "+265991234567"},
		{name: "embedded whitespace", input: " 099 123 4567 ", want: "+265991234567"},
		{name: "letters", input: "abc", wantErr: true},
		{name: "foreign country code", input: "+27991234567", wantErr: true},
		{name: "too short", input: "09912345", wantErr: true},
		{name: "non digit subscriber", input: "099123456x", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePhone(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domainerrors.ErrInvalidPhoneFormat)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
