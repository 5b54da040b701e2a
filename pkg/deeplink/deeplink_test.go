package deeplink

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want string
	}{
		{
			name: "full request",
			req:  Request{Address: "0xjane", Amount: decimal.RequireFromString("12.5"), Token: "usdc", Note: "rent & bills"},
			want: "wallet:0xjane?amount=12.5&token=USDC&note=rent%20%26%20bills",
		},
		{
			name: "empty note",
			req:  Request{Address: "0xwade", Amount: decimal.NewFromInt(3), Token: "SUI"},
			want: "wallet:0xwade?amount=3&token=SUI&note=",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode("wallet", tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncode_Errors(t *testing.T) {
	_, err := Encode("", Request{Address: "0xjane"})
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = Encode("wallet", Request{Address: "  "})
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = Encode("wallet", Request{Address: "0xjane", Amount: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestDecode_RoundTrip(t *testing.T) {
	in := Request{Address: "ng:0803555", Amount: decimal.RequireFromString("20000"), Token: "NGN", Note: "school fees, term 2"}

	link, err := Encode("wallet:", in)
	require.NoError(t, err)

	out, err := Decode("wallet", link)
	require.NoError(t, err)
	assert.Equal(t, in.Address, out.Address)
	assert.True(t, in.Amount.Equal(out.Amount))
	assert.Equal(t, in.Token, out.Token)
	assert.Equal(t, in.Note, out.Note)
}

func TestDecode_Errors(t *testing.T) {
	for _, link := range []string{
		"other:0xjane?amount=1",
		"wallet:?amount=1",
		"wallet:0xjane?amount=lots",
		"wallet:0xjane?note=%zz",
	} {
		_, err := Decode("wallet", link)
		assert.ErrorIs(t, err, ErrMalformed, link)
	}
}
