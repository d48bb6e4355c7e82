package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrizeForMissed(t *testing.T) {
	tests := []struct {
		missed  int
		want    Prize
		message string
	}{
		{0, PrizeJackpot, "You are amazing!  You win!!"},
		{1, PrizeCash, "Congrats. You win $1000!"},
		{2, PrizeSoda, "Congrats, you win a free coca-cola"},
		{3, PrizeNone, "Sorry, you lose"},
		{6, PrizeNone, "Sorry, you lose"},
	}

	for _, tt := range tests {
		p := PrizeForMissed(tt.missed)
		assert.Equal(t, tt.want, p)
		assert.Equal(t, tt.message, p.Message())
	}
}

func TestPrizeString(t *testing.T) {
	assert.Equal(t, "jackpot", PrizeJackpot.String())
	assert.Equal(t, "none", PrizeNone.String())
	assert.Equal(t, "unknown", Prize(42).String())
}
