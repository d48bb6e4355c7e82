package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFloatPrefix(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"2", 2},
		{"5abc", 5},
		{"  -3.25kg", -3.25},
		{".5", 0.5},
		{"5.", 5},
		{"1e3x", 1000},
		{"1e", 1},
		{"1e+", 1},
		{"2E-2", 0.02},
		{"+7", 7},
		{"0x10", 0},
		{"Infinity", math.Inf(1)},
		{"-Infinityx", math.Inf(-1)},
		{"1e400", math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseFloatPrefix(tt.in))
		})
	}
}

func TestParseFloatPrefix_NaN(t *testing.T) {
	for _, in := range []string{"", "foo", "-", ".", "+.", "e5", "infinity", "x5"} {
		assert.True(t, math.IsNaN(ParseFloatPrefix(in)), "input %q", in)
	}
}

func TestParseIntPrefix(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"7", 7, true},
		{"12.9", 12, true},
		{" 3 ", 3, true},
		{"-4", -4, true},
		{"0x10", 16, true},
		{"0xg", 0, false},
		{"20abc", 20, true},
		{"abc", 0, false},
		{"", 0, false},
		{"99999999999999999999", math.MaxInt32, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			n, ok := ParseIntPrefix(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, n)
			}
		})
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{5, "5"},
		{-2.5, "-2.5"},
		{0.1 + 0.2, "0.30000000000000004"},
		{math.Copysign(0, -1), "0"},
		{1e21, "1e+21"},
		{123456789012345680000, "123456789012345680000"},
		{1.5e-7, "1.5e-7"},
		{0.000001, "0.000001"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatNumber(tt.in))
	}
}
