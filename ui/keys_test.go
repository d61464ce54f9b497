//go:build cgo

package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"

	"calculator/core/calc"
)

// TestClassifyKey tests named key classification
func TestClassifyKey(t *testing.T) {
	tests := []struct {
		name     fyne.KeyName
		expected calc.Intent
		ok       bool
	}{
		{name: fyne.KeyReturn, expected: calc.Equals, ok: true},
		{name: fyne.KeyEnter, expected: calc.Equals, ok: true},
		{name: fyne.KeyBackspace, expected: calc.Delete, ok: true},
		{name: fyne.KeyDelete, expected: calc.Delete, ok: true},
		{name: fyne.KeyEscape, expected: calc.Clear, ok: true},
		{name: fyne.KeyTab},
		{name: fyne.Key5},
		{name: fyne.KeyEqual},
		{name: fyne.KeyP},
	}

	for _, tt := range tests {
		t.Run(string(tt.name), func(t *testing.T) {
			in, ok := classifyKey(tt.name)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, in)
		})
	}
}

// TestClassifyRune tests typed character classification
func TestClassifyRune(t *testing.T) {
	tests := []struct {
		r        rune
		expected calc.Intent
		ok       bool
	}{
		{r: '=', expected: calc.Equals, ok: true},
		{r: '+', expected: calc.Op(calc.OpAdd), ok: true},
		{r: '-', expected: calc.Op(calc.OpSubtract), ok: true},
		{r: '*', expected: calc.Op(calc.OpMultiply), ok: true},
		{r: '/', expected: calc.Op(calc.OpDivide), ok: true},
		{r: 'p', expected: calc.Op(calc.OpPower), ok: true},
		{r: 'P', expected: calc.Op(calc.OpPower), ok: true},
		{r: '7', expected: calc.Digit("7"), ok: true},
		{r: '.', expected: calc.Digit("."), ok: true},
		{r: ' '},
		{r: '\t'},
		{r: '^'},
		{r: 'x'},
		{r: ','},
	}

	for _, tt := range tests {
		t.Run(string(tt.r), func(t *testing.T) {
			in, ok := classifyRune(tt.r)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, in)
		})
	}
}

func TestIntentForLabel(t *testing.T) {
	for _, row := range gridMask {
		for _, label := range row {
			_, ok := intentForLabel(label)
			assert.True(t, ok, label)
		}
	}

	in, _ := intentForLabel("N")
	assert.Equal(t, calc.Invert, in)
	in, _ = intentForLabel("^")
	assert.Equal(t, calc.Op(calc.OpPower), in)
	in, _ = intentForLabel("⌫")
	assert.Equal(t, calc.Delete, in)

	_, ok := intentForLabel("?")
	assert.False(t, ok)
}
