package main

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPredefinedVariables(t *testing.T) {
	// R0-R15 encode their register number.
	for i := 0; i < 16; i++ {
		code, err := formatCode(i)
		assert.Nil(t, err)
		assert.Equal(t, code, predefinedVariables[fmt.Sprintf("R%d", i)])
	}
	assert.Equal(t, "0100000000000000", predefinedVariables["SCREEN"])
	assert.Equal(t, "0110000000000000", predefinedVariables["KBD"])
	assert.Equal(t, "0000000000000001", predefinedVariables["LCL"])
	assert.Equal(t, "0000000000000010", predefinedVariables["ARG"])
	assert.Equal(t, "0000000000000011", predefinedVariables["THIS"])
	assert.Equal(t, "0000000000000100", predefinedVariables["THAT"])

	// SP aliases R0 at address zero.
	assert.Equal(t, predefinedVariables["R0"], predefinedVariables["SP"])
	assert.Equal(t, "0000000000000000", predefinedVariables["SP"])

	assert.Equal(t, 23, len(predefinedVariables))
	for symbol, code := range predefinedVariables {
		assert.Equal(t, addressWidth, len(code), symbol)
	}
}

func TestCompTable(t *testing.T) {
	assert.Equal(t, 28, len(cCommandCompMap))
	for mnemonic, entry := range cCommandCompMap {
		assert.Equal(t, 1, len(entry.a), mnemonic)
		assert.Equal(t, 6, len(entry.code), mnemonic)
	}

	// The A and M forms of a computation share the ALU pattern and differ
	// only in the a bit.
	pairs := [][2]string{
		{"A", "M"},
		{"!A", "!M"},
		{"-A", "-M"},
		{"A+1", "M+1"},
		{"A-1", "M-1"},
		{"D+A", "D+M"},
		{"D-A", "D-M"},
		{"A-D", "M-D"},
		{"D&A", "D&M"},
		{"D|A", "D|M"},
	}
	for _, pair := range pairs {
		assert.Equal(t, cCommandCompMap[pair[0]].code, cCommandCompMap[pair[1]].code, pair[0])
		assert.Equal(t, "0", cCommandCompMap[pair[0]].a, pair[0])
		assert.Equal(t, "1", cCommandCompMap[pair[1]].a, pair[1])
	}
}

func TestDestAndJumpTables(t *testing.T) {
	assert.Equal(t, 7, len(cCommandDestMap))
	assert.Equal(t, 7, len(cCommandJumpMap))
	for mnemonic, code := range cCommandDestMap {
		assert.Equal(t, 3, len(code), mnemonic)
	}
	for mnemonic, code := range cCommandJumpMap {
		assert.Equal(t, 3, len(code), mnemonic)
	}
	// Both fields encode 000 when absent, so no mnemonic may claim that code.
	for mnemonic, code := range cCommandDestMap {
		assert.NotEqual(t, noDestCode, code, mnemonic)
	}
	for mnemonic, code := range cCommandJumpMap {
		assert.NotEqual(t, noJumpCode, code, mnemonic)
	}
}
