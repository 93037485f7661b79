package main

// The constant tables of the hack instruction set. They are lookup data only,
// shared by every translation run and never written after this file is loaded.

// predefinedVariables maps every predefined symbol to the 16 bit binary code an
// A instruction emits for it. The values are kept as ready made binary strings
// because that is exactly what the translator writes out, no re-encoding needed.
// Note that SP and R0 intentionally carry the same address zero code: on the hack
// platform the stack pointer lives in RAM[0]. Keep both entries, this aliasing is
// part of the instruction set, not a duplicate to clean up.
var predefinedVariables = map[string]string{
	"SP":     "0000000000000000",
	"LCL":    "0000000000000001",
	"ARG":    "0000000000000010",
	"THIS":   "0000000000000011",
	"THAT":   "0000000000000100",
	"R0":     "0000000000000000",
	"R1":     "0000000000000001",
	"R2":     "0000000000000010",
	"R3":     "0000000000000011",
	"R4":     "0000000000000100",
	"R5":     "0000000000000101",
	"R6":     "0000000000000110",
	"R7":     "0000000000000111",
	"R8":     "0000000000001000",
	"R9":     "0000000000001001",
	"R10":    "0000000000001010",
	"R11":    "0000000000001011",
	"R12":    "0000000000001100",
	"R13":    "0000000000001101",
	"R14":    "0000000000001110",
	"R15":    "0000000000001111",
	"SCREEN": "0100000000000000",
	"KBD":    "0110000000000000",
}

// compEntry is one row of the comp table. The a bit selects the second operand
// source of the ALU: "0" reads the A register, "1" reads M, the memory word A
// points at. code is the 6 bit ALU control pattern. The emitted comparison field
// is a followed by code.
type compEntry struct {
	a    string
	code string
}

// cCommandCompMap maps every comp mnemonic to its a bit and ALU pattern. The A
// and M forms of a computation share the same 6 bit pattern and differ only in
// the a bit (for example -A and -M both carry 110011), so the duplicated
// patterns below are intentional.
var cCommandCompMap = map[string]compEntry{
	"0":   {"0", "101010"},
	"1":   {"0", "111111"},
	"-1":  {"0", "111010"},
	"D":   {"0", "001100"},
	"A":   {"0", "110000"},
	"!D":  {"0", "001101"},
	"!A":  {"0", "110001"},
	"-D":  {"0", "001111"},
	"-A":  {"0", "110011"},
	"D+1": {"0", "011111"},
	"A+1": {"0", "110111"},
	"D-1": {"0", "001110"},
	"A-1": {"0", "110010"},
	"D+A": {"0", "000010"},
	"D-A": {"0", "010011"},
	"A-D": {"0", "000111"},
	"D&A": {"0", "000000"},
	"D|A": {"0", "010101"},

	"M":   {"1", "110000"},
	"!M":  {"1", "110001"},
	"-M":  {"1", "110011"},
	"M+1": {"1", "110111"},
	"M-1": {"1", "110010"},
	"D+M": {"1", "000010"},
	"D-M": {"1", "010011"},
	"M-D": {"1", "000111"},
	"D&M": {"1", "000000"},
	"D|M": {"1", "010101"},
}

var cCommandDestMap = map[string]string{
	"M":   "001",
	"D":   "010",
	"MD":  "011",
	"A":   "100",
	"AM":  "101",
	"AD":  "110",
	"AMD": "111",
}

var cCommandJumpMap = map[string]string{
	"JGT": "001",
	"JEQ": "010",
	"JGE": "011",
	"JLT": "100",
	"JNE": "101",
	"JLE": "110",
	"JMP": "111",
}
