package main

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"hack_assembler/util"
)

// A three pass assembler for the hack machine language. The input is cleaned
// source (comments stripped, one instruction or label declaration per line, see
// preprocessor.go) and the output is one 16 bit binary string per instruction.

// The passes run in a fixed order because each one consumes the complete result
// of the one before it:
// * pass 1 walks the source and records the instruction index every (label)
//   declaration points at.
// * pass 2 walks the source again and hands out RAM addresses, starting at 16,
//   to every @symbol that is neither a number, a predefined symbol nor a label.
// * pass 3 translates line by line, resolving @ operands against the two tables
//   and encoding everything else as a compute instruction.

const (
	addressPrefix = '@'
	labelOpen     = '('
	labelClose    = ')'

	// variableBaseAddr is the first RAM address handed to user variables,
	// right behind the predefined registers R0-R15.
	variableBaseAddr = 16

	// addressWidth is the instruction width. Values whose binary form needs
	// more characters than this cannot be encoded.
	addressWidth = 16

	cInstructionPrefix = "111"
	noDestCode         = "000"
	noJumpCode         = "000"
)

type Assembler struct {
	line          int
	labelTable    map[string]int
	variableTable map[string]int
	commands      []Command
}

func CreateAssembler() *Assembler {
	return &Assembler{}
}

type CommandType int

const (
	ACommand_Constant CommandType = iota
	ACommand_Predefined
	ACommand_Label
	ACommand_Variable
	CCommand
)

type Command struct {
	Tp              CommandType
	Code            string
	Line            int
	OriginalContent string
}

func (command Command) String() string {
	return fmt.Sprintf("Command: {Tp: %d, Code: %s, Line: %d, OriginalContent: %s}", command.Tp, command.Code,
		command.Line, command.OriginalContent)
}

// Assemble runs the three passes over the cleaned source and returns the binary
// codes joined by single newlines, without a trailing one. Every call builds its
// tables from scratch, so the same source always yields the same output and
// nothing leaks between runs. On any error no output is returned at all.
func (asm *Assembler) Assemble(source string) (string, error) {
	lines := splitSourceLines(source)
	asm.commands = nil
	asm.labelTable = buildLabelTable(lines)
	asm.variableTable = buildVariableTable(lines, asm.labelTable)
	return asm.translate(lines)
}

// splitSourceLines splits the cleaned source on newlines and trims every line.
// Lines that end up empty are kept in place so that the line numbers reported
// in errors still match the original file.
func splitSourceLines(source string) []string {
	lines := strings.Split(source, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return lines
}

// labelKey wraps a symbol the way a label declaration spells it, which is the
// form the label table is keyed by.
func labelKey(symbol string) string {
	return string(labelOpen) + symbol + string(labelClose)
}

// buildLabelTable records for every label declaration the index of the
// instruction that follows it. The counter only moves on instruction lines, a
// declaration itself takes no instruction slot. The declaration's exact text,
// delimiters included, is the key; a malformed declaration like "(END" simply
// becomes the key "(END" and can then never be referenced, which is accepted.
// The first declaration of a label wins, later ones are ignored.
func buildLabelTable(lines []string) map[string]int {
	labelTable := map[string]int{}
	counter := 0
	for _, line := range lines {
		if len(line) == 0 {
			continue
		}
		if line[0] != labelOpen {
			counter++
			continue
		}
		if _, exist := labelTable[line]; !exist {
			labelTable[line] = counter
		}
	}
	return labelTable
}

// buildVariableTable allocates a RAM address to every @symbol operand that is
// not a decimal constant, not a label and not predefined, in first occurrence
// order starting at variableBaseAddr. Re-use of a symbol keeps its first
// address. The allocation order matters: it makes output reproducible across
// runs of the same source.
func buildVariableTable(lines []string, labelTable map[string]int) map[string]int {
	variableTable := map[string]int{}
	addr := variableBaseAddr
	for _, line := range lines {
		if len(line) == 0 || line[0] != addressPrefix {
			continue
		}
		symbol := line[1:]
		if util.IsAllNumber(symbol) {
			continue
		}
		if _, exist := labelTable[labelKey(symbol)]; exist {
			continue
		}
		if _, exist := predefinedVariables[symbol]; exist {
			continue
		}
		if _, exist := variableTable[symbol]; exist {
			continue
		}
		variableTable[symbol] = addr
		addr++
	}
	return variableTable
}

// translate is the third pass. Label declarations and blank lines produce no
// output, everything else becomes exactly one 16 bit code.
func (asm *Assembler) translate(lines []string) (string, error) {
	for i, line := range lines {
		asm.line = i + 1
		if len(line) == 0 {
			continue
		}
		var err error
		switch line[0] {
		case labelOpen:
			// Declarations were consumed by pass 1.
		case addressPrefix:
			err = asm.transformACommand(line)
		default:
			err = asm.transformCCommand(line)
		}
		if err != nil {
			return "", err
		}
	}
	codes := make([]string, 0, len(asm.commands))
	for _, command := range asm.commands {
		codes = append(codes, command.Code)
	}
	return strings.Join(codes, "\n"), nil
}

// transformACommand resolves the operand of an @ instruction. The order of the
// checks is load bearing: a decimal constant always wins, then a predefined
// symbol, then a label, and only what is left over resolves as a variable. A
// symbol that is declared as a label somewhere in the source must never fall
// through to the variable table.
func (asm *Assembler) transformACommand(line string) error {
	symbol := line[1:]
	if util.IsAllNumber(symbol) {
		value, err := strconv.Atoi(symbol)
		if err != nil {
			return asm.makeSyntaxErr(fmt.Sprintf("value %s exceeds the %d bit instruction width", symbol, addressWidth))
		}
		code, err := formatCode(value)
		if err != nil {
			return asm.makeSyntaxErr(err.Error())
		}
		asm.commands = append(asm.commands, Command{
			Tp:              ACommand_Constant,
			Code:            code,
			Line:            asm.line,
			OriginalContent: line,
		})
		return nil
	}
	if code, exist := predefinedVariables[symbol]; exist {
		asm.commands = append(asm.commands, Command{
			Tp:              ACommand_Predefined,
			Code:            code,
			Line:            asm.line,
			OriginalContent: line,
		})
		return nil
	}
	if index, exist := asm.labelTable[labelKey(symbol)]; exist {
		code, err := formatCode(index)
		if err != nil {
			return asm.makeSyntaxErr(err.Error())
		}
		asm.commands = append(asm.commands, Command{
			Tp:              ACommand_Label,
			Code:            code,
			Line:            asm.line,
			OriginalContent: line,
		})
		return nil
	}
	addr, exist := asm.variableTable[symbol]
	if !exist {
		// Pass 2 allocates every symbol that can reach this point, so a miss
		// means the caller skipped it. Refuse rather than emit address zero.
		return asm.makeSyntaxErr(fmt.Sprintf("no address allocated for symbol %s", symbol))
	}
	code, err := formatCode(addr)
	if err != nil {
		return asm.makeSyntaxErr(err.Error())
	}
	asm.commands = append(asm.commands, Command{
		Tp:              ACommand_Variable,
		Code:            code,
		Line:            asm.line,
		OriginalContent: line,
	})
	return nil
}

// transformCCommand encodes a compute instruction dest=comp;jump where both the
// dest and the jump part may be absent. The emitted code is the fixed prefix
// 111 followed by the 7 bit comp field, 3 bit dest field and 3 bit jump field.
func (asm *Assembler) transformCCommand(line string) error {
	destCodeStr, remainder, err := asm.parseCCommandDestCode(line)
	if err != nil {
		return err
	}
	jumpCodeStr, remainder, err := asm.parseCCommandJumpCode(remainder)
	if err != nil {
		return err
	}
	compCodeStr, err := asm.parseCCommandCompCode(remainder)
	if err != nil {
		return err
	}
	asm.commands = append(asm.commands, Command{
		Tp:              CCommand,
		Code:            cInstructionPrefix + compCodeStr + destCodeStr + jumpCodeStr,
		Line:            asm.line,
		OriginalContent: line,
	})
	return nil
}

func (asm *Assembler) parseCCommandDestCode(line string) (string, string, error) {
	dest := strings.IndexByte(line, '=')
	if dest == -1 {
		return noDestCode, line, nil
	}
	destCodeStr, exist := cCommandDestMap[line[:dest]]
	if !exist {
		return "", "", asm.makeSyntaxErr(fmt.Sprintf("unknown dest mnemonic near %s", line))
	}
	return destCodeStr, line[dest+1:], nil
}

func (asm *Assembler) parseCCommandJumpCode(line string) (string, string, error) {
	jump := strings.IndexByte(line, ';')
	if jump == -1 {
		return noJumpCode, line, nil
	}
	jumpCodeStr, exist := cCommandJumpMap[line[jump+1:]]
	if !exist {
		return "", "", asm.makeSyntaxErr(fmt.Sprintf("unknown jump mnemonic near %s", line))
	}
	return jumpCodeStr, line[:jump], nil
}

func (asm *Assembler) parseCCommandCompCode(line string) (string, error) {
	entry, exist := cCommandCompMap[line]
	if !exist {
		return "", asm.makeSyntaxErr(fmt.Sprintf("unknown comp mnemonic near %s", line))
	}
	return entry.a + entry.code, nil
}

// formatCode turns a non negative value into its base 2 text left padded with
// zeros to exactly addressWidth characters. A value whose binary form is wider
// than that cannot be represented and aborts the whole translation; it is never
// truncated or wrapped.
func formatCode(value int) (string, error) {
	code := strconv.FormatInt(int64(value), 2)
	if value < 0 || len(code) > addressWidth {
		return "", errors.New(fmt.Sprintf("value %d exceeds the %d bit instruction width", value, addressWidth))
	}
	return strings.Repeat("0", addressWidth-len(code)) + code, nil
}

func (asm *Assembler) makeSyntaxErr(msg string) error {
	return errors.New(fmt.Sprintf("syntax err at line %d: %s", asm.line, msg))
}

func (asm *Assembler) convertCommandsToString() string {
	bf := bytes.Buffer{}
	for _, command := range asm.commands {
		bf.WriteString(fmt.Sprintf("%s\n", command))
	}
	return bf.String()
}

func (asm *Assembler) printAllCommands() {
	println(asm.convertCommandsToString())
}
