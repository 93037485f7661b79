package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"strings"
)

// a simple program that accepts a hack assemble code file and transforms the
// content to the corresponding hack machine language, one 16 bit binary code
// per line. usage:
//
//	assembler [-o output.hack] [-v] input.asm

var (
	outputPath = flag.String("o", "", "the output hack binary code file path, <input>.hack when empty")
	verbose    = flag.Bool("v", false, "whether print all translated commands")
)

const sourceSuffix = ".asm"
const outputSuffix = ".hack"

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Printf("[Assembler]: usage: assembler [-o output%s] [-v] input%s\n", outputSuffix, sourceSuffix)
		os.Exit(1)
	}
	inputPath := flag.Arg(0)
	content, err := ioutil.ReadFile(inputPath)
	if err != nil {
		fmt.Printf("[Assembler]: failed to read file: %s, err: %v\n", inputPath, err)
		os.Exit(1)
	}
	asm := CreateAssembler()
	output, err := asm.Assemble(Preprocess(string(content)))
	if err != nil {
		fmt.Printf("[Assembler]: failed to assemble file: %s, err: %v\n", inputPath, err)
		os.Exit(1)
	}
	if *verbose {
		asm.printAllCommands()
	}
	path := *outputPath
	if path == "" {
		path = defaultOutputPath(inputPath)
	}
	err = ioutil.WriteFile(path, []byte(output), 0666)
	if err != nil {
		fmt.Printf("[Assembler]: failed to save to path: %s, err: %v\n", path, err)
		os.Exit(1)
	}
}

// defaultOutputPath derives prog.hack from prog.asm; a source file with any
// other name just gets the output suffix appended.
func defaultOutputPath(inputPath string) string {
	if strings.HasSuffix(inputPath, sourceSuffix) {
		return strings.TrimSuffix(inputPath, sourceSuffix) + outputSuffix
	}
	return inputPath + outputSuffix
}
