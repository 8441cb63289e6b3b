package main

import (
	"fmt"
	"os"

	"github.com/sanity-io/litter"

	"tinylang/internal/evaluator"
	"tinylang/internal/hostio"
	"tinylang/internal/importer"
	"tinylang/internal/lexer"
	"tinylang/internal/parser"
)

func main() {
	var (
		dumpTokens bool
		dumpAst    bool
		sourcePath = "sample.tl"
	)

	positionalSeen := false
	for _, arg := range os.Args[1:] {
		switch arg {
		case "--dump-tokens":
			dumpTokens = true
		case "--dump-ast":
			dumpAst = true
		default:
			if !positionalSeen {
				sourcePath = arg
				positionalSeen = true
			}
		}
	}

	if err := run(sourcePath, dumpTokens, dumpAst); err != nil {
		fmt.Fprintf(os.Stderr, "tinylang: %s\n", err)
		os.Exit(1)
	}
}

func run(sourcePath string, dumpTokens, dumpAst bool) error {
	source, err := importer.Splice(sourcePath)
	if err != nil {
		return err
	}

	tokens, err := lexer.NewLexer(source).Tokenize()
	if err != nil {
		return err
	}
	if dumpTokens {
		for _, tok := range tokens {
			fmt.Println(tok.String())
		}
		if !dumpAst {
			return nil
		}
	}

	p := parser.NewParser(sourcePath, lexer.NewTokenScanner(tokens))
	stmts, err := p.Parse()
	if err != nil {
		return err
	}
	if dumpAst {
		litter.Dump(stmts)
		return nil
	}

	eval := evaluator.New(os.Stdout, hostio.NewStdinFromOS(), hostio.NewFiles())
	return eval.Run(stmts)
}
