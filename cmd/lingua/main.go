package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/hyperfixi/lingua/cli"
)

// CLI represents the command-line interface
var CLI struct {
	Config    string           `help:"Configuration file path" default:""`
	Verbose   bool             `help:"Enable verbose output" short:"v"`
	Quiet     bool             `help:"Suppress output" short:"q"`
	Translate cli.TranslateCmd `cmd:"" help:"Translate a command sentence into other languages"`
	Parse     cli.ParseCmd     `cmd:"" help:"Parse a command sentence and show its semantic structure"`
	Languages cli.LanguagesCmd `cmd:"" help:"List supported languages"`
	Matrix    cli.MatrixCmd    `cmd:"" help:"Translate a sentence into every supported language"`
	Doc       cli.DocCmd       `cmd:"" help:"Scan markdown files and translate their command blocks"`
	Export    cli.ExportCmd    `cmd:"" help:"Export command blocks as an XLIFF document"`
	Version   cli.VersionCmd   `cmd:"" help:"Show version information"`
}

func main() {
	ctx := kong.Parse(&CLI)

	appCtx := &cli.Context{
		Config:  CLI.Config,
		Verbose: CLI.Verbose,
		Quiet:   CLI.Quiet,
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
