package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	lingua "github.com/hyperfixi/lingua"
	"github.com/hyperfixi/lingua/bridge"
	"github.com/hyperfixi/lingua/docscan"
)

// DocCmd represents the doc command: scan markdown files for command
// blocks and translate them.
type DocCmd struct {
	Files []string `arg:"" optional:"" help:"Markdown files to scan (defaults to config doc patterns)" type:"path"`
	To    string   `short:"t" required:"" help:"Target language code"`
}

func (cmd *DocCmd) Run(ctx *Context) error {
	config, err := LoadConfig(ctx.Config)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	target, err := resolveLanguage(cmd.To, "")
	if err != nil {
		return err
	}

	files, err := collectDocFiles(cmd.Files, config.Doc.Patterns)
	if err != nil {
		return err
	}

	fallback := lingua.LanguageCode(config.DefaultSource)
	br := bridge.New()

	for _, file := range files {
		err := cmd.translateFile(ctx, config, br, file, fallback, target)
		if err != nil {
			return err
		}
	}

	return nil
}

func (cmd *DocCmd) translateFile(ctx *Context, config *lingua.Config, br *bridge.Bridge, file string, fallback, target lingua.LanguageCode) error {
	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", file, err)
	}
	defer f.Close()

	doc, err := docscan.Parse(f, fallback, config.Doc.CodeBlockTags)
	if err != nil {
		return fmt.Errorf("failed to scan %s: %w", file, err)
	}

	if len(doc.Blocks) == 0 {
		if ctx.Verbose {
			color.Blue("%s: no command blocks", file)
		}

		return nil
	}

	if !ctx.Quiet {
		color.Cyan("%s (%s -> %s)", file, doc.SourceLang, target)
	}

	for _, translation := range docscan.Translate(doc, br, target) {
		for _, line := range translation.Lines {
			if line.Result.UsedSemantic || !config.Output.ColorEnabled() {
				fmt.Printf("  %d: %s\n", line.Line, line.Result.Output)
			} else {
				color.Yellow("  %d: %s (passthrough)", line.Line, line.Result.Output)
			}
		}
	}

	return nil
}

// collectDocFiles expands the configured patterns when no files are named
// on the command line. A pattern naming a directory scans its markdown
// files.
func collectDocFiles(files, patterns []string) ([]string, error) {
	if len(files) > 0 {
		return files, nil
	}

	var collected []string

	for _, pattern := range patterns {
		info, err := os.Stat(pattern)
		if err == nil && info.IsDir() {
			pattern = filepath.Join(pattern, "*.md")
		}

		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid doc pattern %s: %w", pattern, err)
		}

		collected = append(collected, matches...)
	}

	if len(collected) == 0 {
		return nil, ErrNoInputFiles
	}

	return collected, nil
}
