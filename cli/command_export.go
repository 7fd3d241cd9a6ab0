package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	lingua "github.com/hyperfixi/lingua"
	"github.com/hyperfixi/lingua/bridge"
	"github.com/hyperfixi/lingua/docscan"
	"github.com/hyperfixi/lingua/xliff"
)

// ExportCmd represents the export command: scan a markdown file and write
// its command sentences as an XLIFF 1.2 document.
type ExportCmd struct {
	File   string   `arg:"" help:"Markdown file with command blocks" type:"path"`
	From   string   `short:"f" help:"Source language code (defaults to front matter, then config)"`
	To     []string `short:"t" help:"Target language codes (defaults to config targets)"`
	Output string   `short:"o" help:"Output file (defaults to the config output directory)" type:"path"`
}

func (cmd *ExportCmd) Run(ctx *Context) error {
	config, err := LoadConfig(ctx.Config)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	targets, err := resolveTargets(cmd.To, config)
	if err != nil {
		return err
	}

	f, err := os.Open(cmd.File)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", cmd.File, err)
	}
	defer f.Close()

	fallback := lingua.LanguageCode(config.DefaultSource)

	doc, err := docscan.Parse(f, fallback, config.Doc.CodeBlockTags)
	if err != nil {
		return fmt.Errorf("failed to scan %s: %w", cmd.File, err)
	}

	source := doc.SourceLang
	if cmd.From != "" {
		source, err = resolveLanguage(cmd.From, "")
		if err != nil {
			return err
		}
	}

	sentences := collectSentences(doc)
	if len(sentences) == 0 {
		return fmt.Errorf("%w: %s has no command blocks", ErrNoInputFiles, cmd.File)
	}

	br := bridge.New()

	files, err := xliff.Build(cmd.File, config.Export.Datatype, source, targets, sentences, br)
	if err != nil {
		return err
	}

	outputPath := cmd.Output
	if outputPath == "" {
		base := strings.TrimSuffix(filepath.Base(cmd.File), filepath.Ext(cmd.File))
		outputPath = filepath.Join(config.Export.OutputDir, base+".xlf")
	}

	err = os.MkdirAll(filepath.Dir(outputPath), 0o755)
	if err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outputPath, err)
	}
	defer out.Close()

	err = xliff.Encode(out, files)
	if err != nil {
		return err
	}

	if !ctx.Quiet {
		color.Green("Exported %d sentence(s) x %d language(s) to %s",
			len(sentences), len(targets), outputPath)
	}

	return nil
}

func collectSentences(doc *docscan.Document) []string {
	var sentences []string

	for _, block := range doc.Blocks {
		for _, line := range strings.Split(block.Text, "\n") {
			sentence := strings.TrimSpace(line)
			if sentence != "" {
				sentences = append(sentences, sentence)
			}
		}
	}

	return sentences
}
