package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/hyperfixi/lingua/bridge"
)

// TranslateCmd represents the translate command
type TranslateCmd struct {
	Text    string   `arg:"" help:"Command sentence to translate"`
	From    string   `short:"f" help:"Source language code (defaults to config default_source)"`
	To      []string `short:"t" help:"Target language codes (defaults to config targets)"`
	Format  string   `help:"Output format (text, json)"`
	Details bool     `help:"Show confidence and translation path"`
}

type translationOutput struct {
	Target     string  `json:"target"`
	Output     string  `json:"output"`
	Semantic   bool    `json:"semantic"`
	Confidence float64 `json:"confidence"`
}

func (cmd *TranslateCmd) Run(ctx *Context) error {
	config, err := LoadConfig(ctx.Config)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	source, err := resolveLanguage(cmd.From, config.DefaultSource)
	if err != nil {
		return err
	}

	targets, err := resolveTargets(cmd.To, config)
	if err != nil {
		return err
	}

	format, err := resolveFormat(cmd.Format, config)
	if err != nil {
		return err
	}

	if ctx.Verbose {
		color.Blue("Translating from %s to %d target(s)", source, len(targets))
	}

	br := bridge.New()

	results := make([]translationOutput, 0, len(targets))

	for _, target := range targets {
		result := br.TranslateWithDetails(cmd.Text, source, target)

		results = append(results, translationOutput{
			Target:     string(target),
			Output:     result.Output,
			Semantic:   result.UsedSemantic,
			Confidence: result.Confidence,
		})
	}

	if format == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		return encoder.Encode(results)
	}

	for _, result := range results {
		if cmd.Details {
			path := "semantic"
			if !result.Semantic {
				path = "passthrough"
			}

			fmt.Printf("%-4s %s  (%s, %.2f)\n", result.Target, result.Output, path, result.Confidence)
		} else {
			fmt.Printf("%-4s %s\n", result.Target, result.Output)
		}
	}

	return nil
}
