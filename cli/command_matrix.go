package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"

	lingua "github.com/hyperfixi/lingua"
	"github.com/hyperfixi/lingua/bridge"
)

// MatrixCmd represents the matrix command: one sentence fanned out to
// every supported language at once.
type MatrixCmd struct {
	Text   string `arg:"" help:"Command sentence to translate"`
	From   string `short:"f" help:"Source language code (defaults to config default_source)"`
	Format string `help:"Output format (text, json)"`
}

func (cmd *MatrixCmd) Run(ctx *Context) error {
	config, err := LoadConfig(ctx.Config)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	source, err := resolveLanguage(cmd.From, config.DefaultSource)
	if err != nil {
		return err
	}

	format, err := resolveFormat(cmd.Format, config)
	if err != nil {
		return err
	}

	br := bridge.New()
	all := br.AllTranslations(cmd.Text, source)

	results := make([]translationOutput, 0, len(all))

	for _, code := range lingua.SupportedLanguages() {
		result, ok := all[code]
		if !ok {
			continue
		}

		results = append(results, translationOutput{
			Target:     string(code),
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
		line := fmt.Sprintf("%-4s %s  (%.2f)", result.Target, result.Output, result.Confidence)

		if !result.Semantic && config.Output.ColorEnabled() {
			color.Yellow("%s", line)
		} else {
			fmt.Println(line)
		}
	}

	return nil
}
