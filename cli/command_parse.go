package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/hyperfixi/lingua/bridge"
	"github.com/hyperfixi/lingua/semantic"
)

// ParseCmd represents the parse command
type ParseCmd struct {
	Text   string `arg:"" help:"Command sentence to parse"`
	Lang   string `short:"l" help:"Source language code (defaults to config default_source)"`
	Format string `help:"Output format (text, json)"`
}

type parseOutput struct {
	Type           string                 `json:"type,omitempty"`
	Action         string                 `json:"action,omitempty"`
	Roles          map[string]roleBinding `json:"roles,omitempty"`
	UsedDirectPath bool                   `json:"usedDirectPath"`
	FallbackText   string                 `json:"fallbackText,omitempty"`
	ExtractionRate float64                `json:"extractionRate"`
}

type roleBinding struct {
	Value      string `json:"value"`
	IsSelector bool   `json:"isSelector"`
}

func (cmd *ParseCmd) Run(ctx *Context) error {
	config, err := LoadConfig(ctx.Config)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	lang, err := resolveLanguage(cmd.Lang, config.DefaultSource)
	if err != nil {
		return err
	}

	format, err := resolveFormat(cmd.Format, config)
	if err != nil {
		return err
	}

	br := bridge.New()
	details := br.ParseToASTWithDetails(cmd.Text, lang)

	output := parseOutput{
		UsedDirectPath: details.UsedDirectPath,
		FallbackText:   details.FallbackText,
		ExtractionRate: details.ExtractionRate,
	}

	if details.Statement != nil {
		output.Type = details.Statement.Type
		output.Action = string(details.Statement.Action)
		output.Roles = make(map[string]roleBinding, len(details.Statement.Roles))

		for role, binding := range details.Statement.Roles {
			output.Roles[string(role)] = roleBinding{
				Value:      binding.Value,
				IsSelector: binding.IsSelector,
			}
		}
	}

	if format == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		return encoder.Encode(output)
	}

	if details.Statement == nil {
		if !ctx.Quiet {
			color.Yellow("No command recognized; input passes through unchanged")
			fmt.Printf("fallback: %s\n", details.FallbackText)
		}

		return nil
	}

	fmt.Printf("action: %s\n", output.Action)

	for _, role := range semantic.ArgumentRoles() {
		binding, ok := output.Roles[string(role)]
		if !ok {
			continue
		}

		marker := ""
		if binding.IsSelector {
			marker = " (selector)"
		}

		fmt.Printf("  %-11s %s%s\n", role, binding.Value, marker)
	}

	fmt.Printf("extraction: %.2f\n", output.ExtractionRate)

	return nil
}
