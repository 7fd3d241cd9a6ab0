package cli

import (
	"encoding/json"
	"fmt"
	"os"

	lingua "github.com/hyperfixi/lingua"
)

// LanguagesCmd represents the languages command
type LanguagesCmd struct {
	Format string `help:"Output format (text, json)"`
}

type languageOutput struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	NativeName string `json:"nativeName"`
	Direction  string `json:"direction"`
	WordOrder  string `json:"wordOrder"`
}

func (cmd *LanguagesCmd) Run(ctx *Context) error {
	config, err := LoadConfig(ctx.Config)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	format, err := resolveFormat(cmd.Format, config)
	if err != nil {
		return err
	}

	infos := lingua.AllLanguageInfo()

	if format == "json" {
		results := make([]languageOutput, 0, len(infos))
		for _, info := range infos {
			results = append(results, languageOutput{
				Code:       string(info.Code),
				Name:       info.Name,
				NativeName: info.NativeName,
				Direction:  string(info.Direction),
				WordOrder:  string(info.WordOrder),
			})
		}

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		return encoder.Encode(results)
	}

	fmt.Printf("%-4s %-12s %-18s %-4s %s\n", "CODE", "NAME", "NATIVE", "DIR", "ORDER")

	for _, info := range infos {
		fmt.Printf("%-4s %-12s %-18s %-4s %s\n",
			info.Code, info.Name, info.NativeName, info.Direction, info.WordOrder)
	}

	return nil
}
