// Package xliff exports translation sets as XLIFF 1.2 documents so the
// output of the semantic bridge can flow into standard localization
// tooling.
package xliff

import (
	"fmt"
	"io"
	"strconv"

	"github.com/beevik/etree"
	"github.com/google/uuid"

	lingua "github.com/hyperfixi/lingua"
	"github.com/hyperfixi/lingua/bridge"
)

const xliffNamespace = "urn:oasis:names:tc:xliff:document:1.2"

// Sentinel errors
var (
	ErrNoXliffElement = fmt.Errorf("no xliff root element found")
	ErrNoFileElement  = fmt.Errorf("no file element found")
)

// Unit is one source/target sentence pair
type Unit struct {
	ID         string
	Source     string
	Target     string
	Confidence float64
	Semantic   bool
}

// File groups the units of one source/target language pair
type File struct {
	Original   string
	SourceLang lingua.LanguageCode
	TargetLang lingua.LanguageCode
	Datatype   string
	Units      []Unit
}

// Build translates every sentence into every target language and groups
// the results into one File per target. Unit ids are fresh UUIDs; the
// same sentence shares its id across targets so tooling can correlate.
func Build(original, datatype string, source lingua.LanguageCode, targets []lingua.LanguageCode, sentences []string, br *bridge.Bridge) ([]File, error) {
	if !lingua.IsLanguageSupported(source) {
		return nil, fmt.Errorf("%w: %s", lingua.ErrUnsupportedLanguage, source)
	}

	ids := make([]string, len(sentences))
	for i := range sentences {
		ids[i] = uuid.NewString()
	}

	files := make([]File, 0, len(targets))

	for _, target := range targets {
		if !lingua.IsLanguageSupported(target) {
			return nil, fmt.Errorf("%w: %s", lingua.ErrUnsupportedLanguage, target)
		}

		file := File{
			Original:   original,
			SourceLang: source,
			TargetLang: target,
			Datatype:   datatype,
			Units:      make([]Unit, 0, len(sentences)),
		}

		for i, sentence := range sentences {
			result := br.TranslateWithDetails(sentence, source, target)

			file.Units = append(file.Units, Unit{
				ID:         ids[i],
				Source:     sentence,
				Target:     result.Output,
				Confidence: result.Confidence,
				Semantic:   result.UsedSemantic,
			})
		}

		files = append(files, file)
	}

	return files, nil
}

// Encode writes the files as one XLIFF 1.2 document
func Encode(w io.Writer, files []File) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("xliff")
	root.CreateAttr("version", "1.2")
	root.CreateAttr("xmlns", xliffNamespace)

	for _, file := range files {
		fileElem := root.CreateElement("file")
		fileElem.CreateAttr("original", file.Original)
		fileElem.CreateAttr("source-language", string(file.SourceLang))
		fileElem.CreateAttr("target-language", string(file.TargetLang))
		fileElem.CreateAttr("datatype", file.Datatype)

		body := fileElem.CreateElement("body")

		for _, unit := range file.Units {
			transUnit := body.CreateElement("trans-unit")
			transUnit.CreateAttr("id", unit.ID)

			sourceElem := transUnit.CreateElement("source")
			sourceElem.SetText(unit.Source)

			targetElem := transUnit.CreateElement("target")
			targetElem.CreateAttr("state", targetState(unit))
			targetElem.SetText(unit.Target)

			note := transUnit.CreateElement("note")
			note.SetText("confidence=" + strconv.FormatFloat(unit.Confidence, 'f', 2, 64))
		}
	}

	doc.Indent(2)

	_, err := doc.WriteTo(w)
	if err != nil {
		return fmt.Errorf("failed to write xliff document: %w", err)
	}

	return nil
}

// Decode reads an XLIFF 1.2 document previously produced by Encode.
// Notes are ignored; the target state maps back to the Semantic flag.
func Decode(r io.Reader) ([]File, error) {
	doc := etree.NewDocument()

	_, err := doc.ReadFrom(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read xliff document: %w", err)
	}

	root := doc.SelectElement("xliff")
	if root == nil {
		return nil, ErrNoXliffElement
	}

	fileElems := root.SelectElements("file")
	if len(fileElems) == 0 {
		return nil, ErrNoFileElement
	}

	files := make([]File, 0, len(fileElems))

	for _, fileElem := range fileElems {
		file := File{
			Original:   fileElem.SelectAttrValue("original", ""),
			SourceLang: lingua.LanguageCode(fileElem.SelectAttrValue("source-language", "")),
			TargetLang: lingua.LanguageCode(fileElem.SelectAttrValue("target-language", "")),
			Datatype:   fileElem.SelectAttrValue("datatype", ""),
		}

		body := fileElem.SelectElement("body")
		if body == nil {
			files = append(files, file)
			continue
		}

		for _, transUnit := range body.SelectElements("trans-unit") {
			unit := Unit{
				ID: transUnit.SelectAttrValue("id", ""),
			}

			if sourceElem := transUnit.SelectElement("source"); sourceElem != nil {
				unit.Source = sourceElem.Text()
			}

			if targetElem := transUnit.SelectElement("target"); targetElem != nil {
				unit.Target = targetElem.Text()
				unit.Semantic = targetElem.SelectAttrValue("state", "") == "translated"
			}

			if note := transUnit.SelectElement("note"); note != nil {
				unit.Confidence = parseConfidenceNote(note.Text())
			}

			file.Units = append(file.Units, unit)
		}

		files = append(files, file)
	}

	return files, nil
}

// targetState maps a unit to the XLIFF state attribute. Passthrough
// output needs a human pass before shipping.
func targetState(unit Unit) string {
	if unit.Semantic {
		return "translated"
	}

	return "needs-review-translation"
}

func parseConfidenceNote(text string) float64 {
	var confidence float64

	_, err := fmt.Sscanf(text, "confidence=%f", &confidence)
	if err != nil {
		return 0
	}

	return confidence
}
