// Package langpack holds the per-language lexicon and grammar tables of the
// semantic bridge. Each language ships as an embedded YAML data file; packs
// are built lazily, exactly once per language, and are read-only afterwards.
package langpack

import (
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/goccy/go-yaml"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	lingua "github.com/hyperfixi/lingua"
	"github.com/hyperfixi/lingua/semantic"
)

//go:embed data/*.yaml
var dataFS embed.FS

// Sentinel errors
var (
	ErrMissingPackData = errors.New("language pack data file not found")
	ErrInvalidPackData = errors.New("invalid language pack data")
	ErrLexiconConflict = errors.New("surface form mapped to more than one meaning")
)

// MarkerPosition tells where a role marker stands relative to its argument
type MarkerPosition string

const (
	// MarkerBefore: prepositions precede their argument (SVO, VSO)
	MarkerBefore MarkerPosition = "before"
	// MarkerAfter: particles follow their argument (SOV)
	MarkerAfter MarkerPosition = "after"
)

// PossessiveOrder tells which side of the connective the possessor stands on
type PossessiveOrder string

const (
	ObjectFirst   PossessiveOrder = "object_first"   // X's Y, X の Y
	PropertyFirst PossessiveOrder = "property_first" // valor de X
)

// Possessive describes a language's possessive surface form. An empty
// connective means plain juxtaposition; such a form renders but cannot be
// recognized while parsing.
type Possessive struct {
	Connective string          `yaml:"connective"`
	Clitic     bool            `yaml:"clitic"` // attaches to the possessor without a space
	Order      PossessiveOrder `yaml:"order"`
}

// Template fixes the token order for one exact role set
type Template struct {
	Roles string   `yaml:"roles"` // canonical role key, e.g. patient+destination
	Order []string `yaml:"order"` // "action" plus role names
}

// packFile is the YAML shape of one language data file
type packFile struct {
	Code           string              `yaml:"code"`
	MarkerPosition MarkerPosition      `yaml:"marker_position"`
	Possessive     Possessive          `yaml:"possessive"`
	Actions        map[string][]string `yaml:"actions"`
	Markers        map[string][]string `yaml:"markers"`
	Templates      []Template          `yaml:"templates"`
	DefaultOrder   []string            `yaml:"default_order"`
}

// Pack is one language's compiled lexicon and grammar. All maps are
// read-only after Load returns.
type Pack struct {
	Info           lingua.LanguageInfo
	MarkerPosition MarkerPosition
	Possessive     Possessive

	actionBySurface map[string]lingua.Action
	surfaceByAction map[lingua.Action]string
	roleBySurface   map[string]semantic.Role
	markerByRole    map[semantic.Role]string
	templates       map[string][]string
	defaultOrder    []string
	lower           cases.Caser
}

// loaders holds one once-cell per supported language. Concurrent first
// calls for the same language converge on a single build.
var loaders = func() map[lingua.LanguageCode]func() (*Pack, error) {
	m := make(map[lingua.LanguageCode]func() (*Pack, error))
	for _, code := range lingua.SupportedLanguages() {
		m[code] = sync.OnceValues(func() (*Pack, error) {
			return build(code)
		})
	}

	return m
}()

// Load returns the pack for a language, building it on first use.
func Load(code lingua.LanguageCode) (*Pack, error) {
	loader, ok := loaders[code]
	if !ok {
		return nil, fmt.Errorf("%w: %s", lingua.ErrUnsupportedLanguage, code)
	}

	return loader()
}

func build(code lingua.LanguageCode) (*Pack, error) {
	info, ok := lingua.GetLanguageInfo(code)
	if !ok {
		return nil, fmt.Errorf("%w: %s", lingua.ErrUnsupportedLanguage, code)
	}

	data, err := dataFS.ReadFile(fmt.Sprintf("data/%s.yaml", code))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingPackData, code)
	}

	var file packFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidPackData, code, err)
	}

	if file.Code != string(code) {
		return nil, fmt.Errorf("%w: %s: file declares code %q", ErrInvalidPackData, code, file.Code)
	}

	pack := &Pack{
		Info:            info,
		MarkerPosition:  file.MarkerPosition,
		Possessive:      file.Possessive,
		actionBySurface: make(map[string]lingua.Action),
		surfaceByAction: make(map[lingua.Action]string),
		roleBySurface:   make(map[string]semantic.Role),
		markerByRole:    make(map[semantic.Role]string),
		templates:       make(map[string][]string),
		defaultOrder:    file.DefaultOrder,
		lower:           cases.Lower(language.Make(string(code))),
	}

	if pack.MarkerPosition != MarkerBefore && pack.MarkerPosition != MarkerAfter {
		return nil, fmt.Errorf("%w: %s: marker_position must be before or after", ErrInvalidPackData, code)
	}

	if err := pack.compileActions(file.Actions); err != nil {
		return nil, fmt.Errorf("%s: %w", code, err)
	}

	if err := pack.compileMarkers(file.Markers); err != nil {
		return nil, fmt.Errorf("%s: %w", code, err)
	}

	for _, template := range file.Templates {
		pack.templates[template.Roles] = template.Order
	}

	if len(pack.defaultOrder) == 0 {
		return nil, fmt.Errorf("%w: %s: default_order is required", ErrInvalidPackData, code)
	}

	return pack, nil
}

func (p *Pack) compileActions(actions map[string][]string) error {
	for id, surfaces := range actions {
		action := lingua.Action(id)
		if !lingua.IsValidAction(action) {
			return fmt.Errorf("%w: %q", lingua.ErrUnknownAction, id)
		}

		if len(surfaces) == 0 {
			return fmt.Errorf("%w: action %q has no surface form", ErrInvalidPackData, id)
		}

		p.surfaceByAction[action] = surfaces[0]

		for _, surface := range surfaces {
			normalized := p.Normalize(surface)
			if existing, ok := p.actionBySurface[normalized]; ok && existing != action {
				return fmt.Errorf("%w: %q is %s and %s", ErrLexiconConflict, surface, existing, action)
			}

			p.actionBySurface[normalized] = action
		}
	}

	for _, action := range lingua.Actions() {
		if _, ok := p.surfaceByAction[action]; !ok {
			return fmt.Errorf("%w: action %q missing from lexicon", ErrInvalidPackData, action)
		}
	}

	return nil
}

func (p *Pack) compileMarkers(markers map[string][]string) error {
	for name, surfaces := range markers {
		role := semantic.Role(name)
		if !semantic.IsValidRole(role) || role == semantic.RoleAction {
			return fmt.Errorf("%w: %q", lingua.ErrUnknownRole, name)
		}

		if len(surfaces) > 0 {
			p.markerByRole[role] = surfaces[0]
		}

		for _, surface := range surfaces {
			normalized := p.Normalize(surface)

			if existing, ok := p.roleBySurface[normalized]; ok && existing != role {
				return fmt.Errorf("%w: %q marks %s and %s", ErrLexiconConflict, surface, existing, role)
			}

			if _, ok := p.actionBySurface[normalized]; ok {
				return fmt.Errorf("%w: %q is both an action and a marker", ErrLexiconConflict, surface)
			}

			p.roleBySurface[normalized] = role
		}
	}

	return nil
}

// Normalize case-normalizes a surface token under this language's casing
// rules (Turkish dotless i is handled correctly).
func (p *Pack) Normalize(word string) string {
	return p.lower.String(word)
}

// LookupAction resolves a surface word to a canonical action id.
func (p *Pack) LookupAction(word string) (lingua.Action, bool) {
	action, ok := p.actionBySurface[p.Normalize(word)]
	return action, ok
}

// ActionSurface returns the primary surface form of an action.
func (p *Pack) ActionSurface(action lingua.Action) (string, bool) {
	surface, ok := p.surfaceByAction[action]
	return surface, ok
}

// LookupMarker resolves a surface word to the role it marks.
func (p *Pack) LookupMarker(word string) (semantic.Role, bool) {
	role, ok := p.roleBySurface[p.Normalize(word)]
	return role, ok
}

// Marker returns the primary marker of a role; ok is false for roles the
// language leaves unmarked.
func (p *Pack) Marker(role semantic.Role) (string, bool) {
	marker, ok := p.markerByRole[role]
	return marker, ok
}

// IsPossessiveConnective reports whether the word is this language's
// possessive connective.
func (p *Pack) IsPossessiveConnective(word string) bool {
	return p.Possessive.Connective != "" &&
		p.Normalize(word) == p.Normalize(p.Possessive.Connective)
}

// TemplateOrder returns the token order for an exact role set key.
func (p *Pack) TemplateOrder(roleKey string) ([]string, bool) {
	order, ok := p.templates[roleKey]
	return order, ok
}

// DefaultOrder returns the generic token order used when no template
// matches a node's role set.
func (p *Pack) DefaultOrder() []string {
	return p.defaultOrder
}
