package books

import (
	"fmt"
	"regexp"
)

var definitionIDPattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// Definition describes how to build a naming system: start from the
// definition named by Base (or an empty table), apply Overrides, then strip
// periods if requested. Definitions are loaded from YAML files or come from
// the built-in set.
type Definition struct {
	ID           string            `yaml:"id" json:"id"`
	Description  string            `yaml:"description,omitempty" json:"description,omitempty"`
	Base         string            `yaml:"base,omitempty" json:"base,omitempty"`
	Language     string            `yaml:"language,omitempty" json:"language,omitempty"`
	StripPeriods bool              `yaml:"strip_periods,omitempty" json:"strip_periods,omitempty"`
	Overrides    map[string]string `yaml:"overrides,omitempty" json:"overrides,omitempty"`

	changes Table
	origin  string
}

// Validate checks the definition and parses its override keys.
func (d *Definition) Validate() error {
	var errs DefinitionErrors

	if d.ID == "" {
		errs = append(errs, DefinitionError{Field: "id", Message: "required field is missing"})
	} else if !definitionIDPattern.MatchString(d.ID) {
		errs = append(errs, DefinitionError{
			Field:   "id",
			Message: "must be lowercase alphanumeric with hyphens, starting with a letter",
			Value:   d.ID,
		})
	}
	if d.Base == d.ID && d.ID != "" {
		errs = append(errs, DefinitionError{Field: "base", Message: "definition cannot be its own base", Value: d.Base})
	}
	if d.changes == nil && len(d.Overrides) == 0 && d.Base == "" {
		errs = append(errs, DefinitionError{Field: "overrides", Message: "a definition without a base needs overrides"})
	}

	if d.changes == nil && len(d.Overrides) > 0 {
		changes := make(Table, len(d.Overrides))
		for key, name := range d.Overrides {
			id, err := ParseBookID(key)
			if err != nil {
				errs = append(errs, DefinitionError{Field: "overrides", Message: "invalid book id", Value: key})
				continue
			}
			if name == "" {
				errs = append(errs, DefinitionError{Field: fmt.Sprintf("overrides[%s]", key), Message: "name cannot be empty"})
				continue
			}
			changes[id] = name
		}
		if len(errs) == 0 {
			d.changes = changes
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Origin returns the file the definition was loaded from, or "" for
// built-in definitions.
func (d *Definition) Origin() string {
	return d.origin
}

// builtin returns a built-in definition with its table already in place.
func builtin(id, base, language, description string, stripPeriods bool, changes Table) *Definition {
	if changes == nil {
		changes = Table{}
	}
	return &Definition{
		ID:           id,
		Description:  description,
		Base:         base,
		Language:     language,
		StripPeriods: stripPeriods,
		changes:      changes,
	}
}

// Built-in definition identifiers.
const (
	FullName                 = "full-name"
	FullNameDeuterocanon     = "full-name-deuterocanon"
	FullNameSongs            = "full-name-songs"
	FullNameCanticles        = "full-name-canticles"
	FullNameQoheleth         = "full-name-qoheleth"
	SpanishFullName          = "spanish-full-name"
	TMSAbbr                  = "tms-abbr"
	TMSAbbrPlain             = "tms-abbr-plain"
	TeamAbbr                 = "team-abbr"
	TeamAbbrHagg             = "team-abbr-hagg"
	TeamAbbrDeuterocanon     = "team-abbr-deuterocanon"
	NLTSBAbbr                = "nltsb-abbr"
	SwindollAbbr             = "swindoll-abbr"
	SpanishTeamAbbr          = "spanish-team-abbr"
	LASBIndexAbbr            = "lasb-index-abbr"
	HCSBLASBIndexAbbr        = "hcsb-lasb-index-abbr"
	IVPAbbrDeuterocanon      = "ivp-abbr-deuterocanon"
	SBLAbbr                  = "sbl-abbr"
	SBLAbbrCanticles         = "sbl-abbr-canticles"
	SBLAbbrQoheleth          = "sbl-abbr-qoheleth"
	SBLAbbrDeuterocanon      = "sbl-abbr-deuterocanon"
	BibleTextKey             = "bibletext-key"
	BibleTextKeyDeuterocanon = "bibletext-key-deuterocanon"
	XMLAbbr                  = "xml-abbr"
)

func builtinDefinitions() []*Definition {
	return []*Definition{
		builtin(FullName, "", "en", "Full English book names", false, fullNames),
		builtin(FullNameDeuterocanon, FullName, "", "Full names including the deuterocanon", false, fullNameDeuterocanon),
		builtin(FullNameSongs, FullName, "", "Song of Songs instead of Song of Solomon", false, fullNameSongs),
		builtin(FullNameCanticles, FullName, "", "Canticles instead of Song of Solomon", false, fullNameCanticles),
		builtin(FullNameQoheleth, FullName, "", "Qoheleth instead of Ecclesiastes", false, fullNameQoheleth),
		builtin(SpanishFullName, "", "es", "Full Spanish book names", false, spanishFullNames),
		builtin(TMSAbbr, FullName, "", "Tyndale Manual of Style abbreviations", false, tmsAbbr),
		builtin(TMSAbbrPlain, TMSAbbr, "", "Tyndale abbreviations without periods", true, nil),
		builtin(TeamAbbr, TMSAbbrPlain, "", "Bible team abbreviations", false, teamAbbr),
		builtin(TeamAbbrHagg, TeamAbbr, "", "Bible team abbreviations with Hagg", false, teamAbbrHagg),
		builtin(TeamAbbrDeuterocanon, TeamAbbr, "", "Bible team abbreviations including the deuterocanon", false, teamAbbrDeuterocanon),
		builtin(NLTSBAbbr, TeamAbbrHagg, "", "NLT Study Bible abbreviations (Hagg and Prov)", false, nltsbAbbr),
		builtin(SwindollAbbr, TMSAbbr, "", "Swindoll Study Bible abbreviations", false, swindollAbbr),
		builtin(SpanishTeamAbbr, TMSAbbrPlain, "es", "Spanish Bible team abbreviations", false, spanishTeamAbbr),
		builtin(LASBIndexAbbr, TeamAbbr, "", "LASB master index abbreviations", false, lasbIndexAbbr),
		builtin(HCSBLASBIndexAbbr, LASBIndexAbbr, "", "HCSB LASB master index abbreviations", false, hcsbLASBIndexAbbr),
		builtin(IVPAbbrDeuterocanon, TeamAbbr, "", "IVP abbreviations including the deuterocanon", false, ivpAbbrDeuterocanon),
		builtin(SBLAbbr, TeamAbbr, "", "SBL Handbook of Style abbreviations", false, sblAbbr),
		builtin(SBLAbbrCanticles, SBLAbbr, "", "SBL abbreviations with Cant", false, sblAbbrCanticles),
		builtin(SBLAbbrQoheleth, SBLAbbr, "", "SBL abbreviations with Qoh", false, sblAbbrQoheleth),
		builtin(SBLAbbrDeuterocanon, SBLAbbr, "", "SBL abbreviations including the deuterocanon", false, sblAbbrDeuterocanon),
		builtin(BibleTextKey, "", "en", "bibletext repository keys", false, bibleTextKeys),
		builtin(BibleTextKeyDeuterocanon, BibleTextKey, "", "bibletext repository keys including the deuterocanon", false, bibleTextDeuterocanonKeys),
		builtin(XMLAbbr, TeamAbbrDeuterocanon, "", "XML id abbreviations", false, xmlAbbr),
	}
}
