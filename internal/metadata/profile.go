package metadata

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/abcmartin/scansorter/internal/common"
)

// Profile carries the locale-specific heuristic inputs: which tokens mark a
// subject line, which substrings mark a postal address, and the month names
// used by the long-form date strategy.
type Profile struct {
	SubjectMarkers  []string `json:"subject_markers"`
	AddressHints    []string `json:"address_hints"`
	MonthNames      []string `json:"month_names"` // index 0 = January
	MinHeaderLen    int      `json:"min_header_len"`
	MaxHeaderLen    int      `json:"max_header_len"`
	HeaderScanLines int      `json:"header_scan_lines"`
}

// DefaultProfile returns the built-in German/English profile.
func DefaultProfile() *Profile {
	return &Profile{
		SubjectMarkers: []string{"betreff", "betr.", "subject"},
		AddressHints:   []string{"straße", "str.", "strasse", "plz"},
		MonthNames: []string{
			"Januar", "Februar", "März", "April", "Mai", "Juni",
			"Juli", "August", "September", "Oktober", "November", "Dezember",
		},
		MinHeaderLen:    5,
		MaxHeaderLen:    80,
		HeaderScanLines: 15,
	}
}

const profileSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "properties": {
    "subject_markers": {
      "type": "array",
      "items": {"type": "string", "minLength": 1},
      "minItems": 1
    },
    "address_hints": {
      "type": "array",
      "items": {"type": "string", "minLength": 1}
    },
    "month_names": {
      "type": "array",
      "items": {"type": "string", "minLength": 1},
      "minItems": 12,
      "maxItems": 12
    },
    "min_header_len": {"type": "integer", "minimum": 1},
    "max_header_len": {"type": "integer", "minimum": 1},
    "header_scan_lines": {"type": "integer", "minimum": 1}
  },
  "required": ["subject_markers"],
  "additionalProperties": false
}`

var compiledProfileSchema = jsonschema.MustCompileString("profile.schema.json", profileSchema)

// LoadProfile reads and validates a profile file. Fields left out of the file
// keep their built-in defaults. An invalid file is an error, never a silent
// fallback.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, common.WrapError(err, "read heuristics profile")
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, common.WrapError(err, "parse heuristics profile")
	}
	if err := compiledProfileSchema.Validate(doc); err != nil {
		return nil, common.NewAppError("PROFILE_ERROR", fmt.Sprintf("invalid heuristics profile %s", path), err)
	}

	p := DefaultProfile()
	loaded := &Profile{}
	if err := json.Unmarshal(data, loaded); err != nil {
		return nil, common.WrapError(err, "decode heuristics profile")
	}
	p.SubjectMarkers = loaded.SubjectMarkers
	if loaded.AddressHints != nil {
		p.AddressHints = loaded.AddressHints
	}
	if loaded.MonthNames != nil {
		p.MonthNames = loaded.MonthNames
	}
	if loaded.MinHeaderLen > 0 {
		p.MinHeaderLen = loaded.MinHeaderLen
	}
	if loaded.MaxHeaderLen > 0 {
		p.MaxHeaderLen = loaded.MaxHeaderLen
	}
	if loaded.HeaderScanLines > 0 {
		p.HeaderScanLines = loaded.HeaderScanLines
	}
	if p.MinHeaderLen > p.MaxHeaderLen {
		return nil, common.NewAppError("PROFILE_ERROR", "min_header_len exceeds max_header_len", common.ErrInvalidInput)
	}
	return p, nil
}
