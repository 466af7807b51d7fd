package brushcfg

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// FileName is the well-known name of the configuration file inside a bundle.
const FileName = "Brush.cfg"

// ErrMalformed is returned for documents that are not valid JSON or whose
// known fields have the wrong type.
var ErrMalformed = errors.New("malformed brush configuration")

// requiredFields must be present and non-null in every document.
var requiredFields = []string{"VariantOf", "GUID", "Name", "Description"}

// Warning describes a required field that is absent.
type Warning struct {
	Field   string
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Field, w.Message)
}

// ValidationError reports that a document parsed but is missing required
// fields. Loads that hit it are rejected.
type ValidationError struct {
	Warnings []Warning
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Warnings))
	for i, w := range e.Warnings {
		parts[i] = w.String()
	}
	return "invalid brush configuration: " + strings.Join(parts, "; ")
}

// Parse decodes a Brush.cfg document. Unknown keys are ignored. Syntax and
// type errors are returned as errors wrapping ErrMalformed; absent required
// fields are returned as warnings alongside the decoded document.
func Parse(data []byte) (*Properties, []Warning, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	var props Properties
	if err := json.Unmarshal(data, &props); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	var warnings []Warning
	for _, name := range requiredFields {
		v, ok := lookupKey(raw, name)
		switch {
		case !ok:
			warnings = append(warnings, Warning{Field: name, Message: "required property not found"})
		case bytes.Equal(bytes.TrimSpace(v), []byte("null")):
			warnings = append(warnings, Warning{Field: name, Message: "required property is null"})
		}
	}

	return &props, warnings, nil
}

// lookupKey finds name in raw, falling back to a case-insensitive match the
// same way encoding/json matches keys to fields.
func lookupKey(raw map[string]json.RawMessage, name string) (json.RawMessage, bool) {
	if v, ok := raw[name]; ok {
		return v, true
	}
	for k, v := range raw {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return nil, false
}

// Marshal encodes p as indented JSON suitable for hand editing.
func (p *Properties) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(p); err != nil {
		return nil, fmt.Errorf("failed to marshal brush configuration: %w", err)
	}
	return buf.Bytes(), nil
}

// Clone returns a deep copy of p.
func (p *Properties) Clone() *Properties {
	if p == nil {
		return nil
	}
	data, err := json.Marshal(p)
	if err != nil {
		// Properties only holds JSON-safe values; a failure here is a bug.
		panic(fmt.Sprintf("brushcfg: clone: %v", err))
	}
	var c Properties
	if err := json.Unmarshal(data, &c); err != nil {
		panic(fmt.Sprintf("brushcfg: clone: %v", err))
	}
	return &c
}
