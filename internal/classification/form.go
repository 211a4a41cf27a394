package classification

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/StarSailors_Go/internal/domain"
)

//go:embed forms.json
var formsJSON []byte

// InputMode is how a user answers for an anomaly type
type InputMode string

const (
	// ModeOptions presents toggle buttons from the option groups
	ModeOptions InputMode = "options"
	// ModeText presents a free-text box
	ModeText InputMode = "text"
)

// Option is one toggle button
type Option struct {
	ID   int    `json:"id" validate:"required,gt=0"`
	Text string `json:"text" validate:"required"`
}

// Form describes what to present for one anomaly type
type Form struct {
	AnomalyType      string     `json:"anomalyType" validate:"required"`
	Placeholder      string     `json:"placeholder" validate:"required"`
	Groups           [][]Option `json:"groups" validate:"dive,min=1,dive"`
	AdditionalFields []string   `json:"additionalFields,omitempty"`
}

// Mode is options when the form has any option group, text otherwise
func (f Form) Mode() InputMode {
	if len(f.Groups) > 0 {
		return ModeOptions
	}
	return ModeText
}

func (f Form) hasOption(group, id int) bool {
	if group < 0 || group >= len(f.Groups) {
		return false
	}
	return slices.ContainsFunc(f.Groups[group], func(o Option) bool { return o.ID == id })
}

// Validate checks a submission against the form's mode. Options mode needs at least one
// selected option that exists in the groups; text mode needs non-empty content and no options.
func (f Form) Validate(content string, selected map[string]map[string]bool, additional map[string]string) error {
	if len(content) > MaxContentLength {
		return fmt.Errorf("%w: content longer than %d characters", domain.ErrInvalidSubmission, MaxContentLength)
	}

	on := 0
	for g, ids := range selected {
		group, err := strconv.Atoi(g)
		if err != nil {
			return fmt.Errorf("%w: option group %q", domain.ErrInvalidSubmission, g)
		}
		for id, picked := range ids {
			optionID, err := strconv.Atoi(id)
			if err != nil || !f.hasOption(group, optionID) {
				return fmt.Errorf("%w: unknown option %s in group %s", domain.ErrInvalidSubmission, id, g)
			}
			if picked {
				on++
			}
		}
	}

	switch f.Mode() {
	case ModeOptions:
		if on == 0 {
			return fmt.Errorf("%w: select at least one option", domain.ErrInvalidSubmission)
		}
	case ModeText:
		if strings.TrimSpace(content) == "" {
			return fmt.Errorf("%w: content is required", domain.ErrInvalidSubmission)
		}
	}

	for key := range additional {
		idx, err := strconv.Atoi(strings.TrimPrefix(key, AdditionalFieldPrefix))
		if !strings.HasPrefix(key, AdditionalFieldPrefix) || err != nil || idx < 0 || idx >= len(f.AdditionalFields) {
			return fmt.Errorf("%w: unexpected field %q", domain.ErrInvalidSubmission, key)
		}
	}
	return nil
}

// Forms is the static anomaly type to form table
type Forms struct {
	byType             map[string]Form
	order              []string
	defaultPlaceholder string
}

type formsDocument struct {
	Version            string `json:"version" validate:"required"`
	DefaultPlaceholder string `json:"defaultPlaceholder" validate:"required"`
	Forms              []Form `json:"forms" validate:"required,min=1,dive"`
}

// LoadForms parses the embedded table
func LoadForms() (*Forms, error) {
	return ParseForms(formsJSON)
}

// ParseForms decodes and validates a form table
func ParseForms(raw []byte) (*Forms, error) {
	var doc formsDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf(ErrMsgLoadFormsFmt, err)
	}
	if err := validator.New().Struct(doc); err != nil {
		return nil, fmt.Errorf(ErrMsgLoadFormsFmt, err)
	}

	fs := &Forms{byType: make(map[string]Form, len(doc.Forms)), defaultPlaceholder: doc.DefaultPlaceholder}
	for _, f := range doc.Forms {
		if _, dup := fs.byType[f.AnomalyType]; dup {
			return nil, fmt.Errorf(ErrMsgLoadFormsFmt, fmt.Errorf("duplicate anomaly type %q", f.AnomalyType))
		}
		fs.byType[f.AnomalyType] = f
		fs.order = append(fs.order, f.AnomalyType)
	}
	return fs, nil
}

// MustLoadForms panics when the embedded table is invalid
func MustLoadForms() *Forms {
	fs, err := LoadForms()
	if err != nil {
		panic(err)
	}
	return fs
}

// For returns the form for an anomaly type. Unknown types get a text form with the default placeholder.
func (fs *Forms) For(anomalyType string) Form {
	if f, ok := fs.byType[anomalyType]; ok {
		return f
	}
	return Form{AnomalyType: anomalyType, Placeholder: fs.defaultPlaceholder}
}

// Types lists the anomaly types with a dedicated form, in file order
func (fs *Forms) Types() []string {
	return slices.Clone(fs.order)
}
