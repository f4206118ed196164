package validator

import (
	"fmt"

	"github.com/arcanaland/cardtags/internal/config"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	Config  *config.Config
	Results ValidationResults
}

func NewValidator(cfg *config.Config) *Validator {
	return &Validator{
		Config:  cfg,
		Results: ValidationResults{},
	}
}

func (v *Validator) Validate() ValidationResults {
	v.validateLayout()
	v.validateOverrides()

	return v.Results
}

func (v *Validator) validateLayout() {
	if _, err := v.Config.ParsedLayout(); err != nil {
		v.Results.Errors = append(v.Results.Errors, err.Error())
	}
}

// validateOverrides checks each [[override]] entry
func (v *Validator) validateOverrides() {
	if len(v.Config.Overrides) == 0 {
		v.Results.Warnings = append(v.Results.Warnings, "no overrides defined")
		return
	}

	seen := make(map[[2]string]int)
	for i, o := range v.Config.Overrides {
		if o.Card == "" {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("override[%d].card is required", i))
		}
		if o.Tag == "" {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("override[%d].tag is required", i))
		}

		key := [2]string{o.Card, o.Tag}
		if first, ok := seen[key]; ok {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("override[%d] repeats override[%d] (%s -> %s); the tag will be appended twice",
					i, first, o.Card, o.Tag))
			continue
		}
		seen[key] = i
	}
}
