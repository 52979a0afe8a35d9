// Package mapvalidate checks a mapping against the field registry and the
// actual dataset before generation. It produces findings, never partial
// output: an error-severity finding anywhere blocks the XML generators.
package mapvalidate

import (
	"fmt"
	"sort"

	"mariosat/mifir-mapper/internal/logging"
	"mariosat/mifir-mapper/internal/mapperror"
	"mariosat/mifir-mapper/internal/models"
	"mariosat/mifir-mapper/internal/registry"
	"mariosat/mifir-mapper/internal/transform"
)

// DefaultMaxRowFindings caps how many per-row findings one field may emit
// before the remainder collapses into a summary line.
const DefaultMaxRowFindings = 5

// Blocked reports whether the findings contain an error-severity entry.
// Generation must not proceed while this returns true.
func Blocked(findings []models.ValidationFinding) bool {
	return models.HasErrors(findings)
}

// Validator validates mappings against a resolved registry.
type Validator struct {
	registry       *registry.Registry
	catalog        *registry.Registry
	maxRowFindings int
	logger         logging.Logger
}

// New returns a Validator. maxRowFindings <= 0 selects the default cap.
func New(reg *registry.Registry, maxRowFindings int, logger logging.Logger) *Validator {
	return NewScoped(reg, reg, maxRowFindings, logger)
}

// NewScoped returns a Validator that validates only the fields of scope but
// treats every name known to catalog as defined when scanning the mapping
// for stale entries. The custom-only generator validates its custom subset
// this way, so mapped built-in fields are not reported as stale.
func NewScoped(scope, catalog *registry.Registry, maxRowFindings int, logger logging.Logger) *Validator {
	if maxRowFindings <= 0 {
		maxRowFindings = DefaultMaxRowFindings
	}
	return &Validator{registry: scope, catalog: catalog, maxRowFindings: maxRowFindings, logger: logger}
}

// Validate checks the mapping structurally and then row by row.
// Mapping-level findings carry row 0; data findings carry the 1-based row.
func (v *Validator) Validate(mapping models.Mapping, headers []string, rows []models.Row) []models.ValidationFinding {
	findings := v.validateMapping(mapping, headers)
	findings = append(findings, v.validateRows(mapping, rows)...)

	errs, warns := 0, 0
	for _, f := range findings {
		if f.Severity == models.SeverityError {
			errs++
		} else {
			warns++
		}
	}
	v.logger.Info("validation complete",
		logging.Field{Key: "errors", Value: errs},
		logging.Field{Key: "warnings", Value: warns},
		logging.Field{Key: logging.FieldRow, Value: len(rows)},
	)
	return findings
}

func (v *Validator) validateMapping(mapping models.Mapping, headers []string) []models.ValidationFinding {
	var findings []models.ValidationFinding
	known := make(map[string]bool, len(headers))
	for _, h := range headers {
		known[h] = true
	}

	for _, def := range v.registry.Fields() {
		src := mapping.SourceFor(def.Name)
		if src.IsUnmapped() {
			switch def.Category {
			case models.CategoryRequired:
				incomplete := &mapperror.MappingIncompleteError{Field: def.Name}
				findings = append(findings, models.ValidationFinding{
					Field:    def.Name,
					Severity: models.SeverityError,
					Message:  incomplete.Error(),
				})
			case models.CategoryConditional:
				findings = append(findings, models.ValidationFinding{
					Field:    def.Name,
					Severity: models.SeverityWarning,
					Message:  "conditional field is not mapped",
				})
			}
			continue
		}
		if src.Kind == models.SourceColumn && !known[src.Column] {
			findings = append(findings, models.ValidationFinding{
				Field:    def.Name,
				Severity: models.SeverityError,
				Message:  fmt.Sprintf("mapped column %q does not exist in the dataset", src.Column),
			})
		}
	}

	// Mappings referencing fields no registry knows, e.g. a deleted custom
	// field still present in an imported configuration. Checked against the
	// catalog, not the validated scope, so a custom-only run does not flag
	// the mapping's built-in fields.
	var stale []string
	for name := range mapping.Fields {
		if _, ok := v.registry.Lookup(name); ok {
			continue
		}
		if _, ok := v.catalog.Lookup(name); !ok {
			stale = append(stale, name)
		}
	}
	sort.Strings(stale)
	for _, name := range stale {
		findings = append(findings, models.ValidationFinding{
			Field:    name,
			Severity: models.SeverityWarning,
			Message:  "mapping refers to a field that is not defined",
		})
	}
	return findings
}

func (v *Validator) validateRows(mapping models.Mapping, rows []models.Row) []models.ValidationFinding {
	var findings []models.ValidationFinding
	counts := make(map[string]int)

	record := func(f models.ValidationFinding) {
		counts[f.Field]++
		if counts[f.Field] <= v.maxRowFindings {
			findings = append(findings, f)
		}
	}

	for i, row := range rows {
		rowNum := i + 1
		for _, def := range v.registry.Fields() {
			raw, mapped := mapping.Resolve(def.Name, row)
			if !mapped {
				if def.Condition != nil && v.conditionTriggered(def, mapping, row) {
					record(models.ValidationFinding{
						Field:    def.Name,
						Row:      rowNum,
						Severity: models.SeverityError,
						Message:  conditionMessage(def.Condition),
					})
				}
				continue
			}
			if raw == "" {
				if def.IsRequired() {
					record(models.ValidationFinding{
						Field:    def.Name,
						Row:      rowNum,
						Severity: models.SeverityError,
						Message:  "required value is empty",
					})
				} else if def.Condition != nil && v.conditionTriggered(def, mapping, row) {
					record(models.ValidationFinding{
						Field:    def.Name,
						Row:      rowNum,
						Severity: models.SeverityError,
						Message:  conditionMessage(def.Condition),
					})
				}
				continue
			}
			if _, err := transform.Apply(def, raw); err != nil {
				record(models.ValidationFinding{
					Field:    def.Name,
					Row:      rowNum,
					Severity: models.SeverityError,
					Message:  err.Error(),
				})
			}
		}
	}

	for _, def := range v.registry.Fields() {
		if n := counts[def.Name]; n > v.maxRowFindings {
			findings = append(findings, models.ValidationFinding{
				Field:    def.Name,
				Severity: models.SeverityError,
				Message:  fmt.Sprintf("%d more rows with the same problem (showing first %d)", n-v.maxRowFindings, v.maxRowFindings),
			})
		}
	}
	return findings
}

// conditionTriggered evaluates a field's cross-field condition against one
// row, using the transformed value of the referenced field so that enum case
// folding applies before comparison. An entirely unmapped reference never
// triggers: the condition reacts to data, not to mapping gaps, which the
// mapping-level checks already report.
func (v *Validator) conditionTriggered(def models.FieldDefinition, mapping models.Mapping, row models.Row) bool {
	cond := def.Condition
	raw, mapped := mapping.Resolve(cond.Field, row)
	if !mapped {
		return false
	}
	value := raw
	if refDef, ok := v.registry.Lookup(cond.Field); ok && raw != "" {
		if transformed, err := transform.Apply(refDef, raw); err == nil {
			value = transformed
		}
	}

	if cond.WhenEmpty && value == "" {
		return true
	}
	for _, want := range cond.Equals {
		if value == want {
			return true
		}
	}
	return false
}

func conditionMessage(cond *models.Condition) string {
	if cond.WhenEmpty {
		return fmt.Sprintf("value required when %q is empty", cond.Field)
	}
	return fmt.Sprintf("value required when %q is one of %v", cond.Field, cond.Equals)
}
