// Package automapper proposes column-to-field assignments for an uploaded
// dataset. Matching is fuzzy: normalized Levenshtein similarity against field
// names and their synonyms, adjusted by what the column's sample values look
// like. Suggestions are proposals only; nothing is applied without review.
package automapper

import (
	"regexp"
	"sort"
	"strings"

	"mariosat/mifir-mapper/internal/dateutils"
	"mariosat/mifir-mapper/internal/logging"
	"mariosat/mifir-mapper/internal/models"
	"mariosat/mifir-mapper/internal/registry"
)

// DefaultThreshold is the minimum score a column must reach to be suggested
// for a field.
const DefaultThreshold = 0.6

// Scorer rates how well a source column fits a target field.
type Scorer interface {
	Score(def models.FieldDefinition, header string, samples []string) float64
}

// Suggestion records one proposed assignment and the score that produced it.
type Suggestion struct {
	Field  string  `json:"field"`
	Column string  `json:"column"`
	Score  float64 `json:"score"`
}

// AutoMapper suggests mappings for a field registry.
type AutoMapper struct {
	registry  *registry.Registry
	scorer    Scorer
	threshold float64
	logger    logging.Logger
}

// New returns an AutoMapper using the default fuzzy scorer.
func New(reg *registry.Registry, threshold float64, logger logging.Logger) *AutoMapper {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &AutoMapper{
		registry:  reg,
		scorer:    &fuzzyScorer{},
		threshold: threshold,
		logger:    logger,
	}
}

// sampleLimit caps how many rows feed the content heuristics.
const sampleLimit = 20

// Suggest proposes a mapping for the given headers. Each field gets at most
// one column; a column may serve several fields. Ties resolve to the column
// that appears earliest in the file.
func (a *AutoMapper) Suggest(headers []string, rows []models.Row) (models.Mapping, []Suggestion) {
	samples := collectSamples(headers, rows)
	mapping := models.NewMapping()
	var suggestions []Suggestion

	for _, def := range a.registry.Fields() {
		best := ""
		bestScore := 0.0
		for _, header := range headers {
			score := a.scorer.Score(def, header, samples[header])
			if score > bestScore {
				best = header
				bestScore = score
			}
		}
		if bestScore < a.threshold {
			continue
		}
		mapping.SetColumn(def.Name, best)
		suggestions = append(suggestions, Suggestion{Field: def.Name, Column: best, Score: bestScore})
		a.logger.Debug("suggested mapping",
			logging.Field{Key: logging.FieldField, Value: def.Name},
			logging.Field{Key: logging.FieldColumn, Value: best},
			logging.Field{Key: logging.FieldScore, Value: bestScore},
		)
	}

	a.logger.Info("auto-mapping complete",
		logging.Field{Key: logging.FieldCount, Value: len(suggestions)},
	)
	return mapping, suggestions
}

// constantDefaults are values commonly fixed for a whole report rather than
// carried per row.
var constantDefaults = map[string]string{
	"executing_person":               "NORE",
	"transmission_indicator":         "false",
	"investment_party_indicator":     "true",
	"securities_financing_indicator": "false",
	"price_sign":                     "true",
	"trading_venue":                  "XOFF",
}

// SuggestConstants proposes constant values for fields still unmapped after
// column suggestion. Returned in registry order.
func (a *AutoMapper) SuggestConstants(mapping models.Mapping) []Suggestion {
	var out []Suggestion
	for _, def := range a.registry.Fields() {
		if !mapping.SourceFor(def.Name).IsUnmapped() {
			continue
		}
		if v, ok := constantDefaults[def.Name]; ok {
			out = append(out, Suggestion{Field: def.Name, Column: v, Score: 1.0})
		}
	}
	return out
}

func collectSamples(headers []string, rows []models.Row) map[string][]string {
	samples := make(map[string][]string, len(headers))
	limit := len(rows)
	if limit > sampleLimit {
		limit = sampleLimit
	}
	for _, header := range headers {
		var vals []string
		for _, row := range rows[:limit] {
			if v := row.Get(header); v != "" {
				vals = append(vals, v)
			}
		}
		samples[header] = vals
	}
	return samples
}

// fuzzyScorer combines name similarity with content-shape heuristics.
type fuzzyScorer struct{}

func (s *fuzzyScorer) Score(def models.FieldDefinition, header string, samples []string) float64 {
	score := nameScore(def, header)
	score += contentScore(def, samples)
	if score > 1.0 {
		score = 1.0
	}
	if score < 0 {
		score = 0
	}
	return score
}

// nameScore is the best similarity between the header and the field name or
// any synonym. A containment match (one normalized name inside the other)
// counts as a strong match even when edit distance is large, so "Trade ID"
// still finds "transaction_id" via its "trade_id" synonym and
// "client_order_id" finds "order_id".
func nameScore(def models.FieldDefinition, header string) float64 {
	h := normalizeHeader(header)
	if h == "" {
		return 0
	}
	names := append([]string{def.Name}, def.Synonyms...)
	best := 0.0
	for _, name := range names {
		n := normalizeHeader(name)
		score := similarity(h, n)
		if len(n) >= 3 && (strings.Contains(h, n) || strings.Contains(n, h)) && score < 0.85 {
			score = 0.85
		}
		if score > best {
			best = score
		}
	}
	return best
}

var (
	leiRe  = regexp.MustCompile(`^[A-Z0-9]{18}[0-9]{2}$`)
	isinRe = regexp.MustCompile(`^[A-Z]{2}[A-Z0-9]{9}[0-9]$`)
)

// contentScore nudges the score based on what the sampled values look like:
// a column of LEIs is a better fit for an LEI field than its header alone
// suggests, and a worse fit for a numeric one.
func contentScore(def models.FieldDefinition, samples []string) float64 {
	if len(samples) == 0 {
		return 0
	}
	switch {
	case strings.HasSuffix(def.Name, "_lei"):
		return shapeDelta(samples, func(v string) bool { return leiRe.MatchString(strings.ToUpper(v)) })
	case strings.HasSuffix(def.Name, "_isin") || def.Name == "instrument_isin":
		return shapeDelta(samples, func(v string) bool { return isinRe.MatchString(strings.ToUpper(v)) })
	case def.Type == models.TypeDate || def.Type == models.TypeDateTime:
		return shapeDelta(samples, func(v string) bool {
			_, _, err := dateutils.ParseDate(v)
			return err == nil
		})
	case def.Type == models.TypeDecimal || def.Type == models.TypeInteger:
		return shapeDelta(samples, looksNumeric)
	case def.Type == models.TypeEnum:
		allowed := make(map[string]bool, len(def.EnumValues))
		for _, v := range def.EnumValues {
			allowed[v] = true
		}
		return shapeDelta(samples, func(v string) bool { return allowed[strings.ToUpper(v)] })
	}
	return 0
}

// shapeDelta maps the fraction of matching samples to a bounded adjustment:
// +0.15 when every sample matches, -0.15 when none do.
func shapeDelta(samples []string, match func(string) bool) float64 {
	hits := 0
	for _, v := range samples {
		if match(v) {
			hits++
		}
	}
	frac := float64(hits) / float64(len(samples))
	return 0.3*frac - 0.15
}

func looksNumeric(v string) bool {
	v = strings.TrimSpace(v)
	if v == "" {
		return false
	}
	digits := 0
	for _, r := range v {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.' || r == ',' || r == '-' || r == '+' || r == ' ' || r == '\'':
		default:
			return false
		}
	}
	return digits > 0
}

// SortSuggestions orders suggestions by descending score, then field name,
// for stable report output.
func SortSuggestions(s []Suggestion) {
	sort.SliceStable(s, func(i, j int) bool {
		if s[i].Score != s[j].Score {
			return s[i].Score > s[j].Score
		}
		return s[i].Field < s[j].Field
	})
}
