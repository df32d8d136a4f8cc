// Package dietparser reconstructs the day/meal/dish/ingredient hierarchy of
// a weekly diet plan, plus its substitution tables, out of ambiguous
// OCR/PDF-extracted table text. Parsing is deterministic, single-threaded
// and CPU-bound; concurrent documents are parsed with independent Parser
// instances sharing only immutable configuration.
package dietparser

import (
	"strings"
	"time"

	"github.com/leooon3/mydiet-api/config"
	"github.com/leooon3/mydiet-api/dietparser/entities"
	"github.com/leooon3/mydiet-api/interfaces"
	"github.com/leooon3/mydiet-api/logging"
	"github.com/leooon3/mydiet-api/metrics"
	"github.com/leooon3/mydiet-api/validation"
)

// Parser parses whole diet documents. The zero value is not usable; build
// one with New or NewWithLimits.
type Parser struct {
	validator     interfaces.DocumentValidator
	maxBlockLines int
}

// New creates a parser with the default boundary limits.
func New() *Parser {
	return NewWithLimits(validation.DefaultLimits, defaultBlockLines)
}

// NewFromConfig creates a parser bounded by the loaded application
// configuration.
func NewFromConfig(cfg *config.Config) *Parser {
	return NewWithLimits(validation.Limits{
		MaxPages: cfg.MaxDocumentPages,
		MaxBytes: cfg.MaxDocumentBytes,
	}, cfg.MaxBlockLines)
}

// NewWithLimits creates a parser with explicit document limits.
func NewWithLimits(limits validation.Limits, maxBlockLines int) *Parser {
	if maxBlockLines <= 0 {
		maxBlockLines = defaultBlockLines
	}
	return &Parser{
		validator:     validation.NewDocumentValidator(limits),
		maxBlockLines: maxBlockLines,
	}
}

// ParseDocument parses the ordered page texts of one document into a
// structured diet. Oversized, unreadable or empty input fails the whole
// parse with a typed error; every other irregularity resolves row by row
// to "drop this row", so a readable document always yields a (possibly
// partial) result.
func (p *Parser) ParseDocument(pages []string) (*entities.DietDocument, error) {
	start := time.Now()

	if err := p.validator.ValidateDocument(pages); err != nil {
		metrics.DocumentsParsedTotal.WithLabelValues("rejected").Inc()
		return nil, err
	}

	doc := &entities.DietDocument{}
	walker := newPlanParser(doc)
	for _, page := range pages {
		walker.parsePage(strings.Split(page, "\n"))
	}
	walker.finalize()

	doc.Substitutions = parseSubstitutions(strings.Join(pages, "\n"), p.maxBlockLines)
	backfillCadCodes(doc)

	elapsed := time.Since(start)
	metrics.DocumentsParsedTotal.WithLabelValues("ok").Inc()
	metrics.ParseDuration.Observe(elapsed.Seconds())
	logging.Info("Diet document parsed",
		"days", len(doc.Days),
		"substitution_groups", len(doc.Substitutions),
		"elapsed", elapsed,
	)
	return doc, nil
}

// backfillCadCodes assigns a substitution code to dishes that carried none
// in the plan but whose name matches a substitution group title. The lookup
// is case-insensitive.
func backfillCadCodes(doc *entities.DietDocument) {
	if len(doc.Substitutions) == 0 {
		return
	}
	titleToCode := make(map[string]int, len(doc.Substitutions))
	for code, group := range doc.Substitutions {
		titleToCode[foldLower(group.Title)] = code
	}
	for d := range doc.Days {
		for m := range doc.Days[d].Meals {
			dishes := doc.Days[d].Meals[m].Dishes
			for i := range dishes {
				if dishes[i].CadCode != 0 {
					continue
				}
				if code, ok := titleToCode[foldLower(dishes[i].Name)]; ok {
					dishes[i].CadCode = code
				}
			}
		}
	}
}
