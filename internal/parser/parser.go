// Package parser orchestrates the tiered recipe extraction pipeline. Per
// source kind it runs the applicable tiers in priority order and supplements
// rather than overwrites fields across tiers.
package parser

import (
	"fmt"
	"log"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"forkful/internal/domain"
	"forkful/internal/parser/metadata"
	"forkful/internal/parser/plaintext"
	"forkful/internal/parser/scrape"
	"forkful/internal/parser/structured"
)

// Input carries one import's raw material: already-fetched HTML for URL
// sources, already-extracted plain text for PDF/photo sources. Fetching, OCR,
// and PDF text stripping are collaborators upstream of the pipeline.
type Input struct {
	SourceKind domain.SourceKind
	HTML       string
	Text       string
	SourceURL  string
	Identifier string
}

// htmlTier is one extraction strategy over a parsed document.
type htmlTier struct {
	name    string
	extract func(*goquery.Document) *domain.ParsedRecipeData
}

// urlTiers in priority order: structured markup, heuristic DOM scrape, then
// generic page metadata.
var urlTiers = []htmlTier{
	{"structured", structured.Extract},
	{"scrape", scrape.Extract},
	{"metadata", metadata.Extract},
}

// Orchestrator runs the tier list for a source kind and merges the results.
// It holds no state; each Parse call builds a fresh result from its own
// input.
type Orchestrator struct{}

// New creates an Orchestrator.
func New() *Orchestrator {
	return &Orchestrator{}
}

// Parse runs the pipeline for one import. It returns a typed failure
// (domain.ErrNoRecipeData, domain.ErrNoTextFound, domain.ErrNoImageText)
// when nothing could be extracted; a sparse result is success.
func (o *Orchestrator) Parse(input Input) (*domain.ParsedRecipeData, error) {
	switch input.SourceKind {
	case domain.SourceURL:
		return o.parseHTML(input)
	case domain.SourcePDF, domain.SourcePhoto:
		return o.parseText(input)
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidSourceKind, input.SourceKind)
	}
}

func (o *Orchestrator) parseHTML(input Input) (*domain.ParsedRecipeData, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(input.HTML))
	if err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}

	acc := &domain.ParsedRecipeData{}
	for _, tier := range urlTiers {
		result := tier.extract(doc)
		if result.IsEmpty() {
			log.Printf("parser.Orchestrator: tier %s found nothing, trying next", tier.name)
			continue
		}
		Supplement(acc, result)
		if complete(acc) {
			break
		}
	}

	if acc.IsEmpty() {
		return nil, domain.ErrNoRecipeData
	}
	acc.SourceURL = input.SourceURL
	return acc, nil
}

func (o *Orchestrator) parseText(input Input) (*domain.ParsedRecipeData, error) {
	data, err := plaintext.Extract(input.Text)
	if err != nil {
		// Photo imports get the image-specific failure message.
		if input.SourceKind == domain.SourcePhoto {
			if input.Identifier != "" {
				return nil, fmt.Errorf("%w (%s)", domain.ErrNoImageText, input.Identifier)
			}
			return nil, domain.ErrNoImageText
		}
		return nil, err
	}
	return data, nil
}
