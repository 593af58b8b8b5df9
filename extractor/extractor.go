// Package extractor finds a direct media URL in a video page's HTML.
//
// Extraction runs in two stages. The structured stage parses the JSON state the
// site embeds for client-side hydration and probes it with an ordered list of
// Strategy values. If that yields nothing, the fallback stage searches the raw
// HTML for a "playAddr" field.
package extractor

import (
	"errors"
	"strings"

	"github.com/PuerkitoBio/goquery"
	log "github.com/sirupsen/logrus"
)

var ErrNotFound = errors.New("media URL not found")

type Result struct {
	URL    string
	Stage  Stage
	Source string
}

type Extractor struct {
	StateBlocks []string
	Strategies  []Strategy
}

func New() *Extractor {
	return &Extractor{
		StateBlocks: DefaultStateBlocks,
		Strategies:  DefaultStrategies(),
	}
}

// Extract returns the media URL for the page, or ErrNotFound when neither stage finds one.
func (e *Extractor) Extract(html string) (Result, error) {
	structured := e.Structured(html)
	switch structured.Outcome {
	case OutcomeFound:
		return Result{URL: structured.URL, Stage: StageStructured, Source: structured.Source}, nil
	case OutcomeMalformed:
		log.Debug("page state is not valid JSON, trying fallback pattern")
	default:
		log.Debug("no media URL in page state, trying fallback pattern")
	}

	if url, ok := fallbackPlayAddr(html); ok {
		return Result{URL: url, Stage: StageFallback, Source: "playAddr"}, nil
	}
	return Result{}, ErrNotFound
}

// Structured runs only the state-block stage.
func (e *Extractor) Structured(html string) StageResult {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		log.WithError(err).Debug("unable to parse page HTML")
		return StageResult{Outcome: OutcomeMalformed}
	}

	malformed := false
	for _, id := range e.StateBlocks {
		text, ok := stateBlock(doc, id)
		if !ok {
			continue
		}
		state, ok := parseState(text)
		if !ok {
			log.WithField("block", id).Debug("state block is not valid JSON")
			malformed = true
			continue
		}
		for _, strategy := range e.Strategies {
			if url := strategy.Probe(state); url != "" {
				log.WithField("block", id).WithField("strategy", strategy.Name()).Debug("found media URL in page state")
				return StageResult{
					Outcome: OutcomeFound,
					URL:     url,
					Source:  id + "/" + strategy.Name(),
				}
			}
		}
	}
	if malformed {
		return StageResult{Outcome: OutcomeMalformed}
	}
	return StageResult{Outcome: OutcomeNotFound}
}
