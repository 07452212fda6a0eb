package manual

import (
	"regexp"
	"strings"

	"legalaid-backend/models"
)

// Manual is the offline legal manual: an ordered catalog of topics with
// trigger keywords, plus a general-inquiry fallback used when nothing
// matches. It is built once at startup and never mutated.
type Manual struct {
	topics   []models.LegalTopic
	matchers [][]*regexp.Regexp
	general  models.LegalTopic
}

// New creates a manual from the built-in topic catalog.
func New() *Manual {
	return NewWithTopics(defaultTopics(), generalTopic())
}

// NewWithTopics creates a manual from an explicit catalog. Catalog order is
// significant: earlier topics win keyword-count ties.
func NewWithTopics(topics []models.LegalTopic, general models.LegalTopic) *Manual {
	m := &Manual{
		topics:  topics,
		general: general,
	}
	m.matchers = make([][]*regexp.Regexp, len(topics))
	for i, topic := range topics {
		matchers := make([]*regexp.Regexp, 0, len(topic.Keywords))
		for _, kw := range topic.Keywords {
			// Word-boundary anchors so "car" never matches inside "care"
			matchers = append(matchers, regexp.MustCompile(`\b`+regexp.QuoteMeta(kw)+`\b`))
		}
		m.matchers[i] = matchers
	}
	return m
}

// Topics returns the catalog in insertion order. The general fallback topic
// is not included; it is only reachable through Classify.
func (m *Manual) Topics() []models.LegalTopic {
	return m.topics
}

// General returns the fallback topic for queries that match nothing.
func (m *Manual) General() models.LegalTopic {
	return m.general
}

// Classify returns the topic whose keywords best match the text. Keywords
// are counted as case-insensitive whole-word hits; the strictly highest
// count wins and ties keep the earliest topic in catalog order. With no
// hits at all the general topic is returned, so Classify is total.
func (m *Manual) Classify(freeText string) models.LegalTopic {
	lowered := strings.ToLower(freeText)

	best := m.general
	maxMatched := 0

	for i, topic := range m.topics {
		matched := 0
		for _, re := range m.matchers[i] {
			if re.MatchString(lowered) {
				matched++
			}
		}
		if matched > maxMatched {
			maxMatched = matched
			best = topic
		}
	}

	return best
}
