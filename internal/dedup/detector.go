// Package dedup proposes candidate duplicates for a question. It is advisory
// only and never mutates state; merges go through the question service.
package dedup

import (
	"sort"
	"strings"
	"unicode"

	"github.com/podiumd/podium/internal/database/types"
	"github.com/podiumd/podium/internal/database/types/enum"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Match pairs a candidate question with its similarity to the source.
type Match struct {
	Question   *types.Question
	Similarity float64
}

const (
	// textWeight and tagWeight split similarity between normalized text
	// overlap and tag overlap. When neither question carries tags the text
	// overlap gets the full weight.
	textWeight = 0.7
	tagWeight  = 0.3
)

// Detector ranks candidate duplicates by lexical and tag overlap.
type Detector struct {
	threshold float64
	limit     int
	folder    cases.Caser
}

// NewDetector creates a detector. Candidates below threshold are dropped and
// at most limit matches are returned.
func NewDetector(threshold float64, limit int) *Detector {
	return &Detector{
		threshold: threshold,
		limit:     limit,
		folder:    cases.Fold(),
	}
}

// Find returns candidate duplicates of source ranked by similarity
// descending, excluding the source itself and anything already merged.
// Returns an empty slice when nothing clears the threshold.
func (d *Detector) Find(source *types.Question, candidates []*types.Question) []Match {
	sourceTokens := d.tokenize(source.Text)
	sourceTags := tagSet(source.Tags)

	matches := make([]Match, 0, len(candidates))

	for _, candidate := range candidates {
		if candidate.ID == source.ID || candidate.Status == enum.QuestionStatusMerged {
			continue
		}

		similarity := d.similarity(sourceTokens, sourceTags, candidate)
		if similarity < d.threshold {
			continue
		}

		matches = append(matches, Match{Question: candidate, Similarity: similarity})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Similarity != matches[j].Similarity {
			return matches[i].Similarity > matches[j].Similarity
		}

		return matches[i].Question.ID < matches[j].Question.ID
	})

	if d.limit > 0 && len(matches) > d.limit {
		matches = matches[:d.limit]
	}

	return matches
}

// similarity combines text-token and tag Jaccard overlap.
func (d *Detector) similarity(
	sourceTokens, sourceTags map[string]struct{}, candidate *types.Question,
) float64 {
	text := jaccard(sourceTokens, d.tokenize(candidate.Text))

	if len(sourceTags) == 0 && len(candidate.Tags) == 0 {
		return text
	}

	tags := jaccard(sourceTags, tagSet(candidate.Tags))

	return textWeight*text + tagWeight*tags
}

// tokenize normalizes question text (NFKC, casefold, strip punctuation) into
// a token set. Single-rune tokens carry no signal and are dropped.
func (d *Detector) tokenize(text string) map[string]struct{} {
	normalized := d.folder.String(norm.NFKC.String(text))

	tokens := strings.FieldsFunc(normalized, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})

	set := make(map[string]struct{}, len(tokens))

	for _, token := range tokens {
		if len([]rune(token)) < 2 {
			continue
		}

		set[token] = struct{}{}
	}

	return set
}

func tagSet(tags []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		set[strings.ToLower(tag)] = struct{}{}
	}

	return set
}

func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	intersection := 0

	for token := range a {
		if _, ok := b[token]; ok {
			intersection++
		}
	}

	union := len(a) + len(b) - intersection

	return float64(intersection) / float64(union)
}
