package performance

import (
	"sort"
	"strings"

	"github.com/estuda-ai/backend/internal/domain/quiz"
)

// OtherBucket collects results whose topic matches no taxonomy keyword.
const OtherBucket = "Outros"

// subject is one taxonomy entry. A topic belongs to the first subject, in
// declaration order, for which any keyword is a substring of the lower-cased
// topic label.
type subject struct {
	name     string
	keywords []string
}

var taxonomy = []subject{
	{"Português", []string{"português", "gramática", "literatura", "redação", "interpretação"}},
	{"Matemática", []string{"matemática", "álgebra", "geometria", "cálculo", "raciocínio lógico"}},
	{"História", []string{"história", "historia"}},
	{"Geografia", []string{"geografia"}},
	{"Biologia", []string{"biologia", "ciências", "ciencias", "corpo humano"}},
	{"Química", []string{"química", "quimica"}},
	{"Física", []string{"física", "fisica"}},
	{"Artes", []string{"artes", "música", "pintura"}},
	{"Sociologia", []string{"sociologia"}},
	{"Filosofia", []string{"filosofia"}},
	{"Inglês", []string{"inglês", "ingles"}},
}

// SubjectBucket aggregates the quiz results routed to one subject. Derived
// from history on every call; never persisted.
type SubjectBucket struct {
	Subject    string  `json:"subject"`
	Correct    int     `json:"correct"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

// Categorize routes a topic label to exactly one subject name. Review-quiz
// results go to their own bucket ahead of the taxonomy.
func Categorize(topic string) string {
	lower := strings.ToLower(topic)
	if strings.Contains(lower, strings.ToLower(quiz.ReviewLabel)) {
		return quiz.ReviewLabel
	}
	for _, s := range taxonomy {
		for _, kw := range s.keywords {
			if strings.Contains(lower, kw) {
				return s.name
			}
		}
	}
	return OtherBucket
}

// Aggregate buckets quiz history into the subject taxonomy and computes
// per-subject accuracy, sorted by descending percentage. A bucket with zero
// total reports 0%.
func Aggregate(history []quiz.Result) []SubjectBucket {
	sums := make(map[string]*SubjectBucket)
	order := make([]string, 0)

	for _, result := range history {
		name := Categorize(result.Topic)
		bucket, ok := sums[name]
		if !ok {
			bucket = &SubjectBucket{Subject: name}
			sums[name] = bucket
			order = append(order, name)
		}
		bucket.Correct += result.Correct
		bucket.Total += result.Total
	}

	buckets := make([]SubjectBucket, 0, len(order))
	for _, name := range order {
		b := *sums[name]
		if b.Total > 0 {
			b.Percentage = 100 * float64(b.Correct) / float64(b.Total)
		}
		buckets = append(buckets, b)
	}

	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].Percentage > buckets[j].Percentage
	})
	return buckets
}
