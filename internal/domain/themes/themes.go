package themes

import "sort"

// Counts maps a topic label to how many questions the user answered wrong
// under that topic, across all quizzes. Counts are strictly non-negative.
type Counts map[string]int

// ThemeCount is one tracked topic with its miss count.
type ThemeCount struct {
	Label string
	Count int
}

// RecordMiss increments the miss count for a topic, creating the entry at 1
// if absent.
func (c Counts) RecordMiss(topic string) {
	c[topic]++
}

// ListForReview returns all topics with at least one miss, sorted by
// descending count. Ties break on the label so repeated calls over the same
// data return the same order.
func (c Counts) ListForReview() []ThemeCount {
	entries := make([]ThemeCount, 0, len(c))
	for label, count := range c {
		if count > 0 {
			entries = append(entries, ThemeCount{Label: label, Count: count})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Label < entries[j].Label
	})
	return entries
}

// Labels returns just the topic labels from ListForReview, in the same order.
func (c Counts) Labels() []string {
	entries := c.ListForReview()
	labels := make([]string, len(entries))
	for i, e := range entries {
		labels[i] = e.Label
	}
	return labels
}
