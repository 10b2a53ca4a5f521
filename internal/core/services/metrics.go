package services

import (
	"regexp"
	"strconv"
	"strings"
)

// metricPatterns recognise metric names followed by a numeric value,
// matched case-insensitively against the context. The order fixes the
// order metrics appear in the response.
var metricPatterns = []struct {
	name    string
	pattern *regexp.Regexp
}{
	{"accuracy", regexp.MustCompile(`accuracy[:\s]+(\d+\.?\d*)%?`)},
	{"f1_score", regexp.MustCompile(`f1[- ]?score[:\s]+(\d+\.?\d*)`)},
	{"precision", regexp.MustCompile(`precision[:\s]+(\d+\.?\d*)%?`)},
	{"recall", regexp.MustCompile(`recall[:\s]+(\d+\.?\d*)%?`)},
	{"auc", regexp.MustCompile(`auc[:\s]+(\d+\.?\d*)`)},
	{"loss", regexp.MustCompile(`loss[:\s]+(\d+\.?\d*)`)},
}

// metricHits holds every numeric value found for one metric name, in
// text order.
type metricHits struct {
	name   string
	values []float64
}

// extractNumericMetrics collects all metric values from text. The
// result is a pure function of the input: no model call is involved.
func extractNumericMetrics(text string) []metricHits {
	lowered := strings.ToLower(text)

	var hits []metricHits
	for _, mp := range metricPatterns {
		matches := mp.pattern.FindAllStringSubmatch(lowered, -1)
		if len(matches) == 0 {
			continue
		}

		values := make([]float64, 0, len(matches))
		for _, m := range matches {
			v, err := strconv.ParseFloat(m[1], 64)
			if err != nil {
				continue
			}
			values = append(values, v)
		}
		if len(values) > 0 {
			hits = append(hits, metricHits{name: mp.name, values: values})
		}
	}

	return hits
}

// displayName renders a metric identifier for the response, e.g.
// "f1_score" becomes "F1 Score".
func (m metricHits) displayName() string {
	words := strings.Split(m.name, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

func (m metricHits) formatValues() string {
	parts := make([]string, len(m.values))
	for i, v := range m.values {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ", ")
}
