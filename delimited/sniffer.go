package delimited

import "strings"

// candidates are the delimiters the sniffer considers, in fallback order.
var candidates = []rune{',', '\t', ';', '|'}

// maxSampleLines bounds how many lines the sniffer inspects.
const maxSampleLines = 20

// SniffDelimiter infers the most likely field delimiter for a text sample.
// For each candidate it counts occurrences per non-blank line across a
// bounded prefix of the sample, then picks the candidate whose per-line
// counts are non-zero, most consistent (lowest variance), and highest on
// ties. It never fails: with no consistent signal it returns a comma.
func SniffDelimiter(sample string) rune {
	lines := sampleLines(sample)
	if len(lines) == 0 {
		return ','
	}

	best := ','
	bestVariance := 0.0
	bestMean := 0.0
	found := false

	for _, cand := range candidates {
		mean, variance := countStats(lines, cand)
		if mean == 0 {
			continue
		}
		better := !found ||
			variance < bestVariance ||
			(variance == bestVariance && mean > bestMean)
		if better {
			best, bestVariance, bestMean = cand, variance, mean
			found = true
		}
	}

	return best
}

// sampleLines returns up to maxSampleLines non-blank lines from the sample.
func sampleLines(sample string) []string {
	var lines []string
	for _, line := range strings.Split(sample, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
		if len(lines) >= maxSampleLines {
			break
		}
	}
	return lines
}

// countStats returns the mean and variance of per-line occurrence counts
// for the given delimiter.
func countStats(lines []string, delim rune) (mean, variance float64) {
	counts := make([]float64, len(lines))
	var sum float64
	for i, line := range lines {
		counts[i] = float64(strings.Count(line, string(delim)))
		sum += counts[i]
	}
	mean = sum / float64(len(lines))

	for _, c := range counts {
		d := c - mean
		variance += d * d
	}
	variance /= float64(len(lines))

	return mean, variance
}
