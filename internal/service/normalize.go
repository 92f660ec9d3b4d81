// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"regexp"
	"strings"

	"github.com/linuxfoundation/lfx-v2-people-search/internal/domain/model"
	"github.com/linuxfoundation/lfx-v2-people-search/pkg/constants"
)

var (
	// leading segment before the first "·"
	titlePattern = regexp.MustCompile(`([^·]+)·`)
	// "... living ... in <location>," up to the next comma or end of text
	locationPattern = regexp.MustCompile(`living.*?in ([^,]+)`)
	whitespaceRun   = regexp.MustCompile(`[\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}]+`)
)

// extractTitle returns the trimmed text before the first "·" separator.
func extractTitle(text string) string {
	m := titlePattern.FindStringSubmatch(text)
	if m == nil {
		return constants.DefaultTitle
	}
	return strings.TrimSpace(m[1])
}

// extractLocation returns the place a description says someone is living in.
func extractLocation(text string) string {
	m := locationPattern.FindStringSubmatch(text)
	if m == nil {
		return constants.DefaultLocation
	}
	return strings.TrimSpace(m[1])
}

// synthesizeEmail builds a placeholder address from a display name.
func synthesizeEmail(name string) string {
	local := whitespaceRun.ReplaceAllString(strings.ToLower(name), ".")
	return local + "@" + constants.EmailDomain
}

func sourcesFor(verified bool) []string {
	if verified {
		return []string{constants.SourceLinkedIn, constants.SourceProfessionalNetworks}
	}
	return []string{constants.SourceProfessionalNetworks}
}

// normalize converts one upstream record into a display record. position is 1-based.
// It never fails: every missing or unparsable field gets a default.
func normalize(position int, record model.UpstreamRecord, score AccuracyScorer) model.Person {
	name := record.Name
	if name == "" {
		name = constants.UnknownName
	}
	verified := record.Link != ""

	return model.Person{
		ID:       position,
		Name:     name,
		Title:    extractTitle(record.Text),
		Company:  constants.DefaultCompany,
		Location: extractLocation(record.Text),
		Email:    synthesizeEmail(name),
		LinkedIn: record.Link,
		Verified: verified,
		Accuracy: score(record),
		Sources:  sourcesFor(verified),
		RawText:  record.Text,
	}
}

// meanAccuracy is the arithmetic mean of the per-person scores, 0 when empty.
func meanAccuracy(people []model.Person) float64 {
	if len(people) == 0 {
		return 0
	}
	var sum int
	for _, p := range people {
		sum += p.Accuracy
	}
	return float64(sum) / float64(len(people))
}
