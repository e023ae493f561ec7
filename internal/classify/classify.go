// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify decides whether a paper author is academic or
// non-academic from the author's affiliation and email text, and picks out
// affiliations that name a company.
//
// Matching is case-insensitive substring search against fixed keyword sets.
// Absent text is treated as carrying no evidence; nothing here fails.
package classify

import "strings"

// Classification is the verdict for one author.
type Classification int

const (
	Academic Classification = iota
	NonAcademic
)

func (c Classification) String() string {
	switch c {
	case Academic:
		return "academic"
	case NonAcademic:
		return "non-academic"
	default:
		return "unknown"
	}
}

// Keyword sets. Affiliation keywords are listed in their canonical casing
// and compared lowercased.
var (
	AcademicAffiliationKeywords    = []string{"University", "Institute", "Department", "Lab", "College", "Academy"}
	NonAcademicAffiliationKeywords = []string{"Pharma", "Biotech", "Inc", "Corporation", "Company", "Labs"}
	AcademicEmailSignals           = []string{".edu", "university"}
	NonAcademicEmailSignals        = []string{".com", ".org"}
	CompanyKeywords                = []string{"pharma", "biotech", "inc", "corporation", "company", "labs"}
)

// Evidence records which keyword sets matched for one author.
type Evidence struct {
	AcademicAffiliation    bool
	NonAcademicAffiliation bool
	AcademicEmail          bool
	NonAcademicEmail       bool
}

// Inspect matches affiliation and email against every keyword set. Empty
// strings match nothing.
func Inspect(affiliation, email string) Evidence {
	aff := strings.ToLower(affiliation)
	mail := strings.ToLower(email)
	return Evidence{
		AcademicAffiliation:    containsAny(aff, AcademicAffiliationKeywords),
		NonAcademicAffiliation: containsAny(aff, NonAcademicAffiliationKeywords),
		AcademicEmail:          containsAny(mail, AcademicEmailSignals),
		NonAcademicEmail:       containsAny(mail, NonAcademicEmailSignals),
	}
}

// Verdict applies the decision rule: any non-academic signal makes the
// author NonAcademic, everything else is Academic.
//
// The academic signals do not take part. An author with a ".edu" address
// and a "Biotech" affiliation is NonAcademic, and an author with no
// evidence at all is Academic.
func (e Evidence) Verdict() Classification {
	if e.NonAcademicAffiliation || e.NonAcademicEmail {
		return NonAcademic
	}
	return Academic
}

// Classify returns the verdict for an author's affiliation and email text.
func Classify(affiliation, email string) Classification {
	return Inspect(affiliation, email).Verdict()
}

// CompanyAffiliation reports whether affiliation names a company and returns
// it in its original casing. It is independent of Classify.
func CompanyAffiliation(affiliation string) (string, bool) {
	if affiliation == "" {
		return "", false
	}
	if containsAny(strings.ToLower(affiliation), CompanyKeywords) {
		return affiliation, true
	}
	return "", false
}

func containsAny(text string, keywords []string) bool {
	if text == "" {
		return false
	}
	for _, kw := range keywords {
		if strings.Contains(text, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
