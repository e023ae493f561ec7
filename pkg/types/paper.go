// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the get-papers-list pipeline:
// the normalized Paper record, its fixed column layout, and configuration.
package types

import "strings"

// AbsentMarker is written in place of any field whose source data is missing
// or whose contributing set is empty. Output never carries an empty string.
const AbsentMarker = "N/A"

// ListSeparator joins multi-valued fields (authors, affiliations, emails).
const ListSeparator = ", "

// Paper is the normalized result produced for one PubMed record. Every field
// is populated: missing data resolves to AbsentMarker.
type Paper struct {
	// PMID is the PubMed identifier. Always present on a parsed Paper.
	PMID string `json:"pmid" yaml:"pmid"`

	// Title is the article title.
	Title string `json:"title" yaml:"title"`

	// Authors lists every author with both a fore name and a last name, in
	// document order.
	Authors string `json:"authors" yaml:"authors"`

	// PublicationYear is the year taken from the journal issue PubDate.
	PublicationYear string `json:"publication_year" yaml:"publication_year"`

	// NonAcademicAuthors lists the named authors classified as non-academic.
	NonAcademicAuthors string `json:"non_academic_authors" yaml:"non_academic_authors"`

	// CompanyAffiliations lists affiliation strings that name a company,
	// one entry per contributing author.
	CompanyAffiliations string `json:"company_affiliations" yaml:"company_affiliations"`

	// CorrespondingEmail lists every author email found in the record.
	CorrespondingEmail string `json:"corresponding_email" yaml:"corresponding_email"`
}

// Column is one field of the fixed tabular layout.
type Column struct {
	// Header is the label used in CSV headers and console output.
	Header string

	// Value extracts the field from a Paper.
	Value func(Paper) string
}

// Columns is the fixed output order shared by every sink.
var Columns = []Column{
	{Header: "Pubmed ID", Value: func(p Paper) string { return p.PMID }},
	{Header: "Title", Value: func(p Paper) string { return p.Title }},
	{Header: "Authors", Value: func(p Paper) string { return p.Authors }},
	{Header: "Publication Date", Value: func(p Paper) string { return p.PublicationYear }},
	{Header: "Non-academic Author(s)", Value: func(p Paper) string { return p.NonAcademicAuthors }},
	{Header: "Company Affiliation(s)", Value: func(p Paper) string { return p.CompanyAffiliations }},
	{Header: "Corresponding Author Email", Value: func(p Paper) string { return p.CorrespondingEmail }},
}

// Headers returns the column headers in output order.
func Headers() []string {
	h := make([]string, len(Columns))
	for i, c := range Columns {
		h[i] = c.Header
	}
	return h
}

// Row returns the paper's fields in output order.
func (p Paper) Row() []string {
	row := make([]string, len(Columns))
	for i, c := range Columns {
		row[i] = c.Value(p)
	}
	return row
}

// OrAbsent returns s, or AbsentMarker when s is empty.
func OrAbsent(s string) string {
	if s == "" {
		return AbsentMarker
	}
	return s
}

// JoinOrAbsent joins values with ListSeparator, or returns AbsentMarker when
// there are none.
func JoinOrAbsent(values []string) string {
	if len(values) == 0 {
		return AbsentMarker
	}
	return strings.Join(values, ListSeparator)
}
