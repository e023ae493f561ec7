// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package record turns one PubMed efetch document into a normalized
// types.Paper, classifying every author along the way.
//
// Parse reads the document only through document.Document path lookups. It
// performs no I/O and never logs; failures are returned to the caller.
package record

import (
	"errors"
	"fmt"
	"io"

	"github.com/pdiddy/get-papers-list/internal/classify"
	"github.com/pdiddy/get-papers-list/internal/document"
	"github.com/pdiddy/get-papers-list/pkg/types"
)

// Paths looked up in an efetch document.
const (
	pathArticle     = "PubmedArticle"
	pathBookArticle = "PubmedBookArticle"
	pathPMID        = "PMID"
	pathTitle       = "ArticleTitle"
	pathAuthor      = "Author"
	pathPubYear     = "PubDate/Year"
	pathLastName    = "LastName"
	pathForeName    = "ForeName"
	pathAffiliation = "Affiliation"
	pathEmail       = "Email"
)

// ErrMissingIdentifier is the cause carried by ParseError when no PMID can
// be found.
var ErrMissingIdentifier = errors.New("missing PMID")

// ParseError reports a record that cannot produce a Paper. It is fatal to
// that record only.
type ParseError struct {
	// PMID is the identifier the caller asked for, when known.
	PMID string
	Err  error
}

func (e *ParseError) Error() string {
	if e.PMID != "" {
		return fmt.Sprintf("parsing PubMed record %s: %v", e.PMID, e.Err)
	}
	return fmt.Sprintf("parsing PubMed record: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Author is one author as read from the record.
type Author struct {
	ForeName    string
	LastName    string
	Affiliation string
	Email       string
}

// FullName returns "ForeName LastName" and whether both parts are present.
func (a Author) FullName() (string, bool) {
	if a.ForeName == "" || a.LastName == "" {
		return "", false
	}
	return a.ForeName + " " + a.LastName, true
}

// Parse builds a Paper from the first PubmedArticle in doc. Book records
// (PubmedBookArticle) and other shapes are read the same way from the first
// book article or, failing that, the whole document. Only a missing PMID is
// an error.
func Parse(doc document.Document) (types.Paper, error) {
	article := scope(doc)

	pmid, ok := article.Text(pathPMID)
	if !ok {
		return types.Paper{}, &ParseError{Err: ErrMissingIdentifier}
	}
	title, _ := article.Text(pathTitle)
	year, _ := article.Text(pathPubYear)

	authors := readAuthors(article)

	var names, nonAcademic, companies, emails []string
	for _, a := range authors {
		if name, ok := a.FullName(); ok {
			names = append(names, name)
		}
	}
	for _, a := range authors {
		if classify.Classify(a.Affiliation, a.Email) == classify.NonAcademic {
			if name, ok := a.FullName(); ok {
				nonAcademic = append(nonAcademic, name)
			}
		}
		if aff, ok := classify.CompanyAffiliation(a.Affiliation); ok {
			companies = append(companies, aff)
		}
		if a.Email != "" {
			emails = append(emails, a.Email)
		}
	}

	return types.Paper{
		PMID:                pmid,
		Title:               types.OrAbsent(title),
		Authors:             types.JoinOrAbsent(names),
		PublicationYear:     types.OrAbsent(year),
		NonAcademicAuthors:  types.JoinOrAbsent(nonAcademic),
		CompanyAffiliations: types.JoinOrAbsent(companies),
		CorrespondingEmail:  types.JoinOrAbsent(emails),
	}, nil
}

// ParseXML decodes an efetch response and parses its first record. A
// document that is not well-formed XML is reported as a ParseError.
func ParseXML(r io.Reader) (types.Paper, error) {
	root, err := document.Parse(r)
	if err != nil {
		return types.Paper{}, &ParseError{Err: err}
	}
	return Parse(root)
}

// scope picks the element the field lookups run under.
func scope(doc document.Document) document.Document {
	for _, path := range []string{pathArticle, pathBookArticle} {
		if el := doc.First(path); el != nil {
			return el
		}
	}
	return doc
}

// readAuthors returns every Author element below article in document order.
func readAuthors(article document.Document) []Author {
	nodes := article.All(pathAuthor)
	authors := make([]Author, 0, len(nodes))
	for _, n := range nodes {
		var a Author
		a.LastName, _ = n.Text(pathLastName)
		a.ForeName, _ = n.Text(pathForeName)
		a.Affiliation, _ = n.Text(pathAffiliation)
		a.Email, _ = n.Text(pathEmail)
		authors = append(authors, a)
	}
	return authors
}
