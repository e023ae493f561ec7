// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package record

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/get-papers-list/internal/document"
	"github.com/pdiddy/get-papers-list/pkg/types"
)

// --- fixture helpers ---

type testAuthor struct {
	fore, last, affiliation, email string
}

func (a testAuthor) xml() string {
	var b strings.Builder
	b.WriteString("<Author ValidYN=\"Y\">")
	if a.last != "" {
		fmt.Fprintf(&b, "<LastName>%s</LastName>", a.last)
	}
	if a.fore != "" {
		fmt.Fprintf(&b, "<ForeName>%s</ForeName>", a.fore)
	}
	if a.affiliation != "" {
		fmt.Fprintf(&b, "<AffiliationInfo><Affiliation>%s</Affiliation></AffiliationInfo>", a.affiliation)
	}
	if a.email != "" {
		fmt.Fprintf(&b, "<Email>%s</Email>", a.email)
	}
	b.WriteString("</Author>")
	return b.String()
}

type testArticle struct {
	pmid, title, year string
	authors           []testAuthor
	noAuthorList      bool
}

func (ta testArticle) xml() string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" ?><PubmedArticleSet><PubmedArticle><MedlineCitation>`)
	if ta.pmid != "" {
		fmt.Fprintf(&b, `<PMID Version="1">%s</PMID>`, ta.pmid)
	}
	b.WriteString("<Article><Journal><JournalIssue><PubDate>")
	if ta.year != "" {
		fmt.Fprintf(&b, "<Year>%s</Year>", ta.year)
	}
	b.WriteString("<Month>Jan</Month></PubDate></JournalIssue></Journal>")
	if ta.title != "" {
		fmt.Fprintf(&b, "<ArticleTitle>%s</ArticleTitle>", ta.title)
	}
	if !ta.noAuthorList {
		b.WriteString(`<AuthorList CompleteYN="Y">`)
		for _, a := range ta.authors {
			b.WriteString(a.xml())
		}
		b.WriteString("</AuthorList>")
	}
	b.WriteString("</Article></MedlineCitation></PubmedArticle></PubmedArticleSet>")
	return b.String()
}

func mustParse(t *testing.T, ta testArticle) types.Paper {
	t.Helper()
	p, err := ParseXML(strings.NewReader(ta.xml()))
	require.NoError(t, err)
	return p
}

// --- Parse ---

func TestParseFullRecord(t *testing.T) {
	p := mustParse(t, testArticle{
		pmid:  "38012345",
		title: "CRISPR screening in hepatocytes",
		year:  "2023",
		authors: []testAuthor{
			{fore: "Jane", last: "Doe", affiliation: "Dept of Biology, State University", email: "jane@state.edu"},
			{fore: "John", last: "Smith", affiliation: "Acme Biotech Inc, Boston"},
			{fore: "Ana", last: "Lee", affiliation: "XYZ Pharma Labs", email: "ana@xyz.edu"},
			{fore: "Raj", last: "Patel", email: "raj@gene.org"},
		},
	})

	assert.Equal(t, types.Paper{
		PMID:                "38012345",
		Title:               "CRISPR screening in hepatocytes",
		Authors:             "Jane Doe, John Smith, Ana Lee, Raj Patel",
		PublicationYear:     "2023",
		NonAcademicAuthors:  "John Smith, Ana Lee, Raj Patel",
		CompanyAffiliations: "Acme Biotech Inc, Boston, XYZ Pharma Labs",
		CorrespondingEmail:  "jane@state.edu, ana@xyz.edu, raj@gene.org",
	}, p)
}

func TestParseZeroAuthors(t *testing.T) {
	for _, noList := range []bool{false, true} {
		t.Run(fmt.Sprintf("noAuthorList=%v", noList), func(t *testing.T) {
			p := mustParse(t, testArticle{pmid: "1", title: "Solo", year: "2001", noAuthorList: noList})

			assert.Equal(t, "1", p.PMID)
			assert.Equal(t, "Solo", p.Title)
			assert.Equal(t, "2001", p.PublicationYear)
			assert.Equal(t, types.AbsentMarker, p.Authors)
			assert.Equal(t, types.AbsentMarker, p.NonAcademicAuthors)
			assert.Equal(t, types.AbsentMarker, p.CompanyAffiliations)
			assert.Equal(t, types.AbsentMarker, p.CorrespondingEmail)
		})
	}
}

func TestParseMissingOptionalFields(t *testing.T) {
	p := mustParse(t, testArticle{pmid: "2"})

	assert.Equal(t, types.AbsentMarker, p.Title)
	assert.Equal(t, types.AbsentMarker, p.PublicationYear)
}

func TestParseAuthorMissingNamePart(t *testing.T) {
	p := mustParse(t, testArticle{
		pmid: "3",
		authors: []testAuthor{
			{last: "Consortium", affiliation: "Genomics Company", email: "info@consortium.org"},
			{fore: "Mia", last: "Wong"},
		},
	})

	// The unnamed author is excluded from name lists but still contributes
	// its affiliation and email.
	assert.Equal(t, "Mia Wong", p.Authors)
	assert.Equal(t, types.AbsentMarker, p.NonAcademicAuthors)
	assert.Equal(t, "Genomics Company", p.CompanyAffiliations)
	assert.Equal(t, "info@consortium.org", p.CorrespondingEmail)
}

func TestParseAllAcademic(t *testing.T) {
	p := mustParse(t, testArticle{
		pmid: "4",
		authors: []testAuthor{
			{fore: "A", last: "One", affiliation: "Karolinska Institute"},
			{fore: "B", last: "Two"},
		},
	})

	assert.Equal(t, "A One, B Two", p.Authors)
	assert.Equal(t, types.AbsentMarker, p.NonAcademicAuthors)
	assert.Equal(t, types.AbsentMarker, p.CompanyAffiliations)
	assert.Equal(t, types.AbsentMarker, p.CorrespondingEmail)
}

func TestParseDuplicateAffiliationsKept(t *testing.T) {
	p := mustParse(t, testArticle{
		pmid: "5",
		authors: []testAuthor{
			{fore: "A", last: "One", affiliation: "Acme Pharma"},
			{fore: "B", last: "Two", affiliation: "Acme Pharma"},
		},
	})

	assert.Equal(t, "Acme Pharma, Acme Pharma", p.CompanyAffiliations)
}

func TestParseIdempotent(t *testing.T) {
	ta := testArticle{
		pmid:  "6",
		title: "Same",
		year:  "2019",
		authors: []testAuthor{
			{fore: "A", last: "One", affiliation: "Acme Pharma", email: "a@acme.com"},
		},
	}
	root, err := document.ParseBytes([]byte(ta.xml()))
	require.NoError(t, err)

	first, err := Parse(root)
	require.NoError(t, err)
	second, err := Parse(root)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestParseMissingPMID(t *testing.T) {
	_, err := ParseXML(strings.NewReader(testArticle{title: "No id"}.xml()))
	require.Error(t, err)

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.ErrorIs(t, err, ErrMissingIdentifier)
}

func TestParseEmptyArticleSet(t *testing.T) {
	_, err := ParseXML(strings.NewReader(`<PubmedArticleSet></PubmedArticleSet>`))
	assert.ErrorIs(t, err, ErrMissingIdentifier)
}

func TestParseBookArticle(t *testing.T) {
	doc := `<?xml version="1.0" ?><PubmedArticleSet><PubmedBookArticle><BookDocument>
	<PMID Version="1">20301295</PMID>
	<ArticleIdList><ArticleId IdType="bookaccession">NBK1250</ArticleId></ArticleIdList>
	<Book><Publisher><PublisherName>University of Washington, Seattle</PublisherName></Publisher>
	<BookTitle book="gene">GeneReviews</BookTitle><PubDate><Year>1993</Year></PubDate></Book>
	<ArticleTitle>Cystic Fibrosis</ArticleTitle>
	<AuthorList Type="authors">
	<Author><LastName>Ong</LastName><ForeName>Thida</ForeName><AffiliationInfo><Affiliation>Seattle Children's Hospital, University of Washington</Affiliation></AffiliationInfo></Author>
	<Author><LastName>Ramsey</LastName><ForeName>Bonnie W</ForeName><AffiliationInfo><Affiliation>Vertex Pharma Inc</Affiliation></AffiliationInfo></Author>
	</AuthorList>
	</BookDocument></PubmedBookArticle></PubmedArticleSet>`

	p, err := ParseXML(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, types.Paper{
		PMID:                "20301295",
		Title:               "Cystic Fibrosis",
		Authors:             "Thida Ong, Bonnie W Ramsey",
		PublicationYear:     "1993",
		NonAcademicAuthors:  "Bonnie W Ramsey",
		CompanyAffiliations: "Vertex Pharma Inc",
		CorrespondingEmail:  types.AbsentMarker,
	}, p)
}

func TestParseUnknownShapeWithPMID(t *testing.T) {
	p, err := ParseXML(strings.NewReader(`<Record><PMID>77</PMID><ArticleTitle>Loose</ArticleTitle></Record>`))
	require.NoError(t, err)
	assert.Equal(t, "77", p.PMID)
	assert.Equal(t, "Loose", p.Title)
	assert.Equal(t, types.AbsentMarker, p.Authors)
}

func TestParseMalformedXML(t *testing.T) {
	_, err := ParseXML(strings.NewReader(`<PubmedArticleSet><PubmedArticle>`))
	var pe *ParseError
	assert.True(t, errors.As(err, &pe))
}

func TestParseFirstArticleOnly(t *testing.T) {
	doc := `<PubmedArticleSet>
	<PubmedArticle><MedlineCitation><PMID>10</PMID><Article><ArticleTitle>First</ArticleTitle></Article></MedlineCitation></PubmedArticle>
	<PubmedArticle><MedlineCitation><PMID>11</PMID><Article><ArticleTitle>Second</ArticleTitle></Article></MedlineCitation></PubmedArticle>
	</PubmedArticleSet>`
	p, err := ParseXML(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, "10", p.PMID)
	assert.Equal(t, "First", p.Title)
}

// --- ParseError ---

func TestParseErrorMessage(t *testing.T) {
	assert.Equal(t, "parsing PubMed record: missing PMID", (&ParseError{Err: ErrMissingIdentifier}).Error())
	assert.Equal(t, "parsing PubMed record 42: missing PMID", (&ParseError{PMID: "42", Err: ErrMissingIdentifier}).Error())
}

func TestAuthorFullName(t *testing.T) {
	name, ok := Author{ForeName: "Jane", LastName: "Doe"}.FullName()
	assert.True(t, ok)
	assert.Equal(t, "Jane Doe", name)

	_, ok = Author{LastName: "Doe"}.FullName()
	assert.False(t, ok)
	_, ok = Author{ForeName: "Jane"}.FullName()
	assert.False(t, ok)
}
