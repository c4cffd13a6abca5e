package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCV = `Jane Doe
jane.doe@example.com
+90 555 123 45 67

Education
BSc Computer Engineering, Ankara University
2016 - 2020

Experience
Backend Developer
Acme Software
2020 - 2023
Intern at Beta Corp - Summer 2019

Certifications
• AWS Certified Solutions Architect
- Udemy Go Bootcamp

Languages
English (Fluent)
Turkish (Native)
`

func TestExtractEmail(t *testing.T) {
	assert.Equal(t, "jane.doe@example.com", ExtractEmail(sampleCV))
	assert.Equal(t, NotFound, ExtractEmail("no contact info here"))
}

func TestExtractPhone(t *testing.T) {
	assert.Equal(t, "+90 555 123 45 67", ExtractPhone(sampleCV))
	assert.Equal(t, NotFound, ExtractPhone("call me maybe"))
}

func TestExtractEducation(t *testing.T) {
	education := ExtractEducation(sampleCV)

	assert.Contains(t, education, "BSc Computer Engineering, Ankara University")
	assert.Contains(t, education, "2016 - 2020")
}

func TestExtractEducationMissingHeader(t *testing.T) {
	assert.Equal(t, NotFound, ExtractEducation("just some text\nwith no sections"))
}

func TestExtractEducationFiltersLanguageLines(t *testing.T) {
	text := "Education\nMSc Physics\nFluent English speaker\nSkills"

	assert.Equal(t, "MSc Physics", ExtractEducation(text))
}

func TestExtractExperienceTripleBlocks(t *testing.T) {
	text := `Work Experience
Backend Developer
Acme Software
2020 - 2023
Education`

	entries := ExtractExperience(text)
	require.Len(t, entries, 1)
	assert.Equal(t, "Backend Developer at Acme Software - 2020 - 2023", entries[0])
}

func TestExtractExperienceVerbatimLine(t *testing.T) {
	text := `Experience
Intern at Beta Corp - Summer 2019
Extra line
Another line
Education`

	entries := ExtractExperience(text)
	require.NotEmpty(t, entries)
	assert.Equal(t, "Intern at Beta Corp - Summer 2019", entries[0])
}

func TestExtractExperienceSkipsBlankBlocks(t *testing.T) {
	text := `Experience
Role Line

Date Line
Education`

	// The blank middle line invalidates the triple, so the cursor advances
	// line by line and nothing qualifies.
	assert.Empty(t, ExtractExperience(text))
}

func TestExtractExperienceMissingHeader(t *testing.T) {
	assert.Empty(t, ExtractExperience("no sections at all"))
}

func TestExtractCertifications(t *testing.T) {
	certs := ExtractCertifications(sampleCV)

	assert.Contains(t, certs, "AWS Certified Solutions Architect")
	assert.Contains(t, certs, "Udemy Go Bootcamp")
	// The bare section header itself must not be collected.
	assert.NotContains(t, certs, "Certifications |")
}

func TestExtractCertificationsSentinel(t *testing.T) {
	assert.Equal(t, NotFound, ExtractCertifications("nothing relevant\nhere"))
}

func TestExtractLanguagesHeaderBounded(t *testing.T) {
	assert.Equal(t, "English, Turkish", ExtractLanguages(sampleCV))
}

func TestExtractLanguagesFallbackScan(t *testing.T) {
	// No language header anywhere; the whole document is scanned instead.
	text := "Fluent in German and French since childhood."
	assert.Equal(t, "French, German", ExtractLanguages(text))
}

func TestExtractLanguagesSentinel(t *testing.T) {
	assert.Equal(t, NotFound, ExtractLanguages("no spoken tongues listed"))
}

func TestExtractFieldsIdempotent(t *testing.T) {
	first := ExtractFields(sampleCV)
	second := ExtractFields(sampleCV)

	assert.Equal(t, first, second)
}

func TestParseCVFailsSoft(t *testing.T) {
	extractor := NewCVExtractorService(NewPDFParserService())

	cv := extractor.ParseCV("/nonexistent/path/cv.pdf")

	assert.Equal(t, NotFound, cv.Email)
	assert.Equal(t, NotFound, cv.Phone)
	assert.Equal(t, NotFound, cv.Skills)
	assert.Equal(t, NotFound, cv.Education)
	assert.Equal(t, NotFound, cv.Certifications)
	assert.Equal(t, NotFound, cv.Languages)
	assert.Empty(t, cv.Experience)
}
