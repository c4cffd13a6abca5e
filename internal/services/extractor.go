package services

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// NotFound is the sentinel stored when an extractor finds no match. It is a
// valid field value, not an error.
const NotFound = "Not Found"

// ExtractedCV is the structured record produced from a CV's linear text.
// String fields carry the sentinel when nothing was found; Experience is an
// ordered list and signals "not found" by being empty.
type ExtractedCV struct {
	Email          string
	Phone          string
	Skills         string
	Education      string
	Certifications string
	Languages      string
	Experience     []string
}

var (
	emailPattern = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
	phonePattern = regexp.MustCompile(`(\+90[\s\-]?)?\(?0?\d{3}\)?[\s\-]?\d{3}[\s\-]?\d{2}[\s\-]?\d{2}`)
	yearPattern  = regexp.MustCompile(`\d{4}`)
)

var (
	educationHeaders    = []string{"Education", "Educational Background", "Academic Background"}
	educationEndHeaders = []string{"Experience", "Skills", "Certifications", "Languages", "Projects"}
	languageFilterWords = []string{"english", "turkish", "german", "fluent", "native", "intermediate"}

	experienceHeaders    = []string{"Experience", "Work Experience", "Professional Experience", "Employment History", "Internships"}
	experienceEndHeaders = []string{"Education", "Skills", "Certifications", "Languages", "Projects"}

	certificationKeywords = []string{"certificate", "certified", "certification", "udemy", "coursera", "edx"}
	certificationHeaders  = []string{"certifications", "sertifikalar", "certification"}

	knownLanguages    = []string{"Turkish", "English", "German", "French", "Spanish", "Italian", "Arabic", "Russian", "Japanese", "Chinese"}
	languageStopWords = []string{"skills", "certifications", "education", "experience"}
)

// ExtractEmail returns the first email-looking token in the text.
func ExtractEmail(text string) string {
	if match := emailPattern.FindString(text); match != "" {
		return match
	}
	return NotFound
}

// ExtractPhone returns the first Turkish-style phone number in the text:
// optional +90 prefix, optional parens, 3-3-2-2 digit grouping with flexible
// separators.
func ExtractPhone(text string) string {
	if match := phonePattern.FindString(text); match != "" {
		return match
	}
	return NotFound
}

// sectionBounds locates a header-bounded line range: the range starts after
// the first line containing any of the headers (case-insensitive substring)
// and ends at the first subsequent line containing any of the end headers.
// Returns start=-1 when no header is present.
func sectionBounds(lines []string, headers, endHeaders []string) (int, int) {
	start := -1
	for i, line := range lines {
		if containsAnyFold(line, headers) {
			start = i + 1
			break
		}
	}
	if start == -1 {
		return -1, -1
	}

	end := len(lines)
	for i := start; i < len(lines); i++ {
		if containsAnyFold(lines[i], endHeaders) {
			end = i
			break
		}
	}
	return start, end
}

func containsAnyFold(line string, needles []string) bool {
	lower := strings.ToLower(line)
	for _, needle := range needles {
		if strings.Contains(lower, strings.ToLower(needle)) {
			return true
		}
	}
	return false
}

// ExtractEducation collects the lines between the education header and the
// next section, dropping blanks and lines naming spoken languages or
// proficiency adjectives.
func ExtractEducation(text string) string {
	lines := strings.Split(text, "\n")

	start, end := sectionBounds(lines, educationHeaders, educationEndHeaders)
	if start == -1 {
		return NotFound
	}

	var kept []string
	for _, line := range lines[start:end] {
		line = strings.TrimSpace(line)
		if line == "" || containsAnyFold(line, languageFilterWords) {
			continue
		}
		kept = append(kept, line)
	}

	if len(kept) == 0 {
		return NotFound
	}
	return strings.Join(kept, " | ")
}

// ExtractExperience scans the experience section with a forward-only cursor.
// At each position it either consumes one line verbatim (a line containing
// " at " and a 4-digit year), consumes three non-blank lines as a
// role/company/dates block, or advances by one line. An empty result means
// no experience was found; there is no sentinel for this field.
func ExtractExperience(text string) []string {
	lines := strings.Split(text, "\n")

	start, end := sectionBounds(lines, experienceHeaders, experienceEndHeaders)
	if start == -1 {
		return nil
	}

	section := lines[start:end]
	var entries []string

	for i := 0; i < len(section); {
		line := strings.TrimSpace(section[i])

		if strings.Contains(line, " at ") && yearPattern.MatchString(line) {
			entries = append(entries, line)
			i++
			continue
		}

		if i+2 < len(section) {
			role := strings.TrimSpace(section[i])
			company := strings.TrimSpace(section[i+1])
			dates := strings.TrimSpace(section[i+2])
			if role != "" && company != "" && dates != "" {
				entries = append(entries, fmt.Sprintf("%s at %s - %s", role, company, dates))
				i += 3
				continue
			}
		}

		i++
	}

	return entries
}

// ExtractCertifications scans every line of the document (certifications are
// rarely confined to one section), strips leading bullet characters and
// keeps lines containing a certification keyword, skipping bare section
// headers.
func ExtractCertifications(text string) string {
	var found []string

	for _, line := range strings.Split(text, "\n") {
		cleaned := strings.TrimSpace(strings.Trim(line, "•-–| "))
		lower := strings.ToLower(cleaned)

		isHeader := false
		for _, header := range certificationHeaders {
			if lower == header {
				isHeader = true
				break
			}
		}
		if isHeader {
			continue
		}

		for _, keyword := range certificationKeywords {
			if strings.Contains(lower, keyword) {
				found = append(found, cleaned)
				break
			}
		}
	}

	if len(found) == 0 {
		return NotFound
	}
	return strings.Join(found, " | ")
}

// ExtractLanguages looks for known language names below a "language" header
// first and falls back to scanning the whole document when the bounded scan
// finds nothing. The result is an alphabetically sorted, comma-joined set.
func ExtractLanguages(text string) string {
	lines := strings.Split(text, "\n")
	found := make(map[string]struct{})

	start := -1
	for i, line := range lines {
		if strings.Contains(strings.ToLower(line), "language") {
			start = i + 1
			break
		}
	}

	if start != -1 {
		for _, line := range lines[start:] {
			if containsAnyFold(line, languageStopWords) {
				break
			}
			for _, lang := range knownLanguages {
				if strings.Contains(strings.ToLower(line), strings.ToLower(lang)) {
					found[lang] = struct{}{}
				}
			}
		}
	}

	if len(found) == 0 {
		lower := strings.ToLower(text)
		for _, lang := range knownLanguages {
			if strings.Contains(lower, strings.ToLower(lang)) {
				found[lang] = struct{}{}
			}
		}
	}

	if len(found) == 0 {
		return NotFound
	}

	languages := make([]string, 0, len(found))
	for lang := range found {
		languages = append(languages, lang)
	}
	sort.Strings(languages)
	return strings.Join(languages, ", ")
}

// ExtractFields runs every field extractor over the linear text. The
// extractors are independent heuristic scans over the same immutable text,
// so order does not matter and none of them can fail.
func ExtractFields(text string) ExtractedCV {
	return ExtractedCV{
		Email:          ExtractEmail(text),
		Phone:          ExtractPhone(text),
		Skills:         ExtractSkills(text),
		Education:      ExtractEducation(text),
		Certifications: ExtractCertifications(text),
		Languages:      ExtractLanguages(text),
		Experience:     ExtractExperience(text),
	}
}

// JoinedExperience flattens the experience entries for storage and display.
func (cv ExtractedCV) JoinedExperience() string {
	return strings.Join(cv.Experience, " | ")
}

func allSentinelCV() ExtractedCV {
	return ExtractedCV{
		Email:          NotFound,
		Phone:          NotFound,
		Skills:         NotFound,
		Education:      NotFound,
		Certifications: NotFound,
		Languages:      NotFound,
	}
}

type CVExtractorService interface {
	ParseCV(filePath string) ExtractedCV
	ExtractText(filePath string) (string, error)
}

type cvExtractorService struct {
	pdfParser PDFParserService
}

func NewCVExtractorService(pdfParser PDFParserService) CVExtractorService {
	return &cvExtractorService{pdfParser: pdfParser}
}

// ParseCV never fails: an unreadable document degrades to an all-sentinel
// record so downstream display code needs no special case.
func (s *cvExtractorService) ParseCV(filePath string) ExtractedCV {
	text, err := s.pdfParser.ExtractText(filePath)
	if err != nil {
		return allSentinelCV()
	}
	return ExtractFields(text)
}

func (s *cvExtractorService) ExtractText(filePath string) (string, error) {
	return s.pdfParser.ExtractText(filePath)
}
