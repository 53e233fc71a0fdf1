package alumni

import (
	"path"
	"regexp"
	"strings"

	"alumni/views/models"
)

// ImageConfig locates alumni photos: <Prefix>/<stem>.png.
type ImageConfig struct {
	Prefix       string
	DefaultImage string
}

func (c ImageConfig) url(stem string) string {
	return path.Join(c.Prefix, stem+".png")
}

// DefaultPhotoURL is used when no photo can be derived from the name, and
// by the browser when the derived photo fails to load.
func (c ImageConfig) DefaultPhotoURL() string {
	return c.url(c.DefaultImage)
}

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	nonStemChars  = regexp.MustCompile(`[^a-z0-9_]`)
)

// ImageStem derives a photo file stem from a name: lowercase, whitespace runs
// become underscores, anything outside [a-z0-9_] is removed.
func ImageStem(name string) string {
	stem := strings.ToLower(strings.TrimSpace(name))
	stem = whitespaceRun.ReplaceAllString(stem, "_")
	return nonStemChars.ReplaceAllString(stem, "")
}

// Heading combines department and passing year for the card header.
func Heading(department, year string) string {
	switch {
	case department != "" && year != "":
		return department + " (" + year + ")"
	case department != "":
		return department
	case year != "":
		return "(" + year + ")"
	}
	return ""
}

// CardRenderer projects records into card display models.
type CardRenderer struct {
	images ImageConfig
}

func NewCardRenderer(images ImageConfig) *CardRenderer {
	return &CardRenderer{images: images}
}

// Project builds the card view of one record. It has no side effects.
func (c *CardRenderer) Project(r Record) models.CardView {
	photo := c.images.DefaultPhotoURL()
	if stem := ImageStem(r.Name); stem != "" {
		photo = c.images.url(stem)
	}

	return models.CardView{
		Name:          r.Name,
		PhotoURL:      photo,
		FallbackPhoto: c.images.DefaultPhotoURL(),
		Heading:       Heading(r.Department, r.PassingYear),
		Designation:   r.Designation,
		Company:       r.Company,
		Package:       r.Package,
		FeedbackLines: FeedbackLines(r.Feedback),
	}
}

// ProjectAll projects every record in order.
func (c *CardRenderer) ProjectAll(records []Record) []models.CardView {
	views := make([]models.CardView, len(records))
	for i, r := range records {
		views[i] = c.Project(r)
	}
	return views
}

// FeedbackLines splits feedback into display lines. The text is kept as
// written; the view escapes each line and joins them with line breaks.
func FeedbackLines(feedback string) []string {
	if strings.TrimSpace(feedback) == "" {
		return nil
	}
	lines := strings.Split(feedback, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
