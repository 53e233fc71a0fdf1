package alumni

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var testImages = ImageConfig{Prefix: "/assets/images", DefaultImage: "boy"}

func TestImageStem(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"John O'Neil", "john_oneil"},
		{"  Mary   Jane  ", "mary_jane"},
		{"Anne-Marie Smith Jr.", "annemarie_smith_jr"},
		{"R2 D2", "r2_d2"},
		{"!!!", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ImageStem(tt.name))
		})
	}
}

func TestHeading(t *testing.T) {
	assert.Equal(t, "Law (2020)", Heading("Law", "2020"))
	assert.Equal(t, "Law", Heading("Law", ""))
	assert.Equal(t, "(2020)", Heading("", "2020"))
	assert.Equal(t, "", Heading("", ""))
}

func TestProject(t *testing.T) {
	cards := NewCardRenderer(testImages)

	t.Run("photo from name", func(t *testing.T) {
		c := cards.Project(Record{Name: "John O'Neil"})
		assert.Equal(t, "/assets/images/john_oneil.png", c.PhotoURL)
		assert.Equal(t, "/assets/images/boy.png", c.FallbackPhoto)
	})

	t.Run("default photo for empty or unusable name", func(t *testing.T) {
		assert.Equal(t, "/assets/images/boy.png", cards.Project(Record{Department: "Law"}).PhotoURL)
		assert.Equal(t, "/assets/images/boy.png", cards.Project(Record{Name: "***"}).PhotoURL)
	})

	t.Run("optional fields stay empty", func(t *testing.T) {
		c := cards.Project(Record{Name: "A", Department: "Law", Package: "8 LPA"})
		assert.Equal(t, "Law", c.Heading)
		assert.Empty(t, c.Designation)
		assert.Empty(t, c.Company)
		assert.Equal(t, "8 LPA", c.Package)
		assert.Empty(t, c.FeedbackLines)
	})

	t.Run("feedback text is kept as written", func(t *testing.T) {
		for _, fb := range []string{
			"Replace <your name> with the mentor you liked",
			"# of offers: 3",
			"_great_",
			"Great *faculty*",
			"[click](javascript:alert(1))",
		} {
			c := cards.Project(Record{Name: "A", Feedback: fb})
			assert.Equal(t, []string{fb}, c.FeedbackLines, fb)
		}
	})

	t.Run("long feedback is not truncated", func(t *testing.T) {
		long := strings.Repeat("word ", 200)
		c := cards.Project(Record{Name: "A", Feedback: long})
		assert.Equal(t, []string{long}, c.FeedbackLines)
	})
}

func TestFeedbackLines(t *testing.T) {
	assert.Nil(t, FeedbackLines(""))
	assert.Nil(t, FeedbackLines("  \n "))
	assert.Equal(t, []string{"first", "", "second"}, FeedbackLines("first\r\n\r\nsecond"))
}
