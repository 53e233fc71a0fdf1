package alumni

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords(n int) []Record {
	recs := make([]Record, n)
	for i := range recs {
		recs[i] = Record{Name: fmt.Sprintf("alumnus-%02d", i), Department: "Law", PassingYear: "2020"}
	}
	return recs
}

func TestControllerRevealsEveryRecordOnce(t *testing.T) {
	ctrl := NewController(10)
	recs := sampleRecords(25)

	seen := map[string]bool{}
	collect := func(p Page) {
		for _, r := range p.Records {
			assert.False(t, seen[r.Name], "%s rendered twice", r.Name)
			seen[r.Name] = true
		}
	}

	first := ctrl.Reset(AllCategory, recs)
	collect(first)
	assert.Len(t, first.Records, 10)
	assert.Equal(t, 0, first.Offset)
	assert.Equal(t, 10, first.Rendered)
	assert.True(t, first.ShowMore)

	second := ctrl.RevealNext()
	collect(second)
	assert.Len(t, second.Records, 10)
	assert.Equal(t, 10, second.Offset)
	assert.True(t, second.ShowMore)

	last := ctrl.RevealNext()
	collect(last)
	assert.Len(t, last.Records, 5)
	assert.Equal(t, 25, last.Rendered)
	assert.False(t, last.ShowMore)

	assert.Len(t, seen, 25)
}

func TestControllerRevealNextWhenDone(t *testing.T) {
	ctrl := NewController(10)
	ctrl.Reset(AllCategory, sampleRecords(3))

	require.NotPanics(t, func() {
		p := ctrl.RevealNext()
		assert.Empty(t, p.Records)
		assert.False(t, p.ShowMore)
		assert.Equal(t, 3, p.Rendered)
	})
	assert.Equal(t, 3, ctrl.State().Rendered)
}

func TestControllerResetClearsProgress(t *testing.T) {
	ctrl := NewController(2)
	ctrl.Reset(AllCategory, sampleRecords(5))
	ctrl.RevealNext()
	require.Equal(t, 4, ctrl.State().Rendered)

	p := ctrl.Reset("LAW", sampleRecords(3))
	assert.Equal(t, 0, p.Offset)
	assert.Equal(t, 2, p.Rendered)
	assert.Equal(t, "LAW", ctrl.State().Category)
}

func TestControllerEmptyView(t *testing.T) {
	ctrl := NewController(10)
	p := ctrl.Reset("SOA", nil)
	assert.True(t, p.Empty)
	assert.False(t, p.ShowMore)
	assert.Empty(t, p.Records)
}

func TestShowMoreHiddenExactlyWhenAllRendered(t *testing.T) {
	for _, total := range []int{0, 1, 9, 10, 11, 20, 21} {
		t.Run(fmt.Sprint(total), func(t *testing.T) {
			ctrl := NewController(10)
			p := ctrl.Reset(AllCategory, sampleRecords(total))
			for {
				assert.Equal(t, p.Rendered < total, p.ShowMore)
				if !p.ShowMore {
					break
				}
				p = ctrl.RevealNext()
			}
			assert.Equal(t, total, ctrl.State().Rendered)
		})
	}
}

func TestViewStateIsNotModified(t *testing.T) {
	s := NewViewState(AllCategory, sampleRecords(4))
	batch, next := s.Next(3)
	assert.Len(t, batch, 3)
	assert.Equal(t, 0, s.Rendered)
	assert.Equal(t, 3, next.Rendered)
	assert.Equal(t, 1, next.Remaining())
}

func TestResumeClampsOffset(t *testing.T) {
	recs := sampleRecords(5)
	assert.Equal(t, 5, Resume(AllCategory, recs, 99).Rendered)
	assert.Equal(t, 0, Resume(AllCategory, recs, -4).Rendered)

	page, _ := Paginate(Resume(AllCategory, recs, 3), 10)
	assert.Equal(t, 3, page.Offset)
	assert.Equal(t, []string{"alumnus-03", "alumnus-04"}, names(page.Records))
}

func TestNextWithExtremeSizes(t *testing.T) {
	recs := sampleRecords(2)
	tests := []struct {
		name   string
		offset int
		size   int
		want   []string
	}{
		{"max size after offset", 1, math.MaxInt, []string{"alumnus-01"}},
		{"max size from start", 0, math.MaxInt, []string{"alumnus-00", "alumnus-01"}},
		{"negative size uses default", 0, -5, []string{"alumnus-00", "alumnus-01"}},
		{"offset past the end", 2, math.MaxInt, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var page Page
			require.NotPanics(t, func() {
				page, _ = Paginate(Resume(AllCategory, recs, tt.offset), tt.size)
			})
			assert.Equal(t, tt.want, names(page.Records))
			assert.False(t, page.ShowMore)
			assert.Equal(t, 2, page.Rendered)
		})
	}
}

func TestNonPositivePageSizeUsesDefault(t *testing.T) {
	ctrl := NewController(0)
	p := ctrl.Reset(AllCategory, sampleRecords(DefaultPageSize+1))
	assert.Len(t, p.Records, DefaultPageSize)
}

func TestShowBackToTop(t *testing.T) {
	assert.False(t, ShowBackToTop(0))
	assert.False(t, ShowBackToTop(300))
	assert.True(t, ShowBackToTop(300.5))
	assert.True(t, ShowBackToTop(1200))
}
