package alumni

// DefaultPageSize is the number of cards revealed per page.
const DefaultPageSize = 10

// ViewState is the current filter selection, its filtered and sorted
// records, and how many of them have been rendered. Values are never
// modified in place; transitions return a new ViewState.
type ViewState struct {
	Category string
	Records  []Record
	Rendered int
}

// NewViewState starts a filter cycle with nothing rendered.
func NewViewState(category string, filtered []Record) ViewState {
	return ViewState{Category: category, Records: filtered}
}

// Resume rebuilds a state in which rendered records have already been
// shown. rendered is clamped to [0, len(filtered)].
func Resume(category string, filtered []Record, rendered int) ViewState {
	rendered = max(0, min(rendered, len(filtered)))
	return ViewState{Category: category, Records: filtered, Rendered: rendered}
}

func (s ViewState) Total() int     { return len(s.Records) }
func (s ViewState) HasMore() bool  { return s.Rendered < len(s.Records) }
func (s ViewState) Remaining() int { return len(s.Records) - s.Rendered }

// Next returns the next page of at most size records and the state after
// rendering them. When everything is rendered it returns an empty slice and
// an unchanged state.
func (s ViewState) Next(size int) ([]Record, ViewState) {
	if size < 1 {
		size = DefaultPageSize
	}
	end := s.Rendered + min(size, s.Remaining())
	batch := s.Records[s.Rendered:end:end]
	next := s
	next.Rendered = end
	return batch, next
}

// Page is one batch revealed by the controller.
type Page struct {
	Category string   `json:"category"`
	Records  []Record `json:"records"`
	Offset   int      `json:"offset"`
	Rendered int      `json:"rendered"`
	Total    int      `json:"total"`
	ShowMore bool     `json:"showMore"`
	Empty    bool     `json:"empty"`
}

func pageOf(prev ViewState, batch []Record, next ViewState) Page {
	return Page{
		Category: next.Category,
		Records:  batch,
		Offset:   prev.Rendered,
		Rendered: next.Rendered,
		Total:    next.Total(),
		ShowMore: next.HasMore(),
		Empty:    next.Total() == 0,
	}
}

// Paginate reveals the next page of s. It is the pure step behind
// Controller.RevealNext and the stateless HTTP fragments.
func Paginate(s ViewState, size int) (Page, ViewState) {
	batch, next := s.Next(size)
	return pageOf(s, batch, next), next
}

// Controller owns the view state of one showcase and replaces it wholesale
// on every transition.
type Controller struct {
	pageSize int
	state    ViewState
}

func NewController(pageSize int) *Controller {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return &Controller{pageSize: pageSize}
}

// Reset discards previously revealed pages, selects a new filtered view and
// reveals its first page.
func (c *Controller) Reset(category string, filtered []Record) Page {
	page, next := Paginate(NewViewState(category, filtered), c.pageSize)
	c.state = next
	return page
}

// RevealNext reveals the page after the last one shown. Once everything is
// shown it returns an empty page and leaves the state alone.
func (c *Controller) RevealNext() Page {
	page, next := Paginate(c.state, c.pageSize)
	c.state = next
	return page
}

// State returns the current view state.
func (c *Controller) State() ViewState { return c.state }
