package alumni

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jellydator/ttlcache/v3"

	"alumni/views/models"
)

const (
	datasetKey = "dataset"

	// MaxPageLimit caps the page size a caller may request.
	MaxPageLimit = 200
)

// ServiceConfig tunes dataset loading and paging.
type ServiceConfig struct {
	PageSize     int
	CacheTTL     time.Duration // 0 disables caching
	FetchTimeout time.Duration
	Images       ImageConfig
}

// Service loads the dataset once per cache period and answers filter and
// page queries against the parsed snapshot.
type Service struct {
	src   Source
	cfg   ServiceConfig
	cache *ttlcache.Cache[string, []Record]
	cards *CardRenderer
	log   *slog.Logger
}

func NewService(src Source, cfg ServiceConfig, log *slog.Logger) *Service {
	if cfg.PageSize < 1 {
		cfg.PageSize = DefaultPageSize
	}
	return &Service{
		src:   src,
		cfg:   cfg,
		cache: ttlcache.New[string, []Record](ttlcache.WithDisableTouchOnHit[string, []Record]()),
		cards: NewCardRenderer(cfg.Images),
		log:   log,
	}
}

// PageSize returns the configured page size.
func (s *Service) PageSize() int { return s.cfg.PageSize }

// Cards returns the card renderer.
func (s *Service) Cards() *CardRenderer { return s.cards }

// Load returns the parsed dataset. A failed fetch is not cached and is
// reported through Dataset.Err with empty records.
func (s *Service) Load(ctx context.Context) Dataset {
	if s.cfg.CacheTTL > 0 {
		if item := s.cache.Get(datasetKey); item != nil {
			return Dataset{Records: item.Value()}
		}
	}

	if s.cfg.FetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.FetchTimeout)
		defer cancel()
	}

	raw, err := s.src.Fetch(ctx)
	if err != nil {
		s.log.Error("failed to load alumni dataset", "source", s.src.String(), "error", err)
		return Dataset{Err: fmt.Errorf("%w: %v", ErrDatasetUnavailable, err)}
	}

	records := Parse(string(raw))
	s.log.Info("loaded alumni dataset", "source", s.src.String(), "records", len(records))
	if s.cfg.CacheTTL > 0 {
		s.cache.Set(datasetKey, records, s.cfg.CacheTTL)
	}
	return Dataset{Records: records}
}

// Invalidate drops the cached snapshot so the next Load fetches again.
func (s *Service) Invalidate() {
	s.cache.Delete(datasetKey)
}

// Page filters the dataset by q.Category and returns the page starting at
// q.Offset. A Limit below 1 uses the configured page size; larger limits
// are capped at MaxPageLimit.
func (s *Service) Page(ctx context.Context, q PageQuery) (Page, error) {
	ds := s.Load(ctx)
	if ds.Failed() {
		return Page{}, ds.Err
	}
	limit := q.Limit
	if limit < 1 {
		limit = s.cfg.PageSize
	}
	limit = min(limit, MaxPageLimit)
	category := normalizeCategory(q.Category)
	state := Resume(category, Filter(ds.Records, category), q.Offset)
	page, _ := Paginate(state, limit)
	return page, nil
}

// CategoryCount is a category code with the number of records it selects.
type CategoryCount struct {
	Category
	Count int `json:"count"`
}

// CategoryCounts counts the records selected by each category code.
func (s *Service) CategoryCounts(ctx context.Context) ([]CategoryCount, error) {
	ds := s.Load(ctx)
	if ds.Failed() {
		return nil, ds.Err
	}
	cats := Categories()
	counts := make([]CategoryCount, len(cats))
	for i, c := range cats {
		counts[i] = CategoryCount{Category: c, Count: len(Filter(ds.Records, c.Code))}
	}
	return counts, nil
}

// FindByName returns the first record whose name matches, ignoring case.
func (s *Service) FindByName(ctx context.Context, name string) (Record, bool, error) {
	ds := s.Load(ctx)
	if ds.Failed() {
		return Record{}, false, ds.Err
	}
	name = strings.TrimSpace(name)
	for _, r := range ds.Records {
		if strings.EqualFold(r.Name, name) {
			return r, true, nil
		}
	}
	return Record{}, false, nil
}

// Showcase builds the filter bar and first page for a category.
func (s *Service) Showcase(ctx context.Context, category string) models.ShowcaseView {
	category = normalizeCategory(category)
	view := models.ShowcaseView{
		Filters:  filterViews(category),
		Category: category,
	}

	ds := s.Load(ctx)
	if ds.Failed() {
		view.LoadError = true
		return view
	}

	ctrl := NewController(s.cfg.PageSize)
	view.Page = s.pageView(ctrl.Reset(category, Filter(ds.Records, category)))
	return view
}

// More returns the page after offset already-rendered records.
func (s *Service) More(ctx context.Context, category string, offset int) (models.PageView, error) {
	page, err := s.Page(ctx, PageQuery{Category: category, Offset: offset})
	if err != nil {
		return models.PageView{}, err
	}
	return s.pageView(page), nil
}

func (s *Service) pageView(p Page) models.PageView {
	return models.PageView{
		Category: p.Category,
		Cards:    s.cards.ProjectAll(p.Records),
		Rendered: p.Rendered,
		Total:    p.Total,
		ShowMore: p.ShowMore,
		Empty:    p.Empty,
	}
}

func filterViews(active string) []models.FilterView {
	opts := FilterOptions()
	views := make([]models.FilterView, len(opts))
	for i, o := range opts {
		views[i] = models.FilterView{Label: o, Active: o == active}
	}
	return views
}

func normalizeCategory(category string) string {
	category = strings.TrimSpace(category)
	if category == "" {
		return AllCategory
	}
	return category
}
