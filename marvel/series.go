package marvel

import "context"

const seriesPath = "/v1/public/series"

// SeriesService fetches series resources and their cross-references.
type SeriesService struct {
	client *Client
}

// SeriesFilter narrows series list calls.
type SeriesFilter struct {
	ListOptions
	Title           string `url:"title,omitempty"`
	TitleStartsWith string `url:"titleStartsWith,omitempty"`
	StartYear       *int   `url:"startYear,omitempty"`
	ModifiedSince   string `url:"modifiedSince,omitempty"`
	Comics          []int  `url:"comics,comma,omitempty"`
	Stories         []int  `url:"stories,comma,omitempty"`
	Events          []int  `url:"events,comma,omitempty"`
	Creators        []int  `url:"creators,comma,omitempty"`
	Characters      []int  `url:"characters,comma,omitempty"`
	SeriesType      string `url:"seriesType,omitempty"`
	Contains        string `url:"contains,omitempty"`
	OrderBy         string `url:"orderBy,omitempty"`
}

// Get retrieves a single series by ID.
func (s *SeriesService) Get(ctx context.Context, id int) (*SeriesEntity, error) {
	resp, err := getOne[SeriesEntity](ctx, s.client, seriesPath, "series", id)
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// List retrieves series matching the filter.
func (s *SeriesService) List(ctx context.Context, filter *SeriesFilter) (*ListResponse[SeriesEntity], error) {
	return getList[SeriesEntity](ctx, s.client, seriesPath, filter)
}

// Characters retrieves characters appearing in the series.
func (s *SeriesService) Characters(ctx context.Context, id int, filter *CharacterFilter) (*ListResponse[Character], error) {
	return getRelated[Character](ctx, s.client, seriesPath, id, "characters", filter)
}

// Comics retrieves comics belonging to the series.
func (s *SeriesService) Comics(ctx context.Context, id int, filter *ComicFilter) (*ListResponse[Comic], error) {
	return getRelated[Comic](ctx, s.client, seriesPath, id, "comics", filter)
}

// Creators retrieves creators who worked on the series.
func (s *SeriesService) Creators(ctx context.Context, id int, filter *CreatorFilter) (*ListResponse[Creator], error) {
	return getRelated[Creator](ctx, s.client, seriesPath, id, "creators", filter)
}

// Events retrieves events occurring in the series.
func (s *SeriesService) Events(ctx context.Context, id int, filter *EventFilter) (*ListResponse[Event], error) {
	return getRelated[Event](ctx, s.client, seriesPath, id, "events", filter)
}

// Stories retrieves stories belonging to the series.
func (s *SeriesService) Stories(ctx context.Context, id int, filter *StoryFilter) (*ListResponse[Story], error) {
	return getRelated[Story](ctx, s.client, seriesPath, id, "stories", filter)
}

// GetMany retrieves several series concurrently, preserving input order.
func (s *SeriesService) GetMany(ctx context.Context, ids []int) ([]*SeriesEntity, error) {
	return fetchMany(ctx, ids, s.Get)
}
