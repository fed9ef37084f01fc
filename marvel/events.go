package marvel

import "context"

const eventsPath = "/v1/public/events"

// EventsService fetches event resources and their cross-references.
type EventsService struct {
	client *Client
}

// EventFilter narrows event list calls.
type EventFilter struct {
	ListOptions
	Name           string `url:"name,omitempty"`
	NameStartsWith string `url:"nameStartsWith,omitempty"`
	ModifiedSince  string `url:"modifiedSince,omitempty"`
	Creators       []int  `url:"creators,comma,omitempty"`
	Characters     []int  `url:"characters,comma,omitempty"`
	Series         []int  `url:"series,comma,omitempty"`
	Comics         []int  `url:"comics,comma,omitempty"`
	Stories        []int  `url:"stories,comma,omitempty"`
	OrderBy        string `url:"orderBy,omitempty"`
}

// Get retrieves a single event by ID.
func (s *EventsService) Get(ctx context.Context, id int) (*Event, error) {
	resp, err := getOne[Event](ctx, s.client, eventsPath, "event", id)
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// List retrieves events matching the filter.
func (s *EventsService) List(ctx context.Context, filter *EventFilter) (*ListResponse[Event], error) {
	return getList[Event](ctx, s.client, eventsPath, filter)
}

// Characters retrieves characters appearing in the event.
func (s *EventsService) Characters(ctx context.Context, id int, filter *CharacterFilter) (*ListResponse[Character], error) {
	return getRelated[Character](ctx, s.client, eventsPath, id, "characters", filter)
}

// Comics retrieves comics taking place during the event.
func (s *EventsService) Comics(ctx context.Context, id int, filter *ComicFilter) (*ListResponse[Comic], error) {
	return getRelated[Comic](ctx, s.client, eventsPath, id, "comics", filter)
}

// Creators retrieves creators whose work appears in the event.
func (s *EventsService) Creators(ctx context.Context, id int, filter *CreatorFilter) (*ListResponse[Creator], error) {
	return getRelated[Creator](ctx, s.client, eventsPath, id, "creators", filter)
}

// Series retrieves series the event spans.
func (s *EventsService) Series(ctx context.Context, id int, filter *SeriesFilter) (*ListResponse[SeriesEntity], error) {
	return getRelated[SeriesEntity](ctx, s.client, eventsPath, id, "series", filter)
}

// Stories retrieves stories taking place during the event.
func (s *EventsService) Stories(ctx context.Context, id int, filter *StoryFilter) (*ListResponse[Story], error) {
	return getRelated[Story](ctx, s.client, eventsPath, id, "stories", filter)
}

// GetMany retrieves several events concurrently, preserving input order.
func (s *EventsService) GetMany(ctx context.Context, ids []int) ([]*Event, error) {
	return fetchMany(ctx, ids, s.Get)
}
