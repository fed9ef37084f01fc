package marvel

import "context"

const creatorsPath = "/v1/public/creators"

// CreatorsService fetches creator resources and their cross-references.
type CreatorsService struct {
	client *Client
}

// CreatorFilter narrows creator list calls.
type CreatorFilter struct {
	ListOptions
	FirstName            string `url:"firstName,omitempty"`
	MiddleName           string `url:"middleName,omitempty"`
	LastName             string `url:"lastName,omitempty"`
	Suffix               string `url:"suffix,omitempty"`
	NameStartsWith       string `url:"nameStartsWith,omitempty"`
	FirstNameStartsWith  string `url:"firstNameStartsWith,omitempty"`
	MiddleNameStartsWith string `url:"middleNameStartsWith,omitempty"`
	LastNameStartsWith   string `url:"lastNameStartsWith,omitempty"`
	ModifiedSince        string `url:"modifiedSince,omitempty"`
	Comics               []int  `url:"comics,comma,omitempty"`
	Series               []int  `url:"series,comma,omitempty"`
	Events               []int  `url:"events,comma,omitempty"`
	Stories              []int  `url:"stories,comma,omitempty"`
	OrderBy              string `url:"orderBy,omitempty"`
}

// Get retrieves a single creator by ID.
func (s *CreatorsService) Get(ctx context.Context, id int) (*Creator, error) {
	resp, err := getOne[Creator](ctx, s.client, creatorsPath, "creator", id)
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// List retrieves creators matching the filter.
func (s *CreatorsService) List(ctx context.Context, filter *CreatorFilter) (*ListResponse[Creator], error) {
	return getList[Creator](ctx, s.client, creatorsPath, filter)
}

// Comics retrieves comics the creator worked on.
func (s *CreatorsService) Comics(ctx context.Context, id int, filter *ComicFilter) (*ListResponse[Comic], error) {
	return getRelated[Comic](ctx, s.client, creatorsPath, id, "comics", filter)
}

// Events retrieves events featuring the creator's work.
func (s *CreatorsService) Events(ctx context.Context, id int, filter *EventFilter) (*ListResponse[Event], error) {
	return getRelated[Event](ctx, s.client, creatorsPath, id, "events", filter)
}

// Series retrieves series the creator worked on.
func (s *CreatorsService) Series(ctx context.Context, id int, filter *SeriesFilter) (*ListResponse[SeriesEntity], error) {
	return getRelated[SeriesEntity](ctx, s.client, creatorsPath, id, "series", filter)
}

// Stories retrieves stories the creator worked on.
func (s *CreatorsService) Stories(ctx context.Context, id int, filter *StoryFilter) (*ListResponse[Story], error) {
	return getRelated[Story](ctx, s.client, creatorsPath, id, "stories", filter)
}

// GetMany retrieves several creators concurrently, preserving input order.
func (s *CreatorsService) GetMany(ctx context.Context, ids []int) ([]*Creator, error) {
	return fetchMany(ctx, ids, s.Get)
}
