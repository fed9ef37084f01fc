package marvel

import "context"

const comicsPath = "/v1/public/comics"

// ComicsService fetches comic resources and their cross-references.
type ComicsService struct {
	client *Client
}

// ComicFilter narrows comic list calls.
type ComicFilter struct {
	ListOptions
	Format            string `url:"format,omitempty"`
	FormatType        string `url:"formatType,omitempty"`
	NoVariants        *bool  `url:"noVariants,omitempty"`
	DateDescriptor    string `url:"dateDescriptor,omitempty"`
	DateRange         []int  `url:"dateRange,comma,omitempty"`
	Title             string `url:"title,omitempty"`
	TitleStartsWith   string `url:"titleStartsWith,omitempty"`
	StartYear         *int   `url:"startYear,omitempty"`
	IssueNumber       *int   `url:"issueNumber,omitempty"`
	DiamondCode       string `url:"diamondCode,omitempty"`
	DigitalID         *int   `url:"digitalId,omitempty"`
	UPC               string `url:"upc,omitempty"`
	ISBN              string `url:"isbn,omitempty"`
	EAN               string `url:"ean,omitempty"`
	ISSN              string `url:"issn,omitempty"`
	HasDigitalIssue   *bool  `url:"hasDigitalIssue,omitempty"`
	ModifiedSince     string `url:"modifiedSince,omitempty"`
	Creators          []int  `url:"creators,comma,omitempty"`
	Characters        []int  `url:"characters,comma,omitempty"`
	Series            []int  `url:"series,comma,omitempty"`
	Events            []int  `url:"events,comma,omitempty"`
	Stories           []int  `url:"stories,comma,omitempty"`
	SharedAppearances []int  `url:"sharedAppearances,comma,omitempty"`
	Collaborators     []int  `url:"collaborators,comma,omitempty"`
	OrderBy           string `url:"orderBy,omitempty"`
	Contains          string `url:"contains,omitempty"`
}

// Get retrieves a single comic by ID.
func (s *ComicsService) Get(ctx context.Context, id int) (*Comic, error) {
	resp, err := getOne[Comic](ctx, s.client, comicsPath, "comic", id)
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// List retrieves comics matching the filter.
func (s *ComicsService) List(ctx context.Context, filter *ComicFilter) (*ListResponse[Comic], error) {
	return getList[Comic](ctx, s.client, comicsPath, filter)
}

// Characters retrieves characters appearing in the comic.
func (s *ComicsService) Characters(ctx context.Context, id int, filter *CharacterFilter) (*ListResponse[Character], error) {
	return getRelated[Character](ctx, s.client, comicsPath, id, "characters", filter)
}

// Creators retrieves creators credited on the comic.
func (s *ComicsService) Creators(ctx context.Context, id int, filter *CreatorFilter) (*ListResponse[Creator], error) {
	return getRelated[Creator](ctx, s.client, comicsPath, id, "creators", filter)
}

// Events retrieves events the comic takes place in.
func (s *ComicsService) Events(ctx context.Context, id int, filter *EventFilter) (*ListResponse[Event], error) {
	return getRelated[Event](ctx, s.client, comicsPath, id, "events", filter)
}

// Stories retrieves stories contained in the comic.
func (s *ComicsService) Stories(ctx context.Context, id int, filter *StoryFilter) (*ListResponse[Story], error) {
	return getRelated[Story](ctx, s.client, comicsPath, id, "stories", filter)
}

// GetMany retrieves several comics concurrently, preserving input order.
func (s *ComicsService) GetMany(ctx context.Context, ids []int) ([]*Comic, error) {
	return fetchMany(ctx, ids, s.Get)
}
