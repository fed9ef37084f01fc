package marvel

import "context"

const charactersPath = "/v1/public/characters"

// CharactersService fetches character resources and their cross-references.
type CharactersService struct {
	client *Client
}

// CharacterFilter narrows character list calls. Unset fields are omitted
// from the query string; ID lists are comma-joined in their given order.
type CharacterFilter struct {
	ListOptions
	Name           string `url:"name,omitempty"`
	NameStartsWith string `url:"nameStartsWith,omitempty"`
	ModifiedSince  string `url:"modifiedSince,omitempty"`
	Comics         []int  `url:"comics,comma,omitempty"`
	Series         []int  `url:"series,comma,omitempty"`
	Events         []int  `url:"events,comma,omitempty"`
	Stories        []int  `url:"stories,comma,omitempty"`
	OrderBy        string `url:"orderBy,omitempty"`
}

// Get retrieves a single character by ID.
func (s *CharactersService) Get(ctx context.Context, id int) (*Character, error) {
	resp, err := getOne[Character](ctx, s.client, charactersPath, "character", id)
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// List retrieves characters matching the filter.
func (s *CharactersService) List(ctx context.Context, filter *CharacterFilter) (*ListResponse[Character], error) {
	return getList[Character](ctx, s.client, charactersPath, filter)
}

// Comics retrieves comics featuring the character.
func (s *CharactersService) Comics(ctx context.Context, id int, filter *ComicFilter) (*ListResponse[Comic], error) {
	return getRelated[Comic](ctx, s.client, charactersPath, id, "comics", filter)
}

// Events retrieves events the character appears in.
func (s *CharactersService) Events(ctx context.Context, id int, filter *EventFilter) (*ListResponse[Event], error) {
	return getRelated[Event](ctx, s.client, charactersPath, id, "events", filter)
}

// Series retrieves series the character appears in.
func (s *CharactersService) Series(ctx context.Context, id int, filter *SeriesFilter) (*ListResponse[SeriesEntity], error) {
	return getRelated[SeriesEntity](ctx, s.client, charactersPath, id, "series", filter)
}

// Stories retrieves stories the character appears in.
func (s *CharactersService) Stories(ctx context.Context, id int, filter *StoryFilter) (*ListResponse[Story], error) {
	return getRelated[Story](ctx, s.client, charactersPath, id, "stories", filter)
}

// GetMany retrieves several characters concurrently, preserving input order.
func (s *CharactersService) GetMany(ctx context.Context, ids []int) ([]*Character, error) {
	return fetchMany(ctx, ids, s.Get)
}
