package marvel

import "context"

const storiesPath = "/v1/public/stories"

// StoriesService fetches story resources and their cross-references.
type StoriesService struct {
	client *Client
}

// StoryFilter narrows story list calls.
type StoryFilter struct {
	ListOptions
	ModifiedSince string `url:"modifiedSince,omitempty"`
	Comics        []int  `url:"comics,comma,omitempty"`
	Series        []int  `url:"series,comma,omitempty"`
	Events        []int  `url:"events,comma,omitempty"`
	Creators      []int  `url:"creators,comma,omitempty"`
	Characters    []int  `url:"characters,comma,omitempty"`
	OrderBy       string `url:"orderBy,omitempty"`
}

// Get retrieves a single story by ID.
func (s *StoriesService) Get(ctx context.Context, id int) (*Story, error) {
	resp, err := getOne[Story](ctx, s.client, storiesPath, "story", id)
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// List retrieves stories matching the filter.
func (s *StoriesService) List(ctx context.Context, filter *StoryFilter) (*ListResponse[Story], error) {
	return getList[Story](ctx, s.client, storiesPath, filter)
}

// Characters retrieves characters appearing in the story.
func (s *StoriesService) Characters(ctx context.Context, id int, filter *CharacterFilter) (*ListResponse[Character], error) {
	return getRelated[Character](ctx, s.client, storiesPath, id, "characters", filter)
}

// Comics retrieves comics containing the story.
func (s *StoriesService) Comics(ctx context.Context, id int, filter *ComicFilter) (*ListResponse[Comic], error) {
	return getRelated[Comic](ctx, s.client, storiesPath, id, "comics", filter)
}

// Creators retrieves creators who worked on the story.
func (s *StoriesService) Creators(ctx context.Context, id int, filter *CreatorFilter) (*ListResponse[Creator], error) {
	return getRelated[Creator](ctx, s.client, storiesPath, id, "creators", filter)
}

// Events retrieves events the story takes place in.
func (s *StoriesService) Events(ctx context.Context, id int, filter *EventFilter) (*ListResponse[Event], error) {
	return getRelated[Event](ctx, s.client, storiesPath, id, "events", filter)
}

// Series retrieves series the story appears in.
func (s *StoriesService) Series(ctx context.Context, id int, filter *SeriesFilter) (*ListResponse[SeriesEntity], error) {
	return getRelated[SeriesEntity](ctx, s.client, storiesPath, id, "series", filter)
}

// GetMany retrieves several stories concurrently, preserving input order.
func (s *StoriesService) GetMany(ctx context.Context, ids []int) ([]*Story, error) {
	return fetchMany(ctx, ids, s.Get)
}
