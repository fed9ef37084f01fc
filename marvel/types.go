package marvel

import (
	"encoding/json"
	"reflect"
	"strings"
)

// Common structures shared across entity types. These are passive records;
// the client never interprets their contents.

// Image points at a picture on Marvel's CDN. The full URL is
// path + "." + extension.
type Image struct {
	Path      string `json:"path"`
	Extension string `json:"extension"`
}

// URL is an external link associated with an entity.
type URL struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

// TextObject is a localized piece of descriptive text.
type TextObject struct {
	Type     string `json:"type"`
	Language string `json:"language"`
	Text     string `json:"text"`
}

// Date is a typed date attached to a comic, e.g. onsaleDate or focDate.
type Date struct {
	Type string `json:"type"`
	Date string `json:"date"`
}

// Price is a typed price attached to a comic, in USD.
type Price struct {
	Type  string  `json:"type"`
	Price float64 `json:"price"`
}

// Summary is a compact cross-reference to another entity. Role is set on
// creator and character references, Type on story references.
type Summary struct {
	ResourceURI string `json:"resourceURI"`
	Name        string `json:"name"`
	Role        string `json:"role,omitempty"`
	Type        string `json:"type,omitempty"`
}

// Collection is an inline preview of a related resource list.
type Collection struct {
	Available     int       `json:"available"`
	Returned      int       `json:"returned"`
	CollectionURI string    `json:"collectionURI"`
	Items         []Summary `json:"items"`
}

// Character is a Marvel character record.
type Character struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Modified    string     `json:"modified"`
	ResourceURI string     `json:"resourceURI"`
	URLs        []URL      `json:"urls"`
	Thumbnail   *Image     `json:"thumbnail"`
	Comics      Collection `json:"comics"`
	Stories     Collection `json:"stories"`
	Events      Collection `json:"events"`
	Series      Collection `json:"series"`

	// Extra captures upstream fields this schema does not know about yet.
	Extra map[string]json.RawMessage `json:"-"`
}

func (c *Character) UnmarshalJSON(b []byte) error {
	type character Character
	var aux character
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*c = Character(aux)
	c.Extra = extraFields(b, reflect.TypeOf(aux))
	return nil
}

// Comic is a Marvel comic issue or collection record.
type Comic struct {
	ID                 int          `json:"id"`
	DigitalID          int          `json:"digitalId"`
	Title              string       `json:"title"`
	IssueNumber        float64      `json:"issueNumber"`
	VariantDescription string       `json:"variantDescription"`
	Description        string       `json:"description"`
	Modified           string       `json:"modified"`
	ISBN               string       `json:"isbn"`
	UPC                string       `json:"upc"`
	DiamondCode        string       `json:"diamondCode"`
	EAN                string       `json:"ean"`
	ISSN               string       `json:"issn"`
	Format             string       `json:"format"`
	PageCount          int          `json:"pageCount"`
	TextObjects        []TextObject `json:"textObjects"`
	ResourceURI        string       `json:"resourceURI"`
	URLs               []URL        `json:"urls"`
	Series             *Summary     `json:"series"`
	Variants           []Summary    `json:"variants"`
	Collections        []Summary    `json:"collections"`
	CollectedIssues    []Summary    `json:"collectedIssues"`
	Dates              []Date       `json:"dates"`
	Prices             []Price      `json:"prices"`
	Thumbnail          *Image       `json:"thumbnail"`
	Images             []Image      `json:"images"`
	Creators           Collection   `json:"creators"`
	Characters         Collection   `json:"characters"`
	Stories            Collection   `json:"stories"`
	Events             Collection   `json:"events"`

	Extra map[string]json.RawMessage `json:"-"`
}

func (c *Comic) UnmarshalJSON(b []byte) error {
	type comic Comic
	var aux comic
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*c = Comic(aux)
	c.Extra = extraFields(b, reflect.TypeOf(aux))
	return nil
}

// Creator is a Marvel creator record (writer, artist, editor, ...).
type Creator struct {
	ID          int        `json:"id"`
	FirstName   string     `json:"firstName"`
	MiddleName  string     `json:"middleName"`
	LastName    string     `json:"lastName"`
	Suffix      string     `json:"suffix"`
	FullName    string     `json:"fullName"`
	Modified    string     `json:"modified"`
	ResourceURI string     `json:"resourceURI"`
	URLs        []URL      `json:"urls"`
	Thumbnail   *Image     `json:"thumbnail"`
	Series      Collection `json:"series"`
	Stories     Collection `json:"stories"`
	Comics      Collection `json:"comics"`
	Events      Collection `json:"events"`

	Extra map[string]json.RawMessage `json:"-"`
}

func (c *Creator) UnmarshalJSON(b []byte) error {
	type creator Creator
	var aux creator
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*c = Creator(aux)
	c.Extra = extraFields(b, reflect.TypeOf(aux))
	return nil
}

// Event is a Marvel event record (a big crossover storyline).
type Event struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	ResourceURI string     `json:"resourceURI"`
	URLs        []URL      `json:"urls"`
	Modified    string     `json:"modified"`
	Start       string     `json:"start"`
	End         string     `json:"end"`
	Thumbnail   *Image     `json:"thumbnail"`
	Comics      Collection `json:"comics"`
	Stories     Collection `json:"stories"`
	Series      Collection `json:"series"`
	Characters  Collection `json:"characters"`
	Creators    Collection `json:"creators"`
	Next        *Summary   `json:"next"`
	Previous    *Summary   `json:"previous"`

	Extra map[string]json.RawMessage `json:"-"`
}

func (e *Event) UnmarshalJSON(b []byte) error {
	type event Event
	var aux event
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*e = Event(aux)
	e.Extra = extraFields(b, reflect.TypeOf(aux))
	return nil
}

// SeriesEntity is a Marvel series record. Named to avoid colliding with the
// SeriesService accessor on Client.
type SeriesEntity struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	ResourceURI string     `json:"resourceURI"`
	URLs        []URL      `json:"urls"`
	StartYear   int        `json:"startYear"`
	EndYear     int        `json:"endYear"`
	Rating      string     `json:"rating"`
	Modified    string     `json:"modified"`
	Thumbnail   *Image     `json:"thumbnail"`
	Comics      Collection `json:"comics"`
	Stories     Collection `json:"stories"`
	Events      Collection `json:"events"`
	Characters  Collection `json:"characters"`
	Creators    Collection `json:"creators"`
	Next        *Summary   `json:"next"`
	Previous    *Summary   `json:"previous"`

	Extra map[string]json.RawMessage `json:"-"`
}

func (s *SeriesEntity) UnmarshalJSON(b []byte) error {
	type series SeriesEntity
	var aux series
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*s = SeriesEntity(aux)
	s.Extra = extraFields(b, reflect.TypeOf(aux))
	return nil
}

// Story is a Marvel story record, the building block of comics.
type Story struct {
	ID            int        `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	ResourceURI   string     `json:"resourceURI"`
	Type          string     `json:"type"`
	Modified      string     `json:"modified"`
	Thumbnail     *Image     `json:"thumbnail"`
	Comics        Collection `json:"comics"`
	Series        Collection `json:"series"`
	Events        Collection `json:"events"`
	Characters    Collection `json:"characters"`
	Creators      Collection `json:"creators"`
	OriginalIssue *Summary   `json:"originalIssue"`

	Extra map[string]json.RawMessage `json:"-"`
}

func (s *Story) UnmarshalJSON(b []byte) error {
	type story Story
	var aux story
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*s = Story(aux)
	s.Extra = extraFields(b, reflect.TypeOf(aux))
	return nil
}

// extraFields collects the top-level keys of b that t has no json tag for.
// Returns nil when everything was recognized, so untouched records stay
// cheap to compare.
func extraFields(b []byte, t reflect.Type) map[string]json.RawMessage {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil
	}

	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("json")
		if tag == "" || tag == "-" {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		delete(raw, name)
	}

	if len(raw) == 0 {
		return nil
	}
	return raw
}
