// Package marvel provides a client for the Marvel Comics API.
//
// The gateway exposes six resource collections (characters, comics, creators,
// events, series, stories) behind a signed-request authentication scheme.
// This package implements a clean, idiomatic Go client over all of them.
//
// # Architecture
//
// The package is organized into several components:
//
//   - Client: signed, retried HTTP execution shared by every endpoint
//   - Services: one accessor per resource collection (Characters, Comics, ...)
//   - Envelope: generic response parsing and validation for single items and pages
//   - Errors: one structured error type classified into a closed set of kinds
//
// # Usage
//
// Create a client with your Marvel developer keys:
//
//	logger := zerolog.New(os.Stdout)
//	client, err := marvel.NewClient(
//		"public-key",
//		"private-key",
//		logger,
//		marvel.WithTimeout(30*time.Second),
//		marvel.WithMaxRetries(3),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	ctx := context.Background()
//	character, err := client.Characters.Get(ctx, 1009368)
//
//	comics, err := client.Characters.Comics(ctx, 1009368, &marvel.ComicFilter{
//		ListOptions: marvel.ListOptions{Limit: marvel.Int(5)},
//	})
//
// Every request is signed with a fresh ts/apikey/hash triplet as the gateway
// requires, and transient failures (network, 5xx, 429) are retried with
// exponential backoff, honoring Retry-After hints. Pagination is explicit:
// repeat List calls with a new Offset while Data.HasMore() reports true.
//
// # Error Handling
//
// Everything the client raises is an *APIError carrying a Kind:
//
//	var apiErr *marvel.APIError
//	if errors.As(err, &apiErr) {
//		switch apiErr.Kind {
//		case marvel.KindNotFound:
//			// 404: apiErr.ResourceType/ResourceID say what was missing
//		case marvel.KindRateLimit:
//			// 429: apiErr.RetryAfter carries the wait hint in seconds
//		}
//	}
//
// Response bodies that fail local schema validation surface as
// KindValidation errors matching errors.Is(err, marvel.ErrDecode), keeping
// them distinguishable from a 400 the gateway returned.
package marvel
