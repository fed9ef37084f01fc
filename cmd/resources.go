package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hbruun/marvelgo/marvel"
)

// The remaining resources share one list/get shape, so their commands are
// generated from a small table instead of hand-writing four near-identical
// files.

func init() {
	rootCmd.AddCommand(newCreatorsCmd())
	rootCmd.AddCommand(newEventsCmd())
	rootCmd.AddCommand(newSeriesCmd())
	rootCmd.AddCommand(newStoriesCmd())
}

// newResourceCmd builds a parent command with list and get subcommands for
// one resource.
func newResourceCmd(use, short, singular string, runList, runGet func(cmd *cobra.Command, args []string) error) *cobra.Command {
	parent := &cobra.Command{
		Use:   use,
		Short: short,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("List %s matching the criteria", use),
		RunE:  runList,
	}
	addListFlags(listCmd)

	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: fmt.Sprintf("Fetch a single %s by ID", singular),
		Args:  cobra.ExactArgs(1),
		RunE:  runGet,
	}

	parent.AddCommand(listCmd)
	parent.AddCommand(getCmd)
	return parent
}

func parseID(arg, singular string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid %s ID '%s': must be an integer", singular, arg)
	}
	return id, nil
}

func newCreatorsCmd() *cobra.Command {
	return newResourceCmd("creators", "Browse Marvel creators", "creator",
		func(cmd *cobra.Command, args []string) error {
			f, err := compileFilter()
			if err != nil {
				return err
			}
			resp, err := client.Creators.List(cmd.Context(), &marvel.CreatorFilter{ListOptions: listOptions()})
			if err != nil {
				return err
			}
			results, err := filterResults(f, resp.Data.Results)
			if err != nil {
				return err
			}
			printPage(&resp.Data, results, resp.AttributionText, func(c marvel.Creator) {
				fmt.Printf("• %s (ID: %d)\n", c.FullName, c.ID)
			})
			return nil
		},
		func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "creator")
			if err != nil {
				return err
			}
			creator, err := client.Creators.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Printf("%s (ID: %d)\n", creator.FullName, creator.ID)
			fmt.Printf("Comics: %d  Series: %d  Stories: %d  Events: %d\n",
				creator.Comics.Available, creator.Series.Available,
				creator.Stories.Available, creator.Events.Available)
			return nil
		})
}

func newEventsCmd() *cobra.Command {
	return newResourceCmd("events", "Browse Marvel events", "event",
		func(cmd *cobra.Command, args []string) error {
			f, err := compileFilter()
			if err != nil {
				return err
			}
			resp, err := client.Events.List(cmd.Context(), &marvel.EventFilter{ListOptions: listOptions()})
			if err != nil {
				return err
			}
			results, err := filterResults(f, resp.Data.Results)
			if err != nil {
				return err
			}
			printPage(&resp.Data, results, resp.AttributionText, func(e marvel.Event) {
				fmt.Printf("• %s (ID: %d)\n", e.Title, e.ID)
			})
			return nil
		},
		func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "event")
			if err != nil {
				return err
			}
			event, err := client.Events.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Printf("%s (ID: %d)\n", event.Title, event.ID)
			if event.Start != "" {
				fmt.Printf("Runs: %s — %s\n", event.Start, event.End)
			}
			if event.Description != "" {
				fmt.Printf("\n%s\n", event.Description)
			}
			return nil
		})
}

func newSeriesCmd() *cobra.Command {
	return newResourceCmd("series", "Browse Marvel series", "series",
		func(cmd *cobra.Command, args []string) error {
			f, err := compileFilter()
			if err != nil {
				return err
			}
			resp, err := client.Series.List(cmd.Context(), &marvel.SeriesFilter{ListOptions: listOptions()})
			if err != nil {
				return err
			}
			results, err := filterResults(f, resp.Data.Results)
			if err != nil {
				return err
			}
			printPage(&resp.Data, results, resp.AttributionText, func(s marvel.SeriesEntity) {
				fmt.Printf("• %s (%d–%d) (ID: %d)\n", s.Title, s.StartYear, s.EndYear, s.ID)
			})
			return nil
		},
		func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "series")
			if err != nil {
				return err
			}
			series, err := client.Series.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Printf("%s (%d–%d) (ID: %d)\n", series.Title, series.StartYear, series.EndYear, series.ID)
			if series.Rating != "" {
				fmt.Printf("Rating: %s\n", series.Rating)
			}
			if series.Description != "" {
				fmt.Printf("\n%s\n", series.Description)
			}
			return nil
		})
}

func newStoriesCmd() *cobra.Command {
	return newResourceCmd("stories", "Browse Marvel stories", "story",
		func(cmd *cobra.Command, args []string) error {
			f, err := compileFilter()
			if err != nil {
				return err
			}
			resp, err := client.Stories.List(cmd.Context(), &marvel.StoryFilter{ListOptions: listOptions()})
			if err != nil {
				return err
			}
			results, err := filterResults(f, resp.Data.Results)
			if err != nil {
				return err
			}
			printPage(&resp.Data, results, resp.AttributionText, func(s marvel.Story) {
				title := s.Title
				if title == "" {
					title = "(untitled)"
				}
				fmt.Printf("• %s [%s] (ID: %d)\n", title, s.Type, s.ID)
			})
			return nil
		},
		func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "story")
			if err != nil {
				return err
			}
			story, err := client.Stories.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Printf("%s [%s] (ID: %d)\n", story.Title, story.Type, story.ID)
			if story.OriginalIssue != nil {
				fmt.Printf("Original issue: %s\n", story.OriginalIssue.Name)
			}
			if story.Description != "" {
				fmt.Printf("\n%s\n", story.Description)
			}
			return nil
		})
}
