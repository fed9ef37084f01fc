package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hbruun/marvelgo/marvel"
)

var (
	comicTitle           string
	comicTitleStartsWith string
	comicFormat          string
	comicStartYear       int
	comicOrderBy         string
)

// comicsCmd groups comic subcommands
var comicsCmd = &cobra.Command{
	Use:   "comics",
	Short: "Browse Marvel comics",
}

var comicsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List comics matching the criteria",
	RunE:  runComicsList,
}

var comicsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Fetch a single comic by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runComicsGet,
}

var comicsCharactersCmd = &cobra.Command{
	Use:   "characters <id>",
	Short: "List characters appearing in a comic",
	Args:  cobra.ExactArgs(1),
	RunE:  runComicsCharacters,
}

func init() {
	rootCmd.AddCommand(comicsCmd)
	comicsCmd.AddCommand(comicsListCmd)
	comicsCmd.AddCommand(comicsGetCmd)
	comicsCmd.AddCommand(comicsCharactersCmd)

	addListFlags(comicsListCmd)
	comicsListCmd.Flags().StringVar(&comicTitle, "title", "", "match comics by exact title")
	comicsListCmd.Flags().StringVar(&comicTitleStartsWith, "title-starts-with", "", "match comics whose title begins with the value")
	comicsListCmd.Flags().StringVar(&comicFormat, "format", "", "publication format (comic, hardcover, trade paperback, ...)")
	comicsListCmd.Flags().IntVar(&comicStartYear, "start-year", 0, "series start year")
	comicsListCmd.Flags().StringVar(&comicOrderBy, "order-by", "", "sort order (title, issueNumber, modified, onsaleDate and negations)")

	addListFlags(comicsCharactersCmd)
}

func runComicsList(cmd *cobra.Command, args []string) error {
	f, err := compileFilter()
	if err != nil {
		return err
	}

	comicFilter := &marvel.ComicFilter{
		ListOptions:     listOptions(),
		Title:           comicTitle,
		TitleStartsWith: comicTitleStartsWith,
		Format:          comicFormat,
		OrderBy:         comicOrderBy,
	}
	if comicStartYear > 0 {
		comicFilter.StartYear = marvel.Int(comicStartYear)
	}

	resp, err := client.Comics.List(cmd.Context(), comicFilter)
	if err != nil {
		return err
	}

	results, err := filterResults(f, resp.Data.Results)
	if err != nil {
		return err
	}

	printPage(&resp.Data, results, resp.AttributionText, printComicRow)
	return nil
}

func runComicsGet(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid comic ID '%s': must be an integer", args[0])
	}

	comic, err := client.Comics.Get(cmd.Context(), id)
	if err != nil {
		return err
	}

	fmt.Printf("%s (ID: %d)\n", comic.Title, comic.ID)
	if comic.Format != "" {
		fmt.Printf("Format: %s", comic.Format)
		if comic.PageCount > 0 {
			fmt.Printf(", %d pages", comic.PageCount)
		}
		fmt.Println()
	}
	if comic.Series != nil {
		fmt.Printf("Series: %s\n", comic.Series.Name)
	}
	if len(comic.Prices) > 0 {
		prices := make([]string, 0, len(comic.Prices))
		for _, p := range comic.Prices {
			prices = append(prices, fmt.Sprintf("%s $%.2f", p.Type, p.Price))
		}
		fmt.Printf("Prices: %s\n", strings.Join(prices, ", "))
	}
	if comic.Description != "" {
		fmt.Printf("\n%s\n", comic.Description)
	}
	return nil
}

func runComicsCharacters(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid comic ID '%s': must be an integer", args[0])
	}

	f, err := compileFilter()
	if err != nil {
		return err
	}

	resp, err := client.Comics.Characters(cmd.Context(), id, &marvel.CharacterFilter{
		ListOptions: listOptions(),
	})
	if err != nil {
		return err
	}

	results, err := filterResults(f, resp.Data.Results)
	if err != nil {
		return err
	}

	printPage(&resp.Data, results, resp.AttributionText, printCharacterRow)
	return nil
}

func printComicRow(c marvel.Comic) {
	fmt.Printf("• %s (ID: %d)", c.Title, c.ID)
	if c.Format != "" {
		fmt.Printf(" [%s]", c.Format)
	}
	fmt.Println()
}
