package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hbruun/marvelgo/marvel"
)

var (
	characterName           string
	characterNameStartsWith string
	characterOrderBy        string
)

// charactersCmd groups character subcommands
var charactersCmd = &cobra.Command{
	Use:   "characters",
	Short: "Browse Marvel characters",
}

var charactersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List characters matching the criteria",
	RunE:  runCharactersList,
}

var charactersGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Fetch a single character by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runCharactersGet,
}

var charactersComicsCmd = &cobra.Command{
	Use:   "comics <id>",
	Short: "List comics featuring a character",
	Args:  cobra.ExactArgs(1),
	RunE:  runCharactersComics,
}

func init() {
	rootCmd.AddCommand(charactersCmd)
	charactersCmd.AddCommand(charactersListCmd)
	charactersCmd.AddCommand(charactersGetCmd)
	charactersCmd.AddCommand(charactersComicsCmd)

	addListFlags(charactersListCmd)
	charactersListCmd.Flags().StringVar(&characterName, "name", "", "match characters by exact name")
	charactersListCmd.Flags().StringVar(&characterNameStartsWith, "name-starts-with", "", "match characters whose name begins with the value")
	charactersListCmd.Flags().StringVar(&characterOrderBy, "order-by", "", "sort order (name, modified, -name, -modified)")

	addListFlags(charactersComicsCmd)
}

func runCharactersList(cmd *cobra.Command, args []string) error {
	f, err := compileFilter()
	if err != nil {
		return err
	}

	resp, err := client.Characters.List(cmd.Context(), &marvel.CharacterFilter{
		ListOptions:    listOptions(),
		Name:           characterName,
		NameStartsWith: characterNameStartsWith,
		OrderBy:        characterOrderBy,
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

func runCharactersGet(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid character ID '%s': must be an integer", args[0])
	}

	character, err := client.Characters.Get(cmd.Context(), id)
	if err != nil {
		return err
	}

	fmt.Printf("%s (ID: %d)\n", character.Name, character.ID)
	if character.Description != "" {
		fmt.Printf("\n%s\n", character.Description)
	}
	if character.Comics.Available > 0 {
		fmt.Printf("\nComics: %d  Series: %d  Stories: %d  Events: %d\n",
			character.Comics.Available, character.Series.Available,
			character.Stories.Available, character.Events.Available)
	}
	return nil
}

func runCharactersComics(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid character ID '%s': must be an integer", args[0])
	}

	f, err := compileFilter()
	if err != nil {
		return err
	}

	resp, err := client.Characters.Comics(cmd.Context(), id, &marvel.ComicFilter{
		ListOptions: listOptions(),
	})
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

func printCharacterRow(c marvel.Character) {
	fmt.Printf("• %s (ID: %d)", c.Name, c.ID)
	if c.Comics.Available > 0 {
		fmt.Printf(" — %d comics", c.Comics.Available)
	}
	fmt.Println()
}
