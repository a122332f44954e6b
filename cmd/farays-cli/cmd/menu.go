package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/nfrund/farays/internal/content"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var menuSearch string

var menuCmd = &cobra.Command{
	Use:   "menu [category]",
	Short: "List menu categories, a category's dishes, or search the menu",
	Long: `Without arguments, list the menu categories. With a category id, list its
dishes grouped by sub-heading. With --search, list the dishes whose name or
description contains every word of the query, ignoring case and accents.

Examples:
  farays-cli menu
  farays-cli menu pasta
  farays-cli menu --search "creme brulee"`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		switch {
		case menuSearch != "":
			return printSearch(out, cat, menuSearch)
		case len(args) == 1:
			category, ok := cat.Category(args[0])
			if !ok {
				return fmt.Errorf("unknown category %q (run 'farays-cli menu' to list them)", args[0])
			}
			printCategory(out, category)
			return nil
		default:
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tCATEGORY\tDISHES")
			fmt.Fprintln(w, "--\t--------\t------")
			for _, c := range cat.Menu.Categories {
				fmt.Fprintf(w, "%s\t%s\t%d\n", c.ID, c.Label, len(c.Items))
			}
			return w.Flush()
		}
	},
}

var titleCase = cases.Title(language.English)

func printCategory(out io.Writer, c content.Category) {
	fmt.Fprintln(out, titleCase.String(c.Label))
	for _, group := range c.Groups() {
		if group.Heading != "" {
			fmt.Fprintf(out, "\n  %s\n", titleCase.String(group.Heading))
		}
		for _, it := range group.Items {
			printItem(out, it)
		}
	}
}

func printSearch(out io.Writer, cat *content.Catalog, query string) error {
	matches := cat.Search(query)
	if len(matches) == 0 {
		fmt.Fprintf(out, "No dishes match %q.\n", query)
		return nil
	}
	for _, it := range matches {
		label := it.CategoryID
		if c, ok := cat.Category(it.CategoryID); ok {
			label = c.Label
		}
		fmt.Fprintf(out, "[%s]", label)
		printItem(out, it)
	}
	return nil
}

func printItem(out io.Writer, it content.MenuItem) {
	name := titleCase.String(it.Name)
	if price := it.PriceLabel(); price != "" {
		fmt.Fprintf(out, "  %s  %s\n", name, price)
	} else {
		fmt.Fprintf(out, "  %s\n", name)
	}
	if it.Description != "" {
		fmt.Fprintf(out, "      %s\n", it.Description)
	}
}

func init() {
	rootCmd.AddCommand(menuCmd)
	menuCmd.Flags().StringVarP(&menuSearch, "search", "s", "", "Search dish names and descriptions")
}
