package cmd

import (
	"fmt"

	"github.com/jcdickinson/ferrisdoc/internal/docs"
	"github.com/jcdickinson/ferrisdoc/internal/render"
	"github.com/jcdickinson/ferrisdoc/internal/rpc"
	"github.com/spf13/cobra"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup",
	Short: "Show the documented items of a crate",
	Example: `  ferrisdoc lookup --name serde
  ferrisdoc lookup -n serde -t trait
  ferrisdoc lookup -n tokio -q spawn --limit 5 --offset 5
  ferrisdoc lookup -n mycrate --format markdown --out docs/mycrate.md`,
	Args: cobra.NoArgs,
	RunE: runLookup,
}

var (
	lookupName     string
	lookupLimit    int
	lookupOffset   int
	lookupItemType string
	lookupQuery    string
	lookupFormat   string
	lookupOut      string
)

func init() {
	f := lookupCmd.Flags()
	f.StringVarP(&lookupName, "name", "n", "", "crate name")
	f.IntVarP(&lookupLimit, "limit", "l", 0, "maximum number of items to return")
	f.IntVarP(&lookupOffset, "offset", "o", 0, "number of items to skip for pagination")
	f.StringVarP(&lookupItemType, "item-type", "t", "", "filter by item type: function, struct, enum, trait, macro, type, constant, module")
	f.StringVarP(&lookupQuery, "query", "q", "", "search term to filter items by name or description")
	f.StringVarP(&lookupFormat, "format", "f", "json", "output format: json, yaml or markdown")
	f.StringVar(&lookupOut, "out", "", "write to this file instead of stdout (.zst suffix compresses)")
	lookupCmd.MarkFlagRequired("name")
}

func runLookup(cmd *cobra.Command, args []string) error {
	format, err := render.ParseFormat(lookupFormat)
	if err != nil {
		return err
	}

	req := rpc.LookupRequest{
		Name:     lookupName,
		ItemType: lookupItemType,
		Query:    lookupQuery,
	}
	if cmd.Flags().Changed("limit") {
		req.Limit = &lookupLimit
	}
	if cmd.Flags().Changed("offset") {
		req.Offset = &lookupOffset
	}
	if (req.Limit != nil && *req.Limit < 0) || (req.Offset != nil && *req.Offset < 0) {
		return fmt.Errorf("--limit and --offset must not be negative")
	}

	doc, err := docs.Lookup(cfg.Docs.Path, req.Name, req.Query())
	if err != nil {
		return fmt.Errorf("failed to lookup crate '%s': %w", req.Name, err)
	}

	if lookupOut != "" {
		if err := render.SaveSnapshot(lookupOut, doc, format); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d items to %s\n", len(doc.Items), lookupOut)
		return nil
	}
	return render.Write(cmd.OutOrStdout(), doc, format)
}
