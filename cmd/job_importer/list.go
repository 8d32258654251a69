package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fractionalquest/fractional-quest/internal/db"
	"github.com/fractionalquest/fractional-quest/internal/ingestion"
	"github.com/fractionalquest/fractional-quest/internal/types"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored jobs",
	Long:  "List active jobs, newest first, filtered the way the site's landing pages filter them.",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var (
	listRole            string
	listCity            string
	listEmploymentType  string
	listExecutiveTitle  string
	listRemote          bool
	listQuery           string
	listLimit           int
	listOffset          int
	listIncludeInactive bool
	listJSON            bool
)

func init() {
	listCmd.Flags().StringVar(&listRole, "role", "", "Role category, e.g. Finance")
	listCmd.Flags().StringVar(&listCity, "city", "", "City, e.g. London, Remote, \"Other UK\"")
	listCmd.Flags().StringVar(&listEmploymentType, "type", "", "Employment type, e.g. Part-time")
	listCmd.Flags().StringVar(&listExecutiveTitle, "title", "", "Executive title, e.g. CFO")
	listCmd.Flags().BoolVar(&listRemote, "remote", false, "Only remote jobs")
	listCmd.Flags().StringVarP(&listQuery, "query", "q", "", "Text to search for in title and company")
	listCmd.Flags().IntVar(&listLimit, "limit", db.DefaultListLimit, "Maximum number of jobs")
	listCmd.Flags().IntVar(&listOffset, "offset", 0, "Number of jobs to skip")
	listCmd.Flags().BoolVar(&listIncludeInactive, "all", false, "Include inactive jobs")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Print jobs as JSON")

	rootCmd.AddCommand(listCmd)
}

// buildListFilter validates the list flags.
func buildListFilter() (db.JobFilter, error) {
	filter := db.JobFilter{
		RemoteOnly:      listRemote,
		Query:           listQuery,
		IncludeInactive: listIncludeInactive,
		Limit:           listLimit,
		Offset:          listOffset,
	}
	if listOffset < 0 {
		return filter, fmt.Errorf("invalid --offset %d: must not be negative", listOffset)
	}

	var err error
	if filter.RoleCategory, err = parseEnum("role", listRole, types.RoleCategories); err != nil {
		return filter, err
	}
	if filter.City, err = parseEnum("city", listCity, knownCities()); err != nil {
		return filter, err
	}
	if filter.EmploymentType, err = parseEnum("type", listEmploymentType, types.EmploymentTypes); err != nil {
		return filter, err
	}
	if filter.ExecutiveTitle, err = parseEnum("title", listExecutiveTitle, types.ExecutiveTitles); err != nil {
		return filter, err
	}
	return filter, nil
}

func knownCities() []string {
	return append(ingestion.UKCities(), types.CityRemote, types.CityOtherUK, types.CityInternational)
}

func runList(cmd *cobra.Command, _ []string) error {
	filter, err := buildListFilter()
	if err != nil {
		return err
	}

	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	jobs, err := a.db.ListJobs(cmd.Context(), filter)
	if err != nil {
		return err
	}

	if listJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if jobs == nil {
			jobs = []db.JobPosting{}
		}
		return enc.Encode(jobs)
	}
	newPrinter(cmd).PrintJobList(jobs)
	return nil
}
