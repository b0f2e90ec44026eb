package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/adifkit/pkg/adif"
	"github.com/msto63/adifkit/pkg/core/log"
	"github.com/msto63/adifkit/pkg/utils/stringx"
)

var (
	dumpRecords string
	dumpFields  []string
	dumpFilters []string
)

var dumpCmd = &cobra.Command{
	Use:   "dump FILENAME",
	Short: "Show the logical contents of a file",
	Long: `Interprets an ADI file and prints its logical contents: file
metadata followed by each record's fields. Output can be limited to the
first record, to selected fields, or to records matching field filters.`,
	Args: exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := dumpOptions()
		if err != nil {
			return err
		}

		f, err := parseFile(args[0])
		if err != nil {
			logger.LogError(err)
			return err
		}

		logger.Debug("dumping file",
			log.Field("filename", args[0]),
			log.Field("records", len(f.Records)))

		return f.Dump(output(), opts)
	},
}

func init() {
	dumpCmd.Flags().StringVar(&dumpRecords, "records", "", "records to dump: one or all")
	dumpCmd.Flags().StringSliceVar(&dumpFields, "fields", nil, "only show these fields")
	dumpCmd.Flags().StringArrayVar(&dumpFilters, "filter", nil, "only records where FIELD=VALUE (repeatable)")
	rootCmd.AddCommand(dumpCmd)
}

// dumpOptions merges configuration and flags; flags win
func dumpOptions() (adif.DumpOptions, error) {
	var opts adif.DumpOptions

	records := cfg.Dump.Records
	if dumpRecords != "" {
		records = dumpRecords
	}
	switch stringx.TrimToLower(records) {
	case "", "all":
		opts.Records = adif.DumpAll
	case "one":
		opts.Records = adif.DumpOne
	default:
		return opts, usageError{fmt.Errorf(
			"invalid --records value %q: expected \"one\" or \"all\"", records)}
	}

	opts.Fields = dumpFields
	if len(opts.Fields) == 0 {
		opts.Fields = cfg.Dump.Fields
	}

	opts.Filter = make(map[string]string)
	for name, value := range cfg.Dump.Filter {
		opts.Filter[strings.ToLower(name)] = value
	}
	for _, f := range dumpFilters {
		name, value, ok := strings.Cut(f, "=")
		if !ok || stringx.IsBlank(name) {
			return opts, usageError{fmt.Errorf(
				"invalid --filter value %q: expected FIELD=VALUE", f)}
		}
		opts.Filter[strings.ToLower(name)] = value
	}

	return opts, nil
}
