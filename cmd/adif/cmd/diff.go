package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/adifkit/pkg/adif"
	"github.com/msto63/adifkit/pkg/core/log"
)

var (
	diffMatchFields  []string
	diffCompareField string
)

var diffCmd = &cobra.Command{
	Use:   "diff FILENAME1 FILENAME2",
	Short: "Compare the records of two files",
	Long: `Compares two ADI files. Records are paired by a signature derived
from the match fields (default: qso_date and call) and the compare field
(default: gridsquare) is checked between paired records. Records of the
second file with no counterpart in the first are not reported.`,
	Args: exactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		f1, err := parseFile(args[0])
		if err != nil {
			logger.LogError(err)
			return err
		}
		f2, err := parseFile(args[1])
		if err != nil {
			logger.LogError(err)
			return err
		}

		opts := adif.DiffOptions{
			MatchFields:  cfg.Diff.MatchFields,
			CompareField: cfg.Diff.CompareField,
		}
		if len(diffMatchFields) > 0 {
			opts.MatchFields = diffMatchFields
		}
		if diffCompareField != "" {
			opts.CompareField = diffCompareField
		}

		result, err := f1.Diff(f2, output(), opts)
		if err != nil {
			logger.LogError(err)
			return err
		}

		logger.Debug("compared files",
			log.Field("first", args[0]),
			log.Field("second", args[1]),
			log.Field("matched", result.Matched),
			log.Field("differing", result.Differing))
		return nil
	},
}

func init() {
	diffCmd.Flags().StringSliceVar(&diffMatchFields, "match-fields", nil, "fields that pair records between the files")
	diffCmd.Flags().StringVar(&diffCompareField, "compare-field", "", "field compared between paired records")
	rootCmd.AddCommand(diffCmd)
}
