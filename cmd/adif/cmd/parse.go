package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/adifkit/pkg/adi"
	"github.com/msto63/adifkit/pkg/core/log"
)

var parseCmd = &cobra.Command{
	Use:   "parse FILENAME",
	Short: "Parse a file and show its physical structure",
	Long: `Parses an ADI file and prints its physical structure: header text,
header fields, and every record's data specifiers. This is a diagnostic
view, not a byte-exact re-serialization.`,
	Args: exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]
		logger.Debug("parsing file", log.Field("filename", filename))

		file, err := os.Open(filename)
		if err != nil {
			return fmt.Errorf("open %q: %w", filename, err)
		}
		defer file.Close()

		physical, err := adi.Parse(file)
		if err != nil {
			logger.LogError(err)
			return err
		}

		logger.Debug("parsed file",
			log.Field("filename", filename),
			log.Field("records", len(physical.Records)))

		fmt.Fprint(output(), adi.Dump(physical))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
