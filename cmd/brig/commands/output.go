package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/fivetwenty-io/brigade-client/internal/constants"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var (
	okLabel    = color.New(color.FgGreen)
	warnLabel  = color.New(color.FgYellow)
	errorLabel = color.New(color.FgRed)
)

// ConfigureColor disables colored output when requested. Color is also
// disabled automatically when stdout is not a terminal.
func ConfigureColor(noColor bool) {
	if noColor {
		color.NoColor = true
	}
}

// PrintError writes err to w in the CLI's error style.
func PrintError(w io.Writer, err error) {
	_, _ = errorLabel.Fprintf(w, "Error: %v\n", err)
}

// renderOutput writes data in the configured output format. renderTable is
// used for the table format.
func renderOutput(w io.Writer, data interface{}, renderTable func(io.Writer) error) error {
	output := viper.GetString(constants.ConfigKeyOutput)

	switch output {
	case constants.FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

		return encoder.Encode(data)
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(w)

		err := encoder.Encode(data)
		if err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}

		return encoder.Close()
	case constants.FormatTable, "":
		return renderTable(w)
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnsupportedFormat, output)
	}
}

// renderTable renders rows under headers.
func renderTable(w io.Writer, headers []string, rows [][]string) error {
	table := tablewriter.NewWriter(w)
	table.Header(toAny(headers)...)

	for _, row := range rows {
		_ = table.Append(toAny(row)...)
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func toAny(values []string) []interface{} {
	result := make([]interface{}, len(values))
	for i, value := range values {
		result[i] = value
	}

	return result
}

func formatTime(t *time.Time) string {
	if t == nil {
		return constants.NotAvailable
	}

	return t.Format(time.RFC3339)
}

func formatValue(value string) string {
	if value == "" {
		return constants.None
	}

	return value
}

// truncate shortens value to at most length runes, marking the cut with an
// ellipsis when there is room for one.
func truncate(value string, length int) string {
	runes := []rune(value)
	if len(runes) <= length {
		return value
	}

	if length <= len(ellipsis) {
		return string(runes[:max(length, 0)])
	}

	return string(runes[:length-len(ellipsis)]) + ellipsis
}

const ellipsis = "..."

// printContinueHint tells the user how to fetch the next page.
func printContinueHint(w io.Writer, resource, continueToken string) {
	if continueToken == "" || viper.GetString(constants.ConfigKeyOutput) != constants.FormatTable {
		return
	}

	_, _ = warnLabel.Fprintf(w, "\nMore %s available, use --continue %s to see the next page\n", resource, continueToken)
}
