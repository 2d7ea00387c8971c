// Package export writes collected record sets to structured files. Field
// names match the JSON tags on FileRecord in both formats, so a record set
// round-trips through either file equivalently.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/execrooted/filebyte/entity"
)

// csvHeader lists the columns in record-field order; names are identical to
// the JSON field names.
var csvHeader = []string{
	"name", "path", "size", "size_human", "file_type",
	"created", "modified", "permissions", "is_directory",
}

// ToFile writes records to path, choosing the format from the file
// extension (".json" or ".csv").
func ToFile(records []entity.FileRecord, path string) error {
	switch {
	case strings.HasSuffix(path, ".json"):
		return ToJSON(records, path)
	case strings.HasSuffix(path, ".csv"):
		return ToCSV(records, path)
	default:
		return fmt.Errorf("unsupported export format for \"%s\" (want .json or .csv)", path)
	}
}

// ToJSON writes records as a pretty-printed JSON array.
func ToJSON(records []entity.FileRecord, path string) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("couldn't serialize records: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("couldn't write \"%s\": %w", path, err)
	}
	return nil
}

// ToCSV writes records as CSV with a header row.
func ToCSV(records []entity.FileRecord, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("couldn't create \"%s\": %w", path, err)
	}
	defer file.Close()
	writer := csv.NewWriter(file)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("couldn't write \"%s\": %w", path, err)
	}
	for _, r := range records {
		row := []string{
			r.Name,
			r.Path,
			strconv.FormatUint(r.Size, 10),
			r.SizeHuman,
			r.FileType,
			r.Created,
			r.Modified,
			r.Permissions,
			strconv.FormatBool(r.IsDirectory),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("couldn't write \"%s\": %w", path, err)
		}
	}
	writer.Flush()
	return writer.Error()
}
