package tradecal

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/tradecal/date"
)

// CSVHeader is the first line of every encoded store.
const CSVHeader = "Date,Underlying,Profit (CAD),Number of Trades"

// EncodeCSV writes the store as CSV text, one row per entry in store order.
//
// Fields are not quoted: values are expected to be free of commas and line breaks.
// Rows are separated by "\n" with no trailing newline.
func EncodeCSV(w io.Writer, s *Store) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(CSVHeader)
	for day, r := range s.Entries() {
		fmt.Fprintf(bw, "\n%s,%s,%s,%s", day, r.Underlying, r.Profit, r.Trades)
	}
	return bw.Flush()
}

// FormatCSV returns the store encoded as CSV text.
func FormatCSV(s *Store) string {
	var b strings.Builder
	EncodeCSV(&b, s) // writing to a strings.Builder never fails
	return b.String()
}

// DecodeCSV reads CSV text into a new Store.
//
// It only fails if 'r' does, see ParseCSV for the decoding rules.
func DecodeCSV(r io.Reader) (*Store, []string, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("reading csv: %w", err)
	}
	s, rejected := ParseCSV(string(content))
	return s, rejected, nil
}

// ParseCSV decodes CSV text into a new Store.
//
// Decoding is lenient:
//   - the first line is a header and is always discarded, whatever its content;
//   - lines with an empty date are skipped, as is the trailing empty line;
//   - missing trailing fields are left unset;
//   - fields are trimmed, a later row for the same date overrides an earlier one.
//
// Lines whose date cannot be parsed are skipped and returned in 'rejected'.
func ParseCSV(text string) (s *Store, rejected []string) {
	s = NewStore()
	lines := strings.Split(text, "\n")
	if len(lines) > 0 {
		lines = lines[1:]
	}
	for _, line := range lines {
		fields := strings.Split(strings.TrimSuffix(line, "\r"), ",")
		if strings.TrimSpace(fields[0]) == "" {
			continue
		}
		day, err := date.Parse(fields[0])
		if err != nil {
			rejected = append(rejected, line)
			continue
		}
		var r Record
		for i, f := range []Field{Underlying, Profit, Trades} {
			if i+1 < len(fields) {
				r = r.With(f, strings.TrimSpace(fields[i+1]))
			}
		}
		s.Put(day, r)
	}
	return s, rejected
}
