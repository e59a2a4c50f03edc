package simulation

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"
)

// WriteDaysCSV writes one row per day to path.
func WriteDaysCSV(path string, days []Day) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := EncodeDaysCSV(f, days); err != nil {
		return err
	}
	return f.Close()
}

// EncodeDaysCSV writes the header and one row per day. Body columns follow
// the slot order of the first day.
func EncodeDaysCSV(out io.Writer, days []Day) error {
	w := csv.NewWriter(out)

	header := []string{"day", "category", "perimeter"}
	if len(days) > 0 {
		for _, b := range days[0].Bodies() {
			name := strings.ToLower(b.Body)
			header = append(header, name+"_angle", name+"_x", name+"_y")
		}
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, d := range days {
		row := []string{
			strconv.Itoa(d.Index),
			string(d.Category),
			fmtFloat(d.Perimeter),
		}
		for _, b := range d.Bodies() {
			row = append(row, strconv.Itoa(b.Angle), fmtFloat(b.X), fmtFloat(b.Y))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
