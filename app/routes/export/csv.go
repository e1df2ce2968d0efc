package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// SendCSV writes a header row and the given records as a CSV attachment. All
// resource exports go through here so the download headers and quoting rules
// stay uniform.
func SendCSV(c *fiber.Ctx, filename string, header []string, rows [][]string) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
	return c.Send(buf.Bytes())
}

// RangeFilename builds the conventional "<resource>_{start}_to_{end}.csv"
// attachment name.
func RangeFilename(resource, start, end string) string {
	return fmt.Sprintf("%s_%s_to_%s.csv", resource, start, end)
}
