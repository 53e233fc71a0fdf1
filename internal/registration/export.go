package registration

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"alumni/internal/alumni"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

// Row returns the registration as a dataset row in alumni.Columns order, so
// an export can be fed back to the showcase as its dataset.
func (r Registration) Row() []string {
	rec := alumni.Record{
		Name:             r.Name,
		Email:            r.Email,
		Department:       r.Department,
		PassingYear:      strconv.Itoa(r.PassingYear),
		Address:          r.Address,
		Designation:      r.Designation,
		Company:          r.Company,
		Package:          r.Package,
		Feedback:         r.Feedback,
		PhotoStatus:      r.PhotoStatus,
		RegistrationDate: r.CreatedAt.Format(dateLayout),
		RegistrationTime: r.CreatedAt.Format(timeLayout),
	}
	return rec.Values()
}

// WriteCSV writes a header row and one row per registration. Fields holding
// commas, quotes or newlines are quoted with inner quotes doubled.
func WriteCSV(w io.Writer, regs []*Registration) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(alumni.Columns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range regs {
		if err := cw.Write(r.Row()); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// ExportFilename names a download made at the given date.
func ExportFilename(date string) string {
	return "MVN_Alumni_Registration_" + date + ".csv"
}
