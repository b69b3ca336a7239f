package catalog

import (
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"

	"owlplanner/internal/course"
)

// Row is one line of the catalog CSV. A section meeting on several
// days at the same time occupies one row with a comma-separated day
// list; a section with multiple meeting patterns spans consecutive
// rows sharing the same CRN.
type Row struct {
	Course     string `csv:"course"`
	CRN        string `csv:"crn"`
	Instructor string `csv:"instructor"`
	Days       string `csv:"days"`
	StartTime  string `csv:"start_time"`
	EndTime    string `csv:"end_time"`
}

// ReadSections decodes catalog CSV rows and assembles them into
// sections, merging consecutive rows with the same CRN.
func ReadSections(r io.Reader) ([]*course.Section, error) {
	var rows []*Row
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("decode catalog csv: %w", err)
	}
	return buildSections(rows)
}

// WriteRows encodes catalog rows as CSV, header included.
func WriteRows(w io.Writer, rows []*Row) error {
	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("encode catalog csv: %w", err)
	}
	return nil
}

func buildSections(rows []*Row) ([]*course.Section, error) {
	sections := []*course.Section{}
	var current *course.Section

	for _, row := range rows {
		if current == nil || row.CRN != current.CRN {
			current = course.NewSection(row.Course, row.CRN, row.Instructor)
			sections = append(sections, current)
		}

		start, err := course.MinutesFromClock(row.StartTime)
		if err != nil {
			return nil, fmt.Errorf("section %v: %w", row.CRN, err)
		}
		end, err := course.MinutesFromClock(row.EndTime)
		if err != nil {
			return nil, fmt.Errorf("section %v: %w", row.CRN, err)
		}

		for _, dayName := range strings.Split(row.Days, ",") {
			day, err := course.ParseDay(strings.TrimSpace(dayName))
			if err != nil {
				return nil, fmt.Errorf("section %v: %w", row.CRN, err)
			}
			meeting, err := course.NewMeetingTime(day, start, end)
			if err != nil {
				return nil, fmt.Errorf("section %v: %w", row.CRN, err)
			}
			current.AddMeeting(meeting)
		}
	}
	return sections, nil
}
