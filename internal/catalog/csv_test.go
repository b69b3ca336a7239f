package catalog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"owlplanner/internal/course"
)

const sampleCSV = `course,crn,instructor,days,start_time,end_time
COMP 140,10001,Dr. Smith,"Mon,Wed,Fri",10:00,10:50
COMP 140,10002,Dr. Jones,"Tue,Thu",13:00,14:15
MATH 212,20001,Dr. Lee,"Mon,Wed,Fri",09:00,09:50
MATH 212,20001,Dr. Lee,Thu,16:00,16:50
STAT 310,30001,Dr. Kim,"Tue,Thu",10:50,12:05
`

func TestReadSections(t *testing.T) {
	t.Run("Rows become sections", func(t *testing.T) {
		sections, err := ReadSections(strings.NewReader(sampleCSV))

		assert.Nil(t, err)
		assert.Len(t, sections, 4)
		assert.Equal(t, "COMP 140", sections[0].Course)
		assert.Equal(t, "10001", sections[0].CRN)
		assert.Equal(t, "Dr. Smith", sections[0].Instructor)
		assert.Len(t, sections[0].Meetings, 3)
		assert.Equal(t, course.MeetingTime{Day: course.Monday, Start: 600, End: 650}, sections[0].Meetings[0])
	})

	t.Run("Consecutive rows with the same CRN merge", func(t *testing.T) {
		sections, err := ReadSections(strings.NewReader(sampleCSV))

		assert.Nil(t, err)
		math := sections[2]
		assert.Equal(t, "20001", math.CRN)
		// Three MWF meetings plus the Thursday lab row
		assert.Len(t, math.Meetings, 4)
		assert.Equal(t, course.MeetingTime{Day: course.Thursday, Start: 960, End: 1010}, math.Meetings[3])
	})

	t.Run("Bad day is rejected", func(t *testing.T) {
		csv := "course,crn,instructor,days,start_time,end_time\nCOMP 140,10001,Dr. Smith,Monday,10:00,10:50\n"

		_, err := ReadSections(strings.NewReader(csv))

		assert.NotNil(t, err)
	})

	t.Run("Backwards meeting is rejected", func(t *testing.T) {
		csv := "course,crn,instructor,days,start_time,end_time\nCOMP 140,10001,Dr. Smith,Mon,10:50,10:00\n"

		_, err := ReadSections(strings.NewReader(csv))

		assert.NotNil(t, err)
	})
}

func TestWriteRows(t *testing.T) {
	rows := []*Row{
		{Course: "COMP 140", CRN: "10001", Instructor: "Dr. Smith", Days: "Mon,Wed,Fri", StartTime: "10:00", EndTime: "10:50"},
	}

	var buffer bytes.Buffer
	err := WriteRows(&buffer, rows)

	assert.Nil(t, err)

	sections, err := ReadSections(&buffer)
	assert.Nil(t, err)
	assert.Len(t, sections, 1)
	assert.Len(t, sections[0].Meetings, 3)
}
