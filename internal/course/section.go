package course

// Section is one offering of a course, identified by its CRN
// (registration number). A fully built section has at least one
// meeting; sections are owned by the catalog and the planner only
// holds references to them.
type Section struct {
	Course     string
	CRN        string
	Instructor string
	Meetings   []MeetingTime
}

func NewSection(courseName, crn, instructor string) *Section {
	return &Section{
		Course:     courseName,
		CRN:        crn,
		Instructor: instructor,
	}
}

func (s *Section) AddMeeting(meeting MeetingTime) {
	s.Meetings = append(s.Meetings, meeting)
}

// ConflictsWith reports whether any meeting of s overlaps any meeting
// of other on the same day. Symmetric and side-effect free. Meeting
// lists are short, so the pairwise scan is not worth indexing.
func (s *Section) ConflictsWith(other *Section) bool {
	for _, a := range s.Meetings {
		for _, b := range other.Meetings {
			if a.Overlaps(b) {
				return true
			}
		}
	}
	return false
}
