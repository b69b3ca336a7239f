package server

import (
	"net/http"

	"github.com/samber/lo"

	"owlplanner/internal/course"
)

type meetingJSON struct {
	Day   string `json:"day"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

type sectionJSON struct {
	Course       string        `json:"course"`
	CRN          string        `json:"crn"`
	Instructor   string        `json:"instructor"`
	MeetingTimes []meetingJSON `json:"meeting_times"`
}

func toSectionJSON(section *course.Section) sectionJSON {
	return sectionJSON{
		Course:     section.Course,
		CRN:        section.CRN,
		Instructor: section.Instructor,
		MeetingTimes: lo.Map(section.Meetings, func(meeting course.MeetingTime, _ int) meetingJSON {
			return meetingJSON{Day: string(meeting.Day), Start: meeting.Start, End: meeting.End}
		}),
	}
}

func (s *Server) handleSubjects(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"subjects": s.store.Subjects()})
}

// handleRefresh reloads the catalog from its last loaded path, so a
// re-scraped CSV is picked up without restarting the server.
func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	count, err := s.store.Refresh()
	if err != nil {
		s.log.Errorf("catalog refresh failed: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"loaded": count})
}

func (s *Server) handleCourses(w http.ResponseWriter, r *http.Request) {
	sections := s.store.Courses(r.URL.Query().Get("query"))
	writeJSON(w, http.StatusOK, map[string][]sectionJSON{
		"courses": lo.Map(sections, func(section *course.Section, _ int) sectionJSON {
			return toSectionJSON(section)
		}),
	})
}
