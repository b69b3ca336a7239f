package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"

	"owlplanner/internal/catalog"
	"owlplanner/internal/course"
	"owlplanner/internal/planner"
)

type scheduleRequest struct {
	Courses []string `json:"courses"`
	// Preference and weight overrides arrive as loose maps and are
	// merged over the defaults; unknown keys are ignored
	Preferences map[string]any `json:"preferences"`
	Weights     map[string]any `json:"weights"`
	MaxResults  int            `json:"max_results"`
	TimeLimitMs int            `json:"time_limit_ms"`
}

type scheduleJSON struct {
	Score     float64       `json:"score"`
	Satisfied []string      `json:"satisfied_preferences"`
	Courses   []sectionJSON `json:"courses"`
}

type scheduleResponse struct {
	Total     int            `json:"total"`
	Schedules []scheduleJSON `json:"schedules"`
}

func (s *Server) handleSchedules(w http.ResponseWriter, r *http.Request) {
	var request scheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if len(request.Courses) == 0 {
		writeError(w, http.StatusBadRequest, "No courses provided")
		return
	}

	prefs, weights, err := decodeOverrides(request)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	found, missing := s.store.Select(request.Courses)
	if len(missing) > 0 {
		writeError(w, http.StatusNotFound, fmt.Sprintf("Courses not found: %v", strings.Join(missing, ", ")))
		return
	}

	courseRequest := lo.Map(found, func(candidates catalog.CourseSections, _ int) planner.CourseRequest {
		return planner.CourseRequest{Course: candidates.Course, Sections: candidates.Sections}
	})

	schedules := planner.Generate(courseRequest, s.limits(request))
	ranked := planner.Rank(schedules, prefs, weights)
	s.log.Infof("planned %v schedules for %v courses", len(ranked), len(courseRequest))

	writeJSON(w, http.StatusOK, scheduleResponse{
		Total: len(ranked),
		Schedules: lo.Map(ranked, func(scored planner.ScoredSchedule, _ int) scheduleJSON {
			return scheduleJSON{
				Score:     scored.Score,
				Satisfied: scored.Satisfied,
				Courses: lo.Map(scored.Schedule, func(section *course.Section, _ int) sectionJSON {
					return toSectionJSON(section)
				}),
			}
		}),
	})
}

func decodeOverrides(request scheduleRequest) (planner.Preferences, planner.Weights, error) {
	var prefOverrides planner.PreferenceOverrides
	if err := mapstructure.Decode(request.Preferences, &prefOverrides); err != nil {
		return planner.Preferences{}, planner.Weights{}, fmt.Errorf("invalid preferences: %v", err)
	}
	var weightOverrides planner.WeightOverrides
	if err := mapstructure.WeakDecode(request.Weights, &weightOverrides); err != nil {
		return planner.Preferences{}, planner.Weights{}, fmt.Errorf("invalid weights: %v", err)
	}
	return prefOverrides.Merge(), weightOverrides.Merge(), nil
}

// limits combines the server-wide budget with any tighter per-request
// budget.
func (s *Server) limits(request scheduleRequest) planner.Limits {
	maxResults := s.maxResults
	if request.MaxResults > 0 && (maxResults == 0 || request.MaxResults < maxResults) {
		maxResults = request.MaxResults
	}

	timeLimitMs := s.timeLimitMs
	if request.TimeLimitMs > 0 && (timeLimitMs == 0 || request.TimeLimitMs < timeLimitMs) {
		timeLimitMs = request.TimeLimitMs
	}

	limits := planner.Limits{MaxResults: maxResults}
	if timeLimitMs > 0 {
		limits.Deadline = time.Now().Add(time.Duration(timeLimitMs) * time.Millisecond)
	}
	return limits
}
