package planner

import (
	"time"

	"github.com/samber/lo"

	"owlplanner/internal/course"
)

// Schedule is one conflict-free selection of exactly one section per
// requested course, in request order. Immutable once returned by
// Generate.
type Schedule []*course.Section

// CourseRequest is one requested course together with its non-empty
// candidate section list. Callers must reject courses with zero
// candidates before building a request; Generate relies on that
// invariant and does not re-validate it.
type CourseRequest struct {
	Course   string
	Sections []*course.Section
}

// Limits bounds the search cost. Zero values mean unbounded. Hitting a
// limit is a soft truncation: schedules already collected are returned
// as-is, in their original visitation order, with no error.
type Limits struct {
	MaxResults int
	Deadline   time.Time
}

func (l Limits) exhausted(found int) bool {
	if l.MaxResults > 0 && found >= l.MaxResults {
		return true
	}
	return !l.Deadline.IsZero() && !time.Now().Before(l.Deadline)
}

// Generate enumerates every conflict-free schedule over the requested
// courses with a depth-first search, one section choice per course, in
// request order. A candidate section is accepted only if it conflicts
// with none of the sections already chosen at shallower depths. The
// output order is fully deterministic for identical inputs: it is the
// DFS visitation order over the candidate lists as given.
//
// An empty request yields a single empty schedule. A request whose
// every combination conflicts yields an empty result; neither case is
// an error.
func Generate(request []CourseRequest, limits Limits) []Schedule {
	schedules := []Schedule{}
	partial := make(Schedule, 0, len(request))
	generate(request, limits, 0, partial, &schedules)
	return schedules
}

// Limits are checked once per search node, so a deadline overshoot is
// bounded by a single node's conflict-check cost.
func generate(request []CourseRequest, limits Limits, depth int, partial Schedule, schedules *[]Schedule) {
	if limits.exhausted(len(*schedules)) {
		return
	}

	if depth == len(request) {
		// Copy so the result does not alias the backtracking buffer
		complete := make(Schedule, len(partial))
		copy(complete, partial)
		*schedules = append(*schedules, complete)
		return
	}

	for _, section := range request[depth].Sections {
		if conflictsWithAny(section, partial) {
			continue
		}

		partial = append(partial, section)
		generate(request, limits, depth+1, partial, schedules)
		partial = partial[:len(partial)-1]
	}
}

func conflictsWithAny(section *course.Section, partial Schedule) bool {
	return lo.SomeBy(partial, func(chosen *course.Section) bool {
		return section.ConflictsWith(chosen)
	})
}

// Verify checks that a schedule is a valid answer for a request:
// exactly one section per requested course, each drawn from that
// course's candidate list, and pairwise conflict-free.
func Verify(schedule Schedule, request []CourseRequest) bool {
	if len(schedule) != len(request) {
		return false
	}

	for i, section := range schedule {
		if section.Course != request[i].Course || !lo.Contains(request[i].Sections, section) {
			return false
		}
	}

	for i := range schedule {
		for j := i + 1; j < len(schedule); j++ {
			if schedule[i].ConflictsWith(schedule[j]) {
				return false
			}
		}
	}
	return true
}
