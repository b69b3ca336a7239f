package catalog

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/samber/lo"

	"owlplanner/internal/course"
	"owlplanner/internal/logger"
)

// Store is the process-wide cache of loaded catalog sections. Loading
// and refreshing belong here; the planner only ever sees read-only
// section views handed out per request.
type Store struct {
	mu       sync.RWMutex
	path     string
	sections []*course.Section
	log      logger.Logger
}

func NewStore(log logger.Logger) *Store {
	return &Store{log: log}
}

// LoadFile reads the catalog CSV at path into the cache, replacing any
// previously loaded data. Returns the number of sections loaded.
func (s *Store) LoadFile(path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open catalog: %w", err)
	}
	defer file.Close()

	sections, err := ReadSections(file)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	s.path = path
	s.sections = sections
	s.mu.Unlock()

	s.log.Infof("loaded %v sections from %v", len(sections), path)
	return len(sections), nil
}

// Refresh reloads the catalog from the last loaded path.
func (s *Store) Refresh() (int, error) {
	s.mu.RLock()
	path := s.path
	s.mu.RUnlock()

	if path == "" {
		return 0, fmt.Errorf("no catalog loaded yet")
	}
	return s.LoadFile(path)
}

// Sections returns a snapshot of every loaded section.
func (s *Store) Sections() []*course.Section {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*course.Section{}, s.sections...)
}

// Subjects returns the sorted unique subject codes (the course-name
// prefix before the first space).
func (s *Store) Subjects() []string {
	subjects := lo.Uniq(lo.FilterMap(s.Sections(), func(section *course.Section, _ int) (string, bool) {
		subject, _, found := strings.Cut(section.Course, " ")
		return subject, found && subject != ""
	}))
	sort.Strings(subjects)
	return subjects
}

// Courses returns the sections whose course name contains the query,
// case-insensitively. An empty query matches everything.
func (s *Store) Courses(query string) []*course.Section {
	query = strings.ToLower(strings.TrimSpace(query))
	sections := s.Sections()
	if query == "" {
		return sections
	}
	return lo.Filter(sections, func(section *course.Section, _ int) bool {
		return strings.Contains(strings.ToLower(section.Course), query)
	})
}

// Select gathers the candidate sections for each requested course, in
// request order, and separately reports the courses with no sections
// at all. A non-empty missing list must be rejected by the caller; it
// is the gate that keeps empty candidate lists away from the schedule
// generator.
func (s *Store) Select(names []string) (found []CourseSections, missing []string) {
	byCourse := lo.GroupBy(s.Sections(), func(section *course.Section) string {
		return section.Course
	})

	for _, name := range names {
		sections := byCourse[name]
		if len(sections) == 0 {
			missing = append(missing, name)
			continue
		}
		found = append(found, CourseSections{Course: name, Sections: sections})
	}
	return found, missing
}

// CourseSections is one requested course with its candidate sections.
type CourseSections struct {
	Course   string
	Sections []*course.Section
}
