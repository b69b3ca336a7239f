package scraper

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"owlplanner/internal/catalog"
	"owlplanner/internal/course"
	"owlplanner/internal/logger"
)

type Config struct {
	// BaseURL is the catalog query endpoint; the term and subject are
	// appended as query parameters
	BaseURL string `json:"baseUrl"`
	Term    string `json:"term"`
	// TimeoutSeconds bounds each catalog page fetch
	TimeoutSeconds int `json:"timeoutSeconds"`
}

func (c *Config) SetDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = "https://courses.rice.edu/courses/!SWKSCAT.cat"
	}
	if c.Term == "" {
		c.Term = "202620"
	}
	if c.TimeoutSeconds == 0 {
		c.TimeoutSeconds = 30
	}
}

func (c *Config) Validate() error {
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("scraper.timeoutSeconds must not be negative: %v", c.TimeoutSeconds)
	}
	return nil
}

// Scraper fetches catalog pages and extracts course rows from their
// HTML schedule tables.
type Scraper struct {
	cfg    Config
	client *http.Client
	log    logger.Logger
}

func New(cfg Config, log logger.Logger) *Scraper {
	return &Scraper{
		cfg:    cfg,
		client: &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
		log:    log,
	}
}

// Subject fetches and parses the catalog page for one subject code.
func (s *Scraper) Subject(subject string) ([]*catalog.Row, error) {
	url := fmt.Sprintf("%v?p_action=QUERY&p_term=%v&p_subj=%v", s.cfg.BaseURL, s.cfg.Term, subject)
	response, err := s.client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch %v: %w", subject, err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %v: unexpected status %v", subject, response.Status)
	}

	doc, err := goquery.NewDocumentFromReader(response.Body)
	if err != nil {
		return nil, fmt.Errorf("parse %v: %w", subject, err)
	}
	return s.extractRows(doc, subject)
}

// All scrapes every given subject, skipping subjects that fail with a
// warning rather than aborting the whole run.
func (s *Scraper) All(subjects []string) []*catalog.Row {
	rows := []*catalog.Row{}
	for _, subject := range subjects {
		subjectRows, err := s.Subject(subject)
		if err != nil {
			s.log.Warnf("skipping %v: %v", subject, err)
			continue
		}
		s.log.Infof("%v: %v meeting rows", subject, len(subjectRows))
		rows = append(rows, subjectRows...)
	}
	return rows
}

func (s *Scraper) extractRows(doc *goquery.Document, subject string) ([]*catalog.Row, error) {
	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("no schedule table found for %v", subject)
	}

	rows := []*catalog.Row{}
	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		if row.Find("th").Length() > 0 {
			return
		}

		crn := strings.TrimSpace(row.Find("td.cls-crn").Text())
		courseName := courseNameFromCell(row.Find("td.cls-crs").Text())
		instructor := strings.TrimSpace(row.Find("td.cls-ins").Text())
		if crn == "" || courseName == "" {
			return
		}

		row.Find("td.cls-mtg div.mtg-clas div").Each(func(_ int, cell *goquery.Selection) {
			text := strings.TrimSpace(cell.Text())
			if text == "" {
				return
			}
			pattern, err := parseMeetingString(text)
			if err != nil {
				s.log.Debugf("section %v: %v", crn, err)
				return
			}
			rows = append(rows, &catalog.Row{
				Course:     courseName,
				CRN:        crn,
				Instructor: instructor,
				Days:       joinDays(pattern.days),
				StartTime:  course.FormatMinutes(pattern.start),
				EndTime:    course.FormatMinutes(pattern.end),
			})
		})
	})
	return rows, nil
}

// courseNameFromCell keeps the subject and number of a course cell
// such as "MECH 200 002", dropping the section suffix.
func courseNameFromCell(text string) string {
	parts := strings.Fields(text)
	if len(parts) < 2 {
		return strings.TrimSpace(text)
	}
	return parts[0] + " " + parts[1]
}
