package scraper

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"owlplanner/internal/logger"
)

const catalogPage = `<html><body>
<table>
  <tr><th>CRN</th><th>Course</th><th>Instructor</th><th>Meetings</th></tr>
  <tr>
    <td class="cls-crn">10001</td>
    <td class="cls-crs">COMP 140 001</td>
    <td class="cls-ins">Dr. Smith</td>
    <td class="cls-mtg"><div class="mtg-clas"><div>10:00AM - 10:50AM MWF</div></div></td>
  </tr>
  <tr>
    <td class="cls-crn">10002</td>
    <td class="cls-crs">COMP 140 002</td>
    <td class="cls-ins">Dr. Jones</td>
    <td class="cls-mtg"><div class="mtg-clas">
      <div>1:00PM - 1:50PM MW</div>
      <div>2:00PM - 3:15PM R</div>
    </div></td>
  </tr>
  <tr>
    <td class="cls-crn">10003</td>
    <td class="cls-crs">COMP 182 001</td>
    <td class="cls-ins">Dr. Lee</td>
    <td class="cls-mtg"><div class="mtg-clas"><div>TBA</div></div></td>
  </tr>
</table>
</body></html>`

func testScraper(t *testing.T, handler http.HandlerFunc) *Scraper {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := Config{BaseURL: server.URL, Term: "202620"}
	cfg.SetDefaults()
	return New(cfg, logger.New("scraper-test"))
}

func TestSubject(t *testing.T) {
	t.Run("Extracts rows from the schedule table", func(t *testing.T) {
		scraper := testScraper(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "COMP", r.URL.Query().Get("p_subj"))
			assert.Equal(t, "202620", r.URL.Query().Get("p_term"))
			_, _ = w.Write([]byte(catalogPage))
		})

		rows, err := scraper.Subject("COMP")

		assert.Nil(t, err)
		// One MWF row, two rows for the two-pattern section; the TBA
		// meeting is dropped
		assert.Len(t, rows, 3)

		assert.Equal(t, "COMP 140", rows[0].Course)
		assert.Equal(t, "10001", rows[0].CRN)
		assert.Equal(t, "Dr. Smith", rows[0].Instructor)
		assert.Equal(t, "Mon,Wed,Fri", rows[0].Days)
		assert.Equal(t, "10:00", rows[0].StartTime)
		assert.Equal(t, "10:50", rows[0].EndTime)

		assert.Equal(t, "10002", rows[1].CRN)
		assert.Equal(t, "Mon,Wed", rows[1].Days)
		assert.Equal(t, "10002", rows[2].CRN)
		assert.Equal(t, "Thu", rows[2].Days)
		assert.Equal(t, "14:00", rows[2].StartTime)
	})

	t.Run("Missing table is an error", func(t *testing.T) {
		scraper := testScraper(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html><body>nothing here</body></html>"))
		})

		_, err := scraper.Subject("COMP")

		assert.NotNil(t, err)
	})

	t.Run("Non-200 status is an error", func(t *testing.T) {
		scraper := testScraper(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		_, err := scraper.Subject("COMP")

		assert.NotNil(t, err)
	})
}

func TestAll(t *testing.T) {
	calls := 0
	scraper := testScraper(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.URL.Query().Get("p_subj") == "MATH" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(catalogPage))
	})

	rows := scraper.All([]string{"COMP", "MATH"})

	// The failing subject is skipped, not fatal
	assert.Equal(t, 2, calls)
	assert.Len(t, rows, 3)
}
