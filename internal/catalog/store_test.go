package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"owlplanner/internal/logger"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "course_data.csv")
	assert.Nil(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func loadedStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(logger.New("catalog-test"))
	count, err := store.LoadFile(writeTempCSV(t, sampleCSV))
	assert.Nil(t, err)
	assert.Equal(t, 4, count)
	return store
}

func TestStore(t *testing.T) {
	t.Run("Subjects are sorted and unique", func(t *testing.T) {
		store := loadedStore(t)

		assert.Equal(t, []string{"COMP", "MATH", "STAT"}, store.Subjects())
	})

	t.Run("Courses filters by substring, case-insensitively", func(t *testing.T) {
		store := loadedStore(t)

		assert.Len(t, store.Courses(""), 4)
		assert.Len(t, store.Courses("comp"), 2)
		assert.Len(t, store.Courses("MATH 212"), 1)
		assert.Empty(t, store.Courses("PHYS"))
	})

	t.Run("Select splits found and missing", func(t *testing.T) {
		store := loadedStore(t)

		found, missing := store.Select([]string{"COMP 140", "PHYS 101", "MATH 212"})

		assert.Equal(t, []string{"PHYS 101"}, missing)
		assert.Len(t, found, 2)
		assert.Equal(t, "COMP 140", found[0].Course)
		assert.Len(t, found[0].Sections, 2)
		assert.Equal(t, "MATH 212", found[1].Course)
		assert.Len(t, found[1].Sections, 1)
	})

	t.Run("Refresh reloads the last path", func(t *testing.T) {
		store := NewStore(logger.New("catalog-test"))
		path := writeTempCSV(t, sampleCSV)

		_, err := store.LoadFile(path)
		assert.Nil(t, err)

		count, err := store.Refresh()
		assert.Nil(t, err)
		assert.Equal(t, 4, count)
	})

	t.Run("Refresh before any load fails", func(t *testing.T) {
		store := NewStore(logger.New("catalog-test"))

		_, err := store.Refresh()

		assert.NotNil(t, err)
	})

	t.Run("Missing file fails to load", func(t *testing.T) {
		store := NewStore(logger.New("catalog-test"))

		_, err := store.LoadFile(filepath.Join(t.TempDir(), "absent.csv"))

		assert.NotNil(t, err)
	})
}
