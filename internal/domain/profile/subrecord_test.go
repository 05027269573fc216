package profile

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newExperience(title string) Experience {
	return Experience{
		ID:      uuid.New(),
		Title:   title,
		Company: "Acme",
		From:    time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestPrepend_NewestFirst(t *testing.T) {
	var entries []Experience

	entries = Prepend(entries, newExperience("first"))
	entries = Prepend(entries, newExperience("second"))

	assert.Len(t, entries, 2)
	assert.Equal(t, "second", entries[0].Title)
	assert.Equal(t, "first", entries[1].Title)
}

func TestPrepend_DoesNotMutateInput(t *testing.T) {
	original := []Experience{newExperience("only")}

	_ = Prepend(original, newExperience("new"))

	assert.Len(t, original, 1)
	assert.Equal(t, "only", original[0].Title)
}

func TestRemoveByID_Found(t *testing.T) {
	a := newExperience("a")
	b := newExperience("b")
	c := newExperience("c")
	entries := []Experience{a, b, c}

	out, found := RemoveByID(entries, b.ID)

	assert.True(t, found)
	assert.Len(t, out, 2)
	assert.Equal(t, "a", out[0].Title)
	assert.Equal(t, "c", out[1].Title)
}

func TestRemoveByID_Absent(t *testing.T) {
	a := newExperience("a")
	entries := []Experience{a}

	out, found := RemoveByID(entries, uuid.New())

	assert.False(t, found)
	assert.Len(t, out, 1)
	assert.Equal(t, a.ID, out[0].ID)
}

func TestRemoveByID_Education(t *testing.T) {
	e := Education{ID: uuid.New(), School: "MIT", Degree: "BSc", FieldOfStudy: "CS", From: time.Now()}
	entries := []Education{e}

	out, found := RemoveByID(entries, e.ID)

	assert.True(t, found)
	assert.Empty(t, out)
}
