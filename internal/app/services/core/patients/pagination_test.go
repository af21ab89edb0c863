package patients

import (
	"patient-viewer-service/internal/pkg/fhir_dto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterPatients(t *testing.T) {
	patients := []fhir_dto.Patient{
		newPatient("abc-1", "John", "Doe", "male"),
		newPatient("xyz-2", "Jane", "Smith", "female"),
		newPatient("abc-3", "Ann", "Lee", "other"),
		{ID: "nameless-4"},
	}

	t.Run("Blank Term Returns List Unchanged", func(t *testing.T) {
		for _, term := range []string{"", " ", "\t \n"} {
			filtered := FilterPatients(patients, term)
			assert.Equal(t, patients, filtered)
		}
	})

	t.Run("Matches Display Name Ignoring Case", func(t *testing.T) {
		filtered := FilterPatients(patients, "SMITH")
		require.Len(t, filtered, 1)
		assert.Equal(t, "xyz-2", filtered[0].ID)
	})

	t.Run("Matches Identifier", func(t *testing.T) {
		filtered := FilterPatients(patients, "abc")
		require.Len(t, filtered, 2)
		assert.Equal(t, "abc-1", filtered[0].ID)
		assert.Equal(t, "abc-3", filtered[1].ID)
	})

	t.Run("Matches Gender Substring", func(t *testing.T) {
		filtered := FilterPatients(patients, "male")
		require.Len(t, filtered, 2)
		assert.Equal(t, "abc-1", filtered[0].ID)
		assert.Equal(t, "xyz-2", filtered[1].ID)
	})

	t.Run("Matches Fallback Name", func(t *testing.T) {
		filtered := FilterPatients(patients, "unknown name")
		require.Len(t, filtered, 1)
		assert.Equal(t, "nameless-4", filtered[0].ID)
	})

	t.Run("No Match Yields Empty List", func(t *testing.T) {
		filtered := FilterPatients(patients, "zzz")
		assert.NotNil(t, filtered)
		assert.Empty(t, filtered)
	})

	t.Run("Is Idempotent And Leaves Input Untouched", func(t *testing.T) {
		before := make([]fhir_dto.Patient, len(patients))
		copy(before, patients)

		first := FilterPatients(patients, "j")
		second := FilterPatients(patients, "j")

		assert.Equal(t, first, second)
		assert.Equal(t, before, patients)
	})
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		count    int
		expected int
	}{
		{0, 1},
		{1, 1},
		{9, 1},
		{10, 1},
		{11, 2},
		{25, 3},
		{100, 10},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, TotalPages(tt.count), "count %d", tt.count)
	}
}

func TestClampPage(t *testing.T) {
	tests := []struct {
		page       int
		totalPages int
		expected   int
	}{
		{-3, 3, 1},
		{0, 3, 1},
		{1, 3, 1},
		{2, 3, 2},
		{3, 3, 3},
		{7, 3, 3},
		{4, 0, 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ClampPage(tt.page, tt.totalPages), "page %d of %d", tt.page, tt.totalPages)
	}
}

func TestPageWindow(t *testing.T) {
	tests := []struct {
		name       string
		current    int
		totalPages int
		expected   []int
	}{
		{"Single Page", 1, 1, []int{1}},
		{"Fewer Pages Than Buttons", 2, 3, []int{1, 2, 3}},
		{"First Page Of Many", 1, 10, []int{1, 2, 3, 4, 5}},
		{"Third Page Starts At One", 3, 10, []int{1, 2, 3, 4, 5}},
		{"Middle Page Centered", 5, 10, []int{3, 4, 5, 6, 7}},
		{"Last Page Shrinks", 10, 10, []int{8, 9, 10}},
		{"Out Of Range Is Clamped", 99, 10, []int{8, 9, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PageWindow(tt.current, tt.totalPages))
		})
	}
}

func TestPaginate(t *testing.T) {
	patients := newDirectory(25)

	t.Run("Slices Requested Page", func(t *testing.T) {
		page := Paginate(patients, 2)
		require.Len(t, page, PageSize)
		assert.Equal(t, "p-10", page[0].ID)
		assert.Equal(t, "p-19", page[9].ID)
	})

	t.Run("Last Page Is Partial", func(t *testing.T) {
		page := Paginate(patients, 3)
		require.Len(t, page, 5)
		assert.Equal(t, "p-20", page[0].ID)
	})

	t.Run("Clamps Before Slicing", func(t *testing.T) {
		assert.Equal(t, Paginate(patients, 1), Paginate(patients, 0))
		assert.Equal(t, Paginate(patients, 3), Paginate(patients, 42))
	})

	t.Run("Empty List Has Empty Page", func(t *testing.T) {
		assert.Empty(t, Paginate(nil, 1))
	})
}
