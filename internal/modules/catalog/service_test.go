package catalog

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthportal/internal/domain"
)

func allTests() []domain.LabTest {
	return NewStaticProvider().Tests()
}

func TestSearch_EmptyQueryAllCategoriesReturnsEverythingSorted(t *testing.T) {
	out := Search(allTests(), "", CategoryAll, SortByName)

	require.Len(t, out, 6)
	assert.True(t, sort.SliceIsSorted(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	}))
}

func TestSearch_ResultIsSubsetSatisfyingPredicates(t *testing.T) {
	in := allTests()
	out := Search(in, "blood", "diabetes", SortByName)

	ids := make(map[string]bool, len(in))
	for _, tst := range in {
		ids[tst.ID] = true
	}
	for _, tst := range out {
		assert.True(t, ids[tst.ID], "result must be a subset of the input")
		assert.Equal(t, "diabetes", tst.Category)
	}
	require.Len(t, out, 1)
	assert.Equal(t, "Blood Sugar (Fasting)", out[0].Name)
}

func TestSearch_MatchesDescriptionToo(t *testing.T) {
	out := Search(allTests(), "creatinine", CategoryAll, SortByName)

	require.Len(t, out, 1)
	assert.Equal(t, "Kidney Function Test (KFT)", out[0].Name)
}

func TestSearch_CaseInsensitive(t *testing.T) {
	lower := Search(allTests(), "lipid", CategoryAll, SortByName)
	upper := Search(allTests(), "LIPID", CategoryAll, SortByName)

	assert.Equal(t, lower, upper)
	require.Len(t, lower, 1)
}

func TestSearch_SortByPriceAscending(t *testing.T) {
	out := Search(allTests(), "", CategoryAll, SortByPrice)

	require.Len(t, out, 6)
	assert.True(t, sort.SliceIsSorted(out, func(i, j int) bool {
		return out[i].Price < out[j].Price
	}))
	assert.Equal(t, "Blood Sugar (Fasting)", out[0].Name)
	assert.Equal(t, "Thyroid Profile (TSH, T3, T4)", out[5].Name)
}

func TestSearch_SortIsIdempotent(t *testing.T) {
	once := Search(allTests(), "", CategoryAll, SortByName)
	twice := Search(once, "", CategoryAll, SortByName)

	assert.Equal(t, once, twice)
}

func TestSearch_UnknownSortKeyKeepsInputOrder(t *testing.T) {
	in := allTests()
	out := Search(in, "", CategoryAll, "duration")

	assert.Equal(t, in, out)
}

func TestSearch_NoResultsIsEmptyNotNil(t *testing.T) {
	out := Search(allTests(), "does not exist", CategoryAll, SortByName)

	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestService_TestByID(t *testing.T) {
	s := NewService(NewStaticProvider())

	tst, err := s.TestByID("2")
	require.NoError(t, err)
	assert.Equal(t, "Blood Sugar (Fasting)", tst.Name)
	assert.True(t, tst.PreparationRequired)
	assert.Len(t, tst.Preparations, 3)

	_, err = s.TestByID("999")
	assert.ErrorIs(t, err, ErrTestNotFound)
}

func TestService_FeaturedTests(t *testing.T) {
	s := NewService(NewStaticProvider())

	featured := s.FeaturedTests()
	require.Len(t, featured, 3)
	for _, tst := range featured {
		assert.True(t, tst.Featured)
	}
}

func TestService_ReferenceData(t *testing.T) {
	s := NewService(NewStaticProvider())

	assert.Len(t, s.Categories(), 7)
	assert.Len(t, s.Locations(), 3)

	loc, ok := NewStaticProvider().LocationByID("karol-bagh")
	require.True(t, ok)
	assert.Equal(t, "Patil Clinic", loc.Name)
}
