package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/shag-platform/shag-api/pkg/errors"
)

func TestLoadEmbedded(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	assert.NotEmpty(t, c.All())
	assert.Equal(t, FilterAll, c.Industries()[0])
	assert.Equal(t, FilterAll, c.Cities()[0])
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mentors.json")
	data := `{
		"industries": ["Все", "IT"],
		"cities": ["Все", "Москва"],
		"mentors": [
			{"id": "x1", "name": "Тест", "industry": "IT", "city": "Москва",
			 "description": "тестовый наставник", "singlePrice": 100, "groupPrice": 50}
		]
	}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, c.All(), 1)

	m, err := c.ByID("x1")
	require.NoError(t, err)
	assert.Equal(t, "Тест", m.Name)
}

func TestLoadRejectsBadData(t *testing.T) {
	dir := t.TempDir()

	empty := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(empty, []byte(`{"mentors": []}`), 0o600))
	_, err := Load(empty)
	assert.Error(t, err)

	dup := filepath.Join(dir, "dup.json")
	require.NoError(t, os.WriteFile(dup, []byte(`{
		"mentors": [
			{"id": "a", "name": "A"},
			{"id": "a", "name": "B"}
		]
	}`), 0o600))
	_, err = Load(dup)
	assert.Error(t, err)

	_, err = Load(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestByIDNotFound(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	_, err = c.ByID("nope")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestFilterSentinelReturnsEverything(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	all := c.All()
	assert.Equal(t, all, c.Filter(FilterAll, FilterAll, ""))
	assert.Equal(t, all, c.Filter("", "", ""))
}

func TestFilterIsConjunctive(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	itInMoscow := c.Filter("IT", "Москва", "")
	require.NotEmpty(t, itInMoscow)
	for _, m := range itInMoscow {
		assert.Contains(t, m.Industry, "IT")
		assert.Equal(t, "Москва", m.City)
	}

	// City filter must cut down the industry-only result set
	itAnywhere := c.Filter("IT", FilterAll, "")
	assert.Greater(t, len(itAnywhere), len(itInMoscow))
}

func TestFilterMatchesCombinedIndustries(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	// m5 is tagged "IT / Финансы" and must appear under both filters
	found := false
	for _, m := range c.Filter("Финансы", FilterAll, "") {
		if m.ID == "m5" {
			found = true
		}
	}
	assert.True(t, found)

	found = false
	for _, m := range c.Filter("IT", FilterAll, "") {
		if m.ID == "m5" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestFilterQueryIsCaseInsensitive(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	byName := c.Filter(FilterAll, FilterAll, "воронов")
	require.Len(t, byName, 1)
	assert.Equal(t, "m1", byName[0].ID)

	byDescription := c.Filter(FilterAll, FilterAll, "SAAS")
	require.Len(t, byDescription, 1)
	assert.Equal(t, "m1", byDescription[0].ID)
}

func TestFilterPreservesCatalogOrder(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	moscow := c.Filter(FilterAll, "Москва", "")
	require.NotEmpty(t, moscow)

	pos := map[string]int{}
	for i, m := range c.All() {
		pos[m.ID] = i
	}
	for i := 1; i < len(moscow); i++ {
		assert.Less(t, pos[moscow[i-1].ID], pos[moscow[i].ID])
	}
}

func TestFilterNoMatches(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	assert.Empty(t, c.Filter("IT", "Казань", "несуществующий запрос"))
}
