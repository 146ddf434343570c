/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: corpus_test.go
Description: Tests for frequency tables: aggregation, ordering, statistics, merging
and export round trips.
*/

package corpus_test

import (
	"bytes"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kleascm/langgen/pkg/corpus"
	"github.com/kleascm/langgen/pkg/language"
	"github.com/kleascm/langgen/pkg/language/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLanguage(t *testing.T, name string) language.Language {
	t.Helper()
	l, err := catalog.Get(name)
	require.NoError(t, err)
	return l
}

// TestSampleDataSumsToN checks that counts add up for every draw size
func TestSampleDataSumsToN(t *testing.T) {
	for _, name := range []string{"AnBn", "Man", "XX", "Unequal"} {
		t.Run(name, func(t *testing.T) {
			l := mustLanguage(t, name)
			d, err := corpus.SampleData(l, 1000, rand.New(rand.NewSource(1)))
			require.NoError(t, err)

			sum := 0
			for _, c := range d.Output {
				sum += c
			}
			assert.Equal(t, 1000, sum)
			assert.Equal(t, 1000, d.N)
			assert.Equal(t, name, d.Language)
			assert.Equal(t, corpus.DefaultAlpha, d.Alpha)
			assert.NotEqual(t, [16]byte{}, [16]byte(d.ID))
		})
	}
}

// TestSampleDataKeysAreMembers checks every key is a possible output
func TestSampleDataKeysAreMembers(t *testing.T) {
	man := mustLanguage(t, "Man")
	d, err := corpus.SampleData(man, 2000, rand.New(rand.NewSource(2)))
	require.NoError(t, err)

	seq, err := man.AllStrings()
	require.NoError(t, err)
	members := language.Take(seq, 100)
	for s := range d.Output {
		assert.Contains(t, members, s)
	}
	assert.Len(t, d.Output, 5)
}

// TestSampleDataCounts checks edge counts
func TestSampleDataCounts(t *testing.T) {
	l := mustLanguage(t, "An")

	d, err := corpus.SampleData(l, 0, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	assert.Zero(t, d.N)
	assert.Empty(t, d.Output)

	_, err = corpus.SampleData(l, -1, rand.New(rand.NewSource(3)))
	assert.ErrorIs(t, err, corpus.ErrInvalidCount)
}

// TestSampleDataPropagatesErrors checks that language failures surface
func TestSampleDataPropagatesErrors(t *testing.T) {
	never := language.Filter("never", mustLanguage(t, "An"), func(string) bool { return false },
		language.WithMaxRejections(5))
	_, err := corpus.SampleData(never, 10, rand.New(rand.NewSource(4)))
	assert.ErrorIs(t, err, language.ErrRejectionLimit)
}

func fixture() *corpus.Datum {
	d := corpus.NewDatum("L", 0.9)
	d.Add("ab", 2)
	d.Add("a", 2)
	d.Add("b", 2)
	d.Add("aab", 4)
	d.Add("ignored", 0)
	return d
}

// TestSortedAndSupport checks the deterministic orderings
func TestSortedAndSupport(t *testing.T) {
	d := fixture()
	assert.Equal(t, 10, d.N)

	assert.Equal(t, []corpus.Entry{
		{String: "aab", Count: 4},
		{String: "a", Count: 2},
		{String: "b", Count: 2},
		{String: "ab", Count: 2},
	}, d.Sorted())
	assert.Equal(t, []string{"a", "b", "ab", "aab"}, d.Support())
	assert.InDelta(t, 0.4, d.Probability("aab"), 1e-12)
	assert.Zero(t, d.Probability("zzz"))
}

// TestStats checks the summary statistics
func TestStats(t *testing.T) {
	st := fixture().Stats()
	assert.Equal(t, 10, st.N)
	assert.Equal(t, 4, st.Distinct)
	assert.Equal(t, 3, st.MaxLength)
	assert.InDelta(t, (2*2+1*2+1*2+3*4)/10.0, st.MeanLength, 1e-12)
	// -(0.4 log 0.4 + 3 * 0.2 log 0.2)
	assert.InDelta(t, 1.9219280948873623, st.Entropy, 1e-9)

	empty := corpus.NewDatum("L", 0.9).Stats()
	assert.Zero(t, empty.MeanLength)
	assert.Zero(t, empty.Entropy)
}

// TestMerge checks folding corpora together
func TestMerge(t *testing.T) {
	d := fixture()
	other := corpus.NewDatum("L", 0.9)
	other.Add("a", 3)
	other.Add("bbb", 1)

	require.NoError(t, d.Merge(other))
	assert.Equal(t, 14, d.N)
	assert.Equal(t, 5, d.Output["a"])
	assert.Equal(t, 1, d.Output["bbb"])

	assert.Error(t, d.Merge(corpus.NewDatum("Other", 0.9)))
}

// TestExportRoundTrip checks JSON and YAML encodings
func TestExportRoundTrip(t *testing.T) {
	d := fixture()
	for _, f := range []corpus.Format{corpus.FormatJSON, corpus.FormatYAML} {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, corpus.Write(&buf, d, f))

			back, err := corpus.Read(&buf, f)
			require.NoError(t, err)
			assert.Equal(t, d.ID, back.ID)
			assert.Equal(t, d.Language, back.Language)
			assert.Equal(t, d.N, back.N)
			assert.Equal(t, d.Alpha, back.Alpha)
			assert.Equal(t, d.Output, back.Output)
		})
	}
}

// TestExportText checks the tab-separated listing
func TestExportText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, corpus.Write(&buf, fixture(), corpus.FormatText))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{"4\taab", "2\ta", "2\tb", "2\tab"}, lines)

	_, err := corpus.Read(&buf, corpus.FormatText)
	assert.Error(t, err)
}

// TestParseFormat checks format names
func TestParseFormat(t *testing.T) {
	f, err := corpus.ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, corpus.FormatJSON, f)

	f, err = corpus.ParseFormat("yml")
	require.NoError(t, err)
	assert.Equal(t, corpus.FormatYAML, f)

	_, err = corpus.ParseFormat("xml")
	assert.Error(t, err)
}

// TestSave checks corpus files land in the target directory
func TestSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "corpora")
	d := fixture()

	path, err := corpus.Save(dir, d, corpus.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))
	assert.True(t, strings.HasSuffix(path, "_L_"+d.ID.String()[:8]+".yaml"))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	back, err := corpus.Read(f, corpus.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, d.Output, back.Output)

	path, err = corpus.Save(dir, d, corpus.FormatText)
	require.NoError(t, err)
	assert.Equal(t, ".tsv", filepath.Ext(path))
}
