package chart

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const socialMediaCSV = `Platform,PostType,PostTimestamp,Likes,AgeGroup
Instagram,Image,2024-09-01 10:00:00,100,18-24
Instagram,Video,2024-09-01 12:30:00,300,25-34
Facebook,Link,2024-09-01 18:00:00,50,35-44
Instagram,Image,2024-09-02 09:15:00,200,18-24
Facebook,Image,2024-09-02 11:00:00,80,25-34
Twitter,Video,2024-09-02 20:45:00,120,18-24
Facebook,Link,2024-09-03 08:00:00,70,35-44
Twitter,Video,2024-09-03 14:00:00,130,25-34
Instagram,Image,2024-09-03 16:00:00,400,18-24
Twitter,Link,2024-09-03 21:00:00,10,35-44
`

func readSocialMedia(t *testing.T) *DataFrame {
	t.Helper()
	df, err := ReadCSV("socialMedia.csv", strings.NewReader(socialMediaCSV))
	require.NoError(t, err)
	return df
}

func TestReadCSV(t *testing.T) {
	df := readSocialMedia(t)
	assert.Equal(t, 10, df.N)
	assert.Equal(t, []string{"Platform", "PostType", "PostTimestamp", "Likes", "AgeGroup"}, df.Names())
	assert.True(t, df.Has("Likes"))
	assert.False(t, df.Has("Shares"))
}

func TestReadCSVErrors(t *testing.T) {
	tests := []struct {
		name, input, want string
	}{
		{"empty", "", "no header"},
		{"short row", "a,b\n1,2\n3\n", "line 3 has 1 fields, want 2"},
		{"duplicate", "a,a\n1,2\n", "duplicate column"},
		{"long row after quoted newline", "a,b\n\"x\ny\",2\n1,2,3\n", "line 4 has 3 fields, want 2"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadCSV("x.csv", strings.NewReader(tc.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestReadCSVByteOrderMark(t *testing.T) {
	df, err := ReadCSV("bom.csv", strings.NewReader("\ufeffDate,AvgLikes\n2024-09-01,10\n"))
	require.NoError(t, err)
	assert.True(t, df.Has("Date"))
}

func TestFloats(t *testing.T) {
	df := readSocialMedia(t)
	likes, err := df.Floats("Likes")
	require.NoError(t, err)
	assert.Equal(t, []float64{100, 300, 50, 200, 80, 120, 70, 130, 400, 10}, likes)

	_, err = df.Floats("Platform")
	var pe *ParseError
	require.True(t, errors.As(err, &pe), "got %v", err)
	assert.Equal(t, 1, pe.Row)
	assert.Equal(t, "Platform", pe.Column)
	assert.Equal(t, "Instagram", pe.Value)

	_, err = df.Floats("Shares")
	assert.Error(t, err)
}

func TestTimes(t *testing.T) {
	df := readSocialMedia(t)
	times, err := df.Times("PostTimestamp")
	require.NoError(t, err)
	assert.True(t, time.Date(2024, 9, 1, 12, 30, 0, 0, time.UTC).Equal(times[1]), "got %v", times[1])

	for _, s := range []string{"2024-09-01", "2024-09-01T10:00:00Z", "9/1/2024 10:00", "9/1/2024"} {
		tm, err := ParseTime(s)
		require.NoError(t, err, s)
		assert.Equal(t, 2024, tm.Year())
		assert.Equal(t, time.September, tm.Month())
		assert.Equal(t, 1, tm.Day())
	}

	_, err = ParseTime("yesterday")
	assert.Error(t, err)
}

func TestLevelsAndUnique(t *testing.T) {
	df := readSocialMedia(t)
	levels, err := df.Levels("Platform")
	require.NoError(t, err)
	assert.Equal(t, []string{"Facebook", "Instagram", "Twitter"}, levels)

	unique, err := df.Unique("Platform")
	require.NoError(t, err)
	assert.Equal(t, []string{"Instagram", "Facebook", "Twitter"}, unique)
}

func TestFilter(t *testing.T) {
	df := readSocialMedia(t)
	fb, err := df.Filter("Platform", "Facebook")
	require.NoError(t, err)
	assert.Equal(t, 3, fb.N)
	likes, err := fb.Floats("Likes")
	require.NoError(t, err)
	assert.Equal(t, []float64{50, 80, 70}, likes)

	none, err := df.Filter("Platform", "MySpace")
	require.NoError(t, err)
	assert.Equal(t, 0, none.N)
}

func TestGroups(t *testing.T) {
	df := readSocialMedia(t)
	groups, err := df.Groups("AgeGroup", "Likes")
	require.NoError(t, err)
	require.Len(t, groups, 3)
	assert.Equal(t, "18-24", groups[0].Key)
	assert.Equal(t, []float64{100, 200, 120, 400}, groups[0].Values)
	assert.Equal(t, "25-34", groups[1].Key)
	assert.Equal(t, "35-44", groups[2].Key)
	assert.Equal(t, []float64{50, 70, 10}, groups[2].Values)
}

func TestDeriveDate(t *testing.T) {
	df := readSocialMedia(t)
	require.NoError(t, df.DeriveDate("Date", "PostTimestamp"))
	dates, err := df.Strings("Date")
	require.NoError(t, err)
	assert.Equal(t, "2024-09-01", dates[0])
	assert.Equal(t, "2024-09-03", dates[9])

	assert.Error(t, df.DeriveDate("Date", "PostTimestamp"), "column exists")
	assert.Error(t, df.DeriveDate("Day", "Platform"), "not a time")
}

func TestWriteCSV(t *testing.T) {
	df := NewDataFrame("out", "Date", "AvgLikes")
	require.NoError(t, df.AppendRow("2024-09-01", "12.5"))
	require.NoError(t, df.AppendRow("2024-09-02", "7"))
	assert.Error(t, df.AppendRow("2024-09-03"))

	var buf bytes.Buffer
	require.NoError(t, df.WriteCSV(&buf))
	assert.Equal(t, "Date,AvgLikes\n2024-09-01,12.5\n2024-09-02,7\n", buf.String())

	back, err := ReadCSV("back", &buf)
	require.NoError(t, err)
	assert.Equal(t, 2, back.N)
}
