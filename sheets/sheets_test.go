package sheets

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/danielhkuo/quickly-score/models"
)

func TestReadRubricRows_CSV(t *testing.T) {
	input := strings.Join([]string{
		"Round1,Pitch,Accuracy of pitch,10",
		"Round1, Rhythm ,,15.0",
		",,,",
		"Round2,Tone",
		"Round2,Presence,,ten",
	}, "\n")

	rows, err := ReadRubricRows("rubric.CSV", strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []models.RubricRow{
		{SetName: "Round1", ItemName: "Pitch", Description: "Accuracy of pitch", MaxScore: 10},
		{SetName: "Round1", ItemName: "Rhythm", Description: "", MaxScore: 15},
		{SetName: "Round2", ItemName: "Tone", Description: "", MaxScore: 0},
		{SetName: "Round2", ItemName: "Presence", Description: "", MaxScore: 0},
	}, rows)
}

func TestReadContestantRows_CSV(t *testing.T) {
	rows, err := ReadContestantRows("people.csv", strings.NewReader("Alice,Piano\n,\nBob\n"))
	require.NoError(t, err)

	assert.Equal(t, []models.ContestantRow{
		{Name: "Alice", Info: "Piano"},
		{Name: "Bob", Info: ""},
	}, rows)
}

func TestReadRubricRows_XLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"Round1", "Pitch", "Accuracy", 10}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]interface{}{"Round1", "Rhythm", "", 7.0}))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	rows, err := ReadRubricRows("rubric.xlsx", bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	assert.Equal(t, []models.RubricRow{
		{SetName: "Round1", ItemName: "Pitch", Description: "Accuracy", MaxScore: 10},
		{SetName: "Round1", ItemName: "Rhythm", Description: "", MaxScore: 7},
	}, rows)
}

func TestReadRows_ParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		content  string
	}{
		{"unsupported extension", "rubric.txt", "Round1,Pitch,,10"},
		{"no extension", "rubric", "Round1,Pitch,,10"},
		{"bare quote", "rubric.csv", "Round1,Pi\"tch,,10"},
		{"not a workbook", "rubric.xlsx", "definitely not a zip archive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadRubricRows(tt.filename, strings.NewReader(tt.content))
			require.ErrorIs(t, err, ErrParse)

			_, err = ReadContestantRows(tt.filename, strings.NewReader(tt.content))
			require.ErrorIs(t, err, ErrParse)
		})
	}
}

func TestParseScore(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"10", 10},
		{"-3", -3},
		{"10.0", 10},
		{"9.6", 10},
		{"abc", 0},
		{"NaN", 0},
		{"Inf", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseScore(tt.in), "parseScore(%q)", tt.in)
	}
}
