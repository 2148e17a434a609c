package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestReadXLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"Common Name", "Scientific Name", "Native", "Growth Rate", "Height m", "Notes"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"Croton", "Croton megalocarpus", "yes", "Fast", 25, "Shade tree"}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]any{"", "skipped", "", "", "", ""}))
	require.NoError(t, f.SetSheetRow(sheet, "A4", &[]any{"Neem", "Azadirachta indica", "0", "medium", "n/a", ""}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	rows, err := ReadXLSX(buf)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Croton", rows[0].CommonName)
	assert.Equal(t, "Croton megalocarpus", rows[0].ScientificName)
	assert.True(t, rows[0].Native)
	assert.Equal(t, "fast", rows[0].GrowthRate)
	assert.Equal(t, "Shade tree", rows[0].Description)
	require.NotNil(t, rows[0].MatureHeightMeters)
	assert.Equal(t, 25.0, *rows[0].MatureHeightMeters)

	assert.Equal(t, "Neem", rows[1].CommonName)
	assert.False(t, rows[1].Native)
	assert.Nil(t, rows[1].MatureHeightMeters)
}

func TestReadCSV(t *testing.T) {
	in := "\uFEFFcommon_name,scientific_name,mature_height_meters\nAcacia,Acacia mearnsii,15\n"
	rows, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].MatureHeightMeters)
	assert.Equal(t, 15.0, *rows[0].MatureHeightMeters)
}

func TestMissingNameColumn(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("latin,height\nx,1\n"))
	assert.Error(t, err)
}
