package profile

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ngmaloney/preflight-terminal/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportImport(t *testing.T) {
	want := sampleProfile()

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, want))
	assert.Contains(t, buf.String(), "full_name: Jason Denisyuk")
	assert.Contains(t, buf.String(), "max_crosswind: 10")

	got, err := Import(&buf)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestImport_PartialDocumentKeepsDefaults(t *testing.T) {
	doc := `
full_name: Amelia Earhart
certificate: cpl
mins:
  min_ceiling: 3000
`
	got, err := Import(strings.NewReader(doc))
	require.NoError(t, err)

	want := models.DefaultProfile()
	want.FullName = "Amelia Earhart"
	want.Certificate = models.CertificateCPL
	want.Mins.MinCeiling = 3000
	assert.Equal(t, want, got)
}

func TestImport_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty", ""},
		{"unknown certificate", "full_name: X Y\ncertificate: ATP\n"},
		{"unknown key", "full_name: X Y\nfavourite_colour: blue\n"},
		{"wrong type", "total_hours: lots\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Import(strings.NewReader(tt.doc))
			assert.Error(t, err)
		})
	}
}
