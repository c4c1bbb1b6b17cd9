package gofpdf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"borequote/internal/core/types"
	"borequote/internal/domain/quotation"
	qpdf "borequote/internal/domain/quotation/pdf"
	"borequote/internal/domain/settings"
)

func sampleQuotation(t *testing.T) quotation.Quotation {
	t.Helper()
	items := []quotation.Item{
		quotation.NewItem(`Boring 5"`, types.MustMoney("2"), types.MustMoney("180")),
		quotation.NewItem("Casing ISO", types.MustMoney("1"), types.MustMoney("450")),
	}
	return quotation.Quotation{
		QuotationNumber: "BQ260001",
		CustomerName:    "Patel Farm",
		Date:            time.Date(2026, 7, 15, 0, 0, 0, 0, time.Local),
		Items:           items,
		Notes:           quotation.DefaultNotes,
		Total:           quotation.GrandTotal(items),
	}
}

func TestGenerate_CoreFonts(t *testing.T) {
	g := New(Options{})
	data, err := g.Generate(sampleQuotation(t), settings.DefaultBusinessCard())
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestGenerate_NoNotes(t *testing.T) {
	q := sampleQuotation(t)
	q.Notes = ""
	data, err := New(Options{}).Generate(q, settings.DefaultBusinessCard())
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestGenerate_MissingFontDir(t *testing.T) {
	g := New(Options{FontDir: "/nonexistent/fonts"})
	_, err := g.Generate(sampleQuotation(t), settings.DefaultBusinessCard())
	require.Error(t, err)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "Quotation_BQ260001.pdf", qpdf.Filename(sampleQuotation(t)))
}
