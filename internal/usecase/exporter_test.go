package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"cv-exporter/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRepo struct {
	raw *domain.RawCV
	err error
}

func (f *fakeRepo) FetchRawCV(ctx context.Context) (*domain.RawCV, error) {
	return f.raw, f.err
}

type fakeRenderer struct {
	outputs [][]byte
	errs    []error
	calls   int
}

func (f *fakeRenderer) RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error) {
	i := f.calls
	f.calls++
	if i >= len(f.outputs) {
		i = len(f.outputs) - 1
	}
	return f.outputs[i], f.errs[i]
}

type captureNotifier struct {
	events []string
}

func (c *captureNotifier) Notify(event, detail string) {
	c.events = append(c.events, event)
}

func pdfBytes() []byte {
	return []byte("%PDF-1.4 fake body")
}

func newTestExporter(t *testing.T, repo CVRepo, renderer Renderer, notifier Notifier) *Exporter {
	t.Helper()
	e, err := NewExporter(repo, renderer, nil, notifier, zap.NewNop())
	require.NoError(t, err)
	return e
}

func TestPreviewFetchFailureFallsBackToDefaults(t *testing.T) {
	notifier := &captureNotifier{}
	e := newTestExporter(t, &fakeRepo{err: errors.New("db down")}, nil, notifier)

	doc := e.Preview(context.Background(), "en")
	require.NotNil(t, doc)
	assert.Equal(t, "Loïc Ghanem", doc.Profile.FullName)
	// the preview fallback is the empty-defaults document, not the sample
	assert.False(t, doc.Sample)
	assert.Empty(t, doc.Main)
	assert.Equal(t, []string{"cv_fetch_failed"}, notifier.events)
}

func TestExportPDFUsesSampleWhenUnconfigured(t *testing.T) {
	renderer := &fakeRenderer{outputs: [][]byte{pdfBytes()}, errs: []error{nil}}
	e := newTestExporter(t, &fakeRepo{}, renderer, nil)

	pdf, filename, err := e.ExportPDF(context.Background(), "en")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(pdf), "%PDF"))
	assert.Equal(t, "Loïc_Ghanem_CV_EN.pdf", filename)
	assert.Equal(t, 1, renderer.calls)
}

func TestExportPDFRetriesOnRenderFailure(t *testing.T) {
	renderer := &fakeRenderer{
		outputs: [][]byte{nil, pdfBytes()},
		errs:    []error{errors.New("chrome crashed"), nil},
	}
	e := newTestExporter(t, &fakeRepo{}, renderer, nil)

	pdf, _, err := e.ExportPDF(context.Background(), "fr")
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Equal(t, 2, renderer.calls)
}

func TestExportPDFRejectsMissingSignature(t *testing.T) {
	renderer := &fakeRenderer{
		outputs: [][]byte{[]byte("<html>not a pdf</html>"), pdfBytes()},
		errs:    []error{nil, nil},
	}
	e := newTestExporter(t, &fakeRepo{}, renderer, nil)

	pdf, _, err := e.ExportPDF(context.Background(), "en")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(pdf), "%PDF"))
	assert.Equal(t, 2, renderer.calls)
}

func TestExportPDFPropagatesPersistentRenderFailure(t *testing.T) {
	renderer := &fakeRenderer{
		outputs: [][]byte{nil},
		errs:    []error{errors.New("no chrome binary")},
	}
	e := newTestExporter(t, &fakeRepo{}, renderer, nil)

	pdf, _, err := e.ExportPDF(context.Background(), "en")
	require.Error(t, err)
	assert.Nil(t, pdf)
	assert.Equal(t, 3, renderer.calls)
}

func TestRenderHTMLContainsDocumentContent(t *testing.T) {
	e := newTestExporter(t, &fakeRepo{}, nil, nil)

	doc := SampleDocument("en")
	html, err := e.renderHTML(context.Background(), doc)
	require.NoError(t, err)

	assert.Contains(t, html, "Loïc Ghanem")
	assert.Contains(t, html, "Composer &amp; Producer")
	assert.Contains(t, html, "#D5FF0A")
	assert.Contains(t, html, "Freelance Composer")
	assert.Contains(t, html, "Ableton Live")
}

func TestRenderHTMLMarkdownBio(t *testing.T) {
	e := newTestExporter(t, &fakeRepo{}, nil, nil)

	doc := Normalize(nil, "en")
	doc.Profile.Bio = "Scores for **film** and games."
	html, err := e.renderHTML(context.Background(), doc)
	require.NoError(t, err)
	assert.Contains(t, html, "<strong>film</strong>")
}

func TestExportFilename(t *testing.T) {
	assert.Equal(t, "Loïc_Ghanem_CV_FR.pdf", ExportFilename("Loïc Ghanem", "fr"))
	assert.Equal(t, "Loïc_Ghanem_CV_EN.pdf", ExportFilename("Loïc Ghanem", "en"))
	assert.Equal(t, "CV_CV_EN.pdf", ExportFilename("  ", "en"))
	assert.Equal(t, "X_CV_EN.pdf", ExportFilename("X", "unknown"))
}

func TestSampleDocumentShape(t *testing.T) {
	for _, locale := range []string{"fr", "en"} {
		doc := SampleDocument(locale)
		assert.True(t, doc.Sample)
		require.Len(t, doc.Main, 2)
		assert.Equal(t, "experience", doc.Main[0].Type)
		assert.Equal(t, "education", doc.Main[1].Type)
		assert.NotEmpty(t, doc.Main[0].Items)
		assert.NotEmpty(t, doc.Main[1].Items)
		assert.Len(t, doc.SkillBars, 3)
	}
}

func TestPeriodLabel(t *testing.T) {
	labels := LabelsFor("en")
	start := "2019-01-01T00:00:00.000Z"
	end := "2023-06-30T00:00:00.000Z"

	assert.Equal(t, "2019 – 2023", periodLabel(domain.Item{StartDate: &start, EndDate: &end}, labels))
	assert.Equal(t, "2019 – Present", periodLabel(domain.Item{StartDate: &start, IsCurrent: true}, labels))
	assert.Equal(t, "2019", periodLabel(domain.Item{StartDate: &start}, labels))
	assert.Equal(t, "", periodLabel(domain.Item{}, labels))
	// an authored range always wins
	assert.Equal(t, "Since forever", periodLabel(domain.Item{StartDate: &start, DateRange: "Since forever"}, labels))
}
