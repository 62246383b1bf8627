package usecase

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"cv-exporter/internal/domain"
	"cv-exporter/internal/model"

	"github.com/yuin/goldmark"
	"go.uber.org/zap"
)

//go:embed templates/cv.html templates/style.css
var templateFS embed.FS

// Renderer rasterizes a self-contained HTML document to a PDF.
type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// CVRepo fetches the raw aggregate. A nil result with a nil error
// means no CV has been configured yet.
type CVRepo interface {
	FetchRawCV(ctx context.Context) (*domain.RawCV, error)
}

// PhotoInliner turns a photo URL into an embeddable data URI. Failures
// degrade to "" (document renders without a photo).
type PhotoInliner interface {
	Inline(ctx context.Context, url string) string
}

// Notifier receives user-facing degradation events. It is injected
// rather than registered globally so the pipeline stays free of UI
// concerns.
type Notifier interface {
	Notify(event, detail string)
}

type noopNotifier struct{}

func (noopNotifier) Notify(string, string) {}

type Exporter struct {
	repo     CVRepo
	renderer Renderer
	photos   PhotoInliner
	notifier Notifier
	log      *zap.Logger
	tpl      *template.Template
	css      string
}

func NewExporter(repo CVRepo, renderer Renderer, photos PhotoInliner, notifier Notifier, log *zap.Logger) (*Exporter, error) {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	tpl, err := template.New("cv.html").Funcs(templateFuncs()).ParseFS(templateFS, "templates/cv.html")
	if err != nil {
		return nil, fmt.Errorf("parse cv template: %w", err)
	}
	css, err := templateFS.ReadFile("templates/style.css")
	if err != nil {
		return nil, fmt.Errorf("read stylesheet: %w", err)
	}
	return &Exporter{
		repo:     repo,
		renderer: renderer,
		photos:   photos,
		notifier: notifier,
		log:      log,
		tpl:      tpl,
		css:      string(css),
	}, nil
}

// Preview builds the DocumentModel for the interactive screen preview.
// It never fails: a fetch error or an unconfigured CV degrades to the
// empty-defaults document.
func (e *Exporter) Preview(ctx context.Context, locale string) *domain.DocumentModel {
	raw := e.fetch(ctx)
	return Normalize(raw, locale)
}

// ExportPDF builds the document, renders it to HTML and rasterizes an
// A4 PDF. When no CV exists the built-in sample document is used so a
// download always carries plausible content. Rasterization is the one
// failure that propagates; no partial PDF is ever returned.
func (e *Exporter) ExportPDF(ctx context.Context, locale string) ([]byte, string, error) {
	locale = NormalizeLocale(locale)

	raw := e.fetch(ctx)
	var doc *domain.DocumentModel
	if raw == nil {
		doc = SampleDocument(locale)
	} else {
		doc = Normalize(raw, locale)
	}

	if err := model.ValidateDocument(doc); err != nil {
		// advisory only: a schema drift must not block the download
		e.log.Warn("document failed schema validation", zap.Error(err))
	}

	html, err := e.renderHTML(ctx, doc)
	if err != nil {
		return nil, "", fmt.Errorf("render html: %w", err)
	}

	pdf, err := e.renderPDF(ctx, html)
	if err != nil {
		return nil, "", err
	}
	return pdf, ExportFilename(doc.Profile.FullName, locale), nil
}

func (e *Exporter) fetch(ctx context.Context) *domain.RawCV {
	if e.repo == nil {
		return nil
	}
	raw, err := e.repo.FetchRawCV(ctx)
	if err != nil {
		e.log.Warn("cv fetch failed, using fallback document", zap.Error(err))
		e.notifier.Notify("cv_fetch_failed", err.Error())
		return nil
	}
	return raw
}

func (e *Exporter) renderHTML(ctx context.Context, doc *domain.DocumentModel) (string, error) {
	photo := ""
	if e.photos != nil && doc.Profile.PhotoURL != "" {
		photo = e.photos.Inline(ctx, doc.Profile.PhotoURL)
	}

	var buf bytes.Buffer
	data := map[string]any{
		"Doc":   doc,
		"CSS":   template.CSS(e.css),
		"Photo": photo,
	}
	if err := e.tpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// renderPDF retries rasterization with exponential backoff and rejects
// output missing the %PDF signature.
func (e *Exporter) renderPDF(ctx context.Context, html string) ([]byte, error) {
	const attempts = 3
	var lastErr error
	for i := 0; i < attempts; i++ {
		pdf, err := e.renderer.RenderHTMLToPDF(ctx, html)
		if err == nil {
			if len(pdf) > 0 && bytes.HasPrefix(pdf, []byte("%PDF")) {
				return pdf, nil
			}
			err = fmt.Errorf("invalid PDF output (len=%d)", len(pdf))
		}
		lastErr = err
		e.log.Warn("pdf render attempt failed", zap.Int("attempt", i+1), zap.Error(err))
		if i < attempts-1 {
			backoff := time.Duration(1<<i) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, fmt.Errorf("pdf rendering failed after %d attempts: %w", attempts, lastErr)
}

// ExportFilename builds the attachment name, e.g. "Loïc_Ghanem_CV_EN.pdf".
func ExportFilename(fullName, locale string) string {
	name := strings.TrimSpace(fullName)
	if name == "" {
		name = "CV"
	}
	name = strings.ReplaceAll(name, " ", "_")
	return fmt.Sprintf("%s_CV_%s.pdf", name, strings.ToUpper(NormalizeLocale(locale)))
}

func templateFuncs() template.FuncMap {
	md := goldmark.New()
	return template.FuncMap{
		"markdown": func(s string) template.HTML {
			var buf bytes.Buffer
			if err := md.Convert([]byte(s), &buf); err != nil {
				return template.HTML(template.HTMLEscapeString(s))
			}
			return template.HTML(buf.String())
		},
		"year": func(iso *string) string {
			if iso == nil || len(*iso) < 4 {
				return ""
			}
			return (*iso)[:4]
		},
		"period": periodLabel,
	}
}

// periodLabel renders an item's date span: an authored dateRange wins,
// otherwise start/end years, with the locale's "present" word for
// open-ended ranges. An item without any date renders no period.
func periodLabel(it domain.Item, labels domain.Labels) string {
	if it.DateRange != "" {
		return it.DateRange
	}
	start := ""
	if it.StartDate != nil && len(*it.StartDate) >= 4 {
		start = (*it.StartDate)[:4]
	}
	end := ""
	if it.IsCurrent {
		end = labels.Present
	} else if it.EndDate != nil && len(*it.EndDate) >= 4 {
		end = (*it.EndDate)[:4]
	}
	switch {
	case start == "" && end == "":
		return ""
	case end == "":
		return start
	case start == "":
		return end
	default:
		return start + " – " + end
	}
}
