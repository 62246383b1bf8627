package infrastructure

import (
	"context"
	"encoding/base64"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// RestyPhotoInliner fetches the profile photo and returns it as a data
// URI so the rendered HTML stays self-contained for the PDF engine.
type RestyPhotoInliner struct {
	client *resty.Client
	log    *zap.Logger
}

func NewRestyPhotoInliner(log *zap.Logger) *RestyPhotoInliner {
	if log == nil {
		log = zap.NewNop()
	}
	client := resty.New().
		SetTimeout(10 * time.Second).
		SetRetryCount(1)
	return &RestyPhotoInliner{client: client, log: log}
}

// Inline returns a data URI for the photo, or "" on any failure; the
// document renders without a photo rather than breaking.
func (p *RestyPhotoInliner) Inline(ctx context.Context, url string) string {
	if url == "" {
		return ""
	}
	if strings.HasPrefix(url, "data:") {
		return url
	}
	resp, err := p.client.R().SetContext(ctx).Get(url)
	if err != nil {
		p.log.Warn("photo fetch failed", zap.String("url", url), zap.Error(err))
		return ""
	}
	if resp.StatusCode() != 200 || len(resp.Body()) == 0 {
		p.log.Warn("photo fetch returned no image", zap.String("url", url), zap.Int("status", resp.StatusCode()))
		return ""
	}
	mime := resp.Header().Get("Content-Type")
	if mime == "" || !strings.HasPrefix(mime, "image/") {
		mime = "image/jpeg"
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(resp.Body())
}
