package api

import (
	"context"
	"errors"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	imagepkg "github.com/tcb-studio/vodunvisual/internal/image"
	"github.com/tcb-studio/vodunvisual/internal/share"
	"github.com/tcb-studio/vodunvisual/internal/theme"
	"github.com/tcb-studio/vodunvisual/internal/util"
	"github.com/tcb-studio/vodunvisual/internal/visual"
)

// Messages shown to users.
const (
	msgNoPhoto      = "Veuillez uploader une photo"
	msgBadFormat    = "Veuillez sélectionner une image au format JPG ou PNG"
	msgNotAccepted  = "Veuillez accepter les conditions"
	msgTooLarge     = "La photo est trop volumineuse"
	msgUnreadable   = "Impossible de lire la photo"
	msgUnknownTheme = "Thème inconnu"
	msgFailed       = "Une erreur est survenue lors de la génération"
)

// Generator produces visuals.
type Generator interface {
	Generate(ctx context.Context, req visual.Request) (*imagepkg.EncodedImage, error)
}

type Options struct {
	MaxPhotoBytes int64
	SharePageURL  string
}

type Handlers struct {
	gen  Generator
	opts Options
	log  zerolog.Logger
	now  func() time.Time
}

func NewHandlers(gen Generator, opts Options, log zerolog.Logger) *Handlers {
	return &Handlers{gen: gen, opts: opts, log: log, now: time.Now}
}

func (h *Handlers) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type themeJSON struct {
	Token       string `json:"token"`
	Name        string `json:"name"`
	Tagline     string `json:"tagline"`
	Background  string `json:"background"`
	AccentLight string `json:"accent_light"`
	AccentDark  string `json:"accent_dark"`
	Chain       string `json:"chain"`
}

func (h *Handlers) themes(c *gin.Context) {
	var out []themeJSON
	for _, t := range theme.All() {
		out = append(out, themeJSON{
			Token:       string(t.Token),
			Name:        t.Name,
			Tagline:     t.Tagline,
			Background:  theme.Hex(t.Background),
			AccentLight: theme.Hex(t.AccentLight),
			AccentDark:  theme.Hex(t.AccentDark),
			Chain:       theme.Hex(t.ChainColor),
		})
	}
	c.JSON(http.StatusOK, gin.H{"themes": out, "default_text": visual.DefaultCustomText})
}

type visualJSON struct {
	Photo      string  `json:"photo"`
	CustomText *string `json:"custom_text"`
	Theme      string  `json:"theme"`
	Format     string  `json:"format"`
	Accepted   bool    `json:"accepted"`
}

// visual accepts a multipart upload or a JSON body carrying the photo as a
// data URI, and answers with the image or, with ?as=datauri, a JSON object.
func (h *Handlers) visual(c *gin.Context) {
	req, form, status, msg := h.bindVisual(c)
	if status != 0 {
		c.JSON(status, gin.H{"error": msg})
		return
	}
	if !form.accepted {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgNotAccepted})
		return
	}

	out, err := h.gen.Generate(c.Request.Context(), req)
	if err != nil {
		status, msg := errorStatus(err)
		h.log.Warn().Err(err).
			Str("request_id", c.GetString(requestIDKey)).
			Int("status", status).
			Msg("visual generation failed")
		c.JSON(status, gin.H{"error": msg})
		return
	}

	filename := out.Filename(h.now())
	if c.Query("as") == "datauri" {
		c.JSON(http.StatusOK, gin.H{
			"data_uri": out.DataURI(),
			"filename": filename,
			"width":    out.Width,
			"height":   out.Height,
		})
		return
	}
	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	c.Data(http.StatusOK, out.ContentType(), out.Data)
}

type visualForm struct {
	accepted bool
}

func (h *Handlers) bindVisual(c *gin.Context) (visual.Request, visualForm, int, string) {
	var req visual.Request
	var form visualForm
	var formatName string

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		fh, err := c.FormFile("photo")
		if err != nil {
			return req, form, http.StatusBadRequest, msgNoPhoto
		}
		f, err := fh.Open()
		if err != nil {
			return req, form, http.StatusBadRequest, msgUnreadable
		}
		defer f.Close()
		data, err := util.ReadLimited(f, h.opts.MaxPhotoBytes)
		if errors.Is(err, util.ErrTooLarge) {
			return req, form, http.StatusRequestEntityTooLarge, msgTooLarge
		}
		if err != nil {
			return req, form, http.StatusBadRequest, msgUnreadable
		}
		if !isJPEGOrPNG(http.DetectContentType(data)) {
			return req, form, http.StatusBadRequest, msgBadFormat
		}
		req.Photo = imagepkg.DataRef(fh.Filename, data)

		req.CustomText = visual.DefaultCustomText
		if text, ok := c.GetPostForm("text"); ok {
			req.CustomText = text
		}
		req.Theme = c.PostForm("theme")
		formatName = c.PostForm("format")
		form.accepted, _ = strconv.ParseBool(c.DefaultPostForm("accepted", "false"))
	} else {
		var body visualJSON
		if err := c.ShouldBindJSON(&body); err != nil {
			return req, form, http.StatusBadRequest, err.Error()
		}
		if body.Photo == "" {
			return req, form, http.StatusBadRequest, msgNoPhoto
		}
		if !isJPEGOrPNG(dataURIMediaType(body.Photo)) {
			return req, form, http.StatusBadRequest, msgBadFormat
		}
		req.Photo = imagepkg.DataURIRef("photo", body.Photo)
		req.CustomText = visual.DefaultCustomText
		if body.CustomText != nil {
			req.CustomText = *body.CustomText
		}
		req.Theme = body.Theme
		formatName = body.Format
		form.accepted = body.Accepted
	}

	if req.Theme == "" {
		req.Theme = string(theme.Green)
	}
	f, err := imagepkg.ParseFormat(formatName)
	if err != nil {
		return req, form, http.StatusBadRequest, err.Error()
	}
	req.Format = f
	return req, form, 0, ""
}

func isJPEGOrPNG(mediaType string) bool {
	switch strings.ToLower(mediaType) {
	case "image/jpeg", "image/jpg", "image/png":
		return true
	}
	return false
}

// dataURIMediaType returns the media type of a data: URI, or "".
func dataURIMediaType(uri string) string {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return ""
	}
	meta, _, ok := strings.Cut(rest, ",")
	if !ok {
		return ""
	}
	mt, _, _ := strings.Cut(meta, ";")
	return strings.TrimSpace(mt)
}

func errorStatus(err error) (int, string) {
	var le *imagepkg.AssetLoadError
	var re *imagepkg.RenderError
	switch {
	case errors.Is(err, util.ErrTooLarge), errors.Is(err, imagepkg.ErrTooManyPixels):
		return http.StatusRequestEntityTooLarge, msgTooLarge
	case errors.As(err, &le):
		return http.StatusUnprocessableEntity, msgUnreadable
	case errors.Is(err, theme.ErrUnknownTheme):
		return http.StatusBadRequest, msgUnknownTheme
	case errors.As(err, &re):
		return http.StatusInternalServerError, msgFailed
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, msgFailed
	}
	return http.StatusInternalServerError, msgFailed
}

func (h *Handlers) shareLink(c *gin.Context) {
	p, err := share.ParsePlatform(c.Param("platform"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	link, err := share.IntentURL(p, h.opts.SharePageURL)
	if errors.Is(err, share.ErrNoWebIntent) {
		c.JSON(http.StatusOK, gin.H{"platform": p, "message": share.InstagramNotice})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"platform": p, "url": link, "caption": share.Caption})
}

// shareQR returns a PNG QR code of the share link for "size" pixels.
func (h *Handlers) shareQR(c *gin.Context) {
	p, err := share.ParsePlatform(c.Param("platform"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	size := 400
	if v, err := strconv.Atoi(c.Query("size")); err == nil {
		size = v
	}
	th, err := theme.Lookup(c.DefaultQuery("theme", string(theme.Green)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgUnknownTheme})
		return
	}
	b, err := share.QRCode(p, h.opts.SharePageURL, size, th.Background)
	switch {
	case errors.Is(err, share.ErrNoWebIntent):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": share.InstagramNotice})
		return
	case err != nil:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}
