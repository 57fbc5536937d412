package handler

import (
	"bytes"
	"net/http"
	"net/url"

	"pdf-toolkit/internal/domain"
	"pdf-toolkit/internal/i18n"
)

// UIHandler serves the single-page upload form
type UIHandler struct {
	localizer *i18n.Localizer
	logger    domain.Logger
}

// NewUIHandler creates the UI handler
func NewUIHandler(localizer *i18n.Localizer, logger domain.Logger) *UIHandler {
	return &UIHandler{localizer: localizer, logger: logger}
}

type toolOption struct {
	Value    domain.Operation
	Label    string
	Selected bool
}

type pageData struct {
	Lang      i18n.Lang
	OtherLang i18n.Lang
	OtherURL  string
	Tool      domain.Operation
	ToolLabel string
	Tools     []toolOption
	Angles    []domain.Angle
	Action    string

	localizer *i18n.Localizer
}

// T translates a UI key for the page language
func (d pageData) T(key string, args ...interface{}) string {
	return d.localizer.Text(d.Lang, key, args...)
}

// Index handles GET / with optional "tool" and "lang" query values
func (h *UIHandler) Index(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lang := h.localizer.Resolve(q.Get("lang"), r.Header.Get("Accept-Language"))

	tool := domain.OperationMerge
	for _, op := range domain.Operations {
		if string(op) == q.Get("tool") {
			tool = op
		}
	}

	other := i18n.Chinese
	if lang == i18n.Chinese {
		other = i18n.English
	}
	otherQuery := url.Values{"tool": {string(tool)}, "lang": {string(other)}}

	data := pageData{
		Lang:      lang,
		OtherLang: other,
		OtherURL:  "/?" + otherQuery.Encode(),
		Tool:      tool,
		Angles:    domain.Angles,
		Action:    "/api/v1/pdf/" + string(tool),
		localizer: h.localizer,
	}
	for _, op := range domain.Operations {
		data.Tools = append(data.Tools, toolOption{
			Value:    op,
			Label:    h.localizer.Text(lang, string(op)),
			Selected: op == tool,
		})
	}
	data.ToolLabel = h.localizer.Text(lang, string(tool))

	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, data); err != nil {
		h.logger.Error("Failed to render index page", err)
		writeError(w, http.StatusInternalServerError, "Failed to render page")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
