package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/younextz/screenshot-styler/pkg/buildinfo"
	styerr "github.com/younextz/screenshot-styler/pkg/errors"
	"github.com/younextz/screenshot-styler/pkg/pipeline"
	"github.com/younextz/screenshot-styler/pkg/render"
	"github.com/younextz/screenshot-styler/pkg/render/animation"
	"github.com/younextz/screenshot-styler/pkg/render/code"
	"github.com/younextz/screenshot-styler/pkg/render/frame"
	"github.com/younextz/screenshot-styler/pkg/render/preset"
	"github.com/younextz/screenshot-styler/pkg/settings"
)

type errorResponse struct {
	Code    styerr.Code `json:"code"`
	Message string      `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError hides the details of uncoded errors from clients.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := styerr.GetCode(err)
	msg := styerr.UserMessage(err)

	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge) || strings.Contains(err.Error(), "request body too large"):
		code, msg = styerr.ErrCodeImageTooLarge, "File size must be less than 10MB"
	case code == "":
		code, msg = styerr.ErrCodeInternal, "internal error"
	}
	status := styerr.HTTPStatus(code)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err, "request_id", RequestID(r.Context()))
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

func writeArtifact(w http.ResponseWriter, format string, res *pipeline.Result) {
	h := w.Header()
	h.Set("Content-Type", pipeline.MIME(format))
	h.Set("X-Canvas-Width", strconv.Itoa(res.Geometry.Width))
	h.Set("X-Canvas-Height", strconv.Itoa(res.Geometry.Height))
	if res.CacheInfo.RenderHit {
		h.Set("X-Cache", "hit")
	} else {
		h.Set("X-Cache", "miss")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Artifacts[format])
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": buildinfo.Version})
}

func (s *Server) listPresets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"presets":       preset.All(),
		"default":       preset.DefaultID,
		"aspect_ratios": render.AspectRatios(),
		"animations":    animation.Types(),
	})
}

func (s *Server) listPalettes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"palettes": s.palettes.All()})
}

func (s *Server) listFrames(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"title_bars": []frame.TitleBar{frame.TitleBarNone, frame.TitleBarMacOS, frame.TitleBarWindows},
		"styles":     frame.Styles(),
	})
}

func (s *Server) listCodeThemes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"themes":    code.Themes(),
		"languages": code.Languages(),
		"presets":   code.Presets(),
	})
}

// StyleFields are the styling options shared by every render request.
type StyleFields struct {
	Preset        string `json:"preset,omitempty"`
	Palette       string `json:"palette,omitempty"`
	TitleBar      string `json:"title_bar,omitempty"`
	AspectRatio   string `json:"aspect_ratio,omitempty"`
	FrameStyle    string `json:"frame_style,omitempty"`
	Animation     string `json:"animation,omitempty"`
	Speed         string `json:"speed,omitempty"`
	Animate       bool   `json:"animate,omitempty"`
	ReducedMotion bool   `json:"reduced_motion,omitempty"`
	Format        string `json:"format,omitempty"`
	Refresh       bool   `json:"refresh,omitempty"`
}

func (s *Server) options(f StyleFields) (pipeline.Options, string) {
	format := strings.ToLower(f.Format)
	if format == "" {
		format = pipeline.FormatSVG
	}
	o := pipeline.Options{
		Preset:        f.Preset,
		Palette:       f.Palette,
		TitleBar:      f.TitleBar,
		AspectRatio:   f.AspectRatio,
		FrameStyle:    f.FrameStyle,
		ReducedMotion: f.ReducedMotion || s.reducedMotion,
		Formats:       []string{format},
		Refresh:       f.Refresh,
		PreferRSVG:    s.preferRSVG,
		Logger:        s.logger,
		Palettes:      s.palettes,
		Assets:        s.assets,
	}
	if f.Animate || f.Animation != "" {
		cfg := animation.DefaultConfig(animation.Type(f.Animation), f.Animate)
		if f.Animation != "" {
			cfg.Type = animation.Type(f.Animation)
		}
		if f.Speed != "" {
			cfg.Speed = animation.Speed(f.Speed)
		}
		o.Animation = &cfg
	}
	return o, format
}

func formFields(r *http.Request) StyleFields {
	b := func(key string) bool {
		v, _ := strconv.ParseBool(r.FormValue(key))
		return v
	}
	return StyleFields{
		Preset:        r.FormValue("preset"),
		Palette:       r.FormValue("palette"),
		TitleBar:      r.FormValue("title_bar"),
		AspectRatio:   r.FormValue("aspect_ratio"),
		FrameStyle:    r.FormValue("frame_style"),
		Animation:     r.FormValue("animation"),
		Speed:         r.FormValue("speed"),
		Animate:       b("animate"),
		ReducedMotion: b("reduced_motion"),
		Format:        r.FormValue("format"),
		Refresh:       b("refresh"),
	}
}

func (s *Server) render(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadSize)
	if err := r.ParseMultipartForm(s.maxUploadSize); err != nil {
		if strings.Contains(err.Error(), "request body too large") {
			s.writeError(w, r, err)
			return
		}
		s.writeError(w, r, styerr.Wrap(styerr.ErrCodeInvalidInput, err, "expected a multipart form with an image field"))
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("image")
	if err != nil {
		s.writeError(w, r, styerr.New(styerr.ErrCodeInvalidInput, "missing image field"))
		return
	}
	defer file.Close()
	if err := styerr.ValidateImageSize(header.Size); err != nil {
		s.writeError(w, r, err)
		return
	}

	opts, format := s.options(formFields(r))
	res, err := s.runner.Execute(r.Context(), pipeline.Input{Reader: file, Name: header.Filename}, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeArtifact(w, format, res)
}

// CodeRequest is the body of POST /api/code.
type CodeRequest struct {
	StyleFields
	pipeline.CodeInput
}

func (s *Server) renderCode(w http.ResponseWriter, r *http.Request) {
	var req CodeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	opts, format := s.options(req.StyleFields)
	res, err := s.runner.ExecuteCode(r.Context(), req.CodeInput, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeArtifact(w, format, res)
}

// TweetRequest is the body of POST /api/tweet.
type TweetRequest struct {
	StyleFields
	URL   string `json:"url"`
	Width int    `json:"width,omitempty"`
}

func (s *Server) renderTweet(w http.ResponseWriter, r *http.Request) {
	if s.tweets == nil {
		s.writeError(w, r, styerr.New(styerr.ErrCodeUnsupported, "tweet rendering is not enabled"))
		return
	}
	var req TweetRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	width := req.Width
	if width <= 0 {
		width = s.tweetWidth
	}
	if width < 320 || width > 1600 {
		s.writeError(w, r, styerr.New(styerr.ErrCodeInvalidInput, "width must be between 320 and 1600"))
		return
	}
	opts, format := s.options(req.StyleFields)
	res, err := s.runner.ExecuteTweet(r.Context(), s.tweets, req.URL, width, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeArtifact(w, format, res)
}

func (s *Server) getSettings(w http.ResponseWriter, r *http.Request) {
	stored, err := s.settings.Load(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stored.Resolve(settings.Defaults()))
}

func (s *Server) putSettings(w http.ResponseWriter, r *http.Request) {
	var patch settings.Settings
	if err := decodeJSON(w, r, &patch); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.settings.Save(r.Context(), patch.Sanitize()); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.getSettings(w, r)
}

func (s *Server) deleteSettings(w http.ResponseWriter, r *http.Request) {
	if err := s.settings.Reset(r.Context()); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

const maxJSONBody = 1 << 20

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return styerr.Wrap(styerr.ErrCodeInvalidInput, err, "invalid JSON body")
	}
	return nil
}
