package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/goliatone/go-sigstudio/pkg/model"
	"github.com/goliatone/go-sigstudio/pkg/renderers/vcard"
	"github.com/goliatone/go-sigstudio/pkg/state"
	"github.com/goliatone/go-sigstudio/pkg/studio"
)

const (
	maxJSONBody     = 8 << 20
	imageFormField  = "image"
	multipartBuffer = 1 << 20
)

type signatureRequest struct {
	Contact  model.ContactData `json:"contact"`
	Template string            `json:"template,omitempty"`
	Size     string            `json:"size,omitempty"`
	Image    string            `json:"image,omitempty"`
}

type renderResponse struct {
	studio.Output
	Completion int      `json:"completion"`
	Notices    []string `json:"notices,omitempty"`
}

type stateResponse struct {
	state.Snapshot
	Saved bool `json:"saved"`
}

func (s *Server) handleTemplates(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, studio.Templates())
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	sig, err := s.decodeSignature(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	out, err := s.studio.Render(r.Context(), sig)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := renderResponse{Output: out, Completion: sig.Contact.Completion()}
	for _, notice := range sig.Contact.Validate() {
		resp.Notices = append(resp.Notices, notice.String())
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleVCard(w http.ResponseWriter, r *http.Request) {
	sig, err := s.decodeSignature(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	card, err := s.studio.VCard(r.Context(), sig.Contact)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", vcard.ContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": vcard.Filename(sig.Contact)}))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(card)
}

func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.images.MaxBytes()+multipartBuffer)
	if err := r.ParseMultipartForm(multipartBuffer); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			s.writeError(w, r, err)
			return
		}
		s.writeError(w, r, badRequest(fmt.Errorf("invalid upload: %w", err)))
		return
	}
	if r.MultipartForm != nil {
		defer r.MultipartForm.RemoveAll()
	}

	file, _, err := r.FormFile(imageFormField)
	if err != nil {
		s.writeError(w, r, badRequest(fmt.Errorf("missing %q file field", imageFormField)))
		return
	}
	defer file.Close()

	result, err := s.images.Process(r.Context(), file)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleGetState(w http.ResponseWriter, r *http.Request) {
	repo := s.session(w, r)
	snap, found := repo.Load(r.Context())
	writeJSON(w, http.StatusOK, stateResponse{Snapshot: snap, Saved: found})
}

func (s *Server) handlePutState(w http.ResponseWriter, r *http.Request) {
	repo := s.session(w, r)

	var snap state.Snapshot
	if err := decodeJSON(w, r, &snap); err != nil {
		s.writeError(w, r, err)
		return
	}
	snap = snap.Normalized()
	if err := repo.Save(r.Context(), snap); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stateResponse{Snapshot: snap, Saved: true})
}

func (s *Server) handleDeleteState(w http.ResponseWriter, r *http.Request) {
	repo := s.session(w, r)
	if err := repo.Clear(r.Context()); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	repo := s.session(w, r)
	snap, found := repo.Load(r.Context())
	if !found {
		snap.Template = s.opts.DefaultTemplate
		snap.Size = s.opts.DefaultSize
	}

	query := r.URL.Query()
	if raw := query.Get("template"); raw != "" {
		kind, err := model.ParseTemplateKind(raw)
		if err != nil {
			s.writeError(w, r, badRequest(err))
			return
		}
		snap.Template = kind
	}
	if raw := query.Get("size"); raw != "" {
		size, err := model.ParseSizeProfile(raw)
		if err != nil {
			s.writeError(w, r, badRequest(err))
			return
		}
		snap.Size = size
	}

	sig := snap.Signature().Normalized()
	out, err := s.studio.Render(r.Context(), sig)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	page, err := s.pages.Render("preview", map[string]any{
		"name":     sig.Contact.FullName(),
		"template": string(sig.Template),
		"size":     string(sig.Size),
		"theme":    string(snap.Theme),
		"html":     out.HTML,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, page)
}

// decodeSignature parses a render request body. Unknown templates and
// sizes are rejected; empty values take the server defaults.
func (s *Server) decodeSignature(w http.ResponseWriter, r *http.Request) (model.Signature, error) {
	var req signatureRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return model.Signature{}, err
	}

	sig := model.Signature{
		Contact:  req.Contact,
		Template: s.opts.DefaultTemplate,
		Size:     s.opts.DefaultSize,
		Image:    req.Image,
	}
	if req.Template != "" {
		kind, err := model.ParseTemplateKind(req.Template)
		if err != nil {
			return model.Signature{}, badRequest(err)
		}
		sig.Template = kind
	}
	if req.Size != "" {
		size, err := model.ParseSizeProfile(req.Size)
		if err != nil {
			return model.Signature{}, badRequest(err)
		}
		sig.Size = size
	}
	return sig, nil
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	if r.Body == nil {
		return badRequest(errors.New("request body is required"))
	}
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody))
	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return err
		}
		return badRequest(fmt.Errorf("invalid JSON body: %w", err))
	}
	return nil
}
