package server

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"github.com/matzehuels/familytree/pkg/errors"
	"github.com/matzehuels/familytree/pkg/family"
	"github.com/matzehuels/familytree/pkg/pipeline"
	"github.com/matzehuels/familytree/pkg/storage"
)

// createRequest is the POST /api/family-tree body. Members is a pointer so
// a missing list can be told apart from an empty one.
type createRequest struct {
	Members       *[]family.Person      `json:"members" validate:"required,dive"`
	Relationships []family.Relationship `json:"relationships"`
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) createDiagram(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "Request body too large", errors.ErrCodeInvalidInput)
			return
		}
		writeError(w, http.StatusBadRequest, "Invalid input: "+err.Error(), errors.ErrCodeInvalidInput)
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err), errors.ErrCodeInvalidInput)
		return
	}

	q := r.URL.Query()
	format := q.Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}
	style := q.Get("style")
	if style == "" {
		style = s.cfg.Render.Style
	}
	opts := pipeline.Options{
		Formats: []string{format},
		Style:   style,
		Layout:  s.cfg.Render.Layout,
		Title:   q.Get("title"),
	}
	if v := q.Get("scale"); v != "" {
		scale, err := strconv.ParseFloat(v, 64)
		if err != nil || scale <= 0 {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid scale %q", v), errors.ErrCodeInvalidInput)
			return
		}
		opts.Scale = scale
	}

	fam := family.Family{Members: *req.Members, Relationships: req.Relationships}
	result, err := s.runner.Execute(ctx, fam, opts)
	if err != nil {
		s.writePipelineError(w, r, err)
		return
	}
	data := result.Artifacts[format]
	contentType := pipeline.ContentType(format)

	saved, err := s.store.Save(ctx, storage.Diagram{
		Format:      format,
		Style:       style,
		ContentType: contentType,
		Data:        data,
		FamilyHash:  result.FamilyHash,
		People:      len(fam.Members),
	})
	if err != nil {
		s.logger.Warn("store diagram", "error", err, "request_id", middleware.GetReqID(ctx))
	} else {
		w.Header().Set(HeaderDiagramID, saved.ID)
	}

	if result.CacheInfo.RenderHit {
		w.Header().Set(HeaderCache, "hit")
	} else {
		w.Header().Set(HeaderCache, "miss")
	}
	writeBytes(w, http.StatusOK, contentType, data)
}

func (s *Server) getDiagram(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !storage.ValidID(id) {
		writeError(w, http.StatusNotFound, "diagram not found", errors.ErrCodeNotFound)
		return
	}

	d, err := s.store.Get(r.Context(), id)
	if stderrors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "diagram not found", errors.ErrCodeNotFound)
		return
	}
	if err != nil {
		s.writePipelineError(w, r, err)
		return
	}

	w.Header().Set(HeaderDiagramID, d.ID)
	writeBytes(w, http.StatusOK, d.ContentType, d.Data)
}

// writePipelineError maps coded errors to status codes: input-shape 400,
// structural 422, everything else 500.
func (s *Server) writePipelineError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.IsInput(err):
		writeError(w, http.StatusBadRequest, errors.UserMessage(err), errors.GetCode(err))
	case errors.IsStructural(err):
		writeError(w, http.StatusUnprocessableEntity, errors.UserMessage(err), errors.GetCode(err))
	default:
		s.logger.Error("generate family tree", "error", err, "request_id", middleware.GetReqID(r.Context()))
		writeJSON(w, http.StatusInternalServerError, internalErrorResponse{
			Error:   "Internal server error",
			Message: err.Error(),
		})
	}
}

// validationMessage turns the first failing field into a client message.
// Clients match on the exact text for a missing members list.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}
	fe := verrs[0]
	if fe.StructField() == "Members" {
		return "Invalid input: members array is required"
	}
	return fmt.Sprintf("Invalid input: %s is %s", fe.Namespace(), fe.Tag())
}
