// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/resumatch/resumatch/internal/extract"
)

// previewLength bounds the text preview returned by the upload endpoint.
const previewLength = 500

// UploadHandler handles document upload and file-based analysis requests.
type UploadHandler struct {
	deps           Dependencies
	maxUploadBytes int64
}

// NewUploadHandler creates a new upload handler.
func NewUploadHandler(deps Dependencies) *UploadHandler {
	return &UploadHandler{deps: deps, maxUploadBytes: defaultMaxUploadBytes}
}

// uploadResponse mirrors the OpenAPI schema for POST /api/upload-resume.
type uploadResponse struct {
	Filename    string `json:"filename"`
	SizeBytes   int    `json:"size_bytes"`
	WordCount   int    `json:"word_count"`
	TextPreview string `json:"text_preview"`
}

// HandleUploadResume handles POST /api/upload-resume requests. It extracts
// text from the uploaded document and returns a preview without analyzing.
func (h *UploadHandler) HandleUploadResume(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	filename, data, ok := h.readUpload(w, r)
	if !ok {
		return
	}

	text, err := extract.Text(filename, data)
	if err != nil {
		writeExtractionError(w, err)
		return
	}

	preview := text
	if len(preview) > previewLength {
		preview = preview[:previewLength]
	}
	writeJSON(w, http.StatusOK, uploadResponse{
		Filename:    filename,
		SizeBytes:   len(data),
		WordCount:   len(strings.Fields(text)),
		TextPreview: preview,
	})
}

// HandleAnalyzeFile handles POST /api/analyze-file requests: multipart form
// with a document under "file" and the job description under
// "job_description".
func (h *UploadHandler) HandleAnalyzeFile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	filename, data, ok := h.readUpload(w, r)
	if !ok {
		return
	}

	jobText := r.FormValue("job_description")
	if strings.TrimSpace(jobText) == "" {
		writeError(w, http.StatusBadRequest, "bad_request", errors.New("missing job_description"))
		return
	}

	resumeText, err := extract.Text(filename, data)
	if err != nil {
		writeExtractionError(w, err)
		return
	}

	result, err := h.deps.Analyze(r.Context(), resumeText, jobText)
	if err != nil {
		writeAnalyzeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// readUpload parses the multipart form and returns the uploaded document.
// On failure it writes the error response and returns ok == false.
func (h *UploadHandler) readUpload(w http.ResponseWriter, r *http.Request) (string, []byte, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "file_too_large",
				fmt.Errorf("file exceeds %d bytes", h.maxUploadBytes))
			return "", nil, false
		}
		writeError(w, http.StatusBadRequest, "bad_request", errors.New("invalid multipart form"))
		return "", nil, false
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", errors.New("missing file field"))
		return "", nil, false
	}
	defer func() { _ = file.Close() }()

	if !extract.Supported(header.Filename) {
		writeError(w, http.StatusBadRequest, "unsupported_format",
			fmt.Errorf("unsupported file type; accepted: %s", strings.Join(extract.SupportedExtensions, ", ")))
		return "", nil, false
	}

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", errors.New("could not read file"))
		return "", nil, false
	}
	return header.Filename, data, true
}

// writeExtractionError translates extraction errors into HTTP status codes.
func writeExtractionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, extract.ErrUnsupportedFormat):
		writeError(w, http.StatusBadRequest, "unsupported_format", err)
	case errors.Is(err, extract.ErrNoText):
		writeError(w, http.StatusUnprocessableEntity, "no_text", err)
	default:
		writeError(w, http.StatusUnprocessableEntity, "extraction_failed", errors.New("could not extract text from document"))
	}
}
