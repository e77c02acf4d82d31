// Package server provides the HTTP REST API for the CV optimizer.
package server

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/cv-optimizer/internal/ats"
	"github.com/jonathan/cv-optimizer/internal/db"
	"github.com/jonathan/cv-optimizer/internal/extraction"
	"github.com/jonathan/cv-optimizer/internal/server/middleware"
	"github.com/jonathan/cv-optimizer/internal/types"
)

// AnalysisResponse is the full scoring payload returned by the analyze endpoints.
type AnalysisResponse struct {
	AnalysisID  uuid.UUID       `json:"analysis_id"`
	ResumeID    *uuid.UUID      `json:"resume_id,omitempty"`
	Report      *ats.Report     `json:"report"`
	Readability ats.Readability `json:"readability"`
	Layout      ats.LayoutCheck `json:"ats_friendliness"`
	Suggestions []string        `json:"suggestions"`
}

// RewriteResponse carries the AI-assisted rewrite.
type RewriteResponse struct {
	RewrittenText string `json:"rewritten_text"`
}

// handleUploadResume stores an uploaded resume file after extracting its text.
func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)
	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		http.Error(w, "Invalid multipart form or file too large", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "Missing file field", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "Failed to read upload", http.StatusBadRequest)
		return
	}

	contentType := header.Header.Get("Content-Type")
	text, err := extraction.ExtractText(header.Filename, contentType, data)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(text) == "" {
		emptyErr := &ErrEmptyDocument{What: "cv"}
		http.Error(w, emptyErr.Error(), HTTPStatus(emptyErr))
		return
	}

	resumeID, err := s.db.CreateResume(r.Context(), userID, header.Filename, contentType, text)
	if err != nil {
		log.Printf("[resumes] failed to store upload: %v", err)
		http.Error(w, "Failed to store resume", http.StatusInternalServerError)
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{
		"id":           resumeID,
		"filename":     header.Filename,
		"content_type": contentType,
		"chars":        len(text),
	})
}

// handleListResumes lists the caller's uploaded resumes.
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	limit := parseLimit(r, 50)
	resumes, err := s.db.ListResumes(r.Context(), userID, limit)
	if err != nil {
		http.Error(w, "Failed to list resumes", http.StatusInternalServerError)
		return
	}
	if resumes == nil {
		resumes = []db.Resume{}
	}
	s.jsonResponse(w, http.StatusOK, resumes)
}

// handleAnalyze scores an uploaded file (or a stored resume) against a job
// description supplied as a form field.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)
	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		http.Error(w, "Invalid multipart form or file too large", http.StatusBadRequest)
		return
	}

	jobDescription := strings.TrimSpace(r.FormValue("job_description"))
	if jobDescription == "" {
		emptyErr := &ErrEmptyDocument{What: "job description"}
		http.Error(w, emptyErr.Error(), HTTPStatus(emptyErr))
		return
	}

	var resumeText string
	var resumeID *uuid.UUID

	if file, header, err := r.FormFile("file"); err == nil {
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			http.Error(w, "Failed to read upload", http.StatusBadRequest)
			return
		}
		contentType := header.Header.Get("Content-Type")
		resumeText, err = extraction.ExtractText(header.Filename, contentType, data)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		// Keep the upload so the user can re-run analyses against it.
		id, err := s.db.CreateResume(r.Context(), userID, header.Filename, contentType, resumeText)
		if err != nil {
			log.Printf("[analyze] failed to store upload: %v", err)
		} else {
			resumeID = &id
		}
	} else if idStr := r.FormValue("resume_id"); idStr != "" {
		id, err := uuid.Parse(idStr)
		if err != nil {
			http.Error(w, "Invalid resume_id", http.StatusBadRequest)
			return
		}
		resume, err := s.db.GetResume(r.Context(), userID, id)
		if err != nil {
			http.Error(w, "Failed to load resume", http.StatusInternalServerError)
			return
		}
		if resume == nil {
			notFound := &ErrResumeNotFound{ResumeID: id}
			http.Error(w, notFound.Error(), HTTPStatus(notFound))
			return
		}
		resumeText = resume.TextContent
		resumeID = &resume.ID
	} else {
		http.Error(w, "Provide a file upload or resume_id", http.StatusBadRequest)
		return
	}

	s.runAnalysis(w, r, userID, resumeID, resumeText, jobDescription)
}

// handleAnalyzeText scores raw CV text sent as JSON.
func (s *Server) handleAnalyzeText(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req types.AnalyzeTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		http.Error(w, extractValidationErrors(err), http.StatusBadRequest)
		return
	}

	s.runAnalysis(w, r, userID, nil, req.CVText, req.JobDescription)
}

// runAnalysis executes the scoring pipeline and persists the result.
func (s *Server) runAnalysis(w http.ResponseWriter, r *http.Request, userID uuid.UUID, resumeID *uuid.UUID, resumeText, jobDescription string) {
	if strings.TrimSpace(resumeText) == "" {
		emptyErr := &ErrEmptyDocument{What: "cv"}
		http.Error(w, emptyErr.Error(), HTTPStatus(emptyErr))
		return
	}
	if strings.TrimSpace(jobDescription) == "" {
		emptyErr := &ErrEmptyDocument{What: "job description"}
		http.Error(w, emptyErr.Error(), HTTPStatus(emptyErr))
		return
	}

	report := s.engine.Evaluate(resumeText, jobDescription)
	readability := ats.AnalyzeReadability(resumeText)
	layout := ats.CheckLayout(resumeText)

	suggestions, err := s.advisor.Suggestions(r.Context(), resumeText, jobDescription, report.GapsRequired)
	if err != nil {
		log.Printf("[analyze] suggestions failed: %v", err)
		suggestions = []string{}
	}

	analysisID, err := s.db.SaveAnalysis(r.Context(), userID, resumeID, jobDescription, report.ScoreOverall, report)
	if err != nil {
		log.Printf("[analyze] failed to save analysis: %v", err)
		http.Error(w, "Failed to save analysis", http.StatusInternalServerError)
		return
	}

	s.jsonResponse(w, http.StatusOK, AnalysisResponse{
		AnalysisID:  analysisID,
		ResumeID:    resumeID,
		Report:      report,
		Readability: readability,
		Layout:      layout,
		Suggestions: suggestions,
	})
}

// handleRewrite produces an AI-assisted rewrite. Pro users only.
func (s *Server) handleRewrite(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	user, err := s.db.GetUser(r.Context(), userID)
	if err != nil {
		http.Error(w, "Failed to load user", http.StatusInternalServerError)
		return
	}
	if user == nil {
		notFound := &ErrUserNotFound{UserID: userID}
		http.Error(w, notFound.Error(), HTTPStatus(notFound))
		return
	}
	if !user.IsPro {
		proErr := &ErrProRequired{}
		http.Error(w, proErr.Error(), HTTPStatus(proErr))
		return
	}

	var req types.RewriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		http.Error(w, extractValidationErrors(err), http.StatusBadRequest)
		return
	}

	rewritten, err := s.advisor.Rewrite(r.Context(), req.CVText, req.JobDescription)
	if err != nil {
		http.Error(w, "Failed to rewrite", http.StatusInternalServerError)
		return
	}

	s.jsonResponse(w, http.StatusOK, RewriteResponse{RewrittenText: rewritten})
}

// handleListAnalyses lists the caller's analysis history.
func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	limit := parseLimit(r, 50)
	analyses, err := s.db.ListAnalyses(r.Context(), userID, limit)
	if err != nil {
		http.Error(w, "Failed to list analyses", http.StatusInternalServerError)
		return
	}
	if analyses == nil {
		analyses = []db.AnalysisSummary{}
	}
	s.jsonResponse(w, http.StatusOK, analyses)
}

// handleGetAnalysis returns a stored analysis with its full report.
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, "Invalid analysis ID", http.StatusBadRequest)
		return
	}

	analysis, err := s.db.GetAnalysis(r.Context(), userID, id)
	if err != nil {
		http.Error(w, "Failed to load analysis", http.StatusInternalServerError)
		return
	}
	if analysis == nil {
		http.Error(w, "Analysis not found", http.StatusNotFound)
		return
	}
	s.jsonResponse(w, http.StatusOK, analysis)
}

// parseLimit reads a ?limit= query parameter with a default.
func parseLimit(r *http.Request, def int) int {
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}
