package types

import (
	"github.com/go-playground/validator/v10"
)

// AnalyzeTextRequest scores raw CV text against a job description, no file upload involved.
type AnalyzeTextRequest struct {
	CVText         string `json:"cv_text" validate:"required,min=1"`
	JobDescription string `json:"job_description" validate:"required,min=1"`
}

// RewriteRequest asks for an AI-assisted rewrite of the CV targeted at the job description.
type RewriteRequest struct {
	CVText         string `json:"cv_text" validate:"required,min=1"`
	JobDescription string `json:"job_description" validate:"required,min=1"`
}

// Validate validates the AnalyzeTextRequest using the validator.
func (r *AnalyzeTextRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the RewriteRequest using the validator.
func (r *RewriteRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
