package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-optimizer/internal/ats"
	"github.com/jonathan/cv-optimizer/internal/extraction"
)

var scoreCmd = &cobra.Command{
	Use:   "score <cv-file> <job-description-file>",
	Short: "Score a resume against a job description offline",
	Long:  `Score a resume file (.txt, .md, .pdf or .docx) against a job description file and print the full report as JSON. No server or database required.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runScore,
}

func init() {
	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, args []string) error {
	cvText, err := loadDocument(args[0])
	if err != nil {
		return fmt.Errorf("failed to load CV: %w", err)
	}
	jobText, err := loadDocument(args[1])
	if err != nil {
		return fmt.Errorf("failed to load job description: %w", err)
	}

	engine := ats.NewEngine(ats.DefaultBank())
	report := engine.Evaluate(cvText, jobText)

	out := map[string]any{
		"report":           report,
		"readability":      ats.AnalyzeReadability(cvText),
		"ats_friendliness": ats.CheckLayout(cvText),
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// loadDocument reads a file and extracts its plain text.
func loadDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return extraction.ExtractText(filepath.Base(path), "", data)
}
