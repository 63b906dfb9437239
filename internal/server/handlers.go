package server

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/AlenSaijo/career-roadmap-generator/internal/extraction"
	"github.com/AlenSaijo/career-roadmap-generator/internal/fetch"
	"github.com/AlenSaijo/career-roadmap-generator/internal/ingestion"
	"github.com/AlenSaijo/career-roadmap-generator/internal/interview"
	"github.com/AlenSaijo/career-roadmap-generator/internal/parsing"
	"github.com/AlenSaijo/career-roadmap-generator/internal/quiz"
	"github.com/AlenSaijo/career-roadmap-generator/internal/report"
	"github.com/AlenSaijo/career-roadmap-generator/internal/salary"
	"github.com/AlenSaijo/career-roadmap-generator/internal/scoring"
	"github.com/AlenSaijo/career-roadmap-generator/internal/types"
)

// maxUploadSize caps resume uploads at 10 MiB.
const maxUploadSize = 10 << 20

// interviewQuestions samples questions with the production randomness
// source; tests replace it with a deterministic stub.
var interviewQuestions = func(role string) []string {
	return interview.Questions(role, nil)
}

// InterviewQuestionsResponse wraps the sampled questions for
// /api/interview-questions.
type InterviewQuestionsResponse struct {
	Questions []string `json:"questions"`
}

// handleGenerate builds the full career-development report.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req types.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, (&ErrValidation{Field: "hours_per_day", Message: err.Error()}).Error())
		return
	}

	jobDescription := req.JobDescription
	if jobDescription == "" && req.JobURL != "" {
		fetched, err := fetch.JobPosting(r.Context(), req.JobURL, nil)
		if err != nil {
			log.Printf("job posting fetch failed: %v", err)
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
		jobDescription = fetched
	}

	hours := req.HoursPerDay
	if hours == 0 {
		hours = s.hoursPerDay
	}

	rep := report.Generate(report.Options{
		Resume:         req.Resume,
		JobDescription: jobDescription,
		JobTitle:       req.JobTitle,
		HoursPerDay:    hours,
		FutureCategory: s.futureCategory,
	})

	// Older clients read the verdict from a "feedback" field.
	rep.ExtraFeatures.ResumeAnalysis.Feedback = rep.ExtraFeatures.ResumeAnalysis.Message

	s.jsonResponse(w, http.StatusOK, rep)
}

// handleUploadResume extracts text from an uploaded resume file and
// returns the qualification assessment against the supplied job
// description.
func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	if header.Filename == "" {
		s.errorResponse(w, http.StatusBadRequest, "No selected file")
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize))
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to read file: "+err.Error())
		return
	}

	resumeText, err := ingestion.ExtractText(header.Filename, data)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	jobDescription := r.FormValue("job_description")
	s.jsonResponse(w, http.StatusOK, scoring.Assess(resumeText, jobDescription))
}

// handleValidateSkill returns the quiz item for a skill.
func (s *Server) handleValidateSkill(w http.ResponseWriter, r *http.Request) {
	var req types.QuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, quiz.Lookup(req.Skill))
}

// handleInterviewQuestions returns up to five sampled questions for a role.
func (s *Server) handleInterviewQuestions(w http.ResponseWriter, r *http.Request) {
	var req types.InterviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	questions := interviewQuestions(req.Role)
	s.jsonResponse(w, http.StatusOK, InterviewQuestionsResponse{Questions: questions})
}

// handleSalaryPrediction returns a salary band for a role and experience.
func (s *Server) handleSalaryPrediction(w http.ResponseWriter, r *http.Request) {
	var req types.SalaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, (&ErrValidation{Field: "experience", Message: err.Error()}).Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, salary.Predict(req.Role, float64(req.Experience)))
}

// handleAnalyzeProfile returns the candidate profile for resume text.
func (s *Server) handleAnalyzeProfile(w http.ResponseWriter, r *http.Request) {
	var req types.ProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, extraction.AnalyzeProfile(req.Resume, req.Github, req.Linkedin))
}

// handleAnalyzeJob returns the derived requirements for a job description.
func (s *Server) handleAnalyzeJob(w http.ResponseWriter, r *http.Request) {
	var req types.JobAnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, parsing.AnalyzeJob(req.JobDescription))
}
