package handler

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/hiredeck/ats-service/internal/config"
	"github.com/hiredeck/ats-service/internal/dto"
	"github.com/hiredeck/ats-service/internal/middleware"
	"github.com/hiredeck/ats-service/internal/store"
	"github.com/hiredeck/ats-service/internal/util"
)

type CandidateHandler struct {
	store *store.Store
}

func NewCandidateHandler(s *store.Store) *CandidateHandler {
	return &CandidateHandler{store: s}
}

func (h *CandidateHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/apply/:token", h.JobInfo)
	app.Post("/api/submit_application/:token", middleware.RateLimiter(1, 4*time.Second), h.SubmitApplication)
}

// JobInfo backs the candidate application form with the posting details.
func (h *CandidateHandler) JobInfo(c *fiber.Ctx) error {
	token := c.Params("token")
	job, ok := h.store.Job(token)
	if !ok {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "Invalid token",
		})
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get job",
		Data:    fiber.Map{"token": token, "designation": job.Designation, "jd": job.JD},
	})
}

func (h *CandidateHandler) SubmitApplication(c *fiber.Ctx) error {
	token := c.Params("token")
	if _, ok := h.store.Job(token); !ok {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "Invalid token",
		})
	}

	name := c.FormValue("name")
	email := c.FormValue("email")
	education := c.FormValue("education")
	college := c.FormValue("college")
	if name == "" || email == "" || education == "" || college == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "name, email, education and college are required",
		})
	}
	passout, err := strconv.Atoi(c.FormValue("passout"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "passout must be a year",
		}, err)
	}

	file, err := c.FormFile("resume")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "resume file is required",
		}, err)
	}
	if !strings.HasSuffix(strings.ToLower(file.Filename), ".pdf") {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Only PDF files are accepted.",
		})
	}
	if file.Size > 5*1024*1024 {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "resume file size is too large (max 5MB)",
		})
	}

	resumeDir := config.LoadStorageConfig().ResumeDir
	if err := os.MkdirAll(resumeDir, 0755); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "cannot save resume file",
		}, err)
	}
	savePath, savedName := util.ResolveResumePath(resumeDir, file.Filename)
	if err := c.SaveFile(file, savePath); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "cannot save resume file",
		}, err)
	}

	resumeText, err := util.ExtractPDFText(savePath)
	if err != nil {
		os.Remove(savePath)
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid or corrupted PDF file.",
		}, err)
	}

	rec, err := h.store.SubmitApplication(c.Context(), token, store.Profile{
		Name:       name,
		Email:      email,
		Education:  education,
		College:    college,
		Passout:    passout,
		ResumeFile: filepath.Base(savedName),
	}, resumeText)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusNotFound,
				Message: "Invalid token",
			}, err)
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to submit application",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Your application is submitted and you will be contacted.",
		Data:    dto.FromRecord(*rec),
	})
}
