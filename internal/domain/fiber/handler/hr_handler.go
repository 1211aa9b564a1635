package handler

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/hiredeck/ats-service/internal/config"
	"github.com/hiredeck/ats-service/internal/dto"
	"github.com/hiredeck/ats-service/internal/response"
	"github.com/hiredeck/ats-service/internal/service"
	"github.com/hiredeck/ats-service/internal/store"
	"github.com/hiredeck/ats-service/internal/util"
)

type HRHandler struct {
	store  *store.Store
	mailer *service.MailService
}

func NewHRHandler(s *store.Store, mailer *service.MailService) *HRHandler {
	return &HRHandler{store: s, mailer: mailer}
}

func (h *HRHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/hr/create_job", h.CreateJob)
	app.Get("/hr/jobs", h.Jobs)
	app.Get("/hr/applicants/:token", h.Applicants)
	app.Post("/hr/update_status/:token/:email", h.UpdateStatus)
	app.Get("/hr/download_resume/:filename", h.DownloadResume)
	app.Get("/hr/download_excel", h.DownloadExcel)
	app.Get("/hr/smtp_status", h.SMTPStatus)
}

func (h *HRHandler) CreateJob(c *fiber.Ctx) error {
	jd := c.FormValue("jd")
	designation := c.FormValue("designation")
	if jd == "" || designation == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "jd and designation are required",
		})
	}

	token, err := h.store.CreateJob(jd, designation)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to create job",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Job created",
		Data:    fiber.Map{"token": token, "link": "/apply/" + token},
	})
}

func (h *HRHandler) Jobs(c *fiber.Ctx) error {
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get jobs",
		Data:    h.store.Tokens(),
	})
}

func (h *HRHandler) Applicants(c *fiber.Ctx) error {
	token := c.Params("token")
	records := h.store.ListApplicants(token)

	out := make([]dto.ApplicantDTO, 0, len(records))
	for _, rec := range records {
		out = append(out, dto.FromRecord(rec))
	}

	// Pagination is opt-in; without query params HR gets the whole list.
	if c.Query("page") == "" {
		return util.SuccessResponse(c, util.SuccessResponseFormat{
			Message: "Success get applicants",
			Data:    out,
		})
	}

	page, _ := strconv.Atoi(c.Query("page"))
	pageSize, _ := strconv.Atoi(c.Query("page_size"))
	from, to, pagination := response.Paginate(len(out), page, pageSize)
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "Success get applicants",
		Data:       out[from:to],
		Pagination: pagination,
	})
}

func (h *HRHandler) UpdateStatus(c *fiber.Ctx) error {
	token := c.Params("token")
	email := c.Params("email")
	status := c.FormValue("status")
	if status == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "status is required",
		})
	}

	rec, err := h.store.UpdateStatus(token, email, status)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusNotFound,
				Message: "Applicant not found",
			}, err)
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to update status",
		}, err)
	}

	job, _ := h.store.Job(token)
	sent := h.mailer.SendStatusNotification(email, rec.Name, job.Designation, status)

	msg := "Status updated"
	if sent.OK {
		msg += " and email sent"
	} else {
		msg += " but email could not be sent"
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: msg,
		Data: fiber.Map{
			"applicant":   dto.FromRecord(*rec),
			"email_ok":    sent.OK,
			"email_error": sent.Error,
		},
	})
}

func (h *HRHandler) DownloadResume(c *fiber.Ctx) error {
	filename := filepath.Base(c.Params("filename"))
	path := filepath.Join(config.LoadStorageConfig().ResumeDir, filename)
	if _, err := os.Stat(path); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "Resume not found",
		})
	}
	return c.Download(path, filename)
}

func (h *HRHandler) DownloadExcel(c *fiber.Ctx) error {
	path := config.LoadStorageConfig().ExcelFile
	if _, err := os.Stat(path); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "No data available",
		})
	}
	return c.Download(path, "applicants.xlsx")
}

// SMTPStatus reports the mail configuration with credentials masked, so HR
// can check deliverability without exposing secrets.
func (h *HRHandler) SMTPStatus(c *fiber.Ctx) error {
	cfg := config.LoadSMTPConfig()
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "SMTP status",
		Data: fiber.Map{
			"host":      cfg.Host,
			"port":      cfg.Port,
			"use_ssl":   cfg.UseSSL,
			"user":      mask(cfg.User),
			"from":      mask(cfg.From),
			"from_name": cfg.FromName,
			"has_pass":  cfg.Pass != "",
		},
	})
}

func mask(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 2 {
		return s + "***"
	}
	return s[:2] + "***"
}
