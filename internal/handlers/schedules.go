package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/viiteer2708/mega-energia-sub001/internal/baseline"
	"github.com/viiteer2708/mega-energia-sub001/internal/identity"
	"github.com/viiteer2708/mega-energia-sub001/internal/parsers/xlsx"
	"github.com/viiteer2708/mega-energia-sub001/internal/pipeline"
	"github.com/viiteer2708/mega-energia-sub001/internal/types"
)

const (
	uploadField     = "file"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var errUploadTooLarge = errors.New("upload too large")

// ScheduleHandler serves schedule parsing, validation, export and templates
type ScheduleHandler struct {
	svc            *pipeline.Service
	maxUploadBytes int64
}

// NewScheduleHandler creates a handler over the pipeline service
func NewScheduleHandler(svc *pipeline.Service, maxUploadBytes int64) *ScheduleHandler {
	return &ScheduleHandler{svc: svc, maxUploadBytes: maxUploadBytes}
}

// ParseSchedule parses an uploaded workbook without validating it
// @Summary Parse schedule
// @Description Parses a schedule workbook and reports what the parser read and dropped
// @Tags schedules
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Schedule workbook (.xlsx)"
// @Success 200 {object} xlsx.Result
// @Failure 400 {object} map[string]string "Empty or unreadable document"
// @Failure 413 {object} map[string]string "Upload too large"
// @Router /internal/schedules/parse [post]
func (h *ScheduleHandler) ParseSchedule(c *gin.Context) {
	content, _, ok := h.readUpload(c)
	if !ok {
		return
	}

	result, err := h.svc.Parse(c.Request.Context(), content)
	if err != nil {
		respondParseError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ValidateSchedule parses and validates an uploaded workbook.
// Invalid schedules are still 200: the report carries the findings.
// @Summary Validate schedule
// @Description Parses a schedule workbook and validates it against the stored baseline
// @Tags schedules
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Schedule workbook (.xlsx)"
// @Success 200 {object} pipeline.Report
// @Failure 400 {object} map[string]string "Empty or unreadable document"
// @Failure 413 {object} map[string]string "Upload too large"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /internal/schedules/validate [post]
func (h *ScheduleHandler) ValidateSchedule(c *gin.Context) {
	content, filename, ok := h.readUpload(c)
	if !ok {
		return
	}

	report, err := h.svc.Validate(c.Request.Context(), content, filename)
	if err != nil {
		respondParseError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// ValidateScheduleJSON validates a schedule sent as JSON
// @Summary Validate parsed schedule
// @Description Validates a schedule already in canonical JSON form
// @Tags schedules
// @Accept json
// @Produce json
// @Param schedule body types.ParsedSchedule true "Parsed schedule"
// @Success 200 {object} pipeline.Report
// @Failure 400 {object} map[string]string "Bad request"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /internal/schedules/validate/json [post]
func (h *ScheduleHandler) ValidateScheduleJSON(c *gin.Context) {
	var parsed types.ParsedSchedule
	if err := c.ShouldBindJSON(&parsed); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Invalid schedule body: %v", err),
		})
		return
	}

	report, err := h.svc.ValidateSchedule(c.Request.Context(), &parsed)
	if err != nil {
		log.Error().Err(err).Msg("Schedule validation failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to validate schedule",
		})
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetTemplate returns an empty schedule workbook
// @Summary Schedule template
// @Description Returns an empty schedule workbook with the config sheet filled in
// @Tags schedules
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param company query string true "Company name"
// @Param model query string false "Commission model" Enums(table, formula) default(table)
// @Success 200 {file} file
// @Failure 400 {object} map[string]string "Bad request"
// @Router /internal/schedules/template [get]
func (h *ScheduleHandler) GetTemplate(c *gin.Context) {
	company := strings.TrimSpace(c.Query("company"))
	if company == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "company query parameter is required",
		})
		return
	}

	content, err := h.svc.Template(company, identity.ParseCommissionModel(c.Query("model")))
	if err != nil {
		log.Error().Err(err).Str("company", company).Msg("Template render failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to render template",
		})
		return
	}
	sendWorkbook(c, identity.Slugify(company)+"-template.xlsx", content)
}

// ExportCompanySchedule returns the stored schedule of a company as a workbook
// @Summary Export company schedule
// @Description Renders the stored products and rates of a company as a schedule workbook
// @Tags companies
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param name path string true "Company name"
// @Success 200 {file} file
// @Failure 404 {object} map[string]string "Company not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /internal/companies/{name}/schedule [get]
func (h *ScheduleHandler) ExportCompanySchedule(c *gin.Context) {
	name := strings.TrimSpace(c.Param("name"))
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Company name is required",
		})
		return
	}

	content, err := h.svc.Export(c.Request.Context(), name)
	if errors.Is(err, baseline.ErrCompanyNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": fmt.Sprintf("Company not found: %s", name),
		})
		return
	}
	if err != nil {
		log.Error().Err(err).Str("company", name).Msg("Export failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to export schedule",
		})
		return
	}
	sendWorkbook(c, identity.Slugify(name)+".xlsx", content)
}

// readUpload reads the multipart upload, writing the error response itself
func (h *ScheduleHandler) readUpload(c *gin.Context) ([]byte, string, bool) {
	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	}

	fileHeader, err := c.FormFile(uploadField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": errUploadTooLarge.Error()})
			return nil, "", false
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Multipart field %q is required", uploadField),
		})
		return nil, "", false
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to open upload"})
		return nil, "", false
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read upload"})
		return nil, "", false
	}
	return content, fileHeader.Filename, true
}

func respondParseError(c *gin.Context, err error) {
	if errors.Is(err, xlsx.ErrEmptyDocument) || errors.Is(err, xlsx.ErrInvalidDocument) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	log.Error().Err(err).Msg("Schedule processing failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process schedule"})
}

func sendWorkbook(c *gin.Context, filename string, content []byte) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, content)
}
