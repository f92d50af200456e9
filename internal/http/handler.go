package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	dto "task-time-tracker.com/task-time-tracker/internal/data_models"
	apperrors "task-time-tracker.com/task-time-tracker/internal/errors"
	"task-time-tracker.com/task-time-tracker/internal/http/validators"
	"task-time-tracker.com/task-time-tracker/internal/services"
)

type Handler struct {
	ledger    *services.LedgerService
	directory *services.DirectoryService
	reports   *services.ReportService
}

func NewHandler(ledger *services.LedgerService, directory *services.DirectoryService, reports *services.ReportService) *Handler {
	return &Handler{
		ledger:    ledger,
		directory: directory,
		reports:   reports,
	}
}

func httpError(err error) *echo.HTTPError {
	return echo.NewHTTPError(apperrors.StatusCode(err), err.Error())
}

func (h *Handler) ListTasks(c echo.Context) error {
	tasks, err := h.ledger.ListTasks(c.Request().Context())
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, tasks)
}

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCreateTaskRequest(&req); err != nil {
		return httpError(err)
	}

	task, err := h.ledger.CreateTask(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) UpdateTask(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return httpError(apperrors.ErrTaskIDRequired)
	}

	var req dto.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateUpdateTaskRequest(&req); err != nil {
		return httpError(err)
	}

	task, err := h.ledger.UpdateTask(c.Request().Context(), id, req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return httpError(apperrors.ErrTaskIDRequired)
	}

	if err := h.ledger.DeleteTask(c.Request().Context(), id); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Task deleted successfully"})
}

func (h *Handler) ListTimeEntries(c echo.Context) error {
	entries, err := h.ledger.ListTimeEntries(c.Request().Context(), c.QueryParam("task_id"))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, entries)
}

func (h *Handler) LogTime(c echo.Context) error {
	var req dto.LogTimeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateLogTimeRequest(&req); err != nil {
		return httpError(err)
	}

	entry, err := h.ledger.LogTime(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, entry)
}

func (h *Handler) ListAccounts(c echo.Context) error {
	accounts, err := h.directory.ListAccounts(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list BAS accounts")
	}

	return c.JSON(http.StatusOK, accounts)
}

// ImportAccounts accepts a multipart CSV upload under the "file" field and
// resyncs the account directory from it.
func (h *Handler) ImportAccounts(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "CSV file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "could not read uploaded file")
	}
	defer file.Close()

	result := h.directory.ImportAccounts(c.Request().Context(), file)
	if !result.Success {
		return c.JSON(http.StatusInternalServerError, result)
	}

	return c.JSON(http.StatusOK, result)
}

// ValidateAccount always answers 200: an unknown or inactive id is a normal
// not-valid outcome, not an error.
func (h *Handler) ValidateAccount(c echo.Context) error {
	result := h.directory.ValidateAccount(c.Request().Context(), c.Param("id"))
	return c.JSON(http.StatusOK, result)
}

func (h *Handler) TaskStatusReport(c echo.Context) error {
	result := h.reports.TaskStatusReport(c.Request().Context())
	if !result.Success {
		return echo.NewHTTPError(http.StatusInternalServerError, result.Message)
	}

	return c.JSON(http.StatusOK, result.Statuses)
}

func (h *Handler) TimeByAccountReport(c echo.Context) error {
	result := h.reports.TimeByAccountReport(c.Request().Context())
	if !result.Success {
		return echo.NewHTTPError(http.StatusInternalServerError, result.Message)
	}

	return c.JSON(http.StatusOK, result.Accounts)
}

func (h *Handler) TimeAccuracyReport(c echo.Context) error {
	result := h.reports.TimeAccuracyReport(c.Request().Context())
	if !result.Success {
		return echo.NewHTTPError(http.StatusInternalServerError, result.Message)
	}

	return c.JSON(http.StatusOK, result.Tasks)
}

func (h *Handler) AccountReport(c echo.Context) error {
	startDate, err := dateParam(c, "start_date")
	if err != nil {
		return httpError(err)
	}
	endDate, err := dateParam(c, "end_date")
	if err != nil {
		return httpError(err)
	}

	result := h.reports.AccountReport(c.Request().Context(), startDate, endDate)
	if !result.Success {
		return echo.NewHTTPError(http.StatusInternalServerError, result.Message)
	}

	return c.JSON(http.StatusOK, result)
}

func (h *Handler) AccountingExport(c echo.Context) error {
	month, err := intParam(c, "month", 1, 12)
	if err != nil {
		return err
	}
	year, err := intParam(c, "year", 1, 9999)
	if err != nil {
		return err
	}

	result := h.reports.ExportForAccounting(c.Request().Context(), month, year)
	if !result.Success {
		return echo.NewHTTPError(http.StatusInternalServerError, result.Message)
	}

	return c.JSON(http.StatusOK, result)
}

func dateParam(c echo.Context, name string) (string, error) {
	value := c.QueryParam(name)
	if value == "" {
		return "", nil
	}
	if err := validators.ValidateDate(value); err != nil {
		return "", err
	}
	return value, nil
}

func intParam(c echo.Context, name string, min, max int) (int, error) {
	value := c.QueryParam(name)
	if value == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(value)
	if err != nil || n < min || n > max {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" is out of range")
	}
	return n, nil
}
