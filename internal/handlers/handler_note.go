package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/freelanceos/internal/core/ports/services"
	"github.com/SscSPs/freelanceos/internal/dto"
	"github.com/SscSPs/freelanceos/internal/middleware"
	"github.com/gin-gonic/gin"
)

// noteHandler handles HTTP requests related to project notes.
type noteHandler struct {
	noteService portssvc.NoteSvcFacade
}

func registerNoteRoutes(rg *gin.RouterGroup, noteService portssvc.NoteSvcFacade) {
	h := &noteHandler{noteService: noteService}

	rg.POST("", h.createNote)
	rg.GET("", h.listNotes)
}

// createNote godoc
// @Summary Add a note to a project
// @Tags notes
// @Accept  json
// @Produce  json
// @Param   projectID path string true "Project ID"
// @Param   note body dto.CreateNoteRequest true "Note content"
// @Success 201 {object} dto.NoteResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Project not found"
// @Failure 500 {object} map[string]string "Failed to create note"
// @Security BearerAuth
// @Router /api/v1/projects/{projectID}/notes [post]
func (h *noteHandler) createNote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("projectID")

	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateNote", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("project_id", projectID))

	note, err := h.noteService.CreateNote(c.Request.Context(), userID, projectID, req)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to create note")
		return
	}

	logger.Info("Note created successfully", slog.String("note_id", note.NoteID))
	c.JSON(http.StatusCreated, dto.ToNoteResponse(note))
}

// listNotes godoc
// @Summary List the notes of a project
// @Tags notes
// @Produce  json
// @Param   projectID path string true "Project ID"
// @Success 200 {object} dto.ListNotesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Project not found"
// @Failure 500 {object} map[string]string "Failed to list notes"
// @Security BearerAuth
// @Router /api/v1/projects/{projectID}/notes [get]
func (h *noteHandler) listNotes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("projectID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	notes, err := h.noteService.ListNotes(c.Request.Context(), userID, projectID)
	if err != nil {
		writeServiceError(c, logger.With(slog.String("project_id", projectID)), err, "Failed to list notes")
		return
	}

	c.JSON(http.StatusOK, dto.ToListNotesResponse(notes))
}
