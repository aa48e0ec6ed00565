package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/pjavier1988/todo-api/internal/auth"
	"github.com/pjavier1988/todo-api/internal/domain"
	"github.com/pjavier1988/todo-api/internal/dto"
	"github.com/pjavier1988/todo-api/internal/service"

	"github.com/gin-gonic/gin"
)

type TodoListHandler struct {
	svc *service.TodoListService
}

func NewTodoListHandler(svc *service.TodoListService) *TodoListHandler {
	return &TodoListHandler{svc: svc}
}

// List godoc
// @Summary      List the caller's to-do lists
// @Tags         todolists
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.TodoListResponse
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /todolists [get]
func (h *TodoListHandler) List(c *gin.Context) {
	userID := auth.UserIDFromContext(c)
	list, err := h.svc.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, todoListsToResponses(list))
}

// Create godoc
// @Summary      Create a to-do list
// @Tags         todolists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.CreateTodoListRequest  true  "List body"
// @Success      201   {object}  dto.TodoListResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /todolists [post]
func (h *TodoListHandler) Create(c *gin.Context) {
	userID := auth.UserIDFromContext(c)
	var req dto.CreateTodoListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t, err := h.svc.Create(c.Request.Context(), userID, req.Title, req.Description)
	if err != nil {
		if errors.Is(err, service.ErrTitleRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "field": "title"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, todoListToResponse(t))
}

// GetByID godoc
// @Summary      Get a to-do list by ID
// @Tags         todolists
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "List ID"
// @Success      200  {object}  dto.TodoListResponse
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /todolists/{id} [get]
func (h *TodoListHandler) GetByID(c *gin.Context) {
	userID := auth.UserIDFromContext(c)
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	t, err := h.svc.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, todoListToResponse(t))
}

// Replace godoc
// @Summary      Replace a to-do list (full update)
// @Tags         todolists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int  true  "List ID"
// @Param        body  body      dto.ReplaceTodoListRequest  true  "Full replacement"
// @Success      200   {object}  dto.TodoListResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /todolists/{id} [put]
func (h *TodoListHandler) Replace(c *gin.Context) {
	userID := auth.UserIDFromContext(c)
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ReplaceTodoListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t, err := h.svc.Replace(c.Request.Context(), userID, id, req.Title, req.Description)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		if errors.Is(err, service.ErrTitleRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "field": "title"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, todoListToResponse(t))
}

// Update godoc
// @Summary      Update a to-do list (partial)
// @Tags         todolists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int  true  "List ID"
// @Param        body  body      dto.UpdateTodoListRequest  true  "Partial update"
// @Success      200   {object}  dto.TodoListResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /todolists/{id} [patch]
func (h *TodoListHandler) Update(c *gin.Context) {
	userID := auth.UserIDFromContext(c)
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateTodoListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t, err := h.svc.Update(c.Request.Context(), userID, id, req.Title, req.Description)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		if errors.Is(err, service.ErrTitleRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "field": "title"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, todoListToResponse(t))
}

// Delete godoc
// @Summary      Delete a to-do list
// @Tags         todolists
// @Security     BearerAuth
// @Param        id   path  int  true  "List ID"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /todolists/{id} [delete]
func (h *TodoListHandler) Delete(c *gin.Context) {
	userID := auth.UserIDFromContext(c)
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), userID, id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func todoListToResponse(t domain.TodoList) dto.TodoListResponse {
	return dto.TodoListResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
	}
}

func todoListsToResponses(list []domain.TodoList) []dto.TodoListResponse {
	out := make([]dto.TodoListResponse, len(list))
	for i := range list {
		out[i] = todoListToResponse(list[i])
	}
	return out
}
