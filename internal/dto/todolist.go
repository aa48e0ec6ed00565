package dto

// CreateTodoListRequest is the JSON body for POST /todolists.
// Any caller-supplied id or owner field is not bound and never applied.
type CreateTodoListRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"max=2000"`
}

// ReplaceTodoListRequest is the JSON body for PUT /todolists/:id (full replace).
// Description falls back to empty when absent.
type ReplaceTodoListRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"max=2000"`
}

// UpdateTodoListRequest is the JSON body for PATCH /todolists/:id.
// nil means "leave unchanged". An owner key in the body is ignored:
// ownership is fixed at creation and never writable through the API.
type UpdateTodoListRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=255"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
}

// TodoListResponse is the single output shape for both list and detail views.
type TodoListResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}
