package dto

type PersonPayload struct {
	ID       string `json:"id" binding:"required"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"imageUrl"`
}

type CreateTaskRequest struct {
	CategoryID     string          `json:"categoryId" binding:"required"`
	Title          string          `json:"title" binding:"required"`
	Description    string          `json:"description"`
	AssignedPeople []PersonPayload `json:"assignedPeople"`
	DueDate        string          `json:"dueDate" binding:"required"` // "2006-01-02"
	DueTime        string          `json:"dueTime" binding:"required"` // "15:04"
	EstimatedTime  float64         `json:"estimatedTime"`
}

type CreateSubtaskRequest struct {
	Title          string         `json:"title" binding:"required"`
	AssignedPerson *PersonPayload `json:"assignedPerson"`
}

type AddAttachmentRequest struct {
	Type string `json:"type" binding:"required"`
	URL  string `json:"url" binding:"required"`
}

type UpdateTaskRequest struct {
	Title         *string  `json:"title"`
	Description   *string  `json:"description"`
	DueDate       *string  `json:"dueDate"`
	DueTime       *string  `json:"dueTime"`
	EstimatedTime *float64 `json:"estimatedTime"`
	Progress      *int     `json:"progress"`
}
