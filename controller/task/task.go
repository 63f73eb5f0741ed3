package task

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"planora/dto"
	"planora/middleware"
	"planora/model"
	"planora/store"
)

func TaskController(router *gin.Engine, root *store.RootStore) {
	routes := router.Group("/task", middleware.AccessTokenMiddleware())
	{
		routes.POST("", func(c *gin.Context) {
			CreateTask(c, root)
		})
		routes.GET("", func(c *gin.Context) {
			ListTasks(c, root)
		})
		routes.GET("/:id", func(c *gin.Context) {
			GetTask(c, root)
		})
		routes.PUT("/:id", func(c *gin.Context) {
			UpdateTask(c, root)
		})
		routes.POST("/:id/subtask", func(c *gin.Context) {
			CreateSubtask(c, root)
		})
		routes.POST("/:id/subtask/:subtaskId/toggle", func(c *gin.Context) {
			ToggleSubtask(c, root)
		})
		routes.POST("/:id/attachment", func(c *gin.Context) {
			AddAttachment(c, root)
		})
	}
}

// CreateTask always adds the task to the flat list. When the category id
// matches no category the task stays orphaned from every category list,
// so category totals won't reflect it.
func CreateTask(c *gin.Context, root *store.RootStore) {
	var request dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	dueDate, err := time.Parse("2006-01-02", request.DueDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dueDate must be formatted as YYYY-MM-DD"})
		return
	}
	if _, err := time.Parse("15:04", request.DueTime); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dueTime must be formatted as HH:MM"})
		return
	}

	created := root.Tasks.AddTask(store.AddTaskParams{
		CategoryID:     request.CategoryID,
		Title:          request.Title,
		Description:    request.Description,
		AssignedPeople: people(request.AssignedPeople),
		DueDate:        dueDate,
		DueTime:        request.DueTime,
		EstimatedTime:  request.EstimatedTime,
	})
	c.JSON(http.StatusCreated, created)
}

func ListTasks(c *gin.Context, root *store.RootStore) {
	c.JSON(http.StatusOK, gin.H{"tasks": root.Tasks.Tasks()})
}

func GetTask(c *gin.Context, root *store.RootStore) {
	task, ok := root.Tasks.Task(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	now := time.Now()
	c.JSON(http.StatusOK, gin.H{
		"task":      task,
		"isDueSoon": task.IsDueSoon(now),
		"isOverdue": task.IsOverdue(now),
	})
}

func UpdateTask(c *gin.Context, root *store.RootStore) {
	var request dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	upd := model.TaskUpdate{
		Title:         request.Title,
		Description:   request.Description,
		DueTime:       request.DueTime,
		EstimatedTime: request.EstimatedTime,
		Progress:      request.Progress,
	}
	if request.DueDate != nil {
		dueDate, err := time.Parse("2006-01-02", *request.DueDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "dueDate must be formatted as YYYY-MM-DD"})
			return
		}
		upd.DueDate = &dueDate
	}
	if request.Progress != nil && (*request.Progress < 0 || *request.Progress > 100) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "progress must be between 0 and 100"})
		return
	}

	if !root.Tasks.UpdateTask(c.Param("id"), upd) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	task, _ := root.Tasks.Task(c.Param("id"))
	c.JSON(http.StatusOK, task)
}

func CreateSubtask(c *gin.Context, root *store.RootStore) {
	var request dto.CreateSubtaskRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	var assigned *model.Person
	if request.AssignedPerson != nil {
		p := person(*request.AssignedPerson)
		assigned = &p
	}

	subtask, ok := root.Tasks.AddSubtask(c.Param("id"), request.Title, assigned)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}
	c.JSON(http.StatusCreated, subtask)
}

func ToggleSubtask(c *gin.Context, root *store.RootStore) {
	if !root.Tasks.ToggleSubtask(c.Param("id"), c.Param("subtaskId")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Subtask not found"})
		return
	}

	task, _ := root.Tasks.Task(c.Param("id"))
	c.JSON(http.StatusOK, task)
}

func AddAttachment(c *gin.Context, root *store.RootStore) {
	var request dto.AddAttachmentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	attachment := model.Attachment{
		Type: model.AttachmentType(request.Type),
		URL:  request.URL,
	}
	if !attachment.Type.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be link, image or document"})
		return
	}

	if !root.Tasks.AddAttachment(c.Param("id"), attachment) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}
	c.JSON(http.StatusCreated, attachment)
}

func people(payloads []dto.PersonPayload) []model.Person {
	out := make([]model.Person, 0, len(payloads))
	for _, p := range payloads {
		out = append(out, person(p))
	}
	return out
}

func person(p dto.PersonPayload) model.Person {
	return model.Person{
		ID:       p.ID,
		Name:     p.Name,
		Email:    p.Email,
		ImageURL: p.ImageURL,
	}
}
