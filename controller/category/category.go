package category

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"planora/dto"
	"planora/middleware"
	"planora/model"
	"planora/store"
)

func CategoryController(router *gin.Engine, root *store.RootStore) {
	routes := router.Group("/category", middleware.AccessTokenMiddleware())
	{
		routes.POST("", func(c *gin.Context) {
			CreateCategory(c, root)
		})
		routes.GET("", func(c *gin.Context) {
			ListCategories(c, root)
		})
		routes.GET("/recent", func(c *gin.Context) {
			RecentCategories(c, root)
		})
		routes.GET("/:id", func(c *gin.Context) {
			GetCategory(c, root)
		})
		routes.PUT("/:id", func(c *gin.Context) {
			UpdateCategory(c, root)
		})
		routes.DELETE("/:id/task/:taskId", func(c *gin.Context) {
			DeleteCategoryTask(c, root)
		})
	}
}

func CreateCategory(c *gin.Context, root *store.RootStore) {
	var request dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	created := root.Tasks.AddProject(request.Name, request.Description)
	c.JSON(http.StatusCreated, categoryJSON(created))
}

func ListCategories(c *gin.Context, root *store.RootStore) {
	categories := root.Tasks.Categories()
	out := make([]gin.H, 0, len(categories))
	for _, category := range categories {
		out = append(out, categoryJSON(category))
	}
	c.JSON(http.StatusOK, gin.H{"categories": out})
}

func RecentCategories(c *gin.Context, root *store.RootStore) {
	categories := root.Tasks.RecentProjects()
	out := make([]gin.H, 0, len(categories))
	for _, category := range categories {
		out = append(out, categoryJSON(category))
	}
	c.JSON(http.StatusOK, gin.H{"categories": out})
}

func GetCategory(c *gin.Context, root *store.RootStore) {
	category, ok := root.Tasks.Category(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	now := time.Now()
	out := categoryJSON(category)
	out["dueTasks"] = category.DueTasks(now)
	c.JSON(http.StatusOK, out)
}

func UpdateCategory(c *gin.Context, root *store.RootStore) {
	var request dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if !root.Tasks.UpdateCategory(c.Param("id"), request.Name, request.Description) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	category, _ := root.Tasks.Category(c.Param("id"))
	c.JSON(http.StatusOK, categoryJSON(category))
}

// DeleteCategoryTask removes the task from the category's own list only.
// The flat task list keeps the task.
func DeleteCategoryTask(c *gin.Context, root *store.RootStore) {
	if !root.Tasks.DeleteCategoryTask(c.Param("id"), c.Param("taskId")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task removed from category"})
}

func categoryJSON(category model.Category) gin.H {
	return gin.H{
		"id":          category.CategoryID,
		"name":        category.Name,
		"description": category.Description,
		"createdAt":   category.CreatedAt,
		"totalTasks":  category.TotalTasks(),
		"progress":    category.Progress(),
		"tasks":       category.Tasks,
	}
}
