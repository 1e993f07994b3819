package handlers

import (
	"errors"
	"net/http"

	"recipeshare/internal/auth"
	"recipeshare/internal/dto"
	"recipeshare/internal/service"

	"github.com/gin-gonic/gin"
)

type RecipeHandler struct {
	svc *service.RecipeService
}

func NewRecipeHandler(svc *service.RecipeService) *RecipeHandler {
	return &RecipeHandler{svc: svc}
}

// List godoc
// @Summary      List all recipes
// @Tags         recipes
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  dto.ListRecipesResponse
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /recipes [get]
func (h *RecipeHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.ListRecipesResponse{Items: dto.RecipesToViews(list)})
}

// Create godoc
// @Summary      Create a recipe
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.CreateRecipeRequest  true  "Recipe body"
// @Success      201   {object}  dto.RecipeView
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /recipes [post]
func (h *RecipeHandler) Create(c *gin.Context) {
	var req dto.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	userID := auth.UserIDFromContext(c)
	rec, err := h.svc.Create(c.Request.Context(), userID, req.Title, req.Instructions, req.MinutesToComplete)
	if err != nil {
		if errors.Is(err, service.ErrTitleRequired) ||
			errors.Is(err, service.ErrInstructionsTooShort) ||
			errors.Is(err, service.ErrMinutesRequired) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, dto.RecipeToView(rec))
}
