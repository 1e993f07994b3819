package dto

import dom "recipeshare/internal/domain"

// CreateRecipeRequest is the JSON body for POST /recipes.
// MinutesToComplete is a pointer so that a JSON 0 counts as present —
// only an absent or null field fails validation.
type CreateRecipeRequest struct {
	Title             string `json:"title"`
	Instructions      string `json:"instructions"`
	MinutesToComplete *int   `json:"minutes_to_complete"`
}

// RecipeView embeds the owner's public view; the owner's hash never
// appears because UserView has no field for it.
type RecipeView struct {
	ID                int64    `json:"id"`
	Title             string   `json:"title"`
	Instructions      string   `json:"instructions"`
	MinutesToComplete int      `json:"minutes_to_complete"`
	User              UserView `json:"user"`
}

type ListRecipesResponse struct {
	Items []RecipeView `json:"items"`
}

// RecipeToView projects a recipe with its joined owner. A recipe read
// without the owner join gets a zero UserView rather than a panic.
func RecipeToView(r dom.Recipe) RecipeView {
	v := RecipeView{
		ID:                r.ID,
		Title:             r.Title,
		Instructions:      r.Instructions,
		MinutesToComplete: r.MinutesToComplete,
	}
	if r.Owner != nil {
		v.User = UserToView(*r.Owner)
	}
	return v
}

func RecipesToViews(list []dom.Recipe) []RecipeView {
	out := make([]RecipeView, len(list))
	for i := range list {
		out[i] = RecipeToView(list[i])
	}
	return out
}
