package dto

// Category is a static catalog grouping shown on the landing page
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
}

type CategoriesResponse struct {
	Categories []Category `json:"categories"`
}
