package types

// RegisterRequest is the request body for user registration.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Username string `json:"username" binding:"required,max=50"`
}

// LoginRequest is the request body for login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CreateMealRequest is the request body for creating a meal.
type CreateMealRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Cuisine     []string `json:"cuisine"`
	Dietary     []string `json:"dietary"`
	Allergens   []string `json:"allergens"`
	Status      string   `json:"status" binding:"omitempty,oneof=available unavailable"`
	Images      []string `json:"images"`
	Calories    float64  `json:"calories"`
}

// UpdateMealRequest is the request body for updating a meal.
type UpdateMealRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Cuisine     []string `json:"cuisine"`
	Dietary     []string `json:"dietary"`
	Allergens   []string `json:"allergens"`
	Status      string   `json:"status" binding:"omitempty,oneof=available unavailable"`
	Images      []string `json:"images"`
	Calories    float64  `json:"calories"`
}

// CreateReviewRequest is the request body for reviewing a meal.
type CreateReviewRequest struct {
	Rating  float64 `json:"rating" binding:"required,min=1,max=5"`
	Comment string  `json:"comment" binding:"max=2000"`
}

// AddAllergyRequest is the request body for adding an allergy entry.
type AddAllergyRequest struct {
	Name     string `json:"name" binding:"required,max=50"`
	Type     string `json:"type" binding:"omitempty,oneof=allergy intolerance"`
	Severity string `json:"severity" binding:"omitempty,oneof=mild moderate severe"`
}

// UpdateDietaryPreferencesRequest replaces the user's dietary-preference
// document.
type UpdateDietaryPreferencesRequest struct {
	Preferences           []string `json:"preferences"`
	ReligiousRequirements []string `json:"religious_requirements"`
	HealthDriven          []string `json:"health_driven"`
}

// UpdateFoodSafetyRequest updates the user's food safety switches.
type UpdateFoodSafetyRequest struct {
	AvoidCrossContamination bool `json:"avoid_cross_contamination"`
}
