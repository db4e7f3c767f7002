package animal

type CreateAnimalInput struct {
	Species  string   `json:"species" binding:"required" example:"Cow"`
	Breed    *string  `json:"breed" example:"Boran"`
	Age      *int     `json:"age" binding:"omitempty,gte=0" example:"36"`
	Weight   *float64 `json:"weight" binding:"omitempty,gt=0" example:"450"`
	Price    float64  `json:"price" binding:"required,gt=0" example:"185000"`
	Status   *string  `json:"status" binding:"omitempty,oneof=available reserved sold" example:"available"`
	ImageURL *string  `json:"image_url"`
}

type UpdateAnimalInput struct {
	Species  *string  `json:"species" example:"Cow"`
	Breed    *string  `json:"breed" example:"Boran"`
	Age      *int     `json:"age" binding:"omitempty,gte=0" example:"36"`
	Weight   *float64 `json:"weight" binding:"omitempty,gt=0" example:"450"`
	Price    *float64 `json:"price" binding:"omitempty,gt=0" example:"185000"`
	Status   *string  `json:"status" binding:"omitempty,oneof=available reserved sold" example:"reserved"`
	ImageURL *string  `json:"image_url"`
}

// ListAnimalsQuery carries the optional filters on the public listing
// endpoint.
type ListAnimalsQuery struct {
	Species  *string `form:"species"`
	Status   *string `form:"status" binding:"omitempty,oneof=available reserved sold"`
	FarmerID *uint   `form:"farmer_id"`
	Page     int     `form:"page,default=1" binding:"omitempty,gte=1"`
	Limit    int     `form:"limit,default=10" binding:"omitempty,gte=1,lte=100"`
}
