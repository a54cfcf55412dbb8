package dto

// RegisterRequest — тело запроса регистрации.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest — тело запроса входа.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest — тело запроса обновления токенов.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// UpdateProfileRequest — частичное обновление профиля.
// nil-поле означает "не менять".
type UpdateProfileRequest struct {
	Name         *string  `json:"name"`
	Bio          *string  `json:"bio"`
	Location     *string  `json:"location"`
	PhotoURL     *string  `json:"photo_url"`
	IsPublic     *bool    `json:"is_public"`
	Availability []string `json:"availability"`
}

// CreateSkillRequest — добавление навыка в каталог.
type CreateSkillRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category" binding:"required"`
}

// AddUserSkillRequest — привязка навыка к пользователю.
type AddUserSkillRequest struct {
	SkillID     string  `json:"skill_id" binding:"required"`
	Role        string  `json:"role" binding:"required"`
	SkillLevel  string  `json:"skill_level"`
	Description *string `json:"description"`
}

// UpdateUserSkillRequest — изменение уровня или описания навыка пользователя.
type UpdateUserSkillRequest struct {
	SkillLevel  string  `json:"skill_level" binding:"required"`
	Description *string `json:"description"`
}

// CreateSwapRequest — заявка на обмен навыками.
type CreateSwapRequest struct {
	ToUserID         string `json:"to_user_id" binding:"required"`
	SkillOfferedUS   string `json:"skill_offered_us" binding:"required"`
	SkillRequestedUS string `json:"skill_requested_us" binding:"required"`
}

// UpdateSwapStatusRequest — перевод обмена в новый статус.
type UpdateSwapStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// CreateFeedbackRequest — отзыв по принятому обмену.
type CreateFeedbackRequest struct {
	SwapID  string  `json:"swap_id" binding:"required"`
	Rating  int     `json:"rating" binding:"required"`
	Comment *string `json:"comment"`
}

// UpdateFeedbackRequest — правка собственного отзыва.
type UpdateFeedbackRequest struct {
	Rating  int     `json:"rating" binding:"required"`
	Comment *string `json:"comment"`
}

// ModerationRequest — действие администратора с необязательной причиной.
type ModerationRequest struct {
	Reason *string `json:"reason"`
}

// SeedRequest — параметры генерации демо-данных.
type SeedRequest struct {
	NumUsers int `json:"num_users"`
	NumSwaps int `json:"num_swaps"`
}
