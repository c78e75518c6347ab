package converter

import (
	"clinical-records-api/internal/delivery/dto"
	"clinical-records-api/internal/domain/entity"
)

// UserToResponse converts a User entity to its response DTO
func UserToResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
