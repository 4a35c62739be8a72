package usecase

import (
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// UserUseCase administración de usuarios (solo admin): listar, aprobar/cambiar
// rol o estado, y eliminar.
type UserUseCase struct {
	userRepo   repository.UserRepository
	ledgerRepo repository.LedgerRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(userRepo repository.UserRepository, ledgerRepo repository.LedgerRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, ledgerRepo: ledgerRepo}
}

// List devuelve los usuarios paginados.
func (uc *UserUseCase) List(limit, offset int) (*dto.UserListResponse, error) {
	users, total, err := uc.userRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.UserListResponse{
		Users: make([]dto.UserResponse, 0, len(users)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}
	for _, u := range users {
		out.Users = append(out.Users, dto.UserResponse{
			ID:        u.ID,
			Username:  u.Username,
			Role:      u.Role,
			Status:    u.Status,
			CreatedAt: u.CreatedAt,
		})
	}
	return out, nil
}

// Update cambia rol y/o estado (aprobación de cuentas pending incluida).
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Role != nil {
		if *in.Role != entity.RoleAdmin && *in.Role != entity.RoleOperator {
			return nil, domain.ErrInvalidInput
		}
		user.Role = *in.Role
	}
	if in.Status != nil {
		switch *in.Status {
		case entity.UserStatusActive, entity.UserStatusPending, entity.UserStatusPaused:
			user.Status = *in.Status
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return &dto.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Role:      user.Role,
		Status:    user.Status,
		CreatedAt: user.CreatedAt,
	}, nil
}

// Delete elimina un usuario. Un usuario con movimientos en el libro no puede
// eliminarse (el libro es inmutable y lo referencia).
func (uc *UserUseCase) Delete(id string) error {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	referenced, err := uc.ledgerRepo.ExistsByUser(id)
	if err != nil {
		return err
	}
	if referenced {
		return domain.ErrUserReferenced
	}
	return uc.userRepo.Delete(id)
}
