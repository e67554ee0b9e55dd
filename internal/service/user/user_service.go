package user

import (
	"context"
	"errors"
	"strings"

	"user-management-api/internal/http/api"
	"user-management-api/internal/models"
	repo "user-management-api/internal/repository"
	"user-management-api/internal/service"
	"user-management-api/internal/validation"

	"github.com/google/uuid"
)

var (
	ErrManagerInactiveOrMissing = errors.New("manager does not exist or is inactive")
	ErrUnsupportedBulkOperation = errors.New("only manager_id can be updated for multiple users at once")
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=UserSaver
type UserSaver interface {
	Create(ctx context.Context, user *models.User) (string, error)
	Deactivate(ctx context.Context, userID string) error
	Update(ctx context.Context, userID string, changes models.UserChanges) error
	SetManager(ctx context.Context, userIDs []string, managerID string) (int64, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=UserProvider
type UserProvider interface {
	GetActiveByID(ctx context.Context, userID string) (*models.User, error)
	ListActive(ctx context.Context, filter models.UserFilter) ([]*models.User, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=UserDeleter
type UserDeleter interface {
	DeleteByID(ctx context.Context, userID string) error
	DeleteByMobile(ctx context.Context, mobNum string) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=ManagerProvider
type ManagerProvider interface {
	GetByID(ctx context.Context, managerID string) (*models.Manager, error)
}

type UserService struct {
	trm             service.TransactionManager
	userSaver       UserSaver
	userProvider    UserProvider
	userDeleter     UserDeleter
	managerProvider ManagerProvider
}

func NewUserService(
	trm service.TransactionManager,
	userSaver UserSaver,
	userProvider UserProvider,
	userDeleter UserDeleter,
	managerProvider ManagerProvider,
) *UserService {
	return &UserService{
		trm:             trm,
		userSaver:       userSaver,
		userProvider:    userProvider,
		userDeleter:     userDeleter,
		managerProvider: managerProvider,
	}
}

type ListFilter struct {
	UserID    string
	MobNum    string
	ManagerID string
}

type UpdateResult struct {
	Kind         PlanKind
	UpdatedCount int64
	NewUserID    string
}

func (s *UserService) Create(ctx context.Context, fullName, mobNum, panNum, managerID string) (string, error) {
	in, err := validation.ValidateCreate(fullName, mobNum, panNum)
	if err != nil {
		return "", err
	}

	managerID = strings.TrimSpace(managerID)
	if managerID == "" {
		return "", validation.NewError("manager_id must not be empty")
	}

	user := &models.User{
		ID:        uuid.NewString(),
		FullName:  in.FullName,
		MobNum:    in.MobNum,
		PanNum:    in.PanNum,
		ManagerID: managerID,
		IsActive:  true,
	}

	var userID string
	err = s.trm.Do(ctx, func(ctx context.Context) error {
		if err := s.requireActiveManager(ctx, managerID); err != nil {
			return err
		}

		id, err := s.userSaver.Create(ctx, user)
		if err != nil {
			return err
		}

		userID = id
		return nil
	})
	if err != nil {
		return "", err
	}

	return userID, nil
}

func (s *UserService) List(ctx context.Context, filter ListFilter) ([]api.UserSchema, error) {
	f := models.UserFilter{
		UserID:    strings.TrimSpace(filter.UserID),
		ManagerID: strings.TrimSpace(filter.ManagerID),
	}

	if strings.TrimSpace(filter.MobNum) != "" {
		suffix, err := validation.MobileSuffix(filter.MobNum)
		if err != nil {
			return nil, err
		}
		f.MobSuffix = suffix
	}

	users, err := s.userProvider.ListActive(ctx, f)
	if err != nil {
		return nil, err
	}

	resp := make([]api.UserSchema, 0, len(users))
	for _, u := range users {
		resp = append(resp, toUserSchema(u))
	}

	return resp, nil
}

// Delete removes by user id when given, otherwise by the normalized mobile number.
func (s *UserService) Delete(ctx context.Context, userID, mobNum string) error {
	userID = strings.TrimSpace(userID)
	if userID != "" {
		return s.userDeleter.DeleteByID(ctx, userID)
	}

	if strings.TrimSpace(mobNum) == "" {
		return validation.NewError("either user_id or mob_num is required")
	}

	mob, err := validation.MobileNumber(mobNum)
	if err != nil {
		return err
	}

	return s.userDeleter.DeleteByMobile(ctx, mob)
}

func (s *UserService) Update(ctx context.Context, userIDs []string, fields map[string]any) (*UpdateResult, error) {
	ids := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			return nil, validation.NewError("user_ids must not contain empty values")
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, validation.NewError("user_ids must contain at least one id")
	}

	payload, err := validation.ValidateUpdatePayload(fields)
	if err != nil {
		return nil, err
	}

	plan := NewUpdatePlan(ids, payload)

	switch plan.Kind {
	case PlanBulkReassign:
		return s.bulkReassign(ctx, plan)
	case PlanHistoryReassign:
		return s.historyReassign(ctx, plan)
	case PlanSingleFieldUpdate:
		return s.updateFields(ctx, plan)
	default:
		return nil, ErrUnsupportedBulkOperation
	}
}

func (s *UserService) bulkReassign(ctx context.Context, plan UpdatePlan) (*UpdateResult, error) {
	managerID := *plan.Payload.ManagerID
	res := &UpdateResult{Kind: plan.Kind}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		if err := s.requireActiveManager(ctx, managerID); err != nil {
			return err
		}

		n, err := s.userSaver.SetManager(ctx, plan.UserIDs, managerID)
		if err != nil {
			return err
		}

		res.UpdatedCount = n
		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

// historyReassign retires the current row and inserts a copy under the new
// manager. The copy gets a fresh id; old and new rows share only mob_num and
// pan_num.
func (s *UserService) historyReassign(ctx context.Context, plan UpdatePlan) (*UpdateResult, error) {
	managerID := *plan.Payload.ManagerID
	userID := plan.UserIDs[0]
	res := &UpdateResult{Kind: plan.Kind}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		if err := s.requireActiveManager(ctx, managerID); err != nil {
			return err
		}

		current, err := s.userProvider.GetActiveByID(ctx, userID)
		if err != nil {
			return err
		}

		if err := s.userSaver.Deactivate(ctx, current.ID); err != nil {
			return err
		}

		newID, err := s.userSaver.Create(ctx, &models.User{
			ID:        uuid.NewString(),
			FullName:  current.FullName,
			MobNum:    current.MobNum,
			PanNum:    current.PanNum,
			ManagerID: managerID,
			IsActive:  true,
		})
		if err != nil {
			return err
		}

		res.NewUserID = newID
		res.UpdatedCount = 1
		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

func (s *UserService) updateFields(ctx context.Context, plan UpdatePlan) (*UpdateResult, error) {
	changes := models.UserChanges{
		FullName: plan.Payload.FullName,
		MobNum:   plan.Payload.MobNum,
		PanNum:   plan.Payload.PanNum,
	}

	if err := s.userSaver.Update(ctx, plan.UserIDs[0], changes); err != nil {
		return nil, err
	}

	return &UpdateResult{Kind: plan.Kind, UpdatedCount: 1}, nil
}

func (s *UserService) requireActiveManager(ctx context.Context, managerID string) error {
	manager, err := s.managerProvider.GetByID(ctx, managerID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrManagerInactiveOrMissing
		}
		return err
	}

	if !manager.IsActive {
		return ErrManagerInactiveOrMissing
	}

	return nil
}

func toUserSchema(u *models.User) api.UserSchema {
	return api.UserSchema{
		UserID:    u.ID,
		FullName:  u.FullName,
		MobNum:    u.MobNum,
		PanNum:    u.PanNum,
		ManagerID: u.ManagerID,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
