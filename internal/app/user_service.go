package app

import (
	"context"
	"time"

	"fitmanager/internal/model"
)

type UserService struct {
	users      UserStore
	weights    WeightStore
	macros     MacroStore
	hydrations HydrationStore
	events     ActivityPublisher
	cache      CacheInvalidator
}

type UpdateProfileInput struct {
	Username        *string
	DateOfBirth     *time.Time
	Sex             *string
	Height          *float64
	InitialWeight   *float64
	TargetWeight    *float64
	WorkoutsPerWeek *int
}

func NewUserService(
	users UserStore,
	weights WeightStore,
	macros MacroStore,
	hydrations HydrationStore,
	events ActivityPublisher,
	cache CacheInvalidator,
) *UserService {
	return &UserService{
		users:      users,
		weights:    weights,
		macros:     macros,
		hydrations: hydrations,
		events:     events,
		cache:      cache,
	}
}

func (s *UserService) Get(userID uint) (*model.User, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateProfile applies only the provided fields; absent fields keep their
// stored value.
func (s *UserService) UpdateProfile(userID uint, input UpdateProfileInput) (*model.User, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	fields := map[string]interface{}{}
	if input.Username != nil && *input.Username != user.Username {
		existing, err := s.users.GetByUsername(*input.Username)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != userID {
			return nil, ErrUsernameTaken
		}
		fields["username"] = *input.Username
	}
	if input.DateOfBirth != nil {
		fields["date_of_birth"] = *input.DateOfBirth
	}
	if input.Sex != nil {
		fields["sex"] = *input.Sex
	}
	if input.Height != nil {
		fields["height"] = *input.Height
	}
	if input.InitialWeight != nil {
		fields["initial_weight"] = *input.InitialWeight
	}
	if input.TargetWeight != nil {
		fields["target_weight"] = *input.TargetWeight
	}
	if input.WorkoutsPerWeek != nil {
		fields["workouts_per_week"] = *input.WorkoutsPerWeek
	}

	if err := s.users.Update(userID, fields); err != nil {
		return nil, err
	}

	s.afterWrite(userID, "update", userID)
	return s.users.GetByID(userID)
}

// Delete removes the account and all records it owns.
func (s *UserService) Delete(userID uint) error {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err := s.weights.DeleteByUserID(userID); err != nil {
		return err
	}
	if err := s.macros.DeleteByUserID(userID); err != nil {
		return err
	}
	if err := s.hydrations.DeleteByUserID(userID); err != nil {
		return err
	}
	if err := s.users.Delete(userID); err != nil {
		return err
	}

	s.afterWrite(userID, "delete", userID)
	return nil
}

func (s *UserService) afterWrite(userID uint, action string, entityID uint) {
	ctx := context.Background()
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, userID)
	}
	if s.events != nil {
		_ = s.events.Publish(ctx, model.ActivityEvent{
			UserID:     userID,
			Action:     action,
			Entity:     "user",
			EntityID:   entityID,
			OccurredAt: time.Now(),
		})
	}
}
