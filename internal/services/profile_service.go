package services

import (
	"context"

	"github.com/ReddyRohith-E/MeFit-sub000/internal/models"
	"github.com/ReddyRohith-E/MeFit-sub000/internal/repository"
)

type ProfileUpdater interface {
	UpdatePartial(ctx context.Context, userID int64, input repository.UpdateProfileInput) (*models.Profile, error)
}

type ProfileService struct {
	profileRepo ProfileUpdater
}

func NewProfileService(profileRepo ProfileUpdater) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

func (s *ProfileService) UpdateProfile(ctx context.Context, userID int64, input repository.UpdateProfileInput) (*models.Profile, error) {
	return s.profileRepo.UpdatePartial(ctx, userID, input)
}
