package sarthi

import (
	"context"
	"errors"
	"fmt"
	"time"

	catalogRepo "astromarket/database/repository/catalog"
	"astromarket/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *DefaultSarthiService) ListProblems(ctx context.Context) ([]models.ProblemGroup, error) {
	return s.Catalog.GroupedProblems(ctx)
}

func (s *DefaultSarthiService) CheckCustom(text string) CustomCheck {
	return CustomCheck{
		WordCount: CountWords(text),
		Limit:     MaxCustomWords,
		CanSubmit: CanSubmitText(text),
	}
}

// SelectProblem records a predefined problem chosen by userID.
func (s *DefaultSarthiService) SelectProblem(ctx context.Context, userID, problemID string) (*models.ConsultationRequest, error) {
	problem, err := s.Catalog.GetProblem(ctx, problemID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownProblem, problemID)
		}
		return nil, err
	}

	selection, err := NewSelector().Select(*problem)
	if err != nil {
		return nil, err
	}
	return s.record(ctx, userID, selection, string(ModePredefined))
}

// SubmitCustom records a free-text problem description.
func (s *DefaultSarthiService) SubmitCustom(ctx context.Context, userID, text string) (*models.ConsultationRequest, error) {
	sel := NewSelector()
	sel.ToggleCustom()
	if err := sel.SetText(text); err != nil {
		return nil, err
	}
	selection, err := sel.Submit()
	if err != nil {
		return nil, err
	}
	return s.record(ctx, userID, selection, string(ModeCustom))
}

func (s *DefaultSarthiService) ListRequests(ctx context.Context, userID string) ([]models.ConsultationRequest, error) {
	return s.Requests.ListByUser(ctx, userID)
}

func (s *DefaultSarthiService) record(ctx context.Context, userID string, selection models.ProblemSelection, mode string) (*models.ConsultationRequest, error) {
	req := models.ConsultationRequest{
		ID:        uuid.New().String(),
		UserID:    userID,
		Selection: selection,
		CreatedAt: time.Now(),
	}
	if err := s.Requests.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("failed to record consultation request: %w", err)
	}
	s.Metrics.ObserveSelection(mode)
	s.logger().Info("Sarthi problem selected",
		zap.String("userId", userID),
		zap.String("mode", mode),
		zap.String("title", selection.Title),
	)
	return &req, nil
}

func (s *DefaultSarthiService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
