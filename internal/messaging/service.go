// Package messaging drafts outreach messages to retailers and vendors with a
// text-generation model.
package messaging

import (
	"context"
	"errors"
	"strings"

	"github.com/qawafel/crm-backend/pkg/enums"
	pkgerrors "github.com/qawafel/crm-backend/pkg/errors"
	"github.com/qawafel/crm-backend/pkg/logger"
)

// ErrNotConfigured is returned when no model API key was provided.
var ErrNotConfigured = errors.New("AI service is not configured")

// Request describes the message to draft.
type Request struct {
	RecipientType     enums.UserType       `json:"recipientType" validate:"required,oneof=Retailer Vendor"`
	Goal              string               `json:"goal" validate:"required,max=500"`
	Channel           enums.MessageChannel `json:"channel" validate:"required,oneof=Email SMS Push WhatsApp"`
	ExtraInstructions string               `json:"extraInstructions" validate:"max=2000"`
}

// Generator turns a prompt into text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Service interface {
	GenerateMessage(ctx context.Context, req Request) (string, error)
}

type service struct {
	gen  Generator
	logg *logger.Logger
}

// NewService accepts a nil generator; every call then fails with
// DEPENDENCY_ERROR instead of the server refusing to start.
func NewService(gen Generator, logg *logger.Logger) (Service, error) {
	if logg == nil {
		return nil, errors.New("logger required")
	}
	return &service{gen: gen, logg: logg}, nil
}

func (s *service) GenerateMessage(ctx context.Context, req Request) (string, error) {
	if !req.RecipientType.IsValid() {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "invalid recipient type")
	}
	if !req.Channel.IsValid() {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "invalid channel")
	}
	if strings.TrimSpace(req.Goal) == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "goal is required")
	}
	if s.gen == nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, ErrNotConfigured, ErrNotConfigured.Error())
	}

	text, err := s.gen.Generate(ctx, BuildPrompt(req))
	if err != nil {
		s.logg.Error(ctx, "messaging.generate_failed", err)
		if errors.Is(err, ErrNotConfigured) {
			return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, ErrNotConfigured.Error())
		}
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "message generation failed")
	}
	return strings.TrimSpace(text), nil
}
