package practice

import (
	"errors"
	"reflect"
	"strings"

	"github.com/example/ellinika/pkg/models"
	"github.com/go-playground/validator/v10"
)

// Global validator instance for reuse
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report JSON field names so errors match what clients sent
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	return v
}

// RegisterUserRequest creates a learner identified by a unique code
type RegisterUserRequest struct {
	Code        string `json:"code" validate:"required,max=64"`
	DisplayName string `json:"display_name" validate:"required,max=128"`
}

// StartSessionRequest opens a new practice session
type StartSessionRequest struct {
	UserID      int64   `json:"user_id" validate:"gt=0"`
	SessionType string  `json:"session_type" validate:"required,max=64"`
	Category    *string `json:"category,omitempty" validate:"omitempty,max=128"`
	Focus       *string `json:"focus,omitempty" validate:"omitempty,max=128"`
}

// WeakAreaTag names the grammatical area an attempt exercised
type WeakAreaTag struct {
	AreaType   models.AreaType `json:"area_type" validate:"required,oneof=case gender verb_family"`
	Identifier string          `json:"identifier" validate:"required,max=128"`
}

// RecordAttemptRequest is one answered question.
// VocabularyItemID drives the scheduler; WeakArea drives the mistake tracker.
type RecordAttemptRequest struct {
	UserID           int64            `json:"user_id" validate:"gt=0"`
	SessionID        *string          `json:"session_id,omitempty" validate:"omitempty,min=1"`
	VocabularyItemID *int64           `json:"vocabulary_item_id,omitempty" validate:"omitempty,gt=0"`
	QuestionText     string           `json:"question_text" validate:"required"`
	CorrectAnswer    string           `json:"correct_answer" validate:"required"`
	UserAnswer       string           `json:"user_answer"`
	IsCorrect        *bool            `json:"is_correct" validate:"required"`
	TimeTakenMs      *int             `json:"time_taken_ms" validate:"required,gte=0"`
	SkillType        models.SkillType `json:"skill_type" validate:"required,oneof=recognition production"`
	WeakArea         *WeakAreaTag     `json:"weak_area,omitempty" validate:"omitempty"`
}

// CompleteSessionRequest closes a session with its final totals
type CompleteSessionRequest struct {
	SessionID      string `json:"session_id" validate:"required"`
	TotalQuestions int    `json:"total_questions" validate:"gte=0"`
	CorrectAnswers int    `json:"correct_answers" validate:"gte=0,ltefield=TotalQuestions"`
}

// validateRequest runs the struct validator and converts its output into a *ValidationError
func validateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return newValidationError(verrs)
	}
	return err
}

func validateSkill(skill models.SkillType) error {
	if !skill.Valid() {
		return fieldError("skill_type", "must be one of: recognition production")
	}
	return nil
}

func validateUserID(userID int64) error {
	if userID <= 0 {
		return fieldError("user_id", "must be greater than 0")
	}
	return nil
}
