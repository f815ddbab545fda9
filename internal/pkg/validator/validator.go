package validator

import (
	"errors"
	"fmt"
	"strings"

	playground "github.com/go-playground/validator/v10"

	"github.com/propdesk/messaging-service/internal/model"
	"github.com/propdesk/messaging-service/internal/rest/api"
)

const maxContentLength = 2000

type Validator struct {
	validate *playground.Validate
}

func New() *Validator {
	return &Validator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

func (v *Validator) ValidateKind(kind string) (model.ConversationKind, error) {
	return model.ParseConversationKind(kind)
}

func (v *Validator) ValidateConversation(kind, id string) (model.ConversationKey, error) {
	parsed, err := v.ValidateKind(kind)
	if err != nil {
		return model.ConversationKey{}, err
	}

	key := model.ConversationKey{Kind: parsed, ID: strings.TrimSpace(id)}
	if err := key.Validate(); err != nil {
		return model.ConversationKey{}, err
	}

	return key, nil
}

func (v *Validator) ValidateSendMessage(req *api.SendMessageRequest) error {
	if strings.TrimSpace(req.Content) == "" {
		return fmt.Errorf("content cannot be empty")
	}

	if strings.TrimSpace(req.Author) == "" {
		return fmt.Errorf("author is required")
	}

	if len([]rune(req.Content)) > maxContentLength {
		return fmt.Errorf("content exceeds maximum length of %d characters", maxContentLength)
	}

	if err := v.validate.Struct(req); err != nil {
		var fieldErrs playground.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("field '%s' failed on '%s'", fe.Field(), fe.Tag())
		}
		return err
	}

	return nil
}
