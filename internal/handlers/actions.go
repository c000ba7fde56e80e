package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"portfolio-backend/internal/apperrors"
	"portfolio-backend/internal/auth"
	"portfolio-backend/internal/middleware"
	"portfolio-backend/internal/models"
)

var (
	contentActions = []models.Action{
		models.ActionList,
		models.ActionCreate,
		models.ActionUpdate,
		models.ActionDelete,
		models.ActionValidate,
	}
	workActions = append(append([]models.Action{}, contentActions...),
		models.ActionReorder,
		models.ActionBatchCreate,
	)
)

// Guard authenticates the caller and applies the policy for every action
// except list.
type Guard struct {
	resolver auth.Resolver
	policy   auth.Policy
}

func NewGuard(resolver auth.Resolver, policy auth.Policy) *Guard {
	if policy == nil {
		policy = auth.AllowAuthenticated{}
	}
	return &Guard{resolver: resolver, policy: policy}
}

func (g *Guard) authorize(c *gin.Context, resource auth.Resource, action models.Action) error {
	if action == models.ActionList {
		return nil
	}
	identity, err := middleware.Authenticate(c, g.resolver)
	if err != nil {
		return err
	}
	return g.policy.Authorize(identity, resource, action)
}

// bindAction reads the action envelope and turns it into a typed request.
// Numbers inside data stay json.Number so normalization sees the text the
// client sent.
func bindAction(c *gin.Context, allowed []models.Action) (models.Request, error) {
	dec := json.NewDecoder(c.Request.Body)
	dec.UseNumber()

	var env models.ActionEnvelope
	if err := dec.Decode(&env); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, apperrors.Validation("request body is required")
		}
		return nil, apperrors.Wrap(err, apperrors.KindValidation, "invalid request body")
	}
	return parseEnvelope(env, allowed)
}

func parseEnvelope(env models.ActionEnvelope, allowed []models.Action) (models.Request, error) {
	name := strings.TrimSpace(env.Action)
	if name == "" {
		return nil, apperrors.Validation("action is required")
	}
	action := models.Action(name)
	if !actionAllowed(action, allowed) {
		return nil, apperrors.Validation(fmt.Sprintf("unknown action %q", name))
	}

	switch action {
	case models.ActionList:
		return models.ListRequest{}, nil
	case models.ActionCreate:
		if env.Data == nil {
			return nil, apperrors.Validation("data is required")
		}
		return models.CreateRequest{Data: env.Data}, nil
	case models.ActionUpdate:
		id, err := parseID(env.ID, "id")
		if err != nil {
			return nil, err
		}
		if env.Data == nil {
			return nil, apperrors.Validation("data is required")
		}
		return models.UpdateRequest{ID: id, Data: env.Data}, nil
	case models.ActionDelete:
		id, err := parseID(env.ID, "id")
		if err != nil {
			return nil, err
		}
		return models.DeleteRequest{ID: id}, nil
	case models.ActionValidate:
		if env.Data == nil {
			env.Data = map[string]interface{}{}
		}
		return models.ValidateRequest{Data: env.Data}, nil
	case models.ActionReorder:
		if len(env.IDs) == 0 {
			return nil, apperrors.Validation("ids is required")
		}
		ids := make([]uuid.UUID, 0, len(env.IDs))
		for i, raw := range env.IDs {
			id, err := parseID(raw, fmt.Sprintf("ids[%d]", i))
			if err != nil {
				return nil, err
			}
			ids = append(ids, id)
		}
		return models.ReorderRequest{IDs: ids}, nil
	case models.ActionBatchCreate:
		if len(env.Items) == 0 {
			return nil, apperrors.Validation("items is required")
		}
		return models.BatchCreateRequest{Items: env.Items}, nil
	}
	return nil, apperrors.Validation(fmt.Sprintf("unknown action %q", name))
}

func actionAllowed(action models.Action, allowed []models.Action) bool {
	for _, a := range allowed {
		if a == action {
			return true
		}
	}
	return false
}

func parseID(raw, field string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, apperrors.Validation(field + " is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperrors.Validation(field + " must be a valid id")
	}
	return id, nil
}

func unsupported(req models.Request) error {
	return apperrors.Validation(fmt.Sprintf("unknown action %q", req.Action()))
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
