package models

import "github.com/google/uuid"

type Action string

const (
	ActionList        Action = "list"
	ActionCreate      Action = "create"
	ActionUpdate      Action = "update"
	ActionDelete      Action = "delete"
	ActionValidate    Action = "validate"
	ActionReorder     Action = "reorder"
	ActionBatchCreate Action = "batch_create"
)

// ActionEnvelope is the wire shape of a CRUD request body. Handlers turn it
// into one of the typed requests below before dispatching.
type ActionEnvelope struct {
	Action string                   `json:"action" example:"create"`
	ID     string                   `json:"id,omitempty"`
	Data   map[string]interface{}   `json:"data,omitempty"`
	IDs    []string                 `json:"ids,omitempty"`
	Items  []map[string]interface{} `json:"items,omitempty"`
}

// Request is implemented by every typed CRUD request. The unexported method
// keeps the set closed to this package.
type Request interface {
	Action() Action
	request()
}

type ListRequest struct{}

type CreateRequest struct {
	Data map[string]interface{}
}

type UpdateRequest struct {
	ID   uuid.UUID
	Data map[string]interface{}
}

type DeleteRequest struct {
	ID uuid.UUID
}

type ValidateRequest struct {
	Data map[string]interface{}
}

// ReorderRequest carries the full new permutation of work ids.
type ReorderRequest struct {
	IDs []uuid.UUID
}

type BatchCreateRequest struct {
	Items []map[string]interface{}
}

func (ListRequest) Action() Action        { return ActionList }
func (CreateRequest) Action() Action      { return ActionCreate }
func (UpdateRequest) Action() Action      { return ActionUpdate }
func (DeleteRequest) Action() Action      { return ActionDelete }
func (ValidateRequest) Action() Action    { return ActionValidate }
func (ReorderRequest) Action() Action     { return ActionReorder }
func (BatchCreateRequest) Action() Action { return ActionBatchCreate }

func (ListRequest) request()        {}
func (CreateRequest) request()      {}
func (UpdateRequest) request()      {}
func (DeleteRequest) request()      {}
func (ValidateRequest) request()    {}
func (ReorderRequest) request()     {}
func (BatchCreateRequest) request() {}

// RevalidateRequest asks the rendering layer to drop cached output for a path.
type RevalidateRequest struct {
	Path string `json:"path" binding:"required" example:"/blog"`
	Type string `json:"type" example:"page"`
}
