package dto

// UpdateActionRequest is the payload for editing an action item before
// approval
type UpdateActionRequest struct {
	Description *string `json:"description,omitempty"`
	AssignedTo  *string `json:"assigned_to,omitempty" validate:"omitempty,max=255"`
	DueDate     *string `json:"due_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ActionType  *string `json:"action_type,omitempty" validate:"omitempty,oneof=Email Meeting Task"`
}
