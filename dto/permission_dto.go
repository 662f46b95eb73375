package dto

// AssignPermissionDTO grants or updates one user's capabilities over a
// module; the assignment is an upsert keyed by (user, module).
type AssignPermissionDTO struct {
	UserID    uint   `json:"user_id" binding:"required"`
	Module    string `json:"module" binding:"required"`
	CanCreate bool   `json:"can_create"`
	CanRead   bool   `json:"can_read"`
	CanUpdate bool   `json:"can_update"`
	CanDelete bool   `json:"can_delete"`
}
