package dto

type AuditListQuery struct {
	ListQuery
	UserID       uint   `form:"user_id"`
	ResourceType string `form:"resource_type"`
	Action       string `form:"action"`
}
