package utils

import (
	"encoding/json"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-digital/cms-go/models"
	"github.com/prefeitura-digital/cms-go/repositories"
)

// LogAudit records an admin mutation. Failures are logged, never propagated:
// auditing must not break the request that triggered it.
func LogAudit(c *gin.Context, action, resourceType, resourceID string, before, after any, description string, repo repositories.AuditRepo) {
	userID, _ := GetUserIDFromContext(c)

	var oldData, newData []byte
	var err error
	if before != nil {
		if oldData, err = json.Marshal(before); err != nil {
			log.Printf("Audit marshal oldData error: %v", err)
		}
	}
	if after != nil {
		if newData, err = json.Marshal(after); err != nil {
			log.Printf("Audit marshal newData error: %v", err)
		}
	}

	entry := &models.AuditLog{
		UserID:       userID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		OldData:      oldData,
		NewData:      newData,
		IPAddress:    c.ClientIP(),
		UserAgent:    c.GetHeader("User-Agent"),
		Description:  description,
	}

	if err := repo.Create(entry); err != nil {
		log.Printf("Failed to write audit log: %v", err)
	}
}
