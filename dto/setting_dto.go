package dto

import "encoding/json"

type UpsertSettingDTO struct {
	Key   string          `json:"key" binding:"required,max=100"`
	Value json.RawMessage `json:"value" binding:"required"`
}
