package models

import "github.com/othmanalikhan-apps/project-aardvark/internal/domain"

// TableResponse описание стола
type TableResponse struct {
	Number int64 `json:"number"`
	Size   int64 `json:"size"`
}

// TableListResponse перечень столов ресторана
type TableListResponse struct {
	Tables []TableResponse `json:"tables"`
	Total  int             `json:"total"`
}

// FromDomainTables конвертирует доменные столы в response-модель
func FromDomainTables(tables []domain.Table) *TableListResponse {
	out := make([]TableResponse, 0, len(tables))
	for _, t := range tables {
		out = append(out, TableResponse{Number: t.Number, Size: t.Size})
	}
	return &TableListResponse{Tables: out, Total: len(out)}
}
