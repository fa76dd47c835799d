package get_free_tables

import (
	"context"

	getFreeTables "github.com/othmanalikhan-apps/project-aardvark/internal/usecase/get_free_tables"
)

type GetFreeTablesUseCase interface {
	Execute(ctx context.Context, req *getFreeTables.Request) (*getFreeTables.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
