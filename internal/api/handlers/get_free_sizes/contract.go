package get_free_sizes

import (
	"context"

	getFreeSizes "github.com/othmanalikhan-apps/project-aardvark/internal/usecase/get_free_sizes"
)

type GetFreeSizesUseCase interface {
	Execute(ctx context.Context, req *getFreeSizes.Request) (*getFreeSizes.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
