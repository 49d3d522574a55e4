package create_block

import (
	"context"

	blockInventory "github.com/m04kA/SMC-HostelService/internal/usecase/block_inventory"
)

type BlockInventoryUseCase interface {
	Execute(ctx context.Context, req *blockInventory.Request) (*blockInventory.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
