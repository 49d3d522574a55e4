package delete_block

import "context"

type BlockService interface {
	Unblock(ctx context.Context, id string, staffID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
