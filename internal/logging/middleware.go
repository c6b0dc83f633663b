package logging

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
)

// Middleware attaches a LogData to every API request and emits the
// start/complete pair of log lines around the operation.
func Middleware(logger *logrus.Logger) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		operationID := ctx.Operation().OperationID

		logData := NewLogData(logger)
		logData.AddData("requestID", uuid.Must(uuid.NewV4()).String())
		logData.AddData("method", ctx.Method())
		logData.AddData("path", ctx.URL().Path)

		logger.Infof("Handler.%v.Start", operationID)

		endTimer := logData.AddTiming("duration")
		next(huma.WithValue(ctx, logDataKey{}, logData))
		endTimer()

		entry := logData.Log().WithField("status", ctx.Status())
		if ctx.Status() >= 500 {
			entry.Errorf("Handler.%v.Error", operationID)
			return
		}

		entry.Infof("Handler.%v.Complete", operationID)
	}
}
