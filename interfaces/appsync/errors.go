package appsync

import (
	pkgerrors "events-api/pkg/errors"

	"github.com/aws/aws-lambda-go/lambda/messages"
)

// InvokeError converts err into the error shape the Lambda runtime hands to
// AppSync. The type becomes the GraphQL errorType.
func InvokeError(err error) error {
	if err == nil {
		return nil
	}

	if appErr := pkgerrors.GetAppError(err); appErr != nil {
		return messages.InvokeResponse_Error{
			Message: appErr.Message,
			Type:    string(appErr.Type),
		}
	}

	return messages.InvokeResponse_Error{
		Message: "An internal error occurred",
		Type:    string(pkgerrors.ErrorTypeInternal),
	}
}

func errorType(err error) string {
	if appErr := pkgerrors.GetAppError(err); appErr != nil {
		return string(appErr.Type)
	}
	return string(pkgerrors.ErrorTypeInternal)
}
