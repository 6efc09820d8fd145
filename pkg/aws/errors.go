package aws

import (
	"errors"

	"github.com/aws/smithy-go"
	"github.com/younsl/shotty/internal/models"
)

// asClientError converts an error returned by the EC2 API into a
// *models.ClientError. Errors that never reached the API (credentials,
// network, cancelled context) are returned unchanged.
func asClientError(operation string, err error) error {
	if err == nil {
		return nil
	}

	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return err
	}

	return &models.ClientError{
		Operation: operation,
		Code:      apiErr.ErrorCode(),
		Message:   apiErr.ErrorMessage(),
		Err:       err,
	}
}
