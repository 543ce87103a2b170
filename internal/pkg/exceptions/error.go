package exceptions

import (
	"fmt"
	"runtime"

	"github.com/kralluz/imec-formularios-app/internal/pkg/constvars"
)

type CustomError struct {
	StatusCode    int               `json:"status_code"`
	Success       bool              `json:"success"`
	ClientMessage string            `json:"message"`
	Details       map[string]string `json:"errors,omitempty"`
	DevMessage    string            `json:"dev_message,omitempty"`
	Location      *Location         `json:"location,omitempty"`
}

type Location struct {
	File         string `json:"file"`
	Line         int    `json:"line"`
	FunctionName string `json:"function_name"`
}

func (e *CustomError) Error() string {
	if e.Location == nil {
		return e.DevMessage
	}
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, e.Location.File, e.Location.Line, e.Location.FunctionName)
}

// BuildNewCustomError records the location of its caller's caller, which is
// where a named constructor such as ErrCannotParseJSON was invoked.
func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	location := getLocation(3)
	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Location:      &location,
	}
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
