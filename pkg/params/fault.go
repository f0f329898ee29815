package params

import (
	"fmt"
	"strings"
)

// FaultCode is a CWMP fault code.
type FaultCode int

// CWMP fault codes used by the parameter operations.
const (
	FaultInternalError         FaultCode = 9002
	FaultInvalidArguments      FaultCode = 9003
	FaultInvalidParameterName  FaultCode = 9005
	FaultInvalidParameterType  FaultCode = 9006
	FaultInvalidParameterValue FaultCode = 9007
	FaultNonWritableParameter  FaultCode = 9008
)

// String returns the fault string defined for the code.
func (c FaultCode) String() string {
	switch c {
	case FaultInternalError:
		return "Internal error"
	case FaultInvalidArguments:
		return "Invalid arguments"
	case FaultInvalidParameterName:
		return "Invalid parameter name"
	case FaultInvalidParameterType:
		return "Invalid parameter type"
	case FaultInvalidParameterValue:
		return "Invalid parameter value"
	case FaultNonWritableParameter:
		return "Attempt to set a non-writable parameter"
	default:
		return fmt.Sprintf("Fault %d", int(c))
	}
}

// ParameterFault is the fault of a single parameter in SetParameterValues.
type ParameterFault struct {
	Name    string
	Code    FaultCode
	Message string
}

// Fault is the error returned by the parameter operations.
type Fault struct {
	Code    FaultCode
	Message string

	// Parameters holds the per-parameter faults of a SetParameterValues
	// request rejected with FaultInvalidArguments.
	Parameters []ParameterFault
}

func newFault(code FaultCode, format string, args ...any) *Fault {
	return &Fault{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Error implements the error interface.
func (f *Fault) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "cwmp fault %d (%s)", int(f.Code), f.Code)
	if f.Message != "" {
		b.WriteString(": ")
		b.WriteString(f.Message)
	}
	for _, p := range f.Parameters {
		fmt.Fprintf(&b, "; %s: %d %s", p.Name, int(p.Code), p.Message)
	}
	return b.String()
}

// Is reports whether target is a *Fault with the same code, so callers can
// match with errors.Is(err, &params.Fault{Code: params.FaultInvalidParameterName}).
func (f *Fault) Is(target error) bool {
	t, ok := target.(*Fault)
	return ok && t.Code == f.Code
}
