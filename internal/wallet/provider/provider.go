package provider

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

// CodeUnrecognizedChain is the provider error code signaling that the
// wallet does not know the requested chain and it has to be added first.
const CodeUnrecognizedChain = 4902

// Provider is the capability interface through which all wallet calls go,
// following the Ethereum JSON-RPC-over-provider convention. The handle is
// borrowed from the host environment for the session duration and is never
// owned by this module.
type Provider interface {
	Request(ctx context.Context, method string, params ...any) (json.RawMessage, error)
}

// RPCError is a structured provider failure carrying the integer error
// code defined by the provider convention (e.g. 4902 for unknown chain).
type RPCError struct {
	Code    int
	Message string
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("provider error %d: %s", e.Code, e.Message)
}

// AsRPCError unwraps err into an *RPCError if one is in the chain.
func AsRPCError(err error) (*RPCError, bool) {
	var rpcErr *RPCError
	if errors.As(err, &rpcErr) {
		return rpcErr, true
	}
	return nil, false
}
