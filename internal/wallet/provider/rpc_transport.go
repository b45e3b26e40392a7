package provider

import (
	"context"
	"encoding/json"

	"github.com/ethereum/go-ethereum/rpc"
	"github.com/pkg/errors"
)

// rpcTransport adapts a go-ethereum RPC client to the Provider capability
// interface.
type rpcTransport struct {
	client *rpc.Client
}

// NewRPCTransport dials url and returns a Provider backed by the node
// behind it. The caller owns the returned closer.
func NewRPCTransport(ctx context.Context, url string) (Provider, func(), error) {
	client, err := rpc.DialContext(ctx, url)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to dial RPC node %s", url)
	}

	t := &rpcTransport{client: client}
	return t, client.Close, nil
}

func (t *rpcTransport) Request(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	var result json.RawMessage
	if err := t.client.CallContext(ctx, &result, method, params...); err != nil {
		return nil, normalizeRPCError(err)
	}
	return result, nil
}

// normalizeRPCError maps rpc-level failures into the structured RPCError
// so callers can branch on the integer code (4902 handling).
func normalizeRPCError(err error) error {
	var coded rpc.Error
	if errors.As(err, &coded) {
		return &RPCError{Code: coded.ErrorCode(), Message: coded.Error()}
	}
	return errors.Wrap(err, "provider request failed")
}
