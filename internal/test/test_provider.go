package test

import (
	"context"
	"encoding/json"
	"sync"
)

// ScriptedProvider is a Provider double answering each method with a
// canned JSON response or error, recording the methods called.
type ScriptedProvider struct {
	mu        sync.Mutex
	Responses map[string]string
	Errors    map[string]error
	Calls     []string
}

// NewScriptedProvider creates a ScriptedProvider with sensible defaults
// for a connected single-account wallet.
func NewScriptedProvider(address string) *ScriptedProvider {
	return &ScriptedProvider{
		Responses: map[string]string{
			"eth_requestAccounts": `["` + address + `"]`,
			"eth_accounts":        `["` + address + `"]`,
			"eth_getBalance":      `"0xde0b6b3a7640000"`,
		},
	}
}

func (p *ScriptedProvider) Request(_ context.Context, method string, _ ...any) (json.RawMessage, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.Calls = append(p.Calls, method)

	if err := p.Errors[method]; err != nil {
		return nil, err
	}

	if res, ok := p.Responses[method]; ok {
		return json.RawMessage(res), nil
	}

	return json.RawMessage(`null`), nil
}
