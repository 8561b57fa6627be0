package rpc

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/jsonrpc"

	"github.com/custodia-labs/reportctl/internal/core/domain"
)

// JSON-RPC error codes with a dedicated mapping.
const (
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
)

// requestFailed is the server side failure carried in a result.
type requestFailed struct {
	ErrorCode domain.ErrorCode `json:"errorCode"`
	Message   string           `json:"message"`
	ExtraInfo []string         `json:"extraInfo,omitempty"`
}

// resultEnvelope is the result member of every reply.
type resultEnvelope struct {
	Success       json.RawMessage `json:"success,omitempty"`
	RequestFailed *requestFailed  `json:"requestFailed,omitempty"`
}

// wireErrorBody extracts the numeric code of a JSON-RPC error member.
type wireErrorBody struct {
	Error *struct {
		Code    int64  `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// encodeRequest builds a request with a fresh ID.
func encodeRequest(method string, args []any) (jsonrpc.ID, []byte, error) {
	id, err := jsonrpc.MakeID(uuid.New().String())
	if err != nil {
		return jsonrpc.ID{}, nil, err
	}
	if args == nil {
		args = []any{}
	}
	params, err := json.Marshal(args)
	if err != nil {
		return jsonrpc.ID{}, nil, fmt.Errorf("encode arguments: %w", err)
	}
	data, err := jsonrpc.EncodeMessage(&jsonrpc.Request{ID: id, Method: method, Params: params})
	if err != nil {
		return jsonrpc.ID{}, nil, err
	}
	return id, data, nil
}

// decodeReply decodes body into result. Failures reported by the server are
// returned as domain errors; undecodable replies as *domain.TransportError.
func decodeReply(method string, id jsonrpc.ID, body []byte, result any) error {
	msg, err := jsonrpc.DecodeMessage(body)
	if err != nil {
		return malformed(method, err)
	}
	resp, ok := msg.(*jsonrpc.Response)
	if !ok {
		return malformed(method, fmt.Errorf("expected response, got %T", msg))
	}
	if resp.ID != id {
		return malformed(method, fmt.Errorf("response id %v does not match request id %v", resp.ID.Raw(), id.Raw()))
	}

	if resp.Error != nil {
		return wireError(method, body, resp.Error)
	}

	var env resultEnvelope
	if err := json.Unmarshal(resp.Result, &env); err != nil {
		return malformed(method, fmt.Errorf("decode result: %w", err))
	}
	if env.RequestFailed != nil {
		return domain.NewRequestFailed(method, env.RequestFailed.ErrorCode,
			env.RequestFailed.Message, env.RequestFailed.ExtraInfo)
	}
	if result == nil || len(env.Success) == 0 || string(env.Success) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Success, result); err != nil {
		return malformed(method, fmt.Errorf("decode %s result: %w", method, err))
	}
	return nil
}

// wireError maps a JSON-RPC error member to a remote operation failure.
func wireError(method string, body []byte, cause error) error {
	code := domain.ErrorCodeGeneral
	var wb wireErrorBody
	if err := json.Unmarshal(body, &wb); err == nil && wb.Error != nil {
		switch wb.Error.Code {
		case codeMethodNotFound, codeInvalidParams:
			code = domain.ErrorCodeAPIMismatch
		}
	}
	return &domain.RemoteOperationError{Method: method, Code: code, Message: cause.Error()}
}

func malformed(method string, err error) error {
	return &domain.TransportError{Method: method, Err: fmt.Errorf("malformed reply: %w", err)}
}
