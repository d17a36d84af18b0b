package explorer

import "encoding/json"

// response is the internal envelope type for successful responses,
// wrapping the result in a {"result": ...} structure.
type response struct {
	Result any `json:"result"`
}

// errorResponse is the internal envelope type for error responses,
// wrapping the error in an {"error": {...}} structure.
type errorResponse struct {
	Error *Error `json:"error"`
}

func encodeResponse(w jsonWriter, result any) error {
	return json.NewEncoder(w).Encode(response{Result: result})
}

func encodeErrorResponse(w jsonWriter, err *Error) error {
	return json.NewEncoder(w).Encode(errorResponse{Error: err})
}

// jsonWriter is satisfied by http.ResponseWriter and allows testing.
type jsonWriter interface {
	Write([]byte) (int, error)
}
