package calculator

// CalcRequest is the JSON body for binary operations. Pointers distinguish a
// missing operand from an explicit zero.
type CalcRequest struct {
	A *Number `json:"a"`
	B *Number `json:"b"`
}

// CalcResponse is the JSON response for a successful operation.
type CalcResponse struct {
	Operation string `json:"operation"`
	A         Number `json:"a"`
	B         Number `json:"b"`
	Result    Number `json:"result"`
	Record    string `json:"record"` // the entry appended to the history
}

// HistoryResponse is the JSON response for GET /calculator/history.
type HistoryResponse struct {
	History []string `json:"history"`
	Count   int      `json:"count"`
}
