package models

type InvokeRequest struct {
	Args []string `json:"args"`
}

type InvokeResponse struct {
	Function string `json:"function"`
	Result   string `json:"result"` // 0x-prefixed 32-byte uint256 word
	Value    string `json:"value"`
}

type FunctionList struct {
	Functions []string `json:"functions"`
}
