package types

type DataResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type DocumentResponse struct {
	Filename string `json:"filename"`
	Summary  string `json:"summary"`
	Success  bool   `json:"success"`
}

type QuestionResponse struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Context  string `json:"context,omitempty"`
}
